// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xcode

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/mloar/charset"
)

func TestToUnicodeStopsWhenDstFull(t *testing.T) {
	d := charset.DescriptorFor(charset.UTF8)
	var st charset.State
	src := []byte("hello")
	dst := make([]rune, 3)

	consumed, produced := ToUnicode(d, &st, src, dst)
	if produced != 3 {
		t.Fatalf("produced = %d, want 3", produced)
	}
	if consumed != 3 {
		t.Fatalf("consumed = %d, want 3 (one ASCII byte per rune)", consumed)
	}
	if string(dst) != "hel" {
		t.Fatalf("dst = %q, want %q", string(dst), "hel")
	}

	consumed2, produced2 := ToUnicode(d, &st, src[consumed:], dst)
	if got := string(dst[:produced2]); got != "lo" {
		t.Fatalf("resumed dst = %q, want %q", got, "lo")
	}
	if consumed2 != 2 {
		t.Fatalf("consumed2 = %d, want 2", consumed2)
	}
}

func TestFromUnicodeUnrepresentable(t *testing.T) {
	d := charset.DescriptorFor(charset.ASCII)
	var st charset.State
	src := []rune{'A', 'B', 0x00E9, 'C'}
	dst := make([]byte, 16)

	consumed, produced, bad := FromUnicode(d, &st, src, dst)
	if !bad {
		t.Fatalf("expected unrepresentable to be reported")
	}
	if consumed != 2 || produced != 2 {
		t.Fatalf("consumed=%d produced=%d, want 2,2 (stopped before U+00E9)", consumed, produced)
	}
	if string(dst[:produced]) != "AB" {
		t.Fatalf("dst = %q, want %q", string(dst[:produced]), "AB")
	}
}

// TestTranscodeRoundTrip exercises the full io.Reader wrapper end to end:
// UTF-8 source text re-encoded to Shift-JIS then decoded back to UTF-8.
// It also pins down the transcodeReader.Read fix: only the runes actually
// produced by ToUnicode may reach FromUnicode, not the entire fixed-size
// scratch array (a stray NUL rune would otherwise show up as extra output
// bytes on every read of a multi-byte source encoding).
func TestTranscodeRoundTrip(t *testing.T) {
	const text = "Japanese 日本語 text"

	toSJIS := Transcode(strings.NewReader(text), charset.UTF8, charset.ShiftJIS)
	sjisBytes, err := io.ReadAll(toSJIS)
	if err != nil {
		t.Fatalf("encode to Shift-JIS: %v", err)
	}

	backToUTF8 := Transcode(bytes.NewReader(sjisBytes), charset.ShiftJIS, charset.UTF8)
	roundTripped, err := io.ReadAll(backToUTF8)
	if err != nil {
		t.Fatalf("decode back to UTF-8: %v", err)
	}

	if string(roundTripped) != text {
		t.Fatalf("round trip = %q, want %q", roundTripped, text)
	}
	if bytes.ContainsRune(roundTripped, 0) {
		t.Fatalf("round trip contains a stray NUL rune: %q", roundTripped)
	}
}

// TestTranscodeSmallReads forces the underlying source reader to hand back
// data in pieces smaller than the scratch buffer, since that is the path
// where a prior version of transcodeReader.Read could leak extra NUL runes
// from its rune scratch array into the re-encoded output.
func TestTranscodeSmallReads(t *testing.T) {
	const text = "abcXYZ123"
	r := Transcode(iotest1ByteReader{strings.NewReader(text)}, charset.UTF8, charset.UTF8)
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(out) != text {
		t.Fatalf("got %q, want %q", out, text)
	}
}

// iotest1ByteReader wraps an io.Reader to always return at most one byte
// per Read call, forcing transcodeReader through its smallest increments.
type iotest1ByteReader struct {
	r io.Reader
}

func (r iotest1ByteReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return r.r.Read(p)
}
