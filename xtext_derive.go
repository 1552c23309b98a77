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

package charset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// deriveByte decodes a single byte through an x/text encoding.Encoding,
// returning errRune if the byte is undefined in that encoding. This is used
// only at package init time to build this package's own zero-allocation
// tables (sbcs_tables.go, dbcs_tables.go); it must never run on the
// transcoding hot path.
func deriveByte(enc encoding.Encoding, b byte) rune {
	out, err := enc.NewDecoder().Bytes([]byte{b})
	if err != nil || len(out) == 0 {
		return errRune
	}
	r, size := utf8.DecodeRune(out)
	if r == utf8.RuneError && size <= 1 {
		return errRune
	}
	return r
}

// deriveSBCS builds a forward table for a one-byte-per-character x/text
// encoding by decoding every byte 0..255 once, per SPEC_FULL.md section 5.
func deriveSBCS(enc encoding.Encoding) [256]rune {
	var t [256]rune
	for b := 0; b < 256; b++ {
		t[b] = deriveByte(enc, byte(b))
	}
	return t
}

// deriveDBCSPair decodes a two-byte sequence through an x/text
// encoding.Encoding, returning errRune if undefined. Used to build this
// package's own DBCS tables at init time (dbcs_tables.go); never called from
// the transcoding hot path.
func deriveDBCSPair(enc encoding.Encoding, lead, trail byte) rune {
	out, err := enc.NewDecoder().Bytes([]byte{lead, trail})
	if err != nil || len(out) == 0 {
		return errRune
	}
	r, size := utf8.DecodeRune(out)
	if r == utf8.RuneError && size <= 1 {
		return errRune
	}
	return r
}

// deriveEncodeBytes round-trips a scalar back through an x/text encoder,
// returning the encoded bytes and true, or nil and false if unrepresentable.
// Used only at init time, to build this package's own inverse tables.
func deriveEncodeBytes(enc encoding.Encoding, r rune) ([]byte, bool) {
	out, err := enc.NewEncoder().Bytes([]byte(string(r)))
	if err != nil || len(out) == 0 {
		return nil, false
	}
	return out, true
}
