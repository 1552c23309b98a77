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

// Package xcode is the buffer-driven streaming front end spec.md section
// 4.11 and section 6 describe: ToUnicode/FromUnicode wrap a
// charset.Descriptor's byte-at-a-time/codepoint-at-a-time callbacks into
// whole-buffer calls with caller-owned output regions, the same split the
// teacher draws between its low-level dcmReader byte cursor (dcmreader.go)
// and its higher-level, buffer-oriented read.go/write.go API.
package xcode

import (
	"fmt"
	"io"

	"github.com/mloar/charset"
)

// ToUnicode decodes as many bytes of src as fit in dst, in st's encoding,
// updating st in place. It returns the number of bytes of src consumed and
// the number of runes written to dst. If dst fills before src is exhausted,
// ToUnicode stops and returns immediately; the caller is expected to drain
// dst and call again with the remaining, unconsumed suffix of src.
func ToUnicode(d *charset.Descriptor, st *charset.State, src []byte, dst []rune) (consumed, produced int) {
	full := false
	for _, b := range src {
		if produced >= len(dst) {
			break
		}
		d.Decode(b, st, func(r rune) {
			if full {
				return
			}
			if produced < len(dst) {
				dst[produced] = r
				produced++
			} else {
				full = true // one extra emit attempted and discarded, per spec.md section 5
			}
		})
		consumed++
		if full {
			break
		}
	}
	return consumed, produced
}

// FromUnicode encodes as many code points of src as fit in dst, in st's
// encoding, updating st in place. It returns the number of code points
// consumed, the number of bytes written, and whether an unrepresentable
// code point was encountered. On "unrepresentable", consumed stops at (and
// excludes) the offending code point so the caller can recover it. If the
// bytes of one code point only partly fit, that code point is counted as
// consumed and its bytes past the end of dst are discarded.
func FromUnicode(d *charset.Descriptor, st *charset.State, src []rune, dst []byte) (consumed, produced int, unrepresentable bool) {
	full := false
	for _, r := range src {
		if produced >= len(dst) {
			break
		}
		ok := d.Encode(r, st, func(b byte) {
			if full {
				return
			}
			if produced < len(dst) {
				dst[produced] = b
				produced++
			} else {
				full = true
			}
		})
		if !ok {
			return consumed, produced, true
		}
		consumed++
		if full {
			break
		}
	}
	return consumed, produced, false
}

// Finish flushes any pending encoder state (trailing base64 in UTF-7, a
// return to ASCII in ISO-2022-JP, and so on) into dst, returning the number
// of bytes written and whether dst was too small to hold all of them.
func Finish(d *charset.Descriptor, st *charset.State, dst []byte) (produced int, truncated bool) {
	d.Encode(charset.Flush, st, func(b byte) {
		if produced < len(dst) {
			dst[produced] = b
			produced++
		} else {
			truncated = true
		}
	})
	return produced, truncated
}

// Transcode is a supplemented convenience (spec.md names only the raw
// buffer calls; this gives them an io.Reader shape, mirroring the
// teacher's dcmReader wrapping an io.Reader rather than asking every
// caller to manage cursors by hand). It decodes r as src and re-encodes as
// dst, streaming: no more than one input chunk and its corresponding
// output are ever held in memory at once.
func Transcode(r io.Reader, src, dst *charset.ID) io.Reader {
	return &transcodeReader{r: r, srcDesc: charset.DescriptorFor(src), dstDesc: charset.DescriptorFor(dst)}
}

type transcodeReader struct {
	r       io.Reader
	srcDesc *charset.Descriptor
	dstDesc *charset.Descriptor
	decSt   charset.State
	encSt   charset.State

	in       [4096]byte
	runes    [4096]rune
	out      []byte // pending encoded bytes not yet returned to the caller
	srcEOF   bool
	finished bool
}

func (t *transcodeReader) Read(p []byte) (int, error) {
	for len(t.out) == 0 {
		if t.finished {
			return 0, io.EOF
		}
		if t.srcDesc == nil || t.dstDesc == nil {
			return 0, fmt.Errorf("xcode: unregistered encoding")
		}

		if t.srcEOF {
			buf := make([]byte, 64)
			n, _ := Finish(t.dstDesc, &t.encSt, buf)
			t.out = buf[:n]
			t.finished = true
			continue
		}

		n, err := t.r.Read(t.in[:])
		if n > 0 {
			var decoded []rune
			nr := 0
			for nr < n {
				// Each ToUnicode call starts filling t.runes from index 0, so
				// its produced count must be read off before the next call
				// overwrites the same backing array.
				more, produced := ToUnicode(t.srcDesc, &t.decSt, t.in[nr:n], t.runes[:])
				decoded = append(decoded, t.runes[:produced]...)
				if more == 0 {
					break
				}
				nr += more
			}
			var outBuf []byte
			rem := decoded
			for len(rem) > 0 {
				buf := make([]byte, 4*len(rem)+8)
				consumed, produced, bad := FromUnicode(t.dstDesc, &t.encSt, rem, buf)
				outBuf = append(outBuf, buf[:produced]...)
				rem = rem[consumed:]
				if bad {
					rem = rem[1:] // drop the unrepresentable scalar; no in-band error channel for encode
				}
				if consumed == 0 && !bad {
					break
				}
			}
			t.out = outBuf
		}
		if err == io.EOF {
			t.srcEOF = true
		} else if err != nil {
			return 0, err
		}
	}

	n := copy(p, t.out)
	t.out = t.out[n:]
	return n, nil
}
