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
	"math/bits"

	"github.com/chronos-tachyon/go-peggy/byteset"
)

func exactly(bs string) byteset.Matcher {
	ms := make([]byteset.Matcher, len(bs))
	for i := 0; i < len(bs); i++ {
		ms[i] = byteset.Exactly(bs[i])
	}
	return byteset.Or(ms...)
}

// setD is RFC 2152's Set D, the characters that are always encoded directly:
// letters, digits, and "'(),-./:?".
var setD = byteset.Or(
	byteset.Ranges(byteset.Range{Lo: 'A', Hi: 'Z'}, byteset.Range{Lo: 'a', Hi: 'z'}, byteset.Range{Lo: '0', Hi: '9'}),
	exactly(`'(),-./:?`),
).Optimize()

// setWhite is RFC 2152's whitespace that is always direct regardless of
// variant: space, tab, CR, LF.
var setWhite = exactly(" \t\r\n").Optimize()

// setO is RFC 2152's Set O, the "optional direct characters" — encoded
// directly by the regular variant, base64-encoded by the conservative one.
var setO = exactly(`!"#$%&*;<=>@[]^_` + "`" + `{|}`).Optimize()

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var base64Value [256]int8

func init() {
	for i := range base64Value {
		base64Value[i] = -1
	}
	for i := 0; i < len(base64Alphabet); i++ {
		base64Value[base64Alphabet[i]] = int8(i)
	}
}

// utf7Variant selects whether Set O is encoded directly (the default) or
// conservatively pushed through base64 along with everything else outside
// Set D, per spec.md section 4.5.
type utf7Variant struct {
	conservative bool
}

// UTF-7 decode state, per spec.md section 3:
//   s0 == 0: ASCII mode.
//   s0 != 0: base64 mode; low bits hold the pending, not-yet-emitted base64
//            bits with a leading 1 bit prepended so leading zero bits are not
//            lost (bits.Len32(s0)-1 gives the pending bit count). s0 == 2
//            is this implementation's "just saw +" sentinel; it can never
//            be a real accumulator value, since the pending bit count is
//            always even. The first base64 character turns it into s0 == 1
//            (the marker with zero pending bits) before accumulating.
//   s1: a pending high surrogate carried across base64 halfword boundaries,
//       shared with the UTF-16 reassembly rules (surrogate.go).
func utf7Decode(d *Descriptor, b byte, st *State, emit RuneEmitFunc) {
	if st.S0 == 0 {
		if b == '+' {
			st.S0 = 2
			return
		}
		emit(rune(b))
		return
	}

	if st.S0 == 2 && b == '-' {
		emit('+')
		st.S0 = 0
		return
	}

	v := base64Value[b]
	if v < 0 {
		st.S0 = 0
		if b != '-' {
			emit(rune(b))
		}
		return
	}
	if st.S0 == 2 {
		st.S0 = 1 // first base64 character: no pending bits yet
	}

	pendingBits := bits.Len32(st.S0) - 1
	pendingVal := st.S0 &^ (1 << pendingBits)
	acc := pendingVal<<6 | uint32(v)
	accBits := pendingBits + 6

	for accBits >= 16 {
		accBits -= 16
		half := uint16(acc >> accBits)
		held := rune(st.S1)
		st.S1 = uint32(stepSurrogate(held, half, emit))
		acc &^= ^uint32(0) << accBits // keep only the low accBits bits
	}

	st.S0 = 1<<accBits | acc
}

func utf7Encode(d *Descriptor, r rune, st *State, emit ByteEmitFunc) bool {
	variant := d.Param.(utf7Variant)
	inBase64 := st.S0 != 0

	if r == flush {
		if inBase64 {
			utf7FlushBase64(st, emit)
		}
		st.S0 = 0
		return true
	}
	if r < 0 || r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
		return false
	}

	if r < 0x80 && byte(r) == '+' {
		if inBase64 {
			utf7FlushBase64(st, emit)
		}
		emit('+')
		emit('-')
		return true
	}

	direct := r < 0x80 && (setD.Match(byte(r)) || setWhite.Match(byte(r)) || (!variant.conservative && setO.Match(byte(r))))
	if direct {
		if inBase64 {
			utf7FlushBase64(st, emit)
		}
		emit(byte(r))
		return true
	}

	if !inBase64 {
		emit('+')
		st.S0 = 1
	}

	var halves []uint16
	if r < 0x10000 {
		halves = []uint16{uint16(r)}
	} else {
		rr := r - 0x10000
		halves = []uint16{uint16(0xD800 + (rr >> 10)), uint16(0xDC00 + (rr & 0x3FF))}
	}

	for _, h := range halves {
		pendingBits := bits.Len32(st.S0) - 1
		pendingVal := st.S0 &^ (1 << pendingBits)
		acc := pendingVal<<16 | uint32(h)
		accBits := pendingBits + 16

		for accBits >= 6 {
			accBits -= 6
			emit(base64Alphabet[(acc>>accBits)&0x3F])
		}
		st.S0 = 1<<accBits | (acc &^ (^uint32(0) << accBits))
	}

	return true
}

// utf7FlushBase64 emits any partial 6-bit group (zero-padded) and the
// closing '-', then leaves st in ASCII mode, per spec.md section 4.1's
// finalize rule for UTF-7. Every caller is about to emit a character or
// terminator that belongs outside base64 mode, so st.S0's accumulator and
// any surrogate half carried in st.S1 are cleared here rather than at each
// call site.
func utf7FlushBase64(st *State, emit ByteEmitFunc) {
	pendingBits := bits.Len32(st.S0) - 1
	if pendingBits > 0 {
		pendingVal := st.S0 &^ (1 << pendingBits)
		emit(base64Alphabet[pendingVal<<(6-pendingBits)&0x3F])
	}
	emit('-')
	st.S0 = 0
	st.S1 = 0
}

var (
	descriptorUTF7             = &Descriptor{ID: UTF7, Param: utf7Variant{conservative: false}, decode: utf7Decode, encode: utf7Encode}
	descriptorUTF7Conservative = &Descriptor{ID: UTF7Conservative, Param: utf7Variant{conservative: true}, decode: utf7Decode, encode: utf7Encode}
)
