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

// utf16Order selects which of the three UTF-16 variants a Descriptor.Param
// carries: fixed big-endian, fixed little-endian, or auto-detect by BOM.
type utf16Order int

const (
	utf16BE utf16Order = iota
	utf16LE
	utf16Auto
)

// UTF-16 decode state, per spec.md section 3:
//   s1: halfword pairing state — bit 16 set means a first byte of the
//       current halfword is pending, held in bits 0-7.
//   s0: bits 0-15 hold a pending high surrogate (0 = none, since a real high
//       surrogate is never zero); bit 16 is "byte order decided" (only used
//       by the auto variant); bit 17, valid only once bit 16 is set, is
//       "decided order is little-endian". Per spec.md's bit layout note,
//       this collapses the original's two independent "BE still possible" /
//       "LE still possible" flags into a single decided-order bit, because
//       this implementation commits to a decision atomically once the first
//       full halfword is assembled rather than narrowing byte-by-byte; the
//       observable semantics (BOM swallowed, otherwise BE default) are the
//       same either way.
const (
	utf16PendingByteFlag = 1 << 16

	utf16HighSurrogateMask = 0xFFFF
	utf16OrderDecidedFlag  = 1 << 16
	utf16DecidedLEFlag     = 1 << 17
)

func utf16Decode(d *Descriptor, b byte, st *State, emit RuneEmitFunc) {
	if st.S1&utf16PendingByteFlag == 0 {
		st.S1 = utf16PendingByteFlag | uint32(b)
		return
	}

	first := byte(st.S1 & 0xFF)
	st.S1 = 0
	second := b

	order := d.Param.(utf16Order)
	decided := st.S0&utf16OrderDecidedFlag != 0

	var half uint16
	switch {
	case order == utf16BE:
		half = uint16(first)<<8 | uint16(second)
	case order == utf16LE:
		half = uint16(second)<<8 | uint16(first)
	case !decided:
		// Auto-detect: the very first halfword decides the order.
		switch {
		case first == 0xFE && second == 0xFF:
			st.S0 |= utf16OrderDecidedFlag
			return // BE BOM consumed, nothing emitted
		case first == 0xFF && second == 0xFE:
			st.S0 |= utf16OrderDecidedFlag | utf16DecidedLEFlag
			return // LE BOM consumed, nothing emitted
		default:
			st.S0 |= utf16OrderDecidedFlag
			half = uint16(first)<<8 | uint16(second) // default to BE, emitted below
		}
	case st.S0&utf16DecidedLEFlag != 0:
		half = uint16(second)<<8 | uint16(first)
	default:
		half = uint16(first)<<8 | uint16(second)
	}

	held := rune(st.S0 & utf16HighSurrogateMask)
	newHeld := stepSurrogate(held, half, emit)
	st.S0 = st.S0&^utf16HighSurrogateMask | uint32(newHeld)
}

// UTF-16 encode state: bit 0 is "BOM already written" (auto variant only).
const utf16BOMWrittenFlag = 1

func utf16Encode(d *Descriptor, r rune, st *State, emit ByteEmitFunc) bool {
	order := d.Param.(utf16Order)

	if r == flush {
		st.S0 = 0
		return true // stateless beyond the one-shot leading BOM
	}
	if r < 0 || r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
		return false
	}

	writeHalf := func(h uint16) {
		if order == utf16LE {
			emit(byte(h))
			emit(byte(h >> 8))
		} else {
			emit(byte(h >> 8))
			emit(byte(h))
		}
	}

	if order == utf16Auto && st.S0&utf16BOMWrittenFlag == 0 {
		writeHalf(0xFEFF) // big-endian order preferred when both are allowed
		st.S0 |= utf16BOMWrittenFlag
	}

	if r < 0x10000 {
		writeHalf(uint16(r))
		return true
	}

	r -= 0x10000
	writeHalf(uint16(0xD800 + (r >> 10)))
	writeHalf(uint16(0xDC00 + (r & 0x3FF)))
	return true
}

var (
	descriptorUTF16   = &Descriptor{ID: UTF16, Param: utf16Auto, decode: utf16Decode, encode: utf16Encode}
	descriptorUTF16BE = &Descriptor{ID: UTF16BE, Param: utf16BE, decode: utf16Decode, encode: utf16Encode}
	descriptorUTF16LE = &Descriptor{ID: UTF16LE, Param: utf16LE, decode: utf16Decode, encode: utf16Encode}
)
