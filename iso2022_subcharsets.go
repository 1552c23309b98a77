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

// ISO-2022-JP (RFC 1468): G0 toggles between ASCII, JIS X 0201-1976 Roman,
// JIS X 0208 (1978 and 1983 both map to the same table), and — as a common
// extension — JIS X 0212. sub-charset index lives in s1 bits 0-1.
const (
	iso2022jpASCII = iota
	iso2022jpRoman
	iso2022jpJIS0208
	iso2022jpJIS0212
)

func iso2022jpDecodeFunc(sub int, buf []byte) rune {
	switch sub {
	case iso2022jpASCII:
		return rune(buf[0])
	case iso2022jpRoman:
		switch buf[0] {
		case 0x5C:
			return 0x00A5
		case 0x7E:
			return 0x203E
		default:
			return rune(buf[0])
		}
	case iso2022jpJIS0208:
		return tableJISX0208E.decode(buf[0]|0x80, buf[1]|0x80)
	default:
		return tableJISX0212.decode(buf[0]|0x80, buf[1]|0x80)
	}
}

func iso2022jpEncodeFunc(r rune) (sub int, buf []byte, ok bool) {
	switch {
	case r == 0x00A5:
		return iso2022jpRoman, []byte{0x5C}, true
	case r == 0x203E:
		return iso2022jpRoman, []byte{0x7E}, true
	case r < 0x80:
		return iso2022jpASCII, []byte{byte(r)}, true
	}
	if lead, trail, ok := tableJISX0208E.encode(r); ok {
		return iso2022jpJIS0208, []byte{lead &^ 0x80, trail &^ 0x80}, true
	}
	if lead, trail, ok := tableJISX0212.encode(r); ok {
		return iso2022jpJIS0212, []byte{lead &^ 0x80, trail &^ 0x80}, true
	}
	return 0, nil, false
}

var iso2022jpParam = iso2022Subset{
	escapes: []iso2022Escape{
		{seq: []byte{0x1B, '(', 'B'}, andMask: ^uint32(0x3), xorMask: iso2022jpASCII, switchable: true},
		{seq: []byte{0x1B, '(', 'J'}, andMask: ^uint32(0x3), xorMask: iso2022jpRoman, switchable: true},
		{seq: []byte{0x1B, '$', '@'}, andMask: ^uint32(0x3), xorMask: iso2022jpJIS0208}, // 1978 form: decodable, but encode always emits the 1983 form below
		{seq: []byte{0x1B, '$', 'B'}, andMask: ^uint32(0x3), xorMask: iso2022jpJIS0208, switchable: true},
		{seq: []byte{0x1B, '$', '(', 'D'}, andMask: ^uint32(0x3), xorMask: iso2022jpJIS0212, switchable: true},
	},
	bytesPerChar:    [4]int{1, 1, 2, 2},
	finalizeEscapes: []int{0},
	decodeFunc:      iso2022jpDecodeFunc,
	encodeFunc:      iso2022jpEncodeFunc,
}

// ISO-2022-KR (RFC 1557): a single ESC $ ) C designates KSX1001 into G1 once
// (usually as the very first bytes of the stream); SO/SI then toggle which
// of G0 (ASCII) or G1 (KSX1001) is invoked into GL.
const (
	iso2022krASCII = iota
	iso2022krKSX1001
)

func iso2022krDecodeFunc(sub int, buf []byte) rune {
	if sub == iso2022krASCII {
		return rune(buf[0])
	}
	return tableKSX1001.decode(buf[0]|0x80, buf[1]|0x80)
}

func iso2022krEncodeFunc(r rune) (sub int, buf []byte, ok bool) {
	if r < 0x80 {
		return iso2022krASCII, []byte{byte(r)}, true
	}
	if lead, trail, ok := tableKSX1001.encode(r); ok {
		return iso2022krKSX1001, []byte{lead &^ 0x80, trail &^ 0x80}, true
	}
	return 0, nil, false
}

var iso2022krParam = iso2022Subset{
	escapes: []iso2022Escape{
		{seq: []byte{0x1B, '$', ')', 'C'}, andMask: ^uint32(0), xorMask: 0}, // designates G1, no sub change, not used for switching
		{seq: []byte{0x0E}, andMask: ^uint32(0x3), xorMask: iso2022krKSX1001, switchable: true},
		{seq: []byte{0x0F}, andMask: ^uint32(0x3), xorMask: iso2022krASCII, switchable: true},
	},
	bytesPerChar:    [4]int{1, 2, 0, 0},
	finalizeEscapes: []int{2},
	initialSeq:      []byte{0x1B, '$', ')', 'C'},
	decodeFunc:      iso2022krDecodeFunc,
	encodeFunc:      iso2022krEncodeFunc,
}

var (
	descriptorISO2022JP = &Descriptor{ID: ISO2022JP, Param: iso2022jpParam, decode: iso2022SubsetDecode, encode: iso2022SubsetEncode}
	descriptorISO2022KR = &Descriptor{ID: ISO2022KR, Param: iso2022krParam, decode: iso2022SubsetDecode, encode: iso2022SubsetEncode}
)
