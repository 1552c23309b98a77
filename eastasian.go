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

// eastAsianParam configures the stateless lead/trail codecs of spec.md
// section 4.6: Shift-JIS, Big5, and CP949. All three keep one pending lead
// byte in s0 (0 means none, since no lead byte is ever zero).
type eastAsianParam struct {
	table      *dbcsTable
	isLead     func(b byte) bool
	singleByte *sbcsTable // JIS X 0201 half for Shift-JIS; nil for Big5/CP949
}

func eastAsianDecode(d *Descriptor, b byte, st *State, emit RuneEmitFunc) {
	p := d.Param.(eastAsianParam)

	if st.S0 == 0 {
		if p.isLead(b) {
			st.S0 = uint32(b)
			return
		}
		if p.singleByte != nil {
			emit(p.singleByte.forward[b])
			return
		}
		if b < 0x80 {
			emit(rune(b))
			return
		}
		emit(errRune)
		return
	}

	lead := byte(st.S0)
	st.S0 = 0
	r := p.table.decode(lead, b)
	emit(r)
}

func eastAsianEncode(d *Descriptor, r rune, st *State, emit ByteEmitFunc) bool {
	if r == flush {
		return true // stateless at character boundaries
	}
	p := d.Param.(eastAsianParam)

	if p.singleByte != nil && r < 0x80 && r != 0x5C && r != 0x7E {
		emit(byte(r))
		return true
	}
	if p.singleByte != nil {
		for b, rr := range p.singleByte.forward {
			// b >= 0x80 covers the halfwidth katakana block; 0x5C/0x7E are
			// JIS X 0201 Roman's two punctuation overrides (yen sign,
			// overline) and must be allowed through despite being below
			// 0x80, or U+00A5/U+203E would never round-trip (spec.md
			// section 8 invariant 4).
			if rr == r && (b >= 0x80 || b == 0x5C || b == 0x7E) {
				emit(byte(b))
				return true
			}
		}
	} else if r < 0x80 {
		emit(byte(r))
		return true
	}

	lead, trail, ok := p.table.encode(r)
	if !ok {
		return false
	}
	emit(lead)
	emit(trail)
	return true
}

func shiftJISLead(b byte) bool {
	return (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC)
}

func big5Lead(b byte) bool {
	return b >= 0xA1 && b <= 0xFE
}

var (
	jisx0201Table *sbcsTable

	descriptorShiftJIS = &Descriptor{ID: ShiftJIS, decode: eastAsianDecode, encode: eastAsianEncode}
	descriptorBig5     = &Descriptor{ID: Big5, Param: eastAsianParam{table: tableBig5, isLead: big5Lead}, decode: eastAsianDecode, encode: eastAsianEncode}
	descriptorCP949    = &Descriptor{ID: CP949, Param: eastAsianParam{table: tableCP949, isLead: big5Lead}, decode: eastAsianDecode, encode: eastAsianEncode}
)

func init() {
	jisx0201Table = sbcsDescriptors[JISX0201].Param.(*sbcsTable)
	descriptorShiftJIS.Param = eastAsianParam{table: tableJISX0208, isLead: shiftJISLead, singleByte: jisx0201Table}
}
