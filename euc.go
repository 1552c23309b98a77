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

// eucAnnouncer names which of the three sub-sets an EUC character belongs
// to, per spec.md section 3's "announcer type 1/2/3 = GR/SS2/SS3".
type eucAnnouncer int

const (
	eucGR eucAnnouncer = iota + 1
	eucSS2
	eucSS3
)

// eucVariant is the Param for every EUC Descriptor: how many bytes follow
// each announcer, and how to turn the accumulated bytes into a scalar (or
// back), per spec.md section 4.7.
type eucVariant struct {
	grLen, ss2Len, ss3Len int
	decodeGR              func(buf []byte) rune
	decodeSS2             func(buf []byte) rune
	decodeSS3             func(buf []byte) rune
	encodeGR              func(r rune) ([]byte, bool)
	encodeSS2             func(r rune) ([]byte, bool)
	encodeSS3             func(r rune) ([]byte, bool)
}

// EUC decode state, per spec.md section 3:
//   bits 0-23: accumulated bytes, one per byte lane
//   bits 24-26: count of bytes accumulated so far
//   bits 27-28: announcer type (0 = idle, else eucAnnouncer)
const (
	eucBufShift   = 0
	eucCountShift = 24
	eucCountMask  = 0x7
	eucModeShift  = 27
	eucModeMask   = 0x3
)

func eucPushByte(st *State, b byte) {
	count := (st.S0 >> eucCountShift) & eucCountMask
	st.S0 = st.S0&^(uint32(0xFF)<<(8*count)) | uint32(b)<<(8*count)
	st.S0 = st.S0&^(eucCountMask<<eucCountShift) | (count+1)<<eucCountShift
}

func eucBuf(st *State, n int) []byte {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = byte(st.S0 >> (8 * i))
	}
	return buf
}

func eucDecode(d *Descriptor, b byte, st *State, emit RuneEmitFunc) {
	v := d.Param.(eucVariant)
	mode := eucAnnouncer((st.S0 >> eucModeShift) & eucModeMask)

	if mode == 0 {
		switch {
		case b < 0x80:
			emit(rune(b))
		case b == 0x8E && v.ss2Len > 0:
			st.S0 = uint32(eucSS2) << eucModeShift
		case b == 0x8F && v.ss3Len > 0:
			st.S0 = uint32(eucSS3) << eucModeShift
		case b >= 0xA1 && b <= 0xFE:
			st.S0 = uint32(eucGR) << eucModeShift
			eucPushByte(st, b)
			if v.grLen == 1 {
				eucFinish(st, v, eucGR, emit)
			}
		default:
			emit(errRune)
		}
		return
	}

	eucPushByte(st, b)
	need := eucNeed(v, mode)
	count := int((st.S0 >> eucCountShift) & eucCountMask)
	if count >= need {
		eucFinish(st, v, mode, emit)
	}
}

func eucNeed(v eucVariant, mode eucAnnouncer) int {
	switch mode {
	case eucSS2:
		return v.ss2Len
	case eucSS3:
		return v.ss3Len
	default:
		return v.grLen
	}
}

func eucFinish(st *State, v eucVariant, mode eucAnnouncer, emit RuneEmitFunc) {
	need := eucNeed(v, mode)
	buf := eucBuf(st, need)
	st.S0 = 0

	var r rune
	switch mode {
	case eucSS2:
		r = v.decodeSS2(buf)
	case eucSS3:
		r = v.decodeSS3(buf)
	default:
		r = v.decodeGR(buf)
	}
	emit(r)
}

func eucEncode(d *Descriptor, r rune, st *State, emit ByteEmitFunc) bool {
	if r == flush {
		return true // stateless at character boundaries
	}
	v := d.Param.(eucVariant)

	if r < 0x80 {
		emit(byte(r))
		return true
	}
	if bs, ok := v.encodeGR(r); ok {
		for _, b := range bs {
			emit(b)
		}
		return true
	}
	if v.encodeSS2 != nil {
		if bs, ok := v.encodeSS2(r); ok {
			emit(0x8E)
			for _, b := range bs {
				emit(b)
			}
			return true
		}
	}
	if v.encodeSS3 != nil {
		if bs, ok := v.encodeSS3(r); ok {
			emit(0x8F)
			for _, b := range bs {
				emit(b)
			}
			return true
		}
	}
	return false
}

func pairTable(t *dbcsTable) (func([]byte) rune, func(rune) ([]byte, bool)) {
	decode := func(buf []byte) rune { return t.decode(buf[0], buf[1]) }
	encode := func(r rune) ([]byte, bool) {
		lead, trail, ok := t.encode(r)
		return []byte{lead, trail}, ok
	}
	return decode, encode
}

var (
	descriptorEUCJP *Descriptor
	descriptorEUCCN *Descriptor
	descriptorEUCKR *Descriptor
	descriptorEUCTW *Descriptor
)

func init() {
	jpGRDecode, jpGREncode := pairTable(tableJISX0208E)
	jpSS3Decode, jpSS3Encode := pairTable(tableJISX0212)
	jpSS2Decode := func(buf []byte) rune { return jisx0201Table.forward[buf[0]|0x80] }
	jpSS2Encode := func(r rune) ([]byte, bool) {
		for b := 0xA1; b <= 0xDF; b++ {
			if jisx0201Table.forward[b] == r {
				return []byte{byte(b &^ 0x80)}, true
			}
		}
		return nil, false
	}

	descriptorEUCJP = &Descriptor{ID: EUCJP, decode: eucDecode, encode: eucEncode, Param: eucVariant{
		grLen: 2, ss2Len: 1, ss3Len: 2,
		decodeGR: jpGRDecode, decodeSS2: jpSS2Decode, decodeSS3: jpSS3Decode,
		encodeGR: jpGREncode, encodeSS2: jpSS2Encode, encodeSS3: jpSS3Encode,
	}}

	cnGRDecode, cnGREncode := pairTable(tableGB2312)
	descriptorEUCCN = &Descriptor{ID: EUCCN, decode: eucDecode, encode: eucEncode, Param: eucVariant{
		grLen: 2, decodeGR: cnGRDecode, encodeGR: cnGREncode,
	}}

	krGRDecode, krGREncode := pairTable(tableKSX1001)
	descriptorEUCKR = &Descriptor{ID: EUCKR, decode: eucDecode, encode: eucEncode, Param: eucVariant{
		grLen: 2, decodeGR: krGRDecode, encodeGR: krGREncode,
	}}

	// EUC-TW: GR bytes without a preceding SS2 name CNS 11643 plane 1; SS2
	// carries an explicit plane byte then row/column. x/text ships no CNS
	// 11643 table, so plane 1 is approximated by traditionalchinese.Big5's
	// repertoire (documented limitation, DESIGN.md); planes selected
	// explicitly via SS2 beyond plane 1 have no source table and decode to
	// errRune / fail to encode.
	twGRDecode, twGREncode := pairTable(tableBig5)
	descriptorEUCTW = &Descriptor{ID: EUCTW, decode: eucDecode, encode: eucEncode, Param: eucVariant{
		grLen: 2, ss2Len: 3,
		decodeGR: twGRDecode,
		decodeSS2: func(buf []byte) rune {
			if buf[0] != 0x01 { // only plane 1 has a source table
				return errRune
			}
			return tableBig5.decode(buf[1], buf[2])
		},
		encodeGR: twGREncode,
		encodeSS2: func(r rune) ([]byte, bool) {
			lead, trail, ok := tableBig5.encode(r)
			if !ok {
				return nil, false
			}
			return []byte{0x01, lead, trail}, true
		},
	}}
}
