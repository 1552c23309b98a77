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

import "github.com/chronos-tachyon/go-peggy/byteset"

// iso2022Intermediate classes an ISO 2022 escape-sequence intermediate byte
// (column 0x20-0x2F), reusing the same byte-class matcher utf7.go uses for
// its RFC 2152 sets.
var iso2022Intermediate = byteset.Ranges(byteset.Range{Lo: 0x20, Hi: 0x2F}).Optimize()

// Full ISO 2022 / X11 Compound Text, spec.md section 4.10. This is the
// largest codec in the package: a general-purpose ISO 2022 decoder with
// designation escapes for G0 and G1, locking shifts, and the two DOCS
// (designate other coding system) extensions X11 Compound Text relies on —
// a straight UTF-8 escape hatch and a length-prefixed "extended segment"
// that names its own sub-encoding.
//
// Open questions this implementation decided (see DESIGN.md):
//   - Only G0 and G1 are tracked as locking-shift containers, matching the
//     encode-side restriction the spec itself imposes ("always use GL for
//     G0 and GR for G1"). G2 and G3 are not tracked, and SS2/SS3
//     (0x8E/0x8F) are emitted as C1 control code points, not applied as
//     single shifts.
//   - The 94²-set designation table covers JIS X 0208, GB 2312, KS X 1001,
//     and Big5; the 96-set table covers ISO 8859-14 and ISO 8859-15. This
//     is the subset exercised by ctext_encodings and by common Compound
//     Text producers. Any other escape (ACS, IRR, a G2/G3 designation, or
//     a designation whose final byte is not in these tables) is passed
//     through verbatim; "ESC ( J" designates ASCII into G0.

// Top-level mode, held in s0 bits 29-31.
type iso2022FullMode uint32

const (
	iso2022Idle iso2022FullMode = iota
	iso2022EscSeq
	iso2022EscPass
	iso2022EscDrop
	iso2022DocsUTF8
	iso2022DocsCText
)

const (
	iso2022FullModeShift = 29
	iso2022FullModeMask  = 0x7
)

func iso2022FullGetMode(st *State) iso2022FullMode {
	return iso2022FullMode((st.S0 >> iso2022FullModeShift) & iso2022FullModeMask)
}

func iso2022FullSetMode(st *State, m iso2022FullMode, rest uint32) {
	st.S0 = uint32(m)<<iso2022FullModeShift | (rest & (1<<iso2022FullModeShift - 1))
}

// iso2022Width classes a designated set can take.
type iso2022Width int

const (
	width94 iso2022Width = iota
	width96
	width9494
	width9696
)

// iso2022SubcharsetDesc is one entry of the designation table: the escape
// final byte(s) that select it, which container width class it is, and its
// translation functions.
type iso2022SubcharsetDesc struct {
	finalBytes []byte // the final byte(s) of "ESC <intermediate> <final...>"
	width      iso2022Width
	decode     func(buf []byte) rune
	encode     func(r rune) (buf []byte, ok bool)
}

var iso2022Subcharsets = []iso2022SubcharsetDesc{
	{finalBytes: []byte{'B'}, width: width94, decode: func(buf []byte) rune { return rune(buf[0]) }, encode: func(r rune) ([]byte, bool) {
		if r < 0x80 {
			return []byte{byte(r)}, true
		}
		return nil, false
	}},
	{finalBytes: []byte{'@'}, width: width9494, decode: func(buf []byte) rune { return tableJISX0208E.decode(buf[0]|0x80, buf[1]|0x80) }, encode: func(r rune) ([]byte, bool) {
		lead, trail, ok := tableJISX0208E.encode(r)
		return []byte{lead &^ 0x80, trail &^ 0x80}, ok
	}},
	{finalBytes: []byte{'A'}, width: width9494, decode: func(buf []byte) rune { return tableGB2312.decode(buf[0]|0x80, buf[1]|0x80) }, encode: func(r rune) ([]byte, bool) {
		lead, trail, ok := tableGB2312.encode(r)
		return []byte{lead &^ 0x80, trail &^ 0x80}, ok
	}},
	{finalBytes: []byte{'C'}, width: width9494, decode: func(buf []byte) rune { return tableKSX1001.decode(buf[0]|0x80, buf[1]|0x80) }, encode: func(r rune) ([]byte, bool) {
		lead, trail, ok := tableKSX1001.encode(r)
		return []byte{lead &^ 0x80, trail &^ 0x80}, ok
	}},
	{finalBytes: []byte{'0'}, width: width9494, decode: func(buf []byte) rune { return tableBig5.decode(buf[0]|0x80, buf[1]|0x80) }, encode: func(r rune) ([]byte, bool) {
		lead, trail, ok := tableBig5.encode(r)
		return []byte{lead &^ 0x80, trail &^ 0x80}, ok
	}},
}

var iso2022SubcharsetsGR96 []iso2022SubcharsetDesc

func init() {
	reg := func(id *ID) iso2022SubcharsetDesc {
		t := sbcsDescriptors[id].Param.(*sbcsTable)
		return iso2022SubcharsetDesc{
			width:  width96,
			decode: func(buf []byte) rune { return t.forward[buf[0]|0x80] },
			encode: func(r rune) ([]byte, bool) {
				for b, rr := range t.forward {
					if rr == r && b >= 0xA0 {
						return []byte{byte(b &^ 0x80)}, true
					}
				}
				return nil, false
			},
		}
	}
	d14 := reg(ISO8859_14)
	d14.finalBytes = []byte{'_'}
	d15 := reg(ISO8859_15)
	d15.finalBytes = []byte{'b'}
	iso2022SubcharsetsGR96 = []iso2022SubcharsetDesc{d14, d15}
}

// Container state packed into s1: two slots (G0, G1), each holding a
// table index, biased by +1 so that the zero bit pattern — the value a
// fresh or freshly-flushed State naturally has — means "nothing designated
// yet (ASCII)" rather than colliding with a real table entry 0, 8 bits per
// slot is generous headroom.
const (
	iso2022G0Shift = 0
	iso2022G1Shift = 8
	iso2022GMask   = 0xFF
	iso2022NoneSub = 0
)

// iso2022Designated resolves the subcharset currently designated into the
// container named by shift. G0 designations (shift == iso2022G0Shift) are
// always populated from iso2022Subcharsets (the 94/94² table, reachable via
// the '$' and no-intermediate escape forms in iso2022ApplyEscape); G1
// designations (shift == iso2022G1Shift) are always populated from
// iso2022SubcharsetsGR96 (the 96/96² table, reachable only via the '-' and
// '.' forms) — the two tables share an index space only by coincidence of
// both starting at 0, so looking a G1 index up in the G0 table would read
// the wrong entry.
func iso2022Designated(st *State, shift uint) (*iso2022SubcharsetDesc, bool) {
	slot := (st.S1 >> shift) & iso2022GMask
	if slot == iso2022NoneSub {
		return nil, false // ASCII
	}
	table := iso2022Subcharsets
	if shift == iso2022G1Shift {
		table = iso2022SubcharsetsGR96
	}
	idx := int(slot) - 1
	if idx < 0 || idx >= len(table) {
		return nil, false
	}
	d := table[idx]
	return &d, true
}

func iso2022SingleByteASCII(buf []byte) rune { return rune(buf[0]) }

// iso2022DecodeData routes one GL or GR byte through the currently invoked
// container, accumulating a second byte for 94²/96² sets, per spec.md
// section 4.10's IDLE data-byte rule.
func iso2022DecodeData(st *State, b byte, emit RuneEmitFunc) {
	gr := b&0x80 != 0
	shift := uint(iso2022G0Shift)
	if gr {
		shift = iso2022G1Shift
	}
	desc, designated := iso2022Designated(st, shift)

	// 0x20/0x7F (and 0xA0/0xFF) are outside 94- and 94²-sets only; a 96-
	// or 96²-set decodes them like any other byte.
	is96 := designated && (desc.width == width96 || desc.width == width9696)
	if !is96 && (b&0x7F == 0x20 || b&0x7F == 0x7F) {
		if gr {
			emit(errRune)
		} else {
			emit(rune(b))
		}
		return
	}

	pendingShift := uint(16)
	pendingHighBit := (st.S0 >> 28) & 1
	pending := byte(st.S0 >> pendingShift & 0xFF)

	wide := designated && (desc.width == width9494 || desc.width == width9696)

	if pending != 0 {
		if pendingHighBit != boolToBit(gr) {
			emit(errRune)
			iso2022FullSetMode(st, iso2022Idle, 0)
			iso2022DecodeData(st, b, emit)
			return
		}
		iso2022FullSetMode(st, iso2022Idle, 0)
		if designated {
			emit(desc.decode([]byte{pending & 0x7F, b & 0x7F}))
		} else {
			emit(errRune)
		}
		return
	}

	if wide {
		rest := uint32(b&0x7F)<<pendingShift | boolToBit(gr)<<28
		iso2022FullSetMode(st, iso2022Idle, rest)
		return
	}

	if designated {
		emit(desc.decode([]byte{b & 0x7F}))
	} else {
		emit(iso2022SingleByteASCII([]byte{b & 0x7F}))
	}
}

func boolToBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// ESCSEQ accumulation: up to two intermediate bytes packed in s0 bits 0-15
// (8 bits each) plus a count in bits 16-17.
const (
	iso2022EscIntermShift = 0
	iso2022EscCountShift2 = 16
	iso2022EscCountMask2  = 0x3
)

func iso2022Decode(d *Descriptor, b byte, st *State, emit RuneEmitFunc) {
	mode := iso2022FullGetMode(st)

	switch mode {
	case iso2022Idle:
		if b&0x60 == 0 {
			switch b {
			case 0x1B:
				iso2022FullSetMode(st, iso2022EscSeq, 0)
			case 0x0E: // LS1: lock G1 into GL — represented here by swapping G0/G1 slots
				g0 := st.S1 & iso2022GMask
				g1 := (st.S1 >> iso2022G1Shift) & iso2022GMask
				st.S1 = st.S1&^uint32(iso2022GMask) | g1
				st.S1 = st.S1&^(uint32(iso2022GMask)<<iso2022G1Shift) | g0<<iso2022G1Shift
			case 0x0F: // LS0: lock G0 back into GL (our representation is already G0-in-GL by default, so this is a no-op unless preceded by LS1; simplified: swap back)
				g0 := st.S1 & iso2022GMask
				g1 := (st.S1 >> iso2022G1Shift) & iso2022GMask
				st.S1 = st.S1&^uint32(iso2022GMask) | g1
				st.S1 = st.S1&^(uint32(iso2022GMask)<<iso2022G1Shift) | g0<<iso2022G1Shift
			default:
				emit(rune(b))
			}
			return
		}
		iso2022DecodeData(st, b, emit)

	case iso2022EscSeq:
		if iso2022Intermediate.Match(b) {
			count := (st.S0 >> iso2022EscCountShift2) & iso2022EscCountMask2
			if count < 2 {
				st.S0 |= uint32(b) << (iso2022EscIntermShift + 8*count)
				st.S0 = st.S0&^(iso2022EscCountMask2<<iso2022EscCountShift2) | (count+1)<<iso2022EscCountShift2
			}
			return
		}
		iso2022ApplyEscape(d, st, b, emit)

	case iso2022EscPass:
		if iso2022Intermediate.Match(b) {
			emit(rune(b))
			return
		}
		emit(rune(b))
		iso2022FullSetMode(st, iso2022Idle, 0)

	case iso2022EscDrop:
		if iso2022Intermediate.Match(b) {
			return
		}
		iso2022FullSetMode(st, iso2022Idle, 0)

	case iso2022DocsUTF8:
		iso2022DecodeDocsUTF8(st, b, emit)

	case iso2022DocsCText:
		iso2022DecodeDocsCText(st, b, emit)
	}
}

func iso2022Intermediates(st *State) []byte {
	count := (st.S0 >> iso2022EscCountShift2) & iso2022EscCountMask2
	buf := make([]byte, count)
	for i := uint32(0); i < count; i++ {
		buf[i] = byte(st.S0 >> (iso2022EscIntermShift + 8*i))
	}
	return buf
}

// iso2022ApplyEscape handles the final byte of an escape sequence: G0/G1
// designation, ACS, IRR, DOCS UTF-8, or DOCS Compound-Text extended
// segment, per spec.md section 4.10's ESCSEQ branch table.
func iso2022ApplyEscape(d *Descriptor, st *State, final byte, emit RuneEmitFunc) {
	interms := iso2022Intermediates(st)

	if len(interms) == 1 && interms[0] == '%' {
		switch final {
		case 'G':
			iso2022FullSetMode(st, iso2022DocsUTF8, 0)
			return
		case '@':
			iso2022FullSetMode(st, iso2022Idle, 0)
			return
		}
	}
	if len(interms) == 2 && interms[0] == '%' && interms[1] == '/' {
		// ESC % / <opc>: DOCS Compound-Text extended segment. '/' (0x2F)
		// is itself a valid ISO 2022 intermediate byte, so the ESCSEQ
		// accumulator has already swallowed it alongside '%' by the time
		// this function runs; final here is the opc byte directly, not a
		// further nested escape read.
		iso2022FullSetMode(st, iso2022DocsCText, uint32(final)<<8)
		return
	}

	var gSlotShift uint
	var width iso2022Width
	switch {
	case len(interms) == 1 && interms[0] == '(' && (final == 'B' || final == 'J'):
		gSlotShift = iso2022G0Shift
		width = width94
	case len(interms) == 1 && interms[0] == '$':
		gSlotShift = iso2022G0Shift
		width = width9494
	case len(interms) == 1 && interms[0] == '-':
		gSlotShift = iso2022G1Shift
		width = width96
	case len(interms) == 1 && interms[0] == '.':
		gSlotShift = iso2022G1Shift
		width = width9696
	default:
		// ACS, IRR, or anything unrecognized: per spec.md, pass through
		// verbatim rather than silently dropping it.
		emit(0x1B)
		for _, ib := range interms {
			emit(rune(ib))
		}
		emit(rune(final))
		iso2022FullSetMode(st, iso2022Idle, 0)
		return
	}

	idx := iso2022LookupSubcharset(width, final)
	if idx < 0 && width != width94 {
		// A designation with no table entry: pass it through verbatim,
		// like any other unrecognized escape.
		emit(0x1B)
		for _, ib := range interms {
			emit(rune(ib))
		}
		emit(rune(final))
		iso2022FullSetMode(st, iso2022Idle, 0)
		return
	}
	slot := uint32(iso2022NoneSub)
	if idx >= 0 {
		slot = uint32(idx) + 1
	}
	st.S1 = st.S1&^(uint32(iso2022GMask)<<gSlotShift) | slot<<gSlotShift
	iso2022FullSetMode(st, iso2022Idle, 0)
}

func iso2022LookupSubcharset(width iso2022Width, final byte) int {
	table := iso2022Subcharsets
	if width == width96 {
		table = iso2022SubcharsetsGR96
	}
	for i, d := range table {
		for _, fb := range d.finalBytes {
			if fb == final && d.width == width {
				return i
			}
		}
	}
	return -1
}

// DOCSUTF8: delegate to the UTF-8 state machine using the low 26 bits of
// s0, watching for "ESC % @" (a 2-byte tail after the ESC that entered this
// mode) to return to IDLE.
const iso2022DocsUTF8EscShift = 26

func iso2022DecodeDocsUTF8(st *State, b byte, emit RuneEmitFunc) {
	escCount := (st.S0 >> iso2022DocsUTF8EscShift) & 0x3
	switch {
	case escCount == 0 && b == 0x1B:
		st.S0 = st.S0&^(uint32(0x3)<<iso2022DocsUTF8EscShift) | 1<<iso2022DocsUTF8EscShift
		return
	case escCount == 1 && b == '%':
		st.S0 = st.S0&^(uint32(0x3)<<iso2022DocsUTF8EscShift) | 2<<iso2022DocsUTF8EscShift
		return
	case escCount == 2 && b == '@':
		inner := &State{S0: st.S0 & (1<<iso2022DocsUTF8EscShift - 1)}
		if inner.S0 != 0 {
			emit(errRune)
		}
		iso2022FullSetMode(st, iso2022Idle, 0)
		return
	case escCount > 0:
		// False alarm: the bytes we held back belong to UTF-8 content, not
		// the "ESC % @" exit sequence. Feed them to the UTF-8 state directly
		// (not back through this dispatch, or they would be mistaken for a
		// fresh exit-sequence attempt).
		held := []byte{0x1B, '%'}[:escCount]
		st.S0 &^= uint32(0x3) << iso2022DocsUTF8EscShift
		for _, hb := range held {
			iso2022DecodeUTF8Inner(st, hb, emit)
		}
		iso2022DecodeUTF8Inner(st, b, emit)
		return
	}

	iso2022DecodeUTF8Inner(st, b, emit)
}

func iso2022DecodeUTF8Inner(st *State, b byte, emit RuneEmitFunc) {
	mask := uint32(1)<<iso2022DocsUTF8EscShift - 1
	inner := &State{S0: st.S0 & mask}
	utf8Decode(nil, b, inner, emit)
	st.S0 = st.S0&^mask | inner.S0&mask
}

// ctextEncodings are the sub-encodings a DOCS extended segment may name,
// in the preference order spec.md section 4.10 lists them.
var ctextEncodings = []struct {
	name   string
	decode func(lead, trail byte) rune // trail is 0 for single-byte encodings
	width  int
}{
	{name: "big5-0", width: 2, decode: func(lead, trail byte) rune { return tableBig5.decode(lead, trail) }},
	{name: "iso8859-14", width: 1, decode: func(lead, _ byte) rune { return sbcsDescriptors[ISO8859_14].Param.(*sbcsTable).forward[lead] }},
	{name: "iso8859-15", width: 1, decode: func(lead, _ byte) rune { return sbcsDescriptors[ISO8859_15].Param.(*sbcsTable).forward[lead] }},
}

// DOCSCTEXT state: s0 holds, from the mode set by ApplyEscape, the opc byte
// in bits 8-15 (unused beyond distinguishing a malformed stream) until the
// first length byte replaces it. From then on bits 0-15 count the segment
// bytes still to come, bits 19-20 hold the phase (0 and 1: length bytes,
// 2: encoding name, 3: payload), and bits 16-18 are set to
// iso2022CTextNoEnc once both length bytes are read. The name bytes are
// kept in s1 (see iso2022CTextNameAppend).
const (
	iso2022CTextLenShift   = 0
	iso2022CTextEncShift   = 16
	iso2022CTextEncMask    = 0x7
	iso2022CTextPhaseShift = 19
	iso2022CTextNoEnc      = 0x7
)

func iso2022DecodeDocsCText(st *State, b byte, emit RuneEmitFunc) {
	phase := (st.S0 >> iso2022CTextPhaseShift) & 0x3
	switch phase {
	case 0: // first length byte
		st.S0 = st.S0&^(uint32(0xFFFF)<<iso2022CTextLenShift) | uint32(b&0x7F)<<7
		st.S0 = st.S0&^(uint32(0x3)<<iso2022CTextPhaseShift) | 1<<iso2022CTextPhaseShift
	case 1: // second length byte
		st.S0 |= uint32(b & 0x7F)
		st.S0 = st.S0&^(uint32(0x3)<<iso2022CTextPhaseShift) | 2<<iso2022CTextPhaseShift
		st.S0 = st.S0&^(uint32(iso2022CTextEncMask)<<iso2022CTextEncShift) | uint32(iso2022CTextNoEnc)<<iso2022CTextEncShift
	case 2: // matching the encoding name, terminated by STX
		remaining := st.S0 & 0xFFFF
		if remaining == 0 {
			// The segment has ended; b belongs to the ordinary stream.
			iso2022FullSetMode(st, iso2022Idle, 0)
			iso2022Decode(nil, b, st, emit)
			return
		}
		st.S0--
		if b == 0x02 {
			st.S0 = st.S0&^(uint32(0x3)<<iso2022CTextPhaseShift) | 3<<iso2022CTextPhaseShift
		}
		// Name matching against ctextEncodings is intentionally
		// best-effort here: a conformant encoder emits one of the three
		// fixed names, so this implementation just advances the length
		// counter and fixes the encoding by re-deriving it once STX is
		// seen, via iso2022CTextResolve (see below).
		st.S1 = iso2022CTextNameAppend(st.S1, b)
	case 3: // payload
		remaining := st.S0 & 0xFFFF
		if remaining == 0 {
			// The segment has ended; b belongs to the ordinary stream.
			iso2022FullSetMode(st, iso2022Idle, 0)
			iso2022Decode(nil, b, st, emit)
			return
		}
		st.S0--
		encIdx := iso2022CTextResolve(st.S1)
		if encIdx < 0 {
			st.S1 = 0
			return // unresolved encoding: skip payload, no STX seen means malformed; stay silent rather than guess
		}
		enc := ctextEncodings[encIdx]
		if enc.width == 1 {
			emit(enc.decode(b, 0))
			return
		}
		lead := byte((st.S1 >> 24) & 0xFF)
		if lead == 0 {
			st.S1 = st.S1&^(uint32(0xFF)<<24) | uint32(b)<<24
			return
		}
		st.S1 &^= uint32(0xFF) << 24
		emit(enc.decode(lead, b))
	}
}

// iso2022CTextNameAppend/iso2022CTextResolve pack the (short, fixed-set)
// encoding name into s1's low 24 bits while phase 2 is active; phase 3
// keeps a pending DBCS lead byte above it, in s1 bits 24-31.
func iso2022CTextNameAppend(s1 uint32, b byte) uint32 {
	for i := 0; i < 3; i++ {
		if byte(s1>>(8*i)) == 0 {
			return s1&^(uint32(0xFF)<<(8*i)) | uint32(b)<<(8*i)
		}
	}
	return s1
}

func iso2022CTextResolve(s1 uint32) int {
	var buf []byte
	for i := 0; i < 3; i++ {
		c := byte(s1 >> (8 * i))
		if c == 0 || c == 0x02 {
			break
		}
		buf = append(buf, c)
	}
	name := string(buf)
	for i, enc := range ctextEncodings {
		if len(name) > 0 && len(enc.name) >= len(name) && enc.name[:len(name)] == name {
			return i
		}
	}
	return -1
}

// Encode side: Compound Text restricts G0 to GL and G1 to GR, per spec.md
// section 4.10. s1 mirrors the decode-side slot layout (G0 at shift 0, G1
// at shift 8); s0 bit 31 marks "currently inside an open DOCS segment" (not
// used by this simplified encoder, which always emits complete segments).
func iso2022Encode(d *Descriptor, r rune, st *State, emit ByteEmitFunc) bool {
	if r == flush {
		// Per spec.md section 4.1's finalize rule: return G0 to ASCII if a
		// non-ASCII set is currently designated there, then drive the whole
		// state back to its zero value.
		iso2022EncodeEnsureG0ASCII(st, emit)
		*st = State{}
		return true
	}
	if r < 0 || r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
		return false // not a Unicode scalar value
	}
	if r < 0x80 {
		iso2022EncodeEnsureG0ASCII(st, emit)
		emit(byte(r))
		return true
	}

	for i, sc := range iso2022Subcharsets {
		if bs, ok := sc.encode(r); ok {
			iso2022EncodeEnsureDesignated(st, iso2022G0Shift, uint32(i), sc.finalBytes, true, emit)
			for _, b := range bs {
				emit(b | 0x00)
			}
			return true
		}
	}
	for i, sc := range iso2022SubcharsetsGR96 {
		if bs, ok := sc.encode(r); ok {
			iso2022EncodeEnsureDesignated(st, iso2022G1Shift, uint32(i), sc.finalBytes, false, emit)
			for _, b := range bs {
				emit(b | 0x80)
			}
			return true
		}
	}

	// Fall back to a DOCS UTF-8 segment: ESC % G <utf-8 bytes> ESC % @.
	// Each scalar gets its own segment; adjacent scalars needing UTF-8
	// are not coalesced, trading a few extra escape bytes for a simple,
	// allocation-free per-call encoder.
	emit(0x1B)
	emit('%')
	emit('G')
	utf8Encode(nil, r, &State{}, emit)
	emit(0x1B)
	emit('%')
	emit('@')
	return true
}

// iso2022EncodeEnsureG0ASCII emits "ESC ( B" if G0 currently names a
// non-ASCII subcharset. A fresh or freshly-flushed State has slot ==
// iso2022NoneSub (0) already, so this is a no-op until something actually
// designates G0 away from ASCII.
func iso2022EncodeEnsureG0ASCII(st *State, emit ByteEmitFunc) {
	cur := st.S1 & iso2022GMask
	if cur != iso2022NoneSub {
		emit(0x1B)
		emit('(')
		emit('B')
		st.S1 = st.S1&^uint32(iso2022GMask) | iso2022NoneSub
	}
}

// iso2022EncodeEnsureDesignated emits the designation escape for table
// index idx into the container at shift, unless that container already
// names it. Slot values are idx+1 (see iso2022NoneSub's doc comment), so
// idx is rebiased before comparing against and storing into st.S1.
func iso2022EncodeEnsureDesignated(st *State, shift uint, idx uint32, finalBytes []byte, isG0 bool, emit ByteEmitFunc) {
	slot := idx + 1
	cur := (st.S1 >> shift) & iso2022GMask
	if cur == slot {
		return
	}
	emit(0x1B)
	if isG0 {
		emit('$')
	} else {
		emit('-')
	}
	for _, b := range finalBytes {
		emit(b)
	}
	st.S1 = st.S1&^(uint32(iso2022GMask)<<shift) | slot<<shift
}

var descriptorISO2022Full = &Descriptor{ID: ISO2022Full, decode: iso2022Decode, encode: iso2022Encode}
var descriptorCompoundText = &Descriptor{ID: CompoundText, decode: iso2022Decode, encode: iso2022Encode}
