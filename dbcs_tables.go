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
	"sort"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// dbcsEntry is one row of a DBCS set's sorted inverse table, analogous to
// sbcsEntry but keyed by a two-byte pair.
type dbcsEntry struct {
	lead, trail byte
	r           rune
}

// dbcsTable holds a two-dimensional lead/trail lookup (spec.md section 9:
// "compact arrays with row offsets or sorted (scalar, code) pairs") plus its
// inverse, built once from an x/text encoding.Encoding via deriveDBCSPair.
type dbcsTable struct {
	byLead  map[byte]*[256]rune // byLead[lead][trail] = rune, or errRune
	inverse []dbcsEntry         // sorted by r
}

// dbcsRange restricts table construction to the lead/trail byte ranges a
// given set actually uses, so init doesn't probe all 65536 combinations
// against every x/text encoder.
type dbcsRange struct {
	leadLo, leadHi   byte
	trailLo, trailHi byte
}

func buildDBCSTable(enc encoding.Encoding, ranges ...dbcsRange) *dbcsTable {
	t := &dbcsTable{byLead: map[byte]*[256]rune{}}
	for _, rg := range ranges {
		for lead := int(rg.leadLo); lead <= int(rg.leadHi); lead++ {
			row, ok := t.byLead[byte(lead)]
			if !ok {
				var fresh [256]rune
				for i := range fresh {
					fresh[i] = errRune
				}
				row = &fresh
				t.byLead[byte(lead)] = row
			}
			for trail := int(rg.trailLo); trail <= int(rg.trailHi); trail++ {
				r := deriveDBCSPair(enc, byte(lead), byte(trail))
				if r == errRune {
					continue
				}
				row[trail] = r
				t.inverse = append(t.inverse, dbcsEntry{byte(lead), byte(trail), r})
			}
		}
	}
	sort.Slice(t.inverse, func(i, j int) bool { return t.inverse[i].r < t.inverse[j].r })
	return t
}

func (t *dbcsTable) decode(lead, trail byte) rune {
	row, ok := t.byLead[lead]
	if !ok {
		return errRune
	}
	return row[trail]
}

func (t *dbcsTable) encode(r rune) (lead, trail byte, ok bool) {
	i := sort.Search(len(t.inverse), func(i int) bool { return t.inverse[i].r >= r })
	if i >= len(t.inverse) || t.inverse[i].r != r {
		return 0, 0, false
	}
	e := t.inverse[i]
	return e.lead, e.trail, true
}

// Table instances, built once at init and reused by every codec that needs
// the same (set, plane) pairing: Shift-JIS and EUC-JP both need JIS X 0208,
// ISO-2022-JP needs it again through the subcharset table.
var (
	tableJISX0208  *dbcsTable // via Shift-JIS form (japanese.ShiftJIS)
	tableJISX0208E *dbcsTable // via EUC-JP form (japanese.EUCJP), same character repertoire
	tableJISX0212  *dbcsTable // JIS X 0212, only reachable through EUC-JP's SS3
	tableKSX1001   *dbcsTable // via EUC-KR (korean.EUCKR)
	tableGB2312    *dbcsTable // via GBK's GB2312-compatible subset (simplifiedchinese.GBK)
	tableBig5      *dbcsTable // traditionalchinese.Big5
	tableCP949     *dbcsTable // approximated by korean.EUCKR's GR/GR range; see DESIGN.md
)

func init() {
	tableJISX0208 = buildDBCSTable(japanese.ShiftJIS, dbcsRange{0x81, 0x9F, 0x40, 0xFC}, dbcsRange{0xE0, 0xFC, 0x40, 0xFC})
	tableJISX0208E = buildDBCSTable(japanese.EUCJP, dbcsRange{0xA1, 0xFE, 0xA1, 0xFE})
	tableJISX0212 = buildDBCSTableSS3(japanese.EUCJP, 0xA1, 0xFE, 0xA1, 0xFE)
	tableKSX1001 = buildDBCSTable(korean.EUCKR, dbcsRange{0xA1, 0xFE, 0xA1, 0xFE})
	tableGB2312 = buildDBCSTable(simplifiedchinese.GBK, dbcsRange{0xA1, 0xF7, 0xA1, 0xFE})
	tableBig5 = buildDBCSTable(traditionalchinese.Big5, dbcsRange{0xA1, 0xFE, 0x40, 0x7E}, dbcsRange{0xA1, 0xFE, 0xA1, 0xFE})
	tableCP949 = buildDBCSTable(korean.EUCKR, dbcsRange{0xA1, 0xFE, 0xA1, 0xFE})
}

// buildDBCSTableSS3 derives JIS X 0212 by decoding through EUC-JP's 3-byte
// SS3 (0x8F lead) form, the only way x/text/encoding/japanese exposes that
// plane, per spec.md section 4.7's EUC SS3 announcer.
func buildDBCSTableSS3(enc encoding.Encoding, leadLo, leadHi, trailLo, trailHi byte) *dbcsTable {
	t := &dbcsTable{byLead: map[byte]*[256]rune{}}
	for lead := int(leadLo); lead <= int(leadHi); lead++ {
		var row [256]rune
		for i := range row {
			row[i] = errRune
		}
		for trail := int(trailLo); trail <= int(trailHi); trail++ {
			out, err := enc.NewDecoder().Bytes([]byte{0x8F, byte(lead), byte(trail)})
			if err != nil || len(out) == 0 {
				continue
			}
			r := []rune(string(out))[0]
			row[trail] = r
			t.inverse = append(t.inverse, dbcsEntry{byte(lead), byte(trail), r})
		}
		t.byLead[byte(lead)] = &row
	}
	sort.Slice(t.inverse, func(i, j int) bool { return t.inverse[i].r < t.inverse[j].r })
	return t
}
