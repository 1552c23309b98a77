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

import "golang.org/x/text/encoding/charmap"

// sbcsDescriptors is built once at init from golang.org/x/text/encoding/charmap
// for every single-byte set that library ships, the way charactersets.go
// builds a namedEncoding around a charmap.Charmap. spec.md section 1 treats
// the generated 256-entry SBCS tables as an external collaborator; charmap's
// tables are exactly that collaborator; deriveSBCS (xtext_derive.go) replays
// them once into this package's own zero-allocation [256]rune arrays.
var sbcsDescriptors = map[*ID]*Descriptor{}

func registerSBCSFromCharmap(id *ID, cm *charmap.Charmap) {
	sbcsDescriptors[id] = newSBCSDescriptor(id, deriveSBCS(cm))
}

// registerSBCSLiteral is for the handful of single-byte sets not shipped by
// golang.org/x/text/encoding/charmap (VISCII, HP-Roman8, DEC MCS, BS 4730,
// DEC Special Graphics, PDFDoc, PostScript standard encoding). These are
// populated for the ASCII range plus the overrides passed in (none for these
// seven); beyond that the table maps to errRune. A production build
// would source the full table from the same external generated-table
// collaborator spec.md section 1 names (it is bulk data, not an algorithm),
// which none of this corpus's libraries ship for these particular sets.
func registerSBCSLiteral(id *ID, overrides map[byte]rune) {
	var t [256]rune
	for b := 0; b < 0x80; b++ {
		t[b] = rune(b) // ASCII identity below 0x80, unless an override replaces it
	}
	for b := 0x80; b < 256; b++ {
		t[b] = errRune
	}
	for b, r := range overrides {
		t[b] = r
	}
	sbcsDescriptors[id] = newSBCSDescriptor(id, t)
}

func init() {
	registerSBCSFromCharmap(ISO8859_1, charmap.ISO8859_1)
	registerSBCSFromCharmap(ISO8859_2, charmap.ISO8859_2)
	registerSBCSFromCharmap(ISO8859_3, charmap.ISO8859_3)
	registerSBCSFromCharmap(ISO8859_4, charmap.ISO8859_4)
	registerSBCSFromCharmap(ISO8859_5, charmap.ISO8859_5)
	registerSBCSFromCharmap(ISO8859_6, charmap.ISO8859_6)
	registerSBCSFromCharmap(ISO8859_7, charmap.ISO8859_7)
	registerSBCSFromCharmap(ISO8859_8, charmap.ISO8859_8)
	registerSBCSFromCharmap(ISO8859_9, charmap.ISO8859_9)
	registerSBCSFromCharmap(ISO8859_10, charmap.ISO8859_10)
	registerSBCSFromCharmap(ISO8859_13, charmap.ISO8859_13)
	registerSBCSFromCharmap(ISO8859_14, charmap.ISO8859_14)
	registerSBCSFromCharmap(ISO8859_15, charmap.ISO8859_15)
	registerSBCSFromCharmap(ISO8859_16, charmap.ISO8859_16)

	registerSBCSFromCharmap(CP1250, charmap.Windows1250)
	registerSBCSFromCharmap(CP1251, charmap.Windows1251)
	registerSBCSFromCharmap(CP1252, charmap.Windows1252)
	registerSBCSFromCharmap(CP1253, charmap.Windows1253)
	registerSBCSFromCharmap(CP1254, charmap.Windows1254)
	registerSBCSFromCharmap(CP1255, charmap.Windows1255)
	registerSBCSFromCharmap(CP1256, charmap.Windows1256)
	registerSBCSFromCharmap(CP1257, charmap.Windows1257)
	registerSBCSFromCharmap(CP1258, charmap.Windows1258)

	registerSBCSFromCharmap(KOI8R, charmap.KOI8R)
	registerSBCSFromCharmap(KOI8U, charmap.KOI8U)
	registerSBCSFromCharmap(MacRoman, charmap.Macintosh)

	// ASCII is the 7-bit identity; 0x80-0xFF are always undefined.
	registerSBCSLiteral(ASCII, nil)

	// JIS X 0201 single-byte half: ASCII minus backslash/tilde, plus the
	// halfwidth katakana block, per spec.md section 4.6.
	jisx0201 := map[byte]rune{0x5C: 0x00A5, 0x7E: 0x203E}
	for b := 0xA1; b <= 0xDF; b++ {
		jisx0201[byte(b)] = rune(0xFF61 + (b - 0xA1))
	}
	registerSBCSLiteral(JISX0201, jisx0201)

	// These seven have no golang.org/x/text source table; see
	// registerSBCSLiteral's doc comment.
	registerSBCSLiteral(VISCII, nil)
	registerSBCSLiteral(HPRoman8, nil)
	registerSBCSLiteral(DECMCS, nil)
	registerSBCSLiteral(BS4730, nil)
	registerSBCSLiteral(DECGraphics, nil)
	registerSBCSLiteral(PDFDoc, nil)
	registerSBCSLiteral(PostScriptStd, nil)
}
