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

import "fmt"

// family groups encodings that share a decode/encode implementation, the way
// vrType groups DICOM value representations by wire shape.
type family int

const (
	familySBCS family = iota
	familyUTF8
	familyUTF16
	familyUTF7
	familyEastAsian
	familyEUC
	familyHZ
	familyISO2022Subset
	familyISO2022Full
	familyNone
)

// ID names one supported encoding. IDs are pointer-identity values: comparing
// two *ID with == is the closed-enumeration equality spec.md requires. The
// zero value of *ID never appears in idLookupMap; use None for "no encoding".
type ID struct {
	// Name is the canonical internal name for this encoding, used as the key
	// for the "local" lookup namespace.
	Name string

	family family
}

func (id *ID) String() string {
	if id == nil {
		return "<nil>"
	}
	return id.Name
}

var (
	idLookupMap  = map[string]*ID{}
	idEnumerable []*ID
)

// newID constructs an ID, registers it for lookupIDByName, and appends it to
// the enumeration order. Aliases do not go through newID; alias registers an
// extra name for an existing ID without adding it to the enumeration. This
// mirrors vr.go's newVR: construction and registration are the
// same side-effecting call so every ID value is reachable by name without a
// separate init-time registration pass.
func newID(name string, f family) *ID {
	id := &ID{Name: name, family: f}
	idLookupMap[name] = id
	idEnumerable = append(idEnumerable, id)
	return id
}

// alias registers an additional local name for an existing ID without adding
// a second enumeration entry (spec.md: "some encoding_ids are omitted from
// enumeration as duplicates/aliases").
func alias(name string, id *ID) *ID {
	idLookupMap[name] = id
	return id
}

func lookupIDByName(name string) (*ID, error) {
	id, ok := idLookupMap[name]
	if !ok {
		return nil, fmt.Errorf("unknown encoding name: %v", name)
	}
	return id, nil
}

// The closed enumeration of named encodings, per spec.md section 3.
var (
	None = newID("none", familyNone)

	ASCII = newID("us-ascii", familySBCS)

	ISO8859_1  = newID("iso-8859-1", familySBCS)
	ISO8859_2  = newID("iso-8859-2", familySBCS)
	ISO8859_3  = newID("iso-8859-3", familySBCS)
	ISO8859_4  = newID("iso-8859-4", familySBCS)
	ISO8859_5  = newID("iso-8859-5", familySBCS)
	ISO8859_6  = newID("iso-8859-6", familySBCS)
	ISO8859_7  = newID("iso-8859-7", familySBCS)
	ISO8859_8  = newID("iso-8859-8", familySBCS)
	ISO8859_9  = newID("iso-8859-9", familySBCS)
	ISO8859_10 = newID("iso-8859-10", familySBCS)
	ISO8859_13 = newID("iso-8859-13", familySBCS)
	ISO8859_14 = newID("iso-8859-14", familySBCS)
	ISO8859_15 = newID("iso-8859-15", familySBCS)
	ISO8859_16 = newID("iso-8859-16", familySBCS)

	CP1250 = newID("windows-1250", familySBCS)
	CP1251 = newID("windows-1251", familySBCS)
	CP1252 = newID("windows-1252", familySBCS)
	CP1253 = newID("windows-1253", familySBCS)
	CP1254 = newID("windows-1254", familySBCS)
	CP1255 = newID("windows-1255", familySBCS)
	CP1256 = newID("windows-1256", familySBCS)
	CP1257 = newID("windows-1257", familySBCS)
	CP1258 = newID("windows-1258", familySBCS)

	KOI8R = newID("koi8-r", familySBCS)
	KOI8U = newID("koi8-u", familySBCS)

	MacRoman   = newID("macintosh", familySBCS)
	JISX0201   = newID("jis-x0201", familySBCS)
	VISCII     = newID("viscii", familySBCS)
	HPRoman8   = newID("hp-roman8", familySBCS)
	DECMCS     = newID("dec-mcs", familySBCS)
	BS4730     = newID("bs-4730", familySBCS)
	DECGraphics = newID("dec-graphics", familySBCS)
	PDFDoc     = newID("pdfdoc", familySBCS)
	PostScriptStd = newID("postscript-std", familySBCS)

	UTF8 = newID("utf-8", familyUTF8)

	UTF16   = newID("utf-16", familyUTF16)
	UTF16BE = newID("utf-16be", familyUTF16)
	UTF16LE = newID("utf-16le", familyUTF16)

	UTF7             = newID("utf-7", familyUTF7)
	UTF7Conservative = newID("utf-7-conservative", familyUTF7)

	EUCJP = newID("euc-jp", familyEUC)
	EUCCN = newID("euc-cn", familyEUC)
	EUCKR = newID("euc-kr", familyEUC)
	EUCTW = newID("euc-tw", familyEUC)

	ISO2022JP = newID("iso-2022-jp", familyISO2022Subset)
	ISO2022KR = newID("iso-2022-kr", familyISO2022Subset)

	Big5     = newID("big5", familyEastAsian)
	ShiftJIS = newID("shift-jis", familyEastAsian)
	CP949    = newID("cp949", familyEastAsian)

	HZGB2312 = newID("hz-gb-2312", familyHZ)

	CompoundText = newID("compound-text", familyISO2022Full)
	ISO2022Full  = newID("iso-2022", familyISO2022Full)
)

func init() {
	// Common aliases, omitted from enumeration, matching badu-term's
	// alias map for the same well-known alternate spellings.
	alias("ascii", ASCII)
	alias("iso646", ASCII)
	alias("latin1", ISO8859_1)
	alias("l1", ISO8859_1)
	alias("latin2", ISO8859_2)
	alias("cp1252", CP1252)
	alias("sjis", ShiftJIS)
	alias("shift_jis", ShiftJIS)
	alias("ms949", CP949)
	alias("uhc", CP949)
	alias("gb2312", EUCCN)
	alias("hz", HZGB2312)
	alias("utf16", UTF16)
	alias("utf7", UTF7)
	alias("x-compound-text", CompoundText)
	alias("ctext", CompoundText)
}
