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
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// Namespace selects which registry Lookup/CanonicalName consult, per
// spec.md section 6's "lookup_by_name"/"canonical_name" (MIME/X11/Emacs/
// local, as spec.md's glossary enumerates).
//
// NamespaceLocal is this package's own alias table (id.go's idLookupMap —
// the names every *ID and alias() call registers). NamespaceMIME consults
// golang.org/x/text/encoding/{ianaindex,htmlindex}'s IANA-registered MIME
// names, the same way charactersets.go leans on a real external registry
// instead of a hand-rolled one. NamespaceX11 consults
// golang.org/x/net/html/charset.Lookup, whose label table matches the
// loose X11/Emacs charset-name convention (hyphenated, case-insensitive)
// closely enough to serve as that namespace's resolver — the teacher's own
// choice of lookup strategy for exactly this "label in, registered
// encoding out" problem.
type Namespace int

const (
	NamespaceLocal Namespace = iota
	NamespaceMIME
	NamespaceX11
)

// Lookup resolves name within namespace to this package's *ID, per
// spec.md's lookup_by_name.
func Lookup(namespace Namespace, name string) (*ID, error) {
	switch namespace {
	case NamespaceLocal:
		return lookupIDByName(strings.ToLower(name))

	case NamespaceMIME:
		enc, err := htmlindex.Get(name)
		if err != nil {
			return nil, fmt.Errorf("charset: mime name %q: %v", name, err)
		}
		canon, err := ianaindex.MIME.Name(enc)
		if err != nil {
			return nil, fmt.Errorf("charset: mime name %q: %v", name, err)
		}
		return lookupIDByName(strings.ToLower(canon))

	case NamespaceX11:
		enc, canon := charset.Lookup(strings.ToLower(name))
		if enc == nil {
			return nil, fmt.Errorf("charset: x11 name %q not recognized", name)
		}
		return lookupIDByName(canon)

	default:
		return nil, fmt.Errorf("charset: unknown namespace %d", namespace)
	}
}

// CanonicalName returns id's preferred spelling within namespace, per
// spec.md's canonical_name.
func CanonicalName(ns Namespace, id *ID) (string, error) {
	if id == nil || id == None {
		return "", fmt.Errorf("charset: no canonical name for None")
	}
	switch ns {
	case NamespaceLocal:
		return id.Name, nil

	case NamespaceMIME:
		enc, err := ianaindex.MIME.Encoding(id.Name)
		if err != nil || enc == nil {
			return "", fmt.Errorf("charset: no MIME name for %s", id)
		}
		return ianaindex.MIME.Name(enc)

	case NamespaceX11:
		enc, canon := charset.Lookup(id.Name)
		if enc == nil {
			return "", fmt.Errorf("charset: no x11 name for %s", id)
		}
		return canon, nil

	default:
		return "", fmt.Errorf("charset: unknown namespace %d", ns)
	}
}

// Enumerate walks the closed set of enumerable IDs (aliases excluded), per
// spec.md's enumerate. n is a zero-based index; ok is false once n reaches
// the end.
func Enumerate(n int) (*ID, bool) {
	if n < 0 || n >= len(idEnumerable) {
		return nil, false
	}
	return idEnumerable[n], true
}

// upgradeTable names, for a handful of encodings spec.md singles out as
// historically narrow, the superset this package recommends upgrading to.
// These four pairs are named explicitly by spec.md section 6's "upgrade":
// browsers and other real-world consumers treat ASCII and ISO-8859-1
// labeled content as CP1252 (which is a strict superset in 0x80-0x9F),
// ISO-8859-4 as the closely related CP1254, and EUC-KR as CP949 (which
// is a strict superset of the EUC-KR repertoire).
var upgradeTable = map[*ID]*ID{
	ASCII:     CP1252,
	ISO8859_1: CP1252,
	ISO8859_4: CP1254,
	EUCKR:     CP949,
}

// Upgrade returns the encoding id's contents are always also valid in, or id
// itself if none is registered, per spec.md's upgrade.
func Upgrade(id *ID) *ID {
	if up, ok := upgradeTable[id]; ok {
		return up
	}
	return id
}

// ContainsASCII reports whether every ASCII byte decodes to its own code
// point under id. It is false for UTF-7, UTF-7-conservative, and
// HZ-GB-2312, 7-bit stateful encodings where a bare ASCII byte can mean
// something other than itself depending on mode (UTF-7's '+' opens base64
// mode and a raw byte inside it is never emitted as itself; HZ's "~{" does
// the same for GB2312 mode), so "every ASCII byte decodes to itself" is
// false for them even though most ASCII bytes do round-trip once outside
// those modes. It is also false for Shift-JIS and JIS X 0201, whose single
// bytes 0x5C and 0x7E decode to U+00A5 and U+203E rather than to '\' and
// '~'.
func ContainsASCII(id *ID) bool {
	if id == ShiftJIS || id == JISX0201 {
		return false
	}
	switch id.family {
	case familyUTF7, familyHZ:
		return false
	default:
		return true
	}
}
