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

import "sort"

// sbcsEntry is one row of a single-byte code set's sorted inverse table: the
// encoded byte value and the Unicode scalar it decodes to, kept sorted by r
// so Encode can binary search it.
type sbcsEntry struct {
	b byte
	r rune
}

// sbcsTable is the Param for every SBCS Descriptor: a 256-entry forward table
// (byte -> scalar, errRune where undefined) and its sorted inverse, per
// spec.md section 4.2.
type sbcsTable struct {
	forward [256]rune
	inverse []sbcsEntry // sorted by r
}

func newSBCSTable(forward [256]rune) *sbcsTable {
	t := &sbcsTable{forward: forward}
	for b, r := range forward {
		if r == errRune {
			continue
		}
		t.inverse = append(t.inverse, sbcsEntry{byte(b), r})
	}
	sort.Slice(t.inverse, func(i, j int) bool { return t.inverse[i].r < t.inverse[j].r })
	return t
}

func sbcsDecode(d *Descriptor, b byte, st *State, emit RuneEmitFunc) {
	t := d.Param.(*sbcsTable)
	emit(t.forward[b])
}

func sbcsEncode(d *Descriptor, r rune, st *State, emit ByteEmitFunc) bool {
	if r == flush {
		return true // SBCS is stateless at character boundaries; nothing to flush.
	}
	t := d.Param.(*sbcsTable)
	i := sort.Search(len(t.inverse), func(i int) bool { return t.inverse[i].r >= r })
	if i >= len(t.inverse) || t.inverse[i].r != r {
		return false
	}
	emit(t.inverse[i].b)
	return true
}

func newSBCSDescriptor(id *ID, forward [256]rune) *Descriptor {
	return &Descriptor{ID: id, Param: newSBCSTable(forward), decode: sbcsDecode, encode: sbcsEncode}
}
