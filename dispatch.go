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

// registry maps every *ID this package implements to its Descriptor, per
// spec.md section 4.11. Populated once at init; read-only thereafter, so it
// needs no locking for concurrent lookups.
var registry = map[*ID]*Descriptor{}

func register(d *Descriptor) {
	if _, dup := registry[d.ID]; dup {
		panic(fmt.Sprintf("charset: duplicate descriptor registration for %s", d.ID))
	}
	registry[d.ID] = d
}

func init() {
	for _, d := range sbcsDescriptors {
		register(d)
	}

	register(descriptorUTF8)
	register(descriptorUTF16)
	register(descriptorUTF16BE)
	register(descriptorUTF16LE)
	register(descriptorUTF7)
	register(descriptorUTF7Conservative)

	register(descriptorShiftJIS)
	register(descriptorBig5)
	register(descriptorCP949)

	register(descriptorEUCJP)
	register(descriptorEUCCN)
	register(descriptorEUCKR)
	register(descriptorEUCTW)

	register(descriptorHZGB2312)

	register(descriptorISO2022JP)
	register(descriptorISO2022KR)

	register(descriptorISO2022Full)
	register(descriptorCompoundText)
}

// DescriptorFor returns the Descriptor implementing id, or nil if this
// package carries no codec for it (for example, ID.None or an ID some other
// part of the program minted but never registered).
func DescriptorFor(id *ID) *Descriptor {
	return registry[id]
}
