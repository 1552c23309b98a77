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

// RuneEmitFunc receives one decoded Unicode scalar value at a time. A single
// call to Descriptor.Decode may invoke it zero or more times (a malformed
// UTF-8 sequence, for instance, can legitimately emit more than one errRune).
type RuneEmitFunc func(r rune)

// ByteEmitFunc receives one encoded byte at a time. Descriptor.Encode may
// invoke it any number of times for a single code point (a DBCS character
// emits two bytes, a Compound Text designation emits an escape sequence
// followed by the character bytes).
type ByteEmitFunc func(b byte)

// Descriptor is the static, immutable binding between an encoding identifier
// and its decode/encode implementations, plus an opaque per-encoding
// parameter block. Descriptors never change after package initialization and
// may be shared across any number of concurrent transcodings, each with its
// own State.
//
// This is the language-neutral "tagged-variant codec value" spec.md asks for:
// the decode/encode fields stand in for the original's function-pointer
// struct, the same role the teacher's VR.kind switch plays for value
// representations.
type Descriptor struct {
	// ID names the encoding this descriptor implements.
	ID *ID

	// Param is an opaque, codec-specific configuration block. Concrete codecs
	// type-assert this to their own parameter type; it is nil for codecs that
	// need none (UTF-8, HZ, full ISO 2022 / Compound Text).
	Param any

	decode func(d *Descriptor, b byte, st *State, emit RuneEmitFunc)
	encode func(d *Descriptor, r rune, st *State, emit ByteEmitFunc) bool
}

// Decode takes one input byte, updates st in place, and calls emit zero or
// more times. decode(State{}, ...) is the starting condition: the zero State
// and a freshly-flushed State must behave identically.
func (d *Descriptor) Decode(b byte, st *State, emit RuneEmitFunc) {
	d.decode(d, b, st, emit)
}

// Encode takes one code point, or Flush to finalize, updates st in place, and
// calls emit with the bytes produced. It returns false, without having called
// emit, if r cannot be represented in this encoding. Encode(Flush, ...) always
// returns true and drives st back to its zero value.
func (d *Descriptor) Encode(r rune, st *State, emit ByteEmitFunc) bool {
	return d.encode(d, r, st, emit)
}
