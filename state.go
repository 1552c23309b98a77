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

// Package charset implements streaming, stateful transcoding between a wide
// variety of legacy, regional, and Unicode byte encodings and a canonical
// Unicode code point stream.
//
// Every codec is driven one input unit at a time and carries all of its
// resumable position in a 64-bit State value owned by the caller. Feeding the
// State together with the next byte (decode) or code point (encode) back into
// the same Descriptor is sufficient to continue a transcoding across any
// number of separate calls, including calls of a single byte each.
package charset

// State is the opaque, resumable position of a codec between calls. The zero
// value is the initial state for every codec in this package. Bit layouts
// within S0 and S1 are private to each codec; callers that persist a State
// must keep both words together.
type State struct {
	S0 uint32
	S1 uint32
}

// errRune is the in-band decode-error sentinel emitted in place of any
// malformed input unit, per spec section 3 ("Sentinels").
const errRune rune = 0xFFFF

// flush is the code point passed to Encode to request finalization: emit
// whatever bytes are needed to return to a default state without failing.
const flush rune = -1

// Flush is the code point callers pass to Descriptor.Encode to finalize an
// encoder: drive its State back to the zero value, emitting any trailing
// bytes required (UTF-7's "-", HZ's "~}", Compound Text's "ESC ( B" back to
// ASCII), and return true.
const Flush rune = flush
