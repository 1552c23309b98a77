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

import "testing"

// allDescriptors walks every *ID this package registers a Descriptor for,
// per spec.md section 8's "for every encoding" framing.
func allDescriptors(t *testing.T) []*Descriptor {
	t.Helper()
	var ds []*Descriptor
	for n := 0; ; n++ {
		id, ok := Enumerate(n)
		if !ok {
			break
		}
		if d := DescriptorFor(id); d != nil {
			ds = append(ds, d)
		}
	}
	if len(ds) == 0 {
		t.Fatal("no descriptors registered")
	}
	return ds
}

// TestDecodeTotalOnAllBytes is spec.md section 8 invariant 5: to_unicode
// never fails on any byte 0..255, fed in turn to one State starting from
// zero.
func TestDecodeTotalOnAllBytes(t *testing.T) {
	for _, d := range allDescriptors(t) {
		d := d
		t.Run(d.ID.String(), func(t *testing.T) {
			var st State
			for b := 0; b < 256; b++ {
				d.Decode(byte(b), &st, func(rune) {})
			}
		})
	}
}

// TestDecodePartitionInvariant is spec.md section 8 invariant 1: decoding a
// fixed byte stream one byte at a time must produce the same runes as
// decoding it in one or two arbitrary chunks, threading a single State.
func TestDecodePartitionInvariant(t *testing.T) {
	samples := map[*ID][]byte{
		UTF8:      []byte("A\xC3\xA9\xE6\x97\xA5Z"),
		UTF16:     {0xFE, 0xFF, 0x00, 0x41, 0xD8, 0x00, 0xDC, 0x00},
		UTF7:      []byte("A+ACI-B+ACI-C"),
		ShiftJIS:  {0x41, 0x82, 0xA0, 0x42},
		Big5:      {0x41, 0xA4, 0x40, 0x42},
		EUCJP:     {0x41, 0x8E, 0xA1, 0x42},
		EUCCN:     {0x41, 0xB0, 0xA1, 0x42},
		HZGB2312:  []byte("A~{\xB1\xA1~}B"),
		ISO2022JP: {'A', 0x1B, '$', 'B', 0x46, 0x7C, 0x1B, '(', 'B', 'B'},
	}

	for id, in := range samples {
		id, in := id, in
		t.Run(id.String(), func(t *testing.T) {
			d := DescriptorFor(id)

			whole := decodeAll(d, in)

			var split1 []rune
			var st State
			mid := len(in) / 2
			for i := 0; i < mid; i++ {
				d.Decode(in[i], &st, func(r rune) { split1 = append(split1, r) })
			}
			for i := mid; i < len(in); i++ {
				d.Decode(in[i], &st, func(r rune) { split1 = append(split1, r) })
			}

			if len(whole) != len(split1) {
				t.Fatalf("length mismatch: whole=%X split=%X", whole, split1)
			}
			for i := range whole {
				if whole[i] != split1[i] {
					t.Fatalf("rune %d mismatch: whole=%X split=%X", i, whole, split1)
				}
			}
		})
	}
}

// TestASCIIRoundTrip is spec.md section 8 invariant 2: every ASCII scalar
// round-trips through every ContainsASCII encoding.
func TestASCIIRoundTrip(t *testing.T) {
	for _, d := range allDescriptors(t) {
		d := d
		if !ContainsASCII(d.ID) {
			continue
		}
		t.Run(d.ID.String(), func(t *testing.T) {
			for r := rune(0x20); r < 0x7F; r++ {
				var encSt State
				var bs []byte
				if ok := d.Encode(r, &encSt, func(b byte) { bs = append(bs, b) }); !ok {
					t.Fatalf("encode %q: returned false", r)
				}
				d.Encode(Flush, &encSt, func(b byte) { bs = append(bs, b) })

				var decSt State
				var got []rune
				for _, b := range bs {
					d.Decode(b, &decSt, func(rr rune) { got = append(got, rr) })
				}
				if len(got) != 1 || got[0] != r {
					t.Fatalf("round trip %q: got %X from bytes % X", r, got, bs)
				}
			}
		})
	}
}

// TestFlushReturnsToInitialState is spec.md section 8 invariant 6: Encode
// with Flush always returns true and drives State back to its zero value.
func TestFlushReturnsToInitialState(t *testing.T) {
	for _, d := range allDescriptors(t) {
		d := d
		t.Run(d.ID.String(), func(t *testing.T) {
			var st State
			ok := d.Encode(Flush, &st, func(byte) {})
			if !ok {
				t.Fatalf("Encode(Flush) on fresh state returned false")
			}
			if st != (State{}) {
				t.Fatalf("Encode(Flush) on fresh state left st=%+v, want zero", st)
			}

			// Drive some ASCII through, if representable, then flush again.
			if ContainsASCII(d.ID) {
				d.Encode('A', &st, func(byte) {})
				ok = d.Encode(Flush, &st, func(byte) {})
				if !ok {
					t.Fatalf("Encode(Flush) after 'A' returned false")
				}
				if st != (State{}) {
					t.Fatalf("Encode(Flush) after 'A' left st=%+v, want zero", st)
				}
			}
		})
	}
}

// TestEncodeThenDecodeRoundTrip is spec.md section 8 invariant 3, sampled
// over a representative slice of the BMP plus one astral scalar rather
// than every code point, for runtime's sake.
func TestEncodeThenDecodeRoundTrip(t *testing.T) {
	samples := []rune{'A', ' ', '~', 0xA9, 0x100, 0x1000, 0x4E2D, 0x1F600}

	for _, d := range allDescriptors(t) {
		d := d
		t.Run(d.ID.String(), func(t *testing.T) {
			for _, r := range samples {
				var encSt State
				var bs []byte
				ok := d.Encode(r, &encSt, func(b byte) { bs = append(bs, b) })
				if !ok {
					continue // not every encoding represents every sample
				}
				d.Encode(Flush, &encSt, func(b byte) { bs = append(bs, b) })

				var decSt State
				var got []rune
				for _, b := range bs {
					d.Decode(b, &decSt, func(rr rune) { got = append(got, rr) })
				}
				if len(got) == 0 || got[len(got)-1] != r {
					t.Fatalf("encode/decode %U: got %X from bytes % X", r, got, bs)
				}
			}
		})
	}
}
