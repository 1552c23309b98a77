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
	"reflect"
	"testing"
)

// decodeAll feeds in through d one byte at a time, threading a single State,
// and collects every emitted rune.
func decodeAll(d *Descriptor, in []byte) []rune {
	var st State
	var got []rune
	for _, b := range in {
		d.Decode(b, &st, func(r rune) { got = append(got, r) })
	}
	return got
}

func TestScenarioUTF8Truncation(t *testing.T) {
	d := DescriptorFor(UTF8)
	var st State
	var got []rune
	d.Decode(0xE1, &st, func(r rune) { got = append(got, r) })
	d.Decode(0x80, &st, func(r rune) { got = append(got, r) })
	d.Decode(0xFE, &st, func(r rune) { got = append(got, r) })
	want := []rune{0xFFFF, 0xFFFF}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %X, want %X", got, want)
	}
}

func TestScenarioUTF16AutoDetectBOM(t *testing.T) {
	got := decodeAll(DescriptorFor(UTF16), []byte{0xFE, 0xFF, 0x00, 0x41})
	want := []rune{0x0041}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %X, want %X", got, want)
	}
}

func TestScenarioUTF7(t *testing.T) {
	got := decodeAll(DescriptorFor(UTF7), []byte("+ACI-Hi+ACI-"))
	want := []rune{'"', 'H', 'i', '"'}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %X, want %X", got, want)
	}
}

func TestScenarioShiftJIS(t *testing.T) {
	d := DescriptorFor(ShiftJIS)

	got := decodeAll(d, []byte{0x82, 0xA0})
	if want := []rune{0x3042}; !reflect.DeepEqual(got, want) {
		t.Fatalf("82 A0: got %X, want %X", got, want)
	}

	got = decodeAll(d, []byte{0x5C})
	if want := []rune{0x00A5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("5C: got %X, want %X", got, want)
	}
}

func TestScenarioHZ(t *testing.T) {
	got := decodeAll(DescriptorFor(HZGB2312), []byte("~{\xB1\xA1~}A"))
	want := []rune{0x554A, 'A'}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %X, want %X", got, want)
	}
}

func TestScenarioEUCJP(t *testing.T) {
	got := decodeAll(DescriptorFor(EUCJP), []byte{0x8E, 0xA1})
	want := []rune{0xFF61}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %X, want %X", got, want)
	}
}

func TestScenarioISO2022JP(t *testing.T) {
	in := append([]byte("Japanese ("), append([]byte{0x1B, '$', 'B', 0x46, 0x7C, 0x4B, 0x5C, 0x38, 0x6C, 0x1B, '(', 'B'}, []byte(")")...)...)
	got := decodeAll(DescriptorFor(ISO2022JP), in)

	var want []rune
	want = append(want, []rune("Japanese (")...)
	want = append(want, 0x65E5, 0x672C, 0x8A9E)
	want = append(want, []rune(")")...)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %X, want %X", got, want)
	}
}

func TestScenarioISO2022FullDocsCText(t *testing.T) {
	name := []byte("iso8859-15")
	payload := []byte("xyz")
	length := len(name) + 1 /* STX */ + len(payload)
	in := []byte{0x1B, '%', '/', '1', 0x80, byte(length)}
	in = append(in, name...)
	in = append(in, 0x02)
	in = append(in, payload...)
	in = append(in, 0x1B, '(', 'B')

	got := decodeAll(DescriptorFor(ISO2022Full), in)
	want := []rune{'x', 'y', 'z'}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %X, want %X", got, want)
	}
}

func TestScenarioCompoundTextEncode(t *testing.T) {
	d := DescriptorFor(CompoundText)
	var st State
	var out []byte
	emit := func(b byte) { out = append(out, b) }

	if ok := d.Encode(0x00A0, &st, emit); !ok {
		t.Fatalf("encode NBSP: returned false")
	}
	if len(out) == 0 || out[len(out)-1] != 0xA0 {
		t.Fatalf("expected trailing 0xA0 byte for NBSP, got % X", out)
	}
	// The designation escape for ISO-8859-14 into G1 must precede the data
	// byte even though its table index is 0 — a fresh State's G1 slot also
	// reads as 0 bits, so a naive "already designated" check could mistake
	// the two and skip the escape entirely.
	if len(out) < 4 || out[0] != 0x1B || out[1] != '-' {
		t.Fatalf("expected a G1 designation escape before NBSP, got % X", out)
	}

	before := len(out)
	if ok := d.Encode(0x5143, &st, emit); !ok {
		t.Fatalf("encode U+5143: returned false")
	}
	if len(out) <= before {
		t.Fatalf("expected additional bytes for U+5143, got % X", out)
	}
}

// TestScenarioCompoundTextGR96RoundTrip exercises a G1/GR designation
// (ISO-8859-14, then ISO-8859-15) round trip through the decoder, the path
// iso2022Designated must resolve against iso2022SubcharsetsGR96 rather than
// the G0 table sharing the same index space.
func TestScenarioCompoundTextGR96RoundTrip(t *testing.T) {
	d := DescriptorFor(CompoundText)

	var encSt State
	var out []byte
	emit := func(b byte) { out = append(out, b) }
	// NBSP (ISO-8859-14, table index 0), Latin capital OE (ISO-8859-15,
	// table index 1), then plain ASCII.
	for _, r := range []rune{0x00A0, 0x0152, 'Z'} {
		if ok := d.Encode(r, &encSt, emit); !ok {
			t.Fatalf("encode %U: returned false", r)
		}
	}
	d.Encode(Flush, &encSt, emit)

	got := decodeAll(d, out)
	want := []rune{0x00A0, 0x0152, 'Z'}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip: got %X from % X, want %X", got, out, want)
	}
}
