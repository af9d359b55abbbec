// Copyright 2025 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package charset

import "testing"

func TestUSIsPlainASCII(t *testing.T) {
	for i := 0x20; i < 0x7f; i++ {
		if r := US.Lookup(i); r != rune(i) {
			t.Fatalf("US[%#x] = %q, want %q", i, r, rune(i))
		}
	}
}

func TestUKPoundSign(t *testing.T) {
	if r := UK.Lookup(0x23); r != '£' {
		t.Fatalf("UK[0x23] = %q, want £", r)
	}
	if r := UK.Lookup(0x41); r != 'A' {
		t.Fatalf("UK[0x41] = %q, want A", r)
	}
}

func TestDECSpecialGraphicsLineDrawing(t *testing.T) {
	cases := map[int]rune{
		0x61: '▒',
		0x6a: '┘',
		0x71: '─',
		0x78: '│',
	}
	for idx, want := range cases {
		if got := DECSpecialGraphics.Lookup(idx); got != want {
			t.Errorf("DECSpecialGraphics[%#x] = %q, want %q", idx, got, want)
		}
	}
}

func TestGRMasksHighBit(t *testing.T) {
	// GR access strips the top bit of an 8-bit byte; 0xe1 and 0x61 must
	// land on the same table entry.
	if DECSpecialGraphics.Lookup(0xe1) != DECSpecialGraphics.Lookup(0x61) {
		t.Fatal("GR lookup did not mask the high bit")
	}
}

func TestOutOfRangeSetFallsBackToUS(t *testing.T) {
	bogus := Set(1000)
	if bogus.Lookup(0x41) != 'A' {
		t.Fatal("out of range Set did not fall back to US")
	}
}

func TestNRCOverridesOnlyTouchAFewPositions(t *testing.T) {
	diff := 0
	base := asciiTable()
	for i := 0; i < 128; i++ {
		if tables[NRCFrench][i] != base[i] {
			diff++
		}
	}
	if diff == 0 || diff > 12 {
		t.Fatalf("NRCFrench overrides %d positions, want a small handful", diff)
	}
}

func TestDECSupplementalAndGraphicsAreDistinctSets(t *testing.T) {
	if DECSupplemental == DECSupplementalGraphics {
		t.Fatal("DECSupplemental and DECSupplementalGraphics must be distinct catalogue entries")
	}
	// They mostly agree except for the handful of DEC-only additions.
	if DECSupplemental.Lookup(0x41) != DECSupplementalGraphics.Lookup(0x41) {
		t.Fatal("the two DEC supplemental sets should agree on ordinary Latin-1 positions")
	}
}

func TestFromFinal(t *testing.T) {
	cases := []struct {
		b    byte
		want Set
		ok   bool
	}{
		{'B', US, true},
		{'A', UK, true},
		{'0', DECSpecialGraphics, true},
		{'<', DECSupplemental, true},
		{'Q', NRCFrenchCanadian, true},
		{'Z', NRCSpanish, true},
		{'9', US, false},
	}
	for _, c := range cases {
		got, ok := FromFinal(c.b)
		if ok != c.ok {
			t.Errorf("FromFinal(%q) ok = %v, want %v", c.b, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("FromFinal(%q) = %v, want %v", c.b, got, c.want)
		}
	}
}

func TestFromIntermediateFinal(t *testing.T) {
	got, ok := FromIntermediateFinal('%', '5')
	if !ok || got != DECSupplementalGraphics {
		t.Fatalf("FromIntermediateFinal('%%','5') = %v,%v want DECSupplementalGraphics,true", got, ok)
	}
	if _, ok := FromIntermediateFinal('&', '5'); ok {
		t.Fatal("unexpected match on unrelated intermediate byte")
	}
}

func TestSetStringIsNonEmpty(t *testing.T) {
	for s := US; s < numSets; s++ {
		if s.String() == "" || s.String() == "unknown" {
			t.Errorf("Set %d has no readable name", s)
		}
	}
}
