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

package vt

import (
	"testing"

	"github.com/vt220lab/vtcore/color"
	"github.com/vt220lab/vtcore/vt/charset"
)

// newTestEmulator returns an Emulator over a cols x rows MockScreen at
// the given level, along with the buffer any response bytes land in.
func newTestEmulator(level EmulationLevel, cols, rows int) (*Emulator, *MockScreen, *[]byte) {
	scr := NewMockScreen(Coord{X: Col(cols), Y: Row(rows)})
	var out []byte
	e := New(scr, level, Config{}, func(b []byte) { out = append(out, b...) })
	return e, scr, &out
}

func feedString(e *Emulator, s string) {
	for i := 0; i < len(s); i++ {
		e.FeedByte(s[i])
	}
}

func checkPos(t *testing.T, scr *MockScreen, x, y int) {
	t.Helper()
	pos := scr.CursorPosition()
	if int(pos.X) != x || int(pos.Y) != y {
		t.Errorf("bad position %d,%d (expected %d,%d)", pos.X, pos.Y, x, y)
	}
}

func checkRow(t *testing.T, scr *MockScreen, row int, want string) {
	t.Helper()
	got := scr.PlainText(row)
	n := len(want)
	if len(got) < n {
		t.Errorf("row %d too short: got %q want prefix %q", row, got, want)
		return
	}
	if got[:n] != want {
		t.Errorf("bad row %d: got %q want prefix %q", row, got, want)
	}
}

func TestPrintAdvancesCursor(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 10, 5)
	feedString(e, "AB")
	checkPos(t, scr, 2, 0)
	checkRow(t, scr, 0, "AB")
}

func TestCarriageReturnAndLinefeed(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 10, 5)
	feedString(e, "AB\r\nCD")
	checkPos(t, scr, 2, 1)
	checkRow(t, scr, 0, "AB")
	checkRow(t, scr, 1, "CD")
}

// CUU/CUD never scroll, only clamp to the display edge.
func TestCUUCUDClampWithoutScrolling(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 10, 3)
	feedString(e, "\x1b[5A") // already at row 0, stays
	checkPos(t, scr, 0, 0)
	feedString(e, "\x1b[5B") // overshoot clamps to last row, no scroll
	checkPos(t, scr, 0, 2)
	checkRow(t, scr, 0, "")
}

// IND scrolls when the cursor sits on the bottom margin of the region.
func TestINDScrollsAtBottomMargin(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 5, 3)
	feedString(e, "AAA\r\nBBB\r\nCCC")
	checkPos(t, scr, 3, 2)
	feedString(e, "\x1bD") // IND at bottom row scrolls
	checkRow(t, scr, 0, "BBB")
	checkRow(t, scr, 1, "CCC")
	checkRow(t, scr, 2, "")
	checkPos(t, scr, 3, 2)
}

// RI scrolls down when the cursor sits on the top margin of the region.
func TestRIScrollsAtTopMargin(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 5, 3)
	feedString(e, "AAA\r\nBBB\r\nCCC")
	feedString(e, "\x1b[1;1H") // home
	feedString(e, "\x1bM")     // RI at top row scrolls down
	checkRow(t, scr, 0, "")
	checkRow(t, scr, 1, "AAA")
	checkRow(t, scr, 2, "BBB")
}

func TestNELIsINDPlusCarriageReturn(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 5, 3)
	feedString(e, "AB")
	feedString(e, "\x1bE") // NEL
	checkPos(t, scr, 0, 1)
}

func TestDECSTBMRestrictsScrollRegion(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 5, 4)
	feedString(e, "1111\r\n2222\r\n3333\r\n4444")
	feedString(e, "\x1b[2;3r") // scroll region rows 2-3 (1-indexed)
	feedString(e, "\x1b[3;1H") // move to the bottom margin of the region
	feedString(e, "\x1bD")     // IND at bottom of region scrolls only rows 2-3
	checkRow(t, scr, 0, "1111")
	checkRow(t, scr, 1, "3333")
	checkRow(t, scr, 2, "")
	checkRow(t, scr, 3, "4444")
}

func TestAutowrapAdvancesToNextLine(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 3, 2)
	feedString(e, "ABCD")
	checkRow(t, scr, 0, "ABC")
	checkRow(t, scr, 1, "D")
}

func TestEraseLineVariants(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 5, 1)
	feedString(e, "ABCDE")
	feedString(e, "\x1b[1;3H") // column 3
	feedString(e, "\x1b[1K")   // erase start..cursor (inclusive)
	checkRow(t, scr, 0, "   DE")
}

func TestInsertAndDeleteChars(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 5, 1)
	feedString(e, "ABCDE")
	feedString(e, "\x1b[1;2H") // column 2 (index 1)
	feedString(e, "\x1b[1@")   // ICH 1
	checkRow(t, scr, 0, "A BCD")
	feedString(e, "\x1b[1P") // DCH 1
	checkRow(t, scr, 0, "ABCD")
}

func TestSGRBoldAndReset(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 5, 1)
	feedString(e, "\x1b[1mA\x1b[0mB")
	if !scr.Cell(Coord{X: 0, Y: 0}).Attr.Has(Bold) {
		t.Errorf("expected A to be bold")
	}
	if scr.Cell(Coord{X: 1, Y: 0}).Attr.Has(Bold) {
		t.Errorf("expected B to not be bold after reset")
	}
}

func TestSGRColorsRequireEnableColor(t *testing.T) {
	scr := NewMockScreen(Coord{X: 5, Y: 1})
	e := New(scr, VT220, Config{EnableColor: true}, nil)
	feedString(e, "\x1b[31mA")
	if scr.Cell(Coord{X: 0, Y: 0}).Fg == color.Default {
		t.Errorf("expected foreground color to be set")
	}
}

func TestDECOMConstrainsCursorToRegion(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 5, 5)
	feedString(e, "\x1b[2;4r")  // region rows 2-4
	feedString(e, "\x1b[?6h")   // DECOM on
	feedString(e, "\x1b[1;1H")  // home, relative to region
	checkPos(t, scr, 0, 1)
}

func TestDECAWMCanBeDisabled(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 3, 2)
	feedString(e, "\x1b[?7l") // autowrap off
	feedString(e, "ABCD")
	// with autowrap off, the last column sticks: D overwrites C rather
	// than wrapping to a new line
	checkRow(t, scr, 0, "ABD")
	checkPos(t, scr, 2, 0)
}

func TestDECSCNMTogglesInversion(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 3, 1)
	feedString(e, "\x1b[?5h")
	if !scr.Inverted() {
		t.Errorf("expected screen reversed after DECSCNM set")
	}
	feedString(e, "\x1b[?5l")
	if scr.Inverted() {
		t.Errorf("expected screen normal after DECSCNM cleared")
	}
	_ = e
}

func TestDECTCEMHidesCursor(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 3, 1)
	feedString(e, "\x1b[?25l")
	if scr.CursorVisible() {
		t.Errorf("expected cursor hidden")
	}
}

func TestDECSpecialGraphicsLineDrawing(t *testing.T) {
	e, scr, _ := newTestEmulator(VT220, 3, 1)
	feedString(e, "\x1b(0") // designate G0 as DEC Special Graphics
	feedString(e, "q")      // horizontal line in that set
	if r := scr.Cell(Coord{X: 0, Y: 0}).R; r != '─' {
		t.Errorf("expected line-drawing rune, got %q", r)
	}
}

func TestSingleShiftAffectsOnlyNextChar(t *testing.T) {
	e, scr, _ := newTestEmulator(VT220, 3, 1)
	e.g[2] = charset.UK // G2 explicit, distinct from default G0 and G1
	feedString(e, "\x1bN##")
	// SS2 only changes which register GL reads for the very next byte:
	// the first # prints through G2 as a pound sign, the second through G0.
	checkRow(t, scr, 0, "£#")
}

func TestDA1RespondsPerEmulationLevel(t *testing.T) {
	e, _, out := newTestEmulator(VT220, 3, 1)
	feedString(e, "\x1b[c")
	if string(*out) != "\x1b[?62;1;6c" {
		t.Errorf("unexpected DA1 reply: %q", *out)
	}
}

func TestDSRCursorPositionReport(t *testing.T) {
	e, _, out := newTestEmulator(VT100, 5, 5)
	feedString(e, "\x1b[3;2H")
	*out = nil
	feedString(e, "\x1b[6n")
	if string(*out) != "\x1b[3;2R" {
		t.Errorf("unexpected DSR reply: %q", *out)
	}
}

func TestDECRQMReportsKnownPrivateMode(t *testing.T) {
	e, _, out := newTestEmulator(VT220, 5, 5)
	feedString(e, "\x1b[?25$p") // DECTCEM, default on
	if string(*out) != "\x1b[?25;1$y" {
		t.Errorf("unexpected DECRQM reply: %q", *out)
	}
}

func TestDECSCAProtectsAgainstSelectiveErase(t *testing.T) {
	e, scr, _ := newTestEmulator(VT220, 5, 1)
	feedString(e, "\x1b[1\"q") // DECSCA protect on
	feedString(e, "A")
	feedString(e, "\x1b[0\"q") // DECSCA protect off
	feedString(e, "B")
	feedString(e, "\x1b[1;1H")
	feedString(e, "\x1b[?2K") // DECSEL, honors Protected
	checkRow(t, scr, 0, "A ")
}

func TestDECSCSavesAndRestoresAttributeAndPosition(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 5, 5)
	feedString(e, "\x1b[2;2H\x1b[1m\x1b7") // save at (1,1), bold
	feedString(e, "\x1b[0m\x1b[4;4H")      // move away, clear bold
	feedString(e, "\x1b8")                 // restore
	checkPos(t, scr, 1, 1)
	if !e.attr.Has(Bold) {
		t.Errorf("expected bold attribute restored")
	}
	_ = scr
}

func TestRISResetsModesAndClearsScreen(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 5, 2)
	feedString(e, "AB\x1b[?7l")
	feedString(e, "\x1bc") // RIS
	if r := scr.Cell(Coord{X: 0, Y: 0}).R; r != ' ' && r != 0 {
		t.Errorf("expected screen cleared after RIS, got %q", r)
	}
	checkPos(t, scr, 0, 0)
	if !e.decawm {
		t.Errorf("expected autowrap restored to default after RIS")
	}
}

func TestVT52ModeSwitchesCommandGrammar(t *testing.T) {
	e, scr, _ := newTestEmulator(VT100, 5, 5)
	feedString(e, "\x1b[?2l") // DECANM off -> VT52
	feedString(e, "\x1bH")    // VT52 cursor home
	feedString(e, "\x1bC")    // VT52 cursor right
	checkPos(t, scr, 1, 0)
	feedString(e, "\x1b<") // leave VT52
	feedString(e, "\x1b[2;2H")
	checkPos(t, scr, 1, 1)
}

func TestVT52DirectCursorAddressClampsCoordinates(t *testing.T) {
	e, scr, _ := newTestEmulator(VT220, 5, 5)
	feedString(e, "\x1b[?2l")            // enter VT52
	feedString(e, "\x1bY"+"\xff"+"\xff") // wildly out of range row/col
	checkPos(t, scr, 4, 4)
}
