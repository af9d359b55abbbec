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
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/width"

	"github.com/vt220lab/vtcore/color"
)

// cellWidth decides how many columns r occupies. go-runewidth covers the
// common terminal cases (CJK ranges, combining marks); the EastAsianWide
// and EastAsianFullwidth classes from x/text/width catch code points
// go-runewidth's tables treat as narrow but that DEC Supplemental and the
// NRC sets can still surface as wide punctuation under some fonts.
func cellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w != 1 {
		return w
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// MockCell is the display content of one cell, plus the rendering width
// runewidth assigned it. A wide character occupies the following cell
// with an empty MockCell so indexing by column stays 1:1 with Coord.X.
type MockCell struct {
	R     rune
	Attr  Attribute
	Fg    color.Color
	Bg    color.Color
	Width int
}

// MockRowFlags records DECDWL/DECDHL state per row, which belongs to the
// row rather than any one cell.
type MockRowFlags struct {
	DoubleWidth  bool
	DoubleHeight DoubleHeight
}

// MockScreen is a reference Screen implementation backed by a flat cell
// buffer. It exists to drive the parser in tests and has no rendering of
// its own.
type MockScreen struct {
	size     Coord
	pos      Coord
	cells    []MockCell
	rows     []MockRowFlags
	colors   int
	palette  []color.Color
	fg, bg   color.Color
	inverted    bool
	visible     bool
	bells       int
	wrapPending bool
}

// NewMockScreen returns a MockScreen of the given size with a 256-color
// palette. size.X and size.Y must both be positive.
func NewMockScreen(size Coord) *MockScreen {
	s := &MockScreen{
		size:    size,
		colors:  256,
		fg:      color.Default,
		bg:      color.Default,
		visible: true,
	}
	s.palette = make([]color.Color, 256)
	for i := range s.palette {
		s.palette[i] = color.PaletteColor(i)
	}
	s.cells = make([]MockCell, int(size.X)*int(size.Y))
	s.rows = make([]MockRowFlags, int(size.Y))
	return s
}

func (s *MockScreen) index(pos Coord) int {
	if pos.X < 0 || pos.Y < 0 || pos.X >= s.size.X || pos.Y >= s.size.Y {
		return -1
	}
	return int(pos.Y)*int(s.size.X) + int(pos.X)
}

func (s *MockScreen) Size() Coord { return s.size }

func (s *MockScreen) CursorPosition() Coord { return s.pos }

func (s *MockScreen) SetCursorPosition(pos Coord) {
	s.pos.X = Col(clamp(int(pos.X), 0, int(s.size.X)-1))
	s.pos.Y = Row(clamp(int(pos.Y), 0, int(s.size.Y)-1))
	s.wrapPending = false
}

func (s *MockScreen) MoveCursorUp(n int) {
	s.pos.Y = Row(clamp(int(s.pos.Y)-n, 0, int(s.size.Y)-1))
	s.wrapPending = false
}

func (s *MockScreen) MoveCursorDown(n int) {
	s.pos.Y = Row(clamp(int(s.pos.Y)+n, 0, int(s.size.Y)-1))
	s.wrapPending = false
}

func (s *MockScreen) MoveCursorLeft(n int) {
	s.pos.X = Col(clamp(int(s.pos.X)-n, 0, int(s.size.X)-1))
	s.wrapPending = false
}

func (s *MockScreen) MoveCursorRight(n int) {
	s.pos.X = Col(clamp(int(s.pos.X)+n, 0, int(s.size.X)-1))
	s.wrapPending = false
}

func (s *MockScreen) CarriageReturn() {
	s.pos.X = 0
	s.wrapPending = false
}

// PrintChar places r at the cursor, widened via runewidth, and advances
// the cursor. A zero-width combining rune is dropped: it neither occupies
// a cell nor changes the previous one. Reaching the last column does not wrap
// immediately; the wrap is deferred until the next printable character
// arrives, so a line exactly as wide as the display does not leave a
// trailing blank row (the same "last column sticks" behavior real DEC
// terminals use).
func (s *MockScreen) PrintChar(r rune, attr Attribute, insert, autowrap bool) {
	w := cellWidth(r)
	if w == 0 {
		if int(s.pos.X) > 0 {
			// combining marks are dropped rather than concatenated; this
			// core does not track grapheme clusters.
		}
		return
	}
	if autowrap && s.wrapPending {
		s.pos.X = 0
		if int(s.pos.Y) == int(s.size.Y)-1 {
			s.ScrollUp(0, int(s.size.Y)-1, 1)
		} else {
			s.pos.Y++
		}
	}
	s.wrapPending = false
	if insert {
		s.shiftRight(int(s.pos.Y), int(s.pos.X), w)
	}
	if idx := s.index(s.pos); idx >= 0 {
		s.cells[idx] = MockCell{R: r, Attr: attr, Fg: s.fg, Bg: s.bg, Width: w}
		for i := 1; i < w; i++ {
			if idx+i < len(s.cells) {
				s.cells[idx+i] = MockCell{Width: 0}
			}
		}
	}
	if int(s.pos.X)+w >= int(s.size.X) {
		s.pos.X = Col(int(s.size.X) - 1)
		if autowrap {
			s.wrapPending = true
		}
	} else {
		s.pos.X += Col(w)
	}
}

func (s *MockScreen) shiftRight(row, col, n int) {
	width := int(s.size.X)
	base := row * width
	for x := width - 1; x >= col+n; x-- {
		s.cells[base+x] = s.cells[base+x-n]
	}
	for x := col; x < col+n && x < width; x++ {
		s.cells[base+x] = MockCell{R: ' ', Width: 1}
	}
}

func (s *MockScreen) EraseLine(startCol, endCol int, honorProtected bool) {
	s.eraseRange(int(s.pos.Y), startCol, int(s.pos.Y), endCol, honorProtected)
}

func (s *MockScreen) EraseScreen(r1, c1, r2, c2 int, honorProtected bool) {
	s.eraseRange(r1, c1, r2, c2, honorProtected)
}

func (s *MockScreen) eraseRange(r1, c1, r2, c2 int, honorProtected bool) {
	width := int(s.size.X)
	for y := r1; y <= r2 && y < int(s.size.Y); y++ {
		lo, hi := 0, width-1
		if y == r1 {
			lo = c1
		}
		if y == r2 {
			hi = c2
		}
		for x := lo; x <= hi && x < width; x++ {
			idx := y*width + x
			if honorProtected && s.cells[idx].Attr.Has(Protected) {
				continue
			}
			s.cells[idx] = MockCell{R: ' ', Width: 1, Fg: s.fg, Bg: s.bg}
		}
	}
}

func (s *MockScreen) InsertBlanks(n int) {
	s.shiftRight(int(s.pos.Y), int(s.pos.X), n)
}

func (s *MockScreen) DeleteChars(n int) {
	width := int(s.size.X)
	row := int(s.pos.Y)
	base := row * width
	col := int(s.pos.X)
	for x := col; x < width-n; x++ {
		s.cells[base+x] = s.cells[base+x+n]
	}
	for x := width - n; x < width; x++ {
		if x >= col {
			s.cells[base+x] = MockCell{R: ' ', Width: 1}
		}
	}
}

func (s *MockScreen) ScrollUp(top, bottom, n int) {
	width := int(s.size.X)
	for y := top; y <= bottom; y++ {
		src := y + n
		if src > bottom {
			for x := 0; x < width; x++ {
				s.cells[y*width+x] = MockCell{R: ' ', Width: 1}
			}
			continue
		}
		copy(s.cells[y*width:y*width+width], s.cells[src*width:src*width+width])
	}
}

func (s *MockScreen) ScrollDown(top, bottom, n int) {
	width := int(s.size.X)
	for y := bottom; y >= top; y-- {
		src := y - n
		if src < top {
			for x := 0; x < width; x++ {
				s.cells[y*width+x] = MockCell{R: ' ', Width: 1}
			}
			continue
		}
		copy(s.cells[y*width:y*width+width], s.cells[src*width:src*width+width])
	}
}

func (s *MockScreen) SetDoubleWidth(on bool) {
	s.rows[int(s.pos.Y)].DoubleWidth = on
}

func (s *MockScreen) SetDoubleHeight(half DoubleHeight) {
	s.rows[int(s.pos.Y)].DoubleHeight = half
}

func (s *MockScreen) InvertColors()   { s.inverted = true }
func (s *MockScreen) DeinvertColors() { s.inverted = false }

func (s *MockScreen) Beep() { s.bells++ }

func (s *MockScreen) SetCursorVisible(visible bool) { s.visible = visible }

func (s *MockScreen) FillTestPattern(r rune) {
	for i := range s.cells {
		s.cells[i] = MockCell{R: r, Width: 1}
	}
}

// SetColors records fg/bg, resolving an RGB color to the nearest entry of
// the 256-color palette; palette and default colors are kept as given.
func (s *MockScreen) SetColors(fg, bg color.Color) {
	s.fg = s.nearest(fg)
	s.bg = s.nearest(bg)
}

func (s *MockScreen) nearest(c color.Color) color.Color {
	if c == color.Default || !c.IsRGB() {
		return c
	}
	return color.Find(c, s.palette)
}

func (s *MockScreen) Colors() int { return s.colors }

// Cell returns the cell at pos, or the zero MockCell if pos is out of
// range.
func (s *MockScreen) Cell(pos Coord) MockCell {
	if idx := s.index(pos); idx >= 0 {
		return s.cells[idx]
	}
	return MockCell{}
}

// RowFlags returns the double-width/double-height state of row.
func (s *MockScreen) RowFlags(row int) MockRowFlags {
	if row < 0 || row >= len(s.rows) {
		return MockRowFlags{}
	}
	return s.rows[row]
}

// Bells reports how many times Beep has been called.
func (s *MockScreen) Bells() int { return s.bells }

// Inverted reports whether DECSCNM is currently in effect.
func (s *MockScreen) Inverted() bool { return s.inverted }

// CursorVisible reports DECTCEM state.
func (s *MockScreen) CursorVisible() bool { return s.visible }

// PlainText reads row as a string, trailing blanks included, ignoring
// attributes and width padding cells.
func (s *MockScreen) PlainText(row int) string {
	width := int(s.size.X)
	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		c := s.cells[row*width+x]
		if c.Width == 0 {
			continue
		}
		if c.R == 0 {
			runes = append(runes, ' ')
		} else {
			runes = append(runes, c.R)
		}
	}
	return string(runes)
}
