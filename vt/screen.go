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

import "github.com/vt220lab/vtcore/color"

// DoubleHeight identifies which half of a double-height line a row
// currently represents, per DECDHL.
type DoubleHeight int

const (
	DoubleHeightNone DoubleHeight = iota
	DoubleHeightTop
	DoubleHeightBottom
)

// Screen is the narrow set of grid-side effects the parser invokes. It
// owns cursor storage, cell storage, scrollback and the color palette;
// the parser only ever reaches into it through this interface and never
// calls back into Emulator.FeedByte from inside one of these methods.
type Screen interface {
	// Size returns the usable display size in character cells.
	Size() Coord

	// CursorPosition reports the current cursor position.
	CursorPosition() Coord

	// SetCursorPosition moves the cursor directly (CUP/HVP), clamped to
	// the display. Origin mode is applied by the parser before the call,
	// which confines the row to the scroll region itself.
	SetCursorPosition(Coord)

	// MoveCursorUp/Down/Left/Right move the cursor by a relative amount,
	// clamping at the display edge. Scrolling at the scroll-region
	// boundary is not this method's concern: IND/RI/LF decide when to
	// scroll and call ScrollUp/ScrollDown themselves.
	MoveCursorUp(n int)
	MoveCursorDown(n int)
	MoveCursorLeft(n int)
	MoveCursorRight(n int)

	// CarriageReturn moves the cursor to column 0 of the current row.
	CarriageReturn()

	// PrintChar places r at the cursor using the current attribute and
	// foreground/background colors, honoring insert mode and autowrap,
	// then advances the cursor.
	PrintChar(r rune, attr Attribute, insert, autowrap bool)

	// EraseLine erases columns [startCol, endCol] of the cursor's row.
	// If honorProtected is true, cells carrying Attribute.Protected are
	// left untouched (DECSEL).
	EraseLine(startCol, endCol int, honorProtected bool)

	// EraseScreen erases the rectangular region bounded by (r1,c1) and
	// (r2,c2) inclusive. If honorProtected is true, protected cells are
	// left untouched (DECSED).
	EraseScreen(r1, c1, r2, c2 int, honorProtected bool)

	// InsertBlanks inserts n blank cells at the cursor, shifting the
	// remainder of the line right and discarding cells pushed off the
	// right edge.
	InsertBlanks(n int)

	// DeleteChars removes n cells at the cursor, shifting the remainder
	// of the line left and filling the vacated right edge with blanks.
	DeleteChars(n int)

	// ScrollUp moves lines [top,bottom] up by n, introducing n blank
	// lines at the bottom of the region.
	ScrollUp(top, bottom, n int)

	// ScrollDown moves lines [top,bottom] down by n, introducing n
	// blank lines at the top of the region.
	ScrollDown(top, bottom, n int)

	// SetDoubleWidth toggles double-width rendering for the cursor's
	// current row (DECDWL/DECSWL).
	SetDoubleWidth(on bool)

	// SetDoubleHeight marks which half of a double-height pair the
	// cursor's current row renders as (DECDHL).
	SetDoubleHeight(half DoubleHeight)

	// InvertColors and DeinvertColors implement DECSCNM, swapping the
	// default foreground/background of the whole display atomically.
	InvertColors()
	DeinvertColors()

	// Beep rings the bell (BEL).
	Beep()

	// SetCursorVisible shows or hides the text cursor (DECTCEM).
	SetCursorVisible(visible bool)

	// FillTestPattern fills every cell of the display with r, used by
	// DECALN; no attribute is passed, and the cursor position is not
	// moved by this call.
	FillTestPattern(r rune)

	// SetColors sets the current foreground/background used by
	// subsequent PrintChar calls (SGR 30-49).
	SetColors(fg, bg color.Color)

	// Colors returns the number of colors this screen supports; 0 means
	// monochrome (SGR color parameters are still parsed but ignored).
	Colors() int
}
