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

import "github.com/vt220lab/vtcore/vt/charset"

// dispatchVt52Final handles an ESC-final byte while the emulator is in
// the VT52 submode, whose single-letter command set is unrelated to the
// ANSI ESC-final grammar used outside it.
func (e *Emulator) dispatchVt52Final(final byte) {
	if e.scr == nil && final != '<' {
		return
	}
	switch final {
	case 'A': // cursor up
		e.scr.MoveCursorUp(1)
	case 'B': // cursor down
		e.scr.MoveCursorDown(1)
	case 'C': // cursor right
		e.scr.MoveCursorRight(1)
	case 'D': // cursor left
		e.scr.MoveCursorLeft(1)
	case 'F': // enter graphics mode
		e.g[0] = charset.VT52Graphics
	case 'G': // exit graphics mode
		e.g[0] = charset.US
	case 'H': // cursor home
		e.scr.SetCursorPosition(Coord{})
	case 'I': // reverse linefeed
		e.doRI()
	case 'J': // erase to end of screen
		pos := e.scr.CursorPosition()
		sz := e.scr.Size()
		e.scr.EraseScreen(int(pos.Y), int(pos.X), int(sz.Y)-1, int(sz.X)-1, false)
	case 'K': // erase to end of line
		pos := e.scr.CursorPosition()
		sz := e.scr.Size()
		e.scr.EraseLine(int(pos.X), int(sz.X)-1, false)
	case 'Z': // identify: respond as VT52
		if e.writeBack != nil {
			e.writeBack([]byte("\x1b/Z"))
		}
	case '=': // enter alternate keypad mode
		e.appKeypad = true
	case '>': // exit alternate keypad mode
		e.appKeypad = false
	case '<': // leave VT52 submode, enter ANSI mode (DECANM set)
		e.vt52 = false
	}
}

// stepVt52DirectCursorAddress implements the two-byte VT52 direct cursor
// address: the first byte (row) is collected, the second (column) closes
// the sequence. Oversized input is clamped to screen bounds rather than
// left unclamped, an intentional hardening over the source VT52 wire
// behaviour.
func stepVt52DirectCursorAddress(e *Emulator, b byte) (Status, rune) {
	if e.vt52Row < 0 {
		e.vt52Row = int(b) - 0x20
		return NoCharYet, 0
	}
	row := e.vt52Row
	col := int(b) - 0x20
	e.vt52Row = -1
	e.toGround()
	if e.scr == nil {
		return NoCharYet, 0
	}
	sz := e.scr.Size()
	row = clamp(row, 0, int(sz.Y)-1)
	col = clamp(col, 0, int(sz.X)-1)
	e.scr.SetCursorPosition(Coord{X: Col(col), Y: Row(row)})
	return NoCharYet, 0
}
