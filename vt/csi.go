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

func stepCsiEntry(e *Emulator, b byte) (Status, rune) {
	switch {
	case b >= 0x20 && b <= 0x2f:
		e.collect.add(b)
		e.setState(stateCsiIntermediate)
	case (b >= '0' && b <= '9') || b == ';':
		e.feedParam(b)
		e.setState(stateCsiParam)
	case b >= 0x3c && b <= 0x3f:
		e.collect.add(b)
		e.setState(stateCsiParam)
	case b == 0x3a:
		e.setState(stateCsiIgnore)
	case b >= 0x40 && b <= 0x7e:
		e.dispatchCsi(b)
		e.toGround()
	default:
		e.toGround()
	}
	return NoCharYet, 0
}

func stepCsiParam(e *Emulator, b byte) (Status, rune) {
	switch {
	case (b >= '0' && b <= '9') || b == ';':
		e.feedParam(b)
	case b >= 0x20 && b <= 0x2f:
		e.collect.add(b)
		e.setState(stateCsiIntermediate)
	case b == 0x3a || (b >= 0x3c && b <= 0x3f):
		e.setState(stateCsiIgnore)
	case b >= 0x40 && b <= 0x7e:
		e.dispatchCsi(b)
		e.toGround()
	default:
		e.toGround()
	}
	return NoCharYet, 0
}

func stepCsiIntermediate(e *Emulator, b byte) (Status, rune) {
	switch {
	case b >= 0x20 && b <= 0x2f:
		e.collect.add(b)
	case b >= 0x30 && b <= 0x3f:
		e.setState(stateCsiIgnore)
	case b >= 0x40 && b <= 0x7e:
		e.dispatchCsi(b)
		e.toGround()
	default:
		e.toGround()
	}
	return NoCharYet, 0
}

func stepCsiIgnore(e *Emulator, b byte) (Status, rune) {
	switch {
	case b >= 0x20 && b <= 0x3f:
		// ignore
	case b >= 0x40 && b <= 0x7e:
		e.toGround()
	default:
		e.toGround()
	}
	return NoCharYet, 0
}

func (e *Emulator) feedParam(b byte) {
	if b == ';' {
		e.params.separator()
	} else {
		e.params.digit(b)
	}
}

// dispatchCsi runs the action for a completed CSI sequence: collected
// bytes hold any private marker / intermediate, params holds the
// semicolon-separated numeric arguments, and final is the terminating
// byte in 0x40-0x7e.
func (e *Emulator) dispatchCsi(final byte) {
	if e.collect.has('$') && final == 'p' {
		e.decrqm()
		return
	}
	if e.collect.has('"') && final == 'q' {
		e.csiDECSCA()
		return
	}
	if e.collect.has('>') && final == 'q' {
		e.csiXTVersion()
		return
	}

	switch final {
	case '@':
		e.csiICH()
	case 'A':
		e.csiCUU()
	case 'B':
		e.csiCUD()
	case 'C':
		e.csiCUF()
	case 'D':
		e.csiCUB()
	case 'H', 'f':
		e.csiCUP()
	case 'J':
		e.csiED()
	case 'K':
		e.csiEL()
	case 'L':
		e.csiIL()
	case 'M':
		e.csiDL()
	case 'P':
		e.csiDCH()
	case 'X':
		e.csiECH()
	case 'c':
		e.csiDA()
	case 'g':
		e.csiTBC()
	case 'i':
		e.csiMC()
	case 'm':
		e.csiSGR()
	case 'n':
		e.csiDSR()
	case 'r':
		e.csiDECSTBM()
	case 'x':
		e.csiDECREQTPARM()
	case 'h':
		e.csiSetMode(true)
	case 'l':
		e.csiSetMode(false)
	}
}

func (e *Emulator) screenBounds() (width, height int) {
	sz := e.scr.Size()
	return int(sz.X), int(sz.Y)
}

func (e *Emulator) csiCUU() {
	if e.scr == nil {
		return
	}
	e.scr.MoveCursorUp(e.params.get(0, 1))
}

func (e *Emulator) csiCUD() {
	if e.scr == nil {
		return
	}
	e.scr.MoveCursorDown(e.params.get(0, 1))
}

func (e *Emulator) csiCUF() {
	if e.scr == nil {
		return
	}
	e.scr.MoveCursorRight(e.params.get(0, 1))
}

func (e *Emulator) csiCUB() {
	if e.scr == nil {
		return
	}
	e.scr.MoveCursorLeft(e.params.get(0, 1))
}

// csiCUP implements CUP/HVP. In origin mode the row;col pair is relative
// to the scroll region and the cursor cannot leave it; otherwise it is
// absolute to the display.
func (e *Emulator) csiCUP() {
	if e.scr == nil {
		return
	}
	row := e.params.get(0, 1) - 1
	col := e.params.get(1, 1) - 1
	width, height := e.screenBounds()
	if e.decom {
		row = clamp(row, 0, e.scrollBottom-e.scrollTop) + e.scrollTop
	} else {
		row = clamp(row, 0, height-1)
	}
	col = clamp(col, 0, width-1)
	e.scr.SetCursorPosition(Coord{X: Col(col), Y: Row(row)})
}

// csiED implements ED: 0 cursor->end, 1 start->cursor, 2 whole screen.
func (e *Emulator) csiED() {
	if e.scr == nil {
		return
	}
	width, height := e.screenBounds()
	pos := e.scr.CursorPosition()
	honor := e.level == VT220 && e.collect.private()
	switch e.params.get(0, 0) {
	case 0:
		e.scr.EraseScreen(int(pos.Y), int(pos.X), height-1, width-1, honor)
	case 1:
		e.scr.EraseScreen(0, 0, int(pos.Y), int(pos.X), honor)
	case 2:
		e.scr.EraseScreen(0, 0, height-1, width-1, honor)
	}
}

// csiEL implements EL: same parameter shape as ED but within the line.
func (e *Emulator) csiEL() {
	if e.scr == nil {
		return
	}
	width, _ := e.screenBounds()
	pos := e.scr.CursorPosition()
	honor := e.level == VT220 && e.collect.private()
	switch e.params.get(0, 0) {
	case 0:
		e.scr.EraseLine(int(pos.X), width-1, honor)
	case 1:
		e.scr.EraseLine(0, int(pos.X), honor)
	case 2:
		e.scr.EraseLine(0, width-1, honor)
	}
}

func (e *Emulator) csiICH() {
	if e.scr == nil {
		return
	}
	e.scr.InsertBlanks(e.params.get(0, 1))
}

func (e *Emulator) csiDCH() {
	if e.scr == nil {
		return
	}
	e.scr.DeleteChars(e.params.get(0, 1))
}

func (e *Emulator) csiECH() {
	if e.scr == nil {
		return
	}
	width, _ := e.screenBounds()
	pos := e.scr.CursorPosition()
	n := e.params.get(0, 1)
	end := int(pos.X) + n - 1
	if end > width-1 {
		end = width - 1
	}
	honor := e.level == VT220 && e.collect.private()
	e.scr.EraseLine(int(pos.X), end, honor)
}

// csiIL inserts n lines at the cursor row if it lies within the scroll
// region, equivalent to scrolling that subregion down.
func (e *Emulator) csiIL() {
	if e.scr == nil {
		return
	}
	row := int(e.scr.CursorPosition().Y)
	if row < e.scrollTop || row > e.scrollBottom {
		return
	}
	e.scr.ScrollDown(row, e.scrollBottom, e.params.get(0, 1))
}

// csiDL deletes n lines at the cursor row if within the scroll region.
func (e *Emulator) csiDL() {
	if e.scr == nil {
		return
	}
	row := int(e.scr.CursorPosition().Y)
	if row < e.scrollTop || row > e.scrollBottom {
		return
	}
	e.scr.ScrollUp(row, e.scrollBottom, e.params.get(0, 1))
}

// csiDECSTBM sets the scroll region and homes the cursor.
func (e *Emulator) csiDECSTBM() {
	if e.scr == nil {
		return
	}
	_, height := e.screenBounds()
	top := e.params.get(0, 1) - 1
	bottom := e.params.get(1, height) - 1
	top = clamp(top, 0, height-1)
	bottom = clamp(bottom, 0, height-1)
	if top >= bottom {
		top, bottom = 0, height-1
	}
	e.scrollTop, e.scrollBottom = top, bottom
	if e.decom {
		e.scr.SetCursorPosition(Coord{X: 0, Y: Row(top)})
	} else {
		e.scr.SetCursorPosition(Coord{})
	}
}

// csiTBC implements TBC: 0 clears the stop at the cursor, 3 clears all.
func (e *Emulator) csiTBC() {
	e.tabClear(e.params.get(0, 0))
}

// csiMC implements the printer-controller toggle (CSI i / CSI ? i); all
// other media-copy variants are accepted and ignored.
func (e *Emulator) csiMC() {
	switch e.params.get(0, 0) {
	case 5:
		e.printerController = true
	case 4:
		e.printerController = false
	}
}
