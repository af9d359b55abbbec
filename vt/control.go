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

// stepGround is the Ground state's per-byte handler: C0 controls execute
// immediately, 0x20-0x7e print through GL, and on VT220 the 8-bit range
// either executes a C1 control or prints through GR.
func stepGround(e *Emulator, b byte) (Status, rune) {
	switch {
	case b <= 0x1f:
		return e.handleC0(b)
	case b >= 0x20 && b <= 0x7e:
		return e.emitGL(b)
	case e.level == VT220 && b >= 0x80 && b <= 0x9f:
		return e.handleC1(b)
	case e.level == VT220 && b >= 0xa0:
		return e.emitGR(b)
	default:
		return NoCharYet, 0
	}
}

// emitGL prints the GL-mapped character for b, honoring a pending single
// shift and the printer-controller flag.
func (e *Emulator) emitGL(b byte) (Status, rune) {
	idx := e.glIndex()
	if e.printerController {
		return NoCharYet, 0
	}
	r := e.g[idx].Lookup(int(b))
	e.printRune(r)
	return OneChar, r
}

// emitGR prints the GR-mapped character for an 8-bit byte (VT220 only).
func (e *Emulator) emitGR(b byte) (Status, rune) {
	if e.printerController {
		return NoCharYet, 0
	}
	set := e.grSource
	if e.grLock != 0 {
		set = e.g[e.grLock]
	}
	r := set.Lookup(int(b & 0x7f))
	e.printRune(r)
	return OneChar, r
}

// printRune forwards a decoded character to the Screen, honoring insert
// mode and autowrap.
func (e *Emulator) printRune(r rune) {
	if e.scr != nil {
		e.scr.PrintChar(r, e.attr, e.insertMode, e.decawm)
	}
}

// glIndex returns which G-register GL currently reads from, consuming a
// pending single shift (SS2/SS3) if one is active.
func (e *Emulator) glIndex() int {
	if e.ss == 2 || e.ss == 3 {
		idx := e.ss
		e.ss = 0
		return idx
	}
	return e.gl
}

// handleC0 dispatches a 0x00-0x1f control byte.
func (e *Emulator) handleC0(b byte) (Status, rune) {
	switch b {
	case 0x00: // NUL
		if e.cfg.DisplayNull {
			return OneChar, ' '
		}
		return NoCharYet, 0
	case 0x05: // ENQ
		e.sendAnswerback()
	case 0x07: // BEL
		if e.scr != nil {
			e.scr.Beep()
		}
	case 0x08: // BS
		if e.scr != nil {
			e.scr.MoveCursorLeft(1)
		}
	case 0x09: // HT
		e.tabForward()
	case 0x0a, 0x0b, 0x0c: // LF, VT, FF
		e.doIND()
		if e.lnm && e.scr != nil {
			e.scr.CarriageReturn()
		}
	case 0x0d: // CR
		if e.scr != nil {
			e.scr.CarriageReturn()
		}
	case 0x0e: // SO
		e.gl = 1
	case 0x0f: // SI
		e.gl = 0
	}
	return NoCharYet, 0
}

// handleC1 dispatches an 0x80-0x9f control byte on a VT220 in Ground
// state. The C1 introducers that start a new sequence (CSI, OSC, DCS,
// SOS/PM/APC) are handled as anywhere-transitions in FeedByte and never
// reach here; this covers the remaining single-byte C1 controls.
func (e *Emulator) handleC1(b byte) (Status, rune) {
	switch b {
	case 0x84: // IND
		e.doIND()
	case 0x85: // NEL
		e.doIND()
		if e.scr != nil {
			e.scr.CarriageReturn()
		}
	case 0x88: // HTS
		e.tabSet()
	case 0x8d: // RI
		e.doRI()
	case 0x8e: // SS2
		e.ss = 2
	case 0x8f: // SS3
		e.ss = 3
	}
	return NoCharYet, 0
}

// doIND implements IND: scroll the region if the cursor is on its bottom
// edge, then move down.
func (e *Emulator) doIND() {
	if e.scr == nil {
		return
	}
	if int(e.scr.CursorPosition().Y) == e.scrollBottom {
		e.scr.ScrollUp(e.scrollTop, e.scrollBottom, 1)
	} else {
		e.scr.MoveCursorDown(1)
	}
}

// doRI implements RI: scroll the region if the cursor is on its top
// edge, then move up.
func (e *Emulator) doRI() {
	if e.scr == nil {
		return
	}
	if int(e.scr.CursorPosition().Y) == e.scrollTop {
		e.scr.ScrollDown(e.scrollTop, e.scrollBottom, 1)
	} else {
		e.scr.MoveCursorUp(1)
	}
}

func (e *Emulator) tabForward() {
	if e.scr == nil {
		return
	}
	pos := e.scr.CursorPosition()
	width := int(e.scr.Size().X)
	next := width - 1
	for _, col := range e.tabs {
		if col > int(pos.X) {
			next = col
			break
		}
	}
	e.scr.SetCursorPosition(Coord{X: Col(next), Y: pos.Y})
}

func (e *Emulator) tabSet() {
	if e.scr == nil {
		return
	}
	col := int(e.scr.CursorPosition().X)
	for i, c := range e.tabs {
		if c == col {
			return
		}
		if c > col {
			e.tabs = append(e.tabs[:i], append([]int{col}, e.tabs[i:]...)...)
			return
		}
	}
	e.tabs = append(e.tabs, col)
}

// tabClear implements TBC: ps==0 clears the stop at the cursor column,
// ps==3 clears all stops.
func (e *Emulator) tabClear(ps int) {
	if e.scr == nil {
		return
	}
	switch ps {
	case 0:
		col := int(e.scr.CursorPosition().X)
		for i, c := range e.tabs {
			if c == col {
				e.tabs = append(e.tabs[:i], e.tabs[i+1:]...)
				return
			}
		}
	case 3:
		e.tabs = e.tabs[:0]
	}
}

func (e *Emulator) sendAnswerback() {
	if e.writeBack != nil && e.cfg.AnswerbackString != "" {
		e.writeBack([]byte(e.cfg.AnswerbackString))
	}
}
