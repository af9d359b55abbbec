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

// stepEscape handles the byte immediately after ESC.
func stepEscape(e *Emulator, b byte) (Status, rune) {
	switch {
	case b >= 0x20 && b <= 0x2f:
		e.collect.add(b)
		e.setState(stateEscIntermediate)
		return NoCharYet, 0
	case b == 0x50:
		e.setState(stateDcsEntry)
		return NoCharYet, 0
	case b == 0x58 || b == 0x5e || b == 0x5f:
		e.setState(stateSosPmApcString)
		return NoCharYet, 0
	case b == 0x5b:
		e.setState(stateCsiEntry)
		return NoCharYet, 0
	case b == 0x5d:
		e.setState(stateOscString)
		return NoCharYet, 0
	case e.vt52 && b == 'Y':
		e.vt52Row = -1
		e.setState(stateVt52DirectCursorAddress)
		return NoCharYet, 0
	case isEscFinal(b):
		e.dispatchEscFinal(0, b)
		e.toGround()
		return NoCharYet, 0
	default:
		e.toGround()
		return NoCharYet, 0
	}
}

// stepEscIntermediate handles bytes after one or more ESC intermediates
// have been collected (e.g. the '(' of a charset designator, or '#').
func stepEscIntermediate(e *Emulator, b byte) (Status, rune) {
	switch {
	case b >= 0x20 && b <= 0x2f:
		e.collect.add(b)
		return NoCharYet, 0
	case b >= 0x30 && b <= 0x7e:
		first := byte(0)
		if bs := e.collect.bytes(); len(bs) > 0 {
			first = bs[0]
		}
		e.dispatchEscFinal(first, b)
		e.toGround()
		return NoCharYet, 0
	default:
		e.toGround()
		return NoCharYet, 0
	}
}

func isEscFinal(b byte) bool {
	switch {
	case b >= 0x30 && b <= 0x4f:
		return true
	case b >= 0x51 && b <= 0x57:
		return true
	case b == 0x59 || b == 0x5a || b == 0x5c:
		return true
	case b >= 0x60 && b <= 0x7e:
		return true
	default:
		return false
	}
}

// dispatchEscFinal runs the action for an ESC sequence whose first
// collected byte (0 if none) and final byte are given. Charset
// designators go through a dedicated path since the first collected byte
// selects which G-register is targeted rather than naming an action.
func (e *Emulator) dispatchEscFinal(first, final byte) {
	if e.vt52 {
		e.dispatchVt52Final(final)
		return
	}
	if reg, ok := registerForDesignator(first); ok {
		e.designateCharset(reg, e.collect.bytes()[1:], final)
		return
	}
	if first == '#' {
		e.dispatchHash(final)
		return
	}

	switch final {
	case 'c': // RIS
		e.Reset()
	case '7': // DECSC
		e.saveCursor()
	case '8': // DECRC
		e.restoreCursor()
	case '=': // application keypad
		e.appKeypad = true
	case '>': // numeric keypad
		e.appKeypad = false
	case 'D': // IND
		e.doIND()
	case 'E': // NEL
		e.doIND()
		if e.scr != nil {
			e.scr.CarriageReturn()
		}
	case 'H': // HTS
		e.tabSet()
	case 'M': // RI
		e.doRI()
	case 'N': // SS2
		e.ss = 2
	case 'O': // SS3
		e.ss = 3
	case 'n': // LS2: lock-shift G2 into GL
		e.gl = 2
	case 'o': // LS3: lock-shift G3 into GL
		e.gl = 3
	case '~': // LS1R: lock-shift G1 into GR
		e.grLock = 1
	case '}': // LS2R: lock-shift G2 into GR
		e.grLock = 2
	case '|': // LS3R: lock-shift G3 into GR
		e.grLock = 3
	}
}

// registerForDesignator maps the first byte of a charset designator
// sequence ( ) * + to the G-register index it targets.
func registerForDesignator(b byte) (int, bool) {
	switch b {
	case '(':
		return 0, true
	case ')':
		return 1, true
	case '*':
		return 2, true
	case '+':
		return 3, true
	default:
		return 0, false
	}
}

// designateCharset selects a character set for G-register reg. extra
// holds any intermediate bytes collected between the register selector
// and final (only '%' two-byte designators are recognized here).
func (e *Emulator) designateCharset(reg int, extra []byte, final byte) {
	var set charset.Set
	var ok bool
	if len(extra) > 0 {
		set, ok = charset.FromIntermediateFinal(extra[len(extra)-1], final)
	} else {
		set, ok = charset.FromFinal(final)
	}
	if ok {
		e.g[reg] = set
	}
}

// dispatchHash handles ESC # n: DECDHL top/bottom, DECSWL, DECDWL, DECALN.
func (e *Emulator) dispatchHash(final byte) {
	if e.scr == nil {
		return
	}
	switch final {
	case '3':
		e.scr.SetDoubleHeight(DoubleHeightTop)
	case '4':
		e.scr.SetDoubleHeight(DoubleHeightBottom)
	case '5':
		e.scr.SetDoubleHeight(DoubleHeightNone)
		e.scr.SetDoubleWidth(false)
	case '6':
		e.scr.SetDoubleWidth(true)
	case '8':
		e.scr.FillTestPattern('E')
	}
}

func (e *Emulator) saveCursor() {
	s := savedState{
		pos:      e.scr.CursorPosition(),
		attr:     e.attr,
		decom:    e.decom,
		g:        e.g,
		gl:       e.gl,
		gr:       e.grLock,
		autowrap: e.decawm,
	}
	e.saved = &s
}

func (e *Emulator) restoreCursor() {
	var s savedState
	if e.saved != nil {
		s = *e.saved
	} else {
		s = defaultSavedState()
	}
	e.attr = s.attr
	e.decom = s.decom
	e.g = s.g
	e.gl = s.gl
	e.grLock = s.gr
	e.decawm = s.autowrap
	if e.scr != nil {
		e.scr.SetCursorPosition(s.pos)
	}
}
