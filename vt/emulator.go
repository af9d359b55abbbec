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
	"github.com/vt220lab/vtcore/color"
	"github.com/vt220lab/vtcore/vt/charset"
)

// Config carries the small set of host-configurable knobs the core needs;
// everything else (palette, fonts, scrollback) belongs to the Screen.
type Config struct {
	// AnswerbackString is sent to the host in response to ENQ (0x05).
	AnswerbackString string

	// EnableColor turns on SGR 30-49 color parameter handling. When
	// false, color parameters are parsed (so later parameters in the
	// same sequence still apply) but never reach the Screen.
	EnableColor bool

	// DisplayNull, when true, makes NUL (0x00) print a space instead of
	// being discarded.
	DisplayNull bool

	// HardBackspace affects only the keystroke side (package keymap);
	// the core parser does not consult it.
	HardBackspace bool
}

// Emulator is a VT100/VT102/VT220 parser instance. The zero value is not
// usable; construct one with New.
type Emulator struct {
	scr   Screen
	cfg   Config
	level EmulationLevel

	writeBack func([]byte)

	state   parserState
	inb     func(*Emulator, byte) (Status, rune)
	params  paramBuf
	collect collectBuf

	vt52 bool

	g        [4]charset.Set
	gl       int // index 0-3 into g, selected by locking shift
	grLock   int // 0 = independent default; 1-3 = locked to G1/G2/G3
	grSource charset.Set
	ss       int // 0 none, 2 or 3 for a pending single shift

	s8c1t bool

	insertMode bool
	lnm        bool
	decom      bool
	decawm     bool
	decscnm    bool
	deccolm    bool
	dectcem    bool
	appCursor  bool
	appKeypad  bool

	printerController bool

	attr   Attribute
	fg, bg color.Color

	saved *savedState

	tabs          []int
	scrollTop     int
	scrollBottom  int

	vt52Row int // first byte of a VT52 direct cursor address, or -1

	pendingEsc bool // saw ESC while inside a Dcs* state, awaiting '\' to form ST

	idName, idVersion string // set via SetID, answers CSI > q if non-empty
}

// SetID installs the name and version CSI > q (XTVERSION) reports. A
// zero-value Emulator never answers that query, so callers who never
// call SetID see no change in behavior.
func (e *Emulator) SetID(name, version string) {
	e.idName, e.idVersion = name, version
}

// New creates an Emulator driving scr, starting at the given emulation
// level. writeBack receives response bytes synthesized by DA, DSR,
// DECREQTPARM and ENQ; it must not call back into FeedByte.
func New(scr Screen, level EmulationLevel, cfg Config, writeBack func([]byte)) *Emulator {
	e := &Emulator{scr: scr, cfg: cfg, writeBack: writeBack}
	e.SetEmulationLevel(level)
	e.Reset()
	return e
}

// SetEmulationLevel changes which terminal the parser answers DA/wire
// conventions as. It does not otherwise reset state.
func (e *Emulator) SetEmulationLevel(level EmulationLevel) {
	e.level = level
}

// Reset performs a full RIS: clears modes to defaults, resets tab stops,
// clears the screen, and homes the cursor.
func (e *Emulator) Reset() {
	e.vt52 = false
	e.g = [4]charset.Set{charset.US, charset.DECSpecialGraphics, charset.US, charset.US}
	e.gl = 0
	e.grLock = 0
	e.grSource = charset.DECSupplemental
	e.ss = 0
	e.s8c1t = false
	e.insertMode = false
	e.lnm = false
	e.decom = false
	e.decawm = true
	e.decscnm = false
	e.deccolm = false
	e.dectcem = true
	e.appCursor = false
	e.appKeypad = false
	e.printerController = false
	e.attr = Plain
	e.fg, e.bg = color.Default, color.Default
	e.saved = nil
	e.vt52Row = -1

	if e.scr != nil {
		sz := e.scr.Size()
		e.scrollTop = 0
		e.scrollBottom = int(sz.Y) - 1
		e.resetTabs(int(sz.X))
		e.scr.SetColors(e.fg, e.bg)
		e.scr.SetCursorVisible(true)
		e.scr.EraseScreen(0, 0, int(sz.Y)-1, int(sz.X)-1, false)
		e.scr.SetCursorPosition(Coord{})
	}
	e.toGround()
}

func (e *Emulator) resetTabs(width int) {
	e.tabs = e.tabs[:0]
	for col := 8; col < width; col += 8 {
		e.tabs = append(e.tabs, col)
	}
}

// FeedByte consumes one input byte, applying anywhere-transitions before
// dispatching on the current parser state. The returned rune is valid
// only when Status is OneChar.
func (e *Emulator) FeedByte(b byte) (Status, rune) {
	if e.level != VT220 {
		b &= 0x7f
	}

	switch b {
	case 0x18, 0x1a: // CAN, SUB
		e.toGround()
		return NoCharYet, 0
	case 0x7f:
		return NoCharYet, 0
	}

	if b == 0x1b && !e.inDcsState() {
		e.enterEscape()
		return NoCharYet, 0
	}

	if e.level == VT220 {
		switch b {
		case 0x9b:
			e.enterCsiEntry()
			return NoCharYet, 0
		case 0x9d:
			e.enterOscString()
			return NoCharYet, 0
		case 0x90:
			e.enterDcsEntry()
			return NoCharYet, 0
		case 0x98, 0x9e, 0x9f:
			e.enterSosPmApcString()
			return NoCharYet, 0
		}
	}

	return e.inb(e, b)
}

func (e *Emulator) inDcsState() bool {
	switch e.state {
	case stateDcsEntry, stateDcsParam, stateDcsIntermediate, stateDcsPassthrough, stateDcsIgnore:
		return true
	default:
		return false
	}
}

// setState transitions to s and rebinds the per-state dispatch function.
// Any transition back to Ground clears the parameter and collect buffers,
// per the driver's contract.
func (e *Emulator) setState(s parserState) {
	e.state = s
	switch s {
	case stateGround:
		e.params.reset()
		e.collect.reset()
		e.inb = stepGround
	case stateEscape:
		e.inb = stepEscape
	case stateEscIntermediate:
		e.inb = stepEscIntermediate
	case stateCsiEntry:
		e.inb = stepCsiEntry
	case stateCsiParam:
		e.inb = stepCsiParam
	case stateCsiIntermediate:
		e.inb = stepCsiIntermediate
	case stateCsiIgnore:
		e.inb = stepCsiIgnore
	case stateDcsEntry:
		e.inb = stepDcsEntry
	case stateDcsParam:
		e.inb = stepDcsParam
	case stateDcsIntermediate:
		e.inb = stepDcsIntermediate
	case stateDcsPassthrough:
		e.inb = stepDcsPassthrough
	case stateDcsIgnore:
		e.inb = stepDcsIgnore
	case stateSosPmApcString:
		e.inb = stepSosPmApcString
	case stateOscString:
		e.inb = stepOscString
	case stateVt52DirectCursorAddress:
		e.inb = stepVt52DirectCursorAddress
	}
}

func (e *Emulator) toGround() { e.setState(stateGround) }

func (e *Emulator) enterEscape() {
	e.params.reset()
	e.collect.reset()
	e.setState(stateEscape)
}

func (e *Emulator) enterCsiEntry() {
	e.params.reset()
	e.collect.reset()
	e.setState(stateCsiEntry)
}

func (e *Emulator) enterOscString() {
	e.collect.reset()
	e.setState(stateOscString)
}

func (e *Emulator) enterDcsEntry() {
	e.params.reset()
	e.collect.reset()
	e.setState(stateDcsEntry)
}

func (e *Emulator) enterSosPmApcString() {
	e.setState(stateSosPmApcString)
}
