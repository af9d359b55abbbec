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

// csiSetMode implements DECSET/DECRESET (CSI ? Ps h/l) and the plain
// ANSI mode sequences (CSI Ps h/l). on is true for 'h', false for 'l'.
// Every parameter in the sequence is applied independently.
func (e *Emulator) csiSetMode(on bool) {
	n := e.params.count()
	if n == 0 {
		n = 1 // a bare h/l with no parameter still dispatches once with 0
	}
	for i := 0; i < n; i++ {
		p := e.params.get(i, 0)
		if e.collect.private() {
			e.setPrivateMode(PrivateMode(p), on)
		} else {
			e.setAnsiMode(AnsiMode(p), on)
		}
	}
}

func (e *Emulator) setPrivateMode(pm PrivateMode, on bool) {
	switch pm {
	case DECCKM:
		e.appCursor = on
	case DECANM:
		e.vt52 = !on
	case DECCOLM:
		e.deccolm = on
		if e.scr != nil {
			width, height := e.screenBounds()
			e.scr.EraseScreen(0, 0, height-1, width-1, false)
			e.scrollTop, e.scrollBottom = 0, height-1
			e.scr.SetCursorPosition(Coord{})
		}
	case DECSCLM:
		// smooth scroll: accepted, no behavioral effect here
	case DECSCNM:
		if on != e.decscnm {
			e.decscnm = on
			if e.scr != nil {
				if on {
					e.scr.InvertColors()
				} else {
					e.scr.DeinvertColors()
				}
			}
		}
	case DECOM:
		e.decom = on
	case DECAWM:
		e.decawm = on
	case DECARM:
		// auto-repeat: accepted, no-op (keystroke-side concern)
	case DECTCEM:
		e.dectcem = on
		if e.scr != nil {
			e.scr.SetCursorVisible(on)
		}
	case DECNRCM:
		// NRC vs multinational: accepted, no-op
	}
}

func (e *Emulator) setAnsiMode(m AnsiMode, on bool) {
	switch m {
	case KAM:
		// keyboard action mode: accepted, no-op
	case IRM:
		e.insertMode = on
	case SRM:
		// local echo: accepted, no-op; keystroke-side concern
	case LNM:
		e.lnm = on
	}
}

// privateModeStatus reports DECRQM status for a private mode.
func (e *Emulator) privateModeStatus(pm PrivateMode) ModeStatus {
	switch pm {
	case DECCKM:
		return boolStatus(e.appCursor)
	case DECANM:
		return boolStatus(!e.vt52)
	case DECCOLM:
		return boolStatus(e.deccolm)
	case DECSCLM:
		return ModeOff
	case DECSCNM:
		return boolStatus(e.decscnm)
	case DECOM:
		return boolStatus(e.decom)
	case DECAWM:
		return boolStatus(e.decawm)
	case DECARM:
		return ModeOnLocked
	case DECTCEM:
		return boolStatus(e.dectcem)
	case DECNRCM:
		return ModeOff
	default:
		return ModeNA
	}
}

func boolStatus(on bool) ModeStatus {
	if on {
		return ModeOn
	}
	return ModeOff
}
