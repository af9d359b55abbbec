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

import "fmt"

// csiIntroducer returns the bytes a response uses to introduce a CSI
// sequence: the two-byte "ESC [" form, or the 8-bit 0x9B form when S8C1T
// is active on a VT220.
func (e *Emulator) csiIntroducer() string {
	if e.level == VT220 && e.s8c1t {
		return "\x9b"
	}
	return "\x1b["
}

func (e *Emulator) reply(s string) {
	if e.writeBack != nil {
		e.writeBack([]byte(s))
	}
}

// csiDA implements DA: primary (CSI c / CSI = c) and secondary (CSI > c).
func (e *Emulator) csiDA() {
	if e.collect.has('>') {
		e.reply(e.csiIntroducer() + ">1;10;0c")
		return
	}
	switch e.level {
	case VT100:
		e.reply(e.csiIntroducer() + "?1;2c")
	case VT102:
		e.reply(e.csiIntroducer() + "?6c")
	case VT220:
		e.reply(e.csiIntroducer() + "?62;1;6c")
	}
}

// csiXTVersion implements CSI > q: a DCS-wrapped name/version report,
// only sent when the host has opted in with SetID. Left silent otherwise
// so it never changes default behavior for hosts that never call it.
func (e *Emulator) csiXTVersion() {
	if e.idName == "" {
		return
	}
	e.reply(fmt.Sprintf("\x1bP>|%s %s\x1b\\", e.idName, e.idVersion))
}

// csiDSR implements DSR: 5 operating status, 6 cursor position report,
// 15 printer status, and on VT220 also 25 (UDK) and 26 (keyboard).
func (e *Emulator) csiDSR() {
	switch e.params.get(0, 0) {
	case 5:
		e.reply(e.csiIntroducer() + "0n")
	case 6:
		e.reportCursorPosition()
	case 15:
		e.reply(e.csiIntroducer() + "?13n") // no printer connected
	case 25:
		if e.level == VT220 {
			e.reply(e.csiIntroducer() + "?20n") // no UDK support
		}
	case 26:
		if e.level == VT220 {
			e.reply(e.csiIntroducer() + "?27;1n") // North American keyboard
		}
	}
}

func (e *Emulator) reportCursorPosition() {
	if e.scr == nil {
		return
	}
	pos := e.scr.CursorPosition()
	row := int(pos.Y)
	if e.decom {
		row -= e.scrollTop
	}
	e.reply(fmt.Sprintf("%s%d;%dR", e.csiIntroducer(), row+1, int(pos.X)+1))
}

// csiDECREQTPARM implements the DECREQTPARM reply: the single parameter
// (0 or 1, defaulting to 0) is echoed back incremented by 2.
func (e *Emulator) csiDECREQTPARM() {
	p := e.params.get(0, 0)
	e.reply(fmt.Sprintf("%s%d;1;1;128;128;1;0x", e.csiIntroducer(), p+2))
}

// decrqm implements CSI ? Ps $ p: report whether a private mode is
// recognized and, if so, its current status.
func (e *Emulator) decrqm() {
	if e.params.count() == 0 {
		return
	}
	pm := PrivateMode(e.params.get(0, 0))
	status := e.privateModeStatus(pm)
	e.reply(pm.Reply(status))
}
