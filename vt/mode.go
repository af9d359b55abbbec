// Copyright 2025 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use file except in compliance with the License.
// You may obtain a copy of the license at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vt

import "fmt"

// PrivateMode identifies a DEC private mode settable via CSI ? Ps h / l.
// Only the modes this catalogue's emulation levels actually recognize are
// named; an unrecognized numeric parameter is accepted by the parser but
// has no effect and reports ModeNA to DECRQM.
type PrivateMode int

const (
	DECCKM  PrivateMode = 1  // application cursor keys
	DECANM  PrivateMode = 2  // ANSI mode; reset enters VT52 submode
	DECCOLM PrivateMode = 3  // 80/132 column mode
	DECSCLM PrivateMode = 4  // smooth scroll (accepted, no-op)
	DECSCNM PrivateMode = 5  // reverse video screen
	DECOM   PrivateMode = 6  // origin mode
	DECAWM  PrivateMode = 7  // autowrap
	DECARM  PrivateMode = 8  // auto-repeat (accepted, no-op)
	DECTCEM PrivateMode = 25 // text cursor enable (VT220)
	DECNRCM PrivateMode = 42 // NRC vs multinational (accepted, no-op)
)

// Query returns the DECRQM string used to query the state of this mode.
func (pm PrivateMode) Query() string {
	return fmt.Sprintf("\x1b[?%d$p", pm)
}

// Reply returns a DECRQM response string reporting status for this mode.
func (pm PrivateMode) Reply(status ModeStatus) string {
	return fmt.Sprintf("\x1b[?%d;%d$y", pm, status)
}

// AnsiMode identifies an ANSI (non-DEC-private) mode settable via
// CSI Ps h / l without the '?' private marker.
type AnsiMode int

const (
	KAM AnsiMode = 2  // keyboard action mode (accepted, no-op)
	IRM AnsiMode = 4  // insert/replace mode
	SRM AnsiMode = 12 // local echo (accepted, no-op here; keystroke side)
	LNM AnsiMode = 20 // linefeed/newline mode
)

// ModeStatus represents the status of a mode as reported by DECRQM.
type ModeStatus int

const (
	ModeNA        ModeStatus = 0 // mode is not recognized
	ModeOn        ModeStatus = 1 // mode is on
	ModeOff       ModeStatus = 2 // mode is off
	ModeOnLocked  ModeStatus = 3 // hardwired on, cannot be changed
	ModeOffLocked ModeStatus = 4 // hardwired off, cannot be changed
)

// Changeable reports whether the mode may be changed by DECSET/DECRESET.
func (ms ModeStatus) Changeable() bool {
	return ms == ModeOn || ms == ModeOff
}
