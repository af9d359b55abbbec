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

// Package keymap defines the contract for encoding a logical keystroke
// into the byte sequence a VT100/VT102/VT220 host expects to receive.
// The parser in package vt only consumes bytes; it never calls into this
// package. A caller wiring up a real keyboard uses keymap to produce the
// bytes it then feeds to vt.Emulator.FeedByte on the peer side, or writes
// to the host on the local side.
package keymap

// KeyCode identifies a logical key. Values below 0xf000 are the Unicode
// code point of an ordinary printable key; values at or above 0xf000 sit
// in a private-use range for keys with no Unicode representation,
// following the same private-use convention as the Kitty keyboard
// protocol without committing to its exact numbering.
type KeyCode rune

const (
	Backspace = KeyCode(0x08)
	Tab       = KeyCode(0x09)
	Return    = KeyCode(0x0d)
	Escape    = KeyCode(0x1b)
	Space     = KeyCode(0x20)
	Delete    = KeyCode(0x7f)

	Up KeyCode = 0xf000 + iota
	Down
	Left
	Right
	Home
	End
	PgUp
	PgDn
	Insert
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

// Modifier is a bitset of keyboard modifiers held during a keystroke.
type Modifier int

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << iota
	ModShift
)

// Event is a single keystroke to be encoded.
type Event struct {
	Code KeyCode
	Mod  Modifier
}

// encoding holds the escape sequence for a key in each cursor-key mode,
// plus an alternate form for application cursor-key mode where the key
// has one (the four arrow keys and Home/End are the only ones that differ).
type encoding struct {
	ansi string // DECCKM reset (ANSI cursor keys): ESC [ ...
	app  string // DECCKM set (application cursor keys): ESC O ...
}

var table = map[KeyCode]encoding{
	Up:    {ansi: "\x1b[A", app: "\x1bOA"},
	Down:  {ansi: "\x1b[B", app: "\x1bOB"},
	Right: {ansi: "\x1b[C", app: "\x1bOC"},
	Left:  {ansi: "\x1b[D", app: "\x1bOD"},
	Home:  {ansi: "\x1b[H", app: "\x1bOH"},
	End:   {ansi: "\x1b[F", app: "\x1bOF"},
	PgUp:  {ansi: "\x1b[5~"},
	PgDn:  {ansi: "\x1b[6~"},
	Insert: {ansi: "\x1b[2~"},
	F1:    {ansi: "\x1bOP"},
	F2:    {ansi: "\x1bOQ"},
	F3:    {ansi: "\x1bOR"},
	F4:    {ansi: "\x1bOS"},
	F5:    {ansi: "\x1b[15~"},
	F6:    {ansi: "\x1b[17~"},
	F7:    {ansi: "\x1b[18~"},
	F8:    {ansi: "\x1b[19~"},
	F9:    {ansi: "\x1b[20~"},
	F10:   {ansi: "\x1b[21~"},
	F11:   {ansi: "\x1b[23~"},
	F12:   {ansi: "\x1b[24~"},
}

// Encode returns the stable byte sequence for ev. appCursor reflects
// whether DECCKM is currently set (application cursor keys); it is the
// only piece of terminal mode state this package's contract depends on.
// The returned string never changes shape for a given (ev, appCursor)
// pair across calls: callers may cache it.
func Encode(ev Event, appCursor bool) string {
	if enc, ok := table[ev.Code]; ok {
		if appCursor && enc.app != "" {
			return enc.app
		}
		return enc.ansi
	}
	return encodeLiteral(ev)
}

// encodeLiteral handles the keys that are plain Unicode code points,
// applying the handful of control-key folding rules a VT keyboard uses:
// Ctrl plus an ASCII letter or a small set of punctuation produces the
// corresponding C0 control code.
func encodeLiteral(ev Event) string {
	r := rune(ev.Code)
	if ev.Mod&ModCtrl != 0 {
		if c, ok := ctrlFold(r); ok {
			return string(rune(c))
		}
	}
	if r < 0 {
		return ""
	}
	return string(r)
}

// ctrlFold returns the C0 control code produced by holding Ctrl while
// pressing r, per the standard VT keyboard matrix (Ctrl masks bits 5-6).
func ctrlFold(r rune) (byte, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return byte(r-'a') + 1, true
	case r >= 'A' && r <= 'Z':
		return byte(r-'A') + 1, true
	case r == '@' || r == ' ':
		return 0x00, true
	case r == '[':
		return 0x1b, true
	case r == '\\':
		return 0x1c, true
	case r == ']':
		return 0x1d, true
	case r == '^' || r == '~':
		return 0x1e, true
	case r == '_' || r == '?':
		return 0x1f, true
	default:
		return 0, false
	}
}
