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

package keymap

import "testing"

func TestArrowKeysSwitchOnCursorKeyMode(t *testing.T) {
	ev := Event{Code: Up}
	if got := Encode(ev, false); got != "\x1b[A" {
		t.Errorf("ANSI mode Up = %q, want ESC [ A", got)
	}
	if got := Encode(ev, true); got != "\x1bOA" {
		t.Errorf("application mode Up = %q, want ESC O A", got)
	}
}

func TestFunctionKeysDoNotVaryWithCursorKeyMode(t *testing.T) {
	ev := Event{Code: F5}
	if Encode(ev, false) != Encode(ev, true) {
		t.Fatal("F5 should encode identically regardless of DECCKM")
	}
}

func TestCtrlLetterFolding(t *testing.T) {
	ev := Event{Code: KeyCode('a'), Mod: ModCtrl}
	if got := Encode(ev, false); got != "\x01" {
		t.Errorf("Ctrl-A = %q, want 0x01", got)
	}
}

func TestPlainLetterPassesThrough(t *testing.T) {
	ev := Event{Code: KeyCode('q')}
	if got := Encode(ev, false); got != "q" {
		t.Errorf("plain q = %q, want q", got)
	}
}

func TestHomeEndDifferInEachMode(t *testing.T) {
	if Encode(Event{Code: Home}, false) == Encode(Event{Code: Home}, true) {
		t.Fatal("Home should differ between ANSI and application cursor key mode")
	}
	if Encode(Event{Code: End}, false) == Encode(Event{Code: End}, true) {
		t.Fatal("End should differ between ANSI and application cursor key mode")
	}
}
