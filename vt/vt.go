// Copyright 2025 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package vt implements the DEC ANSI parser shared by VT100, VT102, and
// VT220 terminal emulation: a byte-at-a-time state machine that turns a
// host byte stream into screen operations, mode changes, and device
// responses. The package does not perform I/O and does not own a screen;
// callers drive Emulator.FeedByte and supply a Screen implementation for
// the parser to invoke.
package vt

// EmulationLevel selects which terminal the parser answers device
// attribute and status requests as, and which wire conventions (8-bit
// control stripping) apply. The VT52 submode is reachable at every level.
type EmulationLevel int

const (
	VT100 EmulationLevel = iota
	VT102
	VT220
)

func (l EmulationLevel) String() string {
	switch l {
	case VT100:
		return "VT100"
	case VT102:
		return "VT102"
	case VT220:
		return "VT220"
	default:
		return "unknown"
	}
}
