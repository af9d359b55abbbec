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

// checkST recognizes a string terminator, either the 8-bit form (0x9c)
// or the two-byte form (ESC \). It is shared by every state that holds
// bytes until ST: the DCS states, and SOS/PM/APC. ESC does not trigger
// the normal anywhere-transition into Escape while a DCS state is active,
// so those states see it here; in SOS/PM/APC the anywhere-transition
// still applies, and ESC \ ends the string through the Escape state.
func (e *Emulator) checkST(b byte) (terminated bool) {
	if e.pendingEsc {
		e.pendingEsc = false
		return b == 0x5c
	}
	if b == 0x1b {
		e.pendingEsc = true
		return false
	}
	return b == 0x9c
}

func stepDcsEntry(e *Emulator, b byte) (Status, rune) {
	if e.checkST(b) {
		e.toGround()
		return NoCharYet, 0
	}
	switch {
	case b >= 0x20 && b <= 0x2f:
		e.collect.add(b)
		e.setState(stateDcsIntermediate)
	case (b >= '0' && b <= '9') || b == ';':
		e.feedParam(b)
		e.setState(stateDcsParam)
	case b >= 0x3c && b <= 0x3f:
		e.collect.add(b)
		e.setState(stateDcsParam)
	case b == 0x3a:
		e.setState(stateDcsIgnore)
	case b >= 0x40 && b <= 0x7e:
		e.setState(stateDcsPassthrough)
	}
	return NoCharYet, 0
}

func stepDcsParam(e *Emulator, b byte) (Status, rune) {
	if e.checkST(b) {
		e.toGround()
		return NoCharYet, 0
	}
	switch {
	case (b >= '0' && b <= '9') || b == ';':
		e.feedParam(b)
	case b >= 0x20 && b <= 0x2f:
		e.collect.add(b)
		e.setState(stateDcsIntermediate)
	case b == 0x3a || (b >= 0x3c && b <= 0x3f):
		e.setState(stateDcsIgnore)
	case b >= 0x40 && b <= 0x7e:
		e.setState(stateDcsPassthrough)
	}
	return NoCharYet, 0
}

func stepDcsIntermediate(e *Emulator, b byte) (Status, rune) {
	if e.checkST(b) {
		e.toGround()
		return NoCharYet, 0
	}
	switch {
	case b >= 0x20 && b <= 0x2f:
		e.collect.add(b)
	case b >= 0x30 && b <= 0x3f:
		e.setState(stateDcsIgnore)
	case b >= 0x40 && b <= 0x7e:
		e.setState(stateDcsPassthrough)
	}
	return NoCharYet, 0
}

// stepDcsPassthrough accepts and discards bytes until ST; this core does
// not implement Sixel graphics or DECUDK, the two real DCS payloads.
func stepDcsPassthrough(e *Emulator, b byte) (Status, rune) {
	if e.checkST(b) {
		e.toGround()
	}
	return NoCharYet, 0
}

func stepDcsIgnore(e *Emulator, b byte) (Status, rune) {
	if e.checkST(b) {
		e.toGround()
	}
	return NoCharYet, 0
}

// stepSosPmApcString discards everything until ST; SOS, PM and APC carry
// no semantics this core interprets.
func stepSosPmApcString(e *Emulator, b byte) (Status, rune) {
	if e.checkST(b) {
		e.toGround()
	}
	return NoCharYet, 0
}

// stepOscString accumulates an OSC payload until BEL or ST; the payload
// itself is not interpreted (no window-title or color-query support is
// in scope), but the sequence is consumed cleanly either way.
func stepOscString(e *Emulator, b byte) (Status, rune) {
	switch {
	case b == 0x07 || b == 0x9c:
		e.toGround()
	case b >= 0x20 && b <= 0x7f:
		e.collect.add(b)
	default:
		// anywhere-transitions (ESC, CAN, SUB) are handled by FeedByte
		// before reaching here; nothing else is valid OSC payload.
	}
	return NoCharYet, 0
}
