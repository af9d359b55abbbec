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

// parserState names a node of the DEC ANSI parser state diagram. The
// zero value is ground, the state a freshly reset Emulator starts in.
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateEscIntermediate
	stateCsiEntry
	stateCsiParam
	stateCsiIntermediate
	stateCsiIgnore
	stateDcsEntry
	stateDcsParam
	stateDcsIntermediate
	stateDcsPassthrough
	stateDcsIgnore
	stateSosPmApcString
	stateOscString
	stateVt52DirectCursorAddress
)

func (s parserState) String() string {
	switch s {
	case stateGround:
		return "Ground"
	case stateEscape:
		return "Escape"
	case stateEscIntermediate:
		return "EscIntermediate"
	case stateCsiEntry:
		return "CsiEntry"
	case stateCsiParam:
		return "CsiParam"
	case stateCsiIntermediate:
		return "CsiIntermediate"
	case stateCsiIgnore:
		return "CsiIgnore"
	case stateDcsEntry:
		return "DcsEntry"
	case stateDcsParam:
		return "DcsParam"
	case stateDcsIntermediate:
		return "DcsIntermediate"
	case stateDcsPassthrough:
		return "DcsPassthrough"
	case stateDcsIgnore:
		return "DcsIgnore"
	case stateSosPmApcString:
		return "SosPmApcString"
	case stateOscString:
		return "OscString"
	case stateVt52DirectCursorAddress:
		return "Vt52DirectCursorAddress"
	default:
		return "unknown"
	}
}

// Status is the result of feeding one byte to the parser.
type Status int

const (
	// NoCharYet means the byte was consumed (state transition, control
	// action, or sequence dispatch) and there is nothing to print.
	NoCharYet Status = iota

	// OneChar means the byte (or sequence ending at this byte) produced
	// a Unicode code point to place at the cursor.
	OneChar
)
