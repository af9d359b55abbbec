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

// Attribute is the packed graphic-rendition word carried on the cursor
// and on every saved-cursor snapshot. Color is not part of it; a Screen
// tracks color separately via SetColors.
type Attribute uint16

const (
	Plain     = Attribute(0)      // SGR 0: no attributes set
	Bold      = Attribute(1 << 0) // SGR 1
	Underline = Attribute(1 << 1) // SGR 4
	Blink     = Attribute(1 << 2) // SGR 5
	Reverse   = Attribute(1 << 3) // SGR 7

	// Protected carries the DECSCA "guarded" bit. It is not an SGR
	// attribute; DECSCA (CSI Ps " q) and the VT220 selective-erase finals
	// (DECSED/DECSEL) are what set and consult it respectively. It rides
	// on the same word as the SGR bits because DECSC/DECRC must save and
	// restore it together with the rest of the graphic rendition state.
	Protected = Attribute(1 << 4)
)

// Set returns a with the given bits turned on.
func (a Attribute) Set(bits Attribute) Attribute { return a | bits }

// Clear returns a with the given bits turned off.
func (a Attribute) Clear(bits Attribute) Attribute { return a &^ bits }

// Has reports whether all of the given bits are set.
func (a Attribute) Has(bits Attribute) bool { return a&bits == bits }
