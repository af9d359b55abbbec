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

// Separate Row and Col types keep the two axes from being mixed up by
// accident. Both are zero-based internally; CUP, HVP and the cursor
// position report convert to and from the wire's 1-based row;col pairs
// at the edge of the package.

// Row is a zero-based row (y) index.
type Row int

// Col is a zero-based column (x) index.
type Col int

// Coord is a cursor position or a screen size, depending on context.
type Coord struct {
	X Col
	Y Row
}

// clamp returns v bounded to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
