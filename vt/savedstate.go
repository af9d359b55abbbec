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

import "github.com/vt220lab/vtcore/vt/charset"

// savedState is a DECSC snapshot. A nil *savedState on the emulator means
// "absent" (no DECSC has ever run); DECRC in that case loads the defaults
// in defaultSavedState rather than treating the restore as an error.
type savedState struct {
	pos       Coord
	attr      Attribute
	decom     bool
	g         [4]charset.Set
	gl        int
	gr        int
	autowrap  bool
}

// defaultSavedState is what DECRC loads when nothing was ever saved.
func defaultSavedState() savedState {
	return savedState{
		pos:      Coord{X: 0, Y: 0},
		attr:     Plain,
		decom:    false,
		g:        [4]charset.Set{charset.US, charset.DECSpecialGraphics, charset.US, charset.US},
		gl:       0,
		gr:       1,
		autowrap: true,
	}
}
