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

import "github.com/vt220lab/vtcore/color"

// csiSGR processes each SGR parameter left to right and pushes the
// resulting attribute word and colors to the Screen.
func (e *Emulator) csiSGR() {
	n := e.params.count()
	if n == 0 {
		e.sgrReset()
	} else {
		for i := 0; i < n; i++ {
			e.sgrOne(e.params.get(i, 0))
		}
	}
	if e.scr != nil {
		e.scr.SetColors(e.fg, e.bg)
	}
}

func (e *Emulator) sgrReset() {
	e.attr = Plain
	e.fg, e.bg = color.Default, color.Default
}

func (e *Emulator) sgrOne(p int) {
	switch {
	case p == 0:
		e.sgrReset()
	case p == 1:
		e.attr = e.attr.Set(Bold)
	case p == 4:
		e.attr = e.attr.Set(Underline)
	case p == 5:
		e.attr = e.attr.Set(Blink)
	case p == 7:
		e.attr = e.attr.Set(Reverse)
	case p == 22 && e.level == VT220:
		e.attr = e.attr.Clear(Bold)
	case p == 24 && e.level == VT220:
		e.attr = e.attr.Clear(Underline)
	case p == 25 && e.level == VT220:
		e.attr = e.attr.Clear(Blink)
	case p == 27 && e.level == VT220:
		e.attr = e.attr.Clear(Reverse)
	case p >= 30 && p <= 37:
		if e.cfg.EnableColor {
			e.fg = color.PaletteColor(p - 30)
		}
	case p == 38 || p == 39:
		if e.cfg.EnableColor {
			e.fg = color.Default
		}
	case p >= 40 && p <= 47:
		if e.cfg.EnableColor {
			e.bg = color.PaletteColor(p - 40)
		}
	case p == 49:
		if e.cfg.EnableColor {
			e.bg = color.Default
		}
	}
}

// csiDECSCA implements DECSCA (CSI Ps " q): Ps 0 or 2 makes subsequently
// printed characters unprotected, Ps 1 makes them protected. The bit
// rides on the current Attribute word so DECSC/DECRC save and restore it
// along with the rest of the graphic rendition.
func (e *Emulator) csiDECSCA() {
	switch e.params.get(0, 0) {
	case 1:
		e.attr = e.attr.Set(Protected)
	default:
		e.attr = e.attr.Clear(Protected)
	}
}
