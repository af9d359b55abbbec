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

package color

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Find locates the palette entry nearest c by CIE76 distance. An exact
// hex match (a color already in the palette) returns the first such
// entry immediately, without computing any distances.
func Find(c Color, palette []Color) Color {
	if hex := c.Hex(); hex >= 0 {
		for _, d := range palette {
			if d.Hex() == hex {
				return d
			}
		}
	}

	match := Default
	dist := float64(0)
	r, g, b := c.RGB()
	want := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	for _, d := range palette {
		r, g, b = d.RGB()
		have := colorful.Color{
			R: float64(r) / 255.0,
			G: float64(g) / 255.0,
			B: float64(b) / 255.0,
		}
		// CIE94 is more accurate but far more expensive per sample.
		nd := want.DistanceCIE76(have)
		// nd < dist is false when nd is NaN, which CIE76 never produces here.
		if match == Default || nd < dist {
			match = d
			dist = nd
		}
	}
	return match
}
