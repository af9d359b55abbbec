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

const (
	maxParams     = 16
	maxParamDigit = 16
	maxCollect    = 32
)

// paramBuf accumulates the semicolon-separated numeric parameters of a
// CSI or DCS sequence. A slot holds -1 until its first digit arrives,
// matching the "params_n = -1 means no parameter byte seen yet" rule.
type paramBuf struct {
	vals   [maxParams]int
	n      int // number of slots touched, including the current one
	digits int // digits seen in the current slot, bounds runaway input
}

func (p *paramBuf) reset() {
	*p = paramBuf{}
	p.vals[0] = -1
}

// digit folds one decimal digit into the current parameter slot.
func (p *paramBuf) digit(d byte) {
	if p.n == 0 {
		p.n = 1
	}
	if p.n > maxParams || p.digits >= maxParamDigit {
		return
	}
	idx := p.n - 1
	if p.vals[idx] < 0 {
		p.vals[idx] = 0
	}
	p.vals[idx] = p.vals[idx]*10 + int(d-'0')
	p.digits++
}

// separator advances to the next parameter slot on ';'.
func (p *paramBuf) separator() {
	if p.n == 0 {
		p.n = 1
	}
	if p.n >= maxParams {
		return
	}
	p.n++
	p.vals[p.n-1] = -1
	p.digits = 0
}

// count returns the number of parameter slots touched so far (0 if the
// sequence carried no parameter bytes at all).
func (p *paramBuf) count() int {
	if p.n == 0 && p.vals[0] == -1 {
		return 0
	}
	return p.n
}

// get returns the value at idx, substituting def when the slot is absent
// or was left empty (the "-1" / "0 takes default" rule in one place).
func (p *paramBuf) get(idx, def int) int {
	if idx < 0 || idx >= p.n {
		return def
	}
	v := p.vals[idx]
	if v <= 0 {
		return def
	}
	return v
}

// getRaw returns the value at idx, or -1 if absent, without substituting
// a default; used where a handler must distinguish "0" from "omitted".
func (p *paramBuf) getRaw(idx int) int {
	if idx < 0 || idx >= p.n {
		return -1
	}
	return p.vals[idx]
}

// collectBuf accumulates intermediate and private-marker bytes seen
// before a sequence's final byte, bounded per the resource-lifetime
// guarantee (no unbounded growth regardless of host input).
type collectBuf struct {
	buf [maxCollect]byte
	n   int
}

func (c *collectBuf) reset() { c.n = 0 }

func (c *collectBuf) add(b byte) {
	if c.n < len(c.buf) {
		c.buf[c.n] = b
		c.n++
	}
}

func (c *collectBuf) bytes() []byte { return c.buf[:c.n] }

func (c *collectBuf) has(b byte) bool {
	for i := 0; i < c.n; i++ {
		if c.buf[i] == b {
			return true
		}
	}
	return false
}

// private reports whether '?' was collected, the CSI private-mode marker.
func (c *collectBuf) private() bool { return c.has('?') }

// intermediate returns the last intermediate byte collected (0x20-0x2f),
// or 0 if none, which is what multi-byte designators like "% 5" key on.
func (c *collectBuf) intermediate() byte {
	for i := c.n - 1; i >= 0; i-- {
		if b := c.buf[i]; b >= 0x20 && b <= 0x2f {
			return b
		}
	}
	return 0
}
