/*

MIT License

Copyright (c) 2022 wangqi

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

*/

package vt

// Non-private (ANSI, set via "CSI Pm h"/"CSI Pm l") mode numbers the
// screen cares about.
const (
	modeIRM = 4  // Insert Mode
	modeLNM = 20 // Linefeed/New Line Mode
)

// DEC private (set via "CSI ? Pm h"/"CSI ? Pm l") mode numbers.
const (
	modeDECCOLM = 3  // 80/132 column switch
	modeDECOM   = 6  // origin mode
	modeDECAWM  = 7  // autowrap
	modeDECSCNM = 5  // screen-wide reverse video
	modeDECTCEM = 25 // text cursor enable
)

// privateOffset disambiguates a DEC-private mode number from the ANSI
// mode of the same number sharing one set, per the data model's
// "public number plus a disambiguating offset" description -- mode 5
// private (DECSCNM) and mode 5 non-private (unused by this core, but
// the scheme must not collide with one that is) are different keys.
const privateOffset = 1 << 16

// modeSet is the set of currently-asserted ANSI and DEC-private modes.
type modeSet map[int]bool

func modeKey(number int, private bool) int {
	if private {
		return number + privateOffset
	}
	return number
}

func (m modeSet) set(number int, private bool, on bool) {
	k := modeKey(number, private)
	if on {
		m[k] = true
	} else {
		delete(m, k)
	}
}

func (m modeSet) has(number int, private bool) bool {
	return m[modeKey(number, private)]
}
