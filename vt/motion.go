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

// cursorUp/cursorDown/cursorForward/cursorBack implement CUU/CUD/CUF/
// CUB. Vertical motion only clamps at the scrolling region's edge when
// the cursor already sits inside that region -- a cursor parked outside
// it (because origin mode is off) can cross the boundary freely, per
// the "only when already within that region" rule.
func (s *Screen) cursorUp(n int) {
	top, bottom := s.cs.marginTop, s.cs.marginBottom
	row := s.cs.row
	floor := 0
	if row >= top && row <= bottom {
		floor = top
	}
	row -= n
	if row < floor {
		row = floor
	}
	s.cs.row = row
	s.cs.nextPrintWillWrap = false
}

func (s *Screen) cursorDown(n int) {
	top, bottom := s.cs.marginTop, s.cs.marginBottom
	row := s.cs.row
	ceil := s.g.height - 1
	if row >= top && row <= bottom {
		ceil = bottom
	}
	row += n
	if row > ceil {
		row = ceil
	}
	s.cs.row = row
	s.cs.nextPrintWillWrap = false
}

func (s *Screen) cursorForward(n int) {
	s.cs.moveCol(n, true, false)
}

// cursorBack implements CUB, including the "past right edge" collapse:
// if the cursor sits at the sentinel column (s.g.width, left there by a
// draw that deferred its wrap), the first step back only lands on the
// last real column -- it does not also move n further.
func (s *Screen) cursorBack(n int) {
	if s.cs.col >= s.g.width {
		s.cs.col = s.g.width - 1
		n--
	}
	if n > 0 {
		s.cs.moveCol(-n, true, false)
	} else {
		s.cs.snap()
	}
}

// cursorPosition implements CUP/HVP: row and col are 0-based here
// (callers convert from the 1-based wire parameters), and are relative
// to the scrolling region's top when origin mode is set.
func (s *Screen) cursorPosition(row, col int) {
	s.cs.moveRow(row, false)
	s.cs.moveCol(col, false, false)
}

// linefeed advances the cursor one row, scrolling the region if it
// would otherwise leave the bottom. lnmCR additionally issues a
// carriage return first, the LNM-coupled behavior C0 LF (but not ESC D
// / IND) exhibits when LNM is set.
func (s *Screen) linefeed(lnmCR bool) {
	if lnmCR || s.modes.has(modeLNM, false) {
		s.carriageReturn()
	}
	if s.cs.row == s.cs.marginBottom {
		s.g.deleteLine(s.cs.marginTop, 1, s.cs.marginTop, s.cs.marginBottom, s.eraseCell().bg)
	} else if s.cs.row == s.g.height-1 {
		// outside the scrolling region at the last screen row: still
		// scroll the whole screen, matching a full-screen region.
		s.g.deleteLine(0, 1, 0, s.g.height-1, s.eraseCell().bg)
	} else {
		s.cs.row++
	}
	s.cs.nextPrintWillWrap = false
}

// reverseIndex is linefeed's dual: moves up, scrolling the region down
// (inserting a blank line at the top) if the cursor would leave it.
func (s *Screen) reverseIndex() {
	if s.cs.row == s.cs.marginTop {
		s.g.insertLine(s.cs.marginTop, 1, s.cs.marginTop, s.cs.marginBottom, s.eraseCell().bg)
	} else if s.cs.row == 0 {
		s.g.insertLine(0, 1, 0, s.g.height-1, s.eraseCell().bg)
	} else {
		s.cs.row--
	}
	s.cs.nextPrintWillWrap = false
}

func (s *Screen) carriageReturn() {
	s.cs.col = 0
	s.cs.nextPrintWillWrap = false
}

// tabForward/tabBack implement HT/CBT: move to the count-th next/previous
// tab stop.
func (s *Screen) tabForward(count int) {
	s.cs.col = s.cs.nextTab(count)
}

func (s *Screen) tabBack(count int) {
	s.cs.col = s.cs.nextTab(-count)
}

// clearTabStop implements TBC: mode 0 clears the stop at the cursor,
// mode 3 clears every stop.
func (s *Screen) clearTabStop(mode int) {
	switch mode {
	case 0:
		s.cs.clearTab(s.cs.col)
	case 3:
		s.cs.clearAllTabs()
	}
}
