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

import "strconv"

// arg reads the n-th CSI parameter, treating both "absent" (n beyond the
// slice) and "zero" as the supplied default -- the re-interpretation of
// an empty/0 field the VT standard requires for most CSI parameters
// (counts default to 1, selectors to 0).
func arg(params []int, n, def int) int {
	if n >= len(params) || params[n] < 1 {
		return def
	}
	return params[n]
}

// CSIDispatch implements every CSI sequence this core acts on. private
// is 0 for a plain ANSI sequence or the leading ?/</=/> marker byte for
// a DEC-private one; only '?' carries meaning here, the other markers
// are accepted by the parser for compliance but have no registered
// final byte below.
func (s *Screen) CSIDispatch(private byte, params []int, intermediates []byte, final byte) {
	if len(intermediates) != 0 {
		return
	}
	switch private {
	case 0:
		s.csiANSI(params, final)
	case '?':
		s.csiDEC(params, final)
	}
}

func (s *Screen) csiANSI(params []int, final byte) {
	switch final {
	case 'A': // CUU
		s.cursorUp(arg(params, 0, 1))
	case 'B', 'e': // CUD, VPR
		s.cursorDown(arg(params, 0, 1))
	case 'C', 'a': // CUF, HPR
		s.cursorForward(arg(params, 0, 1))
	case 'D': // CUB
		s.cursorBack(arg(params, 0, 1))
	case 'H', 'f': // CUP, HVP
		s.cursorPosition(arg(params, 0, 1)-1, arg(params, 1, 1)-1)
	case 'G', '`': // CHA, HPA
		s.cs.moveCol(arg(params, 0, 1)-1, false, false)
	case 'd': // VPA
		s.cs.moveRow(arg(params, 0, 1)-1, false)
	case 'I': // CHT
		s.tabForward(arg(params, 0, 1))
	case 'Z': // CBT
		s.tabBack(arg(params, 0, 1))
	case 'g': // TBC
		s.clearTabStop(arg(params, 0, 0))
	case 'J': // ED
		s.eraseInDisplay(arg(params, 0, 0))
	case 'K': // EL
		s.eraseInLine(arg(params, 0, 0))
	case 'L': // IL
		s.insertLines(arg(params, 0, 1))
	case 'M': // DL
		s.deleteLines(arg(params, 0, 1))
	case '@': // ICH
		s.insertChars(arg(params, 0, 1))
	case 'P': // DCH
		s.deleteChars(arg(params, 0, 1))
	case 'X': // ECH
		s.eraseChars(arg(params, 0, 1))
	case 'm': // SGR
		s.cs.rend.Apply(paramsOrZero(params))
	case 'r': // DECSTBM
		s.cs.setMargins(arg(params, 0, 1)-1, arg(params, 1, s.g.height)-1)
	case 'h': // SM
		s.setModes(params, false, true)
	case 'l': // RM
		s.setModes(params, false, false)
	case 'c': // DA1, only answered without a private marker
		if arg(params, 0, 0) == 0 {
			s.respondBytes([]byte("\x1b[?1;2c"))
		}
	case 'n': // DSR
		s.deviceStatusReport(arg(params, 0, 0))
	}
}

func (s *Screen) csiDEC(params []int, final byte) {
	switch final {
	case 'h': // DECSET
		s.setModes(params, true, true)
	case 'l': // DECRST
		s.setModes(params, true, false)
	case 'c':
		// A private-marker DA request is never answered: answering
		// "CSI ? c" sends some hosts (Emacs, Vim) into an endless
		// request/reply loop.
	}
}

// paramsOrZero substitutes a bare empty parameter list with a single
// [0], so SGR's "CSI m" with no parameters at all is treated the same
// as the explicit "CSI 0 m" reset.
func paramsOrZero(params []int) []int {
	if len(params) == 0 {
		return []int{0}
	}
	return params
}

func (s *Screen) setModes(params []int, private bool, on bool) {
	for _, p := range params {
		s.applyMode(p, private, on)
	}
}

func (s *Screen) applyMode(number int, private bool, on bool) {
	switch {
	case private && number == modeDECCOLM:
		s.setDECCOLM(on)
	case private && number == modeDECOM:
		s.cs.originMode = on
		s.modes.set(modeDECOM, true, on)
		s.cs.moveRow(0, false)
		s.cs.moveCol(0, false, false)
	case private && number == modeDECAWM:
		s.modes.set(modeDECAWM, true, on)
	case private && number == modeDECTCEM:
		s.cursorHidden = !on
		s.modes.set(modeDECTCEM, true, on)
	case private && number == modeDECSCNM:
		if s.modes.has(modeDECSCNM, true) != on {
			s.g.toggleReverseAll()
		}
		s.modes.set(modeDECSCNM, true, on)
	default:
		s.modes.set(number, private, on)
	}
}

// setDECCOLM implements the 80/132-column switch: switching to 132 on
// set, restoring whatever width was in force before DECCOLM was last
// set on reset. Per the open question on DECCOLM/margin interaction,
// the safe policy adopted here is to also reset the scrolling region
// and clear and home the screen on either transition.
func (s *Screen) setDECCOLM(on bool) {
	if on && !s.modes.has(modeDECCOLM, true) {
		s.savedColumns = s.g.width
	}
	columns := 132
	if !on {
		columns = s.savedColumns
		if columns <= 0 {
			columns = s.g.width
		}
	}
	s.modes.set(modeDECCOLM, true, on)
	s.Resize(columns, s.g.height)
	s.cs.setMargins(0, s.g.height-1)
	s.g.eraseRows(0, s.g.height, s.eraseCell().bg)
}

// eraseInDisplay implements ED. Extra positional parameters some hosts
// send (e.g. "CSI 3;0 J") are ignored rather than reinterpreted.
func (s *Screen) eraseInDisplay(how int) {
	bg := s.eraseCell().bg
	switch how {
	case 0:
		s.g.eraseRange(s.cs.row, s.cs.col, s.g.width, bg)
		s.g.eraseRows(s.cs.row+1, s.g.height, bg)
	case 1:
		s.g.eraseRows(0, s.cs.row, bg)
		s.g.eraseRange(s.cs.row, 0, s.cs.col+1, bg)
	case 2, 3: // 3 (and scrollback) collapses to 2: no scrollback here
		s.g.eraseRows(0, s.g.height, bg)
	}
}

func (s *Screen) eraseInLine(how int) {
	bg := s.eraseCell().bg
	switch how {
	case 0:
		s.g.eraseRange(s.cs.row, s.cs.col, s.g.width, bg)
	case 1:
		s.g.eraseRange(s.cs.row, 0, s.cs.col+1, bg)
	case 2:
		s.g.eraseRange(s.cs.row, 0, s.g.width, bg)
	}
}

func (s *Screen) insertLines(n int) {
	s.g.insertLine(s.cs.row, n, s.cs.marginTop, s.cs.marginBottom, s.eraseCell().bg)
}

func (s *Screen) deleteLines(n int) {
	s.g.deleteLine(s.cs.row, n, s.cs.marginTop, s.cs.marginBottom, s.eraseCell().bg)
}

func (s *Screen) insertChars(n int) {
	s.g.insertCells(s.cs.row, s.cs.col, n, s.eraseCell().bg)
}

func (s *Screen) deleteChars(n int) {
	s.g.deleteCells(s.cs.row, s.cs.col, n, s.eraseCell().bg)
}

// eraseChars implements ECH: unlike DCH, cells are blanked in place, not
// shifted.
func (s *Screen) eraseChars(n int) {
	end := s.cs.col + n
	if end > s.g.width {
		end = s.g.width
	}
	s.g.eraseRange(s.cs.row, s.cs.col, end, s.eraseCell().bg)
}

// deviceStatusReport implements DSR: 5 reports the terminal OK, 6
// reports the cursor position (1-based, region-relative under DECOM).
func (s *Screen) deviceStatusReport(code int) {
	switch code {
	case 5:
		s.respondBytes([]byte("\x1b[0n"))
	case 6:
		row, col := s.cs.row, s.cs.col
		if s.cs.originMode {
			row -= s.cs.marginTop
		}
		s.respondBytes([]byte(csiReport(row+1, col+1)))
	}
}

func csiReport(row, col int) string {
	return "\x1b[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "R"
}
