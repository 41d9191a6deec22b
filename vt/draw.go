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

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = true
	c.StrictEmojiNeutral = false
	return c
}()

// clusterWidth reports a grapheme cluster's display width: the base
// (first) rune's width. Combining marks, variation selectors and
// zero-width joiners appended after it are, by construction, zero
// width, so the cluster as a whole occupies exactly as many columns as
// its base character -- unlike summing every rune's width, which would
// double-count a multi-codepoint emoji sequence whose later runes are
// themselves wide.
func clusterWidth(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}
	return widthCondition.RuneWidth(runes[0])
}

// Draw implements the hot path: text is the longest run of printable
// code points the parser collected before the next control byte. Each
// grapheme cluster in it is drawn independently, so a run mixing wide
// CJK text, combining accents and plain ASCII is handled in one pass.
func (s *Screen) Draw(text string) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		s.drawCluster(g.Runes())
	}
}

func (s *Screen) drawCluster(runes []rune) {
	w := clusterWidth(runes)

	if w == 0 {
		s.mergeCombining(runes)
		return
	}

	// A deferred wrap (the cursor already sitting on the sentinel
	// column from a previous draw) and a fresh overflow are the same
	// situation: either way, this glyph doesn't fit past the right
	// edge. Whether that means "move to the next line" or "overwrite
	// the last column" depends on DECAWM, not on which of the two
	// triggered it -- so both must recheck the mode, not just the
	// first-time-overflow case.
	if s.cs.nextPrintWillWrap || s.cs.col+w > s.g.width {
		if s.modes.has(modeDECAWM, true) {
			s.wrapLine()
		} else {
			// DECAWM off: overwrite the rightmost column(s), cursor
			// clamped there rather than advancing past it.
			s.cs.col = s.g.width - w
			if s.cs.col < 0 {
				s.cs.col = 0
			}
			s.cs.nextPrintWillWrap = false
		}
	}

	if s.modes.has(modeIRM, false) {
		s.g.insertCells(s.cs.row, s.cs.col, w, s.cs.rend.bg)
	}

	data := string(runes)
	cell := Cell{data: data, width: w}.withRendition(s.cs.rend)
	if !s.charset.UTF8() && len(runes) == 1 {
		cell.data = string(s.charset.Translate(runes[0]))
	}
	s.g.rows[s.cs.row][s.cs.col] = cell
	s.g.markDamaged()

	if w == 2 && s.cs.col+1 < s.g.width {
		s.g.rows[s.cs.row][s.cs.col+1] = Cell{width: 0}
	}

	s.cs.moveCol(w, true, true)
	if !s.modes.has(modeDECAWM, true) && s.cs.col >= s.g.width {
		// DECAWM off: no wrap can follow, so the cursor stays on the
		// last column instead of the past-right-edge sentinel.
		s.cs.col = s.g.width - 1
		s.cs.nextPrintWillWrap = false
	}
}

// mergeCombining appends a zero-width cluster (a lone combining mark,
// variation selector, or continuation of a joined sequence that uniseg
// didn't attach to the preceding cluster) onto the cell immediately to
// the left of the cursor. The cursor does not move.
func (s *Screen) mergeCombining(runes []rune) {
	col := s.cs.col - 1
	if s.cs.nextPrintWillWrap {
		col = s.g.width - 1
	}
	if col < 0 || col >= s.g.width {
		return
	}
	cell := &s.g.rows[s.cs.row][col]
	cell.data += string(runes)
	s.g.markDamaged()
}

// wrapLine performs the implicit CR/LF a DECAWM wrap triggers.
func (s *Screen) wrapLine() {
	s.carriageReturn()
	s.linefeed(false)
}
