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

import "github.com/cassirer-openai/vtterm/charset"

// Screen owns the grid and every piece of state a dispatched event can
// touch: cursor, margins, tabs, modes, charset selection and the
// pending SGR rendition. It implements Handler, so a Parser can
// dispatch directly into it; Screen never reaches back into the
// Parser, keeping data flow one-directional as the parser holds no
// grid reference.
type Screen struct {
	g  *grid
	cs *cursorState

	charset charset.State

	modes modeSet

	// savedColumns remembers the column count in force before DECCOLM
	// last switched to 132, so a DECCOLM reset can restore it.
	savedColumns int

	cursorHidden bool

	title    string
	iconName string

	// respond receives bytes the screen itself generates: DA/DSR
	// replies. A nil respond silently
	// discards them, matching "if none is registered, they are
	// discarded".
	respond func([]byte)
}

// NewScreen returns a Screen of the given size with power-on defaults:
// DECAWM on, cursor visible, default charset, no custom margins.
//
// NewScreen panics if columns or lines is not positive: constructing a
// screen with no rows or columns is a caller bug, not a malformed host
// stream, and is surfaced immediately rather than silently clamped.
func NewScreen(columns, lines int) *Screen {
	if columns <= 0 || lines <= 0 {
		panic("vt: NewScreen requires positive columns and lines")
	}
	s := &Screen{
		g:            newGrid(columns, lines),
		cs:           newCursorState(columns, lines),
		charset:      charset.NewState(),
		modes:        modeSet{},
		savedColumns: columns,
	}
	s.modes.set(modeDECAWM, true, true)
	return s
}

// SetResponder installs the sink that receives device-report bytes.
// A nil sink (the default) discards them.
func (s *Screen) SetResponder(f func([]byte)) { s.respond = f }

func (s *Screen) respondBytes(b []byte) {
	if s.respond != nil {
		s.respond(b)
	}
}

// Columns and Lines report the grid's current dimensions.
func (s *Screen) Columns() int { return s.g.width }
func (s *Screen) Lines() int   { return s.g.height }

// CursorPosition returns the cursor's 0-based column and row and
// whether it is currently hidden (DECTCEM reset).
func (s *Screen) CursorPosition() (col, row int, hidden bool) {
	return s.cs.col, s.cs.row, s.cursorHidden
}

// Cell returns the cell at (col, row), or the zero Cell if out of range.
func (s *Screen) Cell(col, row int) Cell {
	if row < 0 || row >= s.g.height || col < 0 || col >= s.g.width {
		return Cell{}
	}
	return s.g.rows[row][col]
}

// Damaged reports whether any cell has changed since the last
// ResetDamage call.
func (s *Screen) Damaged() bool { return s.g.damaged }

// ResetDamage clears the damage flag, for a consumer that just redrew.
func (s *Screen) ResetDamage() { s.g.damaged = false }

// Title and IconName report the strings set by OSC 2/0 and OSC 1/0.
func (s *Screen) Title() string    { return s.title }
func (s *Screen) IconName() string { return s.iconName }

// Resize preserves the top-left corner's contents, truncating or
// padding as needed; a no-op if dimensions are unchanged. Resize panics
// if columns or lines is not positive, the same programmer-error
// contract NewScreen has.
func (s *Screen) Resize(columns, lines int) {
	if columns <= 0 || lines <= 0 {
		panic("vt: Resize requires positive columns and lines")
	}
	if columns == s.g.width && lines == s.g.height {
		return
	}
	s.g.resize(columns, lines)
	s.cs.resize(columns, lines)
}

// Reset reverts all state except dimensions -- RIS (ESC c). DECOM is the
// one named exception: spec.md is explicit that "a reset of the screen
// does not clear DECOM", so origin mode survives into the rebuilt
// cursor state and mode set the same way EscDispatch's DECRC branch
// re-syncs it after restoring a saved cursor.
func (s *Screen) Reset() {
	columns, lines := s.g.width, s.g.height
	originMode := s.cs.originMode
	s.g = newGrid(columns, lines)
	s.cs = newCursorState(columns, lines)
	s.cs.originMode = originMode
	s.charset.Reset()
	s.modes = modeSet{}
	s.modes.set(modeDECAWM, true, true)
	s.modes.set(modeDECOM, true, originMode)
	s.savedColumns = columns
	s.cursorHidden = false
	s.title = ""
	s.iconName = ""
}

// eraseCell's background is the color erased cells take; DECSCNM's
// reverse bit is applied on top of it by eraseCell.
func (s *Screen) eraseCell() Cell {
	c := blankCell()
	if s.modes.has(modeDECSCNM, true) {
		c.reverse = true
	}
	return c
}
