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

// Terminal is the package's single entry point: a Parser feeding a
// Screen, plus the response sink the screen's device reports are
// routed through. An embedder owns one Terminal per pseudo-terminal
// session and calls Feed synchronously as bytes arrive; there is no
// internal goroutine or suspension point, so concurrent Feed calls on
// the same Terminal race exactly the way concurrent writes to any plain
// Go value would.
type Terminal struct {
	screen *Screen
	parser *Parser
}

// NewTerminal returns a Terminal with a Screen of the given size and
// power-on defaults. It panics if columns or lines is not positive,
// the same contract NewScreen has.
func NewTerminal(columns, lines int) *Terminal {
	screen := NewScreen(columns, lines)
	return &Terminal{
		screen: screen,
		parser: NewParser(screen),
	}
}

// Feed decodes buf and dispatches every complete event it contains,
// synchronously and in byte order. A sequence split across two Feed
// calls resumes correctly: partial parser state persists between calls.
func (t *Terminal) Feed(buf []byte) { t.parser.Feed(buf) }

// SetResponder installs the sink that receives bytes the terminal
// itself generates in reply to a host query (DA, DSR). A nil sink (the
// default) discards them.
func (t *Terminal) SetResponder(f func([]byte)) { t.screen.SetResponder(f) }

// Columns and Lines report the grid's current dimensions.
func (t *Terminal) Columns() int { return t.screen.Columns() }
func (t *Terminal) Lines() int   { return t.screen.Lines() }

// CursorPosition returns the cursor's 0-based column and row and
// whether DECTCEM currently hides it.
func (t *Terminal) CursorPosition() (col, row int, hidden bool) {
	return t.screen.CursorPosition()
}

// Cell returns the cell at (col, row).
func (t *Terminal) Cell(col, row int) Cell { return t.screen.Cell(col, row) }

// Row returns row's displayed strings, one per column. A double-width
// glyph occupies two consecutive entries: its data in the first, an
// empty string in the second -- the "string, plus empty next column"
// pairing the reader interface specifies, so a caller never needs to
// consult Cell.Width to skip a phantom column.
func (t *Terminal) Row(row int) []string {
	cols := t.screen.Columns()
	out := make([]string, cols)
	for col := 0; col < cols; col++ {
		out[col] = t.screen.Cell(col, row).Data()
	}
	return out
}

// Damaged reports whether any cell has changed since the last
// ResetDamage call, for a consumer that wants to redraw only what moved.
func (t *Terminal) Damaged() bool { return t.screen.Damaged() }

// ResetDamage clears the damage flag.
func (t *Terminal) ResetDamage() { t.screen.ResetDamage() }

// Title and IconName report the strings set by OSC 2/0 and OSC 1/0.
func (t *Terminal) Title() string    { return t.screen.Title() }
func (t *Terminal) IconName() string { return t.screen.IconName() }

// Resize preserves the top-left corner's contents; a no-op if
// dimensions are unchanged.
func (t *Terminal) Resize(columns, lines int) { t.screen.Resize(columns, lines) }

// Reset reverts all state except dimensions, as RIS (ESC c) does.
func (t *Terminal) Reset() { t.screen.Reset() }
