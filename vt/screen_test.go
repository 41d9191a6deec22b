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
	"strconv"
	"strings"
	"testing"
)

func rowText(term *Terminal, row int) string {
	var b strings.Builder
	for _, s := range term.Row(row) {
		b.WriteString(s)
	}
	return strings.TrimRight(b.String(), " ")
}

// Scenario 1: plain text & wrap. The triggering character of a DECAWM
// wrap is drawn on the new line like any other glyph (it is not
// dropped), so the space between "is" and "pyte!" -- the 21st
// character, one past the 20-column first row -- becomes row 1's
// first cell.
func TestScenarioPlainTextWrap(t *testing.T) {
	term := NewTerminal(20, 4)
	term.Feed([]byte("hello world, this is pyte!"))
	if got := rowText(term, 0); got != "hello world, this is" {
		t.Fatalf("row 0 = %q, want %q", got, "hello world, this is")
	}
	if got := rowText(term, 1); got != " pyte!" {
		t.Fatalf("row 1 = %q, want %q", got, " pyte!")
	}
	col, row, _ := term.CursorPosition()
	if col != 6 || row != 1 {
		t.Fatalf("cursor = (%d,%d), want (6,1)", col, row)
	}
}

// Scenario 2: DECAWM off. Every glyph past the last column overwrites
// it instead of wrapping, and the cursor stays on the last column.
func TestScenarioDECAWMOff(t *testing.T) {
	term := NewTerminal(10, 4)
	term.Feed([]byte("\x1b[?7l"))
	term.Feed([]byte("abcdefghijKLMN"))
	if got := rowText(term, 0); got != "abcdefghiN" {
		t.Fatalf("row 0 = %q, want %q", got, "abcdefghiN")
	}
	col, row, _ := term.CursorPosition()
	if col != term.Columns()-1 || row != 0 {
		t.Fatalf("cursor = (%d,%d), want (%d,0)", col, row, term.Columns()-1)
	}
}

// Scenario 3: SGR reset rule.
func TestScenarioSGRResetRule(t *testing.T) {
	term := NewTerminal(10, 4)
	term.Feed([]byte("\x1b[0;1;31mX"))
	cell := term.Cell(0, 0)
	if cell.Data() != "X" {
		t.Fatalf("cell data = %q, want %q", cell.Data(), "X")
	}
	if !cell.Bold() {
		t.Fatal("cell not bold")
	}
	if cell.Foreground().Index() != 1 {
		t.Fatalf("cell fg index = %d, want 1 (red)", cell.Foreground().Index())
	}
}

// Scenario 4: double-width glyph at edge. On a 2-column screen, "A"
// leaves only one column free; the following CJK glyph (width 2)
// cannot fit there, so it wraps to the next row and occupies that
// row's columns 0-1 instead of splitting across the boundary.
func TestScenarioDoubleWidthGlyphAtEdge(t *testing.T) {
	term := NewTerminal(2, 2)
	term.Feed([]byte("A\xe4\xb8\xad")) // "A" + U+4E2D (中)
	if got := term.Cell(0, 0).Data(); got != "A" {
		t.Fatalf("row 0 col 0 = %q, want %q", got, "A")
	}
	if got := term.Cell(1, 0).Data(); got != "" {
		t.Fatalf("row 0 col 1 = %q, want blank (never reached by the CJK glyph)", got)
	}
	wide := term.Cell(0, 1)
	if wide.Data() != "中" || wide.Width() != 2 {
		t.Fatalf("row 1 col 0 = %+v, want the CJK glyph at width 2", wide)
	}
	if cont := term.Cell(1, 1); cont.Width() != 0 {
		t.Fatalf("row 1 col 1 width = %d, want 0 (continuation column)", cont.Width())
	}
}

// Scenario 5: emoji ZWJ sequence.
func TestScenarioEmojiZWJSequence(t *testing.T) {
	term := NewTerminal(4, 2)
	family := "\U0001F468‍\U0001F469‍\U0001F467" // 👨‍👩‍👧
	term.Feed([]byte(family))
	cell := term.Cell(0, 0)
	if cell.Data() != family {
		t.Fatalf("cell data = %q, want the full joined sequence %q", cell.Data(), family)
	}
	if cell.Width() != 2 {
		t.Fatalf("cell width = %d, want 2", cell.Width())
	}
	if next := term.Cell(1, 0); next.Data() != "" {
		t.Fatalf("continuation column = %q, want blank", next.Data())
	}
}

// Scenario 6: scroll region.
func TestScenarioScrollRegion(t *testing.T) {
	term := NewTerminal(10, 6)
	for r := 0; r < 6; r++ {
		term.screen.g.rows[r][0] = Cell{data: strconv.Itoa(r), width: 1}
	}
	term.Feed([]byte("\x1b[2;5r")) // region rows 2-5 (1-based) -> 1-4 (0-based)
	term.screen.cs.row = 4         // row 5 (1-based) == index 4
	term.screen.cs.col = 0
	term.Feed([]byte("\n"))

	want := []string{"0", "2", "3", "4", "", "5"}
	for r, w := range want {
		if got := term.Cell(0, r).Data(); got != w {
			t.Fatalf("row %d col 0 = %q, want %q", r, got, w)
		}
	}
}

// Scenario 7: DA bug avoidance.
func TestScenarioDABugAvoidance(t *testing.T) {
	term := NewTerminal(10, 4)
	var responses [][]byte
	term.SetResponder(func(b []byte) { responses = append(responses, b) })
	term.Feed([]byte("\x1b[?c"))
	if len(responses) != 0 {
		t.Fatalf("responses = %v, want none (a private-marker DA request must be ignored)", responses)
	}
}

func TestCursorPositionReportRoundTrip(t *testing.T) {
	term := NewTerminal(80, 24)
	term.Feed([]byte("\x1b[11;21H")) // CUP row=11 col=21 (1-based) -> (10,20) 0-based
	var got []byte
	term.SetResponder(func(b []byte) { got = b })
	term.Feed([]byte("\x1b[6n"))
	if string(got) != "\x1b[11;21R" {
		t.Fatalf("DSR 6 response = %q, want %q", got, "\x1b[11;21R")
	}
}

func TestSplitBufferFeedEquivalence(t *testing.T) {
	buf := []byte("\x1b[2J\x1b[10;10Hhello\x1b[1;31mworld\x1b[0m\n\rmore text")
	whole := NewTerminal(40, 10)
	whole.Feed(buf)

	for split := 0; split <= len(buf); split++ {
		term := NewTerminal(40, 10)
		term.Feed(buf[:split])
		term.Feed(buf[split:])
		for row := 0; row < 10; row++ {
			if rowText(term, row) != rowText(whole, row) {
				t.Fatalf("split at %d: row %d = %q, want %q", split, row, rowText(term, row), rowText(whole, row))
			}
		}
		wc, wr, _ := whole.CursorPosition()
		tc, tr, _ := term.CursorPosition()
		if wc != tc || wr != tr {
			t.Fatalf("split at %d: cursor = (%d,%d), want (%d,%d)", split, tc, tr, wc, wr)
		}
	}
}

func TestResetFeedEquivalence(t *testing.T) {
	a := NewTerminal(20, 5)
	a.Feed([]byte("\x1b[1;31msomething\x1b[3;3H"))
	a.Reset()
	a.Feed([]byte("hello"))

	b := NewTerminal(20, 5)
	b.Feed([]byte("hello"))

	for row := 0; row < 5; row++ {
		if rowText(a, row) != rowText(b, row) {
			t.Fatalf("row %d = %q, want %q", row, rowText(a, row), rowText(b, row))
		}
	}
}

func TestResetPreservesDECOM(t *testing.T) {
	s := NewScreen(20, 5)
	s.CSIDispatch('?', []int{6}, nil, 'h') // DECSET 6: origin mode on
	if !s.cs.originMode || !s.modes.has(modeDECOM, true) {
		t.Fatal("DECOM not set before Reset")
	}

	s.Reset()

	if !s.cs.originMode {
		t.Fatal("Reset cleared cursorState.originMode; spec.md requires RIS to leave DECOM untouched")
	}
	if !s.modes.has(modeDECOM, true) {
		t.Fatal("Reset cleared the DECOM mode bit; spec.md requires RIS to leave DECOM untouched")
	}
}

func TestResetClearsDECOMWhenNotSet(t *testing.T) {
	s := NewScreen(20, 5)
	s.Reset()
	if s.cs.originMode || s.modes.has(modeDECOM, true) {
		t.Fatal("Reset must not turn DECOM on when it wasn't set before")
	}
}

func TestEraseInDisplayEqualsFreshScreen(t *testing.T) {
	a := NewTerminal(10, 4)
	a.Feed([]byte("\x1b[1;31mhello\x1b[2;2Hworld"))
	a.Feed([]byte("\x1b[2J"))
	a.Feed([]byte("\x1b[1;1H"))

	b := NewTerminal(10, 4)

	for row := 0; row < 4; row++ {
		for col := 0; col < 10; col++ {
			ca, cb := a.Cell(col, row), b.Cell(col, row)
			if ca.Data() != cb.Data() || ca.Foreground() != cb.Foreground() {
				t.Fatalf("cell (%d,%d) = %+v, want %+v", col, row, ca, cb)
			}
		}
	}
}

func TestGridShapeStaysWithinBoundsAfterArbitraryFeed(t *testing.T) {
	term := NewTerminal(8, 5)
	feeds := [][]byte{
		[]byte("\x1b[10;10H"),
		[]byte("\x1b[100D"),
		[]byte("\x1b[100C"),
		[]byte("\x1b[100B"),
		[]byte("\x1b[100A"),
		[]byte("some very long line of text that exceeds the width repeatedly over and over"),
		[]byte("\x1b[2;100r"),
		[]byte("\x1b[?25l\x1b[?25h"),
	}
	for _, f := range feeds {
		term.Feed(f)
	}
	col, row, _ := term.CursorPosition()
	if col < 0 || col > term.Columns() || row < 0 || row >= term.Lines() {
		t.Fatalf("cursor = (%d,%d) out of bounds for %dx%d grid", col, row, term.Columns(), term.Lines())
	}
}
