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
	"testing"

	"github.com/cassirer-openai/vtterm/charset"
)

func TestCursorStateDeferredWrap(t *testing.T) {
	cs := newCursorState(4, 3)
	cs.moveCol(4, true, true) // draw landed exactly on the last column
	if !cs.nextPrintWillWrap {
		t.Fatal("nextPrintWillWrap not armed after an implicit move to the right edge")
	}
	if cs.col != cs.width {
		t.Fatalf("col = %d, want the sentinel %d (\"past right edge\")", cs.col, cs.width)
	}
}

func TestCursorStateExplicitMoveClampsAndClearsWrap(t *testing.T) {
	cs := newCursorState(4, 3)
	cs.moveCol(4, true, true)
	cs.moveCol(1, true, false) // an explicit CUF must clamp, not extend the sentinel
	if cs.nextPrintWillWrap {
		t.Fatal("an explicit column move must clear a pending wrap")
	}
	if cs.col != cs.width-1 {
		t.Fatalf("col = %d, want %d", cs.col, cs.width-1)
	}
}

func TestCursorStateRegionClampOnlyInsideRegion(t *testing.T) {
	cs := newCursorState(10, 6)
	cs.setMargins(1, 4)
	cs.row = 0 // outside the region (above marginTop)
	cs.moveRow(0, false)
	// moveRow(0, false) means "absolute row 0 relative to limitTop()";
	// outside origin mode limitTop() is 0, so this just re-homes to 0.
	if cs.row != 0 {
		t.Fatalf("row = %d, want 0", cs.row)
	}
}

func TestCursorStateSaveRestoreRoundTrip(t *testing.T) {
	cs := newCursorState(80, 24)
	cs.col, cs.row = 10, 5
	cs.rend.bold = true
	cs.originMode = true
	cs.saveCursor(charset.NewState())
	cs.col, cs.row = 0, 0
	cs.rend.bold = false
	cs.originMode = false
	cs.restoreCursor()
	if cs.col != 10 || cs.row != 5 || !cs.rend.bold || !cs.originMode {
		t.Fatalf("restoreCursor did not recover saved state: col=%d row=%d bold=%v originMode=%v",
			cs.col, cs.row, cs.rend.bold, cs.originMode)
	}
}

func TestCursorStateTabStops(t *testing.T) {
	cs := newCursorState(40, 24)
	if got := cs.nextTab(1); got != 8 {
		t.Fatalf("first tab stop from col 0 = %d, want 8", got)
	}
	cs.col = 8
	if got := cs.nextTab(1); got != 16 {
		t.Fatalf("next tab stop from col 8 = %d, want 16", got)
	}
	cs.clearTab(16)
	if got := cs.nextTab(1); got != 24 {
		t.Fatalf("tab stop after clearing col 16 = %d, want 24", got)
	}
}
