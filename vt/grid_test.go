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

import "testing"

func TestGridEraseRange(t *testing.T) {
	g := newGrid(5, 2)
	g.rows[0][2] = Cell{data: "x", width: 1}
	g.eraseRange(0, 1, 4, ColorDefault)
	for col := 1; col < 4; col++ {
		if g.rows[0][col].data != "" {
			t.Fatalf("col %d not blanked: %q", col, g.rows[0][col].data)
		}
	}
}

func TestGridInsertLine(t *testing.T) {
	g := newGrid(3, 4)
	for r := 0; r < 4; r++ {
		g.rows[r][0] = Cell{data: string(rune('a' + r)), width: 1}
	}
	if ok := g.insertLine(1, 1, 0, 3, ColorDefault); !ok {
		t.Fatal("insertLine returned false for a valid request")
	}
	if g.rows[1][0].data != "" {
		t.Fatalf("row 1 after insert = %q, want blank", g.rows[1][0].data)
	}
	if g.rows[2][0].data != "b" {
		t.Fatalf("row 2 after insert = %q, want %q (old row 1)", g.rows[2][0].data, "b")
	}
	if g.rows[3][0].data != "c" {
		t.Fatalf("row 3 after insert = %q, want %q (old row 2, old row 3 dropped)", g.rows[3][0].data, "c")
	}
}

func TestGridDeleteLine(t *testing.T) {
	g := newGrid(3, 4)
	for r := 0; r < 4; r++ {
		g.rows[r][0] = Cell{data: string(rune('a' + r)), width: 1}
	}
	if ok := g.deleteLine(1, 1, 0, 3, ColorDefault); !ok {
		t.Fatal("deleteLine returned false for a valid request")
	}
	if g.rows[1][0].data != "c" {
		t.Fatalf("row 1 after delete = %q, want %q (old row 2)", g.rows[1][0].data, "c")
	}
	if g.rows[3][0].data != "" {
		t.Fatalf("row 3 after delete = %q, want blank", g.rows[3][0].data)
	}
}

func TestGridInsertDeleteCells(t *testing.T) {
	g := newGrid(5, 1)
	for c := 0; c < 5; c++ {
		g.rows[0][c] = Cell{data: string(rune('a' + c)), width: 1}
	}
	g.insertCells(0, 1, 2, ColorDefault)
	want := []string{"a", "", "", "b", "c"}
	for c, w := range want {
		if g.rows[0][c].data != w {
			t.Fatalf("after insertCells, col %d = %q, want %q", c, g.rows[0][c].data, w)
		}
	}

	g2 := newGrid(5, 1)
	for c := 0; c < 5; c++ {
		g2.rows[0][c] = Cell{data: string(rune('a' + c)), width: 1}
	}
	g2.deleteCells(0, 1, 2, ColorDefault)
	want2 := []string{"a", "d", "e", "", ""}
	for c, w := range want2 {
		if g2.rows[0][c].data != w {
			t.Fatalf("after deleteCells, col %d = %q, want %q", c, g2.rows[0][c].data, w)
		}
	}
}

func TestGridResizePreservesTopLeft(t *testing.T) {
	g := newGrid(4, 4)
	g.rows[0][0] = Cell{data: "X", width: 1}
	g.resize(2, 2)
	if g.rows[0][0].data != "X" {
		t.Fatalf("top-left cell lost on shrink: %q", g.rows[0][0].data)
	}
	if g.width != 2 || g.height != 2 {
		t.Fatalf("dimensions after resize = %dx%d, want 2x2", g.width, g.height)
	}
	g.resize(4, 4)
	if g.rows[0][0].data != "X" {
		t.Fatalf("top-left cell lost on grow: %q", g.rows[0][0].data)
	}
	for row := 0; row < g.height; row++ {
		if len(g.rows[row]) != g.width {
			t.Fatalf("row %d has %d columns, want %d", row, len(g.rows[row]), g.width)
		}
	}
}

func TestGridToggleReverseAll(t *testing.T) {
	g := newGrid(2, 1)
	g.toggleReverseAll()
	if !g.rows[0][0].reverse || !g.rows[0][1].reverse {
		t.Fatal("toggleReverseAll did not set reverse on existing cells")
	}
	g.toggleReverseAll()
	if g.rows[0][0].reverse || g.rows[0][1].reverse {
		t.Fatal("a second toggleReverseAll did not clear reverse")
	}
}
