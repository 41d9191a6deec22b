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

// grid is the screen's cell storage: a dense array of rows, each a
// fixed-width slice of Cell. A dense representation was chosen over a
// sparse map-of-maps because every row is touched on almost every scroll
// and resize -- a full row slice to walk linearly beats hashing into a
// map column by column, and the grid's size is bounded by the screen
// dimensions rather than by unbounded scrollback.
type grid struct {
	width, height int
	rows          [][]Cell

	damaged bool
}

func newGrid(width, height int) *grid {
	g := &grid{width: width, height: height}
	g.rows = make([][]Cell, height)
	for i := range g.rows {
		g.rows[i] = blankRow(width)
	}
	return g
}

func blankRow(width int) []Cell {
	row := make([]Cell, width)
	for i := range row {
		row[i] = blankCell()
	}
	return row
}

func (g *grid) at(row, col int) *Cell {
	return &g.rows[row][col]
}

func (g *grid) markDamaged() { g.damaged = true }

// eraseRange blanks columns [start,end) of row using bg as the erased
// cells' background color.
func (g *grid) eraseRange(row, start, end int, bg Color) {
	if start < 0 {
		start = 0
	}
	if end > g.width {
		end = g.width
	}
	for col := start; col < end; col++ {
		c := blankCell()
		c.bg = bg
		g.rows[row][col] = c
	}
	g.markDamaged()
}

// eraseRows blanks rows [start,end) entirely, used by ED/scroll-fill.
func (g *grid) eraseRows(start, end int, bg Color) {
	if start < 0 {
		start = 0
	}
	if end > g.height {
		end = g.height
	}
	for row := start; row < end; row++ {
		g.eraseRange(row, 0, g.width, bg)
	}
}

// insertLine implements IL (and the scroll-up-by-insert-at-top case):
// count blank rows appear starting at beforeRow, and rows at the bottom
// of [top,bottom] are dropped to make room. beforeRow, top and bottom
// are all 0-based inclusive row indices; returns false if beforeRow
// falls outside [top, bottom+1].
func (g *grid) insertLine(beforeRow, count, top, bottom int, bg Color) bool {
	if beforeRow < top || beforeRow > bottom+1 {
		return false
	}
	maxRoll := bottom + 1 - beforeRow
	if count > maxRoll {
		count = maxRoll
	}
	if count <= 0 {
		return false
	}
	for row := bottom; row >= beforeRow+count; row-- {
		g.rows[row] = g.rows[row-count]
	}
	for row := beforeRow; row < beforeRow+count; row++ {
		g.rows[row] = blankRow(g.width)
		g.applyBackground(row, bg)
	}
	g.markDamaged()
	return true
}

// deleteLine implements DL: count rows starting at row are removed, and
// the rows below [top,bottom] slide up to fill the gap, with blank rows
// appearing at the bottom of the region.
func (g *grid) deleteLine(row, count, top, bottom int, bg Color) bool {
	if row < top || row > bottom {
		return false
	}
	maxRoll := bottom + 1 - row
	if count > maxRoll {
		count = maxRoll
	}
	if count <= 0 {
		return false
	}
	for r := row; r <= bottom-count; r++ {
		g.rows[r] = g.rows[r+count]
	}
	for r := bottom - count + 1; r <= bottom; r++ {
		g.rows[r] = blankRow(g.width)
		g.applyBackground(r, bg)
	}
	g.markDamaged()
	return true
}

func (g *grid) applyBackground(row int, bg Color) {
	for col := range g.rows[row] {
		g.rows[row][col].bg = bg
	}
}

// insertCells implements ICH: count blank cells appear at col, shoving
// the rest of the row right and dropping whatever falls off the edge.
func (g *grid) insertCells(row, col, count int, bg Color) {
	if count <= 0 || col >= g.width {
		return
	}
	if count > g.width-col {
		count = g.width - col
	}
	r := g.rows[row]
	copy(r[col+count:], r[col:g.width-count])
	for i := col; i < col+count; i++ {
		c := blankCell()
		c.bg = bg
		r[i] = c
	}
	g.markDamaged()
}

// deleteCells implements DCH: count cells starting at col are removed,
// the rest of the row shifts left, blanks fill in on the right.
func (g *grid) deleteCells(row, col, count int, bg Color) {
	if count <= 0 || col >= g.width {
		return
	}
	if count > g.width-col {
		count = g.width - col
	}
	r := g.rows[row]
	copy(r[col:], r[col+count:g.width])
	for i := g.width - count; i < g.width; i++ {
		c := blankCell()
		c.bg = bg
		r[i] = c
	}
	g.markDamaged()
}

// resize grows or shrinks the grid in place, preserving the top-left
// corner's contents the way xterm does: extra rows/columns are blanked,
// rows/columns beyond the new size are dropped.
func (g *grid) resize(width, height int) {
	if height != g.height {
		rows := make([][]Cell, height)
		for i := 0; i < height && i < g.height; i++ {
			rows[i] = g.rows[i]
		}
		for i := g.height; i < height; i++ {
			rows[i] = blankRow(g.width)
		}
		g.rows = rows
		g.height = height
	}
	if width != g.width {
		for i := range g.rows {
			row := make([]Cell, width)
			n := width
			if n > g.width {
				n = g.width
			}
			copy(row, g.rows[i][:n])
			for c := n; c < width; c++ {
				row[c] = blankCell()
			}
			g.rows[i] = row
		}
		g.width = width
	}
	g.markDamaged()
}

// toggleReverseAll toggles the reverse bit on every existing cell, used by
// DECSCNM's screen-wide invert.
func (g *grid) toggleReverseAll() {
	for r := range g.rows {
		for c := range g.rows[r] {
			g.rows[r][c].reverse = !g.rows[r][c].reverse
		}
	}
	g.markDamaged()
}
