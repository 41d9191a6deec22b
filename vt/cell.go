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

// Cell is the unit the grid stores per screen column: the grapheme
// cluster occupying it (a string rather than a rune, since a single
// visible glyph may be composed of several code points -- combining
// marks, or an emoji ZWJ sequence), its display width, and the
// rendition in effect when it was written.
//
// width is 0 for the continuation column of a wide glyph (the column
// immediately to the right of a width-2 cell), 1 for a normal glyph and
// 2 for a wide (East Asian / emoji) glyph. A width-0 cell carries no
// data of its own; it exists only so the grid has a cell to erase or
// overwrite independently of its neighbor.
type Cell struct {
	data  string
	width int

	fg Color
	bg Color

	bold          bool
	italics       bool
	underscore    bool
	strikethrough bool
	reverse       bool
	blink         bool
}

// blankCell is what Erase* operations write: a space, default-rendered,
// single-width. The grid's erase helpers set on it the background color
// their caller passes in; it is not baked in here.
func blankCell() Cell {
	return Cell{data: " ", width: 1}
}

// Data returns the grapheme cluster drawn in the cell.
func (c Cell) Data() string { return c.data }

// Width returns 0, 1 or 2.
func (c Cell) Width() int { return c.width }

// Foreground and Background return the cell's resolved colors.
func (c Cell) Foreground() Color { return c.fg }
func (c Cell) Background() Color { return c.bg }

// Bold, Italics, Underscore, Strikethrough, Reverse and Blink report the
// style bits baked into the cell at draw time.
func (c Cell) Bold() bool          { return c.bold }
func (c Cell) Italics() bool       { return c.italics }
func (c Cell) Underscore() bool    { return c.underscore }
func (c Cell) Strikethrough() bool { return c.strikethrough }
func (c Cell) Reverse() bool       { return c.reverse }
func (c Cell) Blink() bool         { return c.blink }

// withRendition returns a copy of c with its style fields taken from r,
// used when writing a new glyph under the cursor's current rendition.
func (c Cell) withRendition(r Renditions) Cell {
	c.fg = r.fg
	c.bg = r.bg
	c.bold = r.bold
	c.italics = r.italics
	c.underscore = r.underscore
	c.strikethrough = r.strikethrough
	c.reverse = r.reverse
	c.blink = r.blink
	return c
}

// wide reports whether c is the leading column of a double-width glyph.
func (c Cell) wide() bool { return c.width == 2 }
