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

// savedCursor is the snapshot DECSC (ESC 7) takes and DECRC (ESC 8)
// restores: position, rendition, the origin mode bit that travels with
// the cursor rather than the screen, and the charset state.
type savedCursor struct {
	col, row     int
	rend         Renditions
	originMode   bool
	charsetState charset.State
}

// cursorState is the screen's cursor/mode/margin/tabstop aggregate: the
// parts of a terminal's state that live "around" the grid rather than in
// it. Each Screen owns exactly one cursorState.
type cursorState struct {
	width, height int

	col, row int

	// nextPrintWillWrap defers DECAWM's wrap-then-print behavior: a
	// glyph that lands exactly on the last column sets this instead of
	// wrapping immediately, and the next printed glyph wraps first.
	nextPrintWillWrap bool

	marginTop    int
	marginBottom int

	rend Renditions

	tabs []bool

	originMode bool

	save savedCursor
}

func newCursorState(width, height int) *cursorState {
	cs := &cursorState{
		width:        width,
		height:       height,
		marginBottom: height - 1,
	}
	cs.initTabs(0)
	return cs
}

func (cs *cursorState) initTabs(from int) {
	cs.tabs = make([]bool, cs.width)
	for i := from; i < cs.width; i++ {
		cs.tabs[i] = i%8 == 0
	}
}

// snap clamps the cursor back into the region the current origin mode
// permits, after any operation that might have pushed it out of bounds.
func (cs *cursorState) snap() {
	if cs.row < cs.limitTop() {
		cs.row = cs.limitTop()
	}
	if cs.row > cs.limitBottom() {
		cs.row = cs.limitBottom()
	}
	if cs.col < 0 {
		cs.col = 0
	}
	if cs.col >= cs.width {
		cs.col = cs.width - 1
	}
}

// limitTop and limitBottom are the vertical bounds cursor motion and
// scrolling-region-aware clamping are measured against: the scrolling
// region in origin mode, the whole screen otherwise.
func (cs *cursorState) limitTop() int {
	if cs.originMode {
		return cs.marginTop
	}
	return 0
}

func (cs *cursorState) limitBottom() int {
	if cs.originMode {
		return cs.marginBottom
	}
	return cs.height - 1
}

// moveRow repositions the cursor's row. relative true adds N to the
// current row (CUU/CUD-style); relative false treats N as an absolute
// row counted from limitTop() (CUP/VPA-style): row 0 normally, the top
// margin in origin mode.
func (cs *cursorState) moveRow(n int, relative bool) {
	if relative {
		cs.row += n
	} else {
		cs.row = n + cs.limitTop()
	}
	cs.snap()
	cs.nextPrintWillWrap = false
}

// moveCol repositions the cursor's column. implicit marks a move caused
// by printing a glyph, which arms nextPrintWillWrap instead of wrapping
// immediately when the column runs past the right edge; an explicit
// move (CUF/CUB/HPA/CUP) clamps immediately and clears any pending wrap.
func (cs *cursorState) moveCol(n int, relative bool, implicit bool) {
	if relative {
		cs.col += n
	} else {
		cs.col = n
	}
	if implicit {
		if cs.col < 0 {
			cs.col = 0
		}
		// Deliberately not routed through snap(): a column that runs
		// past the right edge is left sitting exactly on the sentinel
		// (col == width) rather than clamped, so CursorPosition can
		// report the "past right edge" position the wrap rule defers
		// resolving until the next printed glyph.
		if cs.col >= cs.width {
			cs.nextPrintWillWrap = true
			cs.col = cs.width
		} else {
			cs.nextPrintWillWrap = false
		}
		return
	}
	cs.nextPrintWillWrap = false
	cs.snap()
}

// setMargins installs a new scrolling region (DECSTBM). Values are
// already 0-based and inclusive; an edge outside the screen is clamped
// to it, and a request that leaves fewer than two rows (an inverted or
// single-row region) is ignored.
func (cs *cursorState) setMargins(top, bottom int) {
	if cs.height < 1 {
		return
	}
	if top < 0 {
		top = 0
	}
	if bottom >= cs.height {
		bottom = cs.height - 1
	}
	if bottom <= top {
		return
	}
	cs.marginTop = top
	cs.marginBottom = bottom
	cs.row = cs.limitTop()
	cs.col = 0
	cs.nextPrintWillWrap = false
	cs.snap()
}

func (cs *cursorState) setTab()          { cs.tabs[cs.col] = true }
func (cs *cursorState) clearTab(col int) { cs.tabs[col] = false }
func (cs *cursorState) clearAllTabs() {
	for i := range cs.tabs {
		cs.tabs[i] = false
	}
}

// nextTab returns the column of the next (count>0) or previous (count<0)
// tab stop from the cursor's current position, or the last column / column
// 0 respectively when none remains before the edge of the screen.
func (cs *cursorState) nextTab(count int) int {
	if count >= 0 {
		for i := cs.col + 1; i < cs.width && count > 0; i++ {
			if cs.tabs[i] {
				count--
				if count == 0 {
					return i
				}
			}
		}
		return cs.width - 1
	}
	for i := cs.col - 1; i > 0 && count < 0; i-- {
		if cs.tabs[i] {
			count++
			if count == 0 {
				return i
			}
		}
	}
	return 0
}

// saveCursor implements DECSC (ESC 7): snapshot position, rendition,
// origin mode and the active charset designations.
func (cs *cursorState) saveCursor(cset charset.State) {
	cs.save = savedCursor{
		col:          cs.col,
		row:          cs.row,
		rend:         cs.rend,
		originMode:   cs.originMode,
		charsetState: cset,
	}
}

// restoreCursor implements DECRC (ESC 8), returning the restored
// charset state for the caller to reinstall.
func (cs *cursorState) restoreCursor() charset.State {
	cs.col = cs.save.col
	cs.row = cs.save.row
	cs.rend = cs.save.rend
	cs.originMode = cs.save.originMode
	cs.nextPrintWillWrap = false
	cs.snap()
	return cs.save.charsetState
}

// resize adjusts the cursor state to a new grid size: xterm/rxvt-style
// full scrolling-region reset on any size change, tab stops
// reinitialized, cursor snapped back into bounds.
func (cs *cursorState) resize(width, height int) {
	if cs.width != width || cs.height != height {
		cs.marginTop = 0
		cs.marginBottom = height - 1
	}
	cs.width = width
	cs.height = height
	cs.initTabs(0)
	cs.nextPrintWillWrap = false
	cs.snap()
}
