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

// DesignateCharset implements ESC ( / ) / * / + <final>: designate a
// table into G0 (slot 0) or G1 (slot 1). G2/G3 (slots 2, 3) are parsed
// by the FSM for compliance but this core only ever shifts between G0
// and G1, so they are accepted and otherwise ignored.
func (s *Screen) DesignateCharset(slot int, final byte) {
	if slot != 0 && slot != 1 {
		return
	}
	s.charset.Designate(slot, charset.Name(final))
}

// EscDispatch handles every non-CSI escape sequence this core acts on:
// index, save/restore cursor, reverse index, next line, tab set, full
// reset, the screen-alignment test, and DOCS UTF-8 switching.
func (s *Screen) EscDispatch(intermediates []byte, final byte) {
	if len(intermediates) == 1 && intermediates[0] == '%' {
		s.docs(final)
		return
	}
	if len(intermediates) == 1 && intermediates[0] == '#' && final == '8' {
		s.decaln()
		return
	}
	switch final {
	case 'D': // IND, Index: like LF but never does the LNM-coupled CR
		s.linefeed(false)
	case 'M': // RI, Reverse Index
		s.reverseIndex()
	case 'E': // NEL, Next Line
		s.cs.moveCol(0, false, false)
		s.linefeed(false)
	case 'H': // HTS, Horizontal Tab Set
		s.cs.setTab()
	case 'c': // RIS, full reset
		s.Reset()
	case '7': // DECSC, Save Cursor
		s.cs.saveCursor(s.charset)
	case '8': // DECRC, Restore Cursor
		s.charset = s.cs.restoreCursor()
		s.modes.set(modeDECOM, true, s.cs.originMode)
	}
}

// docs implements ECMA-035 DOCS (ESC % <final>): switch the byte-layer
// coding system. 'G' selects UTF-8 (translation disabled entirely);
// '@' returns to the single-byte default, where G0/G1 designations
// resume effect.
func (s *Screen) docs(final byte) {
	switch final {
	case 'G':
		s.charset.SetUTF8(true)
	case '@':
		s.charset.SetUTF8(false)
	}
}

// decaln implements DECALN (ESC # 8): fill the entire screen with 'E',
// the terminal self-test pattern used to check margins and tab stops.
func (s *Screen) decaln() {
	for row := 0; row < s.g.height; row++ {
		for col := 0; col < s.g.width; col++ {
			c := Cell{data: "E", width: 1}
			s.g.rows[row][col] = c
		}
	}
	s.g.markDamaged()
}
