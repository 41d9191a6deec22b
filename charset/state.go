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

package charset

// State tracks which translation table is installed in the G0 and G1
// slots and which of the two is currently active, per ECMA-35's locking
// shift model as VT100-and-later terminals use it (SI/SO, ESC ( / ESC )).
type State struct {
	g      [2]Name // table designated into G0 (index 0) and G1 (index 1)
	active int     // 0 or 1: which of g[] is selected as GL
	utf8   bool    // DOCS selected UTF-8: translation is suppressed entirely
}

// NewState returns the power-on charset state: G0 = US-ASCII, G1 =
// US-ASCII, G0 active, UTF-8 mode on (the default byte-layer encoding).
func NewState() State {
	return State{g: [2]Name{NameUSASCII, NameUSASCII}, active: 0, utf8: true}
}

// Designate points slot (0 for G0, 1 for G1) at name. Called on ESC ( X
// / ESC ) X.
func (s *State) Designate(slot int, name Name) {
	if slot != 0 && slot != 1 {
		return
	}
	s.g[slot] = name
}

// ShiftIn selects G0 as GL (SI, 0x0F).
func (s *State) ShiftIn() {
	if !s.utf8 {
		s.active = 0
	}
}

// ShiftOut selects G1 as GL (SO, 0x0E).
func (s *State) ShiftOut() {
	if !s.utf8 {
		s.active = 1
	}
}

// SetUTF8 toggles whole-stream UTF-8 mode (ECMA-35 DOCS). Entering UTF-8
// mode does not clear the G0/G1 designations -- only suppresses their use
// -- so a later DOCS back to 8-bit resumes the same tables.
func (s *State) SetUTF8(on bool) {
	s.utf8 = on
}

// UTF8 reports whether translation is currently suppressed.
func (s State) UTF8() bool {
	return s.utf8
}

// Translate maps r through the active table, unless UTF-8 mode is on or r
// falls outside the single-byte range 0-0xff the tables cover. A byte the
// active table doesn't claim is decoded through docsTable (ISO 8859-1),
// which maps every byte to the code point of the same value.
func (s State) Translate(r rune) rune {
	if s.utf8 || r < 0 || r > 0xff {
		return r
	}
	tbl := Lookup(s.g[s.active])
	if tbl != nil {
		if mapped, ok := tbl[byte(r)]; ok {
			return mapped
		}
	}
	return docsTable.DecodeByte(byte(r))
}

// Reset restores power-on state (used by RIS, ESC c).
func (s *State) Reset() {
	*s = NewState()
}
