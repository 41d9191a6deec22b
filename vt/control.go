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

// Execute handles a single C0 control character or DEL. Controls this
// core has no behavior for (SOH, STX, ENQ, ACK, SYN, ...) are silently
// ignored, matching the emulator's permissive-by-design error policy.
func (s *Screen) Execute(b byte) {
	switch b {
	case 0x07: // BEL
		// bell is observable only through a counter in a full
		// terminal; out of scope for this core's grid model.
	case 0x08: // BS
		s.cursorBack(1)
	case 0x09: // HT
		s.tabForward(1)
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF: all advance a line
		s.linefeed(false)
	case 0x0D: // CR
		s.carriageReturn()
	case 0x0E: // SO, Shift Out: select G1 as GL
		s.charset.ShiftOut()
	case 0x0F: // SI, Shift In: select G0 as GL
		s.charset.ShiftIn()
	}
}
