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
)

// OSCDispatch implements OSC 0/1/2 (icon name / window title, updated
// together or separately) plus the two special payloads the parser can
// hand it without a host ever sending a real ST: "R" (palette reset,
// dispatched with empty text per the "must not hang" rule) and anything
// else, which is discarded -- xterm color queries and the "ESC ] ... $
// <letter>" family are consumed by the parser's string state but this
// core keeps no palette or query machinery to answer them.
func (s *Screen) OSCDispatch(data []byte) {
	str := string(data)
	if str == "R" {
		return
	}
	idx := strings.IndexByte(str, ';')
	if idx < 0 {
		return
	}
	num, err := strconv.Atoi(str[:idx])
	if err != nil {
		return
	}
	text := str[idx+1:]
	switch num {
	case 0:
		s.iconName = text
		s.title = text
	case 1:
		s.iconName = text
	case 2:
		s.title = text
	}
}
