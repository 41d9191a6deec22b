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

// Renditions is the SGR (Select Graphic Rendition) state a terminal
// carries alongside the cursor: the colors and style bits every
// subsequently drawn cell inherits, until changed by another SGR
// sequence or reset by RIS.
type Renditions struct {
	fg Color
	bg Color

	bold          bool
	italics       bool
	underscore    bool
	strikethrough bool
	reverse       bool
	blink         bool
}

// Reset restores the power-on rendition: default colors, no style bits.
func (r *Renditions) Reset() {
	*r = Renditions{}
}

// Apply walks an SGR parameter list (the semicolon-split numbers from a
// CSI ... m sequence) and folds each into r in order, the way a real
// terminal processes a single CSI with several parameters as a sequence
// of independent attribute changes. params is expected already
// default-substituted (an omitted parameter arrives as 0, same as an
// explicit "0").
//
// The extended color forms -- 38/48;5;index and 38/48;2;r;g;b -- consume
// extra elements of params beyond the one they're matched on; a
// malformed extended sequence (wrong sub-selector, or not enough
// elements left) is skipped without touching any other attribute, and
// the walk resumes at the next top-level parameter.
func (r *Renditions) Apply(params []int) {
	if len(params) == 0 {
		r.buildAttribute(0)
		return
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0 && i != len(params)-1:
			// A 0 mixed in with other non-zero parameters is ignored
			// rather than performed -- only a trailing (or sole) 0
			// actually resets.
		case p == 38 || p == 48:
			consumed := r.applyExtendedColor(p, params[i+1:])
			i += consumed
		default:
			r.buildAttribute(p)
		}
	}
}

// applyExtendedColor handles the 38/48;5;idx and 38/48;2;r;g;b forms.
// rest is params following the 38/48 selector; it returns how many of
// rest were consumed so the caller can advance its own index past them.
// On a malformed sequence it leaves r unchanged and consumes the
// sub-selector plus whatever elements of the form are present, so none
// of them is read as an attribute of its own.
func (r *Renditions) applyExtendedColor(selector int, rest []int) int {
	if len(rest) == 0 {
		return 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return len(rest)
		}
		c := PaletteColor(rest[1])
		r.setColor(selector, c)
		return 2
	case 2:
		if len(rest) < 4 {
			return len(rest)
		}
		c := NewRGBColor(rest[1], rest[2], rest[3])
		r.setColor(selector, c)
		return 4
	default:
		return 1
	}
}

func (r *Renditions) setColor(selector int, c Color) {
	if selector == 38 {
		r.fg = c
	} else {
		r.bg = c
	}
}

// buildAttribute folds a single non-extended SGR code into r. Unknown
// codes are ignored, matching a real terminal's tolerance of SGR
// parameters it doesn't implement.
func (r *Renditions) buildAttribute(attribute int) {
	switch attribute {
	case 0:
		r.bold = false
		r.italics = false
		r.underscore = false
		r.strikethrough = false
		r.reverse = false
		r.blink = false
		r.fg = ColorDefault
		r.bg = ColorDefault
	case 1:
		r.bold = true
	case 3:
		r.italics = true
	case 4:
		r.underscore = true
	case 5:
		r.blink = true
	case 7:
		r.reverse = true
	case 9:
		r.strikethrough = true

	case 22:
		r.bold = false
	case 23:
		r.italics = false
	case 24:
		r.underscore = false
	case 25:
		r.blink = false
	case 27:
		r.reverse = false
	case 29:
		r.strikethrough = false

	case 30, 31, 32, 33, 34, 35, 36, 37:
		r.fg = PaletteColor(attribute - 30)
	case 39:
		r.fg = ColorDefault

	case 40, 41, 42, 43, 44, 45, 46, 47:
		r.bg = PaletteColor(attribute - 40)
	case 49:
		r.bg = ColorDefault

	case 90, 91, 92, 93, 94, 95, 96, 97:
		r.fg = PaletteColor(attribute - 90 + 8)
	case 100, 101, 102, 103, 104, 105, 106, 107:
		r.bg = PaletteColor(attribute - 100 + 8)
	}
}
