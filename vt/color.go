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

// Color is a packed representation of a cell's foreground or background
// color: the terminal default, one of the 256 palette entries (0-15 are
// the ANSI/aixterm named colors, 16-255 the extended palette), or a
// direct 24-bit RGB value set by an SGR 38/48;2 sequence.
type Color uint32

const (
	colorIsRGB   Color = 1 << 24
	colorIsValid Color = 1 << 25
)

// ColorDefault is the terminal's default foreground/background, restored
// by SGR 0, 39 and 49.
const ColorDefault Color = 0

// Standard ANSI palette entries 0-7 and their aixterm bright counterparts
// 8-15, named the way SGR 30-37/90-97 (foreground) and 40-47/100-107
// (background) address them; each equals PaletteColor of its index.
const (
	ColorBlack Color = colorIsValid + iota
	ColorRed
	ColorGreen
	ColorBrown
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightBrown
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// PaletteColor returns the color that selects palette entry index
// (0-255). Used for SGR 30-37/40-47, 90-97/100-107 and the indexed form
// of 38/48;5.
func PaletteColor(index int) Color {
	return Color(index&0xff) | colorIsValid
}

// NewRGBColor returns the direct-RGB color with the given 0-255
// components, as set by SGR 38/48;2;r;g;b.
func NewRGBColor(r, g, b int) Color {
	v := (Color(r&0xff) << 16) | (Color(g&0xff) << 8) | Color(b&0xff)
	return v | colorIsRGB | colorIsValid
}

// Valid reports whether c has been explicitly set, as opposed to being
// the zero-value ColorDefault.
func (c Color) Valid() bool {
	return c&colorIsValid != 0
}

// IsRGB reports whether c carries a direct 24-bit value rather than a
// palette index.
func (c Color) IsRGB() bool {
	return c&(colorIsValid|colorIsRGB) == (colorIsValid | colorIsRGB)
}

// Index returns c's palette index, or -1 if c is the default color or an
// RGB color.
func (c Color) Index() int {
	if !c.Valid() || c.IsRGB() {
		return -1
	}
	return int(c & 0xff)
}

// RGB resolves c to 0-255 red/green/blue components, expanding a palette
// index through palette256 as needed. Returns false for ColorDefault.
func (c Color) RGB() (r, g, b int, ok bool) {
	if !c.Valid() {
		return 0, 0, 0, false
	}
	if c.IsRGB() {
		return int((c >> 16) & 0xff), int((c >> 8) & 0xff), int(c & 0xff), true
	}
	rgb := palette256[c.Index()&0xff]
	return rgb.r, rgb.g, rgb.b, true
}

type rgb struct{ r, g, b int }

// palette256 is the fixed xterm 256-color table: 0-15 the named ANSI and
// aixterm colors (exact legacy RGB values, not evenly spaced), 16-231 a
// 6x6x6 color cube, 232-255 a 24-step grayscale ramp.
var palette256 = buildPalette256()

func buildPalette256() [256]rgb {
	var p [256]rgb
	named := [16]rgb{
		{0x00, 0x00, 0x00}, {0xcd, 0x00, 0x00}, {0x00, 0xcd, 0x00}, {0xcd, 0xcd, 0x00},
		{0x00, 0x00, 0xee}, {0xcd, 0x00, 0xcd}, {0x00, 0xcd, 0xcd}, {0xe5, 0xe5, 0xe5},
		{0x7f, 0x7f, 0x7f}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
		{0x5c, 0x5c, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
	}
	copy(p[0:16], named[:])

	valuerange := [6]int{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}
	for i := 0; i < 216; i++ {
		r := valuerange[(i/36)%6]
		g := valuerange[(i/6)%6]
		b := valuerange[i%6]
		p[16+i] = rgb{r, g, b}
	}

	for i := 0; i < 24; i++ {
		v := 8 + i*10
		p[232+i] = rgb{v, v, v}
	}
	return p
}
