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

// Package charset holds the static single-byte translation tables a VT
// terminal consults while G0/G1 charset mode (as opposed to UTF-8 mode) is
// active. Each table maps an incoming byte (0x20-0x7e, the GL area, or
// 0xa0-0xff, the GR area, for DEC Supplemental) to the rune it should be
// displayed as.
package charset

import "golang.org/x/text/encoding/charmap"

// docsTable is the single-byte decoder consulted for a byte the active
// G0/G1 table doesn't claim: ISO-8859-1, the encoding the Linux console
// falls back to for upper-half bytes no national replacement set remaps.
var docsTable = charmap.ISO8859_1

// Table is a translation map indexed by the raw byte the host sent.
// A nil Table (or a missing entry) means "pass the byte through
// unchanged", which is how US-ASCII is represented.
type Table map[byte]rune

// Name identifies one of the designatable tables. The bytes match the
// final byte of the ESC ( / ESC ) / ESC * / ESC + designate-charset
// sequence (ECMA-35 / DEC STD 070).
type Name byte

const (
	NameUSASCII       Name = 'B'
	NameUK            Name = 'A'
	NameDECSpecial    Name = '0' // DEC Special Graphics (line drawing)
	NameDECSupplement Name = '<' // VAX42 / DEC Supplemental (multinational)
	NameLatin1        Name = '1' // ISO 8859-1 (no remapping)
)

// Lookup returns the designatable table for name, or nil if name does
// not select translation (e.g. US-ASCII, or an unrecognised final byte --
// VT terminals silently ignore unknown charset designations).
func Lookup(name Name) Table {
	switch name {
	case NameUK:
		return uk
	case NameDECSpecial:
		return decSpecialGraphics
	case NameDECSupplement:
		return vax42
	case NameLatin1:
		return latin1Fallback
	default:
		return nil
	}
}

// Translate applies tbl to b, falling back to the identity mapping
// (b interpreted as its own code point) when tbl is nil or has no
// entry for b.
func Translate(tbl Table, b byte) rune {
	if tbl == nil {
		return rune(b)
	}
	if r, ok := tbl[b]; ok {
		return r
	}
	return rune(b)
}

// uk is US-ASCII except '#' (0x23), which VT100s render as the pound
// sterling sign -- the one difference the ISO UK national variant makes.
var uk = Table{
	0x23: 0x00A3,
}

// decSpecialGraphics is the VT100 "DEC Special Graphics and Line Drawing"
// set, selected by ESC ( 0. The printable range 0x5f-0x7e is remapped to
// box-drawing and symbol glyphs; everything below 0x5f is untouched.
var decSpecialGraphics = Table{
	0x5f: 0x00A0, // blank
	0x60: 0x25C6, // diamond
	0x61: 0x2592, // checkerboard (medium shade)
	0x62: 0x2409, // HT symbol
	0x63: 0x240C, // FF symbol
	0x64: 0x240D, // CR symbol
	0x65: 0x240A, // LF symbol
	0x66: 0x00B0, // degree
	0x67: 0x00B1, // plus/minus
	0x68: 0x2424, // NL symbol
	0x69: 0x240B, // VT symbol
	0x6a: 0x2518, // lower-right corner
	0x6b: 0x2510, // upper-right corner
	0x6c: 0x250C, // upper-left corner
	0x6d: 0x2514, // lower-left corner
	0x6e: 0x253C, // crossing lines
	0x6f: 0x23BA, // scan line 1
	0x70: 0x23BB, // scan line 3
	0x71: 0x2500, // horizontal line
	0x72: 0x23BC, // scan line 7
	0x73: 0x23BD, // scan line 9
	0x74: 0x251C, // left "T"
	0x75: 0x2524, // right "T"
	0x76: 0x2534, // bottom "T"
	0x77: 0x252C, // top "T"
	0x78: 0x2502, // vertical line
	0x79: 0x2264, // less than or equal to
	0x7a: 0x2265, // greater than or equal to
	0x7b: 0x03C0, // pi
	0x7c: 0x2260, // not equal to
	0x7d: 0x00A3, // pound sterling
	0x7e: 0x00B7, // centered dot
}

// latin1Fallback is the table selected by designating final byte '1'. It
// is nil, so no byte is remapped: bytes 0xa0-0xff already line up with
// their Unicode code points.
var latin1Fallback Table = nil

// vax42 is the DEC Supplemental / "multinational" graphic set carried
// over from DEC's VAX-11/780 terminal firmware (hence the informal VAX42
// name some emulator authors use for it). It remaps the 0xa0-0xff GR
// column away from straight Latin-1 for a handful of ligatures and
// accented forms that VT300+ hardware special-cased.
var vax42 = Table{
	0xa0: 0x0020,
	0xa1: 0x00a1,
	0xa6: 0x0026,
	0xa8: 0x00a4,
	0xac: 0x002c,
	0xad: 0x002d,
	0xae: 0x002e,
	0xaf: 0x002f,
	0xb4: 0x0034,
	0xb8: 0x0038,
	0xbe: 0x003e,
	0xd0: 0x0050,
	0xd7: 0x0152,
	0xdd: 0x0178,
	0xde: 0x005e,
	0xf0: 0x0070,
	0xf7: 0x0153,
	0xfd: 0x00ff,
	0xfe: 0x007e,
	0xff: 0x007f,
}
