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

import "testing"

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if !s.UTF8() {
		t.Fatal("NewState must start in UTF-8 mode")
	}
	if s.Translate('#') != '#' {
		t.Fatalf("Translate('#') = %q, want '#' (US-ASCII, no remap)", s.Translate('#'))
	}
}

func TestDesignateAndShift(t *testing.T) {
	var s State
	s.SetUTF8(false)
	s.Designate(1, NameUK)
	s.ShiftOut() // select G1
	if got := s.Translate('#'); got != 0x00A3 {
		t.Fatalf("Translate('#') under UK in G1 = %q, want £ (0x00A3)", got)
	}
	s.ShiftIn() // back to G0 (still untranslated, default table)
	if got := s.Translate('#'); got != '#' {
		t.Fatalf("Translate('#') after shifting back to G0 = %q, want '#'", got)
	}
}

func TestShiftIgnoredInUTF8Mode(t *testing.T) {
	s := NewState() // utf8 = true
	s.Designate(1, NameDECSpecial)
	s.ShiftOut()
	if s.Translate('a') != 'a' {
		t.Fatal("UTF-8 mode must suppress charset translation even after a shift")
	}
}

func TestSetUTF8PreservesDesignations(t *testing.T) {
	var s State
	s.SetUTF8(false)
	s.Designate(0, NameDECSpecial)
	s.SetUTF8(true)
	s.SetUTF8(false)
	// Re-entering 8-bit mode must resume the same table without
	// needing another Designate.
	if got := s.Translate('a'); got == 'a' {
		t.Fatal("DEC Special Graphics must remap 'a' away from its identity value")
	}
}

func TestTranslateOutsideByteRangeIsIdentity(t *testing.T) {
	var s State
	s.SetUTF8(false)
	s.Designate(0, NameDECSpecial)
	if got := s.Translate('€'); got != '€' {
		t.Fatalf("Translate of a rune outside 0-0xff = %q, want identity", got)
	}
}

func TestResetRestoresPowerOnState(t *testing.T) {
	var s State
	s.SetUTF8(false)
	s.Designate(1, NameUK)
	s.ShiftOut()
	s.Reset()
	if !s.UTF8() {
		t.Fatal("Reset must restore UTF-8 mode")
	}
	if got := s.Translate('#'); got != '#' {
		t.Fatalf("Translate('#') after Reset = %q, want '#'", got)
	}
}

func TestDesignateIgnoresOutOfRangeSlot(t *testing.T) {
	var s State
	s.SetUTF8(false)
	before := s.Translate('#')
	s.Designate(2, NameUK) // only slots 0 and 1 exist
	if got := s.Translate('#'); got != before {
		t.Fatalf("an out-of-range Designate must not change translation: got %q, want %q", got, before)
	}
}
