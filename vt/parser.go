package vt

import (
	"strings"
	"unicode/utf8"
)

// parser FSM states, named after the vt100.net DEC ANSI parser states
// this machine is modelled on.
type pstate int

const (
	stateGround pstate = iota
	stateEscape
	stateEscapeIntermediate
	stateCSIEntry
	stateCSIParam
	stateCSIIntermediate
	stateCSIIgnore
	stateDCSEntry
	stateDCSParam
	stateDCSIntermediate
	stateDCSPassthrough
	stateDCSIgnore
	stateOSCString
	stateSOSPMAPCString
)

// Parser is a byte-oriented finite-state machine that decodes CSI, ESC,
// OSC, DCS and control-character sequences from a code-point stream and
// dispatches them to a Handler. It holds no reference to any screen or
// grid; all grid mutation happens inside the Handler's methods.
//
// Parser is re-entrant across Feed calls: a sequence split across two
// chunks resumes correctly, because all accumulated state (the current
// FSM state, collected parameters and intermediates, the OSC buffer)
// lives on the Parser rather than being scoped to one Feed call.
type Parser struct {
	state   pstate
	handler Handler

	params paramBuilder

	oscBuf strings.Builder

	// draw is the fast-path accumulator for runs of plain printable
	// text in stateGround; flushed to handler.Draw on any transition
	// out of stateGround and at the end of every Feed call.
	draw strings.Builder
}

// NewParser returns a Parser dispatching into h.
func NewParser(h Handler) *Parser {
	return &Parser{handler: h}
}

// Feed decodes buf as a stream of UTF-8 code points and runs each
// through the state machine, dispatching completed events to the
// handler in byte order. Invalid UTF-8 bytes decode as
// utf8.RuneError/1-byte advances, the standard Go replacement-rune
// behavior, and are processed like any other printable rune.
func (p *Parser) Feed(buf []byte) {
	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		buf = buf[size:]
		p.step(r)
	}
	p.flushDraw()
}

func (p *Parser) flushDraw() {
	if p.draw.Len() == 0 {
		return
	}
	text := p.draw.String()
	p.draw.Reset()
	p.handler.Draw(text)
}

// isC0 reports whether r is a C0 control or DEL: always acted on
// immediately regardless of state, except inside a string-collection
// state where only the terminators matter (handled by the caller).
func isC0(r rune) bool {
	return r <= 0x17 || r == 0x19 || (0x1C <= r && r <= 0x1F) || r == 0x7F
}

func isC1(r rune) bool {
	return (0x80 <= r && r <= 0x9F)
}

// step advances the machine by one code point. It mirrors the classic
// DEC ANSI parser table: a small set of "anywhere" transitions (ESC,
// CAN/SUB, ST, C1 string introducers) fire regardless of current state,
// then each state's own table applies.
func (p *Parser) step(r rune) {
	// CAN/SUB abort any sequence in progress, execute as a control
	// character, and return to ground -- matching the classic DEC ANSI
	// parser's "anywhere" transitions rather than silently dropping them.
	if r == 0x18 || r == 0x1A {
		p.exitCurrentState()
		p.execute(byte(r))
		p.state = stateGround
		p.params.reset()
		return
	}
	if r == 0x1B {
		p.exitCurrentState()
		p.state = stateEscape
		p.params.reset()
		return
	}
	if isC1(r) {
		p.stepC1(r)
		return
	}

	switch p.state {
	case stateGround:
		p.stepGround(r)
	case stateEscape:
		p.stepEscape(r)
	case stateEscapeIntermediate:
		p.stepEscapeIntermediate(r)
	case stateCSIEntry:
		p.stepCSIEntry(r)
	case stateCSIParam:
		p.stepCSIParam(r)
	case stateCSIIntermediate:
		p.stepCSIIntermediate(r)
	case stateCSIIgnore:
		p.stepCSIIgnore(r)
	case stateDCSEntry:
		p.stepDCSEntry(r)
	case stateDCSParam:
		p.stepDCSParam(r)
	case stateDCSIntermediate:
		p.stepDCSIntermediate(r)
	case stateDCSPassthrough:
		p.stepDCSPassthrough(r)
	case stateDCSIgnore:
		p.stepDCSIgnore(r)
	case stateOSCString:
		p.stepOSCString(r)
	case stateSOSPMAPCString:
		p.stepSOSPMAPCString(r)
	}
}

// exitCurrentState runs whatever cleanup leaving the active state
// requires before the machine transitions elsewhere: flush a pending
// draw run, or dispatch an OSC string that ESC/CAN/SUB interrupted
// without a proper ST. DCS and SOS/PM/APC payloads are discarded by
// design, so leaving them needs no action.
func (p *Parser) exitCurrentState() {
	switch p.state {
	case stateGround:
		p.flushDraw()
	case stateOSCString:
		data := p.oscBuf.String()
		p.oscBuf.Reset()
		p.handler.OSCDispatch([]byte(data))
	}
}

func (p *Parser) stepC1(r rune) {
	switch {
	case r == 0x9C: // ST
		p.finishString()
	case 0x80 <= r && r <= 0x8F, 0x91 <= r && r <= 0x97, r == 0x99, r == 0x9A:
		p.execute(byte(r))
	case r == 0x90: // DCS
		p.exitCurrentState()
		p.state = stateDCSEntry
		p.params.reset()
	case r == 0x9B: // CSI
		p.exitCurrentState()
		p.state = stateCSIEntry
		p.params.reset()
	case r == 0x9D: // OSC
		p.exitCurrentState()
		p.state = stateOSCString
		p.oscBuf.Reset()
	case r == 0x98, r == 0x9E, r == 0x9F: // SOS/PM/APC
		p.exitCurrentState()
		p.state = stateSOSPMAPCString
	}
}

func (p *Parser) execute(b byte) {
	p.handler.Execute(b)
}

func (p *Parser) stepGround(r rune) {
	if isC0(r) {
		p.flushDraw()
		p.execute(byte(r))
		return
	}
	p.draw.WriteRune(r)
}

func (p *Parser) stepEscape(r rune) {
	switch {
	case isC0(r):
		p.execute(byte(r))
	case 0x20 <= r && r <= 0x2F:
		p.params.collect(byte(r))
		p.state = stateEscapeIntermediate
	case r == 0x5B: // [
		p.state = stateCSIEntry
		p.params.reset()
	case r == 0x5D: // ]
		p.state = stateOSCString
		p.oscBuf.Reset()
	case r == 0x50: // P
		p.state = stateDCSEntry
		p.params.reset()
	case r == 0x58, r == 0x5E, r == 0x5F: // X, ^, _
		p.state = stateSOSPMAPCString
	case (0x30 <= r && r <= 0x4F) || (0x51 <= r && r <= 0x57) || r == 0x59 || r == 0x5A || r == 0x5C || (0x60 <= r && r <= 0x7E):
		p.dispatchEsc(byte(r))
		p.state = stateGround
	default:
		p.state = stateGround
	}
}

func (p *Parser) stepEscapeIntermediate(r rune) {
	switch {
	case isC0(r):
		p.execute(byte(r))
	case 0x20 <= r && r <= 0x2F:
		p.params.collect(byte(r))
	case 0x30 <= r && r <= 0x7E:
		p.dispatchEsc(byte(r))
		p.state = stateGround
	default:
		p.state = stateGround
	}
}

// dispatchEsc completes a non-CSI escape sequence. ESC ( / ) / * / +
// <final> designate a charset into G0-G3; everything else is a generic
// EscDispatch.
func (p *Parser) dispatchEsc(final byte) {
	inter := p.params.intermediates.String()
	if len(inter) == 1 {
		if slot, ok := designateSlot(inter[0]); ok {
			p.handler.DesignateCharset(slot, final)
			return
		}
	}
	p.handler.EscDispatch([]byte(inter), final)
}

func designateSlot(b byte) (int, bool) {
	switch b {
	case '(':
		return 0, true
	case ')':
		return 1, true
	case '*':
		return 2, true
	case '+':
		return 3, true
	default:
		return 0, false
	}
}

func (p *Parser) stepCSIEntry(r rune) {
	switch {
	case isC0(r):
		p.execute(byte(r))
	case 0x40 <= r && r <= 0x7E:
		p.dispatchCSI(byte(r))
		p.state = stateGround
	case (0x30 <= r && r <= 0x39) || r == 0x3B:
		p.params.addParamByte(byte(r))
		p.state = stateCSIParam
	case 0x3C <= r && r <= 0x3F:
		p.params.collect(byte(r))
		p.state = stateCSIParam
	case r == 0x3A:
		p.state = stateCSIIgnore
	case 0x20 <= r && r <= 0x2F:
		p.params.collect(byte(r))
		p.state = stateCSIIntermediate
	default:
	}
}

func (p *Parser) stepCSIParam(r rune) {
	switch {
	case isC0(r):
		p.execute(byte(r))
	case r == 0x3B || (0x30 <= r && r <= 0x39):
		p.params.addParamByte(byte(r))
	case r == 0x3A || (0x3C <= r && r <= 0x3F):
		p.state = stateCSIIgnore
	case 0x20 <= r && r <= 0x2F:
		p.params.collect(byte(r))
		p.state = stateCSIIntermediate
	case 0x40 <= r && r <= 0x7E:
		p.dispatchCSI(byte(r))
		p.state = stateGround
	default:
	}
}

func (p *Parser) stepCSIIntermediate(r rune) {
	switch {
	case isC0(r):
		p.execute(byte(r))
	case 0x20 <= r && r <= 0x2F:
		p.params.collect(byte(r))
	case 0x40 <= r && r <= 0x7E:
		p.dispatchCSI(byte(r))
		p.state = stateGround
	case 0x30 <= r && r <= 0x3F:
		p.state = stateCSIIgnore
	default:
	}
}

func (p *Parser) stepCSIIgnore(r rune) {
	switch {
	case isC0(r):
		p.execute(byte(r))
	case 0x40 <= r && r <= 0x7E:
		p.state = stateGround
	default:
	}
}

func (p *Parser) dispatchCSI(final byte) {
	p.handler.CSIDispatch(p.params.private, p.params.params(), []byte(p.params.intermediates.String()), final)
}

func (p *Parser) stepDCSEntry(r rune) {
	switch {
	case 0x20 <= r && r <= 0x2F:
		p.params.collect(byte(r))
		p.state = stateDCSIntermediate
	case r == 0x3A:
		p.state = stateDCSIgnore
	case r == 0x3B || (0x30 <= r && r <= 0x39):
		p.params.addParamByte(byte(r))
		p.state = stateDCSParam
	case 0x3C <= r && r <= 0x3F:
		p.params.collect(byte(r))
		p.state = stateDCSParam
	case 0x40 <= r && r <= 0x7E:
		p.state = stateDCSPassthrough
	default:
	}
}

func (p *Parser) stepDCSParam(r rune) {
	switch {
	case r == 0x3B || (0x30 <= r && r <= 0x39):
		p.params.addParamByte(byte(r))
	case r == 0x3A || (0x3C <= r && r <= 0x3F):
		p.state = stateDCSIgnore
	case 0x20 <= r && r <= 0x2F:
		p.params.collect(byte(r))
		p.state = stateDCSIntermediate
	case 0x40 <= r && r <= 0x7E:
		p.state = stateDCSPassthrough
	default:
	}
}

func (p *Parser) stepDCSIntermediate(r rune) {
	switch {
	case 0x20 <= r && r <= 0x2F:
		p.params.collect(byte(r))
	case 0x40 <= r && r <= 0x7E:
		p.state = stateDCSPassthrough
	case 0x30 <= r && r <= 0x3F:
		p.state = stateDCSIgnore
	default:
	}
}

// DCS payloads are consumed and discarded: nothing in the core screen
// model acts on a DCS (Sixel, ReGIS, and terminfo string capabilities
// are all explicitly out of scope), so passthrough just waits for ST,
// handled by stepC1/finishString (0x9C arrives as a C1 code, intercepted
// before reaching here).
func (p *Parser) stepDCSPassthrough(r rune) {}

func (p *Parser) stepDCSIgnore(r rune) {}

func (p *Parser) stepOSCString(r rune) {
	switch {
	// ESC ] R (palette reset) is a complete command on its own -- it
	// must dispatch immediately rather than wait for a ST that will
	// never come, or a host emitting it stalls the whole stream.
	case r == 'R' && p.oscBuf.Len() == 0:
		p.handler.OSCDispatch([]byte("R"))
		p.state = stateGround
	case 0x20 <= r && r <= 0x7F:
		p.oscBuf.WriteRune(r)
	case r == 0x07: // BEL, xterm's non-ANSI OSC terminator
		p.finishString()
	default:
	}
}

// SOS/PM/APC payloads are consumed and discarded; only ST ends one,
// handled by stepC1/finishString.
func (p *Parser) stepSOSPMAPCString(r rune) {}

// finishString ends whichever string-collection state is active: OSC
// dispatches its accumulated payload, DCS/SOS/PM/APC simply return to
// ground since their content is discarded by design.
func (p *Parser) finishString() {
	switch p.state {
	case stateOSCString:
		data := p.oscBuf.String()
		p.oscBuf.Reset()
		p.handler.OSCDispatch([]byte(data))
	case stateDCSPassthrough, stateDCSIgnore, stateSOSPMAPCString:
	}
	p.state = stateGround
}
