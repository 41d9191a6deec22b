package vt

// Handler is the capability set the parser dispatches into: one method
// per kind of event a byte stream can produce. A Screen implements this
// directly; the table is bound once at Parser construction, not looked
// up per byte, per the source's "bind by name at setup" design carried
// forward as a static interface instead of a runtime table.
type Handler interface {
	// Draw is the hot path: the longest run of printable code points up
	// to the next control/escape byte, delivered as one call.
	Draw(text string)

	// Execute handles a single C0 control or DEL (BS, HT, LF, CR, BEL, ...).
	Execute(b byte)

	// EscDispatch handles a non-CSI escape sequence: ESC followed by
	// zero or more intermediate bytes (0x20-0x2F) and a final byte.
	EscDispatch(intermediates []byte, final byte)

	// CSIDispatch handles CSI Ps ; Ps ... final. private is the leading
	// ?/</=/> marker byte, or 0 if none was present. params is already
	// split and parsed by paramBuilder.params, with omitted or invalid
	// fields reported as 0.
	CSIDispatch(private byte, params []int, intermediates []byte, final byte)

	// OSCDispatch handles a complete OSC payload (the bytes between
	// "ESC ]" and the terminating ST/BEL), excluding the terminator.
	OSCDispatch(data []byte)

	// DesignateCharset handles ESC ( / ) / * / + <final>: slot is
	// 0-3 for G0-G3, final is the table-selecting byte.
	DesignateCharset(slot int, final byte)
}
