package natlog

import "fmt"

// Format renders format and args into buf and returns the valid part of buf.
// Output longer than len(buf)-1 bytes is truncated (truncated is true in
// that case); the byte after the view and the last byte of buf are always 0,
// so the view never exceeds len(buf)-1 bytes. An empty buf yields a nil view.
//
// Format never touches the logger and can be used on its own.
func Format(buf []byte, format string, args ...any) (view []byte, truncated bool) {
	view, full := formatBounded(buf, format, args...)
	return view, len(full) > len(view)
}

// FormatChecked is Format with runtime validation of the format string
// against the arguments, for templates that come from outside the program's
// own (vet-checked) call sites. Returns an error wrapping ErrEncoding and a
// nil view, leaving buf untouched, if fmt would render any bad verb, wrong
// type, missing or extra argument, bad width or index, or panicking method.
func FormatChecked(buf []byte, format string, args ...any) (view []byte, truncated bool, err error) {
	if err := checkTemplate(format, args); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	view, full := formatBounded(buf, format, args...)
	return view, len(full) > len(view), nil
}

// Sprintn formats with a buffer of the given capacity (DEFAULT_MSG_BUFF for
// size <= 0) and returns the result as a string.
func Sprintn(size int, format string, args ...any) (string, bool) {
	var stack [DEFAULT_MSG_BUFF]byte
	view, truncated := Format(msgBuffer(stack[:], size), format, args...)
	return string(view), truncated
}

// Picks a formatting buffer of the requested size: the provided stack array
// when it is big enough, a fresh slice otherwise.
func msgBuffer(stack []byte, size int) []byte {
	if size <= 0 {
		size = DEFAULT_MSG_BUFF
	}
	if size <= len(stack) {
		return stack[:size]
	}
	return make([]byte, size)
}

// Renders into buf and returns both the bounded view over buf and the full
// rendered output (which is buf itself when it fit).
func formatBounded(buf []byte, format string, args ...any) (view, full []byte) {
	full = fmt.Appendf(buf[:0:len(buf)], format, args...)
	if len(buf) == 0 {
		return nil, full
	}
	limit := len(buf) - 1
	n := min(len(full), limit)
	if len(full) > len(buf) {
		// fmt reallocated, buf holds nothing yet
		copy(buf, full[:n])
	}
	buf[n] = 0
	buf[limit] = 0
	return buf[:n], full
}
