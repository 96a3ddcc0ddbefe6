package natlog

// LogExternal is the entry point for messages coming from external libraries
// (see the trace package): the template originates outside the program, so
// it is formatted into a [DEFAULT_MSG_BUFF] buffer with runtime validation.
//
//   - If the template and arguments don't agree, a single LVL_WARNING
//     message about the encoding error is logged instead and the original
//     message is dropped.
//   - If the output doesn't fit (more than DEFAULT_MSG_BUFF-1 bytes), an
//     LVL_WARNING notice is logged first and then the truncated message at
//     its original level.
//
// Never fails, errors go to the fallback like for Log().
func (l *Logger) LogExternal(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		l.metrics.SuppressedCount.Inc()
		return
	}
	var buffer [DEFAULT_MSG_BUFF]byte
	view, truncated, err := FormatChecked(buffer[:], format, args...)
	if err != nil {
		l.metrics.EncodingErrorCount.Inc()
		l.Log(LVL_WARNING, MESSAGE_ENCODING_ERROR)
		return
	}
	if truncated {
		l.metrics.TruncatedCount.Inc()
		l.Log(LVL_WARNING, MESSAGE_TRUNCATED)
	}
	l.LogBytes(level, view)
}
