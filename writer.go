package natlog

import "bytes"

/*********************************************************************************
io.Writer interface implementation

LevelWriter lets the logger be used with fmt.Fprintf, the standard log
package and anything else that writes to an io.Writer:
 - Lvl(level) returns a writer bound to the level
 - Write(p) logs p (without one trailing newline) as a single record and
   returns len(p) on success, 0 and a non-nil error on failure.

This allows patterns like:
  fmt.Fprintf(logger.Lvl(LVL_WARNING), "disk low: %d%%", percent)
  log.New(logger.Lvl(LVL_INFO), "", 0)
*/

// LevelWriter is an io.Writer logging every write at a fixed level.
type LevelWriter struct {
	logger *Logger
	level  LogLevel
}

// Returns a writer that logs at the given level.
func (l *Logger) Lvl(level LogLevel) *LevelWriter {
	return &LevelWriter{logger: l, level: level}
}

// Level the writer logs at.
func (w *LevelWriter) Level() LogLevel {
	return w.level
}

// Write implements io.Writer. A nil or empty payload is a zero-length write
// with no error, messages below the minimal level are swallowed without error.
func (w *LevelWriter) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	err = w.logger.LogBytesE(w.level, bytes.TrimSuffix(p, []byte{'\n'}))
	if err == nil {
		n = len(p)
	}
	return
}
