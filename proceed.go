package natlog

/*
Emitter: turns a level and a ready message into one record on the sink.

For every message passing the level gate the output sink lock is taken, the
record "[HH:MM:SS] <styled tag><text>\n" is built in the record buffer and
written with a single Write, so records of concurrent callers never
interleave. Write errors and panics raised by the sink are collected and
returned by the ...E variants; the plain variants hand them to the fallback
writer, so no error or panic ever reaches the caller.
*/

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// LogE writes a message at the provided level and returns any error
// encountered while writing it to the sink. A message that doesn't pass the
// level gate is ignored without error.
//
// If no special error processing needed use
//
//	Log()
//
// instead.
func (l *Logger) LogE(level LogLevel, s string) error {
	return l.LogBytesE(level, []byte(s))
}

// Same as LogE() but for a raw byte payload.
func (l *Logger) LogBytesE(level LogLevel, data []byte) error {
	if !l.Enabled(level) {
		l.metrics.SuppressedCount.Inc()
		return nil
	}
	if !l.IsActive() {
		return ErrLoggerInactive
	}
	return l.emit(level, data)
}

// Writes a message at the provided level. Never fails: any error encountered
// while writing is reported to the logger fallback.
//
// Use
//
//	LogE()
//
// when callers need to react to delivery problems.
func (l *Logger) Log(level LogLevel, s string) {
	l.LogBytes(level, []byte(s))
}

// Same as Log() but for a raw byte payload.
func (l *Logger) LogBytes(level LogLevel, data []byte) {
	if err := l.LogBytesE(level, data); err != nil {
		l.handleLogWriteError(err.Error())
	}
}

// Formats the message with a buffer of the logger's default capacity
// ([DEFAULT_MSG_BUFF] unless changed by WithBufferSize) and logs it. Output
// longer than the buffer is silently truncated.
func (l *Logger) Logf(level LogLevel, format string, args ...any) {
	l.LogfN(level, l.bufsize, format, args...)
}

// Same as Logf() with a per-call formatting buffer capacity (size <= 0 means
// [DEFAULT_MSG_BUFF]). Formatting is skipped for messages below the minimal level.
func (l *Logger) LogfN(level LogLevel, size int, format string, args ...any) {
	if !l.Enabled(level) {
		l.metrics.SuppressedCount.Inc()
		return
	}
	var stack [DEFAULT_MSG_BUFF]byte
	view, truncated := Format(msgBuffer(stack[:], size), format, args...)
	if truncated {
		l.metrics.TruncatedCount.Inc()
	}
	l.LogBytes(level, view)
}

// Builds and writes one record under the sink lock. The sink panic is
// recovered and converted to an error like write errors are.
func (l *Logger) emit(level LogLevel, data []byte) (err error) {
	var merr *multierror.Error
	l.sync.sinkMtx.Lock()
	defer func() {
		if r := recover(); r != nil {
			merr = multierror.Append(merr, errors.New("panic writing log to output"+panicDesc(r)))
		}
		l.sync.sinkMtx.Unlock()
		if merr != nil {
			l.metrics.WriteErrorCount.Inc()
		} else {
			l.metrics.fire(level)
		}
		err = merr.ErrorOrNil()
	}()
	buildRecord(l.recbuf, l.now().Local(), l.tagOf(level), data)
	n, e := l.recbuf.WriteTo(l.sink)
	if e != nil {
		merr = multierror.Append(merr, fmt.Errorf("log %s: failed to write message (%d bytes written): %w", level, n, e))
	}
	return nil
}

// handleLogWriteError writes a human-readable error message to the fallback
// writer. A fallback that panics is ignored, there is nowhere left to report.
func (l *Logger) handleLogWriteError(errormsg string) {
	l.sync.fbckMtx.Lock()
	defer func() {
		recover()
		l.sync.fbckMtx.Unlock()
	}()
	l.fallbck.Write([]byte(errormsg + "\n"))
}

// buildRecord constructs the textual representation of a record:
// timestamp, already styled tag, text and line terminator. The buffer is
// reset first.
func buildRecord(outBuffer *bytes.Buffer, t time.Time, tag string, text []byte) *bytes.Buffer {
	outBuffer.Reset()
	outBuffer.Write(t.AppendFormat(outBuffer.AvailableBuffer(), DEFAULT_TIME_STAMP))
	outBuffer.WriteString(tag)
	outBuffer.Write(text)
	outBuffer.WriteByte('\n')
	return outBuffer
}
