// Package trace plugs natlog in as the trace-log callback of an external
// library with a raylib-style logging hook: the library calls a single
// registered callback with a native severity code, a printf template and its
// arguments, and has its own minimal level setter.
//
// The native codes match natlog levels value for value, so the adapter
// converts them by numeric identity.
package trace

import (
	"math"

	"github.com/abyssdigger/natlog"
	"go.uber.org/atomic"
)

// Native severity codes of the trace-log scale (raylib TraceLogLevel).
const (
	LOG_ALL = iota
	LOG_TRACE
	LOG_DEBUG
	LOG_INFO
	LOG_WARNING
	LOG_ERROR
	LOG_FATAL
	LOG_NONE
)

// Callback is the shape of the library's trace-log hook.
type Callback func(code int, format string, args ...any)

// Library is the narrow part of an external library the adapter needs.
// SetTraceLogCallback(nil) must restore the library's own default logging.
type Library interface {
	SetTraceLogCallback(cb Callback)
	SetTraceLogLevel(level int)
}

// Adapter implements natlog.Adapter for a Library. Use it with
//
//	natlog.Init(natlog.WithAdapter(trace.New(lib)))
type Adapter struct {
	lib    Library
	logger atomic.Pointer[natlog.Logger]
}

var _ natlog.Adapter = (*Adapter)(nil)

func New(lib Library) *Adapter {
	return &Adapter{lib: lib}
}

// Registers the adapter callback as the library's sole trace-log sink.
func (a *Adapter) Attach(l *natlog.Logger) {
	a.logger.Store(l)
	a.lib.SetTraceLogCallback(a.Callback)
}

// Keeps the library's minimal level in sync with the logger.
func (a *Adapter) SetMinLevel(level natlog.LogLevel) {
	a.lib.SetTraceLogLevel(int(level))
}

// Gives the library its default logging back.
func (a *Adapter) Detach() {
	a.lib.SetTraceLogCallback(nil)
	a.logger.Store(nil)
}

// Callback receives library messages. Calls made while detached are dropped.
func (a *Adapter) Callback(code int, format string, args ...any) {
	if l := a.logger.Load(); l != nil {
		l.LogExternal(LevelOf(code), format, args...)
	}
}

// LevelOf converts a native code by numeric identity. Codes that don't fit a
// level byte become math.MaxUint8, which is printed with the "unimplemented
// level" tag like any other value outside the scale.
func LevelOf(code int) natlog.LogLevel {
	if code < 0 || code > math.MaxUint8 {
		return natlog.LogLevel(math.MaxUint8)
	}
	return natlog.LogLevel(code)
}
