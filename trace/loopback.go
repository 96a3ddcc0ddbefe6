package trace

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Loopback is an in-process Library behaving like raylib's TraceLog: a
// message is dropped when its code is below the trace-log level, goes to the
// registered callback when there is one and to its own output otherwise.
// Useful to route code written against the trace-log API through natlog and
// to exercise adapters.
type Loopback struct {
	mtx      sync.RWMutex
	callback Callback
	output   io.Writer
	level    int
}

// NewLoopback creates a library with the raylib default level (LOG_INFO)
// writing to [os.Stderr] while no callback is registered.
func NewLoopback() *Loopback {
	return &Loopback{output: os.Stderr, level: LOG_INFO}
}

func (lb *Loopback) SetTraceLogCallback(cb Callback) {
	lb.mtx.Lock()
	defer lb.mtx.Unlock()
	lb.callback = cb
}

func (lb *Loopback) SetTraceLogLevel(level int) {
	lb.mtx.Lock()
	defer lb.mtx.Unlock()
	lb.level = level
}

// Sets where messages go while no callback is registered. Nil discards them.
func (lb *Loopback) SetOutput(w io.Writer) {
	lb.mtx.Lock()
	defer lb.mtx.Unlock()
	if w == nil {
		w = io.Discard
	}
	lb.output = w
}

func (lb *Loopback) TraceLogLevel() int {
	lb.mtx.RLock()
	defer lb.mtx.RUnlock()
	return lb.level
}

// TraceLog emits a library message.
func (lb *Loopback) TraceLog(code int, format string, args ...any) {
	lb.mtx.RLock()
	cb, out, level := lb.callback, lb.output, lb.level
	lb.mtx.RUnlock()
	if code < level {
		return
	}
	if cb != nil {
		cb(code, format, args...)
		return
	}
	fmt.Fprintf(out, format+"\n", args...)
}
