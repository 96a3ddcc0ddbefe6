// A minimal levelled console logging package for Go. Prints a timestamp, a
// bold colored severity tag and the message text as one uninterrupted line,
// and can serve as the trace-log sink of external libraries via adapters.
package natlog

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/atomic"
)

// Process default logger installed by Init.
var std atomic.Pointer[Logger]

// Sets the sink every record is written to ([os.Stdout] by default).
// Nil is ignored.
func WithSink(w OutType) Option {
	return func(o *options) {
		if w != nil {
			o.sink = w
		}
	}
}

// Sets the writer used to report internal errors (failed or panicked sink
// writes). [os.Stderr] by default, nil silently drops such reports.
func WithFallback(w OutType) Option {
	return func(o *options) { o.fallback = w }
}

// Sets how severity tags are colored.
func WithColor(mode ColorMode) Option {
	return func(o *options) { o.color = normColor(mode) }
}

// Sets the clock used for record timestamps. Local time is printed, so the
// clock result is converted with time.Time.Local().
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// Sets the default formatting buffer capacity for Logf and level ...f
// helpers. Values below 1 leave [DEFAULT_MSG_BUFF].
func WithBufferSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.bufsize = size
		}
	}
}

// Attaches adapters of external logging sources. Nil adapters are ignored.
func WithAdapter(adapters ...Adapter) Option {
	return func(o *options) {
		for _, a := range adapters {
			if a != nil {
				o.adapters = append(o.adapters, a)
			}
		}
	}
}

// New creates an initialized logger: minimal level is LVL_ALL (show
// everything) and every adapter provided with WithAdapter is attached and
// synchronized with that level.
func New(opts ...Option) *Logger {
	o := &options{
		sink:     os.Stdout,
		fallback: os.Stderr,
		clock:    time.Now,
		color:    COLOR_AUTO,
		bufsize:  DEFAULT_MSG_BUFF,
	}
	for _, opt := range opts {
		opt(o)
	}
	l := new(Logger)
	l.sink = o.sink
	l.now = o.clock
	l.bufsize = o.bufsize
	l.recbuf = bytes.NewBuffer(make([]byte, 0, DEFAULT_OUT_BUFF))
	l.metrics = newMetrics()
	l.SetFallback(o.fallback)
	l.renderTags(o.color)
	l.level.Store(uint32(LVL_ALL))
	l.active.Store(true)
	for _, a := range o.adapters {
		l.attach(a)
	}
	return l
}

// Init creates a logger with New and installs it as the process default used
// by the package-level functions. A previously installed default is stopped.
//
// Preferred usage example:
//
//	func main() {
//	    logger := natlog.Init()
//	    defer logger.Stop()
//	    ...
//	}
func Init(opts ...Option) *Logger {
	l := New(opts...)
	if prev := std.Swap(l); prev != nil {
		prev.Stop()
	}
	return l
}

// Default returns the logger installed by Init or nil before Init.
func Default() *Logger {
	return std.Load()
}

// Sets the minimal level: only messages with a strictly greater level are
// printed, so LVL_ALL prints everything and LVL_NONE prints nothing. The new
// level is forwarded to every attached adapter.
//
// Log calls read the level lock-free and observe either the old or the new
// one. Concurrent setters are serialized, so adapters always end up with the
// level the logger keeps.
func (l *Logger) SetMinLevel(minlevel LogLevel) *Logger {
	l.sync.adptMtx.Lock()
	defer l.sync.adptMtx.Unlock()
	l.level.Store(uint32(minlevel))
	for _, a := range l.adapters {
		a.SetMinLevel(minlevel)
	}
	return l
}

// Current minimal level.
func (l *Logger) MinLevel() LogLevel {
	return LogLevel(l.level.Load())
}

// True if a message with the given level passes the minimal level gate.
func (l *Logger) Enabled(level LogLevel) bool {
	return uint32(level) > l.level.Load()
}

// Sets the fallback output used to report internal errors, io.Discard is used
// instead of nil to silently drop fallback messages.
func (l *Logger) SetFallback(f OutType) *Logger {
	l.sync.fbckMtx.Lock()
	defer l.sync.fbckMtx.Unlock()
	if f != nil {
		l.fallbck = f
	} else {
		l.fallbck = io.Discard
	}
	return l
}

// True if the logger is not stopped.
func (l *Logger) IsActive() bool {
	return l.active.Load()
}

// Stop detaches all adapters (external libraries lose their callback) and
// makes further log calls no-ops that report ErrLoggerInactive. If the logger
// is the process default it is uninstalled. Stopping twice is harmless.
func (l *Logger) Stop() {
	if !l.active.CompareAndSwap(true, false) {
		return
	}
	std.CompareAndSwap(l, nil)
	l.sync.adptMtx.Lock()
	defer l.sync.adptMtx.Unlock()
	for _, a := range l.adapters {
		a.Detach()
	}
	l.adapters = nil
}

func (l *Logger) attach(a Adapter) {
	l.sync.adptMtx.Lock()
	defer l.sync.adptMtx.Unlock()
	a.Attach(l)
	a.SetMinLevel(l.MinLevel())
	l.adapters = append(l.adapters, a)
}

// Renders the styled tag of every level once, with the color profile
// requested by mode.
func (l *Logger) renderTags(mode ColorMode) {
	r := lipgloss.NewRenderer(l.sink)
	switch mode {
	case COLOR_ALWAYS:
		r.SetColorProfile(termenv.ANSI)
	case COLOR_NEVER:
		r.SetColorProfile(termenv.Ascii)
	}
	for i, tag := range LevelTags {
		style := r.NewStyle().Bold(true).Foreground(lipgloss.Color(LevelColors[i]))
		l.tags[i] = style.Render(tag)
	}
}

// Styled tag for a level, the "unimplemented" tag for LVL_ALL and anything
// outside the scale.
func (l *Logger) tagOf(level LogLevel) string {
	return l.tags[norm_byte(level, _LVL_MAX_for_checks_only, LVL_ALL)]
}
