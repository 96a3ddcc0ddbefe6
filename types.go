package natlog

/*
Defines the core data types used by the logger:
  - basetype and a small set of typed aliases for clarity
  - Logger: the context object holding the level gate, the output sink lock,
    the sink itself, the fallback writer and attached adapters
  - Adapter: the seam used by external libraries that log through natlog
  - options: construction settings filled by Option functions

Also defines package-wide constants, enums and the per-level tag and color maps.
*/

import (
	"bytes"
	"io"
	"sync"
	"time"

	"go.uber.org/atomic"
)

type basetype byte // basetype is the underlying byte-sized representation used for enums

type LogLevel basetype  // Severity levels (alias for byte)
type ColorMode basetype // Tag coloring policy

type OutType io.Writer // Logger sink and fallback (alias for io.Writer)

// Logger is the process-wide logging context. Create it with New or Init;
// the zero value is not usable.
type Logger struct {
	sync struct {
		sinkMtx sync.Mutex   // output sink lock: timestamp, tag, text and newline go out as one unit
		fbckMtx sync.Mutex   // guards fallback writer, writes to it are serialized
		adptMtx sync.Mutex   // guards attached adapters and level changes
	}
	sink     OutType
	fallbck  OutType
	recbuf   *bytes.Buffer // record buffer, used only under sinkMtx
	tags     LevelMap      // rendered (styled) tags, one per level
	adapters []Adapter
	now      func() time.Time
	metrics  *metrics
	bufsize  int
	level    atomic.Uint32 // minimal level, a message passes iff its level is strictly greater
	active   atomic.Bool
}

// Adapter connects an external logging source to a Logger. Attach is called
// once when the logger is created, SetMinLevel every time the logger's minimal
// level changes (including once right after Attach) and Detach on Stop.
type Adapter interface {
	Attach(l *Logger)
	SetMinLevel(level LogLevel)
	Detach()
}

// Option modifies logger construction settings.
type Option func(*options)

type options struct {
	sink     OutType
	fallback OutType
	clock    func() time.Time
	adapters []Adapter
	color    ColorMode
	bufsize  int
}

// LevelMap is a fixed-size array with one entry per log level. Used for
// level tags and colors.
type LevelMap [_LVL_MAX_for_checks_only]string

/////////////////////////////////////////////////////////////////////////////////////////

const (
	// Severity values. They must match the external trace-log scale value for
	// value: adapters convert foreign codes by numeric identity. LVL_ALL and
	// LVL_NONE are sentinels for the minimal level, not message levels.
	LVL_ALL LogLevel = iota
	LVL_TRACE
	LVL_DEBUG
	LVL_INFO
	LVL_WARNING
	LVL_ERROR
	LVL_FATAL
	LVL_NONE
	_LVL_MAX_for_checks_only
)

const (
	COLOR_AUTO   ColorMode = iota // styled only when the sink is a color terminal
	COLOR_ALWAYS                  // always emit ANSI sequences
	COLOR_NEVER                   // plain tags
	_COLOR_MAX_for_checks_only
)

const (
	DEFAULT_MSG_BUFF   = 512 // default capacity of the formatting buffer (including terminator)
	DEFAULT_OUT_BUFF   = 256 // initial capacity of the record buffer
	DEFAULT_TIME_STAMP = "[15:04:05] "
	TAG_UNIMPLEMENTED  = "[WARN] : (Unimplemented log level used!) "
)

const (
	// Fixed texts of the messages the logger emits on its own behalf.
	MESSAGE_ENCODING_ERROR = "encoding error occurred when trying to print string"
	MESSAGE_TRUNCATED      = "Failed to completely print the following message:"
)

/////////////////////////////////////////////////////////////////////////////////////////

// Tag printed before the message text, per level
var LevelTags = &LevelMap{
	TAG_UNIMPLEMENTED,          //LVL_ALL
	"[TRACE] : ",               //LVL_TRACE
	"[DEBUG] : ",               //LVL_DEBUG
	"[INFO] : ",                //LVL_INFO
	"[WARN] : ",                //LVL_WARNING
	"[ERROR] : ",               //LVL_ERROR
	"[FATAL] : ",               //LVL_FATAL
	"[UNDEFINED NONELEVEL] : ", //LVL_NONE
}

// Tag foreground colors (ANSI color indexes for lipgloss), per level
var LevelColors = &LevelMap{
	"3", //LVL_ALL (yellow)
	"6", //LVL_TRACE (cyan)
	"2", //LVL_DEBUG (green)
	"7", //LVL_INFO (white)
	"3", //LVL_WARNING (yellow)
	"1", //LVL_ERROR (red)
	"1", //LVL_FATAL (red)
	"3", //LVL_NONE (yellow)
}

// Level names for String() and ParseLevel()
var LevelNames = &LevelMap{
	"ALL",
	"TRACE",
	"DEBUG",
	"INFO",
	"WARNING",
	"ERROR",
	"FATAL",
	"NONE",
}

var colorModeNames = [_COLOR_MAX_for_checks_only]string{
	"auto",
	"always",
	"never",
}
