package natlog

/*
Helper utilities shared by the logger parts:
  - level and color mode validation, parsing and names
  - panic description for recovered sink panics
*/

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const _ERROR_UNKNOWN_PANIC_TEXT = "[no panic description]"

var (
	ErrLoggerInactive = errors.New("logger is not active")
	ErrUnknownLevel   = errors.New("unknown log level")
	ErrUnknownColor   = errors.New("unknown color mode")
	ErrEncoding       = errors.New(MESSAGE_ENCODING_ERROR)
)

// Generic byte range check helper.
func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// True if the level is one of LVL_ALL..LVL_NONE.
func (level LogLevel) IsValid() bool {
	return level < _LVL_MAX_for_checks_only
}

// String returns the level name (ALL, TRACE, ... NONE) or its decimal value
// for levels outside the scale.
func (level LogLevel) String() string {
	if level.IsValid() {
		return LevelNames[level]
	}
	return strconv.Itoa(int(level))
}

// ParseLevel accepts a level name (case-insensitive, WARN is an alias for
// WARNING) or a decimal value in 0..7.
func ParseLevel(s string) (LogLevel, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARN" {
		return LVL_WARNING, nil
	}
	for i, n := range LevelNames {
		if n == name {
			return LogLevel(i), nil
		}
	}
	if v, err := strconv.ParseUint(name, 10, 8); err == nil && LogLevel(v).IsValid() {
		return LogLevel(v), nil
	}
	return LVL_NONE, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Ensures a provided ColorMode is within the valid range
func normColor(mode ColorMode) ColorMode {
	return norm_byte(mode, _COLOR_MAX_for_checks_only, COLOR_AUTO)
}

func (mode ColorMode) String() string {
	return colorModeNames[normColor(mode)]
}

// ParseColorMode accepts "auto", "always" or "never" (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorModeNames {
		if n == name {
			return ColorMode(i), nil
		}
	}
	return COLOR_AUTO, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// Converts a panic value into a compact readable string (used when
// translating panics into fallback messages)
func panicDesc(panic any) (errtext string) {
	switch v := panic.(type) {
	case string:
		errtext = ": `" + v + "`"
	case error:
		errtext = ": (error) `" + v.Error() + "`"
	default:
		errtext = " " + _ERROR_UNKNOWN_PANIC_TEXT
	}
	return errtext
}
