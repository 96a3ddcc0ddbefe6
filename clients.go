package natlog

/*
Convenience level-specific helpers for common log levels, both on a Logger
and on the process default installed by Init. They are thin wrappers around
Log/Logf and never return errors: failures go to the logger fallback.

The package-level functions silently do nothing before Init (or after the
default logger is stopped).
*/

import "fmt"

// Logs a message at TRACE level.
func (l *Logger) Trace(s string) { l.Log(LVL_TRACE, s) }

// Logs a message at DEBUG level.
func (l *Logger) Debug(s string) { l.Log(LVL_DEBUG, s) }

// Logs a message at INFO level.
func (l *Logger) Info(s string) { l.Log(LVL_INFO, s) }

// Logs a message at WARNING level.
func (l *Logger) Warn(s string) { l.Log(LVL_WARNING, s) }

// Logs a message at ERROR level.
func (l *Logger) Error(s string) { l.Log(LVL_ERROR, s) }

// Logs an error value at ERROR level, semantically equivalent to
//
//	Error(err.Error())
//
// A nil error is logged as "<nil>", a panicking Error method as fmt reports it.
func (l *Logger) Err(e error) { l.Log(LVL_ERROR, fmt.Sprint(e)) }

// Logs a message at FATAL level. Only logs, the program is not terminated.
func (l *Logger) Fatal(s string) { l.Log(LVL_FATAL, s) }

func (l *Logger) Tracef(format string, args ...any) { l.Logf(LVL_TRACE, format, args...) }
func (l *Logger) Debugf(format string, args ...any) { l.Logf(LVL_DEBUG, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.Logf(LVL_INFO, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.Logf(LVL_WARNING, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.Logf(LVL_ERROR, format, args...) }
func (l *Logger) Fatalf(format string, args ...any) { l.Logf(LVL_FATAL, format, args...) }

/////////////////////////////////////////////////////////////////////////////////////////

// Sets the minimal level of the default logger.
func SetMinLevel(minlevel LogLevel) {
	if l := std.Load(); l != nil {
		l.SetMinLevel(minlevel)
	}
}

// Logs a message with the default logger.
func Log(level LogLevel, s string) {
	if l := std.Load(); l != nil {
		l.Log(level, s)
	}
}

// Formats and logs a message with the default logger.
func Logf(level LogLevel, format string, args ...any) {
	if l := std.Load(); l != nil {
		l.Logf(level, format, args...)
	}
}

func Trace(s string) { Log(LVL_TRACE, s) }
func Debug(s string) { Log(LVL_DEBUG, s) }
func Info(s string)  { Log(LVL_INFO, s) }
func Warn(s string)  { Log(LVL_WARNING, s) }
func Error(s string) { Log(LVL_ERROR, s) }
func Fatal(s string) { Log(LVL_FATAL, s) }

func Tracef(format string, args ...any) { Logf(LVL_TRACE, format, args...) }
func Debugf(format string, args ...any) { Logf(LVL_DEBUG, format, args...) }
func Infof(format string, args ...any)  { Logf(LVL_INFO, format, args...) }
func Warnf(format string, args ...any)  { Logf(LVL_WARNING, format, args...) }
func Errorf(format string, args ...any) { Logf(LVL_ERROR, format, args...) }
func Fatalf(format string, args ...any) { Logf(LVL_FATAL, format, args...) }
