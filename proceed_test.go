package natlog

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Logger_Log_Tags(t *testing.T) {
	tests := []struct {
		level LogLevel
		tag   string
	}{
		{LVL_ALL, "[WARN] : (Unimplemented log level used!) "},
		{LVL_TRACE, "[TRACE] : "},
		{LVL_DEBUG, "[DEBUG] : "},
		{LVL_INFO, "[INFO] : "},
		{LVL_WARNING, "[WARN] : "},
		{LVL_ERROR, "[ERROR] : "},
		{LVL_FATAL, "[FATAL] : "},
		{LVL_NONE, "[UNDEFINED NONELEVEL] : "},
		{_LVL_MAX_for_checks_only, "[WARN] : (Unimplemented log level used!) "},
		{LogLevel(99), "[WARN] : (Unimplemented log level used!) "},
		{LogLevel(255), "[WARN] : (Unimplemented log level used!) "},
	}
	l, out, ferr := newTestLogger()
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			out.Clear()
			assert.Equal(t, tt.tag, l.tagOf(tt.level))
			l.Log(tt.level, testlogstr)
			if tt.level == LVL_ALL {
				// never passes the gate
				assert.Empty(t, out.buffer)
			} else {
				assert.Equal(t, testStamp+tt.tag+testlogstr+"\n", out.String())
			}
		})
	}
	assert.Empty(t, ferr.buffer)
}

func Test_Logger_Log_Colors(t *testing.T) {
	l, out, _ := newTestLogger(WithColor(COLOR_ALWAYS))
	colors := map[LogLevel]string{
		LVL_TRACE:   "36",
		LVL_DEBUG:   "32",
		LVL_INFO:    "37",
		LVL_WARNING: "33",
		LVL_ERROR:   "31",
		LVL_FATAL:   "31",
		LVL_NONE:    "33",
	}
	for level, code := range colors {
		out.Clear()
		l.Log(level, "colored")
		line := out.String()
		assert.True(t, strings.HasPrefix(line, testStamp+"\x1b["), "no escape sequence after timestamp: %q", line)
		assert.Contains(t, line, code)
		assert.Contains(t, line, LevelTags[level])
		assert.True(t, strings.HasSuffix(line, "\x1b[0mcolored\n"), "tag style is not reset before text: %q", line)
	}
}

func Test_Logger_Log_Timestamp(t *testing.T) {
	clock := time.Date(2001, time.December, 31, 23, 59, 9, 999, time.Local)
	l, out, _ := newTestLogger(WithClock(func() time.Time { return clock }))
	l.Info("late")
	assert.Equal(t, "[23:59:09] [INFO] : late\n", out.String())
	out.Clear()
	clock = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.Local)
	l.Info("early")
	assert.Equal(t, "[00:00:00] [INFO] : early\n", out.String())
}

func Test_Logger_Log_SingleWrite(t *testing.T) {
	l, out, _ := newTestLogger()
	l.Log(LVL_ERROR, "one")
	l.LogBytes(LVL_DEBUG, []byte("two"))
	l.Log(LVL_INFO, "")
	assert.Equal(t, 3, out.writes, "every record has to be a single write")
	assert.Equal(t, []string{
		testStamp + "[ERROR] : one",
		testStamp + "[DEBUG] : two",
		testStamp + "[INFO] : ",
	}, out.Lines())
}

func Test_Logger_LogE_Errors(t *testing.T) {
	tests := []struct {
		name   string
		writer OutType
		want   string
	}{
		{"error_writer", &ErrorWriter{}, errorStr},
		{"panic_writer", &PanicWriter{}, "`" + panicStr + "`"},
		{"nil_panic_writer", &NilPanicWriter{}, "panic writing log to output"},
		{"zero_panic_writer", &ZeroPanicWriter{}, _ERROR_UNKNOWN_PANIC_TEXT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, ferr := newTestLogger(WithSink(tt.writer))
			err := l.LogE(LVL_ERROR, testlogstr)
			assert.ErrorContains(t, err, tt.want)
			assert.Empty(t, ferr.buffer, "LogE reported to fallback")
			assert.NotPanics(t, func() { l.Error(testlogstr) })
			assert.Contains(t, ferr.String(), tt.want)
			// the sink lock has to be released after a panic
			assert.Error(t, l.LogE(LVL_ERROR, "again"))
		})
	}
	t.Run("suppressed_is_not_an_error", func(t *testing.T) {
		l, _, _ := newTestLogger(WithSink(&ErrorWriter{}))
		l.SetMinLevel(LVL_ERROR)
		assert.NoError(t, l.LogE(LVL_ERROR, "suppressed"))
	})
	t.Run("panicking_fallback", func(t *testing.T) {
		l := New(WithSink(&ErrorWriter{}), WithFallback(&PanicWriter{}))
		assert.NotPanics(t, func() { l.Info("nowhere to go") })
		assert.NotPanics(t, func() { l.Info("still nowhere") })
	})
}

func Test_Logger_Logf(t *testing.T) {
	l, out, _ := newTestLogger()
	l.Logf(LVL_INFO, "%s=%d (%.1f%%)", "ratio", 3, 42.0)
	assert.Equal(t, testStamp+"[INFO] : ratio=3 (42.0%)\n", out.String())

	t.Run("truncated_to_default", func(t *testing.T) {
		out.Clear()
		long := strings.Repeat("0123456789", 100)
		l.Logf(LVL_INFO, "%s", long)
		assert.Equal(t, testStamp+"[INFO] : "+long[:DEFAULT_MSG_BUFF-1]+"\n", out.String())
	})
	t.Run("per_call_size", func(t *testing.T) {
		out.Clear()
		l.LogfN(LVL_INFO, 6, "%s", "abcdefgh")
		l.LogfN(LVL_INFO, 2*DEFAULT_MSG_BUFF, "%s", strings.Repeat("x", 700))
		l.LogfN(LVL_INFO, 0, "%s", strings.Repeat("y", 700))
		assert.Equal(t, []string{
			testStamp + "[INFO] : abcde",
			testStamp + "[INFO] : " + strings.Repeat("x", 700),
			testStamp + "[INFO] : " + strings.Repeat("y", DEFAULT_MSG_BUFF-1),
		}, out.Lines())
	})
	t.Run("logger_buffer_size", func(t *testing.T) {
		l, out, _ := newTestLogger(WithBufferSize(4))
		l.Infof("%d", 123456)
		assert.Equal(t, testStamp+"[INFO] : 123\n", out.String())
	})
	t.Run("helpers", func(t *testing.T) {
		out.Clear()
		l.Tracef("t%d", 1)
		l.Debugf("d%d", 2)
		l.Infof("i%d", 3)
		l.Warnf("w%d", 4)
		l.Errorf("e%d", 5)
		l.Fatalf("f%d", 6)
		l.Trace("t")
		l.Debug("d")
		l.Info("i")
		l.Warn("w")
		l.Error("e")
		l.Err(assert.AnError)
		l.Fatal("f")
		assert.Equal(t, []string{
			testStamp + "[TRACE] : t1",
			testStamp + "[DEBUG] : d2",
			testStamp + "[INFO] : i3",
			testStamp + "[WARN] : w4",
			testStamp + "[ERROR] : e5",
			testStamp + "[FATAL] : f6",
			testStamp + "[TRACE] : t",
			testStamp + "[DEBUG] : d",
			testStamp + "[INFO] : i",
			testStamp + "[WARN] : w",
			testStamp + "[ERROR] : e",
			testStamp + "[ERROR] : " + assert.AnError.Error(),
			testStamp + "[FATAL] : f",
		}, out.Lines())
	})
	t.Run("nil_error", func(t *testing.T) {
		out.Clear()
		assert.NotPanics(t, func() { l.Err(nil) })
		var typed *errStringer
		assert.NotPanics(t, func() { l.Err(typed) })
		assert.Equal(t, []string{
			testStamp + "[ERROR] : <nil>",
			testStamp + "[ERROR] : <nil>",
		}, out.Lines())
	})
}

func Test_buildRecord(t *testing.T) {
	outBuffer := bytes.NewBuffer(make([]byte, DEFAULT_OUT_BUFF))
	assert.Equal(t, testStamp+"<tag>"+testlogstr+"\n",
		buildRecord(outBuffer, testTime, "<tag>", []byte(testlogstr)).String())
	assert.Equal(t, testStamp+"\n", buildRecord(outBuffer, testTime, "", nil).String(), "buffer not reset")
}
