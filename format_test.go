package natlog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Templates that don't agree with their arguments. Kept in variables so that
// vet doesn't reject the test calls.
var (
	badTypeFormat  = "value %d"
	missingFormat  = "%s and %s"
	extraFormat    = "no verbs"
	noVerbFormat   = "trailing %"
	badWidthFormat = "%*d"
	symbolFormat   = "value %&"
)

type panicStringer struct{}

func (panicStringer) String() string { panic("stringer panic") }

func Test_Format(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		text      string
		want      string
		truncated bool
	}{
		{"empty_text", 8, "", "", false},
		{"fits", 8, "abc", "abc", false},
		{"fits_exactly", 8, "abcdefg", "abcdefg", false},
		{"one_over", 8, "abcdefgh", "abcdefg", true},
		{"far_over", 8, strings.Repeat("z", 100), "zzzzzzz", true},
		{"terminator_only", 1, "abc", "", true},
		{"terminator_only_empty", 1, "", "", false},
		{"default_size", DEFAULT_MSG_BUFF, strings.Repeat("q", 2*DEFAULT_MSG_BUFF), strings.Repeat("q", DEFAULT_MSG_BUFF-1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.size)
			for i := range buf {
				buf[i] = '#'
			}
			view, truncated := Format(buf, "%s", tt.text)
			assert.Equal(t, tt.want, string(view))
			assert.Equal(t, tt.truncated, truncated)
			assert.LessOrEqual(t, len(view), tt.size-1)
			assert.Zero(t, buf[len(view)], "no terminator after view")
			assert.Zero(t, buf[tt.size-1], "last byte is not a terminator")
			if len(view) > 0 {
				assert.Same(t, &buf[0], &view[0], "view doesn't point into buf")
			}
		})
	}
	t.Run("empty_buffer", func(t *testing.T) {
		view, truncated := Format(nil, "%s", "x")
		assert.Nil(t, view)
		assert.True(t, truncated)
		view, truncated = Format([]byte{}, "")
		assert.Nil(t, view)
		assert.False(t, truncated)
	})
	t.Run("larger_capacity_is_ignored", func(t *testing.T) {
		backing := make([]byte, 4, 64)
		view, truncated := Format(backing, "%s", "abcdef")
		assert.Equal(t, "abc", string(view))
		assert.True(t, truncated)
		assert.Equal(t, []byte{'a', 'b', 'c', 0}, backing)
	})
	t.Run("all_lengths", func(t *testing.T) {
		const n = 16
		for length := range 3 * n {
			buf := make([]byte, n)
			view, truncated := Format(buf, "%s", strings.Repeat("a", length))
			assert.Equal(t, min(length, n-1), len(view))
			assert.Equal(t, length > n-1, truncated)
		}
	})
}

func Test_FormatChecked(t *testing.T) {
	var buf [DEFAULT_MSG_BUFF]byte
	t.Run("valid", func(t *testing.T) {
		view, truncated, err := FormatChecked(buf[:], "%s has %d items (%v)", "cart", 3, []int{1, 2})
		assert.NoError(t, err)
		assert.False(t, truncated)
		assert.Equal(t, "cart has 3 items ([1 2])", string(view))
	})
	t.Run("literal_percent_bang", func(t *testing.T) {
		view, _, err := FormatChecked(buf[:], "100%%! done")
		assert.NoError(t, err)
		assert.Equal(t, "100%! done", string(view))
	})
	t.Run("truncated", func(t *testing.T) {
		view, truncated, err := FormatChecked(buf[:], "%s", strings.Repeat("t", DEFAULT_MSG_BUFF))
		assert.NoError(t, err)
		assert.True(t, truncated)
		assert.Len(t, view, DEFAULT_MSG_BUFF-1)
	})
	bad := []struct {
		name   string
		format string
		args   []any
	}{
		{"wrong_type", badTypeFormat, []any{"text"}},
		{"missing_arg", missingFormat, []any{"one"}},
		{"extra_arg", extraFormat, []any{1}},
		{"no_verb", noVerbFormat, nil},
		{"bad_width", badWidthFormat, []any{"w", 1}},
		{"symbol_verb", symbolFormat, []any{5}},
		{"stringer_panic", "%v", []any{panicStringer{}}},
		{"marker_past_buffer", strings.Repeat("p", DEFAULT_MSG_BUFF) + badTypeFormat, []any{"late"}},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			view, truncated, err := FormatChecked(buf[:], tt.format, tt.args...)
			assert.ErrorIs(t, err, ErrEncoding)
			assert.Nil(t, view)
			assert.False(t, truncated)
		})
	}
}

func Test_Sprintn(t *testing.T) {
	s, truncated := Sprintn(5, "%d-%d", 12, 34)
	assert.Equal(t, "12-3", s)
	assert.True(t, truncated)
	s, truncated = Sprintn(0, "%s", strings.Repeat("s", 600))
	assert.Len(t, s, DEFAULT_MSG_BUFF-1)
	assert.True(t, truncated)
	s, truncated = Sprintn(1000, "%s", strings.Repeat("s", 600))
	assert.Len(t, s, 600)
	assert.False(t, truncated)
}

func Test_Logger_LogExternal(t *testing.T) {
	t.Run("error_level", func(t *testing.T) {
		l, out, _ := newTestLogger()
		l.LogExternal(LVL_ERROR, "TEXTURE: [ID %d] failed", 7)
		assert.Equal(t, testStamp+"[ERROR] : TEXTURE: [ID 7] failed\n", out.String())
	})
	t.Run("encoding_error", func(t *testing.T) {
		l, out, _ := newTestLogger()
		l.LogExternal(LVL_ERROR, badTypeFormat, "text")
		assert.Equal(t, []string{testStamp + "[WARN] : " + MESSAGE_ENCODING_ERROR}, out.Lines())
	})
	t.Run("marker_in_argument", func(t *testing.T) {
		l, out, _ := newTestLogger()
		l.LogExternal(LVL_INFO, "%s", "user typed 100%!d( literally")
		assert.Equal(t, testStamp+"[INFO] : user typed 100%!d( literally\n", out.String())
	})
	t.Run("non_letter_verb", func(t *testing.T) {
		l, out, _ := newTestLogger()
		l.LogExternal(LVL_INFO, symbolFormat, 5)
		assert.Equal(t, []string{testStamp + "[WARN] : " + MESSAGE_ENCODING_ERROR}, out.Lines())
	})
	t.Run("truncated", func(t *testing.T) {
		l, out, _ := newTestLogger()
		long := strings.Repeat("L", DEFAULT_MSG_BUFF)
		l.LogExternal(LVL_DEBUG, "%s", long)
		assert.Equal(t, []string{
			testStamp + "[WARN] : " + MESSAGE_TRUNCATED,
			testStamp + "[DEBUG] : " + long[:DEFAULT_MSG_BUFF-1],
		}, out.Lines())
	})
	t.Run("exact_fit_is_not_truncated", func(t *testing.T) {
		l, out, _ := newTestLogger()
		fit := strings.Repeat("F", DEFAULT_MSG_BUFF-1)
		l.LogExternal(LVL_INFO, "%s", fit)
		assert.Equal(t, []string{testStamp + "[INFO] : " + fit}, out.Lines())
	})
	t.Run("gated_warnings", func(t *testing.T) {
		l, out, _ := newTestLogger()
		l.SetMinLevel(LVL_WARNING)
		l.LogExternal(LVL_ERROR, "%s", strings.Repeat("E", 600))
		l.LogExternal(LVL_FATAL, badTypeFormat, "text")
		assert.Equal(t, []string{testStamp + "[ERROR] : " + strings.Repeat("E", DEFAULT_MSG_BUFF-1)}, out.Lines())
		out.Clear()
		l.LogExternal(LVL_INFO, badTypeFormat, "text")
		assert.Empty(t, out.buffer, "suppressed message produced a warning")
	})
	t.Run("unknown_level", func(t *testing.T) {
		l, out, _ := newTestLogger()
		l.LogExternal(LogLevel(77), "odd %s", fmt.Sprint(77))
		assert.Equal(t, testStamp+TAG_UNIMPLEMENTED+"odd 77\n", out.String())
	})
}
