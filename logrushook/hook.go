// Package logrushook routes logrus entries through a natlog logger, so code
// and libraries logging with logrus end up on the same console with the same
// tags and the same minimal level.
package logrushook

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/abyssdigger/natlog"
	"github.com/sirupsen/logrus"
)

// Hook is a logrus.Hook forwarding every entry to a natlog logger.
type Hook struct {
	logger *natlog.Logger
}

var _ logrus.Hook = (*Hook)(nil)

func New(l *natlog.Logger) *Hook {
	return &Hook{logger: l}
}

// Route makes lr log through l only: the hook is added, logrus' own output is
// discarded and its level opened up so natlog's minimal level decides.
func Route(lr *logrus.Logger, l *natlog.Logger) *Hook {
	h := New(l)
	lr.SetOutput(io.Discard)
	lr.SetLevel(logrus.TraceLevel)
	lr.AddHook(h)
	return h
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook. Delivery problems go to the natlog fallback,
// logrus never sees an error.
func (h *Hook) Fire(entry *logrus.Entry) error {
	h.logger.Log(LevelOf(entry.Level), render(entry))
	return nil
}

// LevelOf maps logrus levels onto the natlog scale. The two scales run in
// opposite directions, so unlike trace codes they are translated explicitly.
func LevelOf(level logrus.Level) natlog.LogLevel {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return natlog.LVL_FATAL
	case logrus.ErrorLevel:
		return natlog.LVL_ERROR
	case logrus.WarnLevel:
		return natlog.LVL_WARNING
	case logrus.InfoLevel:
		return natlog.LVL_INFO
	case logrus.DebugLevel:
		return natlog.LVL_DEBUG
	case logrus.TraceLevel:
		return natlog.LVL_TRACE
	}
	return natlog.LVL_NONE
}

// Message followed by the entry fields as key=value pairs sorted by key.
func render(entry *logrus.Entry) string {
	if len(entry.Data) == 0 {
		return entry.Message
	}
	var sb strings.Builder
	sb.WriteString(entry.Message)
	for _, k := range slices.Sorted(maps.Keys(entry.Data)) {
		fmt.Fprintf(&sb, " %s=%v", k, entry.Data[k])
	}
	return sb.String()
}
