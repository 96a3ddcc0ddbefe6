package natlog

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	METRICS_NAMESPACE = "natlog"
	METRICS_SUBSYSTEM = "log"
)

// metrics groups various metrics counters for statistical reasons.
type metrics struct {
	FatalCount         prometheus.Counter
	ErrorCount         prometheus.Counter
	WarnCount          prometheus.Counter
	InfoCount          prometheus.Counter
	DebugCount         prometheus.Counter
	TraceCount         prometheus.Counter
	OtherCount         prometheus.Counter
	SuppressedCount    prometheus.Counter
	TruncatedCount     prometheus.Counter
	EncodingErrorCount prometheus.Counter
	WriteErrorCount    prometheus.Counter
}

// Counts a record written at the given level.
func (m *metrics) fire(level LogLevel) {
	switch level {
	case LVL_FATAL:
		m.FatalCount.Inc()
	case LVL_ERROR:
		m.ErrorCount.Inc()
	case LVL_WARNING:
		m.WarnCount.Inc()
	case LVL_INFO:
		m.InfoCount.Inc()
	case LVL_DEBUG:
		m.DebugCount.Inc()
	case LVL_TRACE:
		m.TraceCount.Inc()
	default:
		m.OtherCount.Inc()
	}
}

func newCounter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: METRICS_NAMESPACE,
		Subsystem: METRICS_SUBSYSTEM,
		Name:      name,
		Help:      help,
	})
}

// newMetrics returns pointer to a new metrics instance ready to use.
func newMetrics() *metrics {
	return &metrics{
		FatalCount:         newCounter("fatal_count", "Number of FATAL log records."),
		ErrorCount:         newCounter("error_count", "Number of ERROR log records."),
		WarnCount:          newCounter("warn_count", "Number of WARNING log records."),
		InfoCount:          newCounter("info_count", "Number of INFO log records."),
		DebugCount:         newCounter("debug_count", "Number of DEBUG log records."),
		TraceCount:         newCounter("trace_count", "Number of TRACE log records."),
		OtherCount:         newCounter("other_count", "Number of log records with a level outside the scale."),
		SuppressedCount:    newCounter("suppressed_count", "Number of messages below the minimal level."),
		TruncatedCount:     newCounter("truncated_count", "Number of messages truncated by formatting."),
		EncodingErrorCount: newCounter("encoding_error_count", "Number of dropped external messages with bad templates."),
		WriteErrorCount:    newCounter("write_error_count", "Number of records that failed to be written."),
	}
}

// Metrics returns the logger counters for registration in a prometheus
// registry. Counters are not registered anywhere by the logger itself, so
// register the collectors of one logger per registry only.
func (l *Logger) Metrics() []prometheus.Collector {
	m := l.metrics
	return []prometheus.Collector{
		m.FatalCount,
		m.ErrorCount,
		m.WarnCount,
		m.InfoCount,
		m.DebugCount,
		m.TraceCount,
		m.OtherCount,
		m.SuppressedCount,
		m.TruncatedCount,
		m.EncodingErrorCount,
		m.WriteErrorCount,
	}
}
