package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Prom struct {
	// Store
	StoreOpDuration  *prometheus.HistogramVec
	StoreErrorsTotal *prometheus.CounterVec
	SkippedLines     *prometheus.CounterVec

	// Service
	OpDuration *prometheus.HistogramVec
	OpResults  *prometheus.CounterVec

	// Auth
	LoginAttempts *prometheus.CounterVec
}

func NewProm(reg prometheus.Registerer) *Prom {
	p := &Prom{
		StoreOpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "eventdesk",
				Subsystem: "store",
				Name:      "op_duration_seconds",
				Help:      "Collection load/save latency by logical op.",
				Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"op", "status"},
		),
		StoreErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "eventdesk",
				Subsystem: "store",
				Name:      "errors_total",
				Help:      "Store errors by logical op and class.",
			},
			[]string{"op", "class"},
		),
		SkippedLines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "eventdesk",
				Subsystem: "store",
				Name:      "skipped_lines_total",
				Help:      "Lines skipped on load because they could not be decoded.",
			},
			[]string{"kind"},
		),

		OpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "eventdesk",
				Subsystem: "service",
				Name:      "op_duration_seconds",
				Help:      "Operation duration by name and result class.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2},
			},
			[]string{"op", "result"},
		),
		OpResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "eventdesk",
				Subsystem: "service",
				Name:      "results_total",
				Help:      "Operation outcomes by name and result class.",
			},
			[]string{"op", "result"}, // result=ok|validation|duplicate|capacity|not_found|io|forbidden|unknown
		),

		LoginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "eventdesk",
				Subsystem: "auth",
				Name:      "login_attempts_total",
				Help:      "Login attempts by result.",
			},
			[]string{"result"}, // result=ok|invalid|io
		),
	}
	reg.MustRegister(p.StoreOpDuration, p.StoreErrorsTotal, p.SkippedLines, p.OpDuration, p.OpResults, p.LoginAttempts)

	return p
}

// ObserveOp records one service operation outcome.
func (p *Prom) ObserveOp(op, result string, d time.Duration) {
	p.OpResults.WithLabelValues(op, result).Inc()
	p.OpDuration.WithLabelValues(op, result).Observe(d.Seconds())
}

// WriteTextfile dumps every metric gathered by g in the node_exporter
// textfile format. An empty path is a no-op.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, g)
}
