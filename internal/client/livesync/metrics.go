package livesync

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/iudanet/fieldsync/internal/crdt"
)

// Значения метки result у fieldsync_sync_cycles_total
const (
	resultSuccess = "success"
	resultPartial = "partial"
	resultFailure = "failure"
	resultSkipped = "skipped"
)

// Metrics метрики планировщика. Нулевой *Metrics ничего не записывает.
type Metrics struct {
	cycles      *prometheus.CounterVec
	failures    prometheus.Gauge
	lastSuccess prometheus.Gauge
	merged      *prometheus.CounterVec
}

// NewMetrics создает и регистрирует метрики в reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fieldsync",
			Subsystem: "sync",
			Name:      "cycles_total",
			Help:      "Number of sync cycles by result.",
		}, []string{"result"}),
		failures: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fieldsync",
			Subsystem: "sync",
			Name:      "consecutive_failures",
			Help:      "Current number of consecutive connectivity failures.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fieldsync",
			Subsystem: "sync",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last completed sync cycle.",
		}),
		merged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fieldsync",
			Subsystem: "sync",
			Name:      "merge_records_total",
			Help:      "Records processed by the merge resolver by entity kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.cycles, m.failures, m.lastSuccess, m.merged)
	}
	return m
}

func (m *Metrics) cycle(result string) {
	if m == nil {
		return
	}
	m.cycles.WithLabelValues(result).Inc()
}

func (m *Metrics) setFailures(n int) {
	if m == nil {
		return
	}
	m.failures.Set(float64(n))
}

func (m *Metrics) success(at time.Time) {
	if m == nil {
		return
	}
	m.lastSuccess.Set(float64(at.Unix()))
}

func (m *Metrics) mergeStats(kind string, s crdt.Stats) {
	if m == nil {
		return
	}
	m.merged.WithLabelValues(kind, "added").Add(float64(s.Added))
	m.merged.WithLabelValues(kind, "replaced").Add(float64(s.Replaced))
	m.merged.WithLabelValues(kind, "kept").Add(float64(s.Kept))
	m.merged.WithLabelValues(kind, "skipped").Add(float64(s.Skipped))
}
