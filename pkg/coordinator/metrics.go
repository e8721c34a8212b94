package coordinator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "multitx"
	metricsSubsystem = "coordinator"
)

type Metrics struct {
	attempts prometheus.Counter
	outcomes *prometheus.CounterVec
	duration prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		attempts: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "attempts_total",
			Help:      "Transaction attempts started, retries included.",
		}),
		outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "executions_total",
			Help:      "Finished executions by outcome.",
		}, []string{"outcome"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "execution_duration_seconds",
			Help:      "Execution time from the first attempt to the result.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		}),
	}
}

func (m *Metrics) attempt() {
	if m == nil {
		return
	}
	m.attempts.Inc()
}

func (m *Metrics) observe(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
}
