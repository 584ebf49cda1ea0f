package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"hotprospects/internal/structures"
	"time"
)

const (
	ReminderScheduled = "scheduled"
	ReminderDenied    = "denied"
	ReminderFailed    = "failed"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	IncPersistenceErrors()
	SetProspectsTotal(total, contacted int)
	IncReminders(result string)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	persistenceErrors   prometheus.Counter
	prospects           *prometheus.GaugeVec
	reminders           *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncPersistenceErrors() {
	m.persistenceErrors.Inc()
}

func (m *MetricsProvider) SetProspectsTotal(total, contacted int) {
	m.prospects.WithLabelValues("contacted").Set(float64(contacted))
	m.prospects.WithLabelValues("uncontacted").Set(float64(total - contacted))
}

func (m *MetricsProvider) IncReminders(result string) {
	m.reminders.WithLabelValues(result).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}
	return newMetricsProvider(prometheus.DefaultRegisterer)
}

func newMetricsProvider(reg prometheus.Registerer) *MetricsProvider {
	factory := promauto.With(reg)
	return &MetricsProvider{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hp_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hp_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "hp_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "hp_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		persistenceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "hp_persistence_duration_seconds",
			Help:    "Duration of prospect saves in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		persistenceErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "hp_persistence_errors_total",
			Help: "Total number of failed prospect saves",
		}),

		prospects: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hp_prospects",
			Help: "Number of prospects by contact state",
		}, []string{"state"}),

		reminders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hp_reminders_total",
			Help: "Reminder requests by outcome",
		}, []string{"result"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) IncPersistenceErrors()                            {}
func (n *noopMetrics) SetProspectsTotal(_, _ int)                       {}
func (n *noopMetrics) IncReminders(_ string)                            {}
