package providers

import (
	"telemetryd/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncReadingsInserted()
	IncThresholdUpdates()
	IncLoginAttempts(outcome string)
	ObserveQueryDuration(op string, duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	readingsInserted prometheus.Counter
	thresholdUpdates prometheus.Counter
	loginAttempts    *prometheus.CounterVec
	queryDuration    *prometheus.HistogramVec
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

func (m *MetricsProvider) IncReadingsInserted() {
	m.readingsInserted.Inc()
}

func (m *MetricsProvider) IncThresholdUpdates() {
	m.thresholdUpdates.Inc()
}

func (m *MetricsProvider) IncLoginAttempts(outcome string) {
	m.loginAttempts.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) ObserveQueryDuration(op string, duration time.Duration) {
	m.queryDuration.WithLabelValues(op).Observe(duration.Seconds())
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

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "telemetryd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "telemetryd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "telemetryd_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "telemetryd_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		readingsInserted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "telemetryd_readings_inserted_total",
			Help: "Total number of sensor readings persisted",
		}),

		thresholdUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "telemetryd_threshold_updates_total",
			Help: "Total number of threshold pairs written",
		}),

		loginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "telemetryd_login_attempts_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),

		queryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "telemetryd_query_duration_seconds",
			Help:    "Database statement duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncReadingsInserted()                             {}
func (n *noopMetrics) IncThresholdUpdates()                             {}
func (n *noopMetrics) IncLoginAttempts(_ string)                        {}
func (n *noopMetrics) ObserveQueryDuration(_ string, _ time.Duration)   {}
