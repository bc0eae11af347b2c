package services

import (
	"time"

	"tradebot365-admin/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	hierarchyRequests   *prometheus.CounterVec
	hierarchyDuration   prometheus.Histogram
	hierarchyCache      *prometheus.CounterVec
	hierarchySize       *prometheus.GaugeVec
	accountActions      *prometheus.CounterVec
	accountActionTime   *prometheus.HistogramVec
	circuitBreakerState *prometheus.GaugeVec
	recordsImported     prometheus.Counter
	mockRecords         prometheus.Counter
	panicsRecovered     *prometheus.CounterVec
}

// NewPrometheusMetrics registers the dashboard metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		hierarchyRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_hierarchy_requests_total",
				Help: "Total number of account hierarchy page requests",
			},
			[]string{"status"},
		),
		hierarchyDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "account_hierarchy_pipeline_duration_seconds",
				Help:    "Time spent building, filtering and paginating the account hierarchy",
				Buckets: prometheus.DefBuckets,
			},
		),
		hierarchyCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_hierarchy_cache_total",
				Help: "Account hierarchy memo lookups by stage and result",
			},
			[]string{"stage", "result"},
		),
		hierarchySize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "account_hierarchy_size",
				Help: "Number of nodes in the unfiltered account hierarchy by level",
			},
			[]string{"level"},
		),
		accountActions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_actions_total",
				Help: "Total number of trading account actions forwarded to account management",
			},
			[]string{"action", "status"},
		),
		accountActionTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "account_action_duration_milliseconds",
				Help:    "Trading account action duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"action"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		recordsImported: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "account_records_imported_total",
				Help: "Total number of flat account records imported",
			},
		),
		mockRecords: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "account_records_mocked_total",
				Help: "Total number of mock flat account records generated",
			},
		),
		panicsRecovered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_panics_recovered_total",
				Help: "Handler panics turned into 500 responses, by route",
			},
			[]string{"path"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "hierarchy_request":
		if status != "" {
			m.hierarchyRequests.WithLabelValues(status).Inc()
		}
	case "hierarchy_cache":
		m.hierarchyCache.WithLabelValues(tags["stage"], tags["result"]).Inc()
	case "account_action":
		if action := tags["action"]; action != "" && status != "" {
			m.accountActions.WithLabelValues(action, status).Inc()
		}
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(float64(models.CircuitBreakerOpen))
	case "panic_recovered":
		m.panicsRecovered.WithLabelValues(tags["path"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "hierarchy_pipeline":
		m.hierarchyDuration.Observe(duration.Seconds())
	case "edit_trading_account", "delete_trading_account", "toggle_connection":
		m.accountActionTime.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "hierarchy_size":
		if level := tags["level"]; level != "" {
			m.hierarchySize.WithLabelValues(level).Set(value)
		}
	case "circuit_breaker_state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "records_imported":
		m.recordsImported.Add(value)
	case "records_mocked":
		m.mockRecords.Add(value)
	}
}
