package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "covered_call_"

// Service constants
const (
	ServiceRPC       = "rpc"
	ServiceRegistry  = "token_registry"
	ServicePriceList = "price_list"
)

// Request statuses
const (
	StatusSuccess     = "success"
	StatusError       = "error"
	StatusNotFound    = "not_found"
	StatusRateLimited = "rate_limited"
)

var (
	// Requests to upstream providers (RPC node, token list host)
	// Cardinality: ~8 (2 services × 4 statuses)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "requests_total",
			Help: "Total number of upstream requests per service and status",
		},
		[]string{"service", "status"},
	)

	// Request latency per operation
	// Cardinality: ~4 (get_state, get_price_page, fetch_token_list)
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "request_latency_seconds",
			Help: "Upstream request latency by service and operation",
		},
		[]string{"service", "operation"},
	)

	// Full price list build duration
	DataFetchCycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "data_fetch_cycle_duration_seconds",
			Help: "Time taken to build a full price list",
		},
		[]string{"service"},
	)

	// Number of entries in the last built list
	ResultSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "result_size",
			Help: "Number of items produced by the last cycle",
		},
		[]string{"service"},
	)

	// Items absorbed by the price list pipeline
	// Cardinality: ~5 (error kinds)
	SkippedItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "skipped_items_total",
			Help: "Total number of tokens skipped while building the price list, by reason",
		},
		[]string{"service", "reason"},
	)

	// Time spent waiting on the self-imposed RPC rate limiter
	RateLimitWaitHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "rate_limit_wait_seconds",
			Help: "Time spent waiting for the request rate limiter",
		},
		[]string{"service"},
	)
)

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordRequest records an upstream request with its status
func (mw *MetricsWriter) RecordRequest(status string) {
	RequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// RecordRequestLatency records how long one upstream operation took
func (mw *MetricsWriter) RecordRequestLatency(operation string, duration time.Duration) {
	RequestLatencyHistogram.WithLabelValues(mw.serviceName, operation).Observe(duration.Seconds())
}

// RecordDataFetchCycle records the duration of a data fetch cycle
func (mw *MetricsWriter) RecordDataFetchCycle(duration time.Duration) {
	DataFetchCycleDuration.WithLabelValues(mw.serviceName).Observe(duration.Seconds())
}

// TrackDataFetchCycle starts timing a cycle, call the returned func when it ends
func (mw *MetricsWriter) TrackDataFetchCycle() func() {
	start := time.Now()
	return func() {
		mw.RecordDataFetchCycle(time.Since(start))
	}
}

// RecordResultSize records the number of items a cycle produced
func (mw *MetricsWriter) RecordResultSize(size int) {
	ResultSizeGauge.WithLabelValues(mw.serviceName).Set(float64(size))
}

// RecordSkippedItem records an item dropped for the given reason
func (mw *MetricsWriter) RecordSkippedItem(reason string) {
	SkippedItemsTotal.WithLabelValues(mw.serviceName, reason).Inc()
}

// RecordRateLimitWait records time spent blocked on a rate limiter
func (mw *MetricsWriter) RecordRateLimitWait(duration time.Duration) {
	RateLimitWaitHistogram.WithLabelValues(mw.serviceName).Observe(duration.Seconds())
}

// OnRequest implements the request status handler used by HTTP clients
func (mw *MetricsWriter) OnRequest(status string) {
	mw.RecordRequest(status)
}
