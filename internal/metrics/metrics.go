package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Quote submission outcomes.
const (
	QuotePersisted = "persisted"
	QuoteDegraded  = "degraded"
	QuoteInvalid   = "invalid"
)

// Metrics groups every collector the service exports.
type Metrics struct {
	// Request metrics
	RequestCounter           *prometheus.CounterVec
	RequestDurationHistogram *prometheus.HistogramVec
	StatusCategoryCounter    *prometheus.CounterVec

	// Store metrics
	StoreOperationCounter *prometheus.CounterVec
	CacheLookupCounter    *prometheus.CounterVec
	StoreRetryCounter     *prometheus.CounterVec

	// Business metrics
	QuoteSubmissionCounter *prometheus.CounterVec
	ChatResponseCounter    *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers all collectors on reg under the given namespace. A nil reg
// uses a fresh registry.
func New(namespace string, reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	factory := promauto.With(reg)

	return &Metrics{
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDurationHistogram: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		StatusCategoryCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_responses_by_category_total",
				Help:      "HTTP responses grouped by status class",
			},
			[]string{"category"},
		),
		StoreOperationCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_operations_total",
				Help:      "Spreadsheet store calls by table, operation and result",
			},
			[]string{"table", "operation", "result"},
		),
		CacheLookupCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_cache_lookups_total",
				Help:      "Read cache lookups by table and result",
			},
			[]string{"table", "result"},
		),
		StoreRetryCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_retries_total",
				Help:      "Store calls retried after a rate limit",
			},
			[]string{"table", "operation"},
		),
		QuoteSubmissionCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quote_submissions_total",
				Help:      "Quote submissions by outcome",
			},
			[]string{"outcome"},
		),
		ChatResponseCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chat_responses_total",
				Help:      "Chat replies by source",
			},
			[]string{"source"},
		),
		gatherer: reg,
	}
}

// Middleware tracks request metrics
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()

		m.RequestCounter.With(prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(status),
		}).Inc()
		m.RequestDurationHistogram.With(prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
		}).Observe(time.Since(start).Seconds())
		m.StatusCategoryCounter.WithLabelValues(statusCategory(status)).Inc()
	}
}

// Handler returns a HTTP handler for the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// StoreCall records the result of one backend call.
func (m *Metrics) StoreCall(table, op string, err error) {
	m.StoreOperationCounter.WithLabelValues(table, op, resultLabel(err)).Inc()
}

// CacheLookup records a cache hit or miss.
func (m *Metrics) CacheLookup(table string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookupCounter.WithLabelValues(table, result).Inc()
}

// StoreRetry records a retried backend call.
func (m *Metrics) StoreRetry(table, op string) {
	m.StoreRetryCounter.WithLabelValues(table, op).Inc()
}

// RecordQuoteSubmission increments the submission counter for outcome.
func (m *Metrics) RecordQuoteSubmission(outcome string) {
	m.QuoteSubmissionCounter.WithLabelValues(outcome).Inc()
}

// RecordChatResponse increments the chat counter for source (model or keyword).
func (m *Metrics) RecordChatResponse(source string) {
	m.ChatResponseCounter.WithLabelValues(source).Inc()
}

func statusCategory(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperr.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, apperr.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperr.ErrSchemaMismatch):
		return "schema_mismatch"
	default:
		return "error"
	}
}
