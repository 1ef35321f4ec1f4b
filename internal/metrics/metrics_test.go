package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New("test", prometheus.NewRegistry())

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/quote", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/quote", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues("GET", "/quote", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.StatusCategoryCounter.WithLabelValues("2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatusCategoryCounter.WithLabelValues("4xx")))
}

func TestStoreObserver(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.StoreCall("Quotes", "append", nil)
	m.StoreCall("Quotes", "append", apperr.RateLimited("append", errors.New("429")))
	m.CacheLookup("Jobs", true)
	m.CacheLookup("Jobs", false)
	m.StoreRetry("Quotes", "append")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperationCounter.WithLabelValues("Quotes", "append", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreOperationCounter.WithLabelValues("Quotes", "append", "rate_limited")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookupCounter.WithLabelValues("Jobs", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreRetryCounter.WithLabelValues("Quotes", "append")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New("cleaning_web", nil)
	m.RecordQuoteSubmission(QuoteDegraded)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `cleaning_web_quote_submissions_total{outcome="degraded"} 1`))
}
