package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/handlers"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/session"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/persistence/repository"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/metrics"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// newTestRouter mounts every handler; the use cases are nil because these
// tests only reach middleware, static pages and input rejection.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := usecase.NewAuthUseCase(nil, usecase.AdminCredentials{Username: "admin", Password: "pw"}, "routes-key", time.Hour)
	pages := handlers.NewPages(session.NewManager(repository.NewSessionMemoryRepository(), time.Hour, false),
		usecase.BusinessInfo{Name: "Sparkle Commercial Cleaning"}, nil)

	router, err := NewRouter(Options{
		ServiceName: "cleaning-web",
		Logger:      zap.NewNop(),
		Metrics:     metrics.New("routes_test", prometheus.NewRegistry()),
		AuthUseCase: auth,
		UploadDir:   t.TempDir(),
	}, Handlers{
		Pages:     pages,
		Public:    handlers.NewPublicHandler(pages, nil),
		Estimate:  handlers.NewEstimateHandler(nil),
		Chat:      handlers.NewChatHandler(nil),
		Auth:      handlers.NewAuthHandler(pages, auth, false),
		Dashboard: handlers.NewDashboardHandler(pages, nil),
		Customers: handlers.NewCustomerHandler(pages, nil),
		Employees: handlers.NewEmployeeHandler(pages, nil),
		Jobs:      handlers.NewJobHandler(pages, nil, nil, nil),
		Quotes:    handlers.NewQuoteAdminHandler(pages, nil, nil, nil),
		Payments:  handlers.NewPaymentHandler(pages, nil, nil, true),
		Portal:    handlers.NewEmployeePortalHandler(pages, nil, t.TempDir()),
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestNewRouter(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name     string
		method   string
		path     string
		body     string
		status   int
		location string
	}{
		{name: "home", method: http.MethodGet, path: "/", status: http.StatusOK},
		{name: "quote wizard", method: http.MethodGet, path: "/quote", status: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/health", status: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", status: http.StatusOK},
		{name: "admin login form", method: http.MethodGet, path: "/admin/login", status: http.StatusOK},
		{name: "employee login form", method: http.MethodGet, path: "/employee/login", status: http.StatusOK},
		{name: "admin area needs login", method: http.MethodGet, path: "/admin/dashboard", status: http.StatusFound, location: "/admin/login"},
		{name: "quote export needs login", method: http.MethodGet, path: "/admin/quotes/export", status: http.StatusFound, location: "/admin/login"},
		{name: "portal needs login", method: http.MethodGet, path: "/employee/dashboard", status: http.StatusFound, location: "/employee/login"},
		{name: "estimate rejects bad json", method: http.MethodPost, path: "/api/quote/estimate", body: "{", status: http.StatusBadRequest},
		{name: "unknown page", method: http.MethodGet, path: "/nope", status: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.location != "" {
				assert.Equal(t, tc.location, w.Header().Get("Location"))
			}
		})
	}
}

func TestNewRouter_NotFoundUsesLayout(t *testing.T) {
	router := newTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing-page", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "does not exist")
	assert.Contains(t, w.Body.String(), "Sparkle Commercial Cleaning")
}

func TestNewRouter_RequestIDHeader(t *testing.T) {
	router := newTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
