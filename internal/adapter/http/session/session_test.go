package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/persistence/repository"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	mock_interfaces "github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type quoteResult struct {
	QuoteID string `json:"quote_id"`
}

func newTestRouter(m *Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/set", func(c *gin.Context) {
		if err := m.SetJSON(c, "quote_result", quoteResult{QuoteID: "Q1"}); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		m.Flash(c, FlashSuccess, "Saved")
		c.Status(http.StatusNoContent)
	})
	r.GET("/pop", func(c *gin.Context) {
		var res quoteResult
		ok, err := m.PopJSON(c, "quote_result", &res)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		flashes := m.Flashes(c)
		c.JSON(http.StatusOK, gin.H{"found": ok, "quote_id": res.QuoteID, "flashes": len(flashes)})
	})
	r.GET("/clear", func(c *gin.Context) {
		m.Clear(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestManager_RoundTrip(t *testing.T) {
	repo := repository.NewSessionMemoryRepository()
	r := newTestRouter(NewManager(repo, time.Hour, false))

	w := do(r, "/set", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	w = do(r, "/pop", cookies)
	assert.JSONEq(t, `{"found":true,"quote_id":"Q1","flashes":1}`, w.Body.String())

	// popped values are gone on the next request
	w = do(r, "/pop", cookies)
	assert.JSONEq(t, `{"found":false,"quote_id":"","flashes":0}`, w.Body.String())
}

func TestManager_UnknownCookie(t *testing.T) {
	repo := repository.NewSessionMemoryRepository()
	r := newTestRouter(NewManager(repo, time.Hour, false))

	w := do(r, "/pop", []*http.Cookie{{Name: CookieName, Value: "forged"}})
	assert.JSONEq(t, `{"found":false,"quote_id":"","flashes":0}`, w.Body.String())
}

func TestManager_Clear(t *testing.T) {
	repo := repository.NewSessionMemoryRepository()
	r := newTestRouter(NewManager(repo, time.Hour, false))

	cookies := do(r, "/set", nil).Result().Cookies()
	id := cookies[0].Value

	w := do(r, "/clear", cookies)
	require.Equal(t, http.StatusNoContent, w.Code)
	s, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	if s.ID != "" {
		t.Fatalf("expected session %s to be deleted", id)
	}
}

func TestManager_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISessionRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Session{})).Return(errors.New("table not found")).AnyTimes()

	r := newTestRouter(NewManager(repo, time.Hour, false))
	w := do(r, "/set", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
