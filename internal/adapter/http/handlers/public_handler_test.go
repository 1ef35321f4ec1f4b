package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/handlers/mocks"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/pricing"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"
	mock_interfaces "github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func publicRouter(t *testing.T, h *PublicHandler) *gin.Engine {
	r := newRouter(t)
	r.GET("/", h.Home)
	r.GET("/services", h.Services)
	r.GET("/quote", h.QuoteForm)
	r.POST("/quote-submit", h.SubmitQuote)
	r.GET("/quote-result", h.QuoteResult)
	return r
}

func confirmation(persisted bool) usecase.QuoteConfirmation {
	id := "Q20250320101500AB12"
	if !persisted {
		id = "TEMP20250320101500"
	}
	q := entities.Quote{
		ID:         id,
		Customer:   entities.Contact{Name: "Ana Souza", Email: "ana@example.com", City: "Boston"},
		Properties: []entities.Property{{ID: 1, Name: "Main Property", FacilityType: "office", SquareFeet: 2500}},
		Frequency:  "monthly",
		Status:     entities.QuoteStatusPending,
	}
	conf := usecase.QuoteConfirmation{
		Quote:     q,
		Breakdown: pricing.Breakdown{BaseCost: 186.11, ProfitAmount: 65.14, TaxAmount: 15.70, TotalAmount: 266.95},
		Persisted: persisted,
	}
	if !persisted {
		conf.ErrorMessage = usecase.DegradedQuoteMsg
	}
	return conf
}

func TestPublicHandler_Pages(t *testing.T) {
	h := NewPublicHandler(newPages(nil), nil)
	r := publicRouter(t, h)

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assert.Contains(t, w.Body.String(), testBusiness.Name)

	w = get(r, "/quote")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assert.Contains(t, w.Body.String(), `value="warehouse"`)
	assert.Contains(t, w.Body.String(), `value="windows"`)

	w = get(r, "/services")
	assert.Contains(t, w.Body.String(), "Government")
}

func TestPublicHandler_SubmitQuote(t *testing.T) {
	form := url.Values{
		"name":          {"Ana Souza"},
		"email":         {"ana@example.com"},
		"city":          {"Boston"},
		"property_type": {"office"},
		"sqft":          {"2500"},
		"services":      {"windows", "kitchen"},
		"frequency":     {"monthly"},
	}

	t.Run("persisted quote is handed to the result page once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.QuoteIntake) (usecase.QuoteConfirmation, error) {
			assert.Equal(t, "Ana Souza", in.Contact.Name)
			assert.Equal(t, 2500.0, in.SquareFeet)
			assert.Equal(t, []string{"windows", "kitchen"}, in.AddOns)
			return confirmation(true), nil
		})
		r := publicRouter(t, NewPublicHandler(newPages(nil), uc))

		w := postForm(r, "/quote-submit", form)
		expectRedirect(t, w, "/quote-result")

		cookies := sessionCookies(w)
		w = get(r, "/quote-result", cookies...)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		assert.Contains(t, body, "Q20250320101500AB12")
		assert.Contains(t, body, "$266.95")
		assert.Contains(t, body, "windows, kitchen")

		w = get(r, "/quote-result", cookies...)
		expectRedirect(t, w, "/quote")
	})

	t.Run("degraded quote still confirms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(confirmation(false), nil)
		r := publicRouter(t, NewPublicHandler(newPages(nil), uc))

		w := postForm(r, "/quote-submit", form)
		expectRedirect(t, w, "/quote-result")

		w = get(r, "/quote-result", sessionCookies(w)...)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		assert.Contains(t, w.Body.String(), "TEMP20250320101500")
		assert.Contains(t, w.Body.String(), "we received your information")
	})

	t.Run("missing name flashes and returns to the wizard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := publicRouter(t, NewPublicHandler(newPages(nil), uc))

		w := postForm(r, "/quote-submit", url.Values{"sqft": {"1000"}})
		expectRedirect(t, w, "/quote")

		w = get(r, "/quote", sessionCookies(w)...)
		assert.Contains(t, w.Body.String(), "name: is required")
	})

	t.Run("pricing rejection returns to the wizard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.QuoteConfirmation{}, apperr.NewValidationError("square_feet", "must be greater than zero"))
		r := publicRouter(t, NewPublicHandler(newPages(nil), uc))

		w := postForm(r, "/quote-submit", url.Values{"name": {"Ana"}, "sqft": {"0"}})
		expectRedirect(t, w, "/quote")
	})

	t.Run("unexpected error renders the error page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.QuoteConfirmation{}, errors.New("boom"))
		r := publicRouter(t, NewPublicHandler(newPages(nil), uc))

		w := postForm(r, "/quote-submit", form)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("session store down renders the result directly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(confirmation(true), nil)
		store := mock_interfaces.NewMockISessionRepository(ctrl)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("table unavailable"))
		r := publicRouter(t, NewPublicHandler(newPagesWithStore(store, nil), uc))

		w := postForm(r, "/quote-submit", form)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		assert.Contains(t, w.Body.String(), "Q20250320101500AB12")
	})
}

func TestPublicHandler_QuoteResultWithoutSubmission(t *testing.T) {
	r := publicRouter(t, NewPublicHandler(newPages(nil), nil))
	w := get(r, "/quote-result")
	expectRedirect(t, w, "/quote")
}

func TestHealth(t *testing.T) {
	r := newRouter(t)
	r.GET("/health", Health("cleaning-web"))

	w := get(r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `"status":"ok"`), body)
	assert.Contains(t, body, "cleaning-web")
}
