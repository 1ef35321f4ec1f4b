package handlers

import (
	"errors"
	"net/http"

	request "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/request"
	response "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/response"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/session"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/pricing"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const quoteResultKey = "quote_result"

// PublicHandler serves the marketing pages and the quote wizard.
type PublicHandler struct {
	pages  *Pages
	quotes usecase.IQuoteUseCase
}

func NewPublicHandler(pages *Pages, quotes usecase.IQuoteUseCase) *PublicHandler {
	return &PublicHandler{pages: pages, quotes: quotes}
}

func (h *PublicHandler) Home(c *gin.Context) {
	h.pages.render(c, http.StatusOK, "home.html", "Professional Commercial Cleaning", nil)
}

func (h *PublicHandler) Services(c *gin.Context) {
	h.pages.render(c, http.StatusOK, "services.html", "Services", gin.H{"PropertyTypes": pricing.PropertyTypes()})
}

func (h *PublicHandler) About(c *gin.Context) {
	h.pages.render(c, http.StatusOK, "about.html", "About Us", nil)
}

func (h *PublicHandler) Contact(c *gin.Context) {
	h.pages.render(c, http.StatusOK, "contact.html", "Contact", nil)
}

func (h *PublicHandler) QuoteForm(c *gin.Context) {
	h.pages.render(c, http.StatusOK, "quote.html", "Get a Quote", gin.H{
		"PropertyTypes": pricing.PropertyTypes(),
		"Frequencies":   pricing.Frequencies(),
		"AddOns":        pricing.AddOns(),
	})
}

// SubmitQuote prices and stores the wizard submission, then hands the
// confirmation to GET /quote-result through the session. A quote that could
// not be stored still gets a confirmation page.
func (h *PublicHandler) SubmitQuote(c *gin.Context) {
	var form request.QuoteForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.back(c, errInvalidForm, "/quote")
		return
	}
	in, err := form.ToIntake()
	if err != nil {
		h.pages.back(c, err, "/quote")
		return
	}

	conf, err := h.quotes.Submit(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			h.pages.back(c, err, "/quote")
			return
		}
		h.pages.fail(c, err)
		return
	}

	result := response.FromConfirmation(conf, in.AddOns)
	if err := h.pages.sessions.SetJSON(c, quoteResultKey, result); err != nil {
		logger.FromGin(c).Warn("[quote][handler] session unavailable, rendering result directly",
			zap.String("quote_id", result.QuoteID), zap.Error(err))
		h.pages.render(c, http.StatusOK, "quote_result.html", "Your Quote", gin.H{"Result": result})
		return
	}
	c.Redirect(http.StatusFound, "/quote-result")
}

func (h *PublicHandler) QuoteResult(c *gin.Context) {
	var result response.QuoteResult
	ok, err := h.pages.sessions.PopJSON(c, quoteResultKey, &result)
	if err != nil {
		logger.FromGin(c).Warn("[quote][handler] could not read quote result", zap.Error(err))
	}
	if err != nil || !ok {
		h.pages.sessions.Flash(c, session.FlashInfo, "Start a new quote below.")
		c.Redirect(http.StatusFound, "/quote")
		return
	}
	h.pages.render(c, http.StatusOK, "quote_result.html", "Your Quote", gin.H{"Result": result})
}

// Health godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.HealthResponse
// @Router       /health [get]
func Health(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.NewHealthResponse(service))
	}
}
