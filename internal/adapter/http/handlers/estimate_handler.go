package handlers

import (
	"errors"
	"net/http"

	request "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/request"
	response "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/response"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"
	"github.com/Cleaning-Company-dex/cleaning-company-web/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler serves the live price preview used by the quote wizard.
type EstimateHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewEstimateHandler(uc usecase.IQuoteUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// Estimate godoc
// @Summary      Price preview
// @Description  Prices one property without storing anything.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body      request.EstimateRequest  true  "Property details"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /api/quote/estimate [post]
func (h *EstimateHandler) Estimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	in, err := payload.ToIntake()
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	b, err := h.usecase.Estimate(c.Request.Context(), in)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(b))
}

func mapEstimateError(err error) *pkg.AppError {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("INVALID_REQUEST", ve.Error(), err, http.StatusBadRequest)
	case errors.Is(err, apperr.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
