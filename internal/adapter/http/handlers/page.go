package handlers

import (
	"errors"
	"net/http"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/middleware"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/session"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/apperr"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"
	"github.com/Cleaning-Company-dex/cleaning-company-web/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const storeUnavailableMsg = "Our records are temporarily unavailable. Please try again in a moment."

var errInvalidForm = apperr.NewValidationError("", "Please check the values entered in the form")

// Pages renders server side templates with the data every layout needs and
// records admin activity. It is shared by all HTML handlers.
type Pages struct {
	sessions *session.Manager
	business usecase.BusinessInfo
	activity usecase.IActivityLogger
}

// NewPages builds the shared renderer. activity may be nil.
func NewPages(sessions *session.Manager, business usecase.BusinessInfo, activity usecase.IActivityLogger) *Pages {
	return &Pages{sessions: sessions, business: business, activity: activity}
}

func (p *Pages) render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Business"] = p.business
	data["Flashes"] = p.sessions.Flashes(c)
	if pr, ok := middleware.PrincipalFrom(c); ok {
		data["User"] = &pr
	} else {
		data["User"] = (*usecase.Principal)(nil)
	}
	c.HTML(status, name, data)
}

// fail renders the error page for err.
func (p *Pages) fail(c *gin.Context, err error) {
	appErr := mapPageError(err)
	log := logger.FromGin(c)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("[http][handler] request failed", zap.String("code", appErr.Code), zap.Error(err))
	} else {
		log.Info("[http][handler] request rejected", zap.String("code", appErr.Code), zap.Error(err))
	}
	p.render(c, appErr.HTTPStatus, "error.html", http.StatusText(appErr.HTTPStatus), gin.H{"Message": appErr.Message})
}

// back flashes the mapped message for err and redirects to location.
func (p *Pages) back(c *gin.Context, err error, location string) {
	appErr := mapPageError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromGin(c).Error("[http][handler] form action failed", zap.String("code", appErr.Code), zap.Error(err))
	}
	p.sessions.Flash(c, session.FlashError, appErr.Message)
	c.Redirect(http.StatusFound, location)
}

func (p *Pages) done(c *gin.Context, message, location string) {
	p.sessions.Flash(c, session.FlashSuccess, message)
	c.Redirect(http.StatusFound, location)
}

// audit appends an Activity_Log entry for the signed in user.
func (p *Pages) audit(c *gin.Context, action, description string) {
	user := "anonymous"
	if pr, ok := middleware.PrincipalFrom(c); ok {
		user = pr.Name
		if user == "" {
			user = pr.Subject
		}
	}
	p.auditAs(c, user, action, description)
}

func (p *Pages) auditAs(c *gin.Context, user, action, description string) {
	if p.activity == nil {
		return
	}
	p.activity.Record(c.Request.Context(), action, description, user, c.ClientIP())
}

func mapPageError(err error) *pkg.AppError {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("INVALID_REQUEST", ve.Error(), err, http.StatusBadRequest)
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, apperr.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "The requested record was not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrJobNotAssigned):
		return pkg.NewDomainError("FORBIDDEN", "This job is not assigned to you", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteAlreadyConverted):
		return pkg.NewDomainError("QUOTE_CONVERTED", "This quote was already converted", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrCustomerExists):
		return pkg.NewDomainError("CUSTOMER_EXISTS", "A customer with this email already exists", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainError("USERNAME_TAKEN", "That username is already taken", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrJobClosed):
		return pkg.NewDomainError("JOB_CLOSED", "This job is already closed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Online payments are not configured", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidGatewayPayload):
		return pkg.NewDomainError("INVALID_GATEWAY_PAYLOAD", "The payment details were rejected", err, http.StatusBadRequest)
	case errors.Is(err, apperr.ErrStoreUnavailable), errors.Is(err, apperr.ErrRateLimited):
		return pkg.NewDomainError("STORE_UNAVAILABLE", storeUnavailableMsg, err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// NotFound renders the error page for unknown routes.
func (p *Pages) NotFound(c *gin.Context) {
	p.render(c, http.StatusNotFound, "error.html", http.StatusText(http.StatusNotFound), gin.H{"Message": "The page you are looking for does not exist."})
}
