package handlers

import (
	"context"
	"net/http"

	request "github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/dto/request"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/middleware"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/session"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler signs admins and employees in and out of their portals.
type AuthHandler struct {
	pages  *Pages
	auth   usecase.IAuthUseCase
	secure bool
}

func NewAuthHandler(pages *Pages, auth usecase.IAuthUseCase, secureCookies bool) *AuthHandler {
	return &AuthHandler{pages: pages, auth: auth, secure: secureCookies}
}

func (h *AuthHandler) AdminLoginForm(c *gin.Context) {
	h.pages.render(c, http.StatusOK, "login.html", "Admin Login", gin.H{"Action": "/admin/login"})
}

func (h *AuthHandler) EmployeeLoginForm(c *gin.Context) {
	h.pages.render(c, http.StatusOK, "login.html", "Employee Login", gin.H{"Action": "/employee/login"})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, h.auth.AdminLogin, "/admin/login", "/admin/dashboard")
}

func (h *AuthHandler) EmployeeLogin(c *gin.Context) {
	h.login(c, h.auth.EmployeeLogin, "/employee/login", "/employee/dashboard")
}

func (h *AuthHandler) login(
	c *gin.Context,
	authenticate func(ctx context.Context, username, password string) (usecase.Principal, error),
	loginPath, home string,
) {
	var form request.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.pages.back(c, usecase.ErrInvalidCredentials, loginPath)
		return
	}

	p, err := authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		logger.FromGin(c).Info("[auth][handler] login rejected", zap.String("path", loginPath), zap.Error(err))
		h.pages.back(c, err, loginPath)
		return
	}

	token, expires, err := h.auth.IssueToken(p)
	if err != nil {
		h.pages.fail(c, err)
		return
	}
	middleware.SetAuthCookie(c, token, expires, h.secure)
	h.pages.auditAs(c, p.Name, "login", p.Role+" signed in")
	h.pages.done(c, "Welcome back, "+p.Name+"!", home)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.pages.sessions.Clear(c)
	middleware.ClearAuthCookie(c, h.secure)
	h.pages.sessions.Flash(c, session.FlashInfo, "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}
