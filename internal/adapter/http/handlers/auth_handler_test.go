package handlers

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/handlers/mocks"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/adapter/http/middleware"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func authRouter(t *testing.T, h *AuthHandler) *gin.Engine {
	r := newRouter(t)
	r.GET("/admin/login", h.AdminLoginForm)
	r.POST("/admin/login", h.AdminLogin)
	r.GET("/employee/login", h.EmployeeLoginForm)
	r.POST("/employee/login", h.EmployeeLogin)
	r.GET("/logout", h.Logout)
	return r
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, ck := range cookies {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestAuthHandler_AdminLogin(t *testing.T) {
	t.Run("success sets the auth cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		activity := mocks.NewMockIActivityLogger(ctrl)
		auth.EXPECT().AdminLogin(gomock.Any(), "admin", "secret").Return(adminPrincipal, nil)
		auth.EXPECT().IssueToken(adminPrincipal).Return("signed-token", time.Now().Add(time.Hour), nil)
		activity.EXPECT().Record(gomock.Any(), "login", gomock.Any(), "Administrator", gomock.Any())
		r := authRouter(t, NewAuthHandler(newPages(activity), auth, false))

		w := postForm(r, "/admin/login", url.Values{"username": {"admin"}, "password": {"secret"}})
		expectRedirect(t, w, "/admin/dashboard")
		ck := findCookie(w.Result().Cookies(), middleware.AuthCookie)
		if ck == nil || ck.Value != "signed-token" || !ck.HttpOnly {
			t.Fatalf("expected http-only auth cookie, got %+v", ck)
		}
	})

	t.Run("bad credentials go back to the form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().AdminLogin(gomock.Any(), "admin", "wrong").Return(usecase.Principal{}, usecase.ErrInvalidCredentials)
		r := authRouter(t, NewAuthHandler(newPages(nil), auth, false))

		w := postForm(r, "/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
		expectRedirect(t, w, "/admin/login")
		assert.Nil(t, findCookie(w.Result().Cookies(), middleware.AuthCookie))

		w = get(r, "/admin/login", sessionCookies(w)...)
		assert.Contains(t, w.Body.String(), "Invalid username or password")
	})
}

func TestAuthHandler_EmployeeLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	auth := mocks.NewMockIAuthUseCase(ctrl)
	auth.EXPECT().EmployeeLogin(gomock.Any(), "maria", "pw").Return(employeePrincipal, nil)
	auth.EXPECT().IssueToken(employeePrincipal).Return("emp-token", time.Now().Add(time.Hour), nil)
	r := authRouter(t, NewAuthHandler(newPages(nil), auth, false))

	w := postForm(r, "/employee/login", url.Values{"username": {"maria"}, "password": {"pw"}})
	expectRedirect(t, w, "/employee/dashboard")
}

func TestAuthHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := authRouter(t, NewAuthHandler(newPages(nil), mocks.NewMockIAuthUseCase(ctrl), false))

	w := get(r, "/logout", &http.Cookie{Name: middleware.AuthCookie, Value: "signed-token"})
	expectRedirect(t, w, "/")
	ck := findCookie(w.Result().Cookies(), middleware.AuthCookie)
	if ck == nil || ck.MaxAge >= 0 {
		t.Fatalf("expected the auth cookie to be expired, got %+v", ck)
	}
}
