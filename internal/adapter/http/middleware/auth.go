package middleware

import (
	"net/http"
	"time"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/logger"
	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	AuthCookie   = "auth"
	principalKey = "principal"
)

// RequireRole lets the request through only when the auth cookie carries a
// valid token for role. Anyone else is sent to loginPath.
func RequireRole(auth usecase.IAuthUseCase, role, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		p, err := auth.ParseToken(token)
		if err != nil || p.Role != role {
			logger.FromGin(c).Info("[auth][middleware] rejected portal token",
				zap.String("want_role", role),
				zap.String("got_role", p.Role),
				zap.Error(err),
			)
			ClearAuthCookie(c, false)
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// PrincipalFrom returns the user attached by RequireRole.
func PrincipalFrom(c *gin.Context) (usecase.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return usecase.Principal{}, false
	}
	p, ok := v.(usecase.Principal)
	return p, ok
}

func SetAuthCookie(c *gin.Context, token string, expires time.Time, secure bool) {
	maxAge := int(time.Until(expires).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookie, token, maxAge, "/", "", secure, true)
}

func ClearAuthCookie(c *gin.Context, secure bool) {
	c.SetCookie(AuthCookie, "", -1, "/", "", secure, true)
}
