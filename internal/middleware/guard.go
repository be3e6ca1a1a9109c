package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sewakita/rentweb/internal/session"
)

// RequireLogin redirects visitors without a session token to the login
// page. Token presence is the only check here; a stale token is discovered
// when the backend answers 401/403 on a later call.
func RequireLogin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Current(c).LoggedIn() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfLoggedIn sends authenticated visitors away from the login and
// register pages.
func RedirectIfLoggedIn(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.Current(c).LoggedIn() {
			c.Redirect(http.StatusFound, "/admin/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
