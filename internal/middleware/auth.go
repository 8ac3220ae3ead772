// internal/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tracker/internal/flash"
	"tracker/pkg/auth"
)

// SessionCookieName is the cookie the signed session token travels in.
const SessionCookieName = "session"

// Context keys for the authenticated identity.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// SessionAuth gates routes behind a valid session cookie.
type SessionAuth struct {
	sessions *auth.SessionManager
}

func NewSessionAuth(sessions *auth.SessionManager) *SessionAuth {
	return &SessionAuth{sessions: sessions}
}

// Require validates the session cookie and puts the user's identity into the
// request context. Requests without a valid session are bounced to the login
// page with a notice.
func (m *SessionAuth) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return redirectToLogin(c)
			}

			claims, err := m.sessions.Validate(cookie.Value)
			if err != nil {
				return redirectToLogin(c)
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUsername, claims.Username)
			return next(c)
		}
	}
}

// Identity reads the session cookie without enforcing it; ok is false when no
// valid session is present.
func (m *SessionAuth) Identity(c echo.Context) (claims *auth.SessionClaims, ok bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	claims, err = m.sessions.Validate(cookie.Value)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func redirectToLogin(c echo.Context) error {
	flash.Set(c, flash.Info, "Please login first.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// UserID returns the authenticated user's id set by Require.
func UserID(c echo.Context) int64 {
	id, _ := c.Get(ContextUserID).(int64)
	return id
}

// Username returns the authenticated user's display name set by Require.
func Username(c echo.Context) string {
	name, _ := c.Get(ContextUsername).(string)
	return name
}
