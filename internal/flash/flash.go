// Package flash implements single-use notices carried across a redirect in a
// cookie, read and cleared on the next page render.
package flash

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

const cookieName = "flash"

// Message categories, used by templates for styling.
const (
	Success = "success"
	Info    = "info"
	Warning = "warning"
	Danger  = "danger"
)

type Message struct {
	Category string
	Text     string
}

// Set queues a notice to be shown on the next rendered page.
func Set(c echo.Context, category, text string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(category + "|" + text),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the queued notices, if any, and clears them.
func Pop(c echo.Context) []Message {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// Expire the cookie so the notice shows once.
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}

	category, text, found := strings.Cut(raw, "|")
	if !found {
		return []Message{{Category: Info, Text: raw}}
	}
	return []Message{{Category: category, Text: text}}
}
