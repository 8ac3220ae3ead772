// internal/server/handlers.go
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"tracker/internal/flash"
	"tracker/internal/middleware"
	"tracker/internal/service"
)

func (s *Server) home(c echo.Context) error {
	if _, ok := s.sessionAuth.Identity(c); ok {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) registerForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", map[string]interface{}{
		"Flashes": flash.Pop(c),
	})
}

func (s *Server) register(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	confirm := c.FormValue("confirm_password")

	_, err := s.authService.Register(c.Request().Context(), username, password, confirm)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			flash.Set(c, flash.Warning, ve.Msg)
			return c.Redirect(http.StatusSeeOther, "/register")
		case errors.Is(err, service.ErrDuplicateUsername):
			flash.Set(c, flash.Danger, "Username already taken - try another.")
			return c.Redirect(http.StatusSeeOther, "/register")
		default:
			return err
		}
	}

	flash.Set(c, flash.Success, "Registration successful - you can now login.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) loginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", map[string]interface{}{
		"Flashes": flash.Pop(c),
	})
}

func (s *Server) login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := s.authService.Authenticate(c.Request().Context(), username, password)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			flash.Set(c, flash.Warning, ve.Msg)
			return c.Redirect(http.StatusSeeOther, "/login")
		case errors.Is(err, service.ErrInvalidCredentials):
			flash.Set(c, flash.Danger, "Invalid username or password. If you don't have an account, please register.")
			return c.Redirect(http.StatusSeeOther, "/login")
		default:
			return err
		}
	}

	token, err := s.sessions.Issue(user.ID, user.Username)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.sessions.Duration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	flash.Set(c, flash.Success, fmt.Sprintf("Welcome back, %s!", user.Username))
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) dashboard(c echo.Context) error {
	userID := middleware.UserID(c)

	tasks, err := s.taskService.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	// Analytics are derived from the current task set on every render; no
	// cached state to go stale after a completion.
	stats := service.CategoryStats(tasks)
	streak := service.Streak(tasks, time.Now())

	return c.Render(http.StatusOK, "dashboard.html", map[string]interface{}{
		"Username": middleware.Username(c),
		"Tasks":    tasks,
		"Stats":    stats,
		"Streak":   streak,
		"Flashes":  flash.Pop(c),
	})
}

func (s *Server) createTask(c echo.Context) error {
	userID := middleware.UserID(c)

	_, err := s.taskService.Create(c.Request().Context(), userID,
		c.FormValue("task"), c.FormValue("category"), c.FormValue("notes"))
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			flash.Set(c, flash.Warning, ve.Msg)
			return c.Redirect(http.StatusSeeOther, "/dashboard")
		}
		return err
	}

	flash.Set(c, flash.Success, "Task added.")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) completeTask(c echo.Context) error {
	userID := middleware.UserID(c)

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		flash.Set(c, flash.Danger, "Task not found or not yours.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	if err := s.taskService.Complete(c.Request().Context(), userID, taskID, time.Now()); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			flash.Set(c, flash.Danger, "Task not found or not yours.")
			return c.Redirect(http.StatusSeeOther, "/dashboard")
		}
		return err
	}

	flash.Set(c, flash.Success, "Marked as completed.")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	flash.Set(c, flash.Info, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/login")
}
