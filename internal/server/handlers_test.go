// internal/server/handlers_test.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/database"
	"tracker/internal/middleware"
	"tracker/internal/repository"
	"tracker/internal/service"
	"tracker/pkg/auth"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name)

	db, err := sqlx.Open("sqlite3", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))

	sessions := auth.NewSessionManager("test-secret", time.Hour)
	authService := service.NewAuthService(repository.NewUserRepository(db))
	taskService := service.NewTaskService(repository.NewTaskRepository(db))

	return New(authService, taskService, sessions)
}

func postForm(s *Server, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func get(s *Server, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func registerAndLogin(t *testing.T, s *Server) *http.Cookie {
	t.Helper()

	rec := postForm(s, "/register", url.Values{
		"username":         {"alice"},
		"password":         {"correcthorse"},
		"confirm_password": {"correcthorse"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	rec = postForm(s, "/login", url.Values{
		"username": {"alice"},
		"password": {"correcthorse"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	return sessionCookie(t, rec)
}

func TestHomeRedirects(t *testing.T) {
	s := setupTestServer(t)

	rec := get(s, "/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cookie := registerAndLogin(t, s)
	rec = get(s, "/", cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestDashboardRequiresSession(t *testing.T) {
	s := setupTestServer(t)

	rec := get(s, "/dashboard")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRegisterValidationRedirectsBack(t *testing.T) {
	s := setupTestServer(t)

	rec := postForm(s, "/register", url.Values{
		"username":         {"alice"},
		"password":         {"short"},
		"confirm_password": {"short"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/register", rec.Header().Get("Location"))
}

func TestLoginWrongPassword(t *testing.T) {
	s := setupTestServer(t)
	registerAndLogin(t, s)

	rec := postForm(s, "/login", url.Values{
		"username": {"alice"},
		"password": {"wronghorse12"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, middleware.SessionCookieName, c.Name)
	}
}

func TestDashboardShowsTasks(t *testing.T) {
	s := setupTestServer(t)
	cookie := registerAndLogin(t, s)

	rec := postForm(s, "/dashboard", url.Values{
		"task":     {"water plants"},
		"category": {"Home"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = get(s, "/dashboard", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "water plants")
	assert.Contains(t, body, "Home")
	assert.Contains(t, body, "pending")
	assert.Contains(t, body, "alice")
}

func TestCompleteFlow(t *testing.T) {
	s := setupTestServer(t)
	cookie := registerAndLogin(t, s)

	rec := postForm(s, "/dashboard", url.Values{"task": {"water plants"}}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	// First (and only) task has id 1.
	rec = get(s, "/complete/1", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = get(s, "/dashboard", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "completed")
	assert.Contains(t, body, time.Now().Format("2006-01-02"))
}

func TestCompleteUnknownTaskFlashesNotFound(t *testing.T) {
	s := setupTestServer(t)
	cookie := registerAndLogin(t, s)

	rec := get(s, "/complete/999", cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestLogoutClearsSession(t *testing.T) {
	s := setupTestServer(t)
	cookie := registerAndLogin(t, s)

	rec := get(s, "/logout", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			cleared = true
			assert.Empty(t, c.Value)
			assert.Negative(t, c.MaxAge)
		}
	}
	assert.True(t, cleared)
}
