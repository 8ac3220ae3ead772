// internal/server/server.go
package server

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"tracker/internal/middleware"
	"tracker/internal/service"
	"tracker/pkg/auth"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server wires the HTTP surface: routes, session gate, template rendering.
type Server struct {
	echo        *echo.Echo
	authService *service.AuthService
	taskService *service.TaskService
	sessions    *auth.SessionManager
	sessionAuth *middleware.SessionAuth
}

func New(authService *service.AuthService, taskService *service.TaskService, sessions *auth.SessionManager) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Renderer = newRenderer()

	s := &Server{
		echo:        e,
		authService: authService,
		taskService: taskService,
		sessions:    sessions,
		sessionAuth: middleware.NewSessionAuth(sessions),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	e := s.echo

	e.GET("/", s.home)
	e.GET("/register", s.registerForm)
	e.POST("/register", s.register)
	e.GET("/login", s.loginForm)
	e.POST("/login", s.login)

	protected := e.Group("", s.sessionAuth.Require())
	protected.GET("/dashboard", s.dashboard)
	protected.POST("/dashboard", s.createTask)
	protected.GET("/complete/:id", s.completeTask)
	protected.GET("/logout", s.logout)
}

// Start begins serving on the given port. Blocks until the server stops.
func (s *Server) Start(port string) error {
	return s.echo.Start(":" + port)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying router, used by tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

type renderer struct {
	templates *template.Template
}

func newRenderer() *renderer {
	return &renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
