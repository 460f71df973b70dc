package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"moving/internal/core/application/controller"
	"moving/internal/core/domain/model/draft"
	"moving/internal/core/domain/model/wizard"
	"moving/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Wizard is the state machine behind the screens.
type Wizard interface {
	Top(s controller.Session) controller.Result
	Enter(ctx context.Context, s controller.Session, screen wizard.Screen) (controller.Result, error)
	Submit(
		ctx context.Context,
		s controller.Session,
		endpoint wizard.Endpoint,
		actions []string,
		form draft.Form,
	) (controller.Result, error)
}

// Server handles the wizard screens. It translates requests into wizard calls
// and keeps the session between them.
type Server struct {
	wizard Wizard
	store  ports.SessionStore
	cookie CookieConfig
	logger *slog.Logger
}

// NewServer creates a new HTTP server over the wizard and the session store.
func NewServer(w Wizard, store ports.SessionStore, cookie CookieConfig, logger *slog.Logger) *Server {
	return &Server{
		wizard: w,
		store:  store,
		cookie: cookie,
		logger: logger.With("component", "http"),
	}
}

// Register mounts the wizard routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/", s.Top)
	e.GET("/input-easy", s.enter(wizard.Input))
	e.GET("/input-detail", s.enter(wizard.InputDetail))
	e.POST("/submit", s.submit(wizard.EndpointSubmit))
	e.POST("/personal", s.submit(wizard.EndpointPersonal))
	e.POST("/order", s.submit(wizard.EndpointOrder))
}

// Top handles GET / - the landing page. The session is left as it is.
func (s *Server) Top(c echo.Context) error {
	sess, err := s.loadSession(c)
	if err != nil {
		return err
	}
	return s.render(c, s.wizard.Top(sess).View)
}

// enter handles GET /input-easy and /input-detail.
func (s *Server) enter(screen wizard.Screen) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := s.loadSession(c)
		if err != nil {
			return err
		}

		res, err := s.wizard.Enter(c.Request().Context(), sess, screen)
		if err != nil {
			return err
		}
		if err = s.storeSession(c, sess.Token, res); err != nil {
			return err
		}
		return s.render(c, res.View)
	}
}

// submit handles POST /submit, /personal and /order.
func (s *Server) submit(endpoint wizard.Endpoint) echo.HandlerFunc {
	return func(c echo.Context) error {
		values, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Malformed form").SetInternal(err)
		}

		sess, err := s.loadSession(c)
		if err != nil {
			return err
		}

		res, err := s.wizard.Submit(c.Request().Context(), sess, endpoint, actions(values), decodeForm(values))
		if err != nil {
			return err
		}
		if err = s.storeSession(c, sess.Token, res); err != nil {
			return err
		}
		return s.render(c, res.View)
	}
}

func (s *Server) render(c echo.Context, view controller.View) error {
	status := http.StatusOK
	if view.Rejected {
		status = http.StatusBadRequest
	}
	return c.Render(status, view.Screen.Template(), view)
}

// errorPage is the data of the generic failure screen.
type errorPage struct {
	Notice  string
	Message string
}

// ErrorHandler renders failures as the error screen. No partial screen is
// ever shown: the wizard returns either a complete view or an error.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "An unexpected error occurred. Please try again later."

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		case errors.Is(err, controller.ErrLookupUnavailable):
			status = http.StatusServiceUnavailable
			message = "The prefecture list is temporarily unavailable. Please try again later."
		case errors.Is(err, controller.ErrPricingFailure):
			message = "The estimate could not be calculated. Please try again later."
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"error", err)
		}

		if renderErr := c.Render(status, wizard.Unknown.Template(), errorPage{Message: message}); renderErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to render error page", "error", renderErr)
			_ = c.String(status, message)
		}
	}
}
