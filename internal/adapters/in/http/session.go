package http

import (
	"errors"
	"net/http"
	"time"

	"moving/internal/core/application/controller"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const sessionCookie = "moving_session"

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

// loadSession returns the stored session named by the request cookie, or a
// new one when the cookie is missing, malformed or expired.
func (s *Server) loadSession(c echo.Context) (controller.Session, error) {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return controller.NewSession(), nil
	}
	token, err := kernel.UUIDFromString(cookie.Value)
	if err != nil {
		return controller.NewSession(), nil
	}

	state, err := s.store.Load(c.Request().Context(), token)
	if errors.Is(err, ports.ErrSessionNotFound) {
		return controller.NewSession(), nil
	}
	if err != nil {
		return controller.Session{}, err
	}
	return controller.Session{Token: token, Draft: state.Draft, Quote: state.Quote}, nil
}

// storeSession persists the session a result carries, or drops it together
// with the cookie when the result discards it.
func (s *Server) storeSession(c echo.Context, previous kernel.UUID, res controller.Result) error {
	ctx := c.Request().Context()

	if res.Discard {
		if err := s.store.Delete(ctx, previous); err != nil {
			return err
		}
		c.SetCookie(&http.Cookie{
			Name:     sessionCookie,
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   s.cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})
		return nil
	}

	state := ports.SessionState{Draft: res.Session.Draft, Quote: res.Session.Quote}
	if err := s.store.Save(ctx, res.Session.Token, state); err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    res.Session.Token.String(),
		Path:     "/",
		MaxAge:   int(s.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
