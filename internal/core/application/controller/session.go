package controller

import (
	"moving/internal/core/domain/model/draft"
	"moving/internal/core/domain/model/kernel"
)

// Session is one customer's wizard context between two requests.
type Session struct {
	Token kernel.UUID
	Draft draft.Draft
	// Quote is the last price shown for Draft. It is cleared whenever the
	// draft changes.
	Quote *kernel.Price
}

// NewSession starts an empty wizard interaction under a fresh token.
func NewSession() Session {
	return Session{Token: kernel.NewUUID()}
}

func (s Session) apply(form draft.Form) Session {
	updated := form.ApplyTo(s.Draft)
	if updated != s.Draft {
		s.Quote = nil
	}
	s.Draft = updated
	return s
}

func (s Session) quoted(p kernel.Price) Session {
	s.Quote = &p
	return s
}
