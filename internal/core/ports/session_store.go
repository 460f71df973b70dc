package ports

import (
	"context"
	"errors"

	"moving/internal/core/domain/model/draft"
	"moving/internal/core/domain/model/kernel"
)

// ErrSessionNotFound is returned by SessionStore.Load for unknown or expired tokens.
var ErrSessionNotFound = errors.New("session not found")

// SessionState is what survives between two wizard requests of one customer:
// the draft and, once quoted, the last price shown.
type SessionState struct {
	Draft draft.Draft
	Quote *kernel.Price
}

// SessionStore keeps one SessionState per opaque session token. A token is
// owned by exactly one browser; stores never share state between tokens.
type SessionStore interface {
	Load(ctx context.Context, token kernel.UUID) (SessionState, error)
	Save(ctx context.Context, token kernel.UUID, state SessionState) error
	Delete(ctx context.Context, token kernel.UUID) error
}
