// Package ports defines the contracts between the wizard core and its collaborators.
// Adapters under internal/adapters implement them; the core depends only on these
// interfaces.
package ports

import (
	"context"
	"errors"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/order"
)

// ErrDuplicateOrder is returned by OrderRepository.Add when the idempotency key
// is already taken.
var ErrDuplicateOrder = errors.New("order already registered")

// OrderRepository defines the persistence contract for registered orders.
type OrderRepository interface {
	// Add persists a new order. Adding an order whose idempotency key is already
	// stored returns ErrDuplicateOrder.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ErrObjectNotFound when no order matches.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByIdempotencyKey retrieves the order registered under key.
	// Returns errs.ErrObjectNotFound when no order matches.
	GetByIdempotencyKey(ctx context.Context, key string) (*order.Order, error)
}
