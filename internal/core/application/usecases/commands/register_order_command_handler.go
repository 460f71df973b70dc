package commands

import (
	"context"
	"errors"
	"time"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/order"
	"moving/internal/core/ports"
)

// RegisterOrderCommandHandler stores a confirmed estimate as an order.
//
// Example:
//
//	handler := NewRegisterOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
type RegisterOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewRegisterOrderCommandHandler(uowFactory OrderUoWFactory) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle registers the order inside one transaction and returns its id.
// When an order with the same idempotency key already exists, the id of the
// stored order is returned instead and nothing new is written.
func (h RegisterOrderCommandHandler) Handle(ctx context.Context, cmd RegisterOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), cmd.Details(), cmd.Price(), cmd.IdempotencyKey(), h.now())
	if err != nil {
		return kernel.UUID{}, err
	}

	err = h.add(ctx, o)
	if errors.Is(err, ports.ErrDuplicateOrder) {
		return h.existing(ctx, cmd.IdempotencyKey())
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}

func (h RegisterOrderCommandHandler) add(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// existing runs outside a transaction: the one that hit the unique violation
// is already aborted.
func (h RegisterOrderCommandHandler) existing(ctx context.Context, key string) (kernel.UUID, error) {
	stored, err := h.uowFactory.Create().OrderRepository().GetByIdempotencyKey(ctx, key)
	if err != nil {
		return kernel.UUID{}, err
	}
	return stored.ID(), nil
}
