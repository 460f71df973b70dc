package order

import (
	"errors"
	"time"

	"moving/internal/core/domain/model/draft"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/region"
	"moving/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a registered moving request.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Origin and destination are valid prefecture codes
//   - The customer block is present
//   - Price is a constructed value (zero yen allowed, missing price is not)
//   - The idempotency key is not blank
type Order struct {
	id             kernel.UUID
	details        draft.Details
	price          kernel.Price
	idempotencyKey string
	createdAt      time.Time

	isConstructed bool
}

// NewOrder creates an order from validated details and the price quoted for them.
//
// Example:
//
//	details, _ := draft.Complete(d)
//	o, err := order.NewOrder(kernel.NewUUID(), details, price, key, time.Now())
//	if err != nil {
//	    // details or price were not produced by the wizard gate
//	}
func NewOrder(
	id kernel.UUID,
	details draft.Details,
	price kernel.Price,
	idempotencyKey string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setPrice(price),
		o.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage, re-checking invariants.
func RestoreOrder(
	id kernel.UUID,
	details draft.Details,
	price kernel.Price,
	idempotencyKey string,
	createdAt time.Time,
) (*Order, error) {
	return NewOrder(id, details, price, idempotencyKey, createdAt)
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Details returns the confirmed request snapshot.
func (o *Order) Details() draft.Details {
	return o.details
}

func (o *Order) Price() kernel.Price {
	return o.price
}

func (o *Order) IdempotencyKey() string {
	return o.idempotencyKey
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(d draft.Details) error {
	var problems []error
	for name, id := range map[string]region.ID{"from": d.From, "to": d.To} {
		if id < region.MinID || id > region.MaxID {
			problems = append(problems,
				errs.NewValueIsOutOfRangeError(name, int(id), int(region.MinID), int(region.MaxID)))
		}
	}
	if d.Contact.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("customer name"))
	}
	if d.MovingDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("moving date"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}
	o.details = d
	return nil
}

func (o *Order) setPrice(p kernel.Price) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.price = p
	return nil
}

func (o *Order) setIdempotencyKey(key string) error {
	if key == "" {
		return errs.NewValueIsRequiredError("idempotency key")
	}
	o.idempotencyKey = key
	return nil
}
