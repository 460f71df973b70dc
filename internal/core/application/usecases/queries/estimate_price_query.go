package queries

import (
	"errors"

	"moving/internal/core/domain/model/draft"
	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

var ErrEstimatePriceQueryIsNotConstructed = errors.New(
	"EstimatePriceQuery must be created via NewEstimatePriceQuery constructor",
)

// EstimatePriceQuery asks for the price of a validated moving request.
//
// Example:
//
//	details, err := draft.Complete(d)
//	if err != nil {
//	    return err
//	}
//	query, err := NewEstimatePriceQuery(details)
//	price, err := handler.Handle(ctx, query)
type EstimatePriceQuery struct { //nolint:recvcheck //using for validation
	details draft.Details
	guard   guard.ConstructorGuard
}

func NewEstimatePriceQuery(details draft.Details) (EstimatePriceQuery, error) {
	if details.MovingDate.IsZero() {
		return EstimatePriceQuery{}, errs.NewValueIsRequiredError("movingDate")
	}
	return EstimatePriceQuery{details: details, guard: guard.NewConstructorGuard()}, nil
}

func (q EstimatePriceQuery) Validate() error {
	return q.guard.Validate(ErrEstimatePriceQueryIsNotConstructed)
}

func (q EstimatePriceQuery) Details() draft.Details {
	return q.details
}
