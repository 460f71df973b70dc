// Package queries contains read operations. Handlers query the database or
// read-side ports directly and return read models, never mutating state.
package queries

import (
	"errors"

	"moving/internal/pkg/guard"
)

var ErrListRegionsQueryIsNotConstructed = errors.New(
	"ListRegionsQuery must be created via NewListRegionsQuery constructor",
)

// ListRegionsQuery asks for every prefecture offered by the wizard, ordered by code.
type ListRegionsQuery struct {
	guard guard.ConstructorGuard
}

func NewListRegionsQuery() ListRegionsQuery {
	return ListRegionsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListRegionsQuery) Validate() error {
	return q.guard.Validate(ErrListRegionsQueryIsNotConstructed)
}
