package controller

import (
	"moving/internal/core/domain/model/draft"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/region"
	"moving/internal/core/domain/model/wizard"
)

// View is everything a screen needs to render.
type View struct {
	Screen  wizard.Screen
	Draft   draft.Draft
	Regions region.List
	Price   *kernel.Price
	Errors  draft.Outcome

	// Notice is a screen-level message not tied to a field.
	Notice string
	// OrderID is set on the complete screen.
	OrderID kernel.UUID
	// Rejected marks a submission that matched no transition.
	Rejected bool
}

// Result is the outcome of one wizard request.
type Result struct {
	View    View
	Session Session
	// Discard asks the caller to drop the stored session instead of saving Session.
	Discard bool
}
