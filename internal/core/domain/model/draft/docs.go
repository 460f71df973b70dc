// Package draft models a customer's in-progress moving request.
//
// A Draft is plain data: the raw field values the wizard has collected so far,
// grouped into the move itself and the customer's personal block. Submitted
// screens arrive as a Form whose present fields overwrite the draft. Rules
// checks a draft against the field constraints and the known region list and
// produces an Outcome. A draft that passes full validation converts to typed
// Details, the only input accepted by pricing and order registration.
package draft
