package controller

import "errors"

var (
	// ErrLookupUnavailable means the region list could not be loaded. The
	// request fails as a whole; no screen is rendered with a partial list.
	ErrLookupUnavailable = errors.New("region lookup unavailable")

	// ErrPricingFailure means a draft that passed validation could not be priced.
	ErrPricingFailure = errors.New("pricing failure")

	// ErrRegistrationFailure means the order could not be stored. It is never
	// returned to the caller; the confirm screen is redisplayed with a notice.
	ErrRegistrationFailure = errors.New("registration failure")
)

// RegistrationFailedNotice is shown on the confirm screen when storing the order failed.
const RegistrationFailedNotice = "Your order could not be registered. Please try again."
