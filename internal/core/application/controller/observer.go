package controller

import (
	"time"

	"moving/internal/core/domain/model/wizard"
)

// Observer receives one event per transition and per collaborator call.
// Implementations must be safe for concurrent use.
type Observer interface {
	Transition(endpoint wizard.Endpoint, intent wizard.Intent, to wizard.Screen, rejected bool)
	Priced(elapsed time.Duration, err error)
	Registered(err error)
}

type nopObserver struct{}

func (nopObserver) Transition(wizard.Endpoint, wizard.Intent, wizard.Screen, bool) {}
func (nopObserver) Priced(time.Duration, error)                                    {}
func (nopObserver) Registered(error)                                               {}
