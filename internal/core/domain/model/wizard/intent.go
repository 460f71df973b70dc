package wizard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedAction is returned when a submission names no known action or
// more than one.
var ErrUnrecognizedAction = errors.New("unrecognized action")

// Intent is the action a submission declares by the button the user pressed.
type Intent int

const (
	NoIntent Intent = iota
	BackToTop
	Confirm
	BackToInput
	Calculate
	BackToConfirm
	CompleteOrder
)

func getIntentParams() map[Intent]string {
	return map[Intent]string{
		BackToTop:     "backToTop",
		Confirm:       "confirm",
		BackToInput:   "backToInput",
		Calculate:     "calculation",
		BackToConfirm: "backToConfirm",
		CompleteOrder: "complete",
	}
}

// Param returns the form parameter (button name) carrying the intent.
func (i Intent) Param() string {
	return getIntentParams()[i]
}

func (i Intent) String() string {
	if p := i.Param(); p != "" {
		return p
	}
	return "none"
}

// ParseIntent picks the single recognized action among the submitted parameter
// names. Unrelated parameters (form fields) are ignored.
func ParseIntent(params []string) (Intent, error) {
	found := NoIntent
	var names []string

	for intent, param := range getIntentParams() {
		for _, p := range params {
			if p == param {
				found = intent
				names = append(names, param)
				break
			}
		}
	}

	switch len(names) {
	case 0:
		return NoIntent, fmt.Errorf("%w: no action submitted", ErrUnrecognizedAction)
	case 1:
		return found, nil
	default:
		return NoIntent, fmt.Errorf("%w: %d actions submitted (%s)",
			ErrUnrecognizedAction, len(names), strings.Join(names, ", "))
	}
}
