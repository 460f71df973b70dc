package draft

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"moving/internal/core/domain/model/region"

	"github.com/go-playground/validator/v10"
)

// Scope selects which part of the draft a check covers.
type Scope int

const (
	ScopeMove Scope = iota + 1
	ScopeCustomer
	ScopeFull
)

func (s Scope) String() string {
	switch s {
	case ScopeMove:
		return "move"
	case ScopeCustomer:
		return "customer"
	case ScopeFull:
		return "full"
	default:
		return "unknown"
	}
}

// Violation is one failed field rule.
type Violation struct {
	Field  string
	Reason string
}

// Outcome is the result of checking a draft. It is recomputed on every
// submission and never stored.
type Outcome struct {
	violations []Violation
}

func (o Outcome) HasErrors() bool {
	return len(o.violations) > 0
}

// Violations returns a copy of all violations in check order.
func (o Outcome) Violations() []Violation {
	return append([]Violation(nil), o.violations...)
}

// Reasons returns the reasons recorded against field.
func (o Outcome) Reasons(field string) []string {
	var reasons []string
	for _, v := range o.violations {
		if v.Field == field {
			reasons = append(reasons, v.Reason)
		}
	}
	return reasons
}

// Has reports whether field has at least one violation.
func (o Outcome) Has(field string) bool {
	return len(o.Reasons(field)) > 0
}

func (o *Outcome) add(v ...Violation) {
	o.violations = append(o.violations, v...)
}

// Rules applies the field constraints declared on Move and Customer plus the
// rules that need outside data: region membership and the current date.
type Rules struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewRules builds the rule set. now supplies "today" for the moving-date rule.
func NewRules(now func() time.Time) *Rules {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("form"); name != "" && name != "-" {
			return name
		}
		return f.Name
	})

	r := &Rules{validate: v, now: now}
	if err := v.RegisterValidation("notpast", r.notPast); err != nil {
		panic(fmt.Sprintf("register notpast validation: %v", err))
	}
	return r
}

// Check validates the part of d selected by scope.
func (r *Rules) Check(d Draft, regions region.List, scope Scope) Outcome {
	var o Outcome
	if scope == ScopeMove || scope == ScopeFull {
		o.add(r.structViolations(d.Move)...)
		o.add(moveViolations(d.Move, regions, o)...)
	}
	if scope == ScopeCustomer || scope == ScopeFull {
		o.add(r.structViolations(d.Customer)...)
	}
	return o
}

func (r *Rules) structViolations(s any) []Violation {
	err := r.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Field: "", Reason: err.Error()}}
	}

	out := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{Field: fe.Field(), Reason: reason(fe)})
	}
	return out
}

func (r *Rules) notPast(fl validator.FieldLevel) bool {
	date, err := time.Parse(DateLayout, fl.Field().String())
	if err != nil {
		return true
	}
	now := r.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !date.Before(today)
}

func moveViolations(m Move, regions region.List, sofar Outcome) []Violation {
	var out []Violation

	for _, f := range []struct{ name, raw string }{
		{"oldPrefectureId", m.OldPrefectureID},
		{"newPrefectureId", m.NewPrefectureID},
	} {
		if sofar.Has(f.name) {
			continue
		}
		id, err := strconv.Atoi(f.raw)
		if err != nil || !regions.Contains(region.ID(id)) {
			out = append(out, Violation{Field: f.name, Reason: "is not a known prefecture"})
		}
	}

	if !sofar.Has("box") && isBlankOrZero(m.Box) && isBlankOrZero(m.Bed) &&
		isBlankOrZero(m.Bicycle) && isBlankOrZero(m.WashingMachine) {
		out = append(out, Violation{Field: "box", Reason: "at least one item to move is required"})
	}

	return out
}

func isBlankOrZero(raw string) bool {
	n, err := strconv.Atoi(raw)
	return raw == "" || (err == nil && n == 0)
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "number":
		return "must contain digits only"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "notpast":
		return "must not be in the past"
	default:
		return "is invalid"
	}
}
