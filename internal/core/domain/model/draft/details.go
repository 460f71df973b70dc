package draft

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"moving/internal/core/domain/model/region"
)

// DateLayout is the wire format of the moving date.
const DateLayout = "2006-01-02"

// ErrDraftIsIncomplete is returned when a draft that did not pass full
// validation is converted to Details. Reaching it is a programming error.
var ErrDraftIsIncomplete = errors.New("draft is incomplete")

// Cargo counts the items to be moved.
type Cargo struct {
	Box            int
	Bed            int
	Bicycle        int
	WashingMachine int
}

// Contact is the customer's personal block in typed form.
type Contact struct {
	Name  string
	Kana  string
	Tel   string
	Email string
}

// Details is a complete, validated draft with typed values.
type Details struct {
	Contact     Contact
	From        region.ID
	FromAddress string
	To          region.ID
	ToAddress   string
	MovingDate  time.Time
	Cargo       Cargo

	WashingMachineInstallation bool
}

// Complete converts a fully validated draft into Details.
func Complete(d Draft) (Details, error) {
	var p parser

	// Positional literals: a field added to Details must be mapped here.
	details := Details{
		Contact{d.Customer.Name, d.Customer.Kana, d.Customer.Tel, d.Customer.Email},
		region.ID(p.atoi("oldPrefectureId", d.Move.OldPrefectureID)),
		d.Move.OldAddress,
		region.ID(p.atoi("newPrefectureId", d.Move.NewPrefectureID)),
		d.Move.NewAddress,
		p.date("movingDate", d.Move.MovingDate),
		Cargo{
			p.count("box", d.Move.Box),
			p.count("bed", d.Move.Bed),
			p.count("bicycle", d.Move.Bicycle),
			p.count("washingMachine", d.Move.WashingMachine),
		},
		d.Move.WashingMachineInstallation,
	}

	if p.err != nil {
		return Details{}, fmt.Errorf("%w: %w", ErrDraftIsIncomplete, p.err)
	}
	if details.Contact.Name == "" || details.Contact.Email == "" || details.Contact.Tel == "" {
		return Details{}, fmt.Errorf("%w: personal block is empty", ErrDraftIsIncomplete)
	}
	return details, nil
}

// Total returns the number of items regardless of kind.
func (c Cargo) Total() int {
	return c.Box + c.Bed + c.Bicycle + c.WashingMachine
}

type parser struct {
	err error
}

func (p *parser) atoi(field, raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.err = errors.Join(p.err, fmt.Errorf("%s: %w", field, err))
	}
	return v
}

func (p *parser) count(field, raw string) int {
	if raw == "" {
		return 0
	}
	return p.atoi(field, raw)
}

func (p *parser) date(field, raw string) time.Time {
	v, err := time.Parse(DateLayout, raw)
	if err != nil {
		p.err = errors.Join(p.err, fmt.Errorf("%s: %w", field, err))
	}
	return v
}
