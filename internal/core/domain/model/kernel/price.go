package kernel

import (
	"errors"
	"strconv"

	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when a zero-value Price is used.
var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice constructor")

// Price is an estimate amount in whole yen. The zero value is not a valid
// price, so a missing estimate can never be mistaken for a free move.
type Price struct { //nolint:recvcheck //using for validation
	yen   int
	guard guard.ConstructorGuard
}

// NewPrice builds a Price. Negative amounts are rejected.
func NewPrice(yen int) (Price, error) {
	if yen < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", errors.New(strconv.Itoa(yen)+" is negative"))
	}
	return Price{yen: yen, guard: guard.NewConstructorGuard()}, nil
}

// MustNewPrice is NewPrice for literals known to be valid; it panics otherwise.
func MustNewPrice(yen int) Price {
	p, err := NewPrice(yen)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Yen returns the amount.
func (p Price) Yen() int {
	return p.yen
}

func (p Price) IsEqual(other Price) bool {
	return p.guard == other.guard && p.yen == other.yen
}

// String formats the amount with thousands separators, e.g. "¥50,000".
func (p Price) String() string {
	digits := strconv.Itoa(p.yen)
	out := make([]byte, 0, len(digits)+len(digits)/3+2)
	for i := range len(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return "¥" + string(out)
}
