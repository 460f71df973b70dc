// Package region holds the prefecture reference data offered as moving origin
// and destination.
package region

import (
	"errors"
	"fmt"
	"strings"

	"moving/internal/pkg/errs"
	"moving/internal/pkg/guard"
)

const (
	// MinID and MaxID bound the JIS X 0401 prefecture codes (Hokkaido..Okinawa).
	MinID ID = 1
	MaxID ID = 47
)

var ErrRegionIsNotConstructed = errors.New("Region must be created via NewRegion constructor")

// ID is a prefecture code.
type ID int

// Region is an immutable (code, name) pair.
type Region struct { //nolint:recvcheck //using for validation
	id    ID
	name  string
	guard guard.ConstructorGuard
}

// NewRegion validates the code range and requires a non-blank name.
func NewRegion(id ID, name string) (Region, error) {
	r := Region{guard: guard.NewConstructorGuard()}
	if err := errors.Join(r.setID(id), r.setName(name)); err != nil {
		return Region{}, err
	}
	return r, nil
}

func (r Region) Validate() error {
	return r.guard.Validate(ErrRegionIsNotConstructed)
}

func (r Region) ID() ID {
	return r.id
}

func (r Region) Name() string {
	return r.name
}

func (r Region) String() string {
	return fmt.Sprintf("%02d %s", r.id, r.name)
}

func (r *Region) setID(id ID) error {
	if id < MinID || id > MaxID {
		return errs.NewValueIsOutOfRangeError("prefectureId", int(id), int(MinID), int(MaxID))
	}
	r.id = id
	return nil
}

func (r *Region) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("prefectureName")
	}
	r.name = name
	return nil
}

// List is the ordered region sequence returned by a RegionDirectory.
type List []Region

// Contains reports whether id is one of the listed regions.
func (l List) Contains(id ID) bool {
	_, ok := l.Find(id)
	return ok
}

// Find returns the region with the given id.
func (l List) Find(id ID) (Region, bool) {
	for _, r := range l {
		if r.id == id {
			return r, true
		}
	}
	return Region{}, false
}
