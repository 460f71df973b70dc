package services

import (
	"slices"
	"time"

	"moving/internal/core/domain/model/region"

	"github.com/shopspring/decimal"
)

// Item is a kind of cargo priced by its box equivalent.
type Item string

const (
	ItemBox            Item = "box"
	ItemBed            Item = "bed"
	ItemBicycle        Item = "bicycle"
	ItemWashingMachine Item = "washing_machine"
)

// Option is an optional service priced as a flat fee.
type Option string

const (
	OptionWashingMachineInstallation Option = "washing_machine_installation"
)

// Route is an unordered prefecture pair.
type Route struct {
	A region.ID
	B region.ID
}

// NewRoute normalizes the pair so that (a, b) and (b, a) are the same route.
func NewRoute(a, b region.ID) Route {
	if a > b {
		a, b = b, a
	}
	return Route{A: a, B: b}
}

// Truck is one truck size: how many box equivalents it carries and its flat price.
type Truck struct {
	MaxBoxes int
	Price    int
}

// PricingRules is a snapshot of the rate tables used by EstimateCalculator.
type PricingRules struct {
	PricePerKm     decimal.Decimal
	Distances      map[Route]decimal.Decimal
	BoxEquivalents map[Item]int
	Trucks         []Truck
	SeasonFactors  map[time.Month]decimal.Decimal
	OptionPrices   map[Option]int
}

// trucksBySize returns the trucks ordered from smallest to largest capacity.
func (r PricingRules) trucksBySize() []Truck {
	trucks := slices.Clone(r.Trucks)
	slices.SortFunc(trucks, func(a, b Truck) int {
		return a.MaxBoxes - b.MaxBoxes
	})
	return trucks
}

func (r PricingRules) distance(from, to region.ID) (decimal.Decimal, bool) {
	if km, ok := r.Distances[NewRoute(from, to)]; ok {
		return km, true
	}
	if from == to {
		return decimal.Zero, true
	}
	return decimal.Decimal{}, false
}

func (r PricingRules) seasonFactor(month time.Month) decimal.Decimal {
	if f, ok := r.SeasonFactors[month]; ok {
		return f
	}
	return decimal.NewFromInt(1)
}
