package services

import (
	"errors"
	"fmt"

	"moving/internal/core/domain/model/draft"
	"moving/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	// ErrRouteIsNotPriced is returned when the distance table has no entry for the route.
	ErrRouteIsNotPriced = errors.New("route is not priced")
	// ErrNoTruckAvailable is returned when the rules define no truck at all.
	ErrNoTruckAvailable = errors.New("no truck available")
	// ErrItemIsNotPriced is returned when cargo of a kind without a box equivalent is moved.
	ErrItemIsNotPriced = errors.New("item is not priced")
)

// EstimateCalculator prices a complete moving request.
//
// The estimate is built from:
//   - distance: route km × PricePerKm
//   - trucks: the cheapest combination of trucks holding every box equivalent
//   - season: distance and truck charges multiplied by the moving month's factor
//   - options: flat fees added after the seasonal factor
//
// The total is rounded down to whole yen.
//
// Example:
//
//	calc := services.NewEstimateCalculator()
//	price, err := calc.Estimate(details, rules)
//	if errors.Is(err, services.ErrRouteIsNotPriced) {
//	    // the rate table is incomplete
//	}
type EstimateCalculator struct{}

func NewEstimateCalculator() EstimateCalculator {
	return EstimateCalculator{}
}

// Estimate returns the price for details under rules. It never returns a
// made-up price: any gap in the rules is an error.
func (c EstimateCalculator) Estimate(details draft.Details, rules PricingRules) (kernel.Price, error) {
	km, ok := rules.distance(details.From, details.To)
	if !ok {
		return kernel.Price{}, fmt.Errorf("%w: %d-%d", ErrRouteIsNotPriced, details.From, details.To)
	}
	distanceCharge := km.Mul(rules.PricePerKm)

	boxes, err := c.boxEquivalents(details.Cargo, rules)
	if err != nil {
		return kernel.Price{}, err
	}
	truckCharge, err := c.truckCharge(boxes, rules)
	if err != nil {
		return kernel.Price{}, err
	}

	total := distanceCharge.
		Add(decimal.NewFromInt(int64(truckCharge))).
		Mul(rules.seasonFactor(details.MovingDate.Month()))

	if details.WashingMachineInstallation {
		fee, ok := rules.OptionPrices[OptionWashingMachineInstallation]
		if !ok {
			return kernel.Price{}, fmt.Errorf("%w: %s", ErrItemIsNotPriced, OptionWashingMachineInstallation)
		}
		total = total.Add(decimal.NewFromInt(int64(fee)))
	}

	return kernel.NewPrice(int(total.Floor().IntPart()))
}

func (c EstimateCalculator) boxEquivalents(cargo draft.Cargo, rules PricingRules) (int, error) {
	boxes := 0
	for item, count := range map[Item]int{
		ItemBox:            cargo.Box,
		ItemBed:            cargo.Bed,
		ItemBicycle:        cargo.Bicycle,
		ItemWashingMachine: cargo.WashingMachine,
	} {
		if count == 0 {
			continue
		}
		per, ok := rules.BoxEquivalents[item]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrItemIsNotPriced, item)
		}
		boxes += per * count
	}
	return boxes, nil
}

// truckCharge fills as many of the largest truck as needed, then the smallest
// truck that holds the remainder.
func (c EstimateCalculator) truckCharge(boxes int, rules PricingRules) (int, error) {
	trucks := rules.trucksBySize()
	if len(trucks) == 0 {
		return 0, ErrNoTruckAvailable
	}
	if boxes == 0 {
		return 0, nil
	}

	largest := trucks[len(trucks)-1]
	if largest.MaxBoxes <= 0 {
		return 0, ErrNoTruckAvailable
	}
	charge := (boxes / largest.MaxBoxes) * largest.Price
	remainder := boxes % largest.MaxBoxes
	if remainder == 0 {
		return charge, nil
	}

	for _, t := range trucks {
		if t.MaxBoxes >= remainder {
			return charge + t.Price, nil
		}
	}
	return charge + largest.Price, nil
}
