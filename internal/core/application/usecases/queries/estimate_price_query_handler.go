package queries

import (
	"context"
	"fmt"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/services"
	"moving/internal/core/ports"
)

// EstimatePriceQueryHandler prices a request against the current rate tables.
type EstimatePriceQueryHandler struct {
	rules      ports.PricingRuleRepository
	calculator services.EstimateCalculator
}

func NewEstimatePriceQueryHandler(rules ports.PricingRuleRepository) EstimatePriceQueryHandler {
	return EstimatePriceQueryHandler{
		rules:      rules,
		calculator: services.NewEstimateCalculator(),
	}
}

// Handle loads a fresh rule snapshot and runs the calculator on it.
// It never returns a zero Price together with a nil error for an unpriceable request.
func (h EstimatePriceQueryHandler) Handle(ctx context.Context, query EstimatePriceQuery) (kernel.Price, error) {
	if err := query.Validate(); err != nil {
		return kernel.Price{}, err
	}

	rules, err := h.rules.Load(ctx)
	if err != nil {
		return kernel.Price{}, fmt.Errorf("load pricing rules: %w", err)
	}

	return h.calculator.Estimate(query.Details(), rules)
}
