package ports

import (
	"context"

	"moving/internal/core/domain/services"
)

// PricingRuleRepository loads the rate tables the estimate calculator runs on.
type PricingRuleRepository interface {
	Load(ctx context.Context) (services.PricingRules, error)
}
