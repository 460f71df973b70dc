package pricingrepo

import (
	"context"
	"errors"
	"time"

	"moving/internal/core/domain/model/region"
	"moving/internal/core/domain/services"
	"moving/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPricingRuleRepository implements ports.PricingRuleRepository.
type GormPricingRuleRepository struct {
	db *gorm.DB
}

func NewGormPricingRuleRepository(db *gorm.DB) *GormPricingRuleRepository {
	return &GormPricingRuleRepository{db: db}
}

// Load reads all rate tables in one read-only transaction so the snapshot is consistent.
func (r *GormPricingRuleRepository) Load(ctx context.Context) (services.PricingRules, error) {
	var rules services.PricingRules

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var settings SettingsDTO
		if err := tx.First(&settings).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("pricing settings", "singleton")
			}
			return err
		}

		var (
			distances []DistanceDTO
			trucks    []TruckDTO
			boxes     []BoxEquivalentDTO
			seasons   []SeasonFactorDTO
			options   []OptionPriceDTO
		)
		for _, dst := range []any{&distances, &trucks, &boxes, &seasons, &options} {
			if err := tx.Find(dst).Error; err != nil {
				return err
			}
		}

		rules = toRules(settings, distances, trucks, boxes, seasons, options)
		return nil
	})
	if err != nil {
		return services.PricingRules{}, err
	}

	return rules, nil
}

func toRules(
	settings SettingsDTO,
	distances []DistanceDTO,
	trucks []TruckDTO,
	boxes []BoxEquivalentDTO,
	seasons []SeasonFactorDTO,
	options []OptionPriceDTO,
) services.PricingRules {
	rules := services.PricingRules{
		PricePerKm:     settings.PricePerKm,
		Distances:      make(map[services.Route]decimal.Decimal, len(distances)),
		BoxEquivalents: make(map[services.Item]int, len(boxes)),
		Trucks:         make([]services.Truck, 0, len(trucks)),
		SeasonFactors:  make(map[time.Month]decimal.Decimal, len(seasons)),
		OptionPrices:   make(map[services.Option]int, len(options)),
	}

	for _, d := range distances {
		rules.Distances[services.NewRoute(region.ID(d.PrefectureA), region.ID(d.PrefectureB))] = d.Km
	}
	for _, t := range trucks {
		rules.Trucks = append(rules.Trucks, services.Truck{MaxBoxes: t.MaxBoxes, Price: t.Price})
	}
	for _, b := range boxes {
		rules.BoxEquivalents[services.Item(b.Item)] = b.Boxes
	}
	for _, s := range seasons {
		rules.SeasonFactors[time.Month(s.Month)] = s.Factor
	}
	for _, o := range options {
		rules.OptionPrices[services.Option(o.Option)] = o.Price
	}

	return rules
}
