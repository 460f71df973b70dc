// Package pricingrepo loads the estimate rate tables.
package pricingrepo

import "github.com/shopspring/decimal"

type SettingsDTO struct {
	ID         bool            `gorm:"primaryKey;default:true"`
	PricePerKm decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (SettingsDTO) TableName() string {
	return "pricing_settings"
}

type DistanceDTO struct {
	PrefectureA int             `gorm:"primaryKey;type:smallint"`
	PrefectureB int             `gorm:"primaryKey;type:smallint"`
	Km          decimal.Decimal `gorm:"type:numeric(8,1);not null"`
}

func (DistanceDTO) TableName() string {
	return "distances"
}

type TruckDTO struct {
	MaxBoxes int `gorm:"primaryKey"`
	Price    int `gorm:"not null"`
}

func (TruckDTO) TableName() string {
	return "trucks"
}

type BoxEquivalentDTO struct {
	Item  string `gorm:"primaryKey;type:varchar(32)"`
	Boxes int    `gorm:"not null"`
}

func (BoxEquivalentDTO) TableName() string {
	return "box_equivalents"
}

type SeasonFactorDTO struct {
	Month  int             `gorm:"primaryKey;type:smallint"`
	Factor decimal.Decimal `gorm:"type:numeric(4,2);not null"`
}

func (SeasonFactorDTO) TableName() string {
	return "season_factors"
}

type OptionPriceDTO struct {
	Option string `gorm:"primaryKey;type:varchar(64)"`
	Price  int    `gorm:"not null"`
}

func (OptionPriceDTO) TableName() string {
	return "option_prices"
}
