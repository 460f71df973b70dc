// Package orderrepo persists registered orders in the orders table.
package orderrepo

import (
	"time"

	"moving/internal/core/domain/model/draft"
	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/order"
	"moving/internal/core/domain/model/region"

	"github.com/google/uuid"
)

// OrderDTO is the row layout of the orders table.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	IdempotencyKey string     `gorm:"type:char(64);uniqueIndex:orders_idempotency_key_idx;not null"`
	Customer       ContactDTO `gorm:"embedded;embeddedPrefix:customer_"`

	FromPrefectureID int    `gorm:"type:smallint;not null"`
	FromAddress      string `gorm:"type:varchar(100);not null"`
	ToPrefectureID   int    `gorm:"type:smallint;not null"`
	ToAddress        string `gorm:"type:varchar(100);not null"`

	MovingDate time.Time `gorm:"type:date;not null"`
	Cargo      CargoDTO  `gorm:"embedded;embeddedPrefix:cargo_"`

	WashingMachineInstallation bool `gorm:"not null;default:false"`

	Price     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ContactDTO struct {
	Name  string `gorm:"type:varchar(50);not null"`
	Kana  string `gorm:"type:varchar(50);not null"`
	Tel   string `gorm:"type:varchar(11);not null"`
	Email string `gorm:"type:varchar(100);not null"`
}

type CargoDTO struct {
	Box            int `gorm:"not null;default:0"`
	Bed            int `gorm:"not null;default:0"`
	Bicycle        int `gorm:"not null;default:0"`
	WashingMachine int `gorm:"not null;default:0"`
}

func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()
	return OrderDTO{
		ID:             o.ID().Bytes(),
		IdempotencyKey: o.IdempotencyKey(),
		Customer: ContactDTO{
			Name:  d.Contact.Name,
			Kana:  d.Contact.Kana,
			Tel:   d.Contact.Tel,
			Email: d.Contact.Email,
		},
		FromPrefectureID: int(d.From),
		FromAddress:      d.FromAddress,
		ToPrefectureID:   int(d.To),
		ToAddress:        d.ToAddress,
		MovingDate:       d.MovingDate,
		Cargo: CargoDTO{
			Box:            d.Cargo.Box,
			Bed:            d.Cargo.Bed,
			Bicycle:        d.Cargo.Bicycle,
			WashingMachine: d.Cargo.WashingMachine,
		},
		WashingMachineInstallation: d.WashingMachineInstallation,
		Price:                      o.Price().Yen(),
		CreatedAt:                  o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	y, m, day := dto.MovingDate.Date()
	details := draft.Details{
		Contact: draft.Contact{
			Name:  dto.Customer.Name,
			Kana:  dto.Customer.Kana,
			Tel:   dto.Customer.Tel,
			Email: dto.Customer.Email,
		},
		From:        region.ID(dto.FromPrefectureID),
		FromAddress: dto.FromAddress,
		To:          region.ID(dto.ToPrefectureID),
		ToAddress:   dto.ToAddress,
		MovingDate:  time.Date(y, m, day, 0, 0, 0, 0, time.UTC),
		Cargo: draft.Cargo{
			Box:            dto.Cargo.Box,
			Bed:            dto.Cargo.Bed,
			Bicycle:        dto.Cargo.Bicycle,
			WashingMachine: dto.Cargo.WashingMachine,
		},
		WashingMachineInstallation: dto.WashingMachineInstallation,
	}

	return order.RestoreOrder(id, details, price, dto.IdempotencyKey, dto.CreatedAt)
}
