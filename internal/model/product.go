package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable beverage reference. Stock is tracked in two
// dimensions: whole boxes on hand (Stock) and loose units (UniteInStock).
// Both counters are mutated exclusively through the inventory ledger.
type Product struct {
	ID            uint            `gorm:"primaryKey"`
	Designation   string          `gorm:"uniqueIndex;not null"`
	Genre         string          `gorm:"not null"`
	PriceUnite    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CapacityByBox int             `gorm:"not null;default:0"`
	Stock         int             `gorm:"not null;default:0"`
	UniteInStock  int             `gorm:"not null;default:0"`
	BoxID         *uint           `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Box *Box `gorm:"foreignKey:BoxID"`
}

func (Product) TableName() string { return "products" }
