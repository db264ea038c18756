package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Charge is an operating cost, either standalone or created by a trip finish.
type Charge struct {
	ID        uint            `gorm:"primaryKey"`
	Type      string          `gorm:"not null;uniqueIndex:idx_charge_type_date"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Date      time.Time       `gorm:"not null;uniqueIndex:idx_charge_type_date"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Charge) TableName() string { return "charges" }
