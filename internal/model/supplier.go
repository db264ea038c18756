package model

import "time"

// Supplier is a beverage wholesaler the warehouse buys from.
type Supplier struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Address   *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Supplier) TableName() string { return "suppliers" }
