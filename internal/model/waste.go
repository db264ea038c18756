package model

import "time"

// Waste is the standing ledger of spoiled stock, keyed by product and cause.
// Quantity accumulates when trips declare spoilage and decreases when the
// supplier takes spoiled goods back during a purchase. Rows are never deleted.
type Waste struct {
	ProductID uint   `gorm:"primaryKey;autoIncrement:false"`
	Type      string `gorm:"primaryKey"`
	Qtt       int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (Waste) TableName() string { return "wastes" }
