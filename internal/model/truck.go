package model

import "time"

// Truck is identified by its plate (matricule) — the natural key used by
// trips. Capacity is informational only.
type Truck struct {
	Matricule string `gorm:"primaryKey"`
	Capacity  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Truck) TableName() string { return "trucks" }
