package model

import "time"

// Box is a reusable crate type, tracked by count not by serial id.
// InStock counts crates in the warehouse, Sent counts crates currently out
// with trucks, Empty counts empty crates. Empty is an independent counter:
// the canonical trip-finish rule (inStock += qttIn, empty += qttIn,
// sent -= qttIn) allows empty to exceed inStock after a partial return.
type Box struct {
	ID          uint   `gorm:"primaryKey"`
	Designation string `gorm:"uniqueIndex;not null"`
	Capacity    int    `gorm:"not null;default:0"`
	InStock     int    `gorm:"not null;default:0"`
	Empty       int    `gorm:"not null;default:0"`
	Sent        int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Box) TableName() string { return "boxes" }
