package model

import "time"

// Stock movement reasons as stored in the reason column.
const (
	MovementPurchase   = "purchase"
	MovementTripStart  = "trip_start"
	MovementTripFinish = "trip_finish"
	MovementEmptyTruck = "empty_truck"
	MovementAdjustment = "adjustment"
)

// StockMovement records every ledger mutation on a product or box row, with
// the reason and the counters before and after. Written inside the same
// transaction as the mutation it describes.
type StockMovement struct {
	ID         uint   `gorm:"primaryKey"`
	EntityKind string `gorm:"not null;index"` // "product" | "box"
	EntityID   uint   `gorm:"not null;index"`
	Reason     string `gorm:"not null"`
	BoxDelta   int    `gorm:"not null;default:0"`
	UnitDelta  int    `gorm:"not null;default:0"`
	ReferenceID *uint // purchase or trip id when applicable
	CreatedAt  time.Time
}

func (StockMovement) TableName() string { return "stock_movements" }
