package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is one truck's single-day delivery run, from loading to settlement.
// IsActive is true while the truck is in the field; a trip closes exactly
// once and never reopens. At most one active trip exists per truck.
type Trip struct {
	ID             uint      `gorm:"primaryKey"`
	TruckMatricule string    `gorm:"not null;index"`
	DriverCIN      string    `gorm:"column:driver_cin;not null"`
	SellerCIN      string    `gorm:"column:seller_cin;not null;index"`
	AssistantCIN   *string   `gorm:"column:assistant_cin"`
	Date           time.Time `gorm:"not null;index"`
	Zone           string    `gorm:"not null"`
	IsActive       bool      `gorm:"not null;default:true;index"`
	WaitedAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ReceivedAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Benefit        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Deff           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Truck     *Truck        `gorm:"foreignKey:TruckMatricule;references:Matricule"`
	Driver    *Employee     `gorm:"foreignKey:DriverCIN;references:CIN"`
	Seller    *Employee     `gorm:"foreignKey:SellerCIN;references:CIN"`
	Assistant *Employee     `gorm:"foreignKey:AssistantCIN;references:CIN"`
	Products  []TripProduct `gorm:"foreignKey:TripID"`
	Boxes     []TripBox     `gorm:"foreignKey:TripID"`
	Wastes    []TripWaste   `gorm:"foreignKey:TripID"`
	Charges   []TripCharge  `gorm:"foreignKey:TripID"`
}

func (Trip) TableName() string { return "trips" }

// TripProduct is a loaded product line. QttOut/QttOutUnite are set at trip
// start; QttReutour/QttReutourUnite and QttVendu are written once at finish.
// QttVendu is expressed in base units via the capacity conversion.
type TripProduct struct {
	ID              uint `gorm:"primaryKey"`
	TripID          uint `gorm:"not null;uniqueIndex:idx_trip_product"`
	ProductID       uint `gorm:"not null;uniqueIndex:idx_trip_product"`
	QttOut          int  `gorm:"not null;default:0"`
	QttOutUnite     int  `gorm:"not null;default:0"`
	QttReutour      int  `gorm:"not null;default:0"`
	QttReutourUnite int  `gorm:"not null;default:0"`
	QttVendu        int  `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (TripProduct) TableName() string { return "trip_products" }

// TripBox is a loaded crate line: QttOut crates out at start, QttIn crates
// physically returned at finish.
type TripBox struct {
	ID        uint `gorm:"primaryKey"`
	TripID    uint `gorm:"not null;uniqueIndex:idx_trip_box"`
	BoxID     uint `gorm:"not null;uniqueIndex:idx_trip_box"`
	QttOut    int  `gorm:"not null;default:0"`
	QttIn     int  `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Box *Box `gorm:"foreignKey:BoxID"`
}

func (TripBox) TableName() string { return "trip_boxes" }

// TripWaste is an audit row for spoilage declared at trip finish. The
// matching standing Waste ledger row is upserted in the same transaction.
type TripWaste struct {
	ID        uint   `gorm:"primaryKey"`
	TripID    uint   `gorm:"not null;index"`
	ProductID uint   `gorm:"not null;index"`
	Type      string `gorm:"not null"`
	Qtt       int    `gorm:"not null;default:0"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (TripWaste) TableName() string { return "trip_wastes" }

// TripCharge joins a trip to a Charge created at finish time.
type TripCharge struct {
	ID        uint            `gorm:"primaryKey"`
	TripID    uint            `gorm:"not null;index"`
	ChargeID  uint            `gorm:"not null;index"`
	Type      string          `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time

	Charge *Charge `gorm:"foreignKey:ChargeID"`
}

func (TripCharge) TableName() string { return "trip_charges" }
