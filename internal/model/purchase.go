package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records one supplier delivery. Line items are created with the
// purchase in a single transaction and never mutated afterwards; only the
// Total rollup is written once the lines are known.
type Purchase struct {
	ID         uint            `gorm:"primaryKey"`
	SupplierID uint            `gorm:"not null;index"`
	Date       time.Time       `gorm:"not null;index"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Supplier *Supplier         `gorm:"foreignKey:SupplierID"`
	Products []PurchaseProduct `gorm:"foreignKey:PurchaseID"`
	Boxes    []PurchaseBox     `gorm:"foreignKey:PurchaseID"`
	Wastes   []PurchaseWaste   `gorm:"foreignKey:PurchaseID"`
}

func (Purchase) TableName() string { return "purchases" }

// PurchaseProduct is a delivered product line: Qtt whole boxes plus QttUnite
// loose units, bought at Price per unit.
type PurchaseProduct struct {
	ID         uint            `gorm:"primaryKey"`
	PurchaseID uint            `gorm:"not null;index"`
	ProductID  uint            `gorm:"not null;index"`
	Qtt        int             `gorm:"not null;default:0"`
	QttUnite   int             `gorm:"not null;default:0"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt  time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (PurchaseProduct) TableName() string { return "purchase_products" }

// PurchaseBox is a crate-exchange line: QttIn crates delivered by the
// supplier, QttOut empty crates handed back.
type PurchaseBox struct {
	ID         uint `gorm:"primaryKey"`
	PurchaseID uint `gorm:"not null;index"`
	BoxID      uint `gorm:"not null;index"`
	QttIn      int  `gorm:"not null;default:0"`
	QttOut     int  `gorm:"not null;default:0"`
	CreatedAt  time.Time

	Box *Box `gorm:"foreignKey:BoxID"`
}

func (PurchaseBox) TableName() string { return "purchase_boxes" }

// PurchaseWaste is spoiled stock picked up by the supplier during the
// delivery; it decrements the standing waste ledger.
type PurchaseWaste struct {
	ID         uint   `gorm:"primaryKey"`
	PurchaseID uint   `gorm:"not null;index"`
	ProductID  uint   `gorm:"not null;index"`
	Type       string `gorm:"not null"`
	Qtt        int    `gorm:"not null;default:0"`
	CreatedAt  time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (PurchaseWaste) TableName() string { return "purchase_wastes" }
