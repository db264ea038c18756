package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee roles as stored in the role column.
const (
	RoleDriver    = "driver"
	RoleSeller    = "seller"
	RoleAssistant = "assistant"
	RoleAdmin     = "admin"
)

// Employee is identified by the national ID card number (CIN).
type Employee struct {
	CIN       string          `gorm:"primaryKey;column:cin"`
	Name      string          `gorm:"not null"`
	Role      string          `gorm:"not null"`
	SalaryFix decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string { return "employees" }
