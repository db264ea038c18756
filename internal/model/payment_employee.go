package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentEmployee is the monthly payroll snapshot for one employee. Total is
// the fixed salary at computation time, Credit the trip-driven commission
// (received minus expected over the month's trips as seller). One payment per
// employee per month/year.
type PaymentEmployee struct {
	ID          uint            `gorm:"primaryKey"`
	EmployeeCIN string          `gorm:"column:employee_cin;not null;uniqueIndex:idx_payment_period"`
	Month       int             `gorm:"not null;uniqueIndex:idx_payment_period"`
	Year        int             `gorm:"not null;uniqueIndex:idx_payment_period"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Credit      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	NetPay      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Status      string          `gorm:"not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Employee *Employee `gorm:"foreignKey:EmployeeCIN;references:CIN"`
}

func (PaymentEmployee) TableName() string { return "payment_employees" }
