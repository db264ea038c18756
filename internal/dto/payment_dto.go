package dto

import "github.com/shopspring/decimal"

type CreatePaymentRequest struct {
	EmployeeCIN string `json:"employee_cin" validate:"required"`
	Month       int    `json:"month" validate:"required,min=1,max=12"`
	Year        int    `json:"year" validate:"required,min=2000"`
	Status      string `json:"status" validate:"required,oneof=pending paid"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid"`
}

type PaymentResponse struct {
	ID          uint            `json:"id"`
	EmployeeCIN string          `json:"employee_cin"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Total       decimal.Decimal `json:"total"`
	Credit      decimal.Decimal `json:"credit"`
	NetPay      decimal.Decimal `json:"net_pay"`
	Status      string          `json:"status"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}
