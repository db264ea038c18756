package dto

import "github.com/shopspring/decimal"

type CreateChargeRequest struct {
	Type   string          `json:"type" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
	Date   string          `json:"date" validate:"required"`
}

type UpdateChargeRequest struct {
	Type   *string          `json:"type"`
	Amount *decimal.Decimal `json:"amount"`
	Date   *string          `json:"date"`
}

type ChargeResponse struct {
	ID     uint            `json:"id"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

type ChargeListResponse struct {
	Charges    []ChargeResponse `json:"charges"`
	Pagination Pagination       `json:"pagination"`
}
