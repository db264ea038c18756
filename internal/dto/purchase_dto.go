package dto

import "github.com/shopspring/decimal"

type PurchaseProductLine struct {
	ProductID uint            `json:"product_id" validate:"required"`
	Qtt       int             `json:"qtt" validate:"min=0"`
	QttUnite  int             `json:"qttUnite" validate:"min=0"`
	Price     decimal.Decimal `json:"price" validate:"min=0"`
}

type PurchaseBoxLine struct {
	BoxID  uint `json:"box_id" validate:"required"`
	QttIn  int  `json:"qttIn" validate:"min=0"`
	QttOut int  `json:"qttOut" validate:"min=0"`
}

type PurchaseWasteLine struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Qtt       int    `json:"qtt" validate:"gt=0"`
}

type CreatePurchaseRequest struct {
	SupplierID       uint                  `json:"supplier_id" validate:"required"`
	Date             string                `json:"date" validate:"required"`
	PurchaseProducts []PurchaseProductLine `json:"purchaseProducts" validate:"required,dive"`
	PurchaseBoxes    []PurchaseBoxLine     `json:"purchaseBoxes" validate:"required,dive"`
	PurchaseWaste    []PurchaseWasteLine   `json:"purchaseWaste" validate:"omitempty,dive"`
}

type PurchaseFilter struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	SupplierID uint   `form:"supplier_id"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	TotalMin   string `form:"total_min"`
	TotalMax   string `form:"total_max"`
	Search     string `form:"search"`
}

type PurchaseProductResponse struct {
	ProductID   uint            `json:"product_id"`
	Designation string          `json:"designation"`
	Qtt         int             `json:"qtt"`
	QttUnite    int             `json:"qttUnite"`
	Price       decimal.Decimal `json:"price"`
}

type PurchaseBoxResponse struct {
	BoxID       uint   `json:"box_id"`
	Designation string `json:"designation"`
	QttIn       int    `json:"qttIn"`
	QttOut      int    `json:"qttOut"`
}

type PurchaseWasteResponse struct {
	ProductID uint   `json:"product_id"`
	Type      string `json:"type"`
	Qtt       int    `json:"qtt"`
}

type PurchaseResponse struct {
	ID               uint                      `json:"id"`
	SupplierID       uint                      `json:"supplier_id"`
	SupplierName     string                    `json:"supplier_name"`
	Date             string                    `json:"date"`
	Total            decimal.Decimal           `json:"total"`
	PurchaseProducts []PurchaseProductResponse `json:"purchaseProducts"`
	PurchaseBoxes    []PurchaseBoxResponse     `json:"purchaseBoxes"`
	PurchaseWaste    []PurchaseWasteResponse   `json:"purchaseWaste,omitempty"`
}

type PurchaseListResponse struct {
	Purchases   []PurchaseResponse `json:"purchases"`
	TotalItems  int64              `json:"totalItems"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
}
