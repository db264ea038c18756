package dto

import "github.com/shopspring/decimal"

// Master-data CRUD payloads: products, boxes, suppliers, trucks, employees.
// Pagination follows the page/limit query convention everywhere.

type Pagination struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

type PageFilter struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// ── Product ───────────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Designation   string          `json:"designation" validate:"required"`
	Genre         string          `json:"genre" validate:"required"`
	PriceUnite    decimal.Decimal `json:"priceUnite" validate:"min=0"`
	CapacityByBox int             `json:"capacityByBox" validate:"min=0"`
	BoxID         *uint           `json:"box_id"`
}

type UpdateProductRequest struct {
	Designation   string           `json:"designation" validate:"required"`
	Genre         string           `json:"genre" validate:"required"`
	PriceUnite    *decimal.Decimal `json:"priceUnite"`
	CapacityByBox *int             `json:"capacityByBox"`
	BoxID         *uint            `json:"box_id"`
}

type ProductResponse struct {
	ID            uint            `json:"id"`
	Designation   string          `json:"designation"`
	Genre         string          `json:"genre"`
	PriceUnite    decimal.Decimal `json:"priceUnite"`
	CapacityByBox int             `json:"capacityByBox"`
	Stock         int             `json:"stock"`
	UniteInStock  int             `json:"uniteInStock"`
	BoxID         *uint           `json:"box_id,omitempty"`
}

type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

// PriceResponse is the redis-cached price-check payload.
type PriceResponse struct {
	ProductID     uint            `json:"product_id"`
	Designation   string          `json:"designation"`
	PriceUnite    decimal.Decimal `json:"priceUnite"`
	CapacityByBox int             `json:"capacityByBox"`
}

// ── Box ───────────────────────────────────────────────────────────────────────

type CreateBoxRequest struct {
	Designation string `json:"designation" validate:"required"`
	Capacity    int    `json:"capacity" validate:"min=0"`
	InStock     int    `json:"inStock" validate:"min=0"`
	Empty       int    `json:"empty" validate:"min=0"`
}

type UpdateBoxRequest struct {
	Designation *string `json:"designation"`
	Capacity    *int    `json:"capacity"`
}

type BoxResponse struct {
	ID          uint   `json:"id"`
	Designation string `json:"designation"`
	Capacity    int    `json:"capacity"`
	InStock     int    `json:"inStock"`
	Empty       int    `json:"empty"`
	Sent        int    `json:"sent"`
}

type BoxListResponse struct {
	Boxes      []BoxResponse `json:"boxes"`
	Pagination Pagination    `json:"pagination"`
}

// ── Supplier ──────────────────────────────────────────────────────────────────

type SupplierRequest struct {
	Name    string  `json:"name" validate:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type SupplierResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

type SupplierListResponse struct {
	Suppliers  []SupplierResponse `json:"suppliers"`
	Pagination Pagination         `json:"pagination"`
}

// ── Truck ─────────────────────────────────────────────────────────────────────

type TruckRequest struct {
	Matricule string `json:"matricule" validate:"required"`
	Capacity  int    `json:"capacity" validate:"min=0"`
}

type TruckResponse struct {
	Matricule string `json:"matricule"`
	Capacity  int    `json:"capacity"`
}

// ── Employee ──────────────────────────────────────────────────────────────────

type EmployeeRequest struct {
	CIN       string          `json:"cin" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Role      string          `json:"role" validate:"required,oneof=driver seller assistant admin"`
	SalaryFix decimal.Decimal `json:"salary_fix" validate:"min=0"`
}

type EmployeeResponse struct {
	CIN       string          `json:"cin"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	SalaryFix decimal.Decimal `json:"salary_fix"`
}

type EmployeeListResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Pagination Pagination         `json:"pagination"`
}
