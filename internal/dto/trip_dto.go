package dto

import "github.com/shopspring/decimal"

// ── Start ─────────────────────────────────────────────────────────────────────

type StartTripProductLine struct {
	ProductID   uint `json:"product_id" validate:"required"`
	QttOut      int  `json:"qttOut" validate:"min=0"`
	QttOutUnite int  `json:"qttOutUnite" validate:"min=0"`
}

type StartTripBoxLine struct {
	BoxID  uint `json:"box_id" validate:"required"`
	QttOut int  `json:"qttOut" validate:"min=0"`
}

type StartTripRequest struct {
	TruckMatricule string                 `json:"truck_matricule" validate:"required"`
	DriverCIN      string                 `json:"driver_cin" validate:"required"`
	SellerCIN      string                 `json:"seller_cin" validate:"required"`
	AssistantCIN   *string                `json:"assistant_cin"`
	Date           string                 `json:"date" validate:"required"`
	Zone           string                 `json:"zone" validate:"required"`
	TripProducts   []StartTripProductLine `json:"tripProducts" validate:"required,min=1,dive"`
	TripBoxes      []StartTripBoxLine     `json:"tripBoxes" validate:"required,min=1,dive"`
}

// ── Finish ────────────────────────────────────────────────────────────────────

type FinishTripProductLine struct {
	ProductID       uint `json:"product_id" validate:"required"`
	QttReutour      int  `json:"qttReutour" validate:"min=0"`
	QttReutourUnite int  `json:"qttReutourUnite" validate:"min=0"`
}

type FinishTripBoxLine struct {
	BoxID uint `json:"box_id" validate:"required"`
	QttIn int  `json:"qttIn" validate:"min=0"`
}

type TripWasteLine struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Qtt       int    `json:"qtt" validate:"gt=0"`
}

type TripChargeLine struct {
	Type   string          `json:"type" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

type FinishTripRequest struct {
	TripProducts   []FinishTripProductLine `json:"tripProducts" validate:"required,min=1,dive"`
	TripBoxes      []FinishTripBoxLine     `json:"tripBoxes" validate:"required,min=1,dive"`
	TripWastes     []TripWasteLine         `json:"tripWastes" validate:"omitempty,dive"`
	TripCharges    []TripChargeLine        `json:"tripCharges" validate:"omitempty,dive"`
	ReceivedAmount decimal.Decimal         `json:"receivedAmount" validate:"min=0"`
}

// ── Transfer ──────────────────────────────────────────────────────────────────

type TransferProductLine struct {
	ProductID     uint `json:"product_id" validate:"required"`
	ExtraQtt      int  `json:"extraQtt" validate:"min=0"`
	ExtraQttUnite int  `json:"extraQttUnite" validate:"min=0"`
}

type TransferBoxLine struct {
	BoxID    uint `json:"box_id" validate:"required"`
	ExtraQtt int  `json:"extraQtt" validate:"min=0"`
}

type TransferTripRequest struct {
	FromTripID   uint                  `json:"from_trip_id" validate:"required"`
	ToTripID     uint                  `json:"to_trip_id" validate:"required"`
	TripProducts []TransferProductLine `json:"tripProducts" validate:"omitempty,dive"`
	TripBoxes    []TransferBoxLine     `json:"tripBoxes" validate:"omitempty,dive"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

type TripProductResponse struct {
	ProductID       uint            `json:"product_id"`
	Designation     string          `json:"designation"`
	PriceUnite      decimal.Decimal `json:"priceUnite"`
	CapacityByBox   int             `json:"capacityByBox"`
	QttOut          int             `json:"qttOut"`
	QttOutUnite     int             `json:"qttOutUnite"`
	QttReutour      int             `json:"qttReutour"`
	QttReutourUnite int             `json:"qttReutourUnite"`
	QttVendu        int             `json:"qttVendu"`
}

type TripBoxResponse struct {
	BoxID       uint   `json:"box_id"`
	Designation string `json:"designation"`
	QttOut      int    `json:"qttOut"`
	QttIn       int    `json:"qttIn"`
}

type TripWasteResponse struct {
	ProductID   uint   `json:"product_id"`
	Designation string `json:"designation"`
	Type        string `json:"type"`
	Qtt         int    `json:"qtt"`
}

type TripChargeResponse struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

type TripResponse struct {
	ID             uint                  `json:"id"`
	TruckMatricule string                `json:"truck_matricule"`
	Driver         string                `json:"driver"`
	Seller         string                `json:"seller"`
	Assistant      *string               `json:"assistant,omitempty"`
	Date           string                `json:"date"`
	Zone           string                `json:"zone"`
	IsActive       bool                  `json:"isActive"`
	WaitedAmount   decimal.Decimal       `json:"waitedAmount"`
	ReceivedAmount decimal.Decimal       `json:"receivedAmount"`
	Benefit        decimal.Decimal       `json:"benefit"`
	Deff           decimal.Decimal       `json:"deff"`
	TripProducts   []TripProductResponse `json:"tripProducts,omitempty"`
	TripBoxes      []TripBoxResponse     `json:"tripBoxes,omitempty"`
	TripWastes     []TripWasteResponse   `json:"tripWastes,omitempty"`
	TripCharges    []TripChargeResponse  `json:"tripCharges,omitempty"`
	TotalCharges   decimal.Decimal       `json:"totalCharges"`
	TotalWastes    int                   `json:"totalWastes"`
}

type TripListResponse struct {
	Trips       []TripResponse `json:"trips"`
	TotalItems  int64          `json:"totalItems"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

type TripFilter struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// LastTruckResponse shows the unsold remainder sitting in a truck after its
// most recent closed trip.
type LastTruckResponse struct {
	Trip         TripResponse          `json:"trip"`
	TripProducts []TripProductResponse `json:"tripProducts"`
	TripBoxes    []TripBoxResponse     `json:"tripBoxes"`
}

// ── Invoice views ─────────────────────────────────────────────────────────────

type InvoiceProductLine struct {
	Designation     string          `json:"designation"`
	QttOut          int             `json:"qttOut"`
	QttOutUnite     int             `json:"qttOutUnite"`
	QttReutour      *int            `json:"qttReutour,omitempty"`
	QttReutourUnite *int            `json:"qttReutourUnite,omitempty"`
	QttVendu        *int            `json:"qttVendu,omitempty"`
	PriceUnite      decimal.Decimal `json:"priceUnite"`
	TotalRevenue    *decimal.Decimal `json:"totalRevenue,omitempty"`
}

type InvoiceBoxLine struct {
	Designation string `json:"designation"`
	QttOut      int    `json:"qttOut"`
	QttIn       *int   `json:"qttIn,omitempty"`
}

type InvoiceTotals struct {
	EstimatedRevenue *decimal.Decimal `json:"estimatedRevenue,omitempty"`
	WaitedAmount     *decimal.Decimal `json:"waitedAmount,omitempty"`
	ReceivedAmount   *decimal.Decimal `json:"receivedAmount,omitempty"`
	Benefit          *decimal.Decimal `json:"benefit,omitempty"`
	Deff             *decimal.Decimal `json:"deff,omitempty"`
}

type InvoiceResponse struct {
	TripID   uint                 `json:"tripId"`
	Date     string               `json:"date"`
	Truck    string               `json:"truck"`
	Driver   string               `json:"driver"`
	Seller   string               `json:"seller"`
	Zone     string               `json:"zone"`
	Type     string               `json:"type"`
	Products []InvoiceProductLine `json:"products"`
	Boxes    []InvoiceBoxLine     `json:"boxes"`
	Wastes   []TripWasteResponse  `json:"wastes,omitempty"`
	Charges  []TripChargeResponse `json:"charges,omitempty"`
	Totals   InvoiceTotals        `json:"totals"`
}
