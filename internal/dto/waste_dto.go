package dto

// Waste ledger payloads. A waste row is keyed by product+type; creating an
// existing pair accumulates the quantity instead.

type CreateWasteRequest struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Qtt       int    `json:"qtt" validate:"gt=0"`
}

type WasteResponse struct {
	ProductID   uint   `json:"product_id"`
	Designation string `json:"designation"`
	Type        string `json:"type"`
	Qtt         int    `json:"qtt"`
}

type WasteListResponse struct {
	Wastes []WasteResponse `json:"wastes"`
}

// StockMovementFilter selects audit rows from the ledger journal.
type StockMovementFilter struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	EntityKind string `form:"entity_kind"`
	EntityID   uint   `form:"entity_id"`
	Reason     string `form:"reason"`
}

type StockMovementResponse struct {
	ID          uint   `json:"id"`
	EntityKind  string `json:"entity_kind"`
	EntityID    uint   `json:"entity_id"`
	Reason      string `json:"reason"`
	BoxDelta    int    `json:"box_delta"`
	UnitDelta   int    `json:"unit_delta"`
	ReferenceID *uint  `json:"reference_id,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type StockMovementListResponse struct {
	Movements  []StockMovementResponse `json:"movements"`
	Pagination Pagination              `json:"pagination"`
}
