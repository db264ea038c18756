package dto

// RevenueFilter selects the reporting window. Period is one of today,
// lastWeek, last15Days, lastMonth, or custom (custom requires both dates).
type RevenueFilter struct {
	Period    string `form:"period"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

type RevenueSummaryResponse struct {
	TotalRevenue    string            `json:"totalRevenue"`
	RevenueByDate   map[string]string `json:"revenueByDate"`
	TotalPurchases  string            `json:"totalPurchases"`
	PurchasesByDate map[string]string `json:"purchasesByDate"`
	TotalPayments   string            `json:"totalPayments"`
	PaymentsByDate  map[string]string `json:"paymentsByDate"`
	TotalCharges    string            `json:"totalCharges"`
	ChargesByDate   map[string]string `json:"chargesByDate"`
	Period          string            `json:"period"`
	StartDate       string            `json:"startDate"`
	EndDate         string            `json:"endDate"`
}
