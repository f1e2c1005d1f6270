package dto

import "github.com/shopspring/decimal"

// ReplenishmentSuggestionDTO producto bajo su mínimo con la cantidad sugerida a pedir.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"productId"`
	ProductName        string          `json:"productName"`
	Supplier           string          `json:"supplier"`
	CurrentStock       int             `json:"currentStock"`
	MinStock           int             `json:"minStock"`
	IdealStock         int             `json:"idealStock"`
	SuggestedOrderQty  int             `json:"suggestedOrderQty"`
	UnitCost           decimal.Decimal `json:"unitCost"`
	EstimatedOrderCost decimal.Decimal `json:"estimatedOrderCost"`
	GrossMarginPct     decimal.Decimal `json:"grossMarginPct"`
	UnitsSold          int             `json:"unitsSold"`
	Priority           int             `json:"priority"` // 1 = más urgente
}
