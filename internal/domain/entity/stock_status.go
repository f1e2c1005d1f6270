package entity

import "github.com/shopspring/decimal"

// StockStatus estado de reposición de un producto.
type StockStatus string

const (
	StockCritical StockStatus = "Crítico"
	StockLow      StockStatus = "Bajo"
	StockNormal   StockStatus = "Normal"
)

var half = decimal.NewFromFloat(0.5)

// ClassifyStock aplica los umbrales del inventario:
// Crítico si stock ≤ minStock·0.5, Bajo si stock ≤ minStock, Normal en otro caso.
func ClassifyStock(stock, minStock int) StockStatus {
	s := decimal.NewFromInt(int64(stock))
	if s.LessThanOrEqual(decimal.NewFromInt(int64(minStock)).Mul(half)) {
		return StockCritical
	}
	if stock <= minStock {
		return StockLow
	}
	return StockNormal
}

// Urgency ordena los estados: 0 = más urgente.
func (s StockStatus) Urgency() int {
	switch s {
	case StockCritical:
		return 0
	case StockLow:
		return 1
	default:
		return 2
	}
}
