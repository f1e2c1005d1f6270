package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

// DashboardStats respuesta de GET /dashboard/stats.
type DashboardStats struct {
	TotalSales       decimal.Decimal `json:"totalSales"`
	TotalProducts    int             `json:"totalProducts"`
	LowStockProducts int             `json:"lowStockProducts"`
	RecentSales      []entity.Sale   `json:"recentSales"`
}

// LowStockDTO producto bajo su stock mínimo.
type LowStockDTO struct {
	ProductID string             `json:"productId"`
	Name      string             `json:"name"`
	Stock     int                `json:"stock"`
	MinStock  int                `json:"minStock"`
	Status    entity.StockStatus `json:"status"`
}

// DailySalesDTO agregado de ventas de un día.
type DailySalesDTO struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// PaymentBreakdownDTO ventas agrupadas por medio de pago.
type PaymentBreakdownDTO struct {
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
	Count         int                  `json:"count"`
	Total         decimal.Decimal      `json:"total"`
}

// TopProductDTO producto por ingreso en las ventas.
type TopProductDTO struct {
	Name     string          `json:"name"`
	Units    int             `json:"units"`
	Revenue  decimal.Decimal `json:"revenue"`
	Category string          `json:"category,omitempty"`
}

// CategorySalesDTO ingreso por categoría de producto.
type CategorySalesDTO struct {
	Category   string          `json:"category"`
	Units      int             `json:"units"`
	Revenue    decimal.Decimal `json:"revenue"`
	Percentage decimal.Decimal `json:"percentage"`
}

// DashboardSummaryDTO resumen del panel de control y de la página de reportes.
type DashboardSummaryDTO struct {
	TotalProducts      int                   `json:"totalProducts"`
	TotalStockUnits    int                   `json:"totalStockUnits"`
	LowStock           []LowStockDTO         `json:"lowStock"`
	SalesCount         int                   `json:"salesCount"`
	SalesTotal         decimal.Decimal       `json:"salesTotal"`
	DailySales         []DailySalesDTO       `json:"dailySales"`
	ByPaymentMethod    []PaymentBreakdownDTO `json:"byPaymentMethod"`
	TopProducts        []TopProductDTO       `json:"topProducts"`
	SalesByCategory    []CategorySalesDTO    `json:"salesByCategory"`
	PendingPurchases   int                   `json:"pendingPurchases"`
	PendingAmount      decimal.Decimal       `json:"pendingAmount"`
	PurchasesCompleted decimal.Decimal       `json:"purchasesCompleted"`
}
