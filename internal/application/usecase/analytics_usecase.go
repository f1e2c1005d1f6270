package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-minorista/internal/application/analytics"
	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/inventory"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

const recentSalesLimit = 5

// StatsUseCase calcula las estadísticas de GET /dashboard/stats a partir de los repositorios.
type StatsUseCase struct {
	products  repository.ProductRepository
	sales     repository.SaleRepository
	purchases repository.PurchaseRepository
}

func NewStatsUseCase(products repository.ProductRepository, sales repository.SaleRepository, purchases repository.PurchaseRepository) *StatsUseCase {
	return &StatsUseCase{products: products, sales: sales, purchases: purchases}
}

// GetStats total vendido, número de productos, productos bajo mínimo y las ventas más recientes.
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: productos: %w", err)
	}
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: ventas: %w", err)
	}

	out := &dto.DashboardStats{TotalSales: decimal.Zero, TotalProducts: len(products)}
	for _, p := range products {
		if p.Status() != entity.StockNormal {
			out.LowStockProducts++
		}
	}
	for _, s := range sales {
		out.TotalSales = out.TotalSales.Add(s.Total)
	}
	out.TotalSales = out.TotalSales.Round(2)

	recent := append([]entity.Sale(nil), sales...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if len(recent) > recentSalesLimit {
		recent = recent[:recentSalesLimit]
	}
	out.RecentSales = recent
	return out, nil
}

// GetSummary resumen completo de reportes calculado sobre los repositorios.
func (uc *StatsUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen: productos: %w", err)
	}
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen: ventas: %w", err)
	}
	purchases, err := uc.purchases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen: compras: %w", err)
	}
	return analytics.Summarize(products, sales, purchases), nil
}

// GetReplenishment lista de reposición calculada sobre los repositorios.
func (uc *StatsUseCase) GetReplenishment(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reposición: productos: %w", err)
	}
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reposición: ventas: %w", err)
	}
	purchases, err := uc.purchases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reposición: compras: %w", err)
	}
	return inventory.Suggest(products, sales, purchases), nil
}
