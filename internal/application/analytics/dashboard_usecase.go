// Package analytics contiene los casos de uso del dashboard y de la página de reportes.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/ports"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

const (
	dashboardTopProducts = 5 // productos en el widget de más vendidos
	otherCategory        = "Otros"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase genera el resumen de inventario, ventas y compras.
//
// Fuente de datos: ports.APIClient (los tres listados).
type DashboardUseCase struct {
	client ports.APIClient
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(client ports.APIClient) *DashboardUseCase {
	return &DashboardUseCase{client: client}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. GetProducts  → totales de inventario y stock bajo
//  2. GetSales     → ventas por día, medio de pago, producto y categoría
//  3. GetPurchases → compras pendientes y completadas
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	snap, err := Fetch(ctx, uc.client)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return Summarize(snap.Products, snap.Sales, snap.Purchases), nil
}

// Summarize calcula el resumen a partir de los listados ya obtenidos.
// Los totales de venta y compra se toman tal como vienen del servidor.
func Summarize(products []entity.Product, sales []entity.Sale, purchases []entity.Purchase) *dto.DashboardSummaryDTO {
	out := &dto.DashboardSummaryDTO{
		TotalProducts:      len(products),
		LowStock:           lowStock(products),
		SalesCount:         len(sales),
		SalesTotal:         decimal.Zero,
		PendingAmount:      decimal.Zero,
		PurchasesCompleted: decimal.Zero,
	}
	for _, p := range products {
		out.TotalStockUnits += p.Stock
	}
	for _, s := range sales {
		out.SalesTotal = out.SalesTotal.Add(s.Total)
	}
	out.SalesTotal = out.SalesTotal.Round(2)
	out.DailySales = dailySales(sales)
	out.ByPaymentMethod = byPaymentMethod(sales)
	out.TopProducts, out.SalesByCategory = productRevenue(products, sales)

	for _, p := range purchases {
		switch p.Status {
		case entity.PurchasePending:
			out.PendingPurchases++
			out.PendingAmount = out.PendingAmount.Add(p.Total)
		case entity.PurchaseCompleted:
			out.PurchasesCompleted = out.PurchasesCompleted.Add(p.Total)
		}
	}
	out.PendingAmount = out.PendingAmount.Round(2)
	out.PurchasesCompleted = out.PurchasesCompleted.Round(2)
	return out
}

// lowStock productos Crítico o Bajo, los más urgentes primero y luego por nombre.
func lowStock(products []entity.Product) []dto.LowStockDTO {
	out := []dto.LowStockDTO{}
	for _, p := range products {
		st := p.Status()
		if st == entity.StockNormal {
			continue
		}
		out = append(out, dto.LowStockDTO{
			ProductID: p.ID,
			Name:      p.Name,
			Stock:     p.Stock,
			MinStock:  p.MinStock,
			Status:    st,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		ui, uj := out[i].Status.Urgency(), out[j].Status.Urgency()
		if ui != uj {
			return ui < uj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// dailySales agrupa por fecha en orden ascendente.
func dailySales(sales []entity.Sale) []dto.DailySalesDTO {
	byDate := map[string]*dto.DailySalesDTO{}
	for _, s := range sales {
		d, ok := byDate[s.Date]
		if !ok {
			d = &dto.DailySalesDTO{Date: s.Date, Total: decimal.Zero}
			byDate[s.Date] = d
		}
		d.Count++
		d.Total = d.Total.Add(s.Total)
	}
	out := make([]dto.DailySalesDTO, 0, len(byDate))
	for _, d := range byDate {
		d.Total = d.Total.Round(2)
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// byPaymentMethod agrupa en el orden Efectivo, Tarjeta, Transferencia; omite medios sin ventas.
func byPaymentMethod(sales []entity.Sale) []dto.PaymentBreakdownDTO {
	order := []entity.PaymentMethod{entity.PaymentCash, entity.PaymentCard, entity.PaymentTransfer}
	acc := map[entity.PaymentMethod]*dto.PaymentBreakdownDTO{}
	for _, s := range sales {
		b, ok := acc[s.PaymentMethod]
		if !ok {
			b = &dto.PaymentBreakdownDTO{PaymentMethod: s.PaymentMethod, Total: decimal.Zero}
			acc[s.PaymentMethod] = b
		}
		b.Count++
		b.Total = b.Total.Add(s.Total)
	}
	out := []dto.PaymentBreakdownDTO{}
	for _, m := range order {
		if b, ok := acc[m]; ok {
			b.Total = b.Total.Round(2)
			out = append(out, *b)
		}
	}
	return out
}

// productRevenue ingreso por producto (top N) y por categoría a partir de los ítems de venta.
// Los ítems referencian el producto por nombre; si no está en el catálogo la categoría es "Otros".
func productRevenue(products []entity.Product, sales []entity.Sale) ([]dto.TopProductDTO, []dto.CategorySalesDTO) {
	categoryOf := make(map[string]string, len(products))
	for _, p := range products {
		categoryOf[p.Name] = p.Category
	}

	byProduct := map[string]*dto.TopProductDTO{}
	byCategory := map[string]*dto.CategorySalesDTO{}
	total := decimal.Zero
	for _, s := range sales {
		for _, it := range s.Items {
			sub := it.Subtotal()
			total = total.Add(sub)

			cat, ok := categoryOf[it.Product]
			if !ok {
				cat = otherCategory
			}
			tp, ok := byProduct[it.Product]
			if !ok {
				tp = &dto.TopProductDTO{Name: it.Product, Category: cat, Revenue: decimal.Zero}
				byProduct[it.Product] = tp
			}
			tp.Units += it.Quantity
			tp.Revenue = tp.Revenue.Add(sub)

			cs, ok := byCategory[cat]
			if !ok {
				cs = &dto.CategorySalesDTO{Category: cat, Revenue: decimal.Zero}
				byCategory[cat] = cs
			}
			cs.Units += it.Quantity
			cs.Revenue = cs.Revenue.Add(sub)
		}
	}

	top := make([]dto.TopProductDTO, 0, len(byProduct))
	for _, tp := range byProduct {
		tp.Revenue = tp.Revenue.Round(2)
		top = append(top, *tp)
	}
	sort.Slice(top, func(i, j int) bool {
		if !top[i].Revenue.Equal(top[j].Revenue) {
			return top[i].Revenue.GreaterThan(top[j].Revenue)
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > dashboardTopProducts {
		top = top[:dashboardTopProducts]
	}

	cats := make([]dto.CategorySalesDTO, 0, len(byCategory))
	for _, cs := range byCategory {
		cs.Revenue = cs.Revenue.Round(2)
		cs.Percentage = decimal.Zero
		if total.IsPositive() {
			cs.Percentage = cs.Revenue.Div(total).Mul(hundred).Round(2)
		}
		cats = append(cats, *cs)
	}
	sort.Slice(cats, func(i, j int) bool {
		if !cats[i].Revenue.Equal(cats[j].Revenue) {
			return cats[i].Revenue.GreaterThan(cats[j].Revenue)
		}
		return cats[i].Category < cats[j].Category
	})
	return top, cats
}
