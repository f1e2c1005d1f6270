// Package inventory genera la lista de reposición a partir del stock, las ventas y las compras.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-minorista/internal/application/analytics"
	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/ports"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	domaininv "github.com/jhoicas/panel-minorista/internal/domain/inventory"
)

var (
	hundred    = decimal.NewFromInt(100)
	idealRatio = decimal.NewFromFloat(1.5)
)

// ReplenishmentUseCase lista de reposición sobre los listados del API.
type ReplenishmentUseCase struct {
	client ports.APIClient
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(client ports.APIClient) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{client: client}
}

// GenerateReplenishmentList devuelve los productos en Bajo o Crítico con la cantidad
// sugerida de pedido y un ranking de prioridad.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	snap, err := analytics.Fetch(ctx, uc.client)
	if err != nil {
		return nil, fmt.Errorf("reposición: %w", err)
	}
	return Suggest(snap.Products, snap.Sales, snap.Purchases), nil
}

// Suggest calcula las sugerencias.
//
//   - costo unitario: promedio ponderado de las compras no canceladas con el mismo nombre
//   - stock ideal: ⌈minStock × 1.5⌉; cantidad sugerida: ideal − stock
//   - margen: (precio − costo) / precio × 100, 0 si no hay costo conocido
//
// Orden: mayor margen, luego más unidades vendidas, luego mayor déficit bajo el mínimo.
func Suggest(products []entity.Product, sales []entity.Sale, purchases []entity.Purchase) []dto.ReplenishmentSuggestionDTO {
	costs := domaininv.NewCostBook()
	for _, p := range purchases {
		if p.Status == entity.PurchaseCanceled {
			continue
		}
		for _, it := range p.Items {
			costs.Add(it.Product, it.Quantity, it.UnitCost)
		}
	}
	sold := make(map[string]int)
	for _, s := range sales {
		for _, it := range s.Items {
			sold[it.Product] += it.Quantity
		}
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, p := range products {
		if p.Status() == entity.StockNormal {
			continue
		}
		ideal := int(decimal.NewFromInt(int64(p.MinStock)).Mul(idealRatio).Ceil().IntPart())
		qty := ideal - p.Stock
		if qty < 0 {
			qty = 0
		}

		margin := decimal.Zero
		cost, known := costs.Cost(p.Name)
		cost = cost.Round(2)
		if known && p.Price.IsPositive() {
			margin = p.Price.Sub(cost).Div(p.Price).Mul(hundred).Round(2)
		}

		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			ProductName:        p.Name,
			Supplier:           p.Supplier,
			CurrentStock:       p.Stock,
			MinStock:           p.MinStock,
			IdealStock:         ideal,
			SuggestedOrderQty:  qty,
			UnitCost:           cost,
			EstimatedOrderCost: cost.Mul(decimal.NewFromInt(int64(qty))).Round(2),
			GrossMarginPct:     margin,
			UnitsSold:          sold[p.Name],
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if !a.GrossMarginPct.Equal(b.GrossMarginPct) {
			return a.GrossMarginPct.GreaterThan(b.GrossMarginPct)
		}
		if a.UnitsSold != b.UnitsSold {
			return a.UnitsSold > b.UnitsSold
		}
		return a.MinStock-a.CurrentStock > b.MinStock-b.CurrentStock
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions
}

// DraftPurchases arma una compra Pendiente por proveedor con las cantidades sugeridas,
// en el orden de prioridad. Sugerencias sin cantidad o sin proveedor se omiten.
func DraftPurchases(suggestions []dto.ReplenishmentSuggestionDTO, now time.Time) ([]dto.PurchaseInput, error) {
	var order []string
	forms := make(map[string]*dto.PurchaseForm)
	for _, s := range suggestions {
		if s.SuggestedOrderQty <= 0 || s.Supplier == "" {
			continue
		}
		f, ok := forms[s.Supplier]
		if !ok {
			f = dto.NewPurchaseForm().SetSupplier(s.Supplier).RemoveItem(0)
			forms[s.Supplier] = f
			order = append(order, s.Supplier)
		}
		i := len(f.Items())
		f.AddItem().
			SetItemProduct(i, s.ProductName).
			SetItemQuantity(i, s.SuggestedOrderQty).
			SetItemUnitCost(i, s.UnitCost)
	}

	out := make([]dto.PurchaseInput, 0, len(order))
	for _, supplier := range order {
		in, err := forms[supplier].Build(now)
		if err != nil {
			return nil, fmt.Errorf("borrador %s: %w", supplier, err)
		}
		out = append(out, in)
	}
	return out, nil
}
