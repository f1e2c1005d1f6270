// Package inventory servicios de dominio de costos y reposición.
package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost costo promedio ponderado tras una entrada de mercadería.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func WeightedAverageCost(stock, cost, qty, unitCost decimal.Decimal) decimal.Decimal {
	sum := stock.Add(qty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stock.Mul(cost).Add(qty.Mul(unitCost))
	return num.Div(sum)
}

// CostBook acumula el costo promedio ponderado por nombre de producto.
type CostBook struct {
	units map[string]decimal.Decimal
	cost  map[string]decimal.Decimal
}

func NewCostBook() *CostBook {
	return &CostBook{units: map[string]decimal.Decimal{}, cost: map[string]decimal.Decimal{}}
}

// Add registra una entrada; cantidades no positivas se ignoran.
func (b *CostBook) Add(product string, qty int, unitCost decimal.Decimal) {
	if qty <= 0 {
		return
	}
	q := decimal.NewFromInt(int64(qty))
	b.cost[product] = WeightedAverageCost(b.units[product], b.cost[product], q, unitCost)
	b.units[product] = b.units[product].Add(q)
}

// Cost devuelve el costo promedio y si el producto tuvo alguna entrada.
func (b *CostBook) Cost(product string) (decimal.Decimal, bool) {
	c, ok := b.cost[product]
	if !ok {
		return decimal.Zero, false
	}
	return c, true
}
