package entity

import "github.com/shopspring/decimal"

// PurchaseStatus estado de una compra a proveedor.
type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "Pendiente"
	PurchaseCompleted PurchaseStatus = "Completada"
	PurchaseCanceled  PurchaseStatus = "Cancelada"
)

// Valid indica si el estado es uno de los admitidos.
func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchasePending, PurchaseCompleted, PurchaseCanceled:
		return true
	}
	return false
}

// PurchaseItem línea de compra (Product es nombre libre).
type PurchaseItem struct {
	Product  string          `json:"product"`
	Quantity int             `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`
}

// Subtotal cantidad × costo unitario.
func (i PurchaseItem) Subtotal() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Purchase representa una compra a proveedor.
type Purchase struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Supplier string          `json:"supplier"`
	Total    decimal.Decimal `json:"total"`
	Status   PurchaseStatus  `json:"status"`
	Items    []PurchaseItem  `json:"items"`
}

// ItemsTotal Σ cantidad × costo unitario.
func (p Purchase) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range p.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Clone copia la compra incluyendo sus ítems.
func (p Purchase) Clone() Purchase {
	p.Items = append([]PurchaseItem(nil), p.Items...)
	return p
}
