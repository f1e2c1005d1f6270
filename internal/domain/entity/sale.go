package entity

import "github.com/shopspring/decimal"

// PaymentMethod medio de pago de una venta.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Efectivo"
	PaymentCard     PaymentMethod = "Tarjeta"
	PaymentTransfer PaymentMethod = "Transferencia"
)

// Valid indica si el medio de pago es uno de los admitidos.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// SaleItem línea de venta. Product es el nombre libre del producto, no su ID.
type SaleItem struct {
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Subtotal cantidad × precio unitario.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale representa una venta registrada.
type Sale struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Customer      string          `json:"customer"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Items         []SaleItem      `json:"items"`
}

// ItemsTotal Σ cantidad × precio unitario de los ítems.
func (s Sale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Clone copia la venta incluyendo sus ítems.
func (s Sale) Clone() Sale {
	s.Items = append([]SaleItem(nil), s.Items...)
	return s
}
