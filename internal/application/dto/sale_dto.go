package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

// DateLayout formato de fecha de ventas y compras.
const DateLayout = "2006-01-02"

// SaleInput entrada para registrar una venta (Sale sin ID).
type SaleInput struct {
	Date          string               `json:"date" validate:"required,datetime=2006-01-02"`
	Customer      string               `json:"customer" validate:"required"`
	Total         decimal.Decimal      `json:"total"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod" validate:"required,oneof=Efectivo Tarjeta Transferencia"`
	Items         []entity.SaleItem    `json:"items" validate:"required,min=1,dive"`
}

// Validate aplica tags, exige ítems con producto y cantidad positiva y total = Σ ítems.
func (in SaleInput) Validate() error {
	if err := validateStruct(in); err != nil {
		return err
	}
	for _, it := range in.Items {
		if it.Product == "" || it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return invalid("ítem de venta inválido: "+it.Product, domain.ErrInvalidInput)
		}
	}
	return checkTotal(in.Total, in.ToEntity("").ItemsTotal())
}

// ToEntity construye la venta con el ID asignado.
func (in SaleInput) ToEntity(id string) entity.Sale {
	return entity.Sale{
		ID:            id,
		Date:          in.Date,
		Customer:      in.Customer,
		Total:         in.Total,
		PaymentMethod: in.PaymentMethod,
		Items:         append([]entity.SaleItem(nil), in.Items...),
	}
}

func checkTotal(total, items decimal.Decimal) error {
	if !total.Round(2).Equal(items.Round(2)) {
		return invalid("el total "+total.StringFixed(2)+" no coincide con la suma de los ítems "+
			items.StringFixed(2), domain.ErrTotalMismatch)
	}
	return nil
}

// SaleForm estado tipado del formulario "Nueva Venta". Empieza con un ítem vacío.
type SaleForm struct {
	customer string
	method   entity.PaymentMethod
	items    []entity.SaleItem
}

// NewSaleForm formulario con una línea vacía.
func NewSaleForm() *SaleForm {
	return &SaleForm{items: []entity.SaleItem{{}}}
}

func (f *SaleForm) SetCustomer(v string) *SaleForm { f.customer = v; return f }
func (f *SaleForm) SetPaymentMethod(v entity.PaymentMethod) *SaleForm {
	f.method = v
	return f
}

// AddItem agrega una línea vacía al final.
func (f *SaleForm) AddItem() *SaleForm {
	f.items = append(f.items, entity.SaleItem{})
	return f
}

// RemoveItem quita la línea i; índices fuera de rango no hacen nada.
func (f *SaleForm) RemoveItem(i int) *SaleForm {
	if i >= 0 && i < len(f.items) {
		f.items = append(f.items[:i:i], f.items[i+1:]...)
	}
	return f
}

func (f *SaleForm) SetItemProduct(i int, v string) *SaleForm {
	if i >= 0 && i < len(f.items) {
		f.items[i].Product = v
	}
	return f
}

func (f *SaleForm) SetItemQuantity(i, v int) *SaleForm {
	if i >= 0 && i < len(f.items) {
		f.items[i].Quantity = v
	}
	return f
}

func (f *SaleForm) SetItemUnitPrice(i int, v decimal.Decimal) *SaleForm {
	if i >= 0 && i < len(f.items) {
		f.items[i].UnitPrice = v
	}
	return f
}

// Items copia de las líneas actuales.
func (f *SaleForm) Items() []entity.SaleItem {
	return append([]entity.SaleItem(nil), f.items...)
}

// Total suma en vivo de las líneas.
func (f *SaleForm) Total() decimal.Decimal {
	return entity.Sale{Items: f.items}.ItemsTotal()
}

// Reset vuelve al estado inicial.
func (f *SaleForm) Reset() { *f = *NewSaleForm() }

// Build calcula el total desde los ítems, fecha = now, y valida.
func (f *SaleForm) Build(now time.Time) (SaleInput, error) {
	in := SaleInput{
		Date:          now.Format(DateLayout),
		Customer:      f.customer,
		Total:         f.Total().Round(2),
		PaymentMethod: f.method,
		Items:         f.Items(),
	}
	if err := in.Validate(); err != nil {
		return SaleInput{}, err
	}
	return in, nil
}
