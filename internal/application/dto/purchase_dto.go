package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

// PurchaseInput entrada para registrar una compra (Purchase sin ID).
type PurchaseInput struct {
	Date     string                `json:"date" validate:"required,datetime=2006-01-02"`
	Supplier string                `json:"supplier" validate:"required"`
	Total    decimal.Decimal       `json:"total"`
	Status   entity.PurchaseStatus `json:"status" validate:"required,oneof=Pendiente Completada Cancelada"`
	Items    []entity.PurchaseItem `json:"items" validate:"required,min=1,dive"`
}

// Validate aplica tags, ítems con producto y cantidad positiva y total = Σ ítems.
func (in PurchaseInput) Validate() error {
	if err := validateStruct(in); err != nil {
		return err
	}
	for _, it := range in.Items {
		if it.Product == "" || it.Quantity <= 0 || it.UnitCost.IsNegative() {
			return invalid("ítem de compra inválido: "+it.Product, domain.ErrInvalidInput)
		}
	}
	return checkTotal(in.Total, in.ToEntity("").ItemsTotal())
}

// ToEntity construye la compra con el ID asignado.
func (in PurchaseInput) ToEntity(id string) entity.Purchase {
	return entity.Purchase{
		ID:       id,
		Date:     in.Date,
		Supplier: in.Supplier,
		Total:    in.Total,
		Status:   in.Status,
		Items:    append([]entity.PurchaseItem(nil), in.Items...),
	}
}

// PurchaseForm estado tipado del formulario "Nueva Compra". Estado inicial Pendiente.
type PurchaseForm struct {
	supplier string
	status   entity.PurchaseStatus
	items    []entity.PurchaseItem
}

// NewPurchaseForm formulario con una línea vacía y estado Pendiente.
func NewPurchaseForm() *PurchaseForm {
	return &PurchaseForm{status: entity.PurchasePending, items: []entity.PurchaseItem{{}}}
}

func (f *PurchaseForm) SetSupplier(v string) *PurchaseForm { f.supplier = v; return f }
func (f *PurchaseForm) SetStatus(v entity.PurchaseStatus) *PurchaseForm {
	f.status = v
	return f
}

// AddItem agrega una línea vacía al final.
func (f *PurchaseForm) AddItem() *PurchaseForm {
	f.items = append(f.items, entity.PurchaseItem{})
	return f
}

// RemoveItem quita la línea i; índices fuera de rango no hacen nada.
func (f *PurchaseForm) RemoveItem(i int) *PurchaseForm {
	if i >= 0 && i < len(f.items) {
		f.items = append(f.items[:i:i], f.items[i+1:]...)
	}
	return f
}

func (f *PurchaseForm) SetItemProduct(i int, v string) *PurchaseForm {
	if i >= 0 && i < len(f.items) {
		f.items[i].Product = v
	}
	return f
}

func (f *PurchaseForm) SetItemQuantity(i, v int) *PurchaseForm {
	if i >= 0 && i < len(f.items) {
		f.items[i].Quantity = v
	}
	return f
}

func (f *PurchaseForm) SetItemUnitCost(i int, v decimal.Decimal) *PurchaseForm {
	if i >= 0 && i < len(f.items) {
		f.items[i].UnitCost = v
	}
	return f
}

// Items copia de las líneas actuales.
func (f *PurchaseForm) Items() []entity.PurchaseItem {
	return append([]entity.PurchaseItem(nil), f.items...)
}

// Total suma en vivo de las líneas.
func (f *PurchaseForm) Total() decimal.Decimal {
	return entity.Purchase{Items: f.items}.ItemsTotal()
}

// Reset vuelve al estado inicial.
func (f *PurchaseForm) Reset() { *f = *NewPurchaseForm() }

// Build calcula el total desde los ítems, fecha = now, y valida.
func (f *PurchaseForm) Build(now time.Time) (PurchaseInput, error) {
	in := PurchaseInput{
		Date:     now.Format(DateLayout),
		Supplier: f.supplier,
		Total:    f.Total().Round(2),
		Status:   f.status,
		Items:    f.Items(),
	}
	if err := in.Validate(); err != nil {
		return PurchaseInput{}, err
	}
	return in, nil
}
