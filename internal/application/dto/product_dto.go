package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

// ProductInput entrada para crear un producto (Product sin ID).
type ProductInput struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Category    string          `json:"category" validate:"required"`
	Stock       int             `json:"stock" validate:"min=0"`
	Unit        string          `json:"unit" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int             `json:"minStock" validate:"min=0"`
	Supplier    string          `json:"supplier"`
	Description *string         `json:"description,omitempty"`
}

// Validate aplica tags y las invariantes de entity.Product.
func (in ProductInput) Validate() error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if err := in.ToEntity("").Validate(); err != nil {
		return invalid(err.Error(), domain.ErrInvalidInput)
	}
	return nil
}

// ToEntity construye el producto con el ID asignado.
func (in ProductInput) ToEntity(id string) entity.Product {
	return entity.Product{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Stock:       in.Stock,
		Unit:        in.Unit,
		Price:       in.Price,
		MinStock:    in.MinStock,
		Supplier:    in.Supplier,
		Description: in.Description,
	}
}

// ProductPatch actualización parcial; solo se aplican los campos no nil.
type ProductPatch struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,min=1"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,min=0"`
	Unit        *string          `json:"unit,omitempty" validate:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	MinStock    *int             `json:"minStock,omitempty" validate:"omitempty,min=0"`
	Supplier    *string          `json:"supplier,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// Validate comprueba los campos presentes.
func (p ProductPatch) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}
	if p.Price != nil && p.Price.IsNegative() {
		return invalid(fmt.Sprintf("precio negativo: %s", p.Price), domain.ErrInvalidInput)
	}
	return nil
}

// Apply devuelve una copia de prod con el patch aplicado; prod no se modifica.
func (p ProductPatch) Apply(prod entity.Product) entity.Product {
	out := prod.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Stock != nil {
		out.Stock = *p.Stock
	}
	if p.Unit != nil {
		out.Unit = *p.Unit
	}
	if p.Price != nil {
		out.Price = *p.Price
	}
	if p.MinStock != nil {
		out.MinStock = *p.MinStock
	}
	if p.Supplier != nil {
		out.Supplier = *p.Supplier
	}
	if p.Description != nil {
		d := *p.Description
		out.Description = &d
	}
	return out
}

// ProductForm estado tipado del formulario "Agregar Producto", un setter por campo.
type ProductForm struct {
	in ProductInput
}

// NewProductForm formulario vacío con unidad por defecto "unidades".
func NewProductForm() *ProductForm {
	return &ProductForm{in: ProductInput{Unit: "unidades"}}
}

func (f *ProductForm) SetName(v string) *ProductForm     { f.in.Name = v; return f }
func (f *ProductForm) SetCategory(v string) *ProductForm { f.in.Category = v; return f }
func (f *ProductForm) SetStock(v int) *ProductForm       { f.in.Stock = v; return f }
func (f *ProductForm) SetUnit(v string) *ProductForm     { f.in.Unit = v; return f }
func (f *ProductForm) SetPrice(v decimal.Decimal) *ProductForm {
	f.in.Price = v
	return f
}
func (f *ProductForm) SetMinStock(v int) *ProductForm    { f.in.MinStock = v; return f }
func (f *ProductForm) SetSupplier(v string) *ProductForm { f.in.Supplier = v; return f }

// SetDescription vacío equivale a sin descripción.
func (f *ProductForm) SetDescription(v string) *ProductForm {
	if v == "" {
		f.in.Description = nil
		return f
	}
	f.in.Description = &v
	return f
}

// Reset vuelve al estado inicial.
func (f *ProductForm) Reset() { *f = *NewProductForm() }

// Build valida y devuelve la entrada lista para ProductStore.Create.
func (f *ProductForm) Build() (ProductInput, error) {
	if err := f.in.Validate(); err != nil {
		return ProductInput{}, err
	}
	return f.in, nil
}
