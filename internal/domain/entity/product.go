package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock y MinStock son enteros no negativos; Price no negativo.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int             `json:"minStock"`
	Supplier    string          `json:"supplier"`
	Description *string         `json:"description,omitempty"`
}

// Validate comprueba las invariantes numéricas del producto.
func (p Product) Validate() error {
	if p.Stock < 0 {
		return fmt.Errorf("stock negativo: %d", p.Stock)
	}
	if p.MinStock < 0 {
		return fmt.Errorf("stock mínimo negativo: %d", p.MinStock)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("precio negativo: %s", p.Price)
	}
	return nil
}

// Status clasifica el stock del producto respecto a su mínimo.
func (p Product) Status() StockStatus {
	return ClassifyStock(p.Stock, p.MinStock)
}

// Clone copia el producto sin compartir la descripción.
func (p Product) Clone() Product {
	if p.Description != nil {
		d := *p.Description
		p.Description = &d
	}
	return p
}
