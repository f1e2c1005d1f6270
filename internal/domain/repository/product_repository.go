package repository

import (
	"context"

	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Lo usa el backend simulado; el cliente trabaja contra ports.APIClient.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]entity.Product, error)
	Delete(ctx context.Context, id string) error
}

// SaleRepository persistencia de ventas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context) ([]entity.Sale, error)
}

// PurchaseRepository persistencia de compras.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	List(ctx context.Context) ([]entity.Purchase, error)
}
