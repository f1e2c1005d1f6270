package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepository)(nil)
	_ repository.SaleRepository     = (*SaleRepository)(nil)
	_ repository.PurchaseRepository = (*PurchaseRepository)(nil)
)

// ProductRepository productos en memoria en orden de inserción.
type ProductRepository struct {
	mu    sync.RWMutex
	items []entity.Product
}

// NewProductRepository construye el repositorio con datos iniciales opcionales.
func NewProductRepository(seed ...entity.Product) *ProductRepository {
	r := &ProductRepository{}
	for _, p := range seed {
		r.items = append(r.items, p.Clone())
	}
	return r
}

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == p.ID {
			return domain.NewError(domain.KindValidation, "producto duplicado: "+p.ID, domain.ErrInvalidInput)
		}
	}
	r.items = append(r.items, p.Clone())
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.ID == id {
			p := it.Clone()
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepository) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == p.ID {
			r.items[i] = p.Clone()
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *ProductRepository) List(_ context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Product, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it.Clone())
	}
	return out, nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// SaleRepository ventas en memoria.
type SaleRepository struct {
	mu    sync.RWMutex
	items []entity.Sale
}

func NewSaleRepository(seed ...entity.Sale) *SaleRepository {
	r := &SaleRepository{}
	for _, s := range seed {
		r.items = append(r.items, s.Clone())
	}
	return r
}

func (r *SaleRepository) Create(_ context.Context, s *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, s.Clone())
	return nil
}

func (r *SaleRepository) List(_ context.Context) ([]entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Sale, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it.Clone())
	}
	return out, nil
}

// PurchaseRepository compras en memoria.
type PurchaseRepository struct {
	mu    sync.RWMutex
	items []entity.Purchase
}

func NewPurchaseRepository(seed ...entity.Purchase) *PurchaseRepository {
	r := &PurchaseRepository{}
	for _, p := range seed {
		r.items = append(r.items, p.Clone())
	}
	return r
}

func (r *PurchaseRepository) Create(_ context.Context, p *entity.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, p.Clone())
	return nil
}

func (r *PurchaseRepository) List(_ context.Context) ([]entity.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Purchase, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it.Clone())
	}
	return out, nil
}
