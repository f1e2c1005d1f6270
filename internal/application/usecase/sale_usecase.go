package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

// SaleUseCase registro y listado de ventas.
type SaleUseCase struct {
	repo repository.SaleRepository
}

func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// Create valida (total = Σ ítems) y registra la venta.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.SaleInput) (*entity.Sale, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	sale := in.ToEntity(uuid.New().String())
	if err := uc.repo.Create(ctx, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (uc *SaleUseCase) List(ctx context.Context) ([]entity.Sale, error) {
	return uc.repo.List(ctx)
}

// PurchaseUseCase registro y listado de compras a proveedores.
type PurchaseUseCase struct {
	repo repository.PurchaseRepository
}

func NewPurchaseUseCase(repo repository.PurchaseRepository) *PurchaseUseCase {
	return &PurchaseUseCase{repo: repo}
}

func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.PurchaseInput) (*entity.Purchase, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	purchase := in.ToEntity(uuid.New().String())
	if err := uc.repo.Create(ctx, &purchase); err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (uc *PurchaseUseCase) List(ctx context.Context) ([]entity.Purchase, error) {
	return uc.repo.List(ctx)
}
