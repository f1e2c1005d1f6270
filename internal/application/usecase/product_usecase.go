package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del backend.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y crea un producto con ID nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductInput) (*entity.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	product := in.ToEntity(uuid.New().String())
	if err := uc.repo.Create(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByID obtiene un producto por ID; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Update aplica el patch: solo cambian los campos presentes.
func (uc *ProductUseCase) Update(ctx context.Context, id string, patch dto.ProductPatch) (*entity.Product, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	product, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := patch.Apply(*product)
	if err := updated.Validate(); err != nil {
		return nil, domain.NewError(domain.KindValidation, err.Error(), domain.ErrInvalidInput)
	}
	if err := uc.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// List todos los productos en orden de alta.
func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Product, error) {
	return uc.repo.List(ctx)
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
