package store

import (
	"context"
	"strings"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/ports"
	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/pkg/logger"
)

// ProductStore colección de productos con alta, edición y baja.
type ProductStore struct {
	*Collection[entity.Product]
	client ports.APIClient
}

// NewProductStore construye el store; la carga empieza con Mount.
func NewProductStore(client ports.APIClient, log *logger.Logger) *ProductStore {
	fetch := func(ctx context.Context) ([]entity.Product, error) {
		res, err := client.GetProducts(ctx)
		if err != nil {
			return nil, err
		}
		return res.Data, nil
	}
	return &ProductStore{
		Collection: NewCollection(fetch,
			func(p entity.Product) string { return p.ID },
			entity.Product.Clone,
			"Error al cargar productos",
			componentLog(log, "products")),
		client: client,
	}
}

// Create valida, crea en el servidor y agrega al final el producto devuelto.
func (s *ProductStore) Create(ctx context.Context, in dto.ProductInput) (entity.Product, error) {
	if err := in.Validate(); err != nil {
		return entity.Product{}, err
	}
	res, err := s.client.CreateProduct(ctx, in)
	if err != nil {
		return entity.Product{}, mutationError(err, "Error al crear producto")
	}
	s.append(res.Data)
	return res.Data.Clone(), nil
}

// Update aplica el patch en el servidor y reemplaza solo el registro con ese id.
func (s *ProductStore) Update(ctx context.Context, id string, patch dto.ProductPatch) (entity.Product, error) {
	if strings.TrimSpace(id) == "" {
		return entity.Product{}, domain.NewError(domain.KindValidation, "id de producto vacío", domain.ErrInvalidInput)
	}
	if err := patch.Validate(); err != nil {
		return entity.Product{}, err
	}
	res, err := s.client.UpdateProduct(ctx, id, patch)
	if err != nil {
		return entity.Product{}, mutationError(err, "Error al actualizar producto")
	}
	s.replace(id, res.Data)
	return res.Data.Clone(), nil
}

// Delete borra en el servidor y filtra localmente; un id ausente deja la colección igual.
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	if _, err := s.client.DeleteProduct(ctx, id); err != nil {
		return mutationError(err, "Error al eliminar producto")
	}
	s.remove(id)
	return nil
}

// Search filtra por nombre o categoría sin distinguir tildes ni mayúsculas. Término vacío = todo.
func (s *ProductStore) Search(term string) []entity.Product {
	items := s.Items()
	q := fold(term)
	if q == "" {
		return items
	}
	out := items[:0]
	for _, p := range items {
		if strings.Contains(fold(p.Name), q) || strings.Contains(fold(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// LowStock productos en estado Crítico o Bajo.
func (s *ProductStore) LowStock() []entity.Product {
	var out []entity.Product
	for _, p := range s.Items() {
		if p.Status() != entity.StockNormal {
			out = append(out, p)
		}
	}
	return out
}

func componentLog(log *logger.Logger, name string) *logger.Logger {
	if log == nil {
		return logger.Nop()
	}
	return log.Component("store." + name)
}
