package store

import (
	"context"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/ports"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/pkg/logger"
)

// SaleStore colección de ventas.
type SaleStore struct {
	*Collection[entity.Sale]
	client ports.APIClient
}

func NewSaleStore(client ports.APIClient, log *logger.Logger) *SaleStore {
	fetch := func(ctx context.Context) ([]entity.Sale, error) {
		res, err := client.GetSales(ctx)
		if err != nil {
			return nil, err
		}
		return res.Data, nil
	}
	return &SaleStore{
		Collection: NewCollection(fetch,
			func(s entity.Sale) string { return s.ID },
			entity.Sale.Clone,
			"Error al cargar ventas",
			componentLog(log, "sales")),
		client: client,
	}
}

// Create valida (incluido total = Σ ítems), registra y agrega al final.
func (s *SaleStore) Create(ctx context.Context, in dto.SaleInput) (entity.Sale, error) {
	if err := in.Validate(); err != nil {
		return entity.Sale{}, err
	}
	res, err := s.client.CreateSale(ctx, in)
	if err != nil {
		return entity.Sale{}, mutationError(err, "Error al crear venta")
	}
	s.append(res.Data)
	return res.Data.Clone(), nil
}

// PurchaseStore colección de compras.
type PurchaseStore struct {
	*Collection[entity.Purchase]
	client ports.APIClient
}

func NewPurchaseStore(client ports.APIClient, log *logger.Logger) *PurchaseStore {
	fetch := func(ctx context.Context) ([]entity.Purchase, error) {
		res, err := client.GetPurchases(ctx)
		if err != nil {
			return nil, err
		}
		return res.Data, nil
	}
	return &PurchaseStore{
		Collection: NewCollection(fetch,
			func(p entity.Purchase) string { return p.ID },
			entity.Purchase.Clone,
			"Error al cargar compras",
			componentLog(log, "purchases")),
		client: client,
	}
}

func (s *PurchaseStore) Create(ctx context.Context, in dto.PurchaseInput) (entity.Purchase, error) {
	if err := in.Validate(); err != nil {
		return entity.Purchase{}, err
	}
	res, err := s.client.CreatePurchase(ctx, in)
	if err != nil {
		return entity.Purchase{}, mutationError(err, "Error al crear compra")
	}
	s.append(res.Data)
	return res.Data.Clone(), nil
}
