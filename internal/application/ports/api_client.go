package ports

import (
	"context"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

// APIClient define el puerto de interacción con el "servidor".
// Cada método devuelve el sobre con success=true o un error (*domain.Error); nunca ambos.
type APIClient interface {
	Login(ctx context.Context, username, password string) (*dto.APIResponse[dto.LoginResult], error)
	GetCurrentUser(ctx context.Context) (*dto.APIResponse[entity.User], error)

	GetProducts(ctx context.Context) (*dto.APIResponse[[]entity.Product], error)
	CreateProduct(ctx context.Context, in dto.ProductInput) (*dto.APIResponse[entity.Product], error)
	UpdateProduct(ctx context.Context, id string, patch dto.ProductPatch) (*dto.APIResponse[entity.Product], error)
	DeleteProduct(ctx context.Context, id string) (*dto.APIResponse[dto.Empty], error)

	GetSales(ctx context.Context) (*dto.APIResponse[[]entity.Sale], error)
	CreateSale(ctx context.Context, in dto.SaleInput) (*dto.APIResponse[entity.Sale], error)

	GetPurchases(ctx context.Context) (*dto.APIResponse[[]entity.Purchase], error)
	CreatePurchase(ctx context.Context, in dto.PurchaseInput) (*dto.APIResponse[entity.Purchase], error)

	GetDashboardStats(ctx context.Context) (*dto.APIResponse[dto.DashboardStats], error)
}
