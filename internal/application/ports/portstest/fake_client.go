// Package portstest ofrece un APIClient en memoria para pruebas de los casos de uso.
package portstest

import (
	"context"
	"strconv"
	"sync"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/ports"
	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

var _ ports.APIClient = (*FakeClient)(nil)

// FakeClient responde con los datos cargados en sus campos. Los campos Err* fuerzan fallos
// por método. Las mutaciones no alteran los listados, igual que el servidor simulado.
type FakeClient struct {
	mu sync.Mutex

	Users     map[string]dto.LoginResult // clave: usuario+":"+password
	Me        *entity.User
	Products  []entity.Product
	Sales     []entity.Sale
	Purchases []entity.Purchase
	Stats     dto.DashboardStats

	ErrLogin, ErrMe, ErrGetProducts, ErrCreateProduct, ErrUpdateProduct, ErrDeleteProduct error
	ErrGetSales, ErrCreateSale, ErrGetPurchases, ErrCreatePurchase, ErrStats             error

	Calls  map[string]int
	nextID int
}

// NewFakeClient cliente vacío con ids asignados desde 100.
func NewFakeClient() *FakeClient {
	return &FakeClient{Users: map[string]dto.LoginResult{}, Calls: map[string]int{}, nextID: 100}
}

// CallCount veces que se invocó el método.
func (f *FakeClient) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[method]
}

func (f *FakeClient) track(method string) {
	f.mu.Lock()
	f.Calls[method]++
	f.mu.Unlock()
}

func (f *FakeClient) newID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return strconv.Itoa(f.nextID)
}

func (f *FakeClient) Login(_ context.Context, username, password string) (*dto.APIResponse[dto.LoginResult], error) {
	f.track("Login")
	if f.ErrLogin != nil {
		return nil, f.ErrLogin
	}
	res, ok := f.Users[username+":"+password]
	if !ok {
		return nil, domain.NewError(domain.KindInvalidCredentials, domain.ErrInvalidCredentials.Error(), domain.ErrInvalidCredentials)
	}
	return dto.OK(res, "Login successful"), nil
}

func (f *FakeClient) GetCurrentUser(_ context.Context) (*dto.APIResponse[entity.User], error) {
	f.track("GetCurrentUser")
	if f.ErrMe != nil {
		return nil, f.ErrMe
	}
	if f.Me == nil {
		return nil, domain.HTTPError(401)
	}
	return dto.OK(*f.Me, "User retrieved successfully"), nil
}

func (f *FakeClient) GetProducts(_ context.Context) (*dto.APIResponse[[]entity.Product], error) {
	f.track("GetProducts")
	if f.ErrGetProducts != nil {
		return nil, f.ErrGetProducts
	}
	out := make([]entity.Product, len(f.Products))
	for i, p := range f.Products {
		out[i] = p.Clone()
	}
	return dto.OK(out, "Products retrieved successfully"), nil
}

func (f *FakeClient) CreateProduct(_ context.Context, in dto.ProductInput) (*dto.APIResponse[entity.Product], error) {
	f.track("CreateProduct")
	if f.ErrCreateProduct != nil {
		return nil, f.ErrCreateProduct
	}
	return dto.OK(in.ToEntity(f.newID()), "Product created"), nil
}

func (f *FakeClient) UpdateProduct(_ context.Context, id string, patch dto.ProductPatch) (*dto.APIResponse[entity.Product], error) {
	f.track("UpdateProduct")
	if f.ErrUpdateProduct != nil {
		return nil, f.ErrUpdateProduct
	}
	for _, p := range f.Products {
		if p.ID == id {
			return dto.OK(patch.Apply(p), "Product updated"), nil
		}
	}
	return nil, domain.HTTPError(404)
}

func (f *FakeClient) DeleteProduct(_ context.Context, _ string) (*dto.APIResponse[dto.Empty], error) {
	f.track("DeleteProduct")
	if f.ErrDeleteProduct != nil {
		return nil, f.ErrDeleteProduct
	}
	return dto.OK(dto.Empty{}, "Product deleted"), nil
}

func (f *FakeClient) GetSales(_ context.Context) (*dto.APIResponse[[]entity.Sale], error) {
	f.track("GetSales")
	if f.ErrGetSales != nil {
		return nil, f.ErrGetSales
	}
	out := make([]entity.Sale, len(f.Sales))
	for i, s := range f.Sales {
		out[i] = s.Clone()
	}
	return dto.OK(out, "Sales retrieved successfully"), nil
}

func (f *FakeClient) CreateSale(_ context.Context, in dto.SaleInput) (*dto.APIResponse[entity.Sale], error) {
	f.track("CreateSale")
	if f.ErrCreateSale != nil {
		return nil, f.ErrCreateSale
	}
	return dto.OK(in.ToEntity(f.newID()), "Sale created"), nil
}

func (f *FakeClient) GetPurchases(_ context.Context) (*dto.APIResponse[[]entity.Purchase], error) {
	f.track("GetPurchases")
	if f.ErrGetPurchases != nil {
		return nil, f.ErrGetPurchases
	}
	out := make([]entity.Purchase, len(f.Purchases))
	for i, p := range f.Purchases {
		out[i] = p.Clone()
	}
	return dto.OK(out, "Purchases retrieved successfully"), nil
}

func (f *FakeClient) CreatePurchase(_ context.Context, in dto.PurchaseInput) (*dto.APIResponse[entity.Purchase], error) {
	f.track("CreatePurchase")
	if f.ErrCreatePurchase != nil {
		return nil, f.ErrCreatePurchase
	}
	return dto.OK(in.ToEntity(f.newID()), "Purchase created"), nil
}

func (f *FakeClient) GetDashboardStats(_ context.Context) (*dto.APIResponse[dto.DashboardStats], error) {
	f.track("GetDashboardStats")
	if f.ErrStats != nil {
		return nil, f.ErrStats
	}
	return dto.OK(f.Stats, "Stats retrieved successfully"), nil
}
