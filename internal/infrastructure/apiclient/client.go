// Package apiclient implementa ports.APIClient: los listados, el login y el usuario
// actual son simulados con latencia artificial; las mutaciones y el dashboard
// viajan por HTTP al backend configurado.
package apiclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/ports"
	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
	pkgjwt "github.com/jhoicas/panel-minorista/pkg/jwt"
	"github.com/jhoicas/panel-minorista/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa APIClient.
var _ ports.APIClient = (*Client)(nil)

// fallbackToken se entrega cuando no hay secret JWT configurado.
const fallbackToken = "fake-jwt-token"

// Config parámetros del cliente.
type Config struct {
	BaseURL    string
	LoginDelay time.Duration
	FetchDelay time.Duration
	RemoteAuth bool // login y usuario actual contra el backend
	Timeout    time.Duration

	JWTSecret     string
	JWTIssuer     string
	JWTExpMinutes int
}

// Client cliente de API del panel.
type Client struct {
	cfg        Config
	httpClient *http.Client
	storage    repository.KeyValueStore
	log        *logger.Logger
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests, transportes propios).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient construye el cliente. storage es de donde se lee el token para el header Authorization.
func NewClient(cfg Config, storage repository.KeyValueStore, log *logger.Logger, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.JWTExpMinutes <= 0 {
		cfg.JWTExpMinutes = 60
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		storage:    storage,
		log:        log.Component("apiclient"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// Login compara contra los dos pares de credenciales fijos tras la latencia simulada.
// No hay hash ni rate limiting: no es una frontera de seguridad.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.APIResponse[dto.LoginResult], error) {
	if c.cfg.RemoteAuth {
		return request[dto.LoginResult](ctx, c, http.MethodPost, "/auth/login",
			dto.LoginRequest{Username: username, Password: password})
	}
	if err := c.sleep(ctx, c.cfg.LoginDelay); err != nil {
		return nil, err
	}
	for _, cred := range mockCredentials() {
		if cred.username == username && cred.password == password {
			token, err := c.issueToken(cred.user)
			if err != nil {
				return nil, domain.NewError(domain.KindUnknown, "no se pudo emitir el token", err)
			}
			return dto.OK(dto.LoginResult{User: cred.user, Token: token}, "Login successful"), nil
		}
	}
	c.log.Warn().Str("username", username).Msg("login rechazado")
	return nil, domain.NewError(domain.KindInvalidCredentials, domain.ErrInvalidCredentials.Error(), domain.ErrInvalidCredentials)
}

func (c *Client) issueToken(u entity.User) (string, error) {
	if c.cfg.JWTSecret == "" {
		return fallbackToken, nil
	}
	return pkgjwt.Generate(c.cfg.JWTSecret, u.ID, u.Username, string(u.Role), c.cfg.JWTIssuer, c.cfg.JWTExpMinutes)
}

// GetCurrentUser devuelve siempre el administrador; no valida el token almacenado.
func (c *Client) GetCurrentUser(ctx context.Context) (*dto.APIResponse[entity.User], error) {
	if c.cfg.RemoteAuth {
		return request[entity.User](ctx, c, http.MethodGet, "/auth/me", nil)
	}
	if err := c.sleep(ctx, c.cfg.FetchDelay); err != nil {
		return nil, err
	}
	return dto.OK(adminUser(), "User retrieved successfully"), nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// GetProducts devuelve el dataset fijo de productos.
func (c *Client) GetProducts(ctx context.Context) (*dto.APIResponse[[]entity.Product], error) {
	if err := c.sleep(ctx, c.cfg.FetchDelay); err != nil {
		return nil, err
	}
	return dto.OK(mockProducts(), "Products retrieved successfully"), nil
}

func (c *Client) CreateProduct(ctx context.Context, in dto.ProductInput) (*dto.APIResponse[entity.Product], error) {
	return request[entity.Product](ctx, c, http.MethodPost, "/products", in)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, patch dto.ProductPatch) (*dto.APIResponse[entity.Product], error) {
	return request[entity.Product](ctx, c, http.MethodPut, "/products/"+pathEscape(id), patch)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) (*dto.APIResponse[dto.Empty], error) {
	return request[dto.Empty](ctx, c, http.MethodDelete, "/products/"+pathEscape(id), nil)
}

// ── Ventas y compras ──────────────────────────────────────────────────────────

// GetSales devuelve el dataset fijo de ventas.
func (c *Client) GetSales(ctx context.Context) (*dto.APIResponse[[]entity.Sale], error) {
	if err := c.sleep(ctx, c.cfg.FetchDelay); err != nil {
		return nil, err
	}
	return dto.OK(mockSales(), "Sales retrieved successfully"), nil
}

func (c *Client) CreateSale(ctx context.Context, in dto.SaleInput) (*dto.APIResponse[entity.Sale], error) {
	return request[entity.Sale](ctx, c, http.MethodPost, "/sales", in)
}

// GetPurchases devuelve el dataset fijo de compras.
func (c *Client) GetPurchases(ctx context.Context) (*dto.APIResponse[[]entity.Purchase], error) {
	if err := c.sleep(ctx, c.cfg.FetchDelay); err != nil {
		return nil, err
	}
	return dto.OK(mockPurchases(), "Purchases retrieved successfully"), nil
}

func (c *Client) CreatePurchase(ctx context.Context, in dto.PurchaseInput) (*dto.APIResponse[entity.Purchase], error) {
	return request[entity.Purchase](ctx, c, http.MethodPost, "/purchases", in)
}

// GetDashboardStats consulta las estadísticas al backend.
func (c *Client) GetDashboardStats(ctx context.Context) (*dto.APIResponse[dto.DashboardStats], error) {
	return request[dto.DashboardStats](ctx, c, http.MethodGet, "/dashboard/stats", nil)
}

// sleep simula la latencia de red respetando la cancelación del contexto.
func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if err := ctx.Err(); err != nil {
			return domain.NewError(domain.KindCanceled, "operación cancelada", err)
		}
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return domain.NewError(domain.KindCanceled, "operación cancelada", ctx.Err())
	}
}
