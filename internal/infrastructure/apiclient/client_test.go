package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/apiclient"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/panel-minorista/pkg/jwt"
)

const testSecret = "apiclient-test-secret"

func newClient(t *testing.T, baseURL string, kv repository.KeyValueStore) *apiclient.Client {
	t.Helper()
	return apiclient.NewClient(apiclient.Config{
		BaseURL:   baseURL,
		JWTSecret: testSecret,
		JWTIssuer: "panel-test",
	}, kv, nil)
}

func TestLogin_Credenciales(t *testing.T) {
	c := newClient(t, "http://unused", memory.NewKeyValueStore())
	ctx := context.Background()

	cases := []struct {
		name     string
		user     string
		pass     string
		wantRole entity.Role
		wantErr  bool
	}{
		{"admin", "admin", "admin", entity.RoleAdministrador, false},
		{"vendedor", "vendedor", "vendedor", entity.RoleVendedor, false},
		{"password incorrecto", "admin", "wrong", "", true},
		{"usuario desconocido", "x", "y", "", true},
		{"vacíos", "", "", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := c.Login(ctx, tc.user, tc.pass)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.KindInvalidCredentials, domain.KindOf(err))
				assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
				assert.Equal(t, "Credenciales inválidas", err.Error())
				return
			}
			require.NoError(t, err)
			assert.True(t, res.Success)
			assert.Equal(t, tc.wantRole, res.Data.User.Role)
			assert.NotEmpty(t, res.Data.Token)

			claims, err := pkgjwt.Parse(testSecret, res.Data.Token)
			require.NoError(t, err)
			assert.Equal(t, res.Data.User.ID, claims.UserID)
		})
	}
}

func TestLogin_SinSecretUsaTokenFijo(t *testing.T) {
	c := apiclient.NewClient(apiclient.Config{BaseURL: "http://unused"}, nil, nil)
	res, err := c.Login(context.Background(), "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "fake-jwt-token", res.Data.Token)
}

func TestGetCurrentUser_SiempreAdmin(t *testing.T) {
	c := newClient(t, "http://unused", nil)
	res, err := c.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", res.Data.Username)
	assert.Equal(t, entity.RoleAdministrador, res.Data.Role)
	assert.Equal(t, "Juan Pérez", res.Data.FullName())
}

func TestGetProducts_DatasetFijo(t *testing.T) {
	c := newClient(t, "http://unused", nil)
	ctx := context.Background()

	first, err := c.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, first.Data, 5)

	p := first.Data[0]
	assert.Equal(t, "Aceitunas Verdes 500g", p.Name)
	assert.Equal(t, 5, p.Stock)
	assert.Equal(t, 20, p.MinStock)
	assert.Equal(t, entity.StockCritical, p.Status())

	// Mutar el resultado no afecta a la siguiente llamada.
	first.Data[0].Stock = 999
	second, err := c.GetProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Data[0].Stock)
}

func TestGetSalesAndPurchases(t *testing.T) {
	c := newClient(t, "http://unused", nil)
	ctx := context.Background()

	sales, err := c.GetSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales.Data, 3)
	assert.True(t, decimal.NewFromFloat(125.5).Equal(sales.Data[0].Total))
	assert.Equal(t, entity.PaymentCash, sales.Data[0].PaymentMethod)

	purchases, err := c.GetPurchases(ctx)
	require.NoError(t, err)
	require.Len(t, purchases.Data, 3)
	assert.Equal(t, entity.PurchasePending, purchases.Data[1].Status)
}

func TestFetch_ContextoCancelado(t *testing.T) {
	c := apiclient.NewClient(apiclient.Config{BaseURL: "http://unused", FetchDelay: time.Second}, nil, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.GetProducts(ctx)
	require.Error(t, err)
	assert.Equal(t, domain.KindCanceled, domain.KindOf(err))
}

func TestCreateProduct_EnviaBearerYJSON(t *testing.T) {
	var gotAuth, gotType, gotMethod, gotPath string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"10","name":"Queso","category":"Lácteos","stock":3,"unit":"unidades","price":9.9,"minStock":2,"supplier":"P"},"message":"ok","success":true}`))
	}))
	defer srv.Close()

	kv := memory.NewKeyValueStore()
	require.NoError(t, kv.Set(context.Background(), repository.KeyToken, "tok-123"))
	c := newClient(t, srv.URL+"/api", kv)

	res, err := c.CreateProduct(context.Background(), dto.ProductInput{
		Name: "Queso", Category: "Lácteos", Stock: 3, Unit: "unidades",
		Price: decimal.NewFromFloat(9.9), MinStock: 2, Supplier: "P",
	})
	require.NoError(t, err)
	assert.Equal(t, "10", res.Data.ID)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/products", gotPath)
	assert.Equal(t, 9.9, gotBody["price"])
}

func TestRequest_SinTokenNoEnviaAuthorization(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, memory.NewKeyValueStore())
	res, err := c.DeleteProduct(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, hasAuth)
}

func TestRequest_StatusNo2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"NOT_FOUND","message":"no existe"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, nil)
	_, err := c.UpdateProduct(context.Background(), "99", dto.ProductPatch{})
	require.Error(t, err)
	assert.Equal(t, "HTTP error! status: 404", err.Error())

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindHTTP, de.Kind)
	assert.Equal(t, 404, de.Status)
}

func TestRequest_SobreRechazado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null,"message":"stock insuficiente","success":false}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, nil)
	_, err := c.CreateSale(context.Background(), dto.SaleInput{})
	require.Error(t, err)
	assert.Equal(t, domain.KindRejected, domain.KindOf(err))
	assert.Equal(t, "stock insuficiente", err.Error())
}

func TestRequest_CuerpoInvalido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, nil)
	_, err := c.GetDashboardStats(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.KindDecode, domain.KindOf(err))
}

func TestRequest_ServidorCaido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newClient(t, url, nil)
	_, err := c.CreatePurchase(context.Background(), dto.PurchaseInput{})
	require.Error(t, err)
	assert.Equal(t, domain.KindNetwork, domain.KindOf(err))
}

func TestRemoteAuth_LoginYMe(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body dto.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Username != "admin" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"user":{"id":"1","username":"admin","role":"Administrador"},"token":"remote-tok"},"message":"ok","success":true}`))
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer remote-tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"id":"1","username":"admin","role":"Administrador"},"message":"ok","success":true}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	kv := memory.NewKeyValueStore()
	c := apiclient.NewClient(apiclient.Config{BaseURL: srv.URL, RemoteAuth: true}, kv, nil)
	ctx := context.Background()

	res, err := c.Login(ctx, "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "remote-tok", res.Data.Token)

	_, err = c.Login(ctx, "otro", "x")
	assert.Equal(t, domain.KindHTTP, domain.KindOf(err))

	require.NoError(t, kv.Set(ctx, repository.KeyToken, res.Data.Token))
	me, err := c.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", me.Data.Username)
}
