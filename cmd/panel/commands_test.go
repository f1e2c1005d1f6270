package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/ports/portstest"
	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/apiclient"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/memory"
	"github.com/jhoicas/panel-minorista/pkg/logger"
)

type fixture struct {
	p      *panel
	client *portstest.FakeClient
	kv     *memory.KeyValueStore
	out    *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := portstest.NewFakeClient()
	for _, su := range apiclient.SeedUsers() {
		client.Users[su.User.Username+":"+su.Password] = dto.LoginResult{User: su.User, Token: "tok-" + su.User.ID}
	}
	client.Products = apiclient.SeedProducts()
	client.Sales = apiclient.SeedSales()
	client.Purchases = apiclient.SeedPurchases()

	kv := memory.NewKeyValueStore()
	p := newPanel(client, kv, logger.Nop())
	out := &bytes.Buffer{}
	p.out = out
	p.now = func() time.Time { return time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC) }
	p.session.Init(context.Background())
	return &fixture{p: p, client: client, kv: kv, out: out}
}

func (f *fixture) run(t *testing.T, args ...string) error {
	t.Helper()
	f.out.Reset()
	return f.p.run(context.Background(), args)
}

func TestPanel_RequiereSesion(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.run(t, "products"), errNoSession)
	assert.Equal(t, 0, f.client.CallCount("GetProducts"))
	assert.Error(t, f.run(t, "inexistente"))
	assert.Error(t, f.run(t))
}

func TestPanel_LoginLogout(t *testing.T) {
	f := newFixture(t)

	err := f.run(t, "login", "admin", "mal")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	require.NoError(t, f.run(t, "login", "admin", "admin"))
	assert.Contains(t, f.out.String(), "Bienvenido, Juan Pérez (Administrador)")
	tok, ok, err := f.kv.Get(context.Background(), repository.KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", tok)

	require.NoError(t, f.run(t, "whoami"))
	assert.Contains(t, f.out.String(), "admin@example.com")

	require.NoError(t, f.run(t, "logout"))
	_, ok, err = f.kv.Get(context.Background(), repository.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, f.run(t, "whoami"), errNoSession)
}

func TestPanel_ProductosBusquedaYStockBajo(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "login", "vendedor", "vendedor"))

	require.NoError(t, f.run(t, "products", "-q", "ACEITE"))
	out := f.out.String()
	assert.Contains(t, out, "Aceite de Oliva Extra Virgen 1L")
	assert.NotContains(t, out, "Manzanas Rojas")

	require.NoError(t, f.run(t, "products", "-low"))
	rows := strings.Split(strings.TrimSpace(f.out.String()), "\n")
	assert.Len(t, rows, 4, "cabecera + 3 productos bajo mínimo")
	assert.Equal(t, 1, f.client.CallCount("GetProducts"), "el listado se carga una sola vez")
}

func TestPanel_AltaProductoValidaAntesDeLlamar(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "login", "admin", "admin"))

	err := f.run(t, "add-product", "-category", "Lácteos")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, f.client.CallCount("CreateProduct"))

	require.NoError(t, f.run(t, "add-product", "-name", "Queso", "-category", "Lácteos", "-stock", "3", "-price", "9.90", "-min", "4"))
	assert.Contains(t, f.out.String(), "Producto creado: Queso")
	assert.Equal(t, 6, f.p.products.Len())
}

func TestPanel_ActualizarYEliminar(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "login", "admin", "admin"))

	require.NoError(t, f.run(t, "update-product", "5", "-stock", "10"))
	assert.Contains(t, f.out.String(), "stock 10 (Crítico)")
	got, ok := f.p.products.Find("5")
	require.True(t, ok)
	assert.Equal(t, "Manzanas Rojas", got.Name)

	assert.Error(t, f.run(t, "update-product", "5", "-price", "abc"))
	assert.Error(t, f.run(t, "update-product"))

	require.NoError(t, f.run(t, "delete-product", "5"))
	_, ok = f.p.products.Find("5")
	assert.False(t, ok)
}

func TestPanel_Ventas(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "login", "vendedor", "vendedor"))

	require.NoError(t, f.run(t, "sales"))
	assert.Contains(t, f.out.String(), "María González")

	require.NoError(t, f.run(t, "add-sale", "-customer", "Luis", "-payment", "Tarjeta",
		"-item", "Aceitunas Verdes 500g:2:12.50", "-item", "Manzanas Rojas:1:3.5"))
	assert.Contains(t, f.out.String(), "por 28.50")
	assert.Equal(t, 4, f.p.sales.Len())

	assert.Error(t, f.run(t, "add-sale", "-customer", "Luis", "-item", "sin-cantidad"))
	assert.Error(t, f.run(t, "add-sale", "-customer", "Luis", "-payment", "Cheque", "-item", "X:1:1"))
}

func TestPanel_Compras(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "login", "admin", "admin"))

	require.NoError(t, f.run(t, "add-purchase", "-supplier", "Proveedor D", "-item", "Manzanas Rojas:20:2.5"))
	assert.Contains(t, f.out.String(), "por 50.00")

	require.NoError(t, f.run(t, "purchases"))
	assert.Contains(t, f.out.String(), "Proveedor D")
	assert.Contains(t, f.out.String(), "Pendiente")
}

func TestPanel_MenuPorRol(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "login", "vendedor", "vendedor"))
	require.NoError(t, f.run(t, "menu"))
	assert.Contains(t, f.out.String(), "Inventario")
	assert.NotContains(t, f.out.String(), "Usuarios")
}

func TestPanel_DashboardYReporte(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "login", "admin", "admin"))

	require.NoError(t, f.run(t, "dashboard"))
	assert.Contains(t, f.out.String(), "Productos: 5 (110 unidades en stock)")
	assert.Contains(t, f.out.String(), "Ventas: 3 por 260.25")

	path := filepath.Join(t.TempDir(), "r.pdf")
	require.NoError(t, f.run(t, "report", "-out", path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestPanel_Reposicion(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.run(t, "login", "vendedor", "vendedor"))

	require.NoError(t, f.run(t, "replenish"))
	lines := strings.Split(strings.TrimSpace(f.out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Aceitunas Verdes 500g")
	assert.Contains(t, lines[1], "212.50")
	assert.Contains(t, lines[2], "31.43")
	assert.Equal(t, 0, f.client.CallCount("CreatePurchase"))

	require.NoError(t, f.run(t, "replenish", "-draft"))
	assert.Equal(t, 3, f.client.CallCount("CreatePurchase"))
	assert.Contains(t, f.out.String(), "Proveedor B por 90.00")
}

func TestPanel_Tema(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run(t, "theme"))
	assert.Contains(t, f.out.String(), "Tema: system")

	require.NoError(t, f.run(t, "theme", "dark"))
	v, ok, err := f.kv.Get(context.Background(), repository.KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	assert.Error(t, f.run(t, "theme", "sepia"))
}

func TestLineFlag_ProductoConDosPuntos(t *testing.T) {
	var l lineFlag
	require.NoError(t, l.Set("Té: verde:3:1.5"))
	require.Len(t, l, 1)
	assert.Equal(t, "Té: verde", l[0].product)
	assert.Equal(t, 3, l[0].quantity)
}
