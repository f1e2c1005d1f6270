package store_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/ports/portstest"
	"github.com/jhoicas/panel-minorista/internal/application/store"
	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

func seedProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Aceitunas Verdes 500g", Category: "Aceitunas", Stock: 5, Unit: "unidades", Price: decimal.NewFromFloat(12.5), MinStock: 20},
		{ID: "2", Name: "Mermelada de Fresa 250g", Category: "Conservas", Stock: 8, Unit: "unidades", Price: decimal.NewFromFloat(8.75), MinStock: 15},
		{ID: "3", Name: "Manzanas Rojas", Category: "Frutas", Stock: 50, Unit: "kg", Price: decimal.NewFromFloat(3.5), MinStock: 30},
	}
}

func newProductStore(t *testing.T) (*store.ProductStore, *portstest.FakeClient) {
	t.Helper()
	fc := portstest.NewFakeClient()
	fc.Products = seedProducts()
	s := store.NewProductStore(fc, nil)
	return s, fc
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCollection_EstadoInicial(t *testing.T) {
	s, _ := newProductStore(t)
	assert.True(t, s.IsLoading())
	assert.Empty(t, s.Error())
	assert.Zero(t, s.Len())
}

func TestCollection_MountUnaSolaVez(t *testing.T) {
	s, fc := newProductStore(t)
	ctx := context.Background()

	s.Mount(ctx)
	s.Mount(ctx)

	assert.Equal(t, 1, fc.CallCount("GetProducts"))
	assert.False(t, s.IsLoading())
	assert.Len(t, s.Items(), 3)
}

func TestCollection_FalloDeCargaQuedaEnError(t *testing.T) {
	s, fc := newProductStore(t)
	fc.ErrGetProducts = domain.HTTPError(500)

	s.Mount(context.Background())

	assert.False(t, s.IsLoading())
	assert.Equal(t, "HTTP error! status: 500", s.Error())
	assert.Empty(t, s.Items())
}

func TestCollection_FalloSinMensajeUsaElPorDefecto(t *testing.T) {
	s, fc := newProductStore(t)
	fc.ErrGetProducts = errors.New("")

	s.Refetch(context.Background())
	assert.Equal(t, "Error al cargar productos", s.Error())
}

func TestCollection_RefetchLimpiaErrorYConservaItemsAnteFallo(t *testing.T) {
	s, fc := newProductStore(t)
	ctx := context.Background()
	s.Mount(ctx)

	fc.ErrGetProducts = domain.HTTPError(503)
	s.Refetch(ctx)
	assert.Len(t, s.Items(), 3, "un fallo no vacía la colección")
	assert.NotEmpty(t, s.Error())

	fc.ErrGetProducts = nil
	s.Refetch(ctx)
	assert.Empty(t, s.Error())
}

func TestCollection_ItemsEsCopia(t *testing.T) {
	s, _ := newProductStore(t)
	s.Mount(context.Background())

	items := s.Items()
	items[0].Name = "cambiado"
	assert.Equal(t, "Aceitunas Verdes 500g", s.Items()[0].Name)
}

func TestCollection_Subscribe(t *testing.T) {
	s, _ := newProductStore(t)
	var n int32
	cancel := s.Subscribe(func() { atomic.AddInt32(&n, 1) })

	s.Refetch(context.Background())
	assert.Equal(t, int32(2), atomic.LoadInt32(&n), "inicio y fin de la carga")

	cancel()
	s.Refetch(context.Background())
	assert.Equal(t, int32(2), atomic.LoadInt32(&n))
}

func TestProductStore_CreateAgregaAlFinal(t *testing.T) {
	s, _ := newProductStore(t)
	ctx := context.Background()
	s.Mount(ctx)

	in := dto.ProductInput{
		Name: "Queso Manchego", Category: "Lácteos", Stock: 10, Unit: "unidades",
		Price: decimal.RequireFromString("18.40"), MinStock: 4, Supplier: "Proveedor E",
		Description: strPtr("curado"),
	}
	created, err := s.Create(ctx, in)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	items := s.Items()
	require.Len(t, items, 4)
	last := items[3]
	assert.Equal(t, in.ToEntity(created.ID), last)

	count := 0
	for _, p := range items {
		if p.ID == created.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestProductStore_CreateInvalidoNoLlamaAlServidor(t *testing.T) {
	s, fc := newProductStore(t)
	_, err := s.Create(context.Background(), dto.ProductInput{Name: "", Stock: -1})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Zero(t, fc.CallCount("CreateProduct"))
}

func TestProductStore_CreateFalloSeDevuelveYNoSeGuarda(t *testing.T) {
	s, fc := newProductStore(t)
	ctx := context.Background()
	s.Mount(ctx)
	fc.ErrCreateProduct = errors.New("conexión rechazada")

	_, err := s.Create(ctx, dto.ProductInput{Name: "X", Category: "Y", Unit: "kg", Price: decimal.NewFromInt(1)})
	require.Error(t, err)
	assert.Equal(t, "Error al crear producto", err.Error())
	assert.Equal(t, domain.KindUnknown, domain.KindOf(err))
	assert.Empty(t, s.Error(), "los fallos de mutación no ocupan el slot de error")
	assert.Len(t, s.Items(), 3)
}

func TestProductStore_UpdateSoloElObjetivo(t *testing.T) {
	s, _ := newProductStore(t)
	ctx := context.Background()
	s.Mount(ctx)
	before := s.Items()

	updated, err := s.Update(ctx, "2", dto.ProductPatch{Stock: intPtr(40), Name: strPtr("Mermelada de Mora 250g")})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Stock)

	after := s.Items()
	require.Len(t, after, 3)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
	assert.Equal(t, "Mermelada de Mora 250g", after[1].Name)
	assert.Equal(t, "Conservas", after[1].Category)
}

func TestProductStore_UpdateFallido(t *testing.T) {
	s, _ := newProductStore(t)
	ctx := context.Background()
	s.Mount(ctx)

	_, err := s.Update(ctx, "99", dto.ProductPatch{Stock: intPtr(1)})
	require.Error(t, err)
	assert.Equal(t, "HTTP error! status: 404", err.Error())

	_, err = s.Update(ctx, "", dto.ProductPatch{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductStore_Delete(t *testing.T) {
	s, _ := newProductStore(t)
	ctx := context.Background()
	s.Mount(ctx)

	require.NoError(t, s.Delete(ctx, "1"))
	for _, p := range s.Items() {
		assert.NotEqual(t, "1", p.ID)
	}
	assert.Len(t, s.Items(), 2)

	before := s.Items()
	require.NoError(t, s.Delete(ctx, "no-existe"))
	assert.Equal(t, before, s.Items())
}

func TestProductStore_DeleteFallido(t *testing.T) {
	s, fc := newProductStore(t)
	ctx := context.Background()
	s.Mount(ctx)
	fc.ErrDeleteProduct = domain.HTTPError(500)

	err := s.Delete(ctx, "1")
	require.Error(t, err)
	assert.Len(t, s.Items(), 3)
}

func TestProductStore_RefetchDescartaCambiosLocales(t *testing.T) {
	s, _ := newProductStore(t)
	ctx := context.Background()
	s.Mount(ctx)
	original := s.Items()

	_, err := s.Create(ctx, dto.ProductInput{Name: "X", Category: "Y", Unit: "kg", Price: decimal.NewFromInt(1)})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "1"))
	_, err = s.Update(ctx, "2", dto.ProductPatch{Stock: intPtr(0)})
	require.NoError(t, err)

	s.Refetch(ctx)
	assert.Equal(t, original, s.Items())
}

func TestProductStore_SearchSinTildesNiMayusculas(t *testing.T) {
	s, fc := newProductStore(t)
	fc.Products = append(fc.Products, entity.Product{ID: "9", Name: "Café Molido", Category: "Bebidas", Unit: "kg"})
	s.Mount(context.Background())

	assert.Len(t, s.Search(""), 4)
	assert.Len(t, s.Search("ACEITUNAS"), 1)
	assert.Len(t, s.Search("cafe"), 1)
	assert.Len(t, s.Search("conservas"), 1)
	assert.Empty(t, s.Search("zzz"))
}

func TestProductStore_LowStock(t *testing.T) {
	s, _ := newProductStore(t)
	s.Mount(context.Background())

	low := s.LowStock()
	require.Len(t, low, 2)
	assert.Equal(t, entity.StockCritical, low[0].Status())
	assert.Equal(t, entity.StockLow, low[1].Status())
}

func validSale() dto.SaleInput {
	return dto.SaleInput{
		Date:          "2024-01-16",
		Customer:      "Pedro Ruiz",
		Total:         decimal.RequireFromString("51.25"),
		PaymentMethod: entity.PaymentCard,
		Items: []entity.SaleItem{
			{Product: "Aceitunas Verdes 500g", Quantity: 2, UnitPrice: decimal.NewFromFloat(12.5)},
			{Product: "Mermelada de Fresa 250g", Quantity: 3, UnitPrice: decimal.NewFromFloat(8.75)},
		},
	}
}

func TestSaleStore_Create(t *testing.T) {
	fc := portstest.NewFakeClient()
	fc.Sales = []entity.Sale{{ID: "1", Date: "2024-01-15", Customer: "A", Total: decimal.NewFromFloat(125.5), PaymentMethod: entity.PaymentCash}}
	s := store.NewSaleStore(fc, nil)
	ctx := context.Background()
	s.Mount(ctx)

	sale, err := s.Create(ctx, validSale())
	require.NoError(t, err)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, sale.ID, items[1].ID)
	assert.Equal(t, validSale().ToEntity(sale.ID), items[1])
}

func TestSaleStore_TotalDescuadrado(t *testing.T) {
	fc := portstest.NewFakeClient()
	s := store.NewSaleStore(fc, nil)

	in := validSale()
	in.Total = decimal.NewFromInt(100)
	_, err := s.Create(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTotalMismatch)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Zero(t, fc.CallCount("CreateSale"))
}

func TestSaleStore_ErrorDeCarga(t *testing.T) {
	fc := portstest.NewFakeClient()
	fc.ErrGetSales = errors.New("")
	s := store.NewSaleStore(fc, nil)
	s.Mount(context.Background())
	assert.Equal(t, "Error al cargar ventas", s.Error())
}

func TestPurchaseStore_Create(t *testing.T) {
	fc := portstest.NewFakeClient()
	s := store.NewPurchaseStore(fc, nil)
	ctx := context.Background()
	s.Mount(ctx)

	in := dto.PurchaseInput{
		Date: "2024-01-16", Supplier: "Proveedor A", Total: decimal.NewFromInt(425),
		Status: entity.PurchasePending,
		Items:  []entity.PurchaseItem{{Product: "Aceitunas Verdes 500g", Quantity: 50, UnitCost: decimal.NewFromFloat(8.5)}},
	}
	p, err := s.Create(ctx, in)
	require.NoError(t, err)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, in.ToEntity(p.ID), s.Items()[0])

	fc.ErrCreatePurchase = domain.NewError(domain.KindRejected, "proveedor bloqueado", nil)
	_, err = s.Create(ctx, in)
	assert.Equal(t, "proveedor bloqueado", err.Error())
	assert.Len(t, s.Items(), 1)
}
