package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-minorista/internal/application/analytics"
	"github.com/jhoicas/panel-minorista/internal/application/ports/portstest"
	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/infrastructure/apiclient"
)

func newFake() *portstest.FakeClient {
	fc := portstest.NewFakeClient()
	fc.Products = apiclient.SeedProducts()
	fc.Sales = apiclient.SeedSales()
	fc.Purchases = apiclient.SeedPurchases()
	return fc
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "esperado %s, obtenido %s", want, got)
}

func TestGetSummary_DatosSimulados(t *testing.T) {
	uc := analytics.NewDashboardUseCase(newFake())
	sum, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, sum.TotalProducts)
	assert.Equal(t, 110, sum.TotalStockUnits)

	require.Len(t, sum.LowStock, 3)
	assert.Equal(t, "Aceite de Oliva Extra Virgen 1L", sum.LowStock[0].Name)
	assert.Equal(t, entity.StockCritical, sum.LowStock[0].Status)
	assert.Equal(t, "Aceitunas Verdes 500g", sum.LowStock[1].Name)
	assert.Equal(t, "Mermelada de Fresa 250g", sum.LowStock[2].Name)
	assert.Equal(t, entity.StockLow, sum.LowStock[2].Status)

	assert.Equal(t, 3, sum.SalesCount)
	assertDec(t, "260.25", sum.SalesTotal)

	require.Len(t, sum.DailySales, 3)
	assert.Equal(t, "2024-01-13", sum.DailySales[0].Date)
	assert.Equal(t, "2024-01-15", sum.DailySales[2].Date)
	assertDec(t, "125.5", sum.DailySales[2].Total)

	require.Len(t, sum.ByPaymentMethod, 3)
	assert.Equal(t, entity.PaymentCash, sum.ByPaymentMethod[0].PaymentMethod)
	assertDec(t, "89", sum.ByPaymentMethod[1].Total)

	require.Len(t, sum.TopProducts, 5)
	assert.Equal(t, "Aceitunas Negras 500g", sum.TopProducts[0].Name)
	assertDec(t, "56", sum.TopProducts[0].Revenue)
	assert.Equal(t, "Mermelada de Fresa 250g", sum.TopProducts[1].Name)
	assert.Equal(t, 5, sum.TopProducts[1].Units)
	assert.Equal(t, "Aceite de Oliva 1L", sum.TopProducts[2].Name)
	assert.Equal(t, "Otros", sum.TopProducts[2].Category)

	require.Len(t, sum.SalesByCategory, 4)
	assert.Equal(t, "Aceitunas", sum.SalesByCategory[0].Category)
	assertDec(t, "81", sum.SalesByCategory[0].Revenue)
	assertDec(t, "48.43", sum.SalesByCategory[0].Percentage)
	assertDec(t, "26.16", sum.SalesByCategory[1].Percentage)
	share := decimal.Zero
	for _, c := range sum.SalesByCategory {
		share = share.Add(c.Percentage)
	}
	assert.True(t, share.Sub(dec("100")).Abs().LessThanOrEqual(dec("0.05")), "participaciones suman %s", share)

	assert.Equal(t, 1, sum.PendingPurchases)
	assertDec(t, "450", sum.PendingAmount)
	assertDec(t, "1170", sum.PurchasesCompleted)
}

func TestGetSummary_PropagaErrores(t *testing.T) {
	fc := newFake()
	fc.ErrGetSales = domain.HTTPError(500)

	_, err := analytics.NewDashboardUseCase(fc).GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dashboard: ventas")
	assert.Equal(t, domain.KindHTTP, domain.KindOf(err))
}

func TestSummarize_Vacio(t *testing.T) {
	sum := analytics.Summarize(nil, nil, nil)
	assert.Zero(t, sum.TotalProducts)
	assert.Empty(t, sum.LowStock)
	assert.Empty(t, sum.TopProducts)
	assert.True(t, sum.SalesTotal.IsZero())
}
