package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

func TestClassifyStock(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		minStock int
		want     entity.StockStatus
	}{
		{"aceitunas verdes", 5, 20, entity.StockCritical},
		{"justo en la mitad", 10, 20, entity.StockCritical},
		{"mitad impar", 7, 15, entity.StockCritical},
		{"sobre la mitad impar", 8, 15, entity.StockLow},
		{"igual al mínimo", 20, 20, entity.StockLow},
		{"sobre el mínimo", 35, 20, entity.StockNormal},
		{"mínimo cero y stock cero", 0, 0, entity.StockCritical},
		{"mínimo cero", 1, 0, entity.StockNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.ClassifyStock(tc.stock, tc.minStock))
		})
	}
}

func TestProductValidate(t *testing.T) {
	p := entity.Product{Name: "x", Stock: 1, MinStock: 0, Price: decimal.NewFromFloat(1.5)}
	assert.NoError(t, p.Validate())

	p.Stock = -1
	assert.Error(t, p.Validate())

	p.Stock = 0
	p.MinStock = -2
	assert.Error(t, p.Validate())

	p.MinStock = 0
	p.Price = decimal.NewFromInt(-1)
	assert.Error(t, p.Validate())
}

func TestSaleItemsTotal(t *testing.T) {
	s := entity.Sale{Items: []entity.SaleItem{
		{Product: "Aceitunas Verdes 500g", Quantity: 2, UnitPrice: decimal.NewFromFloat(12.5)},
		{Product: "Mermelada de Fresa 250g", Quantity: 3, UnitPrice: decimal.NewFromFloat(8.75)},
	}}
	assert.True(t, s.ItemsTotal().Equal(decimal.NewFromFloat(51.25)), s.ItemsTotal().String())
}

func TestEnums(t *testing.T) {
	assert.True(t, entity.RoleAdministrador.Valid())
	assert.True(t, entity.RoleVendedor.Valid())
	assert.False(t, entity.Role("admin").Valid())
	assert.True(t, entity.PaymentTransfer.Valid())
	assert.False(t, entity.PaymentMethod("Cheque").Valid())
	assert.True(t, entity.PurchaseCanceled.Valid())
	assert.False(t, entity.PurchaseStatus("Borrador").Valid())
}

func TestProductCloneDoesNotShareDescription(t *testing.T) {
	d := "original"
	p := entity.Product{Description: &d}
	c := p.Clone()
	*c.Description = "cambiada"
	assert.Equal(t, "original", *p.Description)
}
