package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panel-minorista/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWeightedAverageCost(t *testing.T) {
	got := inventory.WeightedAverageCost(d("10"), d("5"), d("30"), d("9"))
	assert.True(t, got.Equal(d("8")), got.String())

	assert.True(t, inventory.WeightedAverageCost(d("0"), d("0"), d("0"), d("7")).IsZero())
}

func TestCostBook(t *testing.T) {
	b := inventory.NewCostBook()
	b.Add("Aceite", 15, d("18"))
	b.Add("Aceite", 5, d("22"))
	b.Add("Aceite", 0, d("100"))

	c, ok := b.Cost("Aceite")
	assert.True(t, ok)
	assert.True(t, c.Equal(d("19")), c.String())

	_, ok = b.Cost("Queso")
	assert.False(t, ok)
}
