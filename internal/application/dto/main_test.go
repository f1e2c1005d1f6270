package dto_test

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
)

// Mismo formato de montos que los binarios de cmd/.
func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}
