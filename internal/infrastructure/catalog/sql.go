package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
)

// WriteSQL escribe INSERTs idempotentes (ON CONFLICT) para la tabla products.
// newID genera los IDs; nil usa UUIDs aleatorios.
func WriteSQL(w io.Writer, products []dto.ProductInput, newID func() string) error {
	if newID == nil {
		newID = uuid.NewString
	}
	if _, err := fmt.Fprintf(w, "-- Catálogo de productos (%d)\n", len(products)); err != nil {
		return err
	}
	for _, in := range products {
		desc := "NULL"
		if in.Description != nil {
			desc = quote(*in.Description)
		}
		_, err := fmt.Fprintf(w,
			"INSERT INTO products (id, name, category, stock, unit, price, min_stock, supplier, description)\n"+
				"VALUES (%s, %s, %s, %d, %s, %s, %d, %s, %s)\nON CONFLICT (id) DO NOTHING;\n",
			quote(newID()), quote(in.Name), quote(in.Category), in.Stock, quote(in.Unit),
			in.Price.StringFixed(2), in.MinStock, quote(in.Supplier), desc)
		if err != nil {
			return err
		}
	}
	return nil
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
