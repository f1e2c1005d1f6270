package catalog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/panel-minorista/internal/infrastructure/catalog"
)

const header = "nombre;categoria;stock;unidad;precio;stock_minimo;proveedor;descripcion\n"

func TestParse_UTF8(t *testing.T) {
	src := header +
		"Aceitunas Verdes 500g;Aceitunas;5;unidades;12,50;20;Proveedor A;\n" +
		"Aceite de Oliva 1L;Aceites;12;litros;1.025,00;25;Proveedor C;Prensado en frío\n" +
		"\n"
	products, rowErrs, err := catalog.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, products, 2)

	assert.Equal(t, "Aceitunas Verdes 500g", products[0].Name)
	assert.True(t, decimal.RequireFromString("12.5").Equal(products[0].Price))
	assert.Nil(t, products[0].Description)
	assert.True(t, decimal.RequireFromString("1025").Equal(products[1].Price))
	require.NotNil(t, products[1].Description)
	assert.Equal(t, "Prensado en frío", *products[1].Description)
}

func TestParse_Windows1252(t *testing.T) {
	utf := header + "Mermelada de Fresa;Conservas;8;unidades;8.75;15;Proveedor Ñandú;\n"
	encoded, err := charmap.Windows1252.NewEncoder().String(utf)
	require.NoError(t, err)

	products, rowErrs, err := catalog.Parse(strings.NewReader(encoded))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, products, 1)
	assert.Equal(t, "Proveedor Ñandú", products[0].Supplier)
}

func TestParse_FilasInvalidas(t *testing.T) {
	src := header +
		"Sin stock;X;abc;kg;1;1;P\n" +
		";X;1;kg;1;1;P\n" +
		"Negativo;X;-1;kg;1;1;P\n" +
		"Corta;X;1\n" +
		"Bien;X;1;kg;2;1;P\n"
	products, rowErrs, err := catalog.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Bien", products[0].Name)

	require.Len(t, rowErrs, 4)
	lines := []int{rowErrs[0].Line, rowErrs[1].Line, rowErrs[2].Line, rowErrs[3].Line}
	assert.Equal(t, []int{2, 3, 4, 5}, lines)
	assert.Contains(t, rowErrs[0].Error(), "línea 2")
}

func TestParse_Vacio(t *testing.T) {
	_, _, err := catalog.Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestWriteSQL(t *testing.T) {
	products, _, err := catalog.Parse(strings.NewReader(header + "Pan d'Oro;Panadería;3;unidades;1,2;5;Horno;\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, catalog.WriteSQL(&buf, products, func() string { return "p-1" }))
	out := buf.String()
	assert.Contains(t, out, "'Pan d''Oro'")
	assert.Contains(t, out, "'p-1'")
	assert.Contains(t, out, "1.20, 5")
	assert.Contains(t, out, "NULL)")
}
