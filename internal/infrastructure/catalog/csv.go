// Package catalog importa catálogos de productos exportados desde hojas de cálculo.
//
// Formato: separador ';' con cabecera
//
//	nombre;categoria;stock;unidad;precio;stock_minimo;proveedor;descripcion
//
// La descripción es opcional. Los precios aceptan coma decimal ("12,50").
// Los archivos que no son UTF-8 válido se leen como Windows-1252 (export típico de Excel en español).
package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
)

const minColumns = 7

// RowError fila rechazada con su número de línea (1 = cabecera).
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string { return fmt.Sprintf("línea %d: %v", e.Line, e.Err) }

// Parse devuelve los productos válidos y los errores por fila. err solo indica un archivo ilegible.
func Parse(r io.Reader) ([]dto.ProductInput, []RowError, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("leer catálogo: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("catálogo vacío")
	}

	var (
		out     []dto.ProductInput
		rowErrs []RowError
	)
	for i, rec := range records[1:] {
		line := i + 2
		if isBlank(rec) {
			continue
		}
		in, err := parseRow(rec)
		if err == nil {
			err = in.Validate()
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
			continue
		}
		out = append(out, in)
	}
	return out, rowErrs, nil
}

func parseRow(rec []string) (dto.ProductInput, error) {
	if len(rec) < minColumns {
		return dto.ProductInput{}, fmt.Errorf("se esperaban al menos %d columnas, hay %d", minColumns, len(rec))
	}
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	stock, err := strconv.Atoi(rec[2])
	if err != nil {
		return dto.ProductInput{}, fmt.Errorf("stock %q: %w", rec[2], err)
	}
	price, err := parseMoney(rec[4])
	if err != nil {
		return dto.ProductInput{}, fmt.Errorf("precio %q: %w", rec[4], err)
	}
	minStock, err := strconv.Atoi(rec[5])
	if err != nil {
		return dto.ProductInput{}, fmt.Errorf("stock mínimo %q: %w", rec[5], err)
	}
	in := dto.ProductInput{
		Name:     rec[0],
		Category: rec[1],
		Stock:    stock,
		Unit:     rec[3],
		Price:    price,
		MinStock: minStock,
		Supplier: rec[6],
	}
	if len(rec) > minColumns && rec[7] != "" {
		d := rec[7]
		in.Description = &d
	}
	return in, nil
}

// parseMoney acepta "1234.5", "1234,5" y "1.234,50".
func parseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
