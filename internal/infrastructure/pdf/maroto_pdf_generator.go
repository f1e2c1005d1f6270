// Package pdf implementa la exportación del resumen de reportes del panel.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Generado por  │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Productos / Unidades / Ventas / Compras pendientes    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Stock bajo (Producto | Stock | Mínimo | Estado)      │
//	│  TABLA: Ventas por día / por medio de pago                   │
//	│  TABLA: Productos más vendidos / ventas por categoría        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR al panel (opcional)                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/ports"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

var _ ports.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 190, Green: 30, Blue: 45}
	colorLow      = &props.Color{Red: 200, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReportPDF(
	_ context.Context,
	summary *dto.DashboardSummaryDTO,
	meta dto.ReportMeta,
) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("pdf: resumen vacío")
	}
	title := nonEmpty(meta.Title, "Reporte del panel")

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(nonEmpty(meta.GeneratedBy, "panel-minorista"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, meta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("PRODUCTOS CON STOCK BAJO"))
	m.AddRows(tableHeaderRow([]string{"Producto", "Stock", "Mínimo", "Estado"}, []int{6, 2, 2, 2}))
	m.AddRows(lowStockRows(summary.LowStock)...)

	m.AddRows(sectionRow("VENTAS POR DÍA"))
	m.AddRows(tableHeaderRow([]string{"Fecha", "Ventas", "Total"}, []int{6, 3, 3}))
	for _, d := range summary.DailySales {
		m.AddRows(dataRow([]string{d.Date, strconv.Itoa(d.Count), money(d.Total)}, []int{6, 3, 3}))
	}

	m.AddRows(sectionRow("VENTAS POR MEDIO DE PAGO"))
	m.AddRows(tableHeaderRow([]string{"Medio de pago", "Ventas", "Total"}, []int{6, 3, 3}))
	for _, b := range summary.ByPaymentMethod {
		m.AddRows(dataRow([]string{string(b.PaymentMethod), strconv.Itoa(b.Count), money(b.Total)}, []int{6, 3, 3}))
	}

	m.AddRows(sectionRow("PRODUCTOS MÁS VENDIDOS"))
	m.AddRows(tableHeaderRow([]string{"Producto", "Categoría", "Unidades", "Ingreso"}, []int{5, 3, 2, 2}))
	for _, p := range summary.TopProducts {
		m.AddRows(dataRow([]string{p.Name, p.Category, strconv.Itoa(p.Units), money(p.Revenue)}, []int{5, 3, 2, 2}))
	}

	m.AddRows(sectionRow("VENTAS POR CATEGORÍA"))
	m.AddRows(tableHeaderRow([]string{"Categoría", "Unidades", "Ingreso", "%"}, []int{5, 2, 3, 2}))
	for _, c := range summary.SalesByCategory {
		m.AddRows(dataRow([]string{c.Category, strconv.Itoa(c.Units), money(c.Revenue), c.Percentage.StringFixed(2) + "%"}, []int{5, 2, 3, 2}))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(meta)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y autor (izq), fecha de generación (der).
func headerRow(title string, meta dto.ReportMeta) core.Row {
	fecha := "—"
	if !meta.GeneratedAt.IsZero() {
		fecha = meta.GeneratedAt.Format("02/01/2006 15:04")
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado por: "+nonEmpty(meta.GeneratedBy, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// kpiRow: cuatro indicadores principales.
func kpiRow(s *dto.DashboardSummaryDTO) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		kpi("Productos", fmt.Sprintf("%d (%d u.)", s.TotalProducts, s.TotalStockUnits)),
		kpi("Ventas", fmt.Sprintf("%d · %s", s.SalesCount, money(s.SalesTotal))),
		kpi("Compras pendientes", fmt.Sprintf("%d · %s", s.PendingPurchases, money(s.PendingAmount))),
		kpi("Compras completadas", money(s.PurchasesCompleted)),
	)
}

func sectionRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3}),
	))
}

func tableHeaderRow(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, len(labels))
	for i, l := range labels {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols[i] = col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(cols...)
}

func dataRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, len(values))
	for i, v := range values {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols[i] = col.New(sizes[i]).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(6).Add(cols...)
}

// lowStockRows: el estado se colorea según urgencia.
func lowStockRows(items []dto.LowStockDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin productos bajo el mínimo.", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		))}
	}
	out := make([]core.Row, 0, len(items))
	for _, it := range items {
		c := colorLow
		if it.Status == entity.StockCritical {
			c = colorCritical
		}
		out = append(out, row.New(6).Add(
			col.New(6).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(it.Stock), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(strconv.Itoa(it.MinStock), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(string(it.Status), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: c,
			})),
		))
	}
	return out
}

// footerRows: QR al panel si hay URL, y leyenda.
func footerRows(meta dto.ReportMeta) []core.Row {
	legend := "Montos calculados a partir de los datos del servidor al momento de la exportación."
	if meta.URL == "" {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New(legend, props.Text{Size: 6.5, Color: colorGray, Top: 2}),
		))}
	}
	return []core.Row{row.New(35).Add(
		col.New(3).Add(code.NewQr(meta.URL, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Escanea el código para abrir el panel:", props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New(meta.URL, props.Text{Size: 8, Top: 10, Left: 3, Color: colorPrimary}),
			text.New(legend, props.Text{Size: 6.5, Top: 20, Left: 3, Color: colorGray}),
		),
	)}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money formatea con puntos de miles y coma decimal. Ej: 1234.5 → "$1.234,50".
func money(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + formatThousands(intPart) + "," + frac
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
