package dto

import "time"

// ReportMeta datos de cabecera del reporte exportado.
type ReportMeta struct {
	Title       string
	GeneratedBy string
	GeneratedAt time.Time
	URL         string // si no está vacío se imprime como QR en el pie
}
