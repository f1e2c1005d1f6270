package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/ports"
)

// ReportUseCase exporta el resumen de reportes a PDF.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	pdf       ports.ReportPDFGenerator
}

func NewReportUseCase(dashboard *DashboardUseCase, pdf ports.ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, pdf: pdf}
}

// ExportPDF calcula el resumen actual y lo renderiza.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, meta dto.ReportMeta) ([]byte, error) {
	summary, err := uc.dashboard.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.GenerateReportPDF(ctx, summary, meta)
	if err != nil {
		return nil, fmt.Errorf("reporte: %w", err)
	}
	return out, nil
}
