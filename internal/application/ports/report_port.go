package ports

import (
	"context"

	"github.com/jhoicas/panel-minorista/internal/application/dto"
)

// ReportPDFGenerator genera la representación PDF del resumen de reportes.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, summary *dto.DashboardSummaryDTO, meta dto.ReportMeta) ([]byte, error)
}
