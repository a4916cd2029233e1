package comisiones

import (
	"context"

	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/ledger"
)

// ReportePDFGenerator genera el estado de cuenta de un vendedor en PDF.
type ReportePDFGenerator interface {
	GenerarReportePDF(ctx context.Context, vendedor *entity.Vendedor, resumen ledger.Resumen) ([]byte, error)
}
