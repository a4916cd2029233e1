package tabular

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
)

var _ repository.PagoComisionRepository = (*PagoComisionRepo)(nil)

// PagoComisionRepo implementación de PagoComisionRepository sobre el row-store.
type PagoComisionRepo struct {
	store repository.RowStore
}

// NewPagoComisionRepository construye el adaptador.
func NewPagoComisionRepository(store repository.RowStore) *PagoComisionRepo {
	return &PagoComisionRepo{store: store}
}

// ListByUID devuelve los pagos de comisión del vendedor en orden de inserción.
func (r *PagoComisionRepo) ListByUID(ctx context.Context, uid string) ([]entity.PagoComision, error) {
	rows, err := r.store.GetRows(ctx, repository.HojaPagosComision)
	if err != nil {
		return nil, err
	}
	var out []entity.PagoComision
	for _, row := range rows {
		if row.Get(colUIDVendedor) != uid {
			continue
		}
		monto, err := leerDecimal(row, repository.HojaPagosComision, colMontoPagado)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.PagoComision{
			UIDVendedor:    uid,
			NombreVendedor: row.Get(colNombreVendedor),
			Monto:          monto,
			Timestamp:      leerTimestamp(row, colTimestampPago),
		})
	}
	return out, nil
}

// Append agrega el pago a la bitácora.
func (r *PagoComisionRepo) Append(ctx context.Context, p *entity.PagoComision) error {
	campos := map[string]string{
		colUIDVendedor:    p.UIDVendedor,
		colNombreVendedor: p.NombreVendedor,
		colMontoPagado:    p.Monto.String(),
		colTimestampPago:  marcaDeTiempo(p.Timestamp),
	}
	if err := r.store.AddRow(ctx, repository.HojaPagosComision, campos); err != nil {
		return fmt.Errorf("agregar pago de comisión: %w", err)
	}
	return nil
}
