package tabular

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
)

var _ repository.DevolucionRepository = (*DevolucionRepo)(nil)

// DevolucionRepo implementación de DevolucionRepository sobre el row-store.
type DevolucionRepo struct {
	store repository.RowStore
}

// NewDevolucionRepository construye el adaptador.
func NewDevolucionRepository(store repository.RowStore) *DevolucionRepo {
	return &DevolucionRepo{store: store}
}

// ListByUID devuelve las devoluciones del vendedor en orden de inserción.
func (r *DevolucionRepo) ListByUID(ctx context.Context, uid string) ([]entity.Devolucion, error) {
	rows, err := r.store.GetRows(ctx, repository.HojaDevoluciones)
	if err != nil {
		return nil, err
	}
	var out []entity.Devolucion
	for _, row := range rows {
		if row.Get(colUIDVendedor) != uid {
			continue
		}
		pizzas, err := leerDecimal(row, repository.HojaDevoluciones, colPizzasDevueltas)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.Devolucion{
			UIDVendedor:    uid,
			NombreVendedor: row.Get(colNombreVendedor),
			Pizzas:         pizzas,
			Timestamp:      leerTimestamp(row, colTimestampDevolucion),
		})
	}
	return out, nil
}

// Append agrega la devolución a la bitácora.
func (r *DevolucionRepo) Append(ctx context.Context, d *entity.Devolucion) error {
	campos := map[string]string{
		colUIDVendedor:         d.UIDVendedor,
		colNombreVendedor:      d.NombreVendedor,
		colPizzasDevueltas:     d.Pizzas.String(),
		colTimestampDevolucion: marcaDeTiempo(d.Timestamp),
	}
	if err := r.store.AddRow(ctx, repository.HojaDevoluciones, campos); err != nil {
		return fmt.Errorf("agregar devolución: %w", err)
	}
	return nil
}
