package tabular

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
)

var _ repository.AsignacionRepository = (*AsignacionRepo)(nil)

// AsignacionRepo implementación de AsignacionRepository sobre el row-store.
type AsignacionRepo struct {
	store repository.RowStore
}

// NewAsignacionRepository construye el adaptador.
func NewAsignacionRepository(store repository.RowStore) *AsignacionRepo {
	return &AsignacionRepo{store: store}
}

// ListByUID devuelve las asignaciones del vendedor en orden de inserción.
func (r *AsignacionRepo) ListByUID(ctx context.Context, uid string) ([]entity.Asignacion, error) {
	rows, err := r.store.GetRows(ctx, repository.HojaAsignaciones)
	if err != nil {
		return nil, err
	}
	var out []entity.Asignacion
	for _, row := range rows {
		if row.Get(colUIDVendedor) != uid {
			continue
		}
		pizzas, err := leerDecimal(row, repository.HojaAsignaciones, colPizzasAsignadas)
		if err != nil {
			return nil, err
		}
		precio, err := leerDecimal(row, repository.HojaAsignaciones, colPrecioUnitario)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.Asignacion{
			UIDVendedor:    uid,
			NombreVendedor: row.Get(colNombreVendedor),
			Pizzas:         pizzas,
			PrecioUnitario: precio,
			Timestamp:      leerTimestamp(row, colTimestampAsignacion),
		})
	}
	return out, nil
}

// Append agrega la asignación a la bitácora.
func (r *AsignacionRepo) Append(ctx context.Context, a *entity.Asignacion) error {
	campos := map[string]string{
		colUIDVendedor:         a.UIDVendedor,
		colNombreVendedor:      a.NombreVendedor,
		colPizzasAsignadas:     a.Pizzas.String(),
		colPrecioUnitario:      a.PrecioUnitario.String(),
		colTimestampAsignacion: marcaDeTiempo(a.Timestamp),
	}
	if err := r.store.AddRow(ctx, repository.HojaAsignaciones, campos); err != nil {
		return fmt.Errorf("agregar asignación: %w", err)
	}
	return nil
}
