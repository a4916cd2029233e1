package tabular

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository sobre el row-store.
type VentaRepo struct {
	store repository.RowStore
}

// NewVentaRepository construye el adaptador.
func NewVentaRepository(store repository.RowStore) *VentaRepo {
	return &VentaRepo{store: store}
}

// ListByUID devuelve las ventas del vendedor en orden de inserción.
func (r *VentaRepo) ListByUID(ctx context.Context, uid string) ([]entity.Venta, error) {
	rows, err := r.store.GetRows(ctx, repository.HojaVentas)
	if err != nil {
		return nil, err
	}
	var out []entity.Venta
	for _, row := range rows {
		if row.Get(colUIDVendedor) != uid {
			continue
		}
		pizzas, err := leerDecimal(row, repository.HojaVentas, colPizzasVendidas)
		if err != nil {
			return nil, err
		}
		total, err := leerDecimal(row, repository.HojaVentas, colVentaTotal)
		if err != nil {
			return nil, err
		}
		comision, err := leerDecimal(row, repository.HojaVentas, colComisionGanada)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.Venta{
			UIDVendedor:    uid,
			NombreVendedor: row.Get(colNombreVendedor),
			Pizzas:         pizzas,
			VentaTotal:     total,
			ComisionGanada: comision,
			PagoRecibido:   row.Get(colPagoRecibido),
			Timestamp:      leerTimestamp(row, colTimestampVenta),
		})
	}
	return out, nil
}

// Append agrega la venta a la bitácora. Los montos se escriben ya redondeados
// a dos decimales (la hoja guarda lo que se muestra).
func (r *VentaRepo) Append(ctx context.Context, v *entity.Venta) error {
	campos := map[string]string{
		colUIDVendedor:    v.UIDVendedor,
		colNombreVendedor: v.NombreVendedor,
		colPizzasVendidas: v.Pizzas.String(),
		colVentaTotal:     v.VentaTotal.Round(2).StringFixed(2),
		colComisionGanada: v.ComisionGanada.Round(2).StringFixed(2),
		colPagoRecibido:   v.PagoRecibido,
		colTimestampVenta: marcaDeTiempo(v.Timestamp),
	}
	if err := r.store.AddRow(ctx, repository.HojaVentas, campos); err != nil {
		return fmt.Errorf("agregar venta: %w", err)
	}
	return nil
}
