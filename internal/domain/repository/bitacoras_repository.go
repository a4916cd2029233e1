package repository

import (
	"context"

	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
)

// Puertos de las cuatro bitácoras de solo inserción. ListByUID devuelve las
// filas del vendedor en orden de inserción; Append agrega exactamente una.

// AsignacionRepository bitácora de asignaciones de inventario.
type AsignacionRepository interface {
	ListByUID(ctx context.Context, uid string) ([]entity.Asignacion, error)
	Append(ctx context.Context, a *entity.Asignacion) error
}

// VentaRepository bitácora de ventas.
type VentaRepository interface {
	ListByUID(ctx context.Context, uid string) ([]entity.Venta, error)
	Append(ctx context.Context, v *entity.Venta) error
}

// DevolucionRepository bitácora de devoluciones.
type DevolucionRepository interface {
	ListByUID(ctx context.Context, uid string) ([]entity.Devolucion, error)
	Append(ctx context.Context, d *entity.Devolucion) error
}

// PagoComisionRepository bitácora de pagos de comisión.
type PagoComisionRepository interface {
	ListByUID(ctx context.Context, uid string) ([]entity.PagoComision, error)
	Append(ctx context.Context, p *entity.PagoComision) error
}
