package repository

import "context"

// Nombres de las hojas (tablas) del almacén tabular. Coinciden con las
// pestañas de la hoja de cálculo en producción.
const (
	HojaVendedores    = "Vendedores"
	HojaAsignaciones  = "Asignaciones"
	HojaVentas        = "Ventas"
	HojaDevoluciones  = "Devoluciones"
	HojaPagosComision = "Pagos_Comision"
)

// Row es una fila del almacén tabular. Get devuelve el valor de la columna
// como texto; columna inexistente devuelve cadena vacía.
type Row interface {
	Get(columna string) string
}

// RowStore es el colaborador externo de persistencia: un almacén tabular de
// solo inserción. GetRows devuelve todas las filas de una hoja en orden de
// inserción (requerido por la política de última asignación); AddRow agrega
// una fila al final. No existe actualización ni borrado.
//
// Una hoja inexistente se reporta como domain.ErrHojaNoEncontrada (envuelto).
type RowStore interface {
	GetRows(ctx context.Context, hoja string) ([]Row, error)
	AddRow(ctx context.Context, hoja string, campos map[string]string) error
}
