// Package tabular implementa los repositorios de entidades sobre el puerto
// RowStore, mapeando filas de texto a entidades del dominio. Los nombres de
// columna son los encabezados de la hoja de cálculo de la operación.
package tabular

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
)

// Columnas de la hoja Vendedores.
const (
	colUID      = "UID"
	colNombre   = "Nombre"
	colIFE      = "IFE"
	colTelefono = "Telefono"
	colLider    = "Lider"
	colComision = "Comision_Venta"
)

// Columnas de las bitácoras.
const (
	colUIDVendedor         = "UID_Vendedor"
	colNombreVendedor      = "Nombre_Vendedor"
	colPizzasAsignadas     = "Pizzas_Asignadas"
	colPrecioUnitario      = "Precio_Unitario"
	colTimestampAsignacion = "Timestamp_Asignacion"
	colPizzasVendidas      = "Pizzas_Vendidas"
	colVentaTotal          = "Venta_Total"
	colComisionGanada      = "Comision_Ganada"
	colPagoRecibido        = "Pago_Recibido"
	colTimestampVenta      = "Timestamp_Venta"
	colPizzasDevueltas     = "Pizzas_Devueltas"
	colTimestampDevolucion = "Timestamp_Devolucion"
	colMontoPagado         = "Monto_Pagado"
	colTimestampPago       = "Timestamp_Pago"
)

// leerDecimal parsea una celda numérica. Celda vacía vale cero; un valor no
// numérico es dato corrupto en el almacén y se reporta como error de
// infraestructura.
func leerDecimal(r repository.Row, hoja, columna string) (decimal.Decimal, error) {
	s := strings.TrimSpace(r.Get(columna))
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: celda %s=%q no numérica: %w", hoja, columna, s, err)
	}
	return d, nil
}

// leerTimestamp parsea una celda de fecha ISO 8601. Una celda ilegible (hoja
// editada a mano) queda como tiempo cero en lugar de tumbar la operación.
func leerTimestamp(r repository.Row, columna string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(r.Get(columna)))
	if err != nil {
		return time.Time{}
	}
	return t
}

// marcaDeTiempo formatea un timestamp en el formato de las hojas existentes
// (ISO 8601 UTC con milisegundos).
func marcaDeTiempo(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
