// Package ledger contiene la conciliación pura de las cuatro bitácoras de un
// vendedor (asignaciones, ventas, devoluciones y pagos de comisión). Todas las
// funciones son deterministas y sin efectos: reciben las filas ya filtradas
// por vendedor y devuelven los agregados derivados.
//
// La acumulación interna se hace con precisión completa; el redondeo a dos
// decimales ocurre solo al formar la salida (Redondear2 / Fijo2).
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
)

// InventarioActual deriva el inventario vigente de un vendedor:
// Σ asignado − Σ vendido − Σ devuelto. Un vendedor sin historia tiene
// inventario cero, no es un error.
func InventarioActual(asignaciones []entity.Asignacion, ventas []entity.Venta, devoluciones []entity.Devolucion) decimal.Decimal {
	total := decimal.Zero
	for _, a := range asignaciones {
		total = total.Add(a.Pizzas)
	}
	for _, v := range ventas {
		total = total.Sub(v.Pizzas)
	}
	for _, d := range devoluciones {
		total = total.Sub(d.Pizzas)
	}
	return total
}

// UltimaAsignacion devuelve la asignación más reciente por orden de inserción
// (política "la última asignación manda" para el precio unitario de venta).
// ok es false si el vendedor nunca ha recibido inventario.
func UltimaAsignacion(asignaciones []entity.Asignacion) (entity.Asignacion, bool) {
	if len(asignaciones) == 0 {
		return entity.Asignacion{}, false
	}
	return asignaciones[len(asignaciones)-1], true
}

// CalcularVenta computa el total de una venta y la comisión ganada a partir
// de la cantidad, el precio unitario de la última asignación y el porcentaje
// de comisión del vendedor. Sin redondear: el redondeo es responsabilidad de
// la frontera de salida.
func CalcularVenta(pizzas, precioUnitario, comisionPorc decimal.Decimal) (ventaTotal, comisionGanada decimal.Decimal) {
	ventaTotal = pizzas.Mul(precioUnitario)
	comisionGanada = ventaTotal.Mul(comisionPorc).Div(decimal.NewFromInt(100))
	return ventaTotal, comisionGanada
}

// Resumen agrega la historia completa de un vendedor para el reporte.
type Resumen struct {
	PizzasAsignadas   decimal.Decimal
	PizzasVendidas    decimal.Decimal
	VentaPagada       decimal.Decimal // Σ Venta_Total con Pago_Recibido = SI
	VentaPendiente    decimal.Decimal // Σ Venta_Total con Pago_Recibido distinto de SI
	ComisionesGanadas decimal.Decimal
	ComisionesPagadas decimal.Decimal
	ComisionPendiente decimal.Decimal // ganadas menos pagadas; negativa si se pagó de más
}

// Resumir recorre las bitácoras de un vendedor y construye su Resumen.
func Resumir(asignaciones []entity.Asignacion, ventas []entity.Venta, pagos []entity.PagoComision) Resumen {
	var r Resumen
	for _, a := range asignaciones {
		r.PizzasAsignadas = r.PizzasAsignadas.Add(a.Pizzas)
	}
	for _, v := range ventas {
		r.PizzasVendidas = r.PizzasVendidas.Add(v.Pizzas)
		r.ComisionesGanadas = r.ComisionesGanadas.Add(v.ComisionGanada)
		if v.PagoRecibido == entity.PagoRecibidoSI {
			r.VentaPagada = r.VentaPagada.Add(v.VentaTotal)
		} else {
			r.VentaPendiente = r.VentaPendiente.Add(v.VentaTotal)
		}
	}
	for _, p := range pagos {
		r.ComisionesPagadas = r.ComisionesPagadas.Add(p.Monto)
	}
	r.ComisionPendiente = r.ComisionesGanadas.Sub(r.ComisionesPagadas)
	return r
}

// Redondear2 redondea al centavo más cercano (mitades hacia arriba).
func Redondear2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Fijo2 formatea un monto con exactamente dos decimales para la salida JSON.
func Fijo2(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}
