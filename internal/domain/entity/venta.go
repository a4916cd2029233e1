package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores del campo Pago_Recibido de una venta. El reporte particiona los
// totales comparando contra PagoRecibidoSI, por lo que el valor se escribe
// siempre como uno de estos dos literales y nunca como texto libre.
const (
	PagoRecibidoSI = "SI"
	PagoRecibidoNO = "NO"
)

// Venta registra una venta aceptada contra el inventario del vendedor.
// VentaTotal = Pizzas * precio unitario de la última asignación;
// ComisionGanada = VentaTotal * Comision/100 del vendedor.
type Venta struct {
	UIDVendedor    string
	NombreVendedor string
	Pizzas         decimal.Decimal
	VentaTotal     decimal.Decimal
	ComisionGanada decimal.Decimal
	PagoRecibido   string // PagoRecibidoSI | PagoRecibidoNO
	Timestamp      time.Time
}
