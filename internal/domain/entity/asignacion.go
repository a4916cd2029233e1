package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrecioUnitarioActual es el precio por pizza fijado por política comercial.
// Se escribe en cada asignación; las ventas usan el precio de la última
// asignación del vendedor, no esta constante directamente.
var PrecioUnitarioActual = decimal.NewFromInt(125)

// Asignacion registra la entrega de pizzas a un vendedor. Las bitácoras son
// de solo inserción: una asignación nunca se modifica ni se elimina.
type Asignacion struct {
	UIDVendedor    string
	NombreVendedor string // denormalizado para lectura directa en la hoja
	Pizzas         decimal.Decimal
	PrecioUnitario decimal.Decimal
	Timestamp      time.Time
}
