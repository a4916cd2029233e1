package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Devolucion registra pizzas devueltas por un vendedor. No se valida contra
// lo vendido: la hoja acepta la devolución tal cual se reporta.
type Devolucion struct {
	UIDVendedor    string
	NombreVendedor string
	Pizzas         decimal.Decimal
	Timestamp      time.Time
}
