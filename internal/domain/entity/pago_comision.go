package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PagoComision registra un abono de comisión a un vendedor. El monto no se
// valida contra el saldo pendiente; un pago mayor deja el saldo en negativo.
type PagoComision struct {
	UIDVendedor    string
	NombreVendedor string // lo envía el cajero, no se re-resuelve del directorio
	Monto          decimal.Decimal
	Timestamp      time.Time
}
