package entity

import "github.com/shopspring/decimal"

// Vendedor es el registro de referencia de un vendedor identificado por su
// tarjeta RFID. Se crea una sola vez en el registro y no se modifica después:
// el nombre y el porcentaje de comisión quedan fijos.
type Vendedor struct {
	UID      string // UID de la tarjeta RFID (clave única)
	Nombre   string
	IFE      string // documento de identidad
	Telefono string
	Lider    string          // nombre del líder de equipo
	Comision decimal.Decimal // porcentaje de comisión sobre venta (0–100)
}
