package dto

import "github.com/shopspring/decimal"

// AsignarPizzasRequest body para POST /asignar-pizzas. El precio unitario no
// se recibe: lo fija el servidor según la política vigente.
type AsignarPizzasRequest struct {
	UID    string          `json:"uid"`
	Pizzas decimal.Decimal `json:"pizzasAsignadas"`
}

// RegistrarDevolucionRequest body para POST /registrar-devolucion.
type RegistrarDevolucionRequest struct {
	UID    string          `json:"uid"`
	Pizzas decimal.Decimal `json:"pizzasDevueltas"`
}
