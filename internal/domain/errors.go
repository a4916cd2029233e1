package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrVendedorNoEncontrado   = errors.New("vendedor no registrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrSinAsignacion          = errors.New("el vendedor no tiene inventario asignado")
	ErrInventarioInsuficiente = errors.New("inventario insuficiente")
	ErrHojaNoEncontrada       = errors.New("hoja no encontrada en el almacén")
)

// InventarioInsuficienteError rechaza una venta que excede el inventario
// vigente. Lleva el inventario calculado para incluirlo en la respuesta.
type InventarioInsuficienteError struct {
	Solicitado decimal.Decimal
	Disponible decimal.Decimal
}

// Error implementa error con el mensaje que muestra el punto de venta.
func (e *InventarioInsuficienteError) Error() string {
	return fmt.Sprintf("No puedes vender %s. Inventario actual: %s pizzas.",
		e.Solicitado.String(), e.Disponible.String())
}

// Is hace que errors.Is(err, ErrInventarioInsuficiente) funcione.
func (e *InventarioInsuficienteError) Is(target error) bool {
	return target == ErrInventarioInsuficiente
}
