// Package inventario contiene los casos de uso del libro de inventario:
// asignación de pizzas, devoluciones y cálculo del inventario vigente.
package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pizzeria-api/internal/domain"
	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/ledger"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
	"github.com/jhoicas/Pizzeria-api/pkg/logger"
)

// UseCase casos de uso del libro de inventario.
type UseCase struct {
	vendedores   repository.VendedorRepository
	asignaciones repository.AsignacionRepository
	ventas       repository.VentaRepository
	devoluciones repository.DevolucionRepository
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	vendedores repository.VendedorRepository,
	asignaciones repository.AsignacionRepository,
	ventas repository.VentaRepository,
	devoluciones repository.DevolucionRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		vendedores:   vendedores,
		asignaciones: asignaciones,
		ventas:       ventas,
		devoluciones: devoluciones,
		log:          log,
	}
}

// Asignar entrega pizzas a un vendedor: agrega una fila de asignación con el
// precio unitario vigente por política. Devuelve domain.ErrVendedorNoEncontrado
// si el UID no está en el directorio.
func (uc *UseCase) Asignar(ctx context.Context, uid string, pizzas decimal.Decimal) error {
	if uid == "" || !pizzas.IsPositive() {
		return domain.ErrInvalidInput
	}
	v, err := uc.vendedores.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrVendedorNoEncontrado
	}

	a := &entity.Asignacion{
		UIDVendedor:    uid,
		NombreVendedor: v.Nombre,
		Pizzas:         pizzas,
		PrecioUnitario: entity.PrecioUnitarioActual,
		Timestamp:      time.Now(),
	}
	if err := uc.asignaciones.Append(ctx, a); err != nil {
		return err
	}

	uc.log.Info().
		Str("operacion", uuid.New().String()).
		Str("uid", uid).
		Str("pizzas", pizzas.String()).
		Msg("asignación registrada")
	return nil
}

// InventarioActual deriva el inventario vigente del vendedor recorriendo las
// tres bitácoras. Función de lectura pura: un vendedor sin historia da cero.
func (uc *UseCase) InventarioActual(ctx context.Context, uid string) (decimal.Decimal, error) {
	asignaciones, err := uc.asignaciones.ListByUID(ctx, uid)
	if err != nil {
		return decimal.Zero, err
	}
	ventas, err := uc.ventas.ListByUID(ctx, uid)
	if err != nil {
		return decimal.Zero, err
	}
	devoluciones, err := uc.devoluciones.ListByUID(ctx, uid)
	if err != nil {
		return decimal.Zero, err
	}
	return ledger.InventarioActual(asignaciones, ventas, devoluciones), nil
}

// RegistrarDevolucion agrega una devolución a la bitácora. La cantidad no se
// valida contra lo vendido: se acepta tal cual se reporta.
func (uc *UseCase) RegistrarDevolucion(ctx context.Context, uid string, pizzas decimal.Decimal) error {
	if uid == "" || !pizzas.IsPositive() {
		return domain.ErrInvalidInput
	}
	v, err := uc.vendedores.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrVendedorNoEncontrado
	}

	d := &entity.Devolucion{
		UIDVendedor:    uid,
		NombreVendedor: v.Nombre,
		Pizzas:         pizzas,
		Timestamp:      time.Now(),
	}
	if err := uc.devoluciones.Append(ctx, d); err != nil {
		return err
	}

	uc.log.Info().
		Str("operacion", uuid.New().String()).
		Str("uid", uid).
		Str("pizzas", pizzas.String()).
		Msg("devolución registrada")
	return nil
}
