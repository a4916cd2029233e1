// Package ventas contiene el caso de uso de registro de ventas: la única
// operación con regla de negocio fuerte (no vender más que el inventario
// vigente) y con secuencia leer-validar-escribir.
package ventas

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pizzeria-api/internal/application/dto"
	"github.com/jhoicas/Pizzeria-api/internal/domain"
	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/ledger"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
	"github.com/jhoicas/Pizzeria-api/pkg/logger"
)

// UseCase caso de uso de registro de ventas.
type UseCase struct {
	vendedores   repository.VendedorRepository
	asignaciones repository.AsignacionRepository
	ventas       repository.VentaRepository
	devoluciones repository.DevolucionRepository
	log          *logger.Logger

	// Serializa leer-validar-escribir por vendedor dentro del proceso: dos
	// ventas concurrentes del mismo UID no pueden pasar la validación contra
	// la misma foto del inventario. Procesos externos que escriban en la
	// misma hoja siguen fuera de esta garantía.
	candados candadosPorUID
}

// ResultadoVenta montos calculados de una venta aceptada.
type ResultadoVenta struct {
	VentaTotal     decimal.Decimal
	ComisionGanada decimal.Decimal
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

// Registrar valida y registra una venta:
//
//  1. Resuelve el vendedor (ErrVendedorNoEncontrado si no existe).
//  2. Deriva el inventario vigente; si la cantidad lo excede devuelve
//     *domain.InventarioInsuficienteError sin agregar fila.
//  3. Toma el precio unitario de la última asignación (ErrSinAsignacion si
//     nunca recibió inventario).
//  4. Calcula venta total y comisión y agrega la fila de venta.
//
// La validación ocurre estrictamente antes de la escritura.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegistrarVentaRequest) (*ResultadoVenta, error) {
	if in.UID == "" || !in.Pizzas.IsPositive() || !in.EntregoPago.Valido() {
		return nil, domain.ErrInvalidInput
	}

	candado := uc.candados.tomar(in.UID)
	candado.Lock()
	defer candado.Unlock()

	v, err := uc.vendedores.GetByUID(ctx, in.UID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrVendedorNoEncontrado
	}

	asignaciones, err := uc.asignaciones.ListByUID(ctx, in.UID)
	if err != nil {
		return nil, err
	}
	ventas, err := uc.ventas.ListByUID(ctx, in.UID)
	if err != nil {
		return nil, err
	}
	devoluciones, err := uc.devoluciones.ListByUID(ctx, in.UID)
	if err != nil {
		return nil, err
	}

	inventario := ledger.InventarioActual(asignaciones, ventas, devoluciones)
	if in.Pizzas.GreaterThan(inventario) {
		return nil, &domain.InventarioInsuficienteError{
			Solicitado: in.Pizzas,
			Disponible: inventario,
		}
	}

	ultima, ok := ledger.UltimaAsignacion(asignaciones)
	if !ok {
		return nil, domain.ErrSinAsignacion
	}

	ventaTotal, comisionGanada := ledger.CalcularVenta(in.Pizzas, ultima.PrecioUnitario, v.Comision)

	venta := &entity.Venta{
		UIDVendedor:    in.UID,
		NombreVendedor: v.Nombre,
		Pizzas:         in.Pizzas,
		VentaTotal:     ventaTotal,
		ComisionGanada: comisionGanada,
		PagoRecibido:   string(in.EntregoPago),
		Timestamp:      time.Now(),
	}
	if err := uc.ventas.Append(ctx, venta); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("operacion", uuid.New().String()).
		Str("uid", in.UID).
		Str("pizzas", in.Pizzas.String()).
		Str("venta_total", ledger.Fijo2(ventaTotal)).
		Str("comision", ledger.Fijo2(comisionGanada)).
		Str("pago_recibido", string(in.EntregoPago)).
		Msg("venta registrada")

	return &ResultadoVenta{
		VentaTotal:     ledger.Redondear2(ventaTotal),
		ComisionGanada: ledger.Redondear2(comisionGanada),
	}, nil
}
