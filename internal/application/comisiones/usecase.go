// Package comisiones contiene los casos de uso de comisiones: reporte
// agregado del vendedor (JSON y PDF) y registro de pagos de comisión.
package comisiones

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pizzeria-api/internal/application/dto"
	"github.com/jhoicas/Pizzeria-api/internal/domain"
	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/ledger"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
	"github.com/jhoicas/Pizzeria-api/pkg/logger"
)

// UseCase casos de uso de comisiones.
type UseCase struct {
	vendedores   repository.VendedorRepository
	asignaciones repository.AsignacionRepository
	ventas       repository.VentaRepository
	pagos        repository.PagoComisionRepository
	pdf          ReportePDFGenerator
	log          *logger.Logger
}

// NewUseCase construye el caso de uso. pdf puede ser nil si no se expone el
// reporte en PDF.
func NewUseCase(
	vendedores repository.VendedorRepository,
	asignaciones repository.AsignacionRepository,
	ventas repository.VentaRepository,
	pagos repository.PagoComisionRepository,
	pdf ReportePDFGenerator,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		vendedores:   vendedores,
		asignaciones: asignaciones,
		ventas:       ventas,
		pagos:        pagos,
		pdf:          pdf,
		log:          log,
	}
}

// resumir resuelve el vendedor y agrega su historia completa.
func (uc *UseCase) resumir(ctx context.Context, uid string) (*entity.Vendedor, ledger.Resumen, error) {
	v, err := uc.vendedores.GetByUID(ctx, uid)
	if err != nil {
		return nil, ledger.Resumen{}, err
	}
	if v == nil {
		return nil, ledger.Resumen{}, domain.ErrVendedorNoEncontrado
	}

	asignaciones, err := uc.asignaciones.ListByUID(ctx, uid)
	if err != nil {
		return nil, ledger.Resumen{}, err
	}
	ventas, err := uc.ventas.ListByUID(ctx, uid)
	if err != nil {
		return nil, ledger.Resumen{}, err
	}
	pagos, err := uc.pagos.ListByUID(ctx, uid)
	if err != nil {
		return nil, ledger.Resumen{}, err
	}

	return v, ledger.Resumir(asignaciones, ventas, pagos), nil
}

// Reporte arma el reporte agregado del vendedor. Operación de solo lectura;
// los montos se redondean a dos decimales únicamente aquí, en la frontera.
func (uc *UseCase) Reporte(ctx context.Context, uid string) (*dto.ReporteResponse, error) {
	if uid == "" {
		return nil, domain.ErrInvalidInput
	}
	v, r, err := uc.resumir(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &dto.ReporteResponse{
		Success:                 true,
		Nombre:                  v.Nombre,
		TotalPizzasAsignadas:    r.PizzasAsignadas.InexactFloat64(),
		TotalPizzasVendidas:     r.PizzasVendidas.InexactFloat64(),
		TotalVentaPagada:        ledger.Fijo2(r.VentaPagada),
		TotalVentaPendiente:     ledger.Fijo2(r.VentaPendiente),
		TotalComisionesGanadas:  ledger.Fijo2(r.ComisionesGanadas),
		TotalComisionesPagadas:  ledger.Fijo2(r.ComisionesPagadas),
		ComisionPendienteAPagar: ledger.Fijo2(r.ComisionPendiente),
	}, nil
}

// ReportePDF genera el estado de cuenta del vendedor en PDF.
func (uc *UseCase) ReportePDF(ctx context.Context, uid string) ([]byte, error) {
	if uid == "" {
		return nil, domain.ErrInvalidInput
	}
	v, r, err := uc.resumir(ctx, uid)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerarReportePDF(ctx, v, r)
}

// Pagar registra un abono de comisión. El monto no se valida contra el saldo
// pendiente y el nombre viaja tal cual lo envió el cajero.
func (uc *UseCase) Pagar(ctx context.Context, in dto.PagarComisionRequest) error {
	if in.UID == "" || in.Nombre == "" || !in.Monto.IsPositive() {
		return domain.ErrInvalidInput
	}

	p := &entity.PagoComision{
		UIDVendedor:    in.UID,
		NombreVendedor: in.Nombre,
		Monto:          in.Monto,
		Timestamp:      time.Now(),
	}
	if err := uc.pagos.Append(ctx, p); err != nil {
		return err
	}

	uc.log.Info().
		Str("operacion", uuid.New().String()).
		Str("uid", in.UID).
		Str("nombre", in.Nombre).
		Str("monto", ledger.Fijo2(in.Monto)).
		Msg("pago de comisión registrado")
	return nil
}
