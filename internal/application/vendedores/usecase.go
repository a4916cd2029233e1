// Package vendedores contiene los casos de uso del directorio de vendedores:
// verificación por tarjeta RFID y registro.
package vendedores

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pizzeria-api/internal/application/dto"
	"github.com/jhoicas/Pizzeria-api/internal/domain"
	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
	"github.com/jhoicas/Pizzeria-api/pkg/logger"
	"github.com/jhoicas/Pizzeria-api/pkg/rfid"
)

var cien = decimal.NewFromInt(100)

// UseCase casos de uso del directorio de vendedores.
type UseCase struct {
	vendedores repository.VendedorRepository
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(vendedores repository.VendedorRepository, log *logger.Logger) *UseCase {
	return &UseCase{vendedores: vendedores, log: log}
}

// Verificar busca el vendedor por UID exacto. Si no hay coincidencia y el UID
// viene en hexadecimal (lector NFC de celular), reintenta con la forma decimal
// del lector USB. Devuelve domain.ErrVendedorNoEncontrado si no existe.
func (uc *UseCase) Verificar(ctx context.Context, rfidUID string) (*dto.VendedorDTO, error) {
	v, err := uc.vendedores.GetByUID(ctx, rfidUID)
	if err != nil {
		return nil, err
	}
	if v == nil && rfid.EsHex(rfidUID) {
		if convertido, convErr := rfid.ConvertirUID(rfidUID); convErr == nil {
			v, err = uc.vendedores.GetByUID(ctx, convertido)
			if err != nil {
				return nil, err
			}
		}
	}
	if v == nil {
		return nil, domain.ErrVendedorNoEncontrado
	}
	return &dto.VendedorDTO{
		Nombre:   v.Nombre,
		IFE:      v.IFE,
		Telefono: v.Telefono,
		Lider:    v.Lider,
		Comision: v.Comision.String(),
	}, nil
}

// Registrar da de alta un vendedor nuevo. UID, nombre e IFE son obligatorios;
// la comisión debe estar entre 0 y 100. Un UID ya presente devuelve
// domain.ErrDuplicate y no agrega fila.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegistrarVendedorRequest) error {
	if in.UID == "" || in.Nombre == "" || in.IFE == "" {
		return domain.ErrInvalidInput
	}
	if in.Comision.IsNegative() || in.Comision.GreaterThan(cien) {
		return domain.ErrInvalidInput
	}

	existente, err := uc.vendedores.GetByUID(ctx, in.UID)
	if err != nil {
		return err
	}
	if existente != nil {
		return domain.ErrDuplicate
	}

	v := &entity.Vendedor{
		UID:      in.UID,
		Nombre:   in.Nombre,
		IFE:      in.IFE,
		Telefono: in.Telefono,
		Lider:    in.Lider,
		Comision: in.Comision,
	}
	if err := uc.vendedores.Append(ctx, v); err != nil {
		return err
	}

	uc.log.Info().
		Str("uid", in.UID).
		Str("nombre", in.Nombre).
		Msg("vendedor registrado")
	return nil
}
