package vendedores_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pizzeria-api/internal/application/dto"
	"github.com/jhoicas/Pizzeria-api/internal/application/vendedores"
	"github.com/jhoicas/Pizzeria-api/internal/domain"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/memoria"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/tabular"
	"github.com/jhoicas/Pizzeria-api/pkg/logger"
)

func nuevoUseCase(t *testing.T) *vendedores.UseCase {
	t.Helper()
	store := memoria.NewStoreCompleto()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return vendedores.NewUseCase(tabular.NewVendedorRepository(store), log)
}

func TestRegistrarYVerificar(t *testing.T) {
	uc := nuevoUseCase(t)

	err := uc.Registrar(context.Background(), dto.RegistrarVendedorRequest{
		UID:      "0092311314",
		Nombre:   "Ana",
		IFE:      "IFE123",
		Telefono: "5512345678",
		Lider:    "Carlos",
		Comision: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	v, err := uc.Verificar(context.Background(), "0092311314")
	require.NoError(t, err)
	assert.Equal(t, "Ana", v.Nombre)
	assert.Equal(t, "IFE123", v.IFE)
	assert.Equal(t, "10", v.Comision)
}

// Un lector NFC de celular manda el UID en hexadecimal; debe resolverse al
// mismo vendedor registrado con la forma decimal del lector USB.
func TestVerificar_ReintentaConUIDHex(t *testing.T) {
	uc := nuevoUseCase(t)

	require.NoError(t, uc.Registrar(context.Background(), dto.RegistrarVendedorRequest{
		UID:      "0092311314",
		Nombre:   "Ana",
		IFE:      "IFE123",
		Comision: decimal.NewFromInt(10),
	}))

	v, err := uc.Verificar(context.Background(), "128F8005")
	require.NoError(t, err)
	assert.Equal(t, "Ana", v.Nombre)
}

func TestVerificar_NoEncontrado(t *testing.T) {
	uc := nuevoUseCase(t)

	_, err := uc.Verificar(context.Background(), "desconocido")
	assert.ErrorIs(t, err, domain.ErrVendedorNoEncontrado)
}

func TestRegistrar_UIDDuplicado(t *testing.T) {
	uc := nuevoUseCase(t)

	req := dto.RegistrarVendedorRequest{
		UID:      "U1",
		Nombre:   "Ana",
		IFE:      "IFE123",
		Comision: decimal.NewFromInt(10),
	}
	require.NoError(t, uc.Registrar(context.Background(), req))

	err := uc.Registrar(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegistrar_EntradaInvalida(t *testing.T) {
	uc := nuevoUseCase(t)

	casos := []dto.RegistrarVendedorRequest{
		{Nombre: "Ana", IFE: "IFE123"},
		{UID: "U1", IFE: "IFE123"},
		{UID: "U1", Nombre: "Ana"},
		{UID: "U1", Nombre: "Ana", IFE: "IFE123", Comision: decimal.NewFromInt(-1)},
		{UID: "U1", Nombre: "Ana", IFE: "IFE123", Comision: decimal.NewFromInt(101)},
	}
	for _, in := range casos {
		err := uc.Registrar(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v", in)
	}
}
