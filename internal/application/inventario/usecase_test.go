package inventario_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pizzeria-api/internal/application/inventario"
	"github.com/jhoicas/Pizzeria-api/internal/domain"
	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/memoria"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/tabular"
	"github.com/jhoicas/Pizzeria-api/pkg/logger"
)

type fixture struct {
	store  *memoria.Store
	uc     *inventario.UseCase
	ventas repository.VentaRepository
}

func nuevaFixture(t *testing.T) *fixture {
	t.Helper()
	store := memoria.NewStoreCompleto()
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	vendedorRepo := tabular.NewVendedorRepository(store)
	ventaRepo := tabular.NewVentaRepository(store)

	require.NoError(t, vendedorRepo.Append(context.Background(), &entity.Vendedor{
		UID:      "U1",
		Nombre:   "Ana",
		IFE:      "IFE123",
		Comision: decimal.NewFromInt(10),
	}))

	uc := inventario.NewUseCase(
		vendedorRepo,
		tabular.NewAsignacionRepository(store),
		ventaRepo,
		tabular.NewDevolucionRepository(store),
		log,
	)
	return &fixture{store: store, uc: uc, ventas: ventaRepo}
}

func TestAsignar_EscribePrecioVigente(t *testing.T) {
	f := nuevaFixture(t)

	err := f.uc.Asignar(context.Background(), "U1", decimal.NewFromInt(50))
	require.NoError(t, err)

	rows, err := f.store.GetRows(context.Background(), repository.HojaAsignaciones)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].Get("Nombre_Vendedor"))
	assert.Equal(t, "50", rows[0].Get("Pizzas_Asignadas"))
	assert.Equal(t, entity.PrecioUnitarioActual.String(), rows[0].Get("Precio_Unitario"))
}

func TestAsignar_VendedorNoEncontrado(t *testing.T) {
	f := nuevaFixture(t)

	err := f.uc.Asignar(context.Background(), "desconocido", decimal.NewFromInt(5))
	assert.ErrorIs(t, err, domain.ErrVendedorNoEncontrado)
}

func TestInventarioActual_SumaLasTresBitacoras(t *testing.T) {
	f := nuevaFixture(t)

	require.NoError(t, f.uc.Asignar(context.Background(), "U1", decimal.NewFromInt(50)))
	require.NoError(t, f.ventas.Append(context.Background(), &entity.Venta{
		UIDVendedor:    "U1",
		NombreVendedor: "Ana",
		Pizzas:         decimal.NewFromInt(20),
		PagoRecibido:   entity.PagoRecibidoNO,
	}))
	require.NoError(t, f.uc.RegistrarDevolucion(context.Background(), "U1", decimal.NewFromInt(5)))

	inv, err := f.uc.InventarioActual(context.Background(), "U1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(25).Equal(inv), "50 - 20 - 5")
}

// Un vendedor sin historia tiene inventario cero, no error.
func TestInventarioActual_SinHistoria(t *testing.T) {
	f := nuevaFixture(t)

	inv, err := f.uc.InventarioActual(context.Background(), "U1")
	require.NoError(t, err)
	assert.True(t, inv.IsZero())
}

func TestRegistrarDevolucion_EntradaInvalida(t *testing.T) {
	f := nuevaFixture(t)

	assert.ErrorIs(t, f.uc.RegistrarDevolucion(context.Background(), "", decimal.NewFromInt(1)), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.uc.RegistrarDevolucion(context.Background(), "U1", decimal.Zero), domain.ErrInvalidInput)
}
