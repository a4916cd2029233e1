package ventas_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pizzeria-api/internal/application/dto"
	"github.com/jhoicas/Pizzeria-api/internal/application/ventas"
	"github.com/jhoicas/Pizzeria-api/internal/domain"
	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/memoria"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/tabular"
	"github.com/jhoicas/Pizzeria-api/pkg/logger"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fixture struct {
	store        *memoria.Store
	uc           *ventas.UseCase
	asignaciones repository.AsignacionRepository
}

func nuevaFixture(t *testing.T) *fixture {
	t.Helper()
	store := memoria.NewStoreCompleto()
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	vendedorRepo := tabular.NewVendedorRepository(store)
	asignacionRepo := tabular.NewAsignacionRepository(store)
	ventaRepo := tabular.NewVentaRepository(store)
	devolucionRepo := tabular.NewDevolucionRepository(store)

	// Ana vende con 10% de comisión.
	require.NoError(t, vendedorRepo.Append(context.Background(), &entity.Vendedor{
		UID:      "U1",
		Nombre:   "Ana",
		IFE:      "IFE123",
		Comision: dec("10"),
	}))

	return &fixture{
		store:        store,
		uc:           ventas.NewUseCase(vendedorRepo, asignacionRepo, ventaRepo, devolucionRepo, log),
		asignaciones: asignacionRepo,
	}
}

func (f *fixture) asignar(t *testing.T, pizzas, precio string) {
	t.Helper()
	require.NoError(t, f.asignaciones.Append(context.Background(), &entity.Asignacion{
		UIDVendedor:    "U1",
		NombreVendedor: "Ana",
		Pizzas:         dec(pizzas),
		PrecioUnitario: dec(precio),
	}))
}

func (f *fixture) filasDeVentas(t *testing.T) int {
	t.Helper()
	rows, err := f.store.GetRows(context.Background(), repository.HojaVentas)
	require.NoError(t, err)
	return len(rows)
}

func TestRegistrar_VentaValida(t *testing.T) {
	f := nuevaFixture(t)
	f.asignar(t, "50", "125")

	resultado, err := f.uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		UID:         "U1",
		Pizzas:      dec("20"),
		EntregoPago: "NO",
	})
	require.NoError(t, err)

	assert.True(t, dec("2500").Equal(resultado.VentaTotal))
	assert.True(t, dec("250").Equal(resultado.ComisionGanada))
	assert.Equal(t, 1, f.filasDeVentas(t))
}

// El rechazo por inventario lleva el inventario calculado y no agrega fila.
func TestRegistrar_InventarioInsuficiente(t *testing.T) {
	f := nuevaFixture(t)
	f.asignar(t, "50", "125")

	_, err := f.uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		UID: "U1", Pizzas: dec("20"), EntregoPago: "SI",
	})
	require.NoError(t, err)

	// Quedan 30; pedir 31 debe rechazarse citando 30 y sin escribir nada.
	_, err = f.uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		UID: "U1", Pizzas: dec("31"), EntregoPago: "SI",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInventarioInsuficiente)

	var insuficiente *domain.InventarioInsuficienteError
	require.ErrorAs(t, err, &insuficiente)
	assert.True(t, dec("30").Equal(insuficiente.Disponible))
	assert.Contains(t, insuficiente.Error(), "Inventario actual: 30")

	assert.Equal(t, 1, f.filasDeVentas(t), "el rechazo no debe dejar estado parcial")
}

// El precio lo fija la última asignación, no la primera.
func TestRegistrar_UltimaAsignacionManda(t *testing.T) {
	f := nuevaFixture(t)
	f.asignar(t, "10", "125")
	f.asignar(t, "10", "150")

	resultado, err := f.uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		UID: "U1", Pizzas: dec("4"), EntregoPago: "SI",
	})
	require.NoError(t, err)
	assert.True(t, dec("600").Equal(resultado.VentaTotal), "4 * 150")
}

func TestRegistrar_VendedorNoEncontrado(t *testing.T) {
	f := nuevaFixture(t)

	_, err := f.uc.Registrar(context.Background(), dto.RegistrarVentaRequest{
		UID: "desconocido", Pizzas: dec("1"), EntregoPago: "SI",
	})
	assert.ErrorIs(t, err, domain.ErrVendedorNoEncontrado)
}

func TestRegistrar_EntradaInvalida(t *testing.T) {
	f := nuevaFixture(t)
	f.asignar(t, "50", "125")

	casos := []dto.RegistrarVentaRequest{
		{UID: "", Pizzas: dec("1"), EntregoPago: "SI"},
		{UID: "U1", Pizzas: dec("0"), EntregoPago: "SI"},
		{UID: "U1", Pizzas: dec("-3"), EntregoPago: "SI"},
		{UID: "U1", Pizzas: dec("1"), EntregoPago: "TALVEZ"},
	}
	for _, in := range casos {
		_, err := f.uc.Registrar(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v", in)
	}
	assert.Equal(t, 0, f.filasDeVentas(t))
}
