package tabular_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/memoria"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/tabular"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestVendedorRepo_AppendYGetByUID(t *testing.T) {
	ctx := context.Background()
	store := memoria.NewStoreCompleto()
	repo := tabular.NewVendedorRepository(store)

	require.NoError(t, repo.Append(ctx, &entity.Vendedor{
		UID:      "0092311314",
		Nombre:   "Ana",
		IFE:      "IFE123",
		Telefono: "5512345678",
		Lider:    "Luis",
		Comision: dec("10"),
	}))

	v, err := repo.GetByUID(ctx, "0092311314")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Ana", v.Nombre)
	assert.Equal(t, "IFE123", v.IFE)
	assert.True(t, dec("10").Equal(v.Comision))

	ausente, err := repo.GetByUID(ctx, "otro")
	require.NoError(t, err)
	assert.Nil(t, ausente)
}

// La celda de comisión con basura es dato corrupto del almacén, no un 404.
func TestVendedorRepo_ComisionCorrupta(t *testing.T) {
	ctx := context.Background()
	store := memoria.NewStoreCompleto()
	require.NoError(t, store.AddRow(ctx, repository.HojaVendedores, map[string]string{
		"UID":            "U1",
		"Nombre":         "Ana",
		"Comision_Venta": "diez",
	}))

	repo := tabular.NewVendedorRepository(store)
	_, err := repo.GetByUID(ctx, "U1")
	assert.Error(t, err)
}

func TestAsignacionRepo_FiltraYConservaOrden(t *testing.T) {
	ctx := context.Background()
	store := memoria.NewStoreCompleto()
	repo := tabular.NewAsignacionRepository(store)

	require.NoError(t, repo.Append(ctx, &entity.Asignacion{UIDVendedor: "U1", Pizzas: dec("50"), PrecioUnitario: dec("125")}))
	require.NoError(t, repo.Append(ctx, &entity.Asignacion{UIDVendedor: "U2", Pizzas: dec("99"), PrecioUnitario: dec("125")}))
	require.NoError(t, repo.Append(ctx, &entity.Asignacion{UIDVendedor: "U1", Pizzas: dec("20"), PrecioUnitario: dec("130")}))

	lista, err := repo.ListByUID(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.True(t, dec("50").Equal(lista[0].Pizzas))
	assert.True(t, dec("130").Equal(lista[1].PrecioUnitario), "la última asignación va al final")
}

// La hoja de Ventas guarda los montos ya redondeados a dos decimales.
func TestVentaRepo_RedondeaAlEscribir(t *testing.T) {
	ctx := context.Background()
	store := memoria.NewStoreCompleto()
	repo := tabular.NewVentaRepository(store)

	require.NoError(t, repo.Append(ctx, &entity.Venta{
		UIDVendedor:    "U1",
		Pizzas:         dec("3"),
		VentaTotal:     dec("375"),
		ComisionGanada: dec("12.4875"),
		PagoRecibido:   entity.PagoRecibidoNO,
	}))

	rows, err := store.GetRows(ctx, repository.HojaVentas)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "375.00", rows[0].Get("Venta_Total"))
	assert.Equal(t, "12.49", rows[0].Get("Comision_Ganada"))
	assert.Equal(t, "NO", rows[0].Get("Pago_Recibido"))
}

func TestPagoComisionRepo_Roundtrip(t *testing.T) {
	ctx := context.Background()
	store := memoria.NewStoreCompleto()
	repo := tabular.NewPagoComisionRepository(store)

	require.NoError(t, repo.Append(ctx, &entity.PagoComision{
		UIDVendedor:    "U1",
		NombreVendedor: "Ana",
		Monto:          dec("250"),
	}))

	lista, err := repo.ListByUID(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.True(t, dec("250").Equal(lista[0].Monto))
	assert.Equal(t, "Ana", lista[0].NombreVendedor)
}
