package memoria_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pizzeria-api/internal/domain"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/memoria"
)

func TestStore_OrdenDeInsercion(t *testing.T) {
	ctx := context.Background()
	store := memoria.NewStore("Asignaciones")

	require.NoError(t, store.AddRow(ctx, "Asignaciones", map[string]string{"Precio_Unitario": "125"}))
	require.NoError(t, store.AddRow(ctx, "Asignaciones", map[string]string{"Precio_Unitario": "130"}))

	rows, err := store.GetRows(ctx, "Asignaciones")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "125", rows[0].Get("Precio_Unitario"))
	assert.Equal(t, "130", rows[1].Get("Precio_Unitario"))
}

func TestStore_HojaInexistente(t *testing.T) {
	ctx := context.Background()
	store := memoria.NewStore("Vendedores")

	_, err := store.GetRows(ctx, "Ventas")
	assert.ErrorIs(t, err, domain.ErrHojaNoEncontrada)

	err = store.AddRow(ctx, "Ventas", map[string]string{"UID_Vendedor": "U1"})
	assert.ErrorIs(t, err, domain.ErrHojaNoEncontrada)
}

func TestStore_ColumnaInexistenteEsVacia(t *testing.T) {
	ctx := context.Background()
	store := memoria.NewStoreCompleto()

	require.NoError(t, store.AddRow(ctx, "Vendedores", map[string]string{"UID": "U1"}))
	rows, err := store.GetRows(ctx, "Vendedores")
	require.NoError(t, err)
	assert.Equal(t, "", rows[0].Get("Telefono"))
}
