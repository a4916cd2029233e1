// Package memoria implementa el RowStore en memoria. Se usa en las pruebas y
// con STORE_DRIVER=memoria para desarrollo local sin credenciales.
package memoria

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Pizzeria-api/internal/domain"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
)

var _ repository.RowStore = (*Store)(nil)

// Store almacén tabular en memoria. Las hojas deben crearse con NewStore o
// CrearHoja; agregar a una hoja inexistente falla igual que en los otros
// drivers.
type Store struct {
	mu    sync.RWMutex
	hojas map[string][]fila
}

type fila map[string]string

// Get implementa repository.Row.
func (f fila) Get(columna string) string { return f[columna] }

// NewStore construye el almacén con las hojas indicadas, vacías.
func NewStore(hojas ...string) *Store {
	s := &Store{hojas: make(map[string][]fila, len(hojas))}
	for _, h := range hojas {
		s.hojas[h] = nil
	}
	return s
}

// NewStoreCompleto construye el almacén con las cinco hojas del sistema.
func NewStoreCompleto() *Store {
	return NewStore(
		repository.HojaVendedores,
		repository.HojaAsignaciones,
		repository.HojaVentas,
		repository.HojaDevoluciones,
		repository.HojaPagosComision,
	)
}

// CrearHoja agrega una hoja vacía si no existe.
func (s *Store) CrearHoja(nombre string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hojas[nombre]; !ok {
		s.hojas[nombre] = nil
	}
}

// GetRows devuelve una copia de las filas de la hoja en orden de inserción.
func (s *Store) GetRows(_ context.Context, hoja string) ([]repository.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filas, ok := s.hojas[hoja]
	if !ok {
		return nil, fmt.Errorf("hoja %q: %w", hoja, domain.ErrHojaNoEncontrada)
	}
	out := make([]repository.Row, len(filas))
	for i, f := range filas {
		out[i] = f
	}
	return out, nil
}

// AddRow agrega una fila al final de la hoja.
func (s *Store) AddRow(_ context.Context, hoja string, campos map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.hojas[hoja]; !ok {
		return fmt.Errorf("hoja %q: %w", hoja, domain.ErrHojaNoEncontrada)
	}
	f := make(fila, len(campos))
	for k, v := range campos {
		f[k] = v
	}
	s.hojas[hoja] = append(s.hojas[hoja], f)
	return nil
}
