// Package postgres implementa el RowStore sobre PostgreSQL. El almacén
// conserva la forma tabular genérica del colaborador: una tabla `filas` de
// solo inserción con los campos de cada fila en jsonb, más un registro de
// hojas conocidas para que una hoja inexistente falle igual que en el driver
// de Sheets.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Pizzeria-api/internal/domain"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
)

var _ repository.RowStore = (*Store)(nil)

// Store almacén tabular de solo inserción sobre PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el almacén y asegura el esquema con las cinco hojas del
// sistema registradas.
func NewStore(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	s := &Store{pool: pool}
	if err := s.LoadSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadSchema crea las tablas si no existen y registra las hojas conocidas.
func (s *Store) LoadSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS hojas (
			nombre TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS filas (
			id        BIGSERIAL PRIMARY KEY,
			hoja      TEXT NOT NULL REFERENCES hojas(nombre),
			campos    JSONB NOT NULL,
			creado_en TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS filas_hoja_id_idx ON filas (hoja, id)`,
	}
	for _, q := range ddl {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}

	hojas := []string{
		repository.HojaVendedores,
		repository.HojaAsignaciones,
		repository.HojaVentas,
		repository.HojaDevoluciones,
		repository.HojaPagosComision,
	}
	for _, h := range hojas {
		if _, err := s.pool.Exec(ctx,
			`INSERT INTO hojas (nombre) VALUES ($1) ON CONFLICT (nombre) DO NOTHING`, h); err != nil {
			return fmt.Errorf("registrar hoja %q: %w", h, err)
		}
	}
	return nil
}

// existeHoja consulta el registro de hojas.
func (s *Store) existeHoja(ctx context.Context, hoja string) error {
	var uno int
	err := s.pool.QueryRow(ctx, `SELECT 1 FROM hojas WHERE nombre = $1`, hoja).Scan(&uno)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("hoja %q: %w", hoja, domain.ErrHojaNoEncontrada)
		}
		return fmt.Errorf("consultar hoja %q: %w", hoja, err)
	}
	return nil
}

// GetRows devuelve las filas de la hoja en orden de inserción (por id).
func (s *Store) GetRows(ctx context.Context, hoja string) ([]repository.Row, error) {
	if err := s.existeHoja(ctx, hoja); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT campos FROM filas WHERE hoja = $1 ORDER BY id`, hoja)
	if err != nil {
		return nil, fmt.Errorf("leer filas de %q: %w", hoja, err)
	}
	defer rows.Close()

	var out []repository.Row
	for rows.Next() {
		var campos map[string]string
		if err := rows.Scan(&campos); err != nil {
			return nil, fmt.Errorf("escanear fila de %q: %w", hoja, err)
		}
		out = append(out, filaPG(campos))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar filas de %q: %w", hoja, err)
	}
	return out, nil
}

// AddRow inserta una fila nueva al final de la hoja.
func (s *Store) AddRow(ctx context.Context, hoja string, campos map[string]string) error {
	if err := s.existeHoja(ctx, hoja); err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx,
		`INSERT INTO filas (hoja, campos) VALUES ($1, $2)`, hoja, campos); err != nil {
		return fmt.Errorf("insertar fila en %q: %w", hoja, err)
	}
	return nil
}

// filaPG fila leída del jsonb.
type filaPG map[string]string

// Get implementa repository.Row.
func (f filaPG) Get(columna string) string { return f[columna] }
