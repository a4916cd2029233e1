// Package sheets implementa el RowStore sobre una hoja de cálculo de Google
// Sheets: una pestaña por tabla, primera fila como encabezados. Se autentica
// con una cuenta de servicio (credentials.json) con scope de spreadsheets.
package sheets

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/Pizzeria-api/internal/domain"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
	"github.com/jhoicas/Pizzeria-api/pkg/config"
)

var _ repository.RowStore = (*Store)(nil)

// Store almacén tabular sobre Google Sheets.
type Store struct {
	svc           *sheetsapi.Service
	spreadsheetID string

	// encabezados por pestaña, cargados por LoadSchema. La API de valores no
	// distingue "pestaña inexistente" de otros errores de rango, así que la
	// existencia se resuelve contra este esquema.
	mu          sync.RWMutex
	encabezados map[string][]string
}

// NewStore autentica la cuenta de servicio, construye el cliente de Sheets y
// carga el esquema (pestañas y encabezados) de la hoja de cálculo.
func NewStore(ctx context.Context, cfg config.SheetsConfig) (*Store, error) {
	credenciales, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("leer credenciales: %w", err)
	}
	jwtCfg, err := google.JWTConfigFromJSON(credenciales, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("configurar JWT de cuenta de servicio: %w", err)
	}
	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("crear cliente de Sheets: %w", err)
	}

	s := &Store{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		encabezados:   make(map[string][]string),
	}
	if err := s.LoadSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadSchema lee las pestañas de la hoja de cálculo y el encabezado (fila 1)
// de cada una. Se puede reinvocar para refrescar el esquema si se agregan
// pestañas o columnas con la aplicación corriendo.
func (s *Store) LoadSchema(ctx context.Context) error {
	doc, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("cargar hoja de cálculo %s: %w", s.spreadsheetID, err)
	}

	rangos := make([]string, 0, len(doc.Sheets))
	titulos := make([]string, 0, len(doc.Sheets))
	for _, hoja := range doc.Sheets {
		titulos = append(titulos, hoja.Properties.Title)
		rangos = append(rangos, fmt.Sprintf("'%s'!1:1", hoja.Properties.Title))
	}

	resp, err := s.svc.Spreadsheets.Values.BatchGet(s.spreadsheetID).Ranges(rangos...).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("leer encabezados: %w", err)
	}

	encabezados := make(map[string][]string, len(titulos))
	for i, vr := range resp.ValueRanges {
		cols := []string{}
		if len(vr.Values) > 0 {
			for _, celda := range vr.Values[0] {
				cols = append(cols, fmt.Sprint(celda))
			}
		}
		encabezados[titulos[i]] = cols
	}

	s.mu.Lock()
	s.encabezados = encabezados
	s.mu.Unlock()
	return nil
}

// columnas devuelve los encabezados de la pestaña o ErrHojaNoEncontrada.
func (s *Store) columnas(hoja string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cols, ok := s.encabezados[hoja]
	if !ok {
		return nil, fmt.Errorf("hoja %q: %w", hoja, domain.ErrHojaNoEncontrada)
	}
	return cols, nil
}

// GetRows lee todas las filas de datos de la pestaña (desde la fila 2) en el
// orden en que están en la hoja.
func (s *Store) GetRows(ctx context.Context, hoja string) ([]repository.Row, error) {
	cols, err := s.columnas(hoja)
	if err != nil {
		return nil, err
	}

	rango := fmt.Sprintf("'%s'!A2:Z", hoja)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rango).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", hoja, err)
	}

	out := make([]repository.Row, 0, len(resp.Values))
	for _, valores := range resp.Values {
		celdas := make([]string, len(valores))
		for i, v := range valores {
			celdas[i] = fmt.Sprint(v)
		}
		out = append(out, filaSheets{columnas: cols, celdas: celdas})
	}
	return out, nil
}

// AddRow agrega una fila al final de la pestaña, ordenando los campos según
// el encabezado. Columnas sin valor quedan vacías; campos que no existen en
// el encabezado se ignoran (la hoja manda).
func (s *Store) AddRow(ctx context.Context, hoja string, campos map[string]string) error {
	cols, err := s.columnas(hoja)
	if err != nil {
		return err
	}

	valores := make([]interface{}, len(cols))
	for i, col := range cols {
		valores[i] = campos[col]
	}

	vr := &sheetsapi.ValueRange{Values: [][]interface{}{valores}}
	_, err = s.svc.Spreadsheets.Values.Append(s.spreadsheetID, fmt.Sprintf("'%s'!A1", hoja), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("agregar fila a %q: %w", hoja, err)
	}
	return nil
}

// filaSheets fila leída de la hoja; Get resuelve la columna por posición en
// el encabezado.
type filaSheets struct {
	columnas []string
	celdas   []string
}

// Get implementa repository.Row.
func (f filaSheets) Get(columna string) string {
	for i, c := range f.columnas {
		if c == columna && i < len(f.celdas) {
			return f.celdas[i]
		}
	}
	return ""
}
