package tabular

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
)

var _ repository.VendedorRepository = (*VendedorRepo)(nil)

// VendedorRepo implementación de VendedorRepository sobre el row-store.
type VendedorRepo struct {
	store repository.RowStore
}

// NewVendedorRepository construye el adaptador.
func NewVendedorRepository(store repository.RowStore) *VendedorRepo {
	return &VendedorRepo{store: store}
}

// GetByUID recorre la hoja Vendedores buscando coincidencia exacta de UID.
func (r *VendedorRepo) GetByUID(ctx context.Context, uid string) (*entity.Vendedor, error) {
	rows, err := r.store.GetRows(ctx, repository.HojaVendedores)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Get(colUID) != uid {
			continue
		}
		comision, err := leerDecimal(row, repository.HojaVendedores, colComision)
		if err != nil {
			return nil, err
		}
		return &entity.Vendedor{
			UID:      uid,
			Nombre:   row.Get(colNombre),
			IFE:      row.Get(colIFE),
			Telefono: row.Get(colTelefono),
			Lider:    row.Get(colLider),
			Comision: comision,
		}, nil
	}
	return nil, nil
}

// Append agrega el vendedor como fila nueva del directorio.
func (r *VendedorRepo) Append(ctx context.Context, v *entity.Vendedor) error {
	campos := map[string]string{
		colUID:      v.UID,
		colNombre:   v.Nombre,
		colIFE:      v.IFE,
		colTelefono: v.Telefono,
		colLider:    v.Lider,
		colComision: v.Comision.String(),
	}
	if err := r.store.AddRow(ctx, repository.HojaVendedores, campos); err != nil {
		return fmt.Errorf("agregar vendedor: %w", err)
	}
	return nil
}
