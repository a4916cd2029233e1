package repository

import (
	"context"

	"github.com/jhoicas/Pizzeria-api/internal/domain/entity"
)

// VendedorRepository puerto de acceso al directorio de vendedores.
type VendedorRepository interface {
	// GetByUID busca por coincidencia exacta de UID. Devuelve nil si no existe.
	GetByUID(ctx context.Context, uid string) (*entity.Vendedor, error)
	// Append agrega el vendedor al directorio. No verifica duplicados;
	// esa regla vive en el caso de uso de registro.
	Append(ctx context.Context, v *entity.Vendedor) error
}
