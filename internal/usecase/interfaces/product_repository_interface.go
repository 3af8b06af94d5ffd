package interfaces

import (
	"context"

	"daon_interior/internal/domain/entities"
)

// IProductRepository abstracts the fabric/blind catalog.
//
// The catalog is a read-mostly collaborator: row editing resolves products by
// code first, then by exact name, and the recalculation engines tolerate a
// missing catalog entirely.

type IProductRepository interface {
	GetByCode(ctx context.Context, code string) (entities.Product, error)
	SearchByName(ctx context.Context, prefix string) ([]entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
}
