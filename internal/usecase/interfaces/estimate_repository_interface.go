package interfaces

import (
	"context"

	"daon_interior/internal/domain/entities"
)

// IEstimateRepository abstracts persistence for estimate documents.
//
// Documents are keyed by their serial number. Put is an upsert: saving a
// document replaces the stored one wholesale, rows included. The same
// interface is implemented by the DynamoDB repository and by the local
// file-backed fallback store, so the use case can decorate one with the
// other.

type IEstimateRepository interface {
	Put(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByNumber(ctx context.Context, number string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	Delete(ctx context.Context, number string) error
}
