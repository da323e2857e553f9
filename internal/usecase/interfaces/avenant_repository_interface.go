package interfaces

import (
	"context"

	"chantierplus/internal/domain/entities"
)

// IAvenantRepository abstracts DynamoDB persistence for signed avenants.
//
// Not-found lookups return a zero Avenant and a nil error; the use case decides
// whether that is an error.

type IAvenantRepository interface {
	Create(ctx context.Context, a entities.Avenant) (entities.Avenant, error)
	GetByID(ctx context.Context, id string) (entities.Avenant, error)
	ListByChantierID(ctx context.Context, chantierID string) ([]entities.Avenant, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.AvenantStatus) (entities.Avenant, error)
}
