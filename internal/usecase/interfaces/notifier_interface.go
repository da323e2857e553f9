package interfaces

import (
	"context"

	"chantierplus/internal/domain/entities"
)

// INotifier delivers a signed avenant to one recipient (e.g. by email).
type INotifier interface {
	SendAvenant(ctx context.Context, to string, a entities.Avenant) error
}
