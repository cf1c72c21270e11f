package menu

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no catalog has been persisted yet.
var ErrNotFound = errors.New("no saved menu")

// Repository defines the persistence contract for the catalog.
// Store depends ONLY on this interface.
type Repository interface {
	Load(ctx context.Context) (MenuData, error)
	Save(ctx context.Context, data MenuData) error
}
