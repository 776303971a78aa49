package placement

import (
	"context"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

// Persister is the backend leg of every mutation. A rejected call makes the
// store roll the optimistic change back.
type Persister interface {
	PersistPlacements(ctx context.Context, placements []domain.Placement) error
	CreateShelf(ctx context.Context, shelf *domain.Shelf) error
	UpdateShelf(ctx context.Context, shelf *domain.Shelf) error
	DeleteShelf(ctx context.Context, shelfID string) error
}

// Loader returns shelves and devices read from one consistent backend snapshot.
type Loader interface {
	Snapshot(ctx context.Context) ([]*domain.Shelf, []*domain.Device, error)
}
