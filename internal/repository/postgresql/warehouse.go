package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

// Warehouse is the backend of the placement store: reads go straight to the
// repositories, every write runs in its own transaction.
type Warehouse struct {
	*DevicesRepository
	*ShelvesRepository

	tx *TxManager
}

func NewWarehouse(devices *DevicesRepository, shelves *ShelvesRepository, tx *TxManager) *Warehouse {
	return &Warehouse{
		DevicesRepository: devices,
		ShelvesRepository: shelves,
		tx:                tx,
	}
}

// Snapshot reads shelves and devices in one repeatable-read transaction, so
// every placement it returns refers to a shelf of the same snapshot.
func (w *Warehouse) Snapshot(ctx context.Context) (shelves []*domain.Shelf, devices []*domain.Device, err error) {
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

	err = w.tx.WithTransactionOptions(ctx, opts, func(ctx context.Context) error {
		if shelves, err = w.Shelves(ctx); err != nil {
			return err
		}

		devices, err = w.Devices(ctx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return shelves, devices, nil
}

func (w *Warehouse) PersistPlacements(ctx context.Context, placements []domain.Placement) error {
	return w.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return w.DevicesRepository.PersistPlacements(ctx, placements)
	})
}

func (w *Warehouse) CreateShelf(ctx context.Context, shelf *domain.Shelf) error {
	return w.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return w.ShelvesRepository.CreateShelf(ctx, shelf)
	})
}

func (w *Warehouse) UpdateShelf(ctx context.Context, shelf *domain.Shelf) error {
	return w.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return w.ShelvesRepository.UpdateShelf(ctx, shelf)
	})
}

func (w *Warehouse) DeleteShelf(ctx context.Context, shelfID string) error {
	return w.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return w.ShelvesRepository.DeleteShelf(ctx, shelfID)
	})
}
