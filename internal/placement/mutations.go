package placement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

// commit runs the persistence leg of an already applied mutation and rolls
// the mutation back if the backend rejects it.
func (s *Store) commit(ctx context.Context, op string, snap *snapshot, persist func(context.Context) error) error {
	if snap == nil {
		return nil
	}

	err := persist(ctx)
	if err == nil {
		return nil
	}

	s.log.WarnContext(ctx, "mutation rejected by backend, rolling back",
		slog.String("op", op),
		slog.String("err", err.Error()),
	)

	s.rollback(snap)

	return &domain.PersistenceError{Op: op, Err: err}
}

func (s *Store) PlaceDevice(ctx context.Context, deviceID, shelfID string, slotIndex int) error {
	var placements []domain.Placement

	snap, err := s.locked(func() (*snapshot, error) {
		entry, ok := s.devices[deviceID]
		if !ok {
			return nil, domain.ErrDeviceNotFound
		}

		if _, err := s.checkSlot(shelfID, slotIndex); err != nil {
			return nil, err
		}

		if occupant, ok := s.slots[slotKey{shelfID, slotIndex}]; ok {
			if occupant == deviceID {
				return nil, nil
			}
			return nil, domain.ErrSlotOccupied
		}

		next := entry.device.Clone()
		next.Place(domain.Slot(shelfID, slotIndex))
		placements = []domain.Placement{next.Placement()}

		return s.apply(nil, nil, []*domain.Device{next}), nil
	})
	if err != nil {
		return err
	}

	return s.commit(ctx, "place device", snap, func(ctx context.Context) error {
		return s.persister.PersistPlacements(ctx, placements)
	})
}

// UnplaceDevice returns a device to the pool. Unplacing a pooled device is a no-op.
func (s *Store) UnplaceDevice(ctx context.Context, deviceID string) error {
	var placements []domain.Placement

	snap, err := s.locked(func() (*snapshot, error) {
		entry, ok := s.devices[deviceID]
		if !ok {
			return nil, domain.ErrDeviceNotFound
		}

		if !entry.device.Placed() {
			return nil, nil
		}

		next := unplaced([]*domain.Device{entry.device})
		placements = []domain.Placement{next[0].Placement()}

		return s.apply(nil, nil, next), nil
	})
	if err != nil {
		return err
	}

	return s.commit(ctx, "unplace device", snap, func(ctx context.Context) error {
		return s.persister.PersistPlacements(ctx, placements)
	})
}

// SwapDevices exchanges the slots of two placed devices in one step.
func (s *Store) SwapDevices(ctx context.Context, deviceIDA, deviceIDB string) error {
	var placements []domain.Placement

	snap, err := s.locked(func() (*snapshot, error) {
		a, ok := s.devices[deviceIDA]
		if !ok {
			return nil, domain.ErrDeviceNotFound
		}

		b, ok := s.devices[deviceIDB]
		if !ok {
			return nil, domain.ErrDeviceNotFound
		}

		if !a.device.Placed() || !b.device.Placed() {
			return nil, domain.ErrNotBothPlaced
		}

		if deviceIDA == deviceIDB {
			return nil, nil
		}

		nextA, nextB := a.device.Clone(), b.device.Clone()
		nextA.Place(b.device.Location())
		nextB.Place(a.device.Location())
		placements = []domain.Placement{nextA.Placement(), nextB.Placement()}

		return s.apply(nil, nil, []*domain.Device{nextA, nextB}), nil
	})
	if err != nil {
		return err
	}

	return s.commit(ctx, "swap devices", snap, func(ctx context.Context) error {
		return s.persister.PersistPlacements(ctx, placements)
	})
}

func (s *Store) CreateShelf(ctx context.Context, name string, rows, columns int) (domain.Shelf, error) {
	if !domain.ValidDimensions(rows, columns) {
		return domain.Shelf{}, domain.ErrInvalidDimensions
	}

	now := s.now()
	id := s.newID()
	shelf := &domain.Shelf{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Rows:      rows,
		Columns:   columns,
		Barcode:   shelfBarcode(id),
		CreatedAt: now,
		UpdatedAt: now,
	}
	persisted := *shelf

	snap, _ := s.locked(func() (*snapshot, error) {
		return s.apply([]*domain.Shelf{shelf}, nil, nil), nil
	})

	err := s.commit(ctx, "create shelf", snap, func(ctx context.Context) error {
		return s.persister.CreateShelf(ctx, &persisted)
	})
	if err != nil {
		return domain.Shelf{}, err
	}

	return *shelf, nil
}

// UpdateShelf applies patch. Devices left outside a shrunken grid are returned
// to the pool as part of the same mutation.
func (s *Store) UpdateShelf(ctx context.Context, shelfID string, patch domain.ShelfPatch) (domain.Shelf, error) {
	var persisted domain.Shelf

	snap, err := s.locked(func() (*snapshot, error) {
		entry, ok := s.shelves[shelfID]
		if !ok {
			return nil, domain.ErrShelfNotFound
		}

		next := patch.Apply(*entry.shelf)
		if !domain.ValidDimensions(next.Rows, next.Columns) {
			return nil, domain.ErrInvalidDimensions
		}
		next.UpdatedAt = s.now()
		persisted = next

		evicted := unplaced(s.placedOn(shelfID, next.TotalSlots()))
		if len(evicted) > 0 {
			s.log.Debug("shelf shrink evicts devices",
				slog.String("shelf_id", shelfID),
				slog.Int("evicted", len(evicted)),
			)
		}

		return s.apply([]*domain.Shelf{&next}, nil, evicted), nil
	})
	if err != nil {
		return domain.Shelf{}, err
	}

	err = s.commit(ctx, "update shelf", snap, func(ctx context.Context) error {
		return s.persister.UpdateShelf(ctx, &persisted)
	})
	if err != nil {
		return domain.Shelf{}, err
	}

	return persisted, nil
}

// DeleteShelf returns every device on the shelf to the pool and removes it.
func (s *Store) DeleteShelf(ctx context.Context, shelfID string) error {
	snap, err := s.locked(func() (*snapshot, error) {
		if _, ok := s.shelves[shelfID]; !ok {
			return nil, domain.ErrShelfNotFound
		}

		return s.apply(nil, []string{shelfID}, unplaced(s.placedOn(shelfID, 0))), nil
	})
	if err != nil {
		return err
	}

	return s.commit(ctx, "delete shelf", snap, func(ctx context.Context) error {
		return s.persister.DeleteShelf(ctx, shelfID)
	})
}

func (s *Store) locked(fn func() (*snapshot, error)) (*snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn()
}

// shelfBarcode derives a printable barcode from the random tail of the shelf id.
func shelfBarcode(id string) string {
	compact := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(compact) > 10 {
		compact = compact[len(compact)-10:]
	}
	return fmt.Sprintf("SH-%s", compact)
}
