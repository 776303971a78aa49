package changefeed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

type Fetcher interface {
	DeviceByID(ctx context.Context, id string) (*domain.Device, error)
	ShelfByID(ctx context.Context, id string) (*domain.Shelf, error)
}

type Merger interface {
	ApplyDevice(device domain.Device)
	RemoveDevice(deviceID string)
	ApplyShelf(shelf domain.Shelf)
	RemoveShelf(shelfID string)
}

type Subscriber struct {
	log     *slog.Logger
	changes <-chan domain.Change
	fetcher Fetcher
	merger  Merger
}

func NewSubscriber(log *slog.Logger, changes <-chan domain.Change, fetcher Fetcher, merger Merger) *Subscriber {
	return &Subscriber{
		log:     log,
		changes: changes,
		fetcher: fetcher,
		merger:  merger,
	}
}

// Run handles changes one at a time in delivery order. A failed refetch is
// logged and skipped; the next resync repairs the record.
func (s *Subscriber) Run(ctx context.Context) error {
	for {
		select {
		case change, ok := <-s.changes:
			if !ok {
				return nil
			}

			if err := s.Handle(ctx, change); err != nil {
				s.log.ErrorContext(ctx, "failed to merge change",
					slog.String("table", string(change.Table)),
					slog.String("op", string(change.Op)),
					slog.String("id", change.ID),
					slog.String("err", err.Error()),
				)
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Subscriber) Handle(ctx context.Context, change domain.Change) error {
	switch change.Table {
	case domain.ChangeTableDevices:
		return s.deviceChanged(ctx, change)
	case domain.ChangeTableShelves:
		return s.shelfChanged(ctx, change)
	default:
		return fmt.Errorf("unknown table %q", change.Table)
	}
}

func (s *Subscriber) deviceChanged(ctx context.Context, change domain.Change) error {
	if change.Op == domain.ChangeOpDelete {
		s.merger.RemoveDevice(change.ID)
		return nil
	}

	device, err := s.fetcher.DeviceByID(ctx, change.ID)
	switch {
	case errors.Is(err, domain.ErrDeviceNotFound):
		// deleted after the notification was sent
		s.merger.RemoveDevice(change.ID)
		return nil
	case err != nil:
		return fmt.Errorf("failed to fetch device: %w", err)
	}

	s.log.DebugContext(ctx, "merging device", slog.String("device_id", device.ID))
	s.merger.ApplyDevice(*device)

	return nil
}

func (s *Subscriber) shelfChanged(ctx context.Context, change domain.Change) error {
	if change.Op == domain.ChangeOpDelete {
		s.merger.RemoveShelf(change.ID)
		return nil
	}

	shelf, err := s.fetcher.ShelfByID(ctx, change.ID)
	switch {
	case errors.Is(err, domain.ErrShelfNotFound):
		s.merger.RemoveShelf(change.ID)
		return nil
	case err != nil:
		return fmt.Errorf("failed to fetch shelf: %w", err)
	}

	s.log.DebugContext(ctx, "merging shelf", slog.String("shelf_id", shelf.ID))
	s.merger.ApplyShelf(*shelf)

	return nil
}
