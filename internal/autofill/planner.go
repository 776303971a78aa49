// Package autofill pairs pooled devices with empty slots in one batch.
package autofill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

type Store interface {
	Device(id string) (domain.Device, error)
	Shelves() []domain.Shelf
	DevicesOnShelf(shelfID string) ([]*domain.Device, error)
	UnassignedDevices() []domain.Device
	PlaceDevice(ctx context.Context, deviceID, shelfID string, slotIndex int) error
}

type Result struct {
	Placed           int `json:"placed"`
	EmptySlotsLeft   int `json:"empty_slots_left"`
	DevicesUnplaced  int `json:"devices_unplaced"`
	FailedPlacements int `json:"failed_placements"`
}

type Planner struct {
	log   *slog.Logger
	store Store
}

func New(log *slog.Logger, store Store) *Planner {
	return &Planner{
		log:   log,
		store: store,
	}
}

// EmptySlots lists unoccupied slots, shelves in creation order and slots in index order.
func (p *Planner) EmptySlots() []domain.Location {
	var slots []domain.Location

	for _, shelf := range p.store.Shelves() {
		devices, err := p.store.DevicesOnShelf(shelf.ID)
		if err != nil {
			// removed since Shelves() was read
			continue
		}

		for i, d := range devices {
			if d == nil {
				slots = append(slots, domain.Slot(shelf.ID, i))
			}
		}
	}

	return slots
}

// Run walks the pool and the empty slots in lockstep. A failed placement moves
// on to the next slot with the same device, except when the device itself is
// gone, in which case the slot is offered to the next device. A device placed
// by someone else since the pool was read is skipped and keeps its placement.
// Re-running after a complete run pairs nothing.
func (p *Planner) Run(ctx context.Context) (Result, error) {
	slots := p.EmptySlots()
	pending := p.store.UnassignedDevices()

	p.log.InfoContext(ctx, "auto-fill started",
		slog.Int("empty_slots", len(slots)),
		slog.Int("pending_devices", len(pending)),
	)

	var result Result
	di, si := 0, 0

	for di < len(pending) && si < len(slots) {
		if err := ctx.Err(); err != nil {
			result.EmptySlotsLeft = len(slots) - si
			result.DevicesUnplaced = len(pending) - di
			return result, fmt.Errorf("auto-fill interrupted: %w", err)
		}

		device, slot := pending[di], slots[si]

		current, err := p.store.Device(device.ID)
		switch {
		case err != nil:
			p.log.DebugContext(ctx, "device disappeared, skipping device",
				slog.String("device_id", device.ID),
				slog.String("err", err.Error()),
			)
			result.FailedPlacements++
			di++
			continue
		case current.Placed():
			p.log.DebugContext(ctx, "device placed elsewhere meanwhile, skipping device",
				slog.String("device_id", device.ID),
				slog.String("location", current.Location().String()),
			)
			di++
			continue
		}

		err = p.store.PlaceDevice(ctx, device.ID, slot.ShelfID, slot.SlotIndex)
		switch {
		case err == nil:
			result.Placed++
			di++
			si++

		case errors.Is(err, domain.ErrDeviceNotFound):
			p.log.DebugContext(ctx, "device disappeared, skipping device",
				slog.String("device_id", device.ID),
				slog.String("err", err.Error()),
			)
			result.FailedPlacements++
			di++

		default:
			p.log.DebugContext(ctx, "slot unavailable, trying next slot",
				slog.String("device_id", device.ID),
				slog.String("slot", slot.String()),
				slog.String("err", err.Error()),
			)
			result.FailedPlacements++
			si++
		}
	}

	result.EmptySlotsLeft = len(slots) - si
	result.DevicesUnplaced = len(pending) - di

	p.log.InfoContext(ctx, "auto-fill finished",
		slog.Int("placed", result.Placed),
		slog.Int("empty_slots_left", result.EmptySlotsLeft),
		slog.Int("devices_unplaced", result.DevicesUnplaced),
		slog.Int("failed", result.FailedPlacements),
	)

	return result, nil
}
