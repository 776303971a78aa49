package placement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

// ApplyDevice merges a device record delivered by the backend. The record
// replaces the local one wholesale, including any pending optimistic change.
// A placement that does not fit the local grid lands in the pool.
func (s *Store) ApplyDevice(device domain.Device) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notify(s.putDevices(s.admit(device.Clone())))
}

func (s *Store) RemoveDevice(deviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notify(s.removeDevice(deviceID))
}

// ApplyShelf merges a shelf record delivered by the backend. Local placements
// outside the new grid are dropped, as the backend does on resize.
func (s *Store) ApplyShelf(shelf domain.Shelf) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.putShelf(&shelf)
	events = append(events, s.putDevices(unplaced(s.placedOn(shelf.ID, shelf.TotalSlots()))...)...)

	s.notify(events)
}

// RemoveShelf drops a shelf deleted by another session and returns its devices to the pool.
func (s *Store) RemoveShelf(shelfID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.putDevices(unplaced(s.placedOn(shelfID, 0))...)
	events = append(events, s.removeShelf(shelfID)...)

	s.notify(events)
}

// Load replaces the whole state with a fresh backend snapshot.
func (s *Store) Load(ctx context.Context, loader Loader) error {
	shelves, devices, err := loader.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.shelves = make(map[string]*shelfEntry, len(shelves))
	s.devices = make(map[string]*deviceEntry, len(devices))
	s.slots = make(map[slotKey]string, len(devices))
	s.removed = make(map[string]uint64)

	for _, shelf := range shelves {
		copied := *shelf
		s.putShelf(&copied)
	}

	placed := 0
	for _, device := range devices {
		d := s.admit(device.Clone())
		s.putDevices(d)
		if d.Placed() {
			placed++
		}
	}

	s.log.InfoContext(ctx, "placement store loaded",
		slog.Int("shelves", len(shelves)),
		slog.Int("devices", len(devices)),
		slog.Int("placed", placed),
	)

	s.notify([]Event{{Kind: EventReloaded}})

	return nil
}
