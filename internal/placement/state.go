package placement

import (
	"log/slog"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

// snapshot remembers what an optimistic mutation overwrote and which revisions
// it wrote, so that a rollback only touches records nobody changed since.
type snapshot struct {
	devices []deviceSnapshot
	shelves []shelfSnapshot
}

type deviceSnapshot struct {
	prev *domain.Device
	rev  uint64
}

type shelfSnapshot struct {
	id   string
	prev *domain.Shelf // nil when the mutation created the shelf
	rev  uint64        // 0 when the mutation removed the shelf
	tomb uint64        // removal revision written by the mutation
}

func (s *Store) nextRev() uint64 {
	s.rev++
	return s.rev
}

func (s *Store) unindex(d *domain.Device) {
	if !d.Placed() {
		return
	}

	key := slotKey{*d.ShelfID, *d.SlotIndex}
	if s.slots[key] == d.ID {
		delete(s.slots, key)
	}
}

// putDevices replaces whole device records. Old placements are released before
// new ones are claimed, so a swap never passes through a shared slot. A device
// still holding a claimed slot loses it and returns to the pool.
func (s *Store) putDevices(devices ...*domain.Device) []Event {
	var events []Event

	for _, d := range devices {
		if old, ok := s.devices[d.ID]; ok {
			s.unindex(old.device)
		}
	}

	for _, d := range devices {
		if d.Placed() {
			key := slotKey{*d.ShelfID, *d.SlotIndex}
			if other, ok := s.slots[key]; ok && other != d.ID {
				events = append(events, s.evict(other)...)
			}
			s.slots[key] = d.ID
		}

		s.devices[d.ID] = &deviceEntry{device: d, rev: s.nextRev()}
		events = append(events, deviceUpdated(d))
	}

	return events
}

func (s *Store) evict(deviceID string) []Event {
	entry, ok := s.devices[deviceID]
	if !ok || !entry.device.Placed() {
		return nil
	}

	s.unindex(entry.device)

	evicted := entry.device.Clone()
	evicted.Place(domain.Pool())
	s.devices[deviceID] = &deviceEntry{device: evicted, rev: s.nextRev()}

	return []Event{deviceUpdated(evicted)}
}

func (s *Store) removeDevice(id string) []Event {
	entry, ok := s.devices[id]
	if !ok {
		return nil
	}

	s.unindex(entry.device)
	delete(s.devices, id)

	return []Event{deviceRemoved(id)}
}

func (s *Store) putShelf(shelf *domain.Shelf) []Event {
	delete(s.removed, shelf.ID)
	s.shelves[shelf.ID] = &shelfEntry{shelf: shelf, rev: s.nextRev()}
	return []Event{shelfUpdated(shelf)}
}

// removeShelf drops the shelf and records a removal revision even when the
// shelf is already gone, so a pending local delete can tell it was repeated.
func (s *Store) removeShelf(id string) []Event {
	s.removed[id] = s.nextRev()

	if _, ok := s.shelves[id]; !ok {
		return nil
	}

	delete(s.shelves, id)
	return []Event{shelfRemoved(id)}
}

// placedOn returns the devices referencing shelfID whose slot is at or beyond limit.
func (s *Store) placedOn(shelfID string, limit int) []*domain.Device {
	var devices []*domain.Device
	for _, entry := range s.devices {
		d := entry.device
		if d.Placed() && *d.ShelfID == shelfID && *d.SlotIndex >= limit {
			devices = append(devices, d)
		}
	}
	return devices
}

// admit sends a device record to the pool when its placement does not fit the
// local grid: an unknown shelf or a slot past the end of the shelf.
func (s *Store) admit(d *domain.Device) *domain.Device {
	if !d.Placed() {
		return d
	}

	if _, err := s.checkSlot(*d.ShelfID, *d.SlotIndex); err != nil {
		s.log.Warn("placement outside the known grid, device moved to pool",
			slog.String("device_id", d.ID),
			slog.String("location", d.Location().String()),
			slog.String("err", err.Error()),
		)
		d.Place(domain.Pool())
	}

	return d
}

// unplaced returns pool copies of devices, for applying through putDevices.
func unplaced(devices []*domain.Device) []*domain.Device {
	result := make([]*domain.Device, 0, len(devices))
	for _, d := range devices {
		c := d.Clone()
		c.Place(domain.Pool())
		result = append(result, c)
	}
	return result
}

// apply writes a set of device and shelf records and records a snapshot for rollback.
// Shelves are written first so device placements can refer to them.
func (s *Store) apply(shelves []*domain.Shelf, removeShelves []string, devices []*domain.Device) *snapshot {
	snap := &snapshot{}
	var events []Event

	for _, shelf := range shelves {
		var prev *domain.Shelf
		if entry, ok := s.shelves[shelf.ID]; ok {
			prev = entry.shelf
		}
		events = append(events, s.putShelf(shelf)...)
		snap.shelves = append(snap.shelves, shelfSnapshot{id: shelf.ID, prev: prev, rev: s.shelves[shelf.ID].rev})
	}

	prevDevices := make([]*domain.Device, 0, len(devices))
	for _, d := range devices {
		prevDevices = append(prevDevices, s.devices[d.ID].device)
	}

	events = append(events, s.putDevices(devices...)...)

	for i, d := range devices {
		snap.devices = append(snap.devices, deviceSnapshot{prev: prevDevices[i], rev: s.devices[d.ID].rev})
	}

	for _, id := range removeShelves {
		if entry, ok := s.shelves[id]; ok {
			events = append(events, s.removeShelf(id)...)
			snap.shelves = append(snap.shelves, shelfSnapshot{id: id, prev: entry.shelf, tomb: s.removed[id]})
		}
	}

	s.notify(events)

	return snap
}

// rollback restores the records of snap that still carry the revision the
// mutation wrote. Records overwritten in the meantime (by a remote change or a
// later local mutation) are left alone.
func (s *Store) rollback(snap *snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []Event

	for _, ss := range snap.shelves {
		entry, exists := s.shelves[ss.id]

		switch {
		case ss.rev == 0 && !exists && s.removed[ss.id] == ss.tomb:
			events = append(events, s.putShelf(ss.prev)...)
		case exists && entry.rev == ss.rev && ss.prev == nil:
			events = append(events, s.putDevices(unplaced(s.placedOn(ss.id, 0))...)...)
			events = append(events, s.removeShelf(ss.id)...)
		case exists && entry.rev == ss.rev:
			events = append(events, s.putShelf(ss.prev)...)
		}
	}

	var restore []*domain.Device
	for _, ds := range snap.devices {
		entry, ok := s.devices[ds.prev.ID]
		if !ok || entry.rev != ds.rev {
			continue
		}
		restore = append(restore, ds.prev.Clone())
	}

	// A slot vacated by the mutation may have been claimed since; the device then
	// stays in the pool rather than displacing the newer occupant.
	for _, d := range restore {
		if !d.Placed() {
			continue
		}

		key := slotKey{*d.ShelfID, *d.SlotIndex}
		occupant, taken := s.slots[key]
		_, err := s.checkSlot(key.shelfID, key.slot)

		if err != nil || (taken && !s.restoring(occupant, restore)) {
			d.Place(domain.Pool())
		}
	}

	events = append(events, s.putDevices(restore...)...)

	s.notify(events)
}

func (s *Store) restoring(deviceID string, restore []*domain.Device) bool {
	for _, d := range restore {
		if d.ID == deviceID {
			return true
		}
	}
	return false
}
