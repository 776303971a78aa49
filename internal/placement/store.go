// Package placement holds the authoritative in-memory view of devices and
// shelves. Every mutation is applied optimistically, persisted, and rolled back
// when the backend rejects it. Remote changes replace whole records.
package placement

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
	"github.com/kurochkinivan/device_warehouse/internal/search"
)

type slotKey struct {
	shelfID string
	slot    int
}

type deviceEntry struct {
	device *domain.Device
	rev    uint64
}

type shelfEntry struct {
	shelf *domain.Shelf
	rev   uint64
}

type Store struct {
	log       *slog.Logger
	persister Persister
	newID     func() string
	now       func() time.Time

	mu      sync.RWMutex
	rev     uint64
	devices map[string]*deviceEntry
	shelves map[string]*shelfEntry
	slots   map[slotKey]string
	removed map[string]uint64 // shelf id -> revision of its latest removal

	observers    map[int]func(Event)
	nextObserver int
}

func New(log *slog.Logger, persister Persister) *Store {
	return &Store{
		log:       log,
		persister: persister,
		newID:     newID,
		now:       time.Now,
		devices:   make(map[string]*deviceEntry),
		shelves:   make(map[string]*shelfEntry),
		slots:     make(map[slotKey]string),
		removed:   make(map[string]uint64),
		observers: make(map[int]func(Event)),
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (s *Store) Device(id string) (domain.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.devices[id]
	if !ok {
		return domain.Device{}, domain.ErrDeviceNotFound
	}

	return *entry.device.Clone(), nil
}

// Devices returns every device ordered by name, then id.
func (s *Store) Devices() []domain.Device {
	return s.collectDevices(func(*domain.Device) bool { return true })
}

// UnassignedDevices returns the pool ordered by name, then id.
func (s *Store) UnassignedDevices() []domain.Device {
	return s.collectDevices(func(d *domain.Device) bool { return !d.Placed() })
}

func (s *Store) Search(query string) []domain.Device {
	return search.Filter(query, s.Devices())
}

func (s *Store) collectDevices(keep func(*domain.Device) bool) []domain.Device {
	s.mu.RLock()
	defer s.mu.RUnlock()

	devices := make([]domain.Device, 0, len(s.devices))
	for _, entry := range s.devices {
		if keep(entry.device) {
			devices = append(devices, *entry.device.Clone())
		}
	}

	slices.SortFunc(devices, func(a, b domain.Device) int {
		return cmp.Or(
			strings.Compare(a.Name, b.Name),
			strings.Compare(a.ID, b.ID),
		)
	})

	return devices
}

func (s *Store) Shelf(id string) (domain.Shelf, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.shelves[id]
	if !ok {
		return domain.Shelf{}, domain.ErrShelfNotFound
	}

	return *entry.shelf, nil
}

// Shelves returns every shelf in creation order.
func (s *Store) Shelves() []domain.Shelf {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shelves := make([]domain.Shelf, 0, len(s.shelves))
	for _, entry := range s.shelves {
		shelves = append(shelves, *entry.shelf)
	}

	slices.SortFunc(shelves, func(a, b domain.Shelf) int {
		switch {
		case a.Before(&b):
			return -1
		case b.Before(&a):
			return 1
		default:
			return 0
		}
	})

	return shelves
}

// DevicesOnShelf returns a sparse slot array: element i is the device in slot i or nil.
func (s *Store) DevicesOnShelf(shelfID string) ([]*domain.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.shelves[shelfID]
	if !ok {
		return nil, domain.ErrShelfNotFound
	}

	slots := make([]*domain.Device, entry.shelf.TotalSlots())
	for i := range slots {
		if deviceID, ok := s.slots[slotKey{shelfID, i}]; ok {
			slots[i] = s.devices[deviceID].device.Clone()
		}
	}

	return slots, nil
}

// Occupant returns the id of the device holding loc. The pool has no occupant.
func (s *Store) Occupant(loc domain.Location) (string, bool) {
	if loc.IsPool() {
		return "", false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	deviceID, ok := s.slots[slotKey{loc.ShelfID, loc.SlotIndex}]
	return deviceID, ok
}

// CheckSlot reports whether loc addresses an existing slot.
func (s *Store) CheckSlot(loc domain.Location) error {
	if loc.IsPool() {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := s.checkSlot(loc.ShelfID, loc.SlotIndex)
	return err
}

func (s *Store) checkSlot(shelfID string, slotIndex int) (*domain.Shelf, error) {
	entry, ok := s.shelves[shelfID]
	if !ok {
		return nil, domain.ErrShelfNotFound
	}

	if slotIndex < 0 || slotIndex >= entry.shelf.TotalSlots() {
		return nil, domain.ErrSlotOutOfRange
	}

	return entry.shelf, nil
}
