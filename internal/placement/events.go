package placement

import "github.com/kurochkinivan/device_warehouse/internal/domain"

type EventKind string

const (
	EventDeviceUpdated EventKind = "device_updated"
	EventDeviceRemoved EventKind = "device_removed"
	EventShelfUpdated  EventKind = "shelf_updated"
	EventShelfRemoved  EventKind = "shelf_removed"
	EventReloaded      EventKind = "reloaded"
)

// Event describes one visible change of the store. Device and Shelf are copies.
type Event struct {
	Kind   EventKind      `json:"kind"`
	ID     string         `json:"id,omitempty"`
	Device *domain.Device `json:"device,omitempty"`
	Shelf  *domain.Shelf  `json:"shelf,omitempty"`
}

func deviceUpdated(d *domain.Device) Event {
	return Event{Kind: EventDeviceUpdated, ID: d.ID, Device: d.Clone()}
}

func deviceRemoved(id string) Event {
	return Event{Kind: EventDeviceRemoved, ID: id}
}

func shelfUpdated(s *domain.Shelf) Event {
	shelf := *s
	return Event{Kind: EventShelfUpdated, ID: s.ID, Shelf: &shelf}
}

func shelfRemoved(id string) Event {
	return Event{Kind: EventShelfRemoved, ID: id}
}

// Subscribe registers fn for every event in mutation order. fn runs while the
// store is locked and must not call back into the store.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.observers, id)
	}
}

func (s *Store) notify(events []Event) {
	for _, event := range events {
		for _, fn := range s.observers {
			fn(event)
		}
	}
}
