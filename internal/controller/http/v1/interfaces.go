package v1

import (
	"context"

	"github.com/kurochkinivan/device_warehouse/internal/autofill"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
	"github.com/kurochkinivan/device_warehouse/internal/placement"
)

type DeviceReader interface {
	Device(id string) (domain.Device, error)
	Devices() []domain.Device
	UnassignedDevices() []domain.Device
	Search(query string) []domain.Device
}

type ShelfReader interface {
	Shelf(id string) (domain.Shelf, error)
	Shelves() []domain.Shelf
	DevicesOnShelf(shelfID string) ([]*domain.Device, error)
}

type PlacementWriter interface {
	PlaceDevice(ctx context.Context, deviceID, shelfID string, slotIndex int) error
	UnplaceDevice(ctx context.Context, deviceID string) error
	SwapDevices(ctx context.Context, deviceIDA, deviceIDB string) error
}

type ShelfWriter interface {
	CreateShelf(ctx context.Context, name string, rows, columns int) (domain.Shelf, error)
	UpdateShelf(ctx context.Context, shelfID string, patch domain.ShelfPatch) (domain.Shelf, error)
	DeleteShelf(ctx context.Context, shelfID string) error
}

type EventSource interface {
	Subscribe(fn func(placement.Event)) (unsubscribe func())
}

// Store is everything the HTTP surface needs from the placement store.
type Store interface {
	DeviceReader
	ShelfReader
	PlacementWriter
	ShelfWriter
	EventSource

	Occupant(loc domain.Location) (string, bool)
	CheckSlot(loc domain.Location) error
}

type AutoFiller interface {
	Run(ctx context.Context) (autofill.Result, error)
}

type ShelfMapRenderer interface {
	ShelfMap(shelf domain.Shelf, slots []*domain.Device) ([]byte, error)
}
