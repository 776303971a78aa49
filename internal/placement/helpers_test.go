package placement_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
	"github.com/kurochkinivan/device_warehouse/internal/placement"
	mock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func shelf(id string, rows, columns, order int) *domain.Shelf {
	return &domain.Shelf{
		ID:        id,
		Name:      "Shelf " + id,
		Rows:      rows,
		Columns:   columns,
		Barcode:   "SH-" + id,
		CreatedAt: epoch.Add(time.Duration(order) * time.Minute),
	}
}

func device(id, name string) *domain.Device {
	return &domain.Device{
		ID:           id,
		Name:         name,
		Type:         "Laptop",
		AssetNumber:  "INV-" + id,
		SerialNumber: "SN-" + id,
	}
}

func placed(d *domain.Device, shelfID string, slot int) *domain.Device {
	d.Place(domain.Slot(shelfID, slot))
	return d
}

// newStore builds a store preloaded with shelves and devices through Load.
func newStore(t *testing.T, persister placement.Persister, shelves []*domain.Shelf, devices []*domain.Device) *placement.Store {
	t.Helper()

	loader := NewMockLoader(t)
	loader.EXPECT().Snapshot(mock.Anything).Return(shelves, devices, nil)

	store := placement.New(slog.New(slog.DiscardHandler), persister)
	require.NoError(t, store.Load(t.Context(), loader))

	return store
}

func locationOf(t *testing.T, store *placement.Store, deviceID string) domain.Location {
	t.Helper()

	d, err := store.Device(deviceID)
	require.NoError(t, err)

	return d.Location()
}
