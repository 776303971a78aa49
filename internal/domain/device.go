package domain

import (
	"errors"
	"fmt"
	"time"
)

type Device struct {
	ID           string    `csv:"id,omitempty"  db:"id"            json:"id"`
	Name         string    `csv:"name"          db:"name"          json:"name"`
	Type         string    `csv:"type"          db:"type"          json:"type"`
	AssetNumber  string    `csv:"asset_number"  db:"asset_number"  json:"asset_number"`
	SerialNumber string    `csv:"serial_number" db:"serial_number" json:"serial_number"`
	ShelfID      *string   `csv:"-"             db:"shelf_id"      json:"shelf_id"`
	SlotIndex    *int      `csv:"-"             db:"slot_index"    json:"slot_index"`
	UpdatedAt    time.Time `csv:"-"             db:"updated_at"    json:"updated_at"`
}

// Placed reports whether the device occupies a shelf slot.
func (d *Device) Placed() bool {
	return d.ShelfID != nil && d.SlotIndex != nil
}

func (d *Device) Location() Location {
	if !d.Placed() {
		return Pool()
	}
	return Slot(*d.ShelfID, *d.SlotIndex)
}

// Place sets both halves of the placement, or clears both for the pool.
func (d *Device) Place(loc Location) {
	if loc.IsPool() {
		d.ShelfID, d.SlotIndex = nil, nil
		return
	}

	shelfID, slot := loc.ShelfID, loc.SlotIndex
	d.ShelfID, d.SlotIndex = &shelfID, &slot
}

func (d *Device) Placement() Placement {
	return Placement{DeviceID: d.ID, Location: d.Location()}
}

// Clone returns a copy that shares no pointers with d.
func (d *Device) Clone() *Device {
	c := *d
	c.Place(d.Location())
	return &c
}

func (d *Device) Validate() error {
	if d.Name == "" {
		return errors.New("name is required")
	}

	if (d.ShelfID == nil) != (d.SlotIndex == nil) {
		return errors.New("shelf_id and slot_index must be set together")
	}

	if d.SlotIndex != nil && *d.SlotIndex < 0 {
		return fmt.Errorf("slot_index must be non-negative, got %d", *d.SlotIndex)
	}

	return nil
}
