package domain

import "fmt"

// Location is either the pool (empty ShelfID) or a slot on a shelf.
type Location struct {
	ShelfID   string `json:"shelf_id,omitempty"`
	SlotIndex int    `json:"slot_index"`
}

func Pool() Location {
	return Location{}
}

func Slot(shelfID string, slotIndex int) Location {
	return Location{ShelfID: shelfID, SlotIndex: slotIndex}
}

func (l Location) IsPool() bool {
	return l.ShelfID == ""
}

func (l Location) String() string {
	if l.IsPool() {
		return "pool"
	}
	return fmt.Sprintf("%s#%d", l.ShelfID, l.SlotIndex)
}

// Placement is the persisted (shelfId, slotIndex) assignment of a single device.
type Placement struct {
	DeviceID string
	Location Location
}
