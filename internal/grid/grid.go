// Package grid turns a shelf's rows and columns into an ordered slot space and
// the section labels printed on it. Inputs are assumed to be validated shelves.
package grid

import (
	"fmt"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

// rowsPerSection is the number of grid rows grouped under one section label.
const rowsPerSection = 2

// Section is a consecutive run of slot indices, [Start, End).
type Section struct {
	Index int `json:"index"`
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Section) Size() int {
	return s.End - s.Start
}

func (s Section) Contains(slotIndex int) bool {
	return slotIndex >= s.Start && slotIndex < s.End
}

func TotalSlots(shelf domain.Shelf) int {
	return shelf.Rows * shelf.Columns
}

func sectionSize(shelf domain.Shelf) int {
	return shelf.Columns * rowsPerSection
}

// Sections partitions [0, TotalSlots) into chunks of columns*2 slots in slot order.
// The last chunk is shorter when rows is odd.
func Sections(shelf domain.Shelf) []Section {
	total, size := TotalSlots(shelf), sectionSize(shelf)
	if total <= 0 || size <= 0 {
		return nil
	}

	sections := make([]Section, 0, (total+size-1)/size)
	for start := 0; start < total; start += size {
		sections = append(sections, Section{
			Index: len(sections),
			Start: start,
			End:   min(start+size, total),
		})
	}

	return sections
}

// SectionOf returns the section index holding slotIndex.
func SectionOf(shelf domain.Shelf, slotIndex int) int {
	return slotIndex / sectionSize(shelf)
}

// SectionLabel returns the configured sub-category or "Section {n}".
func SectionLabel(shelf domain.Shelf, sectionIndex int) string {
	if label := configured(shelf.SubCategories(), sectionIndex); label != "" {
		return label
	}
	return fmt.Sprintf("Section %d", sectionIndex+1)
}

// SectionBarcode returns the configured section barcode or "ShSec{n}".
func SectionBarcode(shelf domain.Shelf, sectionIndex int) string {
	if barcode := configured(shelf.SectionBarcodes(), sectionIndex); barcode != "" {
		return barcode
	}
	return fmt.Sprintf("ShSec%d", sectionIndex+1)
}

// SlotIdentifier composes "{sectionBarcode}.{position}" with a 1-based position
// that restarts in every section. It is a display value, not a storage key.
func SlotIdentifier(shelf domain.Shelf, slotIndex int) string {
	size := sectionSize(shelf)
	section := slotIndex / size
	position := slotIndex%size + 1

	return fmt.Sprintf("%s.%d", SectionBarcode(shelf, section), position)
}

func configured(labels [domain.SectionLabelSlots]string, sectionIndex int) string {
	if sectionIndex < 0 || sectionIndex >= len(labels) {
		return ""
	}
	return labels[sectionIndex]
}
