package domain

import (
	"strings"
	"time"
)

// SectionLabelSlots is the number of configurable section labels per shelf.
const SectionLabelSlots = 3

type Shelf struct {
	ID              string    `db:"id"                json:"id"`
	Name            string    `db:"name"              json:"name"`
	Rows            int       `db:"grid_rows"         json:"rows"`
	Columns         int       `db:"grid_columns"      json:"columns"`
	Barcode         string    `db:"barcode"           json:"barcode"`
	SectionBarcode1 string    `db:"section_barcode_1" json:"section_barcode_1"`
	SectionBarcode2 string    `db:"section_barcode_2" json:"section_barcode_2"`
	SectionBarcode3 string    `db:"section_barcode_3" json:"section_barcode_3"`
	SubCategory1    string    `db:"sub_category_1"    json:"sub_category_1"`
	SubCategory2    string    `db:"sub_category_2"    json:"sub_category_2"`
	SubCategory3    string    `db:"sub_category_3"    json:"sub_category_3"`
	CreatedAt       time.Time `db:"created_at"        json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"        json:"updated_at"`
}

func (s *Shelf) TotalSlots() int {
	return s.Rows * s.Columns
}

// SectionBarcodes returns the configured section barcodes, empty strings for unset ones.
func (s *Shelf) SectionBarcodes() [SectionLabelSlots]string {
	return [SectionLabelSlots]string{s.SectionBarcode1, s.SectionBarcode2, s.SectionBarcode3}
}

func (s *Shelf) SubCategories() [SectionLabelSlots]string {
	return [SectionLabelSlots]string{s.SubCategory1, s.SubCategory2, s.SubCategory3}
}

// Before orders shelves by creation, ties broken by id.
func (s *Shelf) Before(other *Shelf) bool {
	if !s.CreatedAt.Equal(other.CreatedAt) {
		return s.CreatedAt.Before(other.CreatedAt)
	}
	return s.ID < other.ID
}

func ValidDimensions(rows, columns int) bool {
	return rows > 0 && columns > 0
}

// ShelfPatch carries the fields of an update; nil fields are left untouched.
type ShelfPatch struct {
	Name            *string `json:"name,omitempty"`
	Rows            *int    `json:"rows,omitempty"`
	Columns         *int    `json:"columns,omitempty"`
	SectionBarcode1 *string `json:"section_barcode_1,omitempty"`
	SectionBarcode2 *string `json:"section_barcode_2,omitempty"`
	SectionBarcode3 *string `json:"section_barcode_3,omitempty"`
	SubCategory1    *string `json:"sub_category_1,omitempty"`
	SubCategory2    *string `json:"sub_category_2,omitempty"`
	SubCategory3    *string `json:"sub_category_3,omitempty"`
}

// Apply returns a copy of shelf with the patch applied.
func (p ShelfPatch) Apply(shelf Shelf) Shelf {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&shelf.Name, p.Name)
	setInt(&shelf.Rows, p.Rows)
	setInt(&shelf.Columns, p.Columns)
	setString(&shelf.SectionBarcode1, p.SectionBarcode1)
	setString(&shelf.SectionBarcode2, p.SectionBarcode2)
	setString(&shelf.SectionBarcode3, p.SectionBarcode3)
	setString(&shelf.SubCategory1, p.SubCategory1)
	setString(&shelf.SubCategory2, p.SubCategory2)
	setString(&shelf.SubCategory3, p.SubCategory3)

	return shelf
}
