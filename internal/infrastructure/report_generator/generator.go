// Package report_generator renders the printable PDFs: shelf maps for labelling
// and receipts for bulk device intake.
package report_generator

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
	"github.com/kurochkinivan/device_warehouse/internal/grid"
)

const (
	gridColumns = 12

	titleHeight   = 12
	headerHeight  = 8
	lineHeight    = 7
	barcodeHeight = 14
)

var (
	titleProps  = props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	headerProps = props.Text{Size: 10, Style: fontstyle.Bold}
	cellProps   = props.Text{Size: 8}
	mutedProps  = props.Text{Size: 8, Style: fontstyle.Italic}
)

type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithRightMargin(10).
		WithTopMargin(10).
		Build()

	return maroto.New(cfg)
}

// ShelfMap renders a shelf with its section barcodes and the device in every
// slot. slots is the sparse slot array of the shelf, nil for empty slots.
func (g *Generator) ShelfMap(shelf domain.Shelf, slots []*domain.Device) ([]byte, error) {
	m := newDocument()

	m.AddRows(text.NewRow(titleHeight, shelfTitle(shelf), titleProps))
	if shelf.Barcode != "" {
		m.AddRows(code.NewBarRow(barcodeHeight, shelf.Barcode, props.Barcode{Percent: 60, Center: true}))
	}
	m.AddRow(lineHeight,
		text.NewCol(6, fmt.Sprintf("%d rows x %d columns", shelf.Rows, shelf.Columns), mutedProps),
		text.NewCol(6, "Printed "+g.now().Format(time.DateTime), props.Text{Size: 8, Style: fontstyle.Italic, Align: align.Right}),
	)

	for _, section := range grid.Sections(shelf) {
		barcode := grid.SectionBarcode(shelf, section.Index)

		m.AddRow(headerHeight,
			text.NewCol(8, grid.SectionLabel(shelf, section.Index), headerProps),
			code.NewBarCol(4, barcode, props.Barcode{Percent: 80}),
		)

		for rowStart := section.Start; rowStart < section.End; rowStart += shelf.Columns {
			m.AddRow(lineHeight, slotCols(shelf, slots, rowStart, min(rowStart+shelf.Columns, section.End))...)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate shelf map: %w", err)
	}

	return doc.GetBytes(), nil
}

func shelfTitle(shelf domain.Shelf) string {
	if shelf.Name == "" {
		return "Shelf " + shelf.ID
	}
	return shelf.Name
}

// slotCols lays one grid row out over the 12-column page grid. Rows wider than
// 12 slots are squeezed into one column each with the identifier only.
func slotCols(shelf domain.Shelf, slots []*domain.Device, start, end int) []core.Col {
	width := max(gridColumns/shelf.Columns, 1)

	cols := make([]core.Col, 0, end-start)
	for i := start; i < end; i++ {
		label := grid.SlotIdentifier(shelf, i)
		if i < len(slots) && slots[i] != nil && width > 1 {
			label += " " + slots[i].Name
		}
		cols = append(cols, text.NewCol(width, label, cellProps))
	}

	return cols
}

// GenerateReport writes the intake receipt for devices imported from sourceFile.
func (g *Generator) GenerateReport(outputPath, sourceFile string, devices []*domain.Device) error {
	m := newDocument()

	m.AddRows(text.NewRow(titleHeight, "Device intake receipt", titleProps))
	m.AddRow(lineHeight,
		text.NewCol(8, "Source: "+filepath.Base(sourceFile), cellProps),
		text.NewCol(4, g.now().Format(time.DateTime), props.Text{Size: 8, Align: align.Right}),
	)
	m.AddRows(text.NewRow(lineHeight, fmt.Sprintf("%d devices added to the unassigned pool", len(devices)), mutedProps))

	m.AddRow(headerHeight,
		text.NewCol(1, "#", headerProps),
		text.NewCol(4, "Name", headerProps),
		text.NewCol(3, "Type", headerProps),
		text.NewCol(2, "Asset", headerProps),
		text.NewCol(2, "Serial", headerProps),
	)

	for i, d := range devices {
		m.AddRow(lineHeight,
			text.NewCol(1, fmt.Sprint(i+1), cellProps),
			text.NewCol(4, d.Name, cellProps),
			text.NewCol(3, d.Type, cellProps),
			text.NewCol(2, d.AssetNumber, cellProps),
			text.NewCol(2, d.SerialNumber, cellProps),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save report %q: %w", outputPath, err)
	}

	return nil
}
