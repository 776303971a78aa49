package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

type Parser struct {
	log     *slog.Logger
	files   <-chan string
	results chan<- *domain.ImportResult
	newID   func() (uuid.UUID, error)
}

func NewParser(log *slog.Logger, files <-chan string, results chan<- *domain.ImportResult) *Parser {
	return &Parser{
		log:     log,
		files:   files,
		results: results,
		newID:   uuid.NewV7,
	}
}

func (p *Parser) Run(ctx context.Context) error {
	defer close(p.results)

	for {
		select {
		case filename, ok := <-p.files:
			if !ok {
				return nil
			}

			p.log.DebugContext(ctx, "received file to parse", slog.String("filename", filename))

			devices, err := p.parseRecordsFromFile(filename)
			if err != nil {
				p.log.ErrorContext(ctx, "failed to parse records",
					slog.String("filename", filename),
					slog.String("err", err.Error()),
				)
			}

			select {
			case p.results <- &domain.ImportResult{Filename: filename, Devices: devices, Error: err}:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Parser) parseRecordsFromFile(filename string) (_ []*domain.Device, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return p.parseRecords(f)
}

// parseRecords decodes a tab-separated file with a header row naming at least
// the name column. Rows without an id get a fresh one. Parsed devices always
// land in the pool: placement columns are not read.
func (p *Parser) parseRecords(r io.Reader) ([]*domain.Device, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("file has no header")
		}
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if !slices.Contains(dec.Header(), "name") {
		return nil, errors.New(`header has no "name" column`)
	}

	var devices []*domain.Device
	for {
		var device domain.Device

		err := dec.Decode(&device)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode device record #%d: %w", len(devices)+1, err)
		}

		normalize(&device)

		if device.ID == "" {
			id, err := p.newID()
			if err != nil {
				return nil, fmt.Errorf("failed to generate device id: %w", err)
			}
			device.ID = id.String()
		}

		if err := device.Validate(); err != nil {
			return nil, fmt.Errorf("invalid device record #%d: %w", len(devices)+1, err)
		}

		devices = append(devices, &device)
	}

	p.log.Debug("successfully parsed records", slog.Int("device_count", len(devices)))

	return devices, nil
}

func normalize(d *domain.Device) {
	d.ID = strings.TrimSpace(d.ID)
	d.Name = strings.TrimSpace(d.Name)
	d.Type = strings.TrimSpace(d.Type)
	d.AssetNumber = strings.TrimSpace(d.AssetNumber)
	d.SerialNumber = strings.TrimSpace(d.SerialNumber)
}
