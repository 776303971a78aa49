package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

type Writer struct {
	log          *slog.Logger
	results      <-chan *domain.ImportResult
	reports      chan<- *domain.ImportResult
	fileUpdater  ImportFileUpdater
	devicesSaver DevicesSaver
	transactor   Transactor
}

func NewWriter(
	log *slog.Logger,
	results <-chan *domain.ImportResult,
	reports chan<- *domain.ImportResult,
	fileUpdater ImportFileUpdater,
	devicesSaver DevicesSaver,
	transactor Transactor,
) *Writer {
	return &Writer{
		log:          log,
		results:      results,
		reports:      reports,
		fileUpdater:  fileUpdater,
		devicesSaver: devicesSaver,
		transactor:   transactor,
	}
}

func (w *Writer) Run(ctx context.Context) error {
	defer close(w.reports)

	for {
		select {
		case result, ok := <-w.results:
			if !ok {
				return nil
			}

			log := w.log.With(
				slog.String("filename", result.Filename),
				slog.Int("devices_count", len(result.Devices)),
			)

			log.InfoContext(ctx, "received import result")

			if err := w.processResult(ctx, log, result); err != nil {
				log.ErrorContext(ctx, "failed to process import result", slog.String("err", err.Error()))
				continue
			}

			select {
			case w.reports <- result:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Writer) processResult(ctx context.Context, log *slog.Logger, result *domain.ImportResult) error {
	if result.Error != nil {
		log.DebugContext(ctx, "recording failed import")

		now := time.Now()
		err := w.fileUpdater.UpsertImportFile(ctx, &domain.ImportFile{
			Name:         filepath.Base(result.Filename),
			Status:       domain.StatusError,
			ErrorMessage: result.Error.Error(),
			ProcessedAt:  &now,
		})
		if err != nil {
			return fmt.Errorf("failed to record import error: %w", err)
		}

		return nil
	}

	log.DebugContext(ctx, "saving devices to the pool")

	if err := w.saveResult(ctx, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	log.DebugContext(ctx, "devices saved successfully")

	return nil
}

// saveResult inserts the devices and marks the file done in one transaction.
func (w *Writer) saveResult(ctx context.Context, result *domain.ImportResult) error {
	return w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if len(result.Devices) > 0 {
			if err := w.devicesSaver.SaveDevices(ctx, result.Devices...); err != nil {
				return fmt.Errorf("failed to save devices: %w", err)
			}
		}

		now := time.Now()
		err := w.fileUpdater.UpsertImportFile(ctx, &domain.ImportFile{
			Name:        filepath.Base(result.Filename),
			Status:      domain.StatusDone,
			DeviceCount: len(result.Devices),
			ProcessedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("failed to update file status: %w", err)
		}

		return nil
	})
}
