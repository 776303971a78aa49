package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

type Reporter struct {
	log             *slog.Logger
	outputDir       string
	reports         <-chan *domain.ImportResult
	reportGenerator ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reports <-chan *domain.ImportResult,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		reports:         reports,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.reports:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("filename", result.Filename),
				slog.Int("devices_count", len(result.Devices)),
			)

			if result.Error != nil || len(result.Devices) == 0 {
				log.DebugContext(ctx, "nothing imported, skipping receipt")
				continue
			}

			path := r.receiptPath(result.Filename)

			if err := r.reportGenerator.GenerateReport(path, result.Filename, result.Devices); err != nil {
				log.ErrorContext(ctx, "failed to generate intake receipt", slog.String("err", err.Error()))
				continue
			}

			log.InfoContext(ctx, "intake receipt written", slog.String("path", path))

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// receiptPath names the receipt after the intake file: batch.tsv -> batch.pdf.
func (r *Reporter) receiptPath(filename string) string {
	base := filepath.Base(filename)
	return filepath.Join(r.outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".pdf")
}
