package pipeline

import (
	"context"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

type ImportFilesProvider interface {
	ImportFiles(ctx context.Context) ([]*domain.ImportFile, error)
}

type ImportFileUpdater interface {
	UpsertImportFile(ctx context.Context, file *domain.ImportFile) error
}

type DevicesSaver interface {
	SaveDevices(ctx context.Context, devices ...*domain.Device) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportGenerator interface {
	GenerateReport(outputPath, sourceFile string, devices []*domain.Device) error
}
