package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

const TableImportFiles = "import_files"

type ImportFilesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewImportFilesRepository(pool *pgxpool.Pool) *ImportFilesRepository {
	return &ImportFilesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ImportFilesRepository) ImportFiles(ctx context.Context) ([]*domain.ImportFile, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"name",
			"status",
			"device_count",
			"error_message",
			"processed_at",
		).
		From(TableImportFiles).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.ImportFile])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return files, nil
}

func (r *ImportFilesRepository) UpsertImportFile(ctx context.Context, file *domain.ImportFile) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableImportFiles).
		Columns(
			"name",
			"status",
			"device_count",
			"error_message",
			"processed_at",
		).
		Values(
			file.Name,
			file.Status,
			file.DeviceCount,
			file.ErrorMessage,
			file.ProcessedAt,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			status = EXCLUDED.status,
			device_count = EXCLUDED.device_count,
			error_message = EXCLUDED.error_message,
			processed_at = EXCLUDED.processed_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// ResetProcessingFiles puts files interrupted by a shutdown back in the queue.
func (r *ImportFilesRepository) ResetProcessingFiles(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableImportFiles).
		Set("status", domain.StatusPending).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}
