package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	return fmt.Errorf("failed to execute query: %w", mapPgError(err))
}

func scanRowError(err error) error {
	return fmt.Errorf("failed to scan row: %w", err)
}

func collectRowsError(err error) error {
	return fmt.Errorf("failed to collect rows: %w", err)
}

// mapPgError attaches the matching domain sentinel to constraint violations.
// The original error stays in the chain.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %w", domain.ErrSlotOccupied, err)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: %w", domain.ErrShelfNotFound, err)
	case codeCheckViolation:
		return fmt.Errorf("%w: %w", domain.ErrSlotOutOfRange, err)
	default:
		return err
	}
}
