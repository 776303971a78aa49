package postgresql

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

const TableDevices = "devices"

var deviceColumns = []string{
	"id",
	"name",
	"type",
	"asset_number",
	"serial_number",
	"shelf_id",
	"slot_index",
	"updated_at",
}

type DevicesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewDevicesRepository(pool *pgxpool.Pool) *DevicesRepository {
	return &DevicesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *DevicesRepository) Devices(ctx context.Context) ([]*domain.Device, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(deviceColumns...).
		From(TableDevices).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	devices, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.Device])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return devices, nil
}

func (r *DevicesRepository) DeviceByID(ctx context.Context, id string) (*domain.Device, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(deviceColumns...).
		From(TableDevices).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	device, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Device])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("device %q: %w", id, domain.ErrDeviceNotFound)
		}
		return nil, collectRowsError(err)
	}

	return device, nil
}

// PersistPlacements writes every placement with one UPDATE each. Callers run it
// inside a transaction so that a swap is checked against the slot constraint
// only at commit. Target shelves are share-locked and their grid checked first,
// so a concurrent resize cannot leave a device past the end of the grid.
func (r *DevicesRepository) PersistPlacements(ctx context.Context, placements []domain.Placement) error {
	db := extractDB(ctx, r.pool)

	checked := make(map[string]grid, len(placements))

	for _, p := range placements {
		var shelfID *string
		var slotIndex *int

		if !p.Location.IsPool() {
			g, ok := checked[p.Location.ShelfID]
			if !ok {
				var err error
				if g, err = r.lockShelfGrid(ctx, db, p.Location.ShelfID); err != nil {
					return err
				}
				checked[p.Location.ShelfID] = g
			}

			if err := g.check(p.Location.SlotIndex); err != nil {
				return fmt.Errorf("device %q at %s: %w", p.DeviceID, p.Location, err)
			}

			shelfID, slotIndex = &p.Location.ShelfID, &p.Location.SlotIndex
		}

		sql, args, err := r.qb.
			Update(TableDevices).
			Set("shelf_id", shelfID).
			Set("slot_index", slotIndex).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": p.DeviceID}).
			ToSql()
		if err != nil {
			return createQueryError(err)
		}

		tag, err := db.Exec(ctx, sql, args...)
		if err != nil {
			return executeQueryError(err)
		}

		if tag.RowsAffected() == 0 {
			return fmt.Errorf("device %q: %w", p.DeviceID, domain.ErrDeviceNotFound)
		}
	}

	return nil
}

type grid struct {
	rows    int
	columns int
}

func (g grid) check(slotIndex int) error {
	if slotIndex < 0 || slotIndex >= g.rows*g.columns {
		return domain.ErrSlotOutOfRange
	}
	return nil
}

// lockShelfGrid reads the shelf dimensions under FOR SHARE, which blocks a
// concurrent UPDATE of the shelf until the placement commits.
func (r *DevicesRepository) lockShelfGrid(ctx context.Context, db DBTX, shelfID string) (grid, error) {
	sql, args, err := r.qb.
		Select("grid_rows", "grid_columns").
		From(TableShelves).
		Where(sq.Eq{"id": shelfID}).
		Suffix("FOR SHARE").
		ToSql()
	if err != nil {
		return grid{}, createQueryError(err)
	}

	var g grid
	if err := db.QueryRow(ctx, sql, args...).Scan(&g.rows, &g.columns); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return grid{}, fmt.Errorf("shelf %q: %w", shelfID, domain.ErrShelfNotFound)
		}
		return grid{}, scanRowError(mapPgError(err))
	}

	return g, nil
}

// SaveDevices bulk-inserts pooled devices from an intake file.
func (r *DevicesRepository) SaveDevices(ctx context.Context, devices ...*domain.Device) error {
	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableDevices}, []string{
		"id",
		"name",
		"type",
		"asset_number",
		"serial_number",
	}, pgx.CopyFromSlice(len(devices), func(i int) ([]any, error) {
		return []any{
			devices[i].ID,
			devices[i].Name,
			devices[i].Type,
			devices[i].AssetNumber,
			devices[i].SerialNumber,
		}, nil
	}))
	if err != nil {
		return fmt.Errorf("failed to save devices: %w", mapPgError(err))
	}

	if copied != int64(len(devices)) {
		return fmt.Errorf("failed to save devices: copied %d rows, expected %d", copied, len(devices))
	}

	return nil
}
