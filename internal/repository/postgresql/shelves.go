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

const TableShelves = "shelves"

var shelfColumns = []string{
	"id",
	"name",
	"grid_rows",
	"grid_columns",
	"barcode",
	"section_barcode_1",
	"section_barcode_2",
	"section_barcode_3",
	"sub_category_1",
	"sub_category_2",
	"sub_category_3",
	"created_at",
	"updated_at",
}

type ShelvesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewShelvesRepository(pool *pgxpool.Pool) *ShelvesRepository {
	return &ShelvesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ShelvesRepository) Shelves(ctx context.Context) ([]*domain.Shelf, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(shelfColumns...).
		From(TableShelves).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	shelves, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.Shelf])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return shelves, nil
}

func (r *ShelvesRepository) ShelfByID(ctx context.Context, id string) (*domain.Shelf, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(shelfColumns...).
		From(TableShelves).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	shelf, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Shelf])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("shelf %q: %w", id, domain.ErrShelfNotFound)
		}
		return nil, collectRowsError(err)
	}

	return shelf, nil
}

func (r *ShelvesRepository) CreateShelf(ctx context.Context, shelf *domain.Shelf) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableShelves).
		Columns(shelfColumns...).
		Values(
			shelf.ID,
			shelf.Name,
			shelf.Rows,
			shelf.Columns,
			shelf.Barcode,
			shelf.SectionBarcode1,
			shelf.SectionBarcode2,
			shelf.SectionBarcode3,
			shelf.SubCategory1,
			shelf.SubCategory2,
			shelf.SubCategory3,
			shelf.CreatedAt,
			shelf.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// UpdateShelf writes the shelf row and returns devices beyond the new slot count
// to the pool. Callers run it inside a transaction.
func (r *ShelvesRepository) UpdateShelf(ctx context.Context, shelf *domain.Shelf) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableShelves).
		SetMap(map[string]any{
			"name":              shelf.Name,
			"grid_rows":         shelf.Rows,
			"grid_columns":      shelf.Columns,
			"barcode":           shelf.Barcode,
			"section_barcode_1": shelf.SectionBarcode1,
			"section_barcode_2": shelf.SectionBarcode2,
			"section_barcode_3": shelf.SectionBarcode3,
			"sub_category_1":    shelf.SubCategory1,
			"sub_category_2":    shelf.SubCategory2,
			"sub_category_3":    shelf.SubCategory3,
			"updated_at":        shelf.UpdatedAt,
		}).
		Where(sq.Eq{"id": shelf.ID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shelf %q: %w", shelf.ID, domain.ErrShelfNotFound)
	}

	return r.unplace(ctx, sq.And{
		sq.Eq{"shelf_id": shelf.ID},
		sq.GtOrEq{"slot_index": shelf.TotalSlots()},
	})
}

// DeleteShelf returns the shelf's devices to the pool and removes the shelf.
// Callers run it inside a transaction.
func (r *ShelvesRepository) DeleteShelf(ctx context.Context, shelfID string) error {
	db := extractDB(ctx, r.pool)

	if err := r.unplace(ctx, sq.Eq{"shelf_id": shelfID}); err != nil {
		return err
	}

	sql, args, err := r.qb.
		Delete(TableShelves).
		Where(sq.Eq{"id": shelfID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shelf %q: %w", shelfID, domain.ErrShelfNotFound)
	}

	return nil
}

func (r *ShelvesRepository) unplace(ctx context.Context, where sq.Sqlizer) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableDevices).
		Set("shelf_id", nil).
		Set("slot_index", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(where).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}
