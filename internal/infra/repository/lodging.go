package repository

import (
	"context"
	"errors"

	"tipi-reserve/internal/domain/lodging"
	"tipi-reserve/internal/infra"
	"tipi-reserve/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type LodgingRepository struct {
	db db.DBTX
}

func NewLodgingRepository(dbtx db.DBTX) *LodgingRepository {
	return &LodgingRepository{db: dbtx}
}

func (r *LodgingRepository) FindByID(ctx context.Context, id string) (*lodging.Stock, error) {
	const query = `
SELECT id, title, total_units, reserved_units, unit_capacity
FROM lodgings
WHERE id = $1`

	var (
		lodgingID, title                        string
		totalUnits, reservedUnits, unitCapacity int
	)
	err := r.db.QueryRow(ctx, query, id).
		Scan(&lodgingID, &title, &totalUnits, &reservedUnits, &unitCapacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("lodging not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lodging", err)
	}
	return lodging.ReconstructStock(lodgingID, title, totalUnits, reservedUnits, unitCapacity), nil
}

// TryReserve commits qty units in a single guarded UPDATE. The row-level
// guard makes concurrent callers linearizable: two reservations can never
// both succeed past the remaining stock.
func (r *LodgingRepository) TryReserve(ctx context.Context, id string, qty int) (int, error) {
	if qty <= 0 {
		return 0, lodging.ErrInvalidQuantity
	}

	const update = `
UPDATE lodgings
SET reserved_units = reserved_units + $2
WHERE id = $1 AND reserved_units + $2 <= total_units
RETURNING reserved_units`

	var newReserved int
	err := r.db.QueryRow(ctx, update, id, qty).Scan(&newReserved)
	if err == nil {
		return newReserved, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, infra.WrapRepoErr("failed to reserve stock", err)
	}

	// Guard rejected: distinguish a missing lodging from exhausted stock.
	const remainingQuery = `
SELECT GREATEST(0, total_units - reserved_units)
FROM lodgings
WHERE id = $1`

	var remaining int
	if err := r.db.QueryRow(ctx, remainingQuery, id).Scan(&remaining); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, lodging.ErrNotFound
		}
		return 0, infra.WrapRepoErr("failed to read remaining stock", err)
	}
	return 0, &lodging.InsufficientStockError{Remaining: remaining}
}

// Release is best-effort compensation: a missing lodging is a no-op and the
// counter never goes below zero, so a cancellation can always complete.
func (r *LodgingRepository) Release(ctx context.Context, id string, qty int) error {
	if qty <= 0 {
		return nil
	}

	const update = `
UPDATE lodgings
SET reserved_units = GREATEST(0, reserved_units - $2)
WHERE id = $1`

	if _, err := r.db.Exec(ctx, update, id, qty); err != nil {
		return infra.WrapRepoErr("failed to release stock", err)
	}
	return nil
}

func (r *LodgingRepository) Reset(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `UPDATE lodgings SET reserved_units = 0 WHERE id = $1`, id); err != nil {
		return infra.WrapRepoErr("failed to reset lodging stock", err)
	}
	return nil
}

func (r *LodgingRepository) ResetAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `UPDATE lodgings SET reserved_units = 0`); err != nil {
		return infra.WrapRepoErr("failed to reset all stock", err)
	}
	return nil
}

// Recount is the administrative repair operation: it overwrites every
// lodging's reserved count with the sum of confirmed booking quantities,
// resetting lodgings without confirmed bookings to zero.
func (r *LodgingRepository) Recount(ctx context.Context) (map[string]int, error) {
	const apply = `
UPDATE lodgings l
SET reserved_units = COALESCE(s.total, 0)
FROM (
	SELECT lodging_id, SUM(quantity)::int AS total
	FROM bookings
	WHERE status <> 'cancelled'
	GROUP BY lodging_id
) s
WHERE l.id = s.lodging_id`

	const zeroOrphans = `
UPDATE lodgings
SET reserved_units = 0
WHERE id NOT IN (
	SELECT DISTINCT lodging_id
	FROM bookings
	WHERE status <> 'cancelled'
)`

	if _, err := r.db.Exec(ctx, apply); err != nil {
		return nil, infra.WrapRepoErr("failed to apply recomputed stock", err)
	}
	if _, err := r.db.Exec(ctx, zeroOrphans); err != nil {
		return nil, infra.WrapRepoErr("failed to zero unreferenced lodgings", err)
	}

	rows, err := r.db.Query(ctx, `SELECT id, reserved_units FROM lodgings ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read recomputed stock", err)
	}
	defer rows.Close()

	computed := make(map[string]int)
	for rows.Next() {
		var id string
		var reserved int
		if err := rows.Scan(&id, &reserved); err != nil {
			return nil, infra.WrapRepoErr("failed to scan recomputed stock", err)
		}
		computed[id] = reserved
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate recomputed stock", err)
	}
	return computed, nil
}
