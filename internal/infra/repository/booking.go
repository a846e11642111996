package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tipi-reserve/internal/domain/booking"
	"tipi-reserve/internal/infra"
	"tipi-reserve/internal/infra/db"
	"tipi-reserve/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const stmt = `
INSERT INTO bookings (
	id, code, cancel_token, lodging_id, lodging_name, quantity,
	guest_name, email, unit_price_chf, total_price_chf,
	payment_status, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, stmt,
		b.ID(),
		b.Code(),
		b.CancelToken(),
		b.LodgingID(),
		b.LodgingName(),
		b.Quantity().Value(),
		b.GuestName().String(),
		b.Email().String(),
		b.UnitPriceCHF(),
		b.TotalPriceCHF(),
		b.PaymentStatus().String(),
		b.Status().String(),
		b.CreatedAt(),
		b.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("duplicate booking", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) SetPaymentStatus(ctx context.Context, id uuid.UUID, status booking.PaymentStatus) (bool, error) {
	const stmt = `
UPDATE bookings
SET payment_status = $2, updated_at = now()
WHERE id = $1`

	tag, err := r.db.Exec(ctx, stmt, id, status.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update payment status", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CancelConfirmed flips status in the same statement that reads the units to
// release, so two concurrent cancellations cannot both observe confirmed.
func (r *BookingRepository) CancelConfirmed(ctx context.Context, id uuid.UUID) (*shared.CancelledUnits, error) {
	const stmt = `
UPDATE bookings
SET status = 'cancelled', updated_at = now()
WHERE id = $1 AND status = 'confirmed'
RETURNING lodging_id, quantity`

	var units shared.CancelledUnits
	err := r.db.QueryRow(ctx, stmt, id).Scan(&units.LodgingID, &units.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Absent or already cancelled: the caller treats both as a no-op.
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return &units, nil
}

func (r *BookingRepository) FindByCancelToken(ctx context.Context, tok string) (*shared.BookingSnapshot, error) {
	const query = `
SELECT id, code, lodging_id, quantity, guest_name, email, status, created_at
FROM bookings
WHERE cancel_token = $1
FOR UPDATE`

	var snap shared.BookingSnapshot
	err := r.db.QueryRow(ctx, query, tok).
		Scan(&snap.ID, &snap.Code, &snap.LodgingID, &snap.Quantity, &snap.GuestName, &snap.Email, &snap.Status, &snap.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found by token", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by token", err)
	}
	return &snap, nil
}

// CollectCancelledIDs pages through cancelled bookings older than the cutoff
// (nil = no age filter). Age is judged on the last update, falling back to
// creation time for rows written before updated_at existed.
func (r *BookingRepository) CollectCancelledIDs(ctx context.Context, cutoff *time.Time, limit int) ([]uuid.UUID, error) {
	query := `
SELECT id
FROM bookings
WHERE status = 'cancelled'
  AND ($1::timestamptz IS NULL OR COALESCE(updated_at, created_at) < $1)
ORDER BY created_at ASC`
	args := []any{cutoff}
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect cancelled bookings", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cancelled booking id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cancelled bookings", err)
	}
	return ids, nil
}

func (r *BookingRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete bookings", err)
	}
	return tag.RowsAffected(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
