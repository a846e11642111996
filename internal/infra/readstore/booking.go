package readstore

import (
	"context"
	"errors"

	"tipi-reserve/internal/infra"
	"tipi-reserve/internal/infra/db"
	"tipi-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingColumns = `
	id, code, lodging_id, lodging_name, quantity, guest_name, email,
	unit_price_chf, total_price_chf, payment_status, status, created_at, updated_at`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `SELECT` + bookingColumns + `
FROM bookings
WHERE id = $1`

	view, err := scanBookingView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) List(ctx context.Context, includeCancelled bool) ([]*queries.BookingView, error) {
	query := `SELECT` + bookingColumns + `
FROM bookings`
	if !includeCancelled {
		query += `
WHERE status <> 'cancelled'`
	}
	query += `
ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID,
		&v.Code,
		&v.LodgingID,
		&v.LodgingName,
		&v.Quantity,
		&v.GuestName,
		&v.Email,
		&v.UnitPriceCHF,
		&v.TotalPriceCHF,
		&v.PaymentStatus,
		&v.Status,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
