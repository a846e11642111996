package queries

import (
	"context"
	"time"

	"tipi-reserve/internal/infra"
	"tipi-reserve/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrQueryFailed     = errs.New("query failed")
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	LodgingID     string    `json:"lodging_id"`
	LodgingName   string    `json:"lodging_name"`
	Quantity      int       `json:"qty"`
	GuestName     string    `json:"name"`
	Email         string    `json:"email"`
	UnitPriceCHF  int       `json:"unit_price_chf"`
	TotalPriceCHF int       `json:"total_chf"`
	PaymentStatus string    `json:"payment_status"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List orders by creation time descending; cancelled bookings are only
	// included on request.
	List(ctx context.Context, includeCancelled bool) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, includeCancelled bool) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, includeCancelled bool) ([]*BookingView, error) {
	views, err := q.store.List(ctx, includeCancelled)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
