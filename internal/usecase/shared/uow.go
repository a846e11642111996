package shared

import (
	"context"
	"time"

	"tipi-reserve/internal/domain/booking"
	"tipi-reserve/internal/domain/lodging"

	"github.com/google/uuid"
)

// UnitOfWork covers the write side; single-statement reads go through the
// read stores bound directly to the pool.
type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Lodgings() LodgingRepository
	Bookings() BookingRepository
	Counters() CounterRepository
}

// LodgingRepository is the stock ledger. TryReserve is the only operation
// allowed to reject a caller-visible request; everything else is a
// best-effort correction.
type LodgingRepository interface {
	FindByID(ctx context.Context, id string) (*lodging.Stock, error)
	// TryReserve atomically commits qty units and returns the new reserved
	// count. Fails with lodging.ErrNotFound or *lodging.InsufficientStockError
	// without changing anything.
	TryReserve(ctx context.Context, id string, qty int) (int, error)
	// Release never fails on a missing lodging and never drives the counter
	// below zero.
	Release(ctx context.Context, id string, qty int) error
	Reset(ctx context.Context, id string) error
	ResetAll(ctx context.Context) error
	// Recount overwrites every lodging's reserved count with the sum of its
	// confirmed booking quantities and returns the computed totals.
	Recount(ctx context.Context) (map[string]int, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// SetPaymentStatus reports whether a row was updated; a missing booking
	// is not an error.
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status booking.PaymentStatus) (bool, error)
	// CancelConfirmed flips a confirmed booking to cancelled and returns the
	// units to release. Returns nil when the booking is absent or already
	// cancelled, so callers can treat repeats as no-ops.
	CancelConfirmed(ctx context.Context, id uuid.UUID) (*CancelledUnits, error)
	// FindByCancelToken locks the matching row for the duration of the
	// enclosing transaction.
	FindByCancelToken(ctx context.Context, token string) (*BookingSnapshot, error)
	CollectCancelledIDs(ctx context.Context, cutoff *time.Time, limit int) ([]uuid.UUID, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// CounterRepository backs the day-scoped reference sequence.
type CounterRepository interface {
	// NextSequence atomically increments and returns the counter for the
	// given day key, starting at 1.
	NextSequence(ctx context.Context, day string) (int64, error)
}

// NotificationSender delivers templated messages. Failures are logged by the
// caller and never roll back the surrounding operation.
type NotificationSender interface {
	Send(ctx context.Context, template, to string, params map[string]string) error
}

// StockCache invalidates derived remaining-stock data after mutations. The
// cache is never authoritative; invalidation failures are best-effort.
type StockCache interface {
	Invalidate(ctx context.Context) error
}
