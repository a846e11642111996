package commands

import (
	"context"
	"log/slog"
	"time"

	"tipi-reserve/internal/domain/booking"
	"tipi-reserve/internal/pkg/clock"
	"tipi-reserve/internal/pkg/errs"
	"tipi-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidPaymentStatus = errs.New("invalid payment status")

const (
	purgeBatchSize  = 400
	purgeSampleSize = 20
)

type PurgeOptions struct {
	OlderThanDays int
	Limit         int
	DryRun        bool
}

type PurgeResult struct {
	DryRun        bool
	OlderThanDays int
	Limit         int
	TotalMatched  int
	TotalDeleted  int
	SampleIDs     []string
}

type AdminCommands interface {
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status string) error
	Cancel(ctx context.Context, id uuid.UUID) error
	PurgeCancelled(ctx context.Context, opts PurgeOptions) (*PurgeResult, error)
	ResetStock(ctx context.Context, lodgingID string) error
	ResetAllStock(ctx context.Context) error
	RecountStock(ctx context.Context) (map[string]int, error)
}

type adminUseCaseImpl struct {
	uow        shared.UnitOfWork
	stockCache shared.StockCache
	clock      clock.Clock
}

func NewAdminUseCase(uow shared.UnitOfWork, stockCache shared.StockCache, clk clock.Clock) AdminCommands {
	return &adminUseCaseImpl{uow: uow, stockCache: stockCache, clock: clk}
}

// SetPaymentStatus flips the paid flag without touching the lifecycle state.
// A missing booking is a success: the caller's goal (no confirmed booking
// with the old status) already holds.
func (u *adminUseCaseImpl) SetPaymentStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed := booking.PaymentStatus(status)
	if !parsed.IsValid() {
		return errs.Mark(errs.Newf("unknown payment status %q", status), ErrInvalidPaymentStatus)
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated, err := tx.Bookings().SetPaymentStatus(ctx, id, parsed)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !updated {
			slog.Info("payment status update matched no booking", "booking_id", id)
		}
		return nil
	})
}

// Cancel is the operator-side counterpart of CancelByToken and shares its
// idempotency: repeats and unknown ids succeed without releasing stock twice.
func (u *adminUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	released := false
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		units, err := tx.Bookings().CancelConfirmed(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if units == nil {
			return nil
		}
		if err := tx.Lodgings().Release(ctx, units.LodgingID, units.Quantity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		released = true
		return nil
	})
	if err != nil {
		return err
	}

	if released {
		u.invalidateStockCache(ctx)
	}
	return nil
}

// PurgeCancelled removes cancelled records past the retention cutoff. Stock
// is never touched: cancellation already returned the units, so deletion is
// pure record hygiene.
func (u *adminUseCaseImpl) PurgeCancelled(ctx context.Context, opts PurgeOptions) (*PurgeResult, error) {
	var cutoff *time.Time
	if opts.OlderThanDays > 0 {
		t := u.clock.Now().AddDate(0, 0, -opts.OlderThanDays)
		cutoff = &t
	}

	var ids []uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Bookings().CollectCancelledIDs(ctx, cutoff, opts.Limit)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &PurgeResult{
		DryRun:        opts.DryRun,
		OlderThanDays: opts.OlderThanDays,
		Limit:         opts.Limit,
		TotalMatched:  len(ids),
		SampleIDs:     sampleIDs(ids),
	}
	if opts.DryRun {
		return result, nil
	}

	for start := 0; start < len(ids); start += purgeBatchSize {
		end := min(start+purgeBatchSize, len(ids))
		batch := ids[start:end]

		err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			deleted, err := tx.Bookings().DeleteByIDs(ctx, batch)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			result.TotalDeleted += int(deleted)
			return nil
		})
		if err != nil {
			// Partial progress is reported alongside the failure so the
			// operator can re-run for the remainder.
			return result, err
		}
	}

	slog.Info("purged cancelled bookings",
		"matched", result.TotalMatched,
		"deleted", result.TotalDeleted,
		"older_than_days", opts.OlderThanDays,
	)
	return result, nil
}

func (u *adminUseCaseImpl) ResetStock(ctx context.Context, lodgingID string) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lodgings().Reset(ctx, lodgingID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}
	u.invalidateStockCache(ctx)
	return nil
}

func (u *adminUseCaseImpl) ResetAllStock(ctx context.Context) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lodgings().ResetAll(ctx); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}
	u.invalidateStockCache(ctx)
	return nil
}

// RecountStock rebuilds every reserved count from the confirmed bookings that
// actually exist, repairing any drift introduced by manual edits.
func (u *adminUseCaseImpl) RecountStock(ctx context.Context) (map[string]int, error) {
	var totals map[string]int
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		totals, err = tx.Lodgings().Recount(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.invalidateStockCache(ctx)
	return totals, nil
}

func (u *adminUseCaseImpl) invalidateStockCache(ctx context.Context) {
	if err := u.stockCache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate stock cache", "error", err)
	}
}

func sampleIDs(ids []uuid.UUID) []string {
	n := min(len(ids), purgeSampleSize)
	sample := make([]string, 0, n)
	for _, id := range ids[:n] {
		sample = append(sample, id.String())
	}
	return sample
}
