package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tipi-reserve/internal/domain/booking"
	"tipi-reserve/internal/domain/lodging"
	"tipi-reserve/internal/infra"
	"tipi-reserve/internal/pkg/clock"
	"tipi-reserve/internal/pkg/config"
	"tipi-reserve/internal/pkg/errs"
	"tipi-reserve/internal/pkg/refcode"
	"tipi-reserve/internal/pkg/token"
	"tipi-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLodgingNotFound         = errs.New("lodging not found")
	ErrInsufficientStock       = errs.New("insufficient stock")
	ErrValidation              = errs.New("validation error")
	ErrTokenInvalid            = errs.New("cancel token invalid or expired")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const (
	TemplateBookingConfirmed = "booking_confirmed"
	TemplateBookingCancelled = "booking_cancelled"
)

type CreateBookingInput struct {
	LodgingID string
	Quantity  int
	Name      string
	Email     string
}

type CreateBookingResult struct {
	ID            uuid.UUID
	Code          string
	TotalPriceCHF int
	ReservedUnits int
}

type CancelOutcome int

const (
	CancelOutcomeCancelled CancelOutcome = iota
	CancelOutcomeAlreadyCancelled
)

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	CancelByToken(ctx context.Context, cancelToken string) (CancelOutcome, error)
}

type bookingUseCaseImpl struct {
	uow        shared.UnitOfWork
	notifier   shared.NotificationSender
	stockCache shared.StockCache
	clock      clock.Clock
	event      config.EventConfig
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	notifier shared.NotificationSender,
	stockCache shared.StockCache,
	clk clock.Clock,
	event config.EventConfig,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:        uow,
		notifier:   notifier,
		stockCache: stockCache,
		clock:      clk,
		event:      event,
	}
}

// Create runs the stock commit, the daily reference increment and the booking
// insert in one transaction: either all three are durable or none is, so a
// failed booking write can never strand committed stock.
func (u *bookingUseCaseImpl) Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	guestName, err := booking.NewGuestName(in.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	email, err := booking.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	qty, err := booking.NewQuantity(in.Quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if in.LodgingID == "" {
		return nil, errs.Mark(booking.ErrEmptyLodging, ErrValidation)
	}

	cancelToken, err := token.NewCancelToken()
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := u.clock.Now()
	var (
		result CreateBookingResult
		entity *booking.Booking
	)

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lod, err := tx.Lodgings().FindByID(ctx, in.LodgingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrLodgingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Rejects on the loaded counters; the guarded UPDATE in TryReserve
		// remains the authority under concurrent commits.
		if !lod.CanReserve(qty.Value()) {
			return errs.Mark(&lodging.InsufficientStockError{Remaining: lod.Remaining()}, ErrInsufficientStock)
		}

		newReserved, err := tx.Lodgings().TryReserve(ctx, lod.ID(), qty.Value())
		if err != nil {
			var insufficient *lodging.InsufficientStockError
			if errors.As(err, &insufficient) {
				return errs.Mark(err, ErrInsufficientStock)
			}
			if errors.Is(err, lodging.ErrNotFound) {
				return ErrLodgingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		seq, err := tx.Counters().NextSequence(ctx, refcode.DayKey(now))
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		code := refcode.Format(now, seq)

		entity, err = booking.New(
			lod.ID(), lod.Title(),
			qty, guestName, email,
			u.event.UnitPriceCHF,
			code, cancelToken,
			now,
		)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}

		if err := tx.Bookings().Create(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = CreateBookingResult{
			ID:            entity.ID(),
			Code:          entity.Code(),
			TotalPriceCHF: entity.TotalPriceCHF(),
			ReservedUnits: newReserved,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatchConfirmation(ctx, entity)
	u.invalidateStockCache(ctx)

	return &result, nil
}

// CancelByToken consumes the single-use capability. An unknown token is a
// distinct caller-visible outcome; a token pointing at an already-cancelled
// booking is a benign repeat.
func (u *bookingUseCaseImpl) CancelByToken(ctx context.Context, cancelToken string) (CancelOutcome, error) {
	if cancelToken == "" {
		return 0, ErrTokenInvalid
	}

	outcome := CancelOutcomeAlreadyCancelled
	var cancelled *shared.BookingSnapshot
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Bookings().FindByCancelToken(ctx, cancelToken)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTokenInvalid
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if snap.Status == booking.StatusCancelled.String() {
			outcome = CancelOutcomeAlreadyCancelled
			return nil
		}

		// Status flip and stock release are one atomic unit: a concurrent
		// cancellation of the same booking sees the flip and releases nothing.
		units, err := tx.Bookings().CancelConfirmed(ctx, snap.ID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if units == nil {
			outcome = CancelOutcomeAlreadyCancelled
			return nil
		}

		if err := tx.Lodgings().Release(ctx, units.LodgingID, units.Quantity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		outcome = CancelOutcomeCancelled
		cancelled = snap
		return nil
	})
	if err != nil {
		return 0, err
	}

	if outcome == CancelOutcomeCancelled {
		u.dispatchCancellation(ctx, cancelled)
		u.invalidateStockCache(ctx)
	}
	return outcome, nil
}

// Notifications are fire-and-forget: a send failure is logged and never rolls
// back the committed reservation.
func (u *bookingUseCaseImpl) dispatchConfirmation(ctx context.Context, b *booking.Booking) {
	params := map[string]string{
		"name":       b.GuestName().String(),
		"code":       b.Code(),
		"lodging":    b.LodgingName(),
		"qty":        fmt.Sprintf("%d", b.Quantity().Value()),
		"total_chf":  fmt.Sprintf("%d", b.TotalPriceCHF()),
		"stay_label": u.event.StayLabel,
		"cancel_url": fmt.Sprintf("%s/api/reservations/cancel?token=%s", u.event.PublicBaseURL, b.CancelToken()),
	}

	if err := u.notifier.Send(ctx, TemplateBookingConfirmed, b.Email().String(), params); err != nil {
		slog.Warn("failed to send guest confirmation", "booking_id", b.ID(), "error", err)
	}
	if err := u.notifier.Send(ctx, TemplateBookingConfirmed, u.event.OperatorEmail, params); err != nil {
		slog.Warn("failed to send operator confirmation", "booking_id", b.ID(), "error", err)
	}
}

func (u *bookingUseCaseImpl) dispatchCancellation(ctx context.Context, snap *shared.BookingSnapshot) {
	params := map[string]string{
		"code":       snap.Code,
		"name":       snap.GuestName,
		"lodging_id": snap.LodgingID,
		"qty":        fmt.Sprintf("%d", snap.Quantity),
	}
	if err := u.notifier.Send(ctx, TemplateBookingCancelled, u.event.OperatorEmail, params); err != nil {
		slog.Warn("failed to send cancellation notice", "booking_id", snap.ID, "error", err)
	}
}

func (u *bookingUseCaseImpl) invalidateStockCache(ctx context.Context) {
	if err := u.stockCache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate stock cache", "error", err)
	}
}
