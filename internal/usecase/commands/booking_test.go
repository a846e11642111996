//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"tipi-reserve/internal/domain/booking"
	"tipi-reserve/internal/domain/lodging"
	"tipi-reserve/internal/pkg/clock"
	"tipi-reserve/internal/pkg/config"
	"tipi-reserve/internal/usecase/commands"
	"tipi-reserve/tests/common/builder"
	"tipi-reserve/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sendCall struct {
	Template string
	To       string
	Params   map[string]string
}

type senderSpy struct {
	mu    sync.Mutex
	calls []sendCall
	fail  error
}

func (s *senderSpy) Send(_ context.Context, template, to string, params map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.calls = append(s.calls, sendCall{Template: template, To: to, Params: params})
	return nil
}

func (s *senderSpy) Calls() []sendCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sendCall(nil), s.calls...)
}

type cacheSpy struct {
	mu            sync.Mutex
	invalidations int
}

func (c *cacheSpy) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidations++
	return nil
}

func (c *cacheSpy) Invalidations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidations
}

func testEventConfig() config.EventConfig {
	return config.EventConfig{
		UnitPriceCHF:  200,
		StayLabel:     "Nuit du samedi au dimanche",
		OperatorEmail: "operator@example.com",
		PublicBaseURL: "http://localhost:8080",
	}
}

type bookingFixture struct {
	uow    *fake.UnitOfWork
	sender *senderSpy
	cache  *cacheSpy
	clock  *clock.MockClock
	uc     commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	uow := fake.NewUnitOfWork()
	uow.AddLodging("tipis-lit140", fake.LodgingState{
		Title:        "Tipi avec lit double 140",
		TotalUnits:   20,
		UnitCapacity: 2,
	})

	sender := &senderSpy{}
	cache := &cacheSpy{}
	clk := clock.NewMockClock(time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC))
	uow.Now = clk.Now

	return &bookingFixture{
		uow:    uow,
		sender: sender,
		cache:  cache,
		clock:  clk,
		uc:     commands.NewBookingUseCase(uow, sender, cache, clk, testEventConfig()),
	}
}

func TestBookingCommands_Create(t *testing.T) {
	t.Run("reserves stock, assigns a daily code and stores the booking", func(t *testing.T) {
		f := newBookingFixture(t)

		result, err := f.uc.Create(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, "150826-01", result.Code)
		assert.Equal(t, 400, result.TotalPriceCHF)
		assert.Equal(t, 2, result.ReservedUnits)

		stored, ok := f.uow.Booking(result.ID)
		require.True(t, ok)
		assert.Equal(t, booking.StatusConfirmed.String(), stored.Status)
		assert.Equal(t, booking.PaymentPending.String(), stored.PaymentStatus)
		assert.NotEmpty(t, stored.CancelToken)
		assert.Equal(t, 2, f.uow.Lodging("tipis-lit140").ReservedUnits)
	})

	t.Run("notifies guest and operator and invalidates the stock cache", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.uc.Create(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)

		calls := f.sender.Calls()
		require.Len(t, calls, 2)
		assert.Equal(t, commands.TemplateBookingConfirmed, calls[0].Template)
		assert.Equal(t, "claire@example.com", calls[0].To)
		assert.Equal(t, "operator@example.com", calls[1].To)
		assert.Contains(t, calls[0].Params["cancel_url"], "/api/reservations/cancel?token=")
		assert.Equal(t, "400", calls[0].Params["total_chf"])

		assert.Equal(t, 1, f.cache.Invalidations())
	})

	t.Run("sequence numbers grow within a day and restart the next day", func(t *testing.T) {
		f := newBookingFixture(t)

		for i := 1; i <= 3; i++ {
			result, err := f.uc.Create(context.Background(), builder.NewBookingBuilder().WithQuantity(1).BuildInput())
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("150826-%02d", i), result.Code)
		}

		f.clock.Add(24 * time.Hour)
		result, err := f.uc.Create(context.Background(), builder.NewBookingBuilder().WithQuantity(1).BuildInput())
		require.NoError(t, err)
		assert.Equal(t, "160826-01", result.Code)
	})

	t.Run("rejects a request exceeding the remaining stock", func(t *testing.T) {
		f := newBookingFixture(t)
		f.uow.AddLodging("tipis-lit140", fake.LodgingState{
			Title:         "Tipi avec lit double 140",
			TotalUnits:    20,
			ReservedUnits: 18,
			UnitCapacity:  2,
		})

		_, err := f.uc.Create(context.Background(), builder.NewBookingBuilder().WithQuantity(5).BuildInput())
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrInsufficientStock)

		var insufficient *lodging.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 2, insufficient.Remaining)

		assert.Equal(t, 18, f.uow.Lodging("tipis-lit140").ReservedUnits)
		assert.Empty(t, f.uow.Bookings())
		assert.Empty(t, f.sender.Calls())
	})

	t.Run("unknown lodging", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.uc.Create(context.Background(), builder.NewBookingBuilder().WithLodgingID("yourte-01").BuildInput())
		assert.ErrorIs(t, err, commands.ErrLodgingNotFound)
	})

	t.Run("validation failures never touch the ledger", func(t *testing.T) {
		f := newBookingFixture(t)

		cases := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
			errIs  error
		}{
			{
				name:   "empty name",
				mutate: func(b *builder.BookingBuilder) { b.WithName("   ") },
				errIs:  booking.ErrEmptyName,
			},
			{
				name:   "invalid email",
				mutate: func(b *builder.BookingBuilder) { b.WithEmail("not-an-email") },
				errIs:  booking.ErrInvalidEmail,
			},
			{
				name:   "zero quantity",
				mutate: func(b *builder.BookingBuilder) { b.WithQuantity(0) },
				errIs:  booking.ErrInvalidQuantity,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewBookingBuilder()
				tc.mutate(b)

				_, err := f.uc.Create(context.Background(), b.BuildInput())
				require.Error(t, err)
				assert.ErrorIs(t, err, commands.ErrValidation)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}

		assert.Equal(t, 0, f.uow.Lodging("tipis-lit140").ReservedUnits)
	})

	t.Run("a failed booking write rolls back the stock commit", func(t *testing.T) {
		f := newBookingFixture(t)
		f.uow.FailBookingCreate = errors.New("insert failed")

		_, err := f.uc.Create(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)

		assert.Equal(t, 0, f.uow.Lodging("tipis-lit140").ReservedUnits)
		assert.Empty(t, f.uow.Bookings())
		assert.Empty(t, f.sender.Calls())
		assert.Equal(t, 0, f.cache.Invalidations())
	})

	t.Run("concurrent requests never oversell", func(t *testing.T) {
		f := newBookingFixture(t)

		const attempts = 30
		var wg sync.WaitGroup
		var mu sync.Mutex
		succeeded := 0

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.uc.Create(context.Background(), builder.NewBookingBuilder().WithQuantity(1).BuildInput())
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				} else {
					assert.ErrorIs(t, err, commands.ErrInsufficientStock)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 20, succeeded)
		assert.Equal(t, 20, f.uow.Lodging("tipis-lit140").ReservedUnits)
		assert.Len(t, f.uow.Bookings(), 20)
	})
}

func TestBookingCommands_CancelByToken(t *testing.T) {
	t.Run("cancels the booking and releases the units exactly once", func(t *testing.T) {
		f := newBookingFixture(t)

		result, err := f.uc.Create(context.Background(), builder.NewBookingBuilder().WithQuantity(3).BuildInput())
		require.NoError(t, err)
		stored, ok := f.uow.Booking(result.ID)
		require.True(t, ok)
		require.Equal(t, 3, f.uow.Lodging("tipis-lit140").ReservedUnits)

		outcome, err := f.uc.CancelByToken(context.Background(), stored.CancelToken)
		require.NoError(t, err)
		assert.Equal(t, commands.CancelOutcomeCancelled, outcome)
		assert.Equal(t, 0, f.uow.Lodging("tipis-lit140").ReservedUnits)

		after, _ := f.uow.Booking(result.ID)
		assert.Equal(t, booking.StatusCancelled.String(), after.Status)

		// Repeat: still a success, but nothing is released again.
		outcome, err = f.uc.CancelByToken(context.Background(), stored.CancelToken)
		require.NoError(t, err)
		assert.Equal(t, commands.CancelOutcomeAlreadyCancelled, outcome)
		assert.Equal(t, 0, f.uow.Lodging("tipis-lit140").ReservedUnits)
	})

	t.Run("notifies the operator on a real cancellation only", func(t *testing.T) {
		f := newBookingFixture(t)

		result, err := f.uc.Create(context.Background(), builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)
		stored, _ := f.uow.Booking(result.ID)

		before := len(f.sender.Calls())
		_, err = f.uc.CancelByToken(context.Background(), stored.CancelToken)
		require.NoError(t, err)

		calls := f.sender.Calls()
		require.Len(t, calls, before+1)
		last := calls[len(calls)-1]
		assert.Equal(t, commands.TemplateBookingCancelled, last.Template)
		assert.Equal(t, "operator@example.com", last.To)
		assert.Equal(t, result.Code, last.Params["code"])

		_, err = f.uc.CancelByToken(context.Background(), stored.CancelToken)
		require.NoError(t, err)
		assert.Len(t, f.sender.Calls(), before+1)
	})

	t.Run("unknown or empty token", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.uc.CancelByToken(context.Background(), "deadbeef")
		assert.ErrorIs(t, err, commands.ErrTokenInvalid)

		_, err = f.uc.CancelByToken(context.Background(), "")
		assert.ErrorIs(t, err, commands.ErrTokenInvalid)
	})
}
