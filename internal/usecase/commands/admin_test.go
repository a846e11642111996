//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tipi-reserve/internal/domain/booking"
	"tipi-reserve/internal/pkg/clock"
	"tipi-reserve/internal/usecase/commands"
	"tipi-reserve/tests/common/fake"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	uow   *fake.UnitOfWork
	cache *cacheSpy
	clock *clock.MockClock
	uc    commands.AdminCommands
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	uow := fake.NewUnitOfWork()
	uow.AddLodging("tipis-lit140", fake.LodgingState{
		Title:        "Tipi avec lit double 140",
		TotalUnits:   20,
		UnitCapacity: 2,
	})
	uow.AddLodging("tipis-lits90", fake.LodgingState{
		Title:        "Tipi avec deux lits 90",
		TotalUnits:   20,
		UnitCapacity: 2,
	})

	cache := &cacheSpy{}
	clk := clock.NewMockClock(time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC))
	uow.Now = clk.Now

	return &adminFixture{
		uow:   uow,
		cache: cache,
		clock: clk,
		uc:    commands.NewAdminUseCase(uow, cache, clk),
	}
}

func (f *adminFixture) seedBooking(t *testing.T, lodgingID string, qty int, status booking.Status, at time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	f.uow.AddBooking(fake.BookingState{
		ID:            id,
		Code:          "150826-01",
		CancelToken:   id.String(),
		LodgingID:     lodgingID,
		LodgingName:   "Tipi",
		Quantity:      qty,
		GuestName:     "Jean Morel",
		Email:         "jean@example.com",
		UnitPriceCHF:  200,
		TotalPriceCHF: 200 * qty,
		PaymentStatus: booking.PaymentPending.String(),
		Status:        status.String(),
		CreatedAt:     at,
		UpdatedAt:     at,
	})
	return id
}

func TestAdminCommands_SetPaymentStatus(t *testing.T) {
	t.Run("marks a booking as paid", func(t *testing.T) {
		f := newAdminFixture(t)
		id := f.seedBooking(t, "tipis-lit140", 2, booking.StatusConfirmed, f.clock.Now())

		require.NoError(t, f.uc.SetPaymentStatus(context.Background(), id, "paid"))

		stored, _ := f.uow.Booking(id)
		assert.Equal(t, booking.PaymentPaid.String(), stored.PaymentStatus)
		assert.Equal(t, booking.StatusConfirmed.String(), stored.Status)
	})

	t.Run("missing booking is a no-op success", func(t *testing.T) {
		f := newAdminFixture(t)
		assert.NoError(t, f.uc.SetPaymentStatus(context.Background(), uuid.New(), "paid"))
	})

	t.Run("rejects unknown status values", func(t *testing.T) {
		f := newAdminFixture(t)
		err := f.uc.SetPaymentStatus(context.Background(), uuid.New(), "refunded")
		assert.ErrorIs(t, err, commands.ErrInvalidPaymentStatus)
	})
}

func TestAdminCommands_Cancel(t *testing.T) {
	t.Run("releases units once across repeated cancels", func(t *testing.T) {
		f := newAdminFixture(t)
		f.uow.AddLodging("tipis-lit140", fake.LodgingState{
			Title:         "Tipi avec lit double 140",
			TotalUnits:    20,
			ReservedUnits: 10,
			UnitCapacity:  2,
		})
		id := f.seedBooking(t, "tipis-lit140", 3, booking.StatusConfirmed, f.clock.Now())

		require.NoError(t, f.uc.Cancel(context.Background(), id))
		assert.Equal(t, 7, f.uow.Lodging("tipis-lit140").ReservedUnits)

		require.NoError(t, f.uc.Cancel(context.Background(), id))
		assert.Equal(t, 7, f.uow.Lodging("tipis-lit140").ReservedUnits)

		stored, _ := f.uow.Booking(id)
		assert.Equal(t, booking.StatusCancelled.String(), stored.Status)
		assert.Equal(t, 1, f.cache.Invalidations())
	})

	t.Run("unknown booking is a no-op success", func(t *testing.T) {
		f := newAdminFixture(t)
		assert.NoError(t, f.uc.Cancel(context.Background(), uuid.New()))
		assert.Equal(t, 0, f.cache.Invalidations())
	})
}

func TestAdminCommands_PurgeCancelled(t *testing.T) {
	seed := func(f *adminFixture) (old1, old2, recent, confirmed uuid.UUID) {
		base := f.clock.Now()
		old1 = f.seedBooking(t, "tipis-lit140", 1, booking.StatusCancelled, base.AddDate(0, 0, -40))
		old2 = f.seedBooking(t, "tipis-lit140", 2, booking.StatusCancelled, base.AddDate(0, 0, -35))
		recent = f.seedBooking(t, "tipis-lits90", 1, booking.StatusCancelled, base.AddDate(0, 0, -2))
		confirmed = f.seedBooking(t, "tipis-lits90", 2, booking.StatusConfirmed, base.AddDate(0, 0, -40))
		return
	}

	t.Run("dry run counts without deleting", func(t *testing.T) {
		f := newAdminFixture(t)
		old1, old2, _, _ := seed(f)

		result, err := f.uc.PurgeCancelled(context.Background(), commands.PurgeOptions{
			OlderThanDays: 30,
			DryRun:        true,
		})
		require.NoError(t, err)

		expected := &commands.PurgeResult{
			DryRun:        true,
			OlderThanDays: 30,
			TotalMatched:  2,
			TotalDeleted:  0,
			SampleIDs:     []string{old1.String(), old2.String()},
		}
		assert.Empty(t, cmp.Diff(expected, result,
			cmpopts.SortSlices(func(a, b string) bool { return a < b })))

		assert.Len(t, f.uow.Bookings(), 4)
	})

	t.Run("execute deletes matched records and leaves stock alone", func(t *testing.T) {
		f := newAdminFixture(t)
		f.uow.AddLodging("tipis-lit140", fake.LodgingState{
			Title:         "Tipi avec lit double 140",
			TotalUnits:    20,
			ReservedUnits: 5,
			UnitCapacity:  2,
		})
		_, _, recent, confirmed := seed(f)

		result, err := f.uc.PurgeCancelled(context.Background(), commands.PurgeOptions{
			OlderThanDays: 30,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalMatched)
		assert.Equal(t, 2, result.TotalDeleted)

		remaining := f.uow.Bookings()
		require.Len(t, remaining, 2)
		ids := []uuid.UUID{remaining[0].ID, remaining[1].ID}
		assert.Contains(t, ids, recent)
		assert.Contains(t, ids, confirmed)

		// Purge is record hygiene only: the units were already released at
		// cancellation time.
		assert.Equal(t, 5, f.uow.Lodging("tipis-lit140").ReservedUnits)
	})

	t.Run("no cutoff matches every cancelled booking, limit caps it", func(t *testing.T) {
		f := newAdminFixture(t)
		seed(f)

		result, err := f.uc.PurgeCancelled(context.Background(), commands.PurgeOptions{
			Limit:  2,
			DryRun: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalMatched)
	})
}

func TestAdminCommands_Stock(t *testing.T) {
	t.Run("reset one lodging", func(t *testing.T) {
		f := newAdminFixture(t)
		f.uow.AddLodging("tipis-lit140", fake.LodgingState{
			Title:         "Tipi avec lit double 140",
			TotalUnits:    20,
			ReservedUnits: 12,
			UnitCapacity:  2,
		})

		require.NoError(t, f.uc.ResetStock(context.Background(), "tipis-lit140"))
		assert.Equal(t, 0, f.uow.Lodging("tipis-lit140").ReservedUnits)
		assert.Equal(t, 1, f.cache.Invalidations())
	})

	t.Run("reset all lodgings", func(t *testing.T) {
		f := newAdminFixture(t)
		f.uow.AddLodging("tipis-lit140", fake.LodgingState{Title: "a", TotalUnits: 20, ReservedUnits: 3})
		f.uow.AddLodging("tipis-lits90", fake.LodgingState{Title: "b", TotalUnits: 20, ReservedUnits: 8})

		require.NoError(t, f.uc.ResetAllStock(context.Background()))
		assert.Equal(t, 0, f.uow.Lodging("tipis-lit140").ReservedUnits)
		assert.Equal(t, 0, f.uow.Lodging("tipis-lits90").ReservedUnits)
	})

	t.Run("recount rebuilds reserved units from confirmed bookings", func(t *testing.T) {
		f := newAdminFixture(t)
		f.uow.AddLodging("tipis-lit140", fake.LodgingState{
			Title:         "Tipi avec lit double 140",
			TotalUnits:    20,
			ReservedUnits: 17, // drifted
			UnitCapacity:  2,
		})
		f.seedBooking(t, "tipis-lit140", 2, booking.StatusConfirmed, f.clock.Now())
		f.seedBooking(t, "tipis-lit140", 3, booking.StatusConfirmed, f.clock.Now())
		f.seedBooking(t, "tipis-lit140", 4, booking.StatusCancelled, f.clock.Now())
		f.seedBooking(t, "tipis-lits90", 1, booking.StatusConfirmed, f.clock.Now())

		totals, err := f.uc.RecountStock(context.Background())
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(map[string]int{
			"tipis-lit140": 5,
			"tipis-lits90": 1,
		}, totals))
		assert.Equal(t, 5, f.uow.Lodging("tipis-lit140").ReservedUnits)
		assert.Equal(t, 1, f.uow.Lodging("tipis-lits90").ReservedUnits)
	})
}
