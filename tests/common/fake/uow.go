//go:build unit || e2e

// Package fake provides an in-memory unit of work with the same
// transactional contract as the postgres implementation: mutations inside
// Within are staged and only become visible when the callback succeeds.
package fake

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"tipi-reserve/internal/domain/booking"
	"tipi-reserve/internal/domain/lodging"
	"tipi-reserve/internal/infra"
	"tipi-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type LodgingState struct {
	Title         string
	TotalUnits    int
	ReservedUnits int
	UnitCapacity  int
}

type BookingState struct {
	ID            uuid.UUID
	Code          string
	CancelToken   string
	LodgingID     string
	LodgingName   string
	Quantity      int
	GuestName     string
	Email         string
	UnitPriceCHF  int
	TotalPriceCHF int
	PaymentStatus string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type state struct {
	lodgings map[string]*LodgingState
	bookings map[uuid.UUID]*BookingState
	counters map[string]int64
}

func (s *state) clone() *state {
	c := &state{
		lodgings: make(map[string]*LodgingState, len(s.lodgings)),
		bookings: make(map[uuid.UUID]*BookingState, len(s.bookings)),
		counters: make(map[string]int64, len(s.counters)),
	}
	for id, l := range s.lodgings {
		copied := *l
		c.lodgings[id] = &copied
	}
	for id, b := range s.bookings {
		copied := *b
		c.bookings[id] = &copied
	}
	for day, v := range s.counters {
		c.counters[day] = v
	}
	return c
}

type UnitOfWork struct {
	mu    sync.Mutex
	state *state

	// FailBookingCreate makes the next booking insert fail, exercising the
	// all-or-nothing transaction contract.
	FailBookingCreate error
	// Now drives the updated_at timestamps written by mutations.
	Now func() time.Time
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		state: &state{
			lodgings: make(map[string]*LodgingState),
			bookings: make(map[uuid.UUID]*BookingState),
			counters: make(map[string]int64),
		},
		Now: time.Now,
	}
}

func (u *UnitOfWork) AddLodging(id string, l LodgingState) {
	u.mu.Lock()
	defer u.mu.Unlock()
	copied := l
	u.state.lodgings[id] = &copied
}

func (u *UnitOfWork) Lodging(id string) LodgingState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return *u.state.lodgings[id]
}

func (u *UnitOfWork) AddBooking(b BookingState) {
	u.mu.Lock()
	defer u.mu.Unlock()
	copied := b
	u.state.bookings[b.ID] = &copied
}

func (u *UnitOfWork) Booking(id uuid.UUID) (BookingState, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	b, ok := u.state.bookings[id]
	if !ok {
		return BookingState{}, false
	}
	return *b, true
}

func (u *UnitOfWork) Bookings() []BookingState {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]BookingState, 0, len(u.state.bookings))
	for _, b := range u.state.bookings {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	staged := u.state.clone()
	tx := &fakeTx{uow: u, state: staged}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	u.state = staged
	return nil
}

type fakeTx struct {
	uow   *UnitOfWork
	state *state
}

func (t *fakeTx) Lodgings() shared.LodgingRepository { return &lodgingRepo{t} }
func (t *fakeTx) Bookings() shared.BookingRepository { return &bookingRepo{t} }
func (t *fakeTx) Counters() shared.CounterRepository { return &counterRepo{t} }

type lodgingRepo struct{ tx *fakeTx }

func (r *lodgingRepo) FindByID(_ context.Context, id string) (*lodging.Stock, error) {
	l, ok := r.tx.state.lodgings[id]
	if !ok {
		return nil, infra.WrapRepoErr("lodging not found", lodging.ErrNotFound, infra.KindNotFound)
	}
	return lodging.ReconstructStock(id, l.Title, l.TotalUnits, l.ReservedUnits, l.UnitCapacity), nil
}

func (r *lodgingRepo) TryReserve(_ context.Context, id string, qty int) (int, error) {
	l, ok := r.tx.state.lodgings[id]
	if !ok {
		return 0, lodging.ErrNotFound
	}
	if qty <= 0 {
		return 0, lodging.ErrInvalidQuantity
	}
	if l.ReservedUnits+qty > l.TotalUnits {
		remaining := l.TotalUnits - l.ReservedUnits
		if remaining < 0 {
			remaining = 0
		}
		return 0, &lodging.InsufficientStockError{Remaining: remaining}
	}
	l.ReservedUnits += qty
	return l.ReservedUnits, nil
}

func (r *lodgingRepo) Release(_ context.Context, id string, qty int) error {
	l, ok := r.tx.state.lodgings[id]
	if !ok || qty <= 0 {
		return nil
	}
	l.ReservedUnits -= qty
	if l.ReservedUnits < 0 {
		l.ReservedUnits = 0
	}
	return nil
}

func (r *lodgingRepo) Reset(_ context.Context, id string) error {
	if l, ok := r.tx.state.lodgings[id]; ok {
		l.ReservedUnits = 0
	}
	return nil
}

func (r *lodgingRepo) ResetAll(_ context.Context) error {
	for _, l := range r.tx.state.lodgings {
		l.ReservedUnits = 0
	}
	return nil
}

func (r *lodgingRepo) Recount(_ context.Context) (map[string]int, error) {
	totals := make(map[string]int, len(r.tx.state.lodgings))
	for id := range r.tx.state.lodgings {
		totals[id] = 0
	}
	for _, b := range r.tx.state.bookings {
		if b.Status == booking.StatusConfirmed.String() {
			if _, ok := totals[b.LodgingID]; ok {
				totals[b.LodgingID] += b.Quantity
			}
		}
	}
	for id, sum := range totals {
		r.tx.state.lodgings[id].ReservedUnits = sum
	}
	return totals, nil
}

type bookingRepo struct{ tx *fakeTx }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.tx.uow.FailBookingCreate; err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	r.tx.state.bookings[b.ID()] = &BookingState{
		ID:            b.ID(),
		Code:          b.Code(),
		CancelToken:   b.CancelToken(),
		LodgingID:     b.LodgingID(),
		LodgingName:   b.LodgingName(),
		Quantity:      b.Quantity().Value(),
		GuestName:     b.GuestName().String(),
		Email:         b.Email().String(),
		UnitPriceCHF:  b.UnitPriceCHF(),
		TotalPriceCHF: b.TotalPriceCHF(),
		PaymentStatus: b.PaymentStatus().String(),
		Status:        b.Status().String(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
	return nil
}

func (r *bookingRepo) SetPaymentStatus(_ context.Context, id uuid.UUID, status booking.PaymentStatus) (bool, error) {
	b, ok := r.tx.state.bookings[id]
	if !ok {
		return false, nil
	}
	b.PaymentStatus = status.String()
	b.UpdatedAt = r.tx.uow.Now()
	return true, nil
}

func (r *bookingRepo) CancelConfirmed(_ context.Context, id uuid.UUID) (*shared.CancelledUnits, error) {
	b, ok := r.tx.state.bookings[id]
	if !ok || b.Status != booking.StatusConfirmed.String() {
		return nil, nil
	}
	b.Status = booking.StatusCancelled.String()
	b.UpdatedAt = r.tx.uow.Now()
	return &shared.CancelledUnits{LodgingID: b.LodgingID, Quantity: b.Quantity}, nil
}

func (r *bookingRepo) FindByCancelToken(_ context.Context, token string) (*shared.BookingSnapshot, error) {
	for _, b := range r.tx.state.bookings {
		if b.CancelToken == token {
			return &shared.BookingSnapshot{
				ID:        b.ID,
				Code:      b.Code,
				LodgingID: b.LodgingID,
				Quantity:  b.Quantity,
				GuestName: b.GuestName,
				Email:     b.Email,
				Status:    b.Status,
				CreatedAt: b.CreatedAt,
			}, nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", errors.New("no booking for cancel token"), infra.KindNotFound)
}

func (r *bookingRepo) CollectCancelledIDs(_ context.Context, cutoff *time.Time, limit int) ([]uuid.UUID, error) {
	var matched []*BookingState
	for _, b := range r.tx.state.bookings {
		if b.Status != booking.StatusCancelled.String() {
			continue
		}
		ref := b.UpdatedAt
		if ref.IsZero() {
			ref = b.CreatedAt
		}
		if cutoff == nil || ref.Before(*cutoff) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) })

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	ids := make([]uuid.UUID, 0, len(matched))
	for _, b := range matched {
		ids = append(ids, b.ID)
	}
	return ids, nil
}

func (r *bookingRepo) DeleteByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := r.tx.state.bookings[id]; ok {
			delete(r.tx.state.bookings, id)
			deleted++
		}
	}
	return deleted, nil
}

type counterRepo struct{ tx *fakeTx }

func (r *counterRepo) NextSequence(_ context.Context, day string) (int64, error) {
	r.tx.state.counters[day]++
	return r.tx.state.counters[day], nil
}
