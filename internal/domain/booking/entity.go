package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrEmptyLodging     = errors.New("lodging id cannot be empty")
	ErrEmptyCancelToken = errors.New("cancel token cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// Booking is a single reservation of some quantity of one lodging type.
// While status is confirmed its quantity is counted in the lodging's
// reservedUnits; once cancelled the compensation has been applied exactly
// once and the booking only waits for an eventual purge.
type Booking struct {
	id            uuid.UUID
	code          string
	cancelToken   string
	lodgingID     string
	lodgingName   string
	quantity      Quantity
	guestName     GuestName
	email         Email
	unitPriceCHF  int
	totalPriceCHF int
	paymentStatus PaymentStatus
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func New(
	lodgingID, lodgingName string,
	quantity Quantity,
	guestName GuestName,
	email Email,
	unitPriceCHF int,
	code, cancelToken string,
	now time.Time,
) (*Booking, error) {
	if lodgingID == "" {
		return nil, ErrEmptyLodging
	}
	if cancelToken == "" {
		return nil, ErrEmptyCancelToken
	}
	if unitPriceCHF < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:            uuid.New(),
		code:          code,
		cancelToken:   cancelToken,
		lodgingID:     lodgingID,
		lodgingName:   lodgingName,
		quantity:      quantity,
		guestName:     guestName,
		email:         email,
		unitPriceCHF:  unitPriceCHF,
		totalPriceCHF: unitPriceCHF * quantity.Value(),
		paymentStatus: PaymentPending,
		status:        StatusConfirmed,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	code, cancelToken, lodgingID, lodgingName string,
	quantity Quantity,
	guestName GuestName,
	email Email,
	unitPriceCHF, totalPriceCHF int,
	paymentStatus PaymentStatus,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		code:          code,
		cancelToken:   cancelToken,
		lodgingID:     lodgingID,
		lodgingName:   lodgingName,
		quantity:      quantity,
		guestName:     guestName,
		email:         email,
		unitPriceCHF:  unitPriceCHF,
		totalPriceCHF: totalPriceCHF,
		paymentStatus: paymentStatus,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Code() string                 { return b.code }
func (b *Booking) CancelToken() string          { return b.cancelToken }
func (b *Booking) LodgingID() string            { return b.lodgingID }
func (b *Booking) LodgingName() string          { return b.lodgingName }
func (b *Booking) Quantity() Quantity           { return b.quantity }
func (b *Booking) GuestName() GuestName         { return b.guestName }
func (b *Booking) Email() Email                 { return b.email }
func (b *Booking) UnitPriceCHF() int            { return b.unitPriceCHF }
func (b *Booking) TotalPriceCHF() int           { return b.totalPriceCHF }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
