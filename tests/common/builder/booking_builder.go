//go:build unit || e2e

package builder

import (
	"time"

	dombooking "tipi-reserve/internal/domain/booking"
	reqdto "tipi-reserve/internal/handler/dto/request"
	"tipi-reserve/internal/usecase/commands"
	"tipi-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	LodgingID    string
	LodgingName  string
	Quantity     int
	Name         string
	Email        string
	UnitPriceCHF int
	Code         string
	CancelToken  string
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		LodgingID:    "tipis-lit140",
		LodgingName:  "Tipi avec lit double 140",
		Quantity:     2,
		Name:         "Claire Dubois",
		Email:        "claire@example.com",
		UnitPriceCHF: 200,
		Code:         "150826-01",
		CancelToken:  "9f2c4d6e8a0b9f2c4d6e8a0b9f2c4d6e8a0b9f2c4d6e8a0b",
		CreatedAt:    time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	qty, err := dombooking.NewQuantity(b.Quantity)
	if err != nil {
		return nil, err
	}
	name, err := dombooking.NewGuestName(b.Name)
	if err != nil {
		return nil, err
	}
	email, err := dombooking.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return dombooking.New(
		b.LodgingID, b.LodgingName,
		qty, name, email,
		b.UnitPriceCHF,
		b.Code, b.CancelToken,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		LodgingID: b.LodgingID,
		Quantity:  b.Quantity,
		Name:      b.Name,
		Email:     b.Email,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		LodgingID: b.LodgingID,
		Quantity:  b.Quantity,
		Name:      b.Name,
		Email:     b.Email,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            uuid.New(),
		Code:          b.Code,
		LodgingID:     b.LodgingID,
		LodgingName:   b.LodgingName,
		Quantity:      b.Quantity,
		GuestName:     b.Name,
		Email:         b.Email,
		UnitPriceCHF:  b.UnitPriceCHF,
		TotalPriceCHF: b.UnitPriceCHF * b.Quantity,
		PaymentStatus: dombooking.PaymentPending.String(),
		Status:        dombooking.StatusConfirmed.String(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithLodgingID(id string) *BookingBuilder {
	b.LodgingID = id
	return b
}

func (b *BookingBuilder) WithLodgingName(name string) *BookingBuilder {
	b.LodgingName = name
	return b
}

func (b *BookingBuilder) WithQuantity(qty int) *BookingBuilder {
	b.Quantity = qty
	return b
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithUnitPriceCHF(price int) *BookingBuilder {
	b.UnitPriceCHF = price
	return b
}

func (b *BookingBuilder) WithCode(code string) *BookingBuilder {
	b.Code = code
	return b
}

func (b *BookingBuilder) WithCancelToken(token string) *BookingBuilder {
	b.CancelToken = token
	return b
}

func (b *BookingBuilder) WithCreatedAt(createdAt time.Time) *BookingBuilder {
	b.CreatedAt = createdAt
	return b
}
