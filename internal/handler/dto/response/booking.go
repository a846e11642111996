package response

import (
	"time"

	"tipi-reserve/internal/usecase/commands"
	"tipi-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingCreatedResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	TotalPriceCHF int       `json:"total_chf"`
	ReservedUnits int       `json:"reserved_units"`
}

func FromCreateResult(r *commands.CreateBookingResult) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		ID:            r.ID,
		Code:          r.Code,
		TotalPriceCHF: r.TotalPriceCHF,
		ReservedUnits: r.ReservedUnits,
	}
}

type BookingResponse struct {
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

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            v.ID,
		Code:          v.Code,
		LodgingID:     v.LodgingID,
		LodgingName:   v.LodgingName,
		Quantity:      v.Quantity,
		GuestName:     v.GuestName,
		Email:         v.Email,
		UnitPriceCHF:  v.UnitPriceCHF,
		TotalPriceCHF: v.TotalPriceCHF,
		PaymentStatus: v.PaymentStatus,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
