package request

import (
	"strings"

	"tipi-reserve/internal/usecase/commands"
)

type CreateBookingRequest struct {
	LodgingID string `json:"lodging_id" binding:"required"`
	Quantity  int    `json:"qty" binding:"required,min=1"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		LodgingID: strings.TrimSpace(r.LodgingID),
		Quantity:  r.Quantity,
		Name:      r.Name,
		Email:     strings.TrimSpace(r.Email),
	}
}
