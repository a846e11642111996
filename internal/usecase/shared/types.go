package shared

import (
	"time"

	"github.com/google/uuid"
)

// CancelledUnits is what a successful cancellation must hand back to the
// stock ledger.
type CancelledUnits struct {
	LodgingID string
	Quantity  int
}

// Minimal snapshot for command read operations
type BookingSnapshot struct {
	ID        uuid.UUID
	Code      string
	LodgingID string
	Quantity  int
	GuestName string
	Email     string
	Status    string
	CreatedAt time.Time
}
