package request

type LoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// PatchBookingRequest updates the payment flag, the lifecycle state, or both.
// Absent fields are left untouched.
type PatchBookingRequest struct {
	PaymentStatus *string `json:"payment_status,omitempty"`
	Status        *string `json:"status,omitempty"`
}

type PurgeQuery struct {
	OlderThanDays int `form:"older_than_days" binding:"omitempty,min=0"`
	Limit         int `form:"limit" binding:"omitempty,min=0"`
}
