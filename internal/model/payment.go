package model

import "time"

// Payment settles a booking. At most one payment exists per booking,
// enforced at write time rather than by a schema constraint. Reference is
// a server-assigned code and PaidAt a server-assigned timestamp.
type Payment struct {
	ID        int64     `json:"payment_id"`
	BookingID int64     `json:"booking_id"`
	Method    string    `json:"payment_method"`
	Amount    float64   `json:"amount"`
	Reference string    `json:"reference"`
	PaidAt    time.Time `json:"payment_date"`
}
