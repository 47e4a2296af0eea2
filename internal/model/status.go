package model

// Room statuses. Status is a denormalized projection of booking state and
// can drift from the booking rows; the availability resolver treats the
// absence of a conflicting booking as the authoritative signal.
const (
	RoomAvailable   = "Available"
	RoomBooked      = "Booked"
	RoomMaintenance = "Under Maintenance"
)

// Booking statuses. A booking occupies its room only while Confirmed or
// Checked-In; Checked-Out and Cancelled bookings never block new ones.
const (
	BookingConfirmed  = "Confirmed"
	BookingCheckedIn  = "Checked-In"
	BookingCheckedOut = "Checked-Out"
	BookingCancelled  = "Cancelled"
)

// ValidBookingStatus reports whether s is one of the known booking states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return true
	}
	return false
}

// ValidRoomStatus reports whether s is one of the known room states.
func ValidRoomStatus(s string) bool {
	switch s {
	case RoomAvailable, RoomBooked, RoomMaintenance:
		return true
	}
	return false
}

// BookingStatusActive reports whether a booking in state s competes for
// room availability.
func BookingStatusActive(s string) bool {
	return s == BookingConfirmed || s == BookingCheckedIn
}
