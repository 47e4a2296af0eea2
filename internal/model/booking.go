package model

// Booking assigns a room to a customer for a stay interval. CheckOut is
// expected, but not enforced, to fall strictly after CheckIn.
type Booking struct {
	ID         int64  `json:"booking_id"`
	CustomerID int64  `json:"customer_id"`
	RoomID     int64  `json:"room_id"`
	CheckIn    Date   `json:"check_in"`
	CheckOut   Date   `json:"check_out"`
	Status     string `json:"status"`
}

// Active reports whether the booking currently occupies its room.
func (b *Booking) Active() bool {
	return BookingStatusActive(b.Status)
}

// Overlaps reports whether this booking's stay conflicts with the given
// interval under inclusive-boundary semantics.
func (b *Booking) Overlaps(in, out Date) bool {
	return DateRangesOverlap(b.CheckIn, b.CheckOut, in, out)
}
