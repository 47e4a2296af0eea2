// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// BookingConfirmedEvent is published when a booking is created or moved
// into an occupying status. It carries enough context for downstream
// consumers to log or notify without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID    int64   `json:"booking_id"`
	CustomerID   int64   `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	RoomID       int64   `json:"room_id"`
	RoomType     string  `json:"room_type"`
	RoomPrice    float64 `json:"room_price"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Status       string  `json:"status"`
	ConfirmedAt  string  `json:"confirmed_at"`
}
