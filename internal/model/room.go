package model

// Room is a bookable hotel room. Type is open-ended (Single, Double,
// Suite, Deluxe, Penthouse, ...); Price is the nightly rate.
type Room struct {
	ID     int64   `json:"room_id"`
	Type   string  `json:"room_type"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}
