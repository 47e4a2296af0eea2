package model

// Service is an extra offering (spa, laundry, ...) with a unique name.
type Service struct {
	ID   int64   `json:"service_id"`
	Name string  `json:"service_name"`
	Cost float64 `json:"cost"`
}
