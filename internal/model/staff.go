package model

// Staff is a hotel employee. Phone numbers are unique across staff.
type Staff struct {
	ID     int64   `json:"staff_id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Phone  string  `json:"phone"`
	Salary float64 `json:"salary"`
}
