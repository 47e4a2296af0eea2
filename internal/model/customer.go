package model

// Customer is a hotel guest. Email and phone are unique-ish: creation and
// update reject values already held by another customer.
type Customer struct {
	ID      int64  `json:"customer_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
