// Package repository implements data access over the hotel schema with
// raw parameterized SQL. Sentinel errors defined here let handlers pick
// the right HTTP status without inspecting driver errors: validation
// failures never reach this layer, not-found and conflict conditions map
// to the sentinels below, and anything else is a storage failure.
package repository

import "errors"

// Not-found sentinels, one per entity.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrStaffNotFound    = errors.New("staff not found")
	ErrServiceNotFound  = errors.New("service not found")
)

// Conflict sentinels. Handlers should translate these into HTTP 409.
var (
	// ErrDuplicateCustomer signals that another customer already holds
	// the email or phone being written.
	ErrDuplicateCustomer = errors.New("customer with this email or phone already exists")
	// ErrDuplicateStaffPhone signals that another staff member already
	// holds the phone number being written.
	ErrDuplicateStaffPhone = errors.New("staff with this phone number already exists")
	// ErrDuplicateServiceName signals that another service already holds
	// the name being written.
	ErrDuplicateServiceName = errors.New("service with this name already exists")
	// ErrPaymentExists signals a second payment attempt for a booking
	// that is already paid.
	ErrPaymentExists = errors.New("payment already exists for this booking")
	// ErrRoomUnavailable signals that the requested room cannot be
	// assigned for the chosen dates.
	ErrRoomUnavailable = errors.New("room is not available for the chosen dates")
	// ErrRoomHasBookings blocks deletion of a room with active bookings.
	ErrRoomHasBookings = errors.New("room has active bookings")
	// ErrServiceAssigned blocks deletion of a service assigned to customers.
	ErrServiceAssigned = errors.New("service is assigned to customers")
)
