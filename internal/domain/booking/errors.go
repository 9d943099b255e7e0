package booking

import "errors"

var (
	// ErrBookingNotFound is returned when a booking lookup by reference misses.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrDuplicateReference is returned when persisting a booking collides
	// with an existing booking reference. Callers retry with a fresh
	// reference in a new transaction.
	ErrDuplicateReference = errors.New("booking reference already exists")
)
