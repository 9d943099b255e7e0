package hotel

import "errors"

// ErrHotelNotFound is returned when a hotel lookup by ID misses.
var ErrHotelNotFound = errors.New("hotel not found")
