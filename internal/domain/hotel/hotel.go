package hotel

import "time"

// MaxRoomsPerHotel caps how many rooms a single hotel may own. The write path
// for room provisioning must reject inserts beyond this limit; the database
// enforces the same rule with a trigger as a backstop.
const MaxRoomsPerHotel = 6

// Hotel owns a set of rooms and the contact details shown to guests.
type Hotel struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Rooms       []Room `json:"rooms,omitempty"`
}

// RoomType describes a class of rooms. The name is globally unique.
type RoomType struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	MaxOccupancy int    `json:"max_occupancy"`
}

// Room belongs to exactly one hotel and one room type for its lifetime.
// The room number is unique within a hotel. Prices are nightly, in cents.
type Room struct {
	ID         uint     `json:"id"`
	RoomNumber string   `json:"room_number"`
	PriceCents int64    `json:"price_cents"`
	HotelID    uint     `json:"hotel_id"`
	RoomTypeID uint     `json:"room_type_id"`
	RoomType   RoomType `json:"room_type"`

	// Hotel is populated by availability queries so results can be grouped
	// without a second lookup. Nil elsewhere.
	Hotel *Hotel `json:"-"`
}

// StayRange is a half-open [CheckIn, CheckOut) date interval.
type StayRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights returns the pricing multiplier: whole days between check-in and
// check-out.
func (r StayRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Overlaps reports whether two half-open ranges intersect:
// a.start < b.end && b.start < a.end.
func (r StayRange) Overlaps(other StayRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}
