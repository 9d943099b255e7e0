package booking

import (
	"time"

	"github.com/danielkpl2/hotel/internal/domain/hotel"
)

// Booking is a committed reservation of one or more rooms in a single hotel
// for a half-open [CheckInDate, CheckOutDate) stay. Bookings are immutable
// once created; cancellation is not supported.
type Booking struct {
	ID               uint         `json:"id"`
	HotelID          uint         `json:"hotel_id"`
	GuestName        string       `json:"guest_name"`
	PeopleCount      int          `json:"people_count"`
	CheckInDate      time.Time    `json:"check_in_date"`
	CheckOutDate     time.Time    `json:"check_out_date"`
	TotalPriceCents  int64        `json:"total_price_cents"`
	BookingReference string       `json:"booking_reference"`
	Rooms            []hotel.Room `json:"rooms"`
}

// Stay returns the booking's date range.
func (b *Booking) Stay() hotel.StayRange {
	return hotel.StayRange{CheckIn: b.CheckInDate, CheckOut: b.CheckOutDate}
}

// TotalPrice computes the derived price for a room set over a number of
// nights: sum of nightly prices times nights.
func TotalPrice(rooms []hotel.Room, nights int) int64 {
	var sum int64
	for _, r := range rooms {
		sum += r.PriceCents
	}
	return sum * int64(nights)
}
