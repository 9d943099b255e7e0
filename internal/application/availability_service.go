package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/danielkpl2/hotel/internal/domain/booking"
	"github.com/danielkpl2/hotel/internal/domain/hotel"
)

// RoomAvailabilityDTO describes one free room in an availability result,
// with its stay price already derived.
type RoomAvailabilityDTO struct {
	RoomID          uint   `json:"room_id"`
	RoomNumber      string `json:"room_number"`
	RoomType        string `json:"room_type"`
	MaxOccupancy    int    `json:"max_occupancy"`
	PriceCents      int64  `json:"price_cents"`
	TotalPriceCents int64  `json:"total_price_cents"`
}

// HotelAvailabilityDTO groups a hotel's free rooms with the aggregate
// capacity over the searched window.
type HotelAvailabilityDTO struct {
	HotelID                uint                  `json:"hotel_id"`
	HotelName              string                `json:"hotel_name"`
	Address                string                `json:"address"`
	PhoneNumber            string                `json:"phone_number"`
	Email                  string                `json:"email"`
	AvailableRooms         []RoomAvailabilityDTO `json:"available_rooms"`
	TotalAvailableCapacity int                   `json:"total_available_capacity"`
	CanAccommodateGuests   bool                  `json:"can_accommodate_guests"`
}

// SearchCriteriaDTO echoes the searched window back to the caller.
type SearchCriteriaDTO struct {
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	PeopleCount  int    `json:"people_count"`
	Nights       int    `json:"nights"`
}

// AvailabilityResultDTO is the full availability search response.
type AvailabilityResultDTO struct {
	SearchCriteria      SearchCriteriaDTO      `json:"search_criteria"`
	Hotels              []HotelAvailabilityDTO `json:"hotels"`
	TotalHotelsFound    int                    `json:"total_hotels_found"`
	TotalRoomsAvailable int                    `json:"total_rooms_available"`
}

// AvailabilityService answers read-only availability searches. Results are a
// snapshot without locks; the booking path re-validates under a transaction.
type AvailabilityService struct {
	rooms  hotel.RoomRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewAvailabilityService creates a new AvailabilityService.
func NewAvailabilityService(rooms hotel.RoomRepository, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		rooms:  rooms,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the time source used by the date rules.
func (s *AvailabilityService) WithClock(now func() time.Time) *AvailabilityService {
	s.now = now
	return s
}

// FindAvailableRooms returns every hotel with at least one free room over the
// half-open stay window, grouped by hotel with aggregate capacity; hotels
// that cannot accommodate the party are dropped. Hotels come back ordered by
// name, rooms by room number.
func (s *AvailabilityService) FindAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, peopleCount int) (*AvailabilityResultDTO, error) {
	if issues := booking.ValidateStayDates(s.now(), checkIn, checkOut); len(issues) > 0 {
		return nil, &booking.ValidationError{Issues: issues}
	}

	stay := hotel.StayRange{CheckIn: checkIn, CheckOut: checkOut}
	rooms, err := s.rooms.FindAvailable(ctx, stay)
	if err != nil {
		return nil, err
	}

	nights := stay.Nights()
	hotels := groupByHotel(rooms, nights, peopleCount)

	totalRooms := 0
	for _, h := range hotels {
		totalRooms += len(h.AvailableRooms)
	}

	s.logger.Debug("availability search completed",
		zap.Int("people_count", peopleCount),
		zap.Int("hotels_found", len(hotels)),
		zap.Int("rooms_available", totalRooms),
	)

	return &AvailabilityResultDTO{
		SearchCriteria: SearchCriteriaDTO{
			CheckInDate:  checkIn.Format(booking.DateLayout),
			CheckOutDate: checkOut.Format(booking.DateLayout),
			PeopleCount:  peopleCount,
			Nights:       nights,
		},
		Hotels:              hotels,
		TotalHotelsFound:    len(hotels),
		TotalRoomsAvailable: totalRooms,
	}, nil
}

// groupByHotel folds the hotel-name-ordered room list into per-hotel groups,
// dropping hotels whose aggregate capacity cannot hold the party.
func groupByHotel(rooms []hotel.Room, nights, peopleCount int) []HotelAvailabilityDTO {
	hotels := make([]HotelAvailabilityDTO, 0)
	for _, r := range rooms {
		if r.Hotel == nil {
			continue
		}
		if len(hotels) == 0 || hotels[len(hotels)-1].HotelID != r.HotelID {
			hotels = append(hotels, HotelAvailabilityDTO{
				HotelID:     r.HotelID,
				HotelName:   r.Hotel.Name,
				Address:     r.Hotel.Address,
				PhoneNumber: r.Hotel.PhoneNumber,
				Email:       r.Hotel.Email,
			})
		}
		group := &hotels[len(hotels)-1]
		group.AvailableRooms = append(group.AvailableRooms, RoomAvailabilityDTO{
			RoomID:          r.ID,
			RoomNumber:      r.RoomNumber,
			RoomType:        r.RoomType.Name,
			MaxOccupancy:    r.RoomType.MaxOccupancy,
			PriceCents:      r.PriceCents,
			TotalPriceCents: r.PriceCents * int64(nights),
		})
		group.TotalAvailableCapacity += r.RoomType.MaxOccupancy
	}

	qualified := hotels[:0]
	for _, h := range hotels {
		h.CanAccommodateGuests = h.TotalAvailableCapacity >= peopleCount
		if h.CanAccommodateGuests {
			qualified = append(qualified, h)
		}
	}
	return qualified
}
