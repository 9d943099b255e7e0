package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/danielkpl2/hotel/internal/domain/hotel"
)

// DataSummary reports row counts per table for the admin endpoints.
type DataSummary struct {
	HotelCount    int64 `json:"hotel_count"`
	RoomCount     int64 `json:"room_count"`
	RoomTypeCount int64 `json:"room_type_count"`
	BookingCount  int64 `json:"booking_count"`
}

// SeedRepository provisions fixture data. It is the only write path for
// hotels, room types, and rooms, so it owns the rooms-per-hotel cap check.
type SeedRepository struct {
	db *gorm.DB
}

// NewSeedRepository creates a new SeedRepository.
func NewSeedRepository(db *gorm.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

// SeedSmall loads the three-hotel London dataset: Westminster (rooms 1-6),
// Big Ben (7-12), Buckingham (13-18), with room 17 pre-booked for
// 2025-07-25 to 2025-07-28.
func (r *SeedRepository) SeedSmall(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		types := []RoomTypeModel{
			{ID: 1, Name: "Single", MaxOccupancy: 1},
			{ID: 2, Name: "Double", MaxOccupancy: 2},
			{ID: 3, Name: "Deluxe", MaxOccupancy: 3},
		}
		if err := tx.Create(&types).Error; err != nil {
			return fmt.Errorf("failed to seed room types: %w", err)
		}

		hotels := []HotelModel{
			{ID: 1, Name: "The Westminster Palace Hotel", Address: "1 Parliament Square, London", PhoneNumber: "+44 20 7946 0101", Email: "stay@westminsterpalace.example"},
			{ID: 2, Name: "Big Ben Tower Suites", Address: "12 Bridge Street, London", PhoneNumber: "+44 20 7946 0202", Email: "stay@bigbentower.example"},
			{ID: 3, Name: "Buckingham Gardens Lodge", Address: "5 Palace Road, London", PhoneNumber: "+44 20 7946 0303", Email: "stay@buckinghamgardens.example"},
		}
		if err := tx.Create(&hotels).Error; err != nil {
			return fmt.Errorf("failed to seed hotels: %w", err)
		}

		// Two singles, two doubles, two deluxe per hotel: total capacity 12.
		id := uint(1)
		for _, h := range hotels {
			layout := []struct {
				number string
				typeID uint
				price  int64
			}{
				{"101", 1, 8000},
				{"102", 1, 8000},
				{"201", 2, 12000},
				{"202", 2, 12000},
				{"301", 3, 20000},
				{"302", 3, 20000},
			}
			for _, spec := range layout {
				room := RoomModel{
					ID:         id,
					RoomNumber: spec.number,
					HotelID:    h.ID,
					RoomTypeID: spec.typeID,
					PriceCents: spec.price,
				}
				if err := createRoomCapped(tx, room); err != nil {
					return err
				}
				id++
			}
		}

		bookings := []BookingModel{
			{
				HotelID:          1,
				GuestName:        "Sherlock Holmes",
				PeopleCount:      2,
				CheckInDate:      date(2025, 8, 1),
				CheckOutDate:     date(2025, 8, 3),
				TotalPriceCents:  24000,
				BookingReference: "BK20250715120000001",
				Rooms:            []RoomModel{{ID: 3}},
			},
			{
				HotelID:          3,
				GuestName:        "John Watson",
				PeopleCount:      2,
				CheckInDate:      date(2025, 7, 25),
				CheckOutDate:     date(2025, 7, 28),
				TotalPriceCents:  60000,
				BookingReference: "BK20250715120000002",
				Rooms:            []RoomModel{{ID: 17}},
			},
		}
		for i := range bookings {
			if err := tx.Omit("Rooms.*").Create(&bookings[i]).Error; err != nil {
				return fmt.Errorf("failed to seed bookings: %w", err)
			}
		}

		return resetSequences(tx)
	})
}

// SeedLarge loads a broader dataset: eight hotels, six rooms each, no
// pre-existing bookings.
func (r *SeedRepository) SeedLarge(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		types := []RoomTypeModel{
			{ID: 1, Name: "Single", MaxOccupancy: 1},
			{ID: 2, Name: "Double", MaxOccupancy: 2},
			{ID: 3, Name: "Deluxe", MaxOccupancy: 3},
			{ID: 4, Name: "Family", MaxOccupancy: 5},
		}
		if err := tx.Create(&types).Error; err != nil {
			return fmt.Errorf("failed to seed room types: %w", err)
		}

		names := []string{
			"Abbey Road Rooms", "Camden Lock Hotel", "Greenwich Meridian Inn",
			"Hyde Park Corner House", "Kensington Court Hotel", "Notting Hill Stay",
			"Shoreditch Box", "Tower Bridge View",
		}
		roomID := uint(1)
		for i, name := range names {
			h := HotelModel{
				ID:          uint(i + 1),
				Name:        name,
				Address:     fmt.Sprintf("%d High Street, London", (i+1)*10),
				PhoneNumber: fmt.Sprintf("+44 20 7946 1%03d", i),
				Email:       fmt.Sprintf("stay%d@hotels.example", i+1),
			}
			if err := tx.Create(&h).Error; err != nil {
				return fmt.Errorf("failed to seed hotels: %w", err)
			}
			for n := 0; n < hotel.MaxRoomsPerHotel; n++ {
				room := RoomModel{
					ID:         roomID,
					RoomNumber: fmt.Sprintf("%d0%d", n/2+1, n%2+1),
					HotelID:    h.ID,
					RoomTypeID: uint(n%4 + 1),
					PriceCents: int64(7000 + n*2500 + i*500),
				}
				if err := createRoomCapped(tx, room); err != nil {
					return err
				}
				roomID++
			}
		}

		return resetSequences(tx)
	})
}

// ClearAll deletes every row in dependency order.
func (r *SeedRepository) ClearAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM booking_rooms",
			"DELETE FROM bookings",
			"DELETE FROM rooms",
			"DELETE FROM hotels",
			"DELETE FROM room_types",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("failed to clear data: %w", err)
			}
		}
		return nil
	})
}

// Summary returns the current row counts.
func (r *SeedRepository) Summary(ctx context.Context) (*DataSummary, error) {
	var s DataSummary
	db := r.db.WithContext(ctx)
	if err := db.Model(&HotelModel{}).Count(&s.HotelCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count hotels: %w", err)
	}
	if err := db.Model(&RoomModel{}).Count(&s.RoomCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}
	if err := db.Model(&RoomTypeModel{}).Count(&s.RoomTypeCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count room types: %w", err)
	}
	if err := db.Model(&BookingModel{}).Count(&s.BookingCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	return &s, nil
}

// createRoomCapped inserts a room after checking the per-hotel cap. The
// database trigger enforces the same rule for writes that bypass this path.
func createRoomCapped(tx *gorm.DB, room RoomModel) error {
	var count int64
	if err := tx.Model(&RoomModel{}).Where("hotel_id = ?", room.HotelID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count hotel rooms: %w", err)
	}
	if count >= hotel.MaxRoomsPerHotel {
		return fmt.Errorf("hotel %d cannot have more than %d rooms", room.HotelID, hotel.MaxRoomsPerHotel)
	}
	if err := tx.Create(&room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// resetSequences realigns the serial sequences after inserting explicit IDs.
func resetSequences(tx *gorm.DB) error {
	for _, table := range []string{"room_types", "hotels", "rooms", "bookings"} {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1))",
			table, table)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to reset %s sequence: %w", table, err)
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
