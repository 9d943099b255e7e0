package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/danielkpl2/hotel/internal/domain/hotel"
)

// GormRoomRepository is the GORM-based implementation of hotel.RoomRepository.
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository. Pass a transaction
// handle to bind the repository to that transaction.
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// FindAvailable retrieves all rooms with no booking overlapping the stay,
// with hotel and room type joined, ordered by hotel name then room number.
func (r *GormRoomRepository) FindAvailable(ctx context.Context, stay hotel.StayRange) ([]hotel.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Where(`NOT EXISTS (
			SELECT 1 FROM booking_rooms br
			JOIN bookings b ON b.id = br.booking_id
			WHERE br.room_id = rooms.id
			  AND b.check_in_date < ? AND b.check_out_date > ?
		)`, stay.CheckOut, stay.CheckIn).
		Preload("Hotel").
		Preload("RoomType").
		Order("hotels.name, rooms.room_number").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find available rooms: %w", err)
	}
	return toDomainRooms(models), nil
}

// GetByIDsAndHotel retrieves the requested rooms belonging to the hotel, with
// room types joined. Unresolved IDs are absent from the result.
func (r *GormRoomRepository) GetByIDsAndHotel(ctx context.Context, ids []uint, hotelID uint) ([]hotel.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND hotel_id = ?", ids, hotelID).
		Preload("RoomType").
		Order("id").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to get rooms by IDs: %w", err)
	}
	return toDomainRooms(models), nil
}

// LockByIDsAndHotel retrieves the requested rooms with FOR UPDATE row locks,
// scanned in ascending ID order so concurrent bookings acquire locks in the
// same order. Must run inside a transaction.
func (r *GormRoomRepository) LockByIDsAndHotel(ctx context.Context, ids []uint, hotelID uint) ([]hotel.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Table: clause.Table{Name: "rooms"}}).
		Where("id IN ? AND hotel_id = ?", ids, hotelID).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to lock rooms: %w", err)
	}

	// Preload cannot ride along with FOR UPDATE on the join tables, so the
	// types are fetched separately under the same transaction.
	for i := range models {
		if err := r.db.WithContext(ctx).
			First(&models[i].RoomType, models[i].RoomTypeID).Error; err != nil {
			return nil, fmt.Errorf("failed to load room type: %w", err)
		}
	}
	return toDomainRooms(models), nil
}

func toDomainRooms(models []RoomModel) []hotel.Room {
	rooms := make([]hotel.Room, len(models))
	for i, m := range models {
		rooms[i] = toDomainRoom(m)
	}
	return rooms
}

var _ hotel.RoomRepository = (*GormRoomRepository)(nil)
