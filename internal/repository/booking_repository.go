package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/danielkpl2/hotel/internal/domain/booking"
	"github.com/danielkpl2/hotel/internal/domain/hotel"
)

// GormBookingRepository is the GORM-based implementation of booking.Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository. Pass a
// transaction handle to bind the repository to that transaction.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByReference retrieves a booking with its rooms by booking reference.
func (r *GormBookingRepository) FindByReference(ctx context.Context, reference string) (*booking.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).
		Where("booking_reference = ?", reference).
		Preload("Rooms").
		Preload("Rooms.RoomType").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking by reference: %w", err)
	}
	b := toDomainBooking(model)
	return &b, nil
}

// FindOverlapping retrieves every booking holding the room for a stay that
// overlaps the half-open range.
func (r *GormBookingRepository) FindOverlapping(ctx context.Context, roomID uint, stay hotel.StayRange) ([]booking.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN booking_rooms br ON br.booking_id = bookings.id").
		Where("br.room_id = ?", roomID).
		Where("bookings.check_in_date < ? AND bookings.check_out_date > ?", stay.CheckOut, stay.CheckIn).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find overlapping bookings: %w", err)
	}

	bookings := make([]booking.Booking, len(models))
	for i, m := range models {
		bookings[i] = toDomainBooking(m)
	}
	return bookings, nil
}

// Create persists a new booking with its room associations. The rooms must
// already exist; only the join rows are written for them.
func (r *GormBookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	model := toBookingModel(b)
	if err := r.db.WithContext(ctx).
		Omit("Rooms.*").
		Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return booking.ErrDuplicateReference
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	b.ID = model.ID
	return nil
}

var _ booking.Repository = (*GormBookingRepository)(nil)
