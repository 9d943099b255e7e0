package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/danielkpl2/hotel/internal/domain/hotel"
)

// GormHotelRepository is the GORM-based implementation of hotel.Repository.
type GormHotelRepository struct {
	db *gorm.DB
}

// NewGormHotelRepository creates a new GormHotelRepository. Pass a
// transaction handle to bind the repository to that transaction.
func NewGormHotelRepository(db *gorm.DB) *GormHotelRepository {
	return &GormHotelRepository{db: db}
}

// ListAll retrieves every hotel with its rooms, ordered by name.
func (r *GormHotelRepository) ListAll(ctx context.Context) ([]hotel.Hotel, error) {
	var models []HotelModel
	if err := r.db.WithContext(ctx).
		Preload("Rooms").
		Preload("Rooms.RoomType").
		Order("name").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return toDomainHotels(models), nil
}

// FindByName retrieves hotels whose name contains the fragment, ignoring case.
func (r *GormHotelRepository) FindByName(ctx context.Context, name string) ([]hotel.Hotel, error) {
	var models []HotelModel
	pattern := "%" + strings.ToLower(name) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Preload("Rooms").
		Preload("Rooms.RoomType").
		Order("name").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find hotels by name: %w", err)
	}
	return toDomainHotels(models), nil
}

// GetByID retrieves a single hotel with its rooms and room types.
func (r *GormHotelRepository) GetByID(ctx context.Context, id uint) (*hotel.Hotel, error) {
	var model HotelModel
	if err := r.db.WithContext(ctx).
		Preload("Rooms").
		Preload("Rooms.RoomType").
		First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, hotel.ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to get hotel by ID: %w", err)
	}
	h := toDomainHotel(model)
	return &h, nil
}

func toDomainHotels(models []HotelModel) []hotel.Hotel {
	hotels := make([]hotel.Hotel, len(models))
	for i, m := range models {
		hotels[i] = toDomainHotel(m)
	}
	return hotels
}

var _ hotel.Repository = (*GormHotelRepository)(nil)
