package application

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/danielkpl2/hotel/internal/domain/hotel"
)

// HotelService serves hotel catalog lookups.
type HotelService struct {
	hotels hotel.Repository
	logger *zap.Logger
}

// NewHotelService creates a new HotelService.
func NewHotelService(hotels hotel.Repository, logger *zap.Logger) *HotelService {
	return &HotelService{hotels: hotels, logger: logger}
}

// SearchHotels returns hotels matching the name fragment, or every hotel
// when the fragment is blank. Results are ordered by name.
func (s *HotelService) SearchHotels(ctx context.Context, name string) ([]hotel.Hotel, error) {
	if strings.TrimSpace(name) == "" {
		hotels, err := s.hotels.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list hotels: %w", err)
		}
		return hotels, nil
	}

	hotels, err := s.hotels.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search hotels: %w", err)
	}
	return hotels, nil
}
