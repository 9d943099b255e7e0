package hotel

import "context"

// Repository defines the persistence contract for hotels.
type Repository interface {
	// ListAll retrieves every hotel with its rooms, ordered by name.
	ListAll(ctx context.Context) ([]Hotel, error)

	// FindByName retrieves hotels whose name contains the given fragment
	// (case-insensitive), ordered by name.
	FindByName(ctx context.Context, name string) ([]Hotel, error)

	// GetByID retrieves a single hotel with its rooms and room types.
	// Returns ErrHotelNotFound on a miss.
	GetByID(ctx context.Context, id uint) (*Hotel, error)
}

// RoomRepository defines the persistence contract for rooms.
type RoomRepository interface {
	// FindAvailable retrieves all rooms (with hotel and room type joined)
	// that have no booking overlapping the given stay, ordered by hotel
	// name and then room number.
	FindAvailable(ctx context.Context, stay StayRange) ([]Room, error)

	// GetByIDsAndHotel retrieves the rooms (with room type joined) whose
	// IDs are in ids and that belong to the given hotel. IDs that do not
	// resolve are simply absent from the result.
	GetByIDsAndHotel(ctx context.Context, ids []uint, hotelID uint) ([]Room, error)

	// LockByIDsAndHotel behaves like GetByIDsAndHotel but acquires row
	// locks on the matched rooms, in ascending ID order, held until the
	// surrounding transaction ends. Only meaningful inside a unit of work.
	LockByIDsAndHotel(ctx context.Context, ids []uint, hotelID uint) ([]Room, error)
}
