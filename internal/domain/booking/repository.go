package booking

import (
	"context"

	"github.com/danielkpl2/hotel/internal/domain/hotel"
)

// Repository defines the persistence contract for bookings.
type Repository interface {
	// FindByReference retrieves a booking (with its rooms) by its
	// externally visible booking reference. Returns ErrBookingNotFound
	// on a miss.
	FindByReference(ctx context.Context, reference string) (*Booking, error)

	// FindOverlapping retrieves every booking holding the given room for
	// a stay that overlaps the half-open range.
	FindOverlapping(ctx context.Context, roomID uint, stay hotel.StayRange) ([]Booking, error)

	// Create persists a new booking together with its room associations.
	// A duplicate booking reference surfaces as ErrDuplicateReference.
	Create(ctx context.Context, b *Booking) error
}

// TxRepos bundles the repositories bound to a single transaction. Everything
// read or written through them shares the transaction's visibility and locks.
type TxRepos struct {
	Hotels   hotel.Repository
	Rooms    hotel.RoomRepository
	Bookings Repository
}

// UnitOfWork runs a function inside an atomic transaction: either every write
// made through the supplied repositories commits, or none do.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(repos TxRepos) error) error
}
