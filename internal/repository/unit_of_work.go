package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/danielkpl2/hotel/internal/domain/booking"
)

// GormUnitOfWork runs callbacks inside a single database transaction,
// handing them repositories bound to that transaction. Row locks taken
// through those repositories are held until the transaction ends.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GormUnitOfWork.
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Execute opens a transaction, invokes fn with transaction-bound
// repositories, and commits if fn returns nil. Any error (or panic) rolls
// the whole transaction back, so no partial booking state can survive.
func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(repos booking.TxRepos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(booking.TxRepos{
			Hotels:   NewGormHotelRepository(tx),
			Rooms:    NewGormRoomRepository(tx),
			Bookings: NewGormBookingRepository(tx),
		})
	})
}

var _ booking.UnitOfWork = (*GormUnitOfWork)(nil)
