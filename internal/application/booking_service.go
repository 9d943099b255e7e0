package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/danielkpl2/hotel/internal/domain/booking"
	"github.com/danielkpl2/hotel/internal/domain/hotel"
	"github.com/danielkpl2/hotel/internal/events"
)

// maxReferenceAttempts bounds how often a booking is retried when its
// generated reference collides with an existing one.
const maxReferenceAttempts = 3

// EventPublisher publishes booking lifecycle events. A nil publisher
// disables event publishing.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, evt events.BookingCreatedEvent) error
}

// BookingService owns the booking write path and booking lookups.
type BookingService struct {
	uow       booking.UnitOfWork
	hotels    hotel.Repository
	rooms     hotel.RoomRepository
	bookings  booking.Repository
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewBookingService creates a new BookingService. The repositories are used
// for read-only operations; every write runs through the unit of work.
func NewBookingService(
	uow booking.UnitOfWork,
	hotels hotel.Repository,
	rooms hotel.RoomRepository,
	bookings booking.Repository,
	publisher EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		uow:       uow,
		hotels:    hotels,
		rooms:     rooms,
		bookings:  bookings,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the time source used by the date rules and reference
// generation.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

// GetBookingByReference retrieves a booking by its booking reference.
func (s *BookingService) GetBookingByReference(ctx context.Context, reference string) (*booking.Booking, error) {
	return s.bookings.FindByReference(ctx, reference)
}

// ValidateBooking runs the booking validator against current committed
// state, without locks. The result may be stale by the time a booking is
// attempted; CreateBooking re-validates under the transaction.
func (s *BookingService) ValidateBooking(ctx context.Context, req booking.Request) (bool, booking.Issues, error) {
	validator := booking.NewValidator(s.hotels, s.rooms, s.bookings).WithClock(s.now)
	return validator.Validate(ctx, req)
}

// CreateBooking atomically validates and persists a booking. Target rooms
// are row-locked before the validator re-runs, so two concurrent bookings of
// the same room for overlapping dates cannot both pass: the loser blocks on
// the lock and then sees the winner's booking. A reference collision at
// commit time is retried with a fresh reference in a new transaction.
func (s *BookingService) CreateBooking(ctx context.Context, req booking.Request) (*booking.Booking, error) {
	var created *booking.Booking
	var err error

	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		created, err = s.createOnce(ctx, req)
		if err == nil {
			break
		}
		if !errors.Is(err, booking.ErrDuplicateReference) {
			return nil, err
		}
		s.logger.Warn("booking reference collision, retrying",
			zap.Int("attempt", attempt),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create booking after %d attempts: %w", maxReferenceAttempts, err)
	}

	s.logger.Info("booking created",
		zap.String("reference", created.BookingReference),
		zap.Uint("hotel_id", created.HotelID),
		zap.Int64("total_price_cents", created.TotalPriceCents),
	)
	s.publishBookingCreated(ctx, created)
	return created, nil
}

// createOnce performs one all-or-nothing booking attempt inside a unit of
// work. No partial state survives a failure at any step.
func (s *BookingService) createOnce(ctx context.Context, req booking.Request) (*booking.Booking, error) {
	var created *booking.Booking

	err := s.uow.Execute(ctx, func(repos booking.TxRepos) error {
		// Lock the target rooms first. Every booking writer locks in
		// ascending room-ID order, which serializes overlapping attempts
		// and keeps the overlap re-check below authoritative.
		rooms, err := repos.Rooms.LockByIDsAndHotel(ctx, req.RoomIDs, req.HotelID)
		if err != nil {
			return err
		}

		validator := booking.NewValidator(repos.Hotels, repos.Rooms, repos.Bookings).WithClock(s.now)
		ok, issues, err := validator.Validate(ctx, req)
		if err != nil {
			return err
		}
		if !ok {
			return &booking.ValidationError{Issues: issues}
		}

		nights := req.Stay().Nights()
		reference, err := booking.GenerateReference(s.now())
		if err != nil {
			return err
		}

		b := &booking.Booking{
			HotelID:          req.HotelID,
			GuestName:        req.GuestName,
			PeopleCount:      req.PeopleCount,
			CheckInDate:      req.CheckIn,
			CheckOutDate:     req.CheckOut,
			TotalPriceCents:  booking.TotalPrice(rooms, nights),
			BookingReference: reference,
			Rooms:            rooms,
		}
		if err := repos.Bookings.Create(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *BookingService) publishBookingCreated(ctx context.Context, b *booking.Booking) {
	if s.publisher == nil {
		return
	}

	roomIDs := make([]uint, len(b.Rooms))
	for i, r := range b.Rooms {
		roomIDs[i] = r.ID
	}
	evt := events.BookingCreatedEvent{
		BookingID:        b.ID,
		BookingReference: b.BookingReference,
		HotelID:          b.HotelID,
		GuestName:        b.GuestName,
		PeopleCount:      b.PeopleCount,
		RoomIDs:          roomIDs,
		CheckInDate:      b.CheckInDate.Format(booking.DateLayout),
		CheckOutDate:     b.CheckOutDate.Format(booking.DateLayout),
		TotalPriceCents:  b.TotalPriceCents,
		OccurredAt:       s.now().UTC(),
	}
	if err := s.publisher.PublishBookingCreated(ctx, evt); err != nil {
		s.logger.Error("failed to publish booking created event",
			zap.String("reference", b.BookingReference),
			zap.Error(err),
		)
	}
}
