package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielkpl2/hotel/internal/domain/hotel"
)

type fakeHotelRepo struct {
	hotels map[uint]*hotel.Hotel
	err    error
}

func (f *fakeHotelRepo) ListAll(ctx context.Context) ([]hotel.Hotel, error) {
	return nil, nil
}

func (f *fakeHotelRepo) FindByName(ctx context.Context, name string) ([]hotel.Hotel, error) {
	return nil, nil
}

func (f *fakeHotelRepo) GetByID(ctx context.Context, id uint) (*hotel.Hotel, error) {
	if f.err != nil {
		return nil, f.err
	}
	h, ok := f.hotels[id]
	if !ok {
		return nil, hotel.ErrHotelNotFound
	}
	return h, nil
}

type fakeRoomRepo struct {
	rooms []hotel.Room
}

func (f *fakeRoomRepo) FindAvailable(ctx context.Context, stay hotel.StayRange) ([]hotel.Room, error) {
	return nil, nil
}

func (f *fakeRoomRepo) GetByIDsAndHotel(ctx context.Context, ids []uint, hotelID uint) ([]hotel.Room, error) {
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []hotel.Room
	for _, r := range f.rooms {
		if wanted[r.ID] && r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) LockByIDsAndHotel(ctx context.Context, ids []uint, hotelID uint) ([]hotel.Room, error) {
	return f.GetByIDsAndHotel(ctx, ids, hotelID)
}

type fakeBookingRepo struct {
	bookings []Booking
}

func (f *fakeBookingRepo) FindByReference(ctx context.Context, reference string) (*Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].BookingReference == reference {
			return &f.bookings[i], nil
		}
	}
	return nil, ErrBookingNotFound
}

func (f *fakeBookingRepo) FindOverlapping(ctx context.Context, roomID uint, stay hotel.StayRange) ([]Booking, error) {
	var out []Booking
	for _, b := range f.bookings {
		holds := false
		for _, r := range b.Rooms {
			if r.ID == roomID {
				holds = true
			}
		}
		if holds && b.Stay().Overlaps(stay) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *Booking) error {
	b.ID = uint(len(f.bookings) + 1)
	f.bookings = append(f.bookings, *b)
	return nil
}

// testInventory builds one hotel with a single, a double and a deluxe room,
// where the deluxe room is already booked 2025-07-25 to 2025-07-28.
func testInventory() (*fakeHotelRepo, *fakeRoomRepo, *fakeBookingRepo) {
	single := hotel.Room{ID: 1, RoomNumber: "101", PriceCents: 8000, HotelID: 1, RoomTypeID: 1,
		RoomType: hotel.RoomType{ID: 1, Name: "Single", MaxOccupancy: 1}}
	double := hotel.Room{ID: 2, RoomNumber: "201", PriceCents: 12000, HotelID: 1, RoomTypeID: 2,
		RoomType: hotel.RoomType{ID: 2, Name: "Double", MaxOccupancy: 2}}
	deluxe := hotel.Room{ID: 3, RoomNumber: "301", PriceCents: 20000, HotelID: 1, RoomTypeID: 3,
		RoomType: hotel.RoomType{ID: 3, Name: "Deluxe", MaxOccupancy: 3}}

	hotels := &fakeHotelRepo{hotels: map[uint]*hotel.Hotel{
		1: {ID: 1, Name: "The Westminster", Rooms: []hotel.Room{single, double, deluxe}},
	}}
	rooms := &fakeRoomRepo{rooms: []hotel.Room{single, double, deluxe}}
	bookings := &fakeBookingRepo{bookings: []Booking{{
		ID:               1,
		HotelID:          1,
		GuestName:        "John Watson",
		PeopleCount:      2,
		CheckInDate:      day(2025, 7, 25),
		CheckOutDate:     day(2025, 7, 28),
		TotalPriceCents:  60000,
		BookingReference: "BK20250715120000002",
		Rooms:            []hotel.Room{deluxe},
	}}}
	return hotels, rooms, bookings
}

func testValidator() (*Validator, *fakeBookingRepo) {
	hotels, rooms, bookings := testInventory()
	v := NewValidator(hotels, rooms, bookings).WithClock(func() time.Time {
		return time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	})
	return v, bookings
}

func validRequest() Request {
	return Request{
		HotelID:     1,
		RoomIDs:     []uint{1, 2},
		GuestName:   "Sherlock Holmes",
		PeopleCount: 3,
		CheckIn:     day(2025, 8, 1),
		CheckOut:    day(2025, 8, 3),
	}
}

func TestValidateAcceptsCleanRequest(t *testing.T) {
	v, _ := testValidator()

	ok, issues, err := v.Validate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, issues)
}

func TestValidateRejectsBadDatesBeforeAnythingElse(t *testing.T) {
	v, _ := testValidator()

	req := validRequest()
	req.HotelID = 99 // would also fail, but dates short-circuit first
	req.CheckIn = day(2025, 7, 1)

	ok, issues, err := v.Validate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, IssueDateInvalid, issues[0].Kind)
}

func TestValidateRejectsEmptyRoomSelection(t *testing.T) {
	v, _ := testValidator()

	req := validRequest()
	req.RoomIDs = nil

	ok, issues, err := v.Validate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Detail, "at least one room must be selected")
}

func TestValidateReportsDuplicateRoomIDs(t *testing.T) {
	v, _ := testValidator()

	req := validRequest()
	req.RoomIDs = []uint{2, 2}
	req.PeopleCount = 2

	ok, issues, err := v.Validate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, issues.HasKind(IssueDuplicateRoom))
	assert.Contains(t, issues[0].Detail, "duplicate room IDs found: 2")
}

func TestValidateRejectsUnknownHotel(t *testing.T) {
	v, _ := testValidator()

	req := validRequest()
	req.HotelID = 42

	ok, issues, err := v.Validate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, issues.HasKind(IssueHotelNotFound))
}

func TestValidateRejectsRoomsOfAnotherHotel(t *testing.T) {
	v, _ := testValidator()

	req := validRequest()
	req.RoomIDs = []uint{1, 99}

	ok, issues, err := v.Validate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, issues.HasKind(IssueRoomNotFound))
	assert.Contains(t, issues[0].Detail, "99")
	assert.Contains(t, issues[0].Detail, "not found or do not belong to this hotel")
}

func TestValidateRejectsPartyBeyondAggregateCapacity(t *testing.T) {
	v, _ := testValidator()

	req := validRequest()
	req.RoomIDs = []uint{1, 2} // max 1 + max 2
	req.PeopleCount = 6

	ok, issues, err := v.Validate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, ok)
	require.True(t, issues.HasKind(IssueCapacityExceeded))
	detail := issues[0].Detail
	assert.Contains(t, detail, "can only accommodate 3 people, but 6 requested")
	assert.Contains(t, detail, "room 101 (Single, max 1 people)")
	assert.Contains(t, detail, "room 201 (Double, max 2 people)")
}

func TestValidateRejectsOverlappingStay(t *testing.T) {
	v, _ := testValidator()

	req := validRequest()
	req.RoomIDs = []uint{3}
	req.CheckIn = day(2025, 7, 27)
	req.CheckOut = day(2025, 7, 30)

	ok, issues, err := v.Validate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, ok)
	require.True(t, issues.HasKind(IssueRoomUnavailable))
	detail := issues[0].Detail
	assert.Contains(t, detail, "room 301 is not available")
	assert.Contains(t, detail, "booking BK20250715120000002 (John Watson) from 2025-07-25 to 2025-07-28")
}

func TestValidateAllowsBackToBackStays(t *testing.T) {
	v, _ := testValidator()

	// Checking out on the existing booking's check-in day is not an
	// overlap under the half-open window.
	req := validRequest()
	req.RoomIDs = []uint{3}
	req.CheckIn = day(2025, 7, 22)
	req.CheckOut = day(2025, 7, 25)

	ok, issues, err := v.Validate(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, issues)

	req.CheckIn = day(2025, 7, 28)
	req.CheckOut = day(2025, 7, 31)

	ok, issues, err = v.Validate(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, issues)
}

func TestValidateAccumulatesCapacityAndOverlapIssues(t *testing.T) {
	v, _ := testValidator()

	req := validRequest()
	req.RoomIDs = []uint{3}
	req.PeopleCount = 5
	req.CheckIn = day(2025, 7, 26)
	req.CheckOut = day(2025, 7, 29)

	ok, issues, err := v.Validate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, issues, 2)
	assert.True(t, issues.HasKind(IssueCapacityExceeded))
	assert.True(t, issues.HasKind(IssueRoomUnavailable))
}

func TestValidatePropagatesStorageFaults(t *testing.T) {
	hotels, rooms, bookings := testInventory()
	boom := errors.New("connection refused")
	hotels.err = boom

	v := NewValidator(hotels, rooms, bookings).WithClock(func() time.Time {
		return time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	})

	_, _, err := v.Validate(context.Background(), validRequest())
	assert.ErrorIs(t, err, boom)
}

func TestValidationErrorConflictMapping(t *testing.T) {
	badInput := &ValidationError{Issues: Issues{{Kind: IssueCapacityExceeded, Detail: "too many people"}}}
	assert.False(t, badInput.IsConflict())

	taken := &ValidationError{Issues: Issues{{Kind: IssueRoomUnavailable, Detail: "room taken"}}}
	assert.True(t, taken.IsConflict())
	assert.Contains(t, taken.Error(), "room taken")
}
