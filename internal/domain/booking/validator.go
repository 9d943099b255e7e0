package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielkpl2/hotel/internal/domain/hotel"
)

// Validator checks a candidate booking request against the inventory. It is
// an explicit ordered rule list: each check either appends to the issue
// collection or short-circuits, so the partial-validation behavior stays
// observable and testable.
//
// Validation is a read; it never raises for expected business violations.
// Run against transaction-bound repositories when the result must hold for
// a write (the availability snapshot a caller searched with may be stale).
type Validator struct {
	hotels   hotel.Repository
	rooms    hotel.RoomRepository
	bookings Repository
	now      func() time.Time
}

// NewValidator creates a Validator over the given repositories.
func NewValidator(hotels hotel.Repository, rooms hotel.RoomRepository, bookings Repository) *Validator {
	return &Validator{
		hotels:   hotels,
		rooms:    rooms,
		bookings: bookings,
		now:      time.Now,
	}
}

// WithClock overrides the time source used by the date rules.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// Request is a candidate booking to validate.
type Request struct {
	HotelID     uint
	RoomIDs     []uint
	GuestName   string
	PeopleCount int
	CheckIn     time.Time
	CheckOut    time.Time
}

// Stay returns the request's date range.
func (r Request) Stay() hotel.StayRange {
	return hotel.StayRange{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
}

// Validate runs the rule list and returns ok together with the accumulated
// issues. The error return is reserved for storage faults.
func (v *Validator) Validate(ctx context.Context, req Request) (bool, Issues, error) {
	var issues Issues

	// 1. Date sanity. A broken window makes every later check meaningless.
	if dateIssues := ValidateStayDates(v.now(), req.CheckIn, req.CheckOut); len(dateIssues) > 0 {
		return false, dateIssues, nil
	}

	// 2. Room selection must be non-empty.
	if len(req.RoomIDs) == 0 {
		issues = append(issues, Issue{
			Kind:   IssueRoomNotFound,
			Detail: "at least one room must be selected",
		})
		return false, issues, nil
	}

	// 3. Duplicate room IDs are reported but not fatal on their own.
	if dups := duplicateIDs(req.RoomIDs); len(dups) > 0 {
		issues = append(issues, Issue{
			Kind:   IssueDuplicateRoom,
			Detail: fmt.Sprintf("duplicate room IDs found: %s", joinIDs(dups)),
		})
	}

	// 4. The hotel must exist.
	if _, err := v.hotels.GetByID(ctx, req.HotelID); err != nil {
		if errors.Is(err, hotel.ErrHotelNotFound) {
			issues = append(issues, Issue{Kind: IssueHotelNotFound, Detail: "hotel not found"})
			return false, issues, nil
		}
		return false, nil, err
	}

	// 5. Resolve the requested rooms against this hotel.
	rooms, err := v.rooms.GetByIDsAndHotel(ctx, req.RoomIDs, req.HotelID)
	if err != nil {
		return false, nil, err
	}

	found := make(map[uint]bool, len(rooms))
	for _, r := range rooms {
		found[r.ID] = true
	}
	var missing []uint
	for _, id := range uniqueIDs(req.RoomIDs) {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		issues = append(issues, Issue{
			Kind:   IssueRoomNotFound,
			Detail: fmt.Sprintf("rooms with IDs %s not found or do not belong to this hotel", joinIDs(missing)),
		})
	}

	// The occupancy and overlap checks need a consistent room set.
	if len(rooms) != len(req.RoomIDs) {
		return false, issues, nil
	}

	// 6. Aggregate capacity across the selected rooms.
	var totalCapacity int
	for _, r := range rooms {
		totalCapacity += r.RoomType.MaxOccupancy
	}
	if totalCapacity < req.PeopleCount {
		details := make([]string, len(rooms))
		for i, r := range rooms {
			details[i] = fmt.Sprintf("room %s (%s, max %d people)", r.RoomNumber, r.RoomType.Name, r.RoomType.MaxOccupancy)
		}
		issues = append(issues, Issue{
			Kind: IssueCapacityExceeded,
			Detail: fmt.Sprintf("selected rooms can only accommodate %d people, but %d requested; rooms: %s",
				totalCapacity, req.PeopleCount, strings.Join(details, ", ")),
		})
	}

	// 7. Per-room overlap against existing bookings.
	for _, r := range rooms {
		conflicts, err := v.bookings.FindOverlapping(ctx, r.ID, req.Stay())
		if err != nil {
			return false, nil, err
		}
		if len(conflicts) == 0 {
			continue
		}
		parts := make([]string, len(conflicts))
		for i, c := range conflicts {
			parts[i] = fmt.Sprintf("booking %s (%s) from %s to %s",
				c.BookingReference, c.GuestName,
				c.CheckInDate.Format(DateLayout), c.CheckOutDate.Format(DateLayout))
		}
		issues = append(issues, Issue{
			Kind:   IssueRoomUnavailable,
			Detail: fmt.Sprintf("room %s is not available: %s", r.RoomNumber, strings.Join(parts, ", ")),
		})
	}

	return len(issues) == 0, issues, nil
}

func duplicateIDs(ids []uint) []uint {
	seen := make(map[uint]int, len(ids))
	for _, id := range ids {
		seen[id]++
	}
	var dups []uint
	for _, id := range uniqueIDs(ids) {
		if seen[id] > 1 {
			dups = append(dups, id)
		}
	}
	return dups
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
