package booking

import "strings"

// IssueKind tags a validation issue so callers can map it to a transport
// status without matching on message text.
type IssueKind string

const (
	IssueDateInvalid      IssueKind = "date_invalid"
	IssueDuplicateRoom    IssueKind = "duplicate_room"
	IssueHotelNotFound    IssueKind = "hotel_not_found"
	IssueRoomNotFound     IssueKind = "room_not_found"
	IssueCapacityExceeded IssueKind = "capacity_exceeded"
	IssueRoomUnavailable  IssueKind = "room_unavailable"
)

// Issue is a single business-rule violation found while validating a booking
// request.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	Detail string    `json:"detail"`
}

// Issues is an ordered list of validation issues.
type Issues []Issue

// HasKind reports whether any issue carries the given kind.
func (is Issues) HasKind(kind IssueKind) bool {
	for _, i := range is {
		if i.Kind == kind {
			return true
		}
	}
	return false
}

// Details returns the issue messages in order.
func (is Issues) Details() []string {
	out := make([]string, len(is))
	for i, issue := range is {
		out[i] = issue.Detail
	}
	return out
}

// ValidationError carries the full issue list for a rejected booking request.
// A request whose only problems are malformed input maps to a client error;
// one containing a room_unavailable issue maps to a resource conflict.
type ValidationError struct {
	Issues Issues
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "booking validation failed: " + strings.Join(e.Issues.Details(), "; ")
}

// IsConflict reports whether the failure was caused by room unavailability
// rather than malformed input.
func (e *ValidationError) IsConflict() bool {
	return e.Issues.HasKind(IssueRoomUnavailable)
}
