package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Topic and event type names used on the wire.
const (
	TopicHotelEvents = "hotel.events"

	EventBookingCreated = "hotel.booking.created"
)

// CloudEvent is the envelope every published message is wrapped in.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// NewCloudEvent wraps data in a CloudEvent envelope.
func NewCloudEvent(source, eventType string, data interface{}) (CloudEvent, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return CloudEvent{
		ID:     uuid.New().String(),
		Source: source,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   payload,
	}, nil
}

// ParseCloudEvent decodes a raw Kafka message value into a CloudEvent.
func ParseCloudEvent(raw []byte) (CloudEvent, error) {
	var ce CloudEvent
	if err := json.Unmarshal(raw, &ce); err != nil {
		return CloudEvent{}, fmt.Errorf("failed to parse cloud event: %w", err)
	}
	return ce, nil
}

// ParseData decodes the event payload into v.
func (ce CloudEvent) ParseData(v interface{}) error {
	return json.Unmarshal(ce.Data, v)
}

// BookingCreatedEvent is emitted after a booking has been committed.
type BookingCreatedEvent struct {
	BookingID        uint      `json:"booking_id"`
	BookingReference string    `json:"booking_reference"`
	HotelID          uint      `json:"hotel_id"`
	GuestName        string    `json:"guest_name"`
	PeopleCount      int       `json:"people_count"`
	RoomIDs          []uint    `json:"room_ids"`
	CheckInDate      string    `json:"check_in_date"`
	CheckOutDate     string    `json:"check_out_date"`
	TotalPriceCents  int64     `json:"total_price_cents"`
	OccurredAt       time.Time `json:"occurred_at"`
}
