package repository

import (
	"time"

	"github.com/danielkpl2/hotel/internal/domain/booking"
	"github.com/danielkpl2/hotel/internal/domain/hotel"
)

// HotelModel is the GORM model for the hotels table.
type HotelModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null;size:100;index"`
	Address     string `gorm:"not null;size:200"`
	PhoneNumber string `gorm:"size:20"`
	Email       string `gorm:"size:100"`

	Rooms []RoomModel `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the GORM model.
func (HotelModel) TableName() string {
	return "hotels"
}

// RoomTypeModel is the GORM model for the room_types table.
type RoomTypeModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null;size:50;uniqueIndex"`
	MaxOccupancy int    `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RoomTypeModel) TableName() string {
	return "room_types"
}

// RoomModel is the GORM model for the rooms table. The room number is unique
// per hotel.
type RoomModel struct {
	ID         uint   `gorm:"primaryKey"`
	RoomNumber string `gorm:"not null;size:10;uniqueIndex:idx_rooms_hotel_room_number"`
	HotelID    uint   `gorm:"not null;uniqueIndex:idx_rooms_hotel_room_number;index"`
	RoomTypeID uint   `gorm:"not null"`
	PriceCents int64  `gorm:"not null"`

	Hotel    *HotelModel   `gorm:"foreignKey:HotelID"`
	RoomType RoomTypeModel `gorm:"foreignKey:RoomTypeID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for the GORM model.
func (RoomModel) TableName() string {
	return "rooms"
}

// BookingModel is the GORM model for the bookings table. Rooms are attached
// through the booking_rooms join table.
type BookingModel struct {
	ID               uint      `gorm:"primaryKey"`
	HotelID          uint      `gorm:"not null;index"`
	GuestName        string    `gorm:"not null;size:100"`
	PeopleCount      int       `gorm:"not null"`
	CheckInDate      time.Time `gorm:"not null;type:date"`
	CheckOutDate     time.Time `gorm:"not null;type:date"`
	TotalPriceCents  int64     `gorm:"not null"`
	BookingReference string    `gorm:"not null;size:50;uniqueIndex"`

	Rooms []RoomModel `gorm:"many2many:booking_rooms;joinForeignKey:BookingID;joinReferences:RoomID"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// --- Conversion helpers ---

func toDomainRoomType(m RoomTypeModel) hotel.RoomType {
	return hotel.RoomType{
		ID:           m.ID,
		Name:         m.Name,
		MaxOccupancy: m.MaxOccupancy,
	}
}

func toDomainRoom(m RoomModel) hotel.Room {
	r := hotel.Room{
		ID:         m.ID,
		RoomNumber: m.RoomNumber,
		PriceCents: m.PriceCents,
		HotelID:    m.HotelID,
		RoomTypeID: m.RoomTypeID,
		RoomType:   toDomainRoomType(m.RoomType),
	}
	if m.Hotel != nil {
		h := toDomainHotel(*m.Hotel)
		r.Hotel = &h
	}
	return r
}

func toDomainHotel(m HotelModel) hotel.Hotel {
	h := hotel.Hotel{
		ID:          m.ID,
		Name:        m.Name,
		Address:     m.Address,
		PhoneNumber: m.PhoneNumber,
		Email:       m.Email,
	}
	for _, rm := range m.Rooms {
		h.Rooms = append(h.Rooms, toDomainRoom(rm))
	}
	return h
}

func toDomainBooking(m BookingModel) booking.Booking {
	b := booking.Booking{
		ID:               m.ID,
		HotelID:          m.HotelID,
		GuestName:        m.GuestName,
		PeopleCount:      m.PeopleCount,
		CheckInDate:      m.CheckInDate,
		CheckOutDate:     m.CheckOutDate,
		TotalPriceCents:  m.TotalPriceCents,
		BookingReference: m.BookingReference,
	}
	for _, rm := range m.Rooms {
		b.Rooms = append(b.Rooms, toDomainRoom(rm))
	}
	return b
}

func toBookingModel(b *booking.Booking) BookingModel {
	m := BookingModel{
		ID:               b.ID,
		HotelID:          b.HotelID,
		GuestName:        b.GuestName,
		PeopleCount:      b.PeopleCount,
		CheckInDate:      b.CheckInDate,
		CheckOutDate:     b.CheckOutDate,
		TotalPriceCents:  b.TotalPriceCents,
		BookingReference: b.BookingReference,
	}
	for _, r := range b.Rooms {
		m.Rooms = append(m.Rooms, RoomModel{ID: r.ID})
	}
	return m
}
