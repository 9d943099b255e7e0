package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danielkpl2/hotel/internal/application"
	"github.com/danielkpl2/hotel/internal/domain/booking"
	"github.com/danielkpl2/hotel/internal/response"
)

// CreateBookingRequest is the POST body for booking creation. Dates are
// YYYY-MM-DD strings so a malformed date fails before validation runs.
type CreateBookingRequest struct {
	HotelID      uint   `json:"hotel_id" binding:"required"`
	RoomIDs      []uint `json:"room_ids" binding:"required,min=1"`
	GuestName    string `json:"guest_name" binding:"required,min=1,max=100"`
	PeopleCount  int    `json:"people_count" binding:"required,min=1,max=20"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
}

// BookingHandler handles HTTP requests for availability and bookings.
type BookingHandler struct {
	availability *application.AvailabilityService
	bookings     *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(
	availability *application.AvailabilityService,
	bookings *application.BookingService,
) *BookingHandler {
	return &BookingHandler{availability: availability, bookings: bookings}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.GET("/available-rooms", h.GetAvailableRooms)
		bookings.POST("/book", h.CreateBooking)
		bookings.GET("/:reference", h.GetBooking)
	}
}

// GetAvailableRooms handles GET /api/v1/bookings/available-rooms.
func (h *BookingHandler) GetAvailableRooms(c *gin.Context) {
	checkIn, err := time.Parse(booking.DateLayout, c.Query("check_in_date"))
	if err != nil {
		response.BadRequest(c, "invalid check-in date format, use YYYY-MM-DD")
		return
	}

	checkOut, err := time.Parse(booking.DateLayout, c.Query("check_out_date"))
	if err != nil {
		response.BadRequest(c, "invalid check-out date format, use YYYY-MM-DD")
		return
	}

	peopleCount, err := strconv.Atoi(c.DefaultQuery("people_count", "1"))
	if err != nil || peopleCount < 1 {
		response.BadRequest(c, "people_count must be a positive integer")
		return
	}

	result, err := h.availability.FindAvailableRooms(c.Request.Context(), checkIn, checkOut, peopleCount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateBooking handles POST /api/v1/bookings/book.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, err := time.Parse(booking.DateLayout, req.CheckInDate)
	if err != nil {
		response.BadRequest(c, "invalid check-in date format, use YYYY-MM-DD")
		return
	}

	checkOut, err := time.Parse(booking.DateLayout, req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "invalid check-out date format, use YYYY-MM-DD")
		return
	}

	created, err := h.bookings.CreateBooking(c.Request.Context(), booking.Request{
		HotelID:     req.HotelID,
		RoomIDs:     req.RoomIDs,
		GuestName:   req.GuestName,
		PeopleCount: req.PeopleCount,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, created)
}

// GetBooking handles GET /api/v1/bookings/:reference.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	reference := c.Param("reference")

	result, err := h.bookings.GetBookingByReference(c.Request.Context(), reference)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
