// Package response maps service results and domain errors onto HTTP replies
// so handlers stay free of status-code logic.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielkpl2/hotel/internal/domain/booking"
	"github.com/danielkpl2/hotel/internal/domain/hotel"
)

// Success writes a 200 reply with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 reply with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest writes a 400 reply with an error message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// NotFound writes a 404 reply with an error message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// Error maps a domain error to its transport status:
//   - validation failures caused by room unavailability -> 409 with the issue list
//   - other validation failures (malformed input, bad dates) -> 400 with the issue list
//   - not-found lookups -> 404
//   - anything else -> 500 with no internal detail
func Error(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		status := http.StatusBadRequest
		if vErr.IsConflict() {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"error":  "booking validation failed",
			"issues": vErr.Issues,
		})
		return
	}

	switch {
	case errors.Is(err, hotel.ErrHotelNotFound):
		NotFound(c, "hotel not found")
	case errors.Is(err, booking.ErrBookingNotFound):
		NotFound(c, "booking not found")
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
