package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/danielkpl2/hotel/internal/application"
	"github.com/danielkpl2/hotel/internal/response"
)

// HotelHandler handles HTTP requests for hotel lookups.
type HotelHandler struct {
	service *application.HotelService
}

// NewHotelHandler creates a new HotelHandler.
func NewHotelHandler(service *application.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

// RegisterRoutes registers all hotel routes on the given router group.
func (h *HotelHandler) RegisterRoutes(r *gin.RouterGroup) {
	hotels := r.Group("/api/v1/hotels")
	{
		hotels.GET("/search", h.SearchHotels)
	}
}

// SearchHotels handles GET /api/v1/hotels/search. An empty name returns
// every hotel.
func (h *HotelHandler) SearchHotels(c *gin.Context) {
	name := c.Query("name")

	hotels, err := h.service.SearchHotels(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, hotels)
}
