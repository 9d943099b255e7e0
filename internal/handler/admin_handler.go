package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/danielkpl2/hotel/internal/application"
	"github.com/danielkpl2/hotel/internal/response"
)

// AdminHandler handles HTTP requests for fixture-data management.
type AdminHandler struct {
	service *application.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *application.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes registers admin routes.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/api/v1/admin")
	{
		admin.POST("/seed/small", h.SeedSmall)
		admin.POST("/seed/large", h.SeedLarge)
		admin.DELETE("/data", h.ClearAll)
		admin.GET("/summary", h.Summary)
	}
}

// SeedSmall handles POST /api/v1/admin/seed/small.
func (h *AdminHandler) SeedSmall(c *gin.Context) {
	summary, err := h.service.SeedSmall(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, summary)
}

// SeedLarge handles POST /api/v1/admin/seed/large.
func (h *AdminHandler) SeedLarge(c *gin.Context) {
	summary, err := h.service.SeedLarge(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, summary)
}

// ClearAll handles DELETE /api/v1/admin/data.
func (h *AdminHandler) ClearAll(c *gin.Context) {
	summary, err := h.service.ClearAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, summary)
}

// Summary handles GET /api/v1/admin/summary.
func (h *AdminHandler) Summary(c *gin.Context) {
	summary, err := h.service.DataSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, summary)
}
