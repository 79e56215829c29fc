package booking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookingapi/internal/middleware"
	"bookingapi/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.List)
		bookings.GET("/stats", h.Stats)
		bookings.GET("/recent", h.Recent)
		bookings.GET("/routes", h.RouteStats)
		bookings.GET("/:id", h.Get)
		bookings.POST("", h.Create)
		bookings.PUT("/:id", h.Update)
		bookings.POST("/:id/cancel", h.Cancel)
	}
}

func (h *Handler) List(c *gin.Context) {
	dtos, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to retrieve bookings", err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *Handler) Recent(c *gin.Context) {
	dtos, err := h.service.Recent(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to retrieve recent bookings", err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dto, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.Internal(c, "Failed to retrieve booking", err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.service.Create(c.Request.Context(), req, middleware.Actor(c))
	if err != nil {
		response.Internal(c, "Failed to create booking", err)
		return
	}

	dto, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Internal(c, "Failed to retrieve booking", err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/bookings/%d", id))
	c.JSON(http.StatusCreated, dto)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, req, middleware.Actor(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.Internal(c, "Failed to update booking", err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// Cancel tolerates a missing or malformed body: the request payload is
// entirely optional here.
func (h *Handler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	dto, err := h.service.Cancel(c.Request.Context(), id, req, middleware.Actor(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c)
			return
		}
		response.Internal(c, "Failed to cancel booking", err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to compute booking stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) RouteStats(c *gin.Context) {
	stats, err := h.service.RouteStats(
		c.Request.Context(),
		c.Query("period"),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period or date range"})
			return
		}
		response.Internal(c, "Failed to compute route stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func parseID(c *gin.Context) (int16, bool) {
	raw, err := strconv.ParseInt(c.Param("id"), 10, 16)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return 0, false
	}
	return int16(raw), true
}
