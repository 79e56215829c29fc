package schedule

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookingapi/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vessel-schedules", h.List)
}

func (h *Handler) List(c *gin.Context) {
	origin, ok := queryInt16(c, "originLocationId")
	if !ok {
		return
	}
	destination, ok := queryInt16(c, "destinationLocationId")
	if !ok {
		return
	}
	vessel, ok := queryInt16(c, "vesselId")
	if !ok {
		return
	}

	rows, err := h.service.List(c.Request.Context(), origin, destination, vessel)
	if err != nil {
		response.Internal(c, "Failed to retrieve vessel schedules", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func queryInt16(c *gin.Context, name string) (*int16, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 16)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	id := int16(v)
	return &id, true
}
