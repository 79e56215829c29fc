package reference

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookingapi/internal/pkg/response"
	"bookingapi/internal/repository"
)

// Handler serves the lookup-table reads backing the booking forms. These
// are thin enough that they go straight to the repository.
type Handler struct {
	refs *repository.ReferenceRepository
}

func NewHandler(refs *repository.ReferenceRepository) *Handler {
	return &Handler{refs: refs}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/locations", h.ListLocations)
	rg.GET("/locations/:id", h.GetLocation)
	rg.GET("/vessels", h.ListVessels)
	rg.GET("/vessels/:id", h.GetVessel)
	rg.GET("/equipment", h.ListEquipment)
	rg.GET("/equipment/:id", h.GetEquipment)
	rg.GET("/commodities", h.ListCommodities)
	rg.GET("/commodities/:id", h.GetCommodity)
	rg.GET("/payment-modes", h.ListPaymentModes)
	rg.GET("/payment-modes/:id", h.GetPaymentMode)
	rg.GET("/transport-services", h.ListTransportServices)
	rg.GET("/transport-services/:id", h.GetTransportService)
	rg.GET("/containers", h.ListContainers)
	rg.GET("/containers/:id", h.GetContainer)
	rg.GET("/user-types", h.ListUserTypes)
	rg.GET("/user-types/:id", h.GetUserType)
}

func (h *Handler) ListLocations(c *gin.Context) {
	rows, err := h.refs.GetLocations(c.Request.Context())
	writeList(c, "locations", rows, err)
}

func (h *Handler) GetLocation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	row, err := h.refs.GetLocationByID(c.Request.Context(), id)
	writeOne(c, "location", row, err)
}

func (h *Handler) ListVessels(c *gin.Context) {
	rows, err := h.refs.GetVessels(c.Request.Context())
	writeList(c, "vessels", rows, err)
}

func (h *Handler) GetVessel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	row, err := h.refs.GetVesselByID(c.Request.Context(), id)
	writeOne(c, "vessel", row, err)
}

func (h *Handler) ListEquipment(c *gin.Context) {
	rows, err := h.refs.GetEquipment(c.Request.Context())
	writeList(c, "equipment", rows, err)
}

func (h *Handler) GetEquipment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	row, err := h.refs.GetEquipmentByID(c.Request.Context(), id)
	writeOne(c, "equipment", row, err)
}

func (h *Handler) ListCommodities(c *gin.Context) {
	rows, err := h.refs.GetCommodities(c.Request.Context())
	writeList(c, "commodities", rows, err)
}

func (h *Handler) GetCommodity(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	row, err := h.refs.GetCommodityByID(c.Request.Context(), id)
	writeOne(c, "commodity", row, err)
}

func (h *Handler) ListPaymentModes(c *gin.Context) {
	rows, err := h.refs.GetPaymentModes(c.Request.Context())
	writeList(c, "payment modes", rows, err)
}

func (h *Handler) GetPaymentMode(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	row, err := h.refs.GetPaymentModeByID(c.Request.Context(), id)
	writeOne(c, "payment mode", row, err)
}

func (h *Handler) ListTransportServices(c *gin.Context) {
	rows, err := h.refs.GetTransportServices(c.Request.Context())
	writeList(c, "transport services", rows, err)
}

func (h *Handler) GetTransportService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	row, err := h.refs.GetTransportServiceByID(c.Request.Context(), id)
	writeOne(c, "transport service", row, err)
}

func (h *Handler) ListContainers(c *gin.Context) {
	rows, err := h.refs.GetContainers(c.Request.Context())
	writeList(c, "containers", rows, err)
}

func (h *Handler) GetContainer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	row, err := h.refs.GetContainerByID(c.Request.Context(), id)
	writeOne(c, "container", row, err)
}

func (h *Handler) ListUserTypes(c *gin.Context) {
	rows, err := h.refs.GetUserTypes(c.Request.Context())
	writeList(c, "user types", rows, err)
}

func (h *Handler) GetUserType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	row, err := h.refs.GetUserTypeByID(c.Request.Context(), id)
	writeOne(c, "user type", row, err)
}

func paramID(c *gin.Context) (int16, bool) {
	raw, err := strconv.ParseInt(c.Param("id"), 10, 16)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return int16(raw), true
}

func writeList[T any](c *gin.Context, label string, rows []T, err error) {
	if err != nil {
		response.Internal(c, "Failed to retrieve "+label, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func writeOne[T any](c *gin.Context, label string, row *T, err error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.Internal(c, "Failed to retrieve "+label, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
