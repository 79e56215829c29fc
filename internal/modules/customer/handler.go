package customer

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookingapi/internal/pkg/response"
	"bookingapi/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("/agreement-parties", h.AgreementParties)
		customers.GET("/shipper-parties", h.ShipperParties)
		customers.GET("/consignee-parties", h.ConsigneeParties)
	}
}

func (h *Handler) AgreementParties(c *gin.Context) {
	h.listParties(c, h.service.AgreementParties)
}

func (h *Handler) ShipperParties(c *gin.Context) {
	h.listParties(c, h.service.ShipperParties)
}

func (h *Handler) ConsigneeParties(c *gin.Context) {
	h.listParties(c, h.service.ConsigneeParties)
}

func (h *Handler) listParties(c *gin.Context, fetch func(context.Context) ([]repository.CustomerPartyRow, error)) {
	rows, err := fetch(c.Request.Context())
	if err != nil {
		response.InternalWithStack(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
