package handler

import (
	"github.com/fekuna/omnipos-backoffice/internal/httpapi"
	"github.com/fekuna/omnipos-backoffice/internal/shipper"
	"github.com/fekuna/omnipos-backoffice/internal/shipper/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ShipperHandler struct {
	uc     shipper.UseCase
	logger logger.ZapLogger
}

func NewShipperHandler(uc shipper.UseCase, log logger.ZapLogger) *ShipperHandler {
	return &ShipperHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ShipperHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/shippers")
	g.GET("", h.ListShippers)
	g.GET("/:id", h.GetShipper)
	g.POST("", h.CreateShipper)
	g.PUT("/:id", h.UpdateShipper)
	g.DELETE("/:id", h.DeleteShipper)
}

func (h *ShipperHandler) ListShippers(c *gin.Context) {
	page, pageSize := httpapi.Pagination(c)

	shippers, total, err := h.uc.ListShippers(c.Request.Context(), &dto.ShipperFilters{
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.List(c, "Shippers retrieved successfully", shippers, total, page, pageSize)
}

func (h *ShipperHandler) GetShipper(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	s, err := h.uc.GetShipper(c.Request.Context(), id)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Shipper retrieved successfully", s)
}

func (h *ShipperHandler) CreateShipper(c *gin.Context) {
	var input dto.ShipperInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	s, err := h.uc.CreateShipper(c.Request.Context(), &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.Created(c, "Shipper created successfully", s)
}

func (h *ShipperHandler) UpdateShipper(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}
	var input dto.ShipperInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	s, err := h.uc.UpdateShipper(c.Request.Context(), id, &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Shipper updated successfully", s)
}

func (h *ShipperHandler) DeleteShipper(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteShipper(c.Request.Context(), id); err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Shipper deleted successfully", nil)
}
