package handler

import (
	"strconv"

	"github.com/fekuna/omnipos-backoffice/internal/httpapi"
	"github.com/fekuna/omnipos-backoffice/internal/supplier"
	"github.com/fekuna/omnipos-backoffice/internal/supplier/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	uc     supplier.UseCase
	logger logger.ZapLogger
}

func NewSupplierHandler(uc supplier.UseCase, log logger.ZapLogger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SupplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/suppliers")
	g.GET("", h.ListSuppliers)
	g.GET("/:id", h.GetSupplier)
	g.POST("", h.CreateSupplier)
	g.PUT("/:id", h.UpdateSupplier)
	g.DELETE("/:id", h.DeleteSupplier)
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	page, pageSize := httpapi.Pagination(c)
	filters := &dto.SupplierFilters{
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			httpapi.BadRequest(c, "invalid active")
			return
		}
		filters.Active = &active
	}

	suppliers, total, err := h.uc.ListSuppliers(c.Request.Context(), filters)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.List(c, "Suppliers retrieved successfully", suppliers, total, page, pageSize)
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	s, err := h.uc.GetSupplier(c.Request.Context(), id)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Supplier retrieved successfully", s)
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var input dto.SupplierInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	s, err := h.uc.CreateSupplier(c.Request.Context(), &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.Created(c, "Supplier created successfully", s)
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}
	var input dto.SupplierInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	s, err := h.uc.UpdateSupplier(c.Request.Context(), id, &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Supplier updated successfully", s)
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteSupplier(c.Request.Context(), id); err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Supplier deleted successfully", nil)
}
