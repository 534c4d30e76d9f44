package handler

import (
	"github.com/fekuna/omnipos-backoffice/internal/httpapi"
	"github.com/fekuna/omnipos-backoffice/internal/inventory"
	"github.com/fekuna/omnipos-backoffice/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/inventory")
	g.GET("/low-stock", h.ListLowStock)
	g.GET("/movements", h.ListMovements)
	g.POST("/adjustments", h.AdjustStock)
}

func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	page, pageSize := httpapi.Pagination(c)

	items, total, err := h.uc.ListLowStock(c.Request.Context(), &dto.LowStockFilters{Page: page, PageSize: pageSize})
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.List(c, "Low stock products retrieved successfully", items, total, page, pageSize)
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	productID, ok := httpapi.QueryID(c, "product_id")
	if !ok {
		return
	}
	page, pageSize := httpapi.Pagination(c)

	items, total, err := h.uc.ListMovements(c.Request.Context(), &dto.MovementFilters{
		ProductID:    productID,
		MovementType: c.Query("movement_type"),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.List(c, "Stock movements retrieved successfully", items, total, page, pageSize)
}

func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var input dto.AdjustStockInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	change, err := h.uc.AdjustStock(c.Request.Context(), &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.Created(c, "Stock adjusted successfully", change)
}
