package handler

import (
	"github.com/fekuna/omnipos-backoffice/internal/httpapi"
	"github.com/fekuna/omnipos-backoffice/internal/order"
	"github.com/fekuna/omnipos-backoffice/internal/order/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/orders")
	g.GET("", h.ListOrders)
	g.GET("/:id", h.GetOrder)
	g.POST("", h.CreateOrder)
	g.PUT("/:id", h.ReplaceOrder)
	g.PATCH("/:id/status", h.UpdateStatus)
	g.DELETE("/:id", h.DeleteOrder)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	customerID, ok := httpapi.QueryID(c, "customer_id")
	if !ok {
		return
	}
	page, pageSize := httpapi.Pagination(c)

	orders, total, err := h.uc.ListOrders(c.Request.Context(), &dto.OrderFilters{
		CustomerID: customerID,
		Status:     c.Query("status"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.List(c, "Orders retrieved successfully", orders, total, page, pageSize)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	res, err := h.uc.GetOrder(c.Request.Context(), id)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Order retrieved successfully", res)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input dto.OrderInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	res, err := h.uc.CreateOrder(c.Request.Context(), &input)
	if err != nil {
		h.logger.Debug("create order failed", zap.Error(err))
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.Created(c, "Order created successfully", res)
}

func (h *OrderHandler) ReplaceOrder(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	var input dto.OrderInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	res, err := h.uc.ReplaceOrder(c.Request.Context(), id, &input)
	if err != nil {
		h.logger.Debug("replace order failed", zap.Int64("order_id", id), zap.Error(err))
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Order updated successfully", res)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateStatusInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	res, err := h.uc.UpdateStatus(c.Request.Context(), id, &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Order status updated successfully", res)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteOrder(c.Request.Context(), id); err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Order deleted successfully", nil)
}
