package handler

import (
	"github.com/fekuna/omnipos-backoffice/internal/httpapi"
	orderdto "github.com/fekuna/omnipos-backoffice/internal/order/dto"
	"github.com/fekuna/omnipos-backoffice/internal/orderdetail"
	"github.com/fekuna/omnipos-backoffice/internal/orderdetail/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
)

type OrderDetailHandler struct {
	uc     orderdetail.UseCase
	logger logger.ZapLogger
}

func NewOrderDetailHandler(uc orderdetail.UseCase, log logger.ZapLogger) *OrderDetailHandler {
	return &OrderDetailHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderDetailHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/order-details")
	g.GET("", h.ListDetails)
	g.GET("/:id", h.GetDetail)
	g.POST("", h.AddDetail)
	g.PUT("/:id", h.UpdateDetail)
	g.DELETE("/:id", h.DeleteDetail)
}

func (h *OrderDetailHandler) ListDetails(c *gin.Context) {
	orderID, ok := httpapi.QueryID(c, "order_id")
	if !ok {
		return
	}
	productID, ok := httpapi.QueryID(c, "product_id")
	if !ok {
		return
	}
	page, pageSize := httpapi.Pagination(c)

	details, total, err := h.uc.ListDetails(c.Request.Context(), &orderdto.DetailFilters{
		OrderID:   orderID,
		ProductID: productID,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.List(c, "Order details retrieved successfully", details, total, page, pageSize)
}

func (h *OrderDetailHandler) GetDetail(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	d, err := h.uc.GetDetail(c.Request.Context(), id)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Order detail retrieved successfully", d)
}

func (h *OrderDetailHandler) AddDetail(c *gin.Context) {
	var input dto.AddDetailInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	res, err := h.uc.AddDetail(c.Request.Context(), &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.Created(c, "Order detail created successfully", res)
}

func (h *OrderDetailHandler) UpdateDetail(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}
	var input dto.UpdateDetailInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	res, err := h.uc.UpdateDetail(c.Request.Context(), id, &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Order detail updated successfully", res)
}

func (h *OrderDetailHandler) DeleteDetail(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	res, err := h.uc.DeleteDetail(c.Request.Context(), id)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Order detail deleted successfully", res)
}
