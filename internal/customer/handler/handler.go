package handler

import (
	"github.com/fekuna/omnipos-backoffice/internal/customer"
	"github.com/fekuna/omnipos-backoffice/internal/customer/dto"
	"github.com/fekuna/omnipos-backoffice/internal/httpapi"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/customers")
	g.GET("", h.ListCustomers)
	g.GET("/:id", h.GetCustomer)
	g.POST("", h.CreateCustomer)
	g.PUT("/:id", h.UpdateCustomer)
	g.DELETE("/:id", h.DeleteCustomer)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	page, pageSize := httpapi.Pagination(c)

	customers, total, err := h.uc.ListCustomers(c.Request.Context(), &dto.CustomerFilters{
		Search:       c.Query("search"),
		Status:       c.Query("status"),
		CustomerType: c.Query("customer_type"),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.List(c, "Customers retrieved successfully", customers, total, page, pageSize)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	cust, err := h.uc.GetCustomer(c.Request.Context(), id)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Customer retrieved successfully", cust)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var input dto.CustomerInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	cust, err := h.uc.CreateCustomer(c.Request.Context(), &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.Created(c, "Customer created successfully", cust)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}
	var input dto.CustomerInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	cust, err := h.uc.UpdateCustomer(c.Request.Context(), id, &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Customer updated successfully", cust)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteCustomer(c.Request.Context(), id); err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Customer deleted successfully", nil)
}
