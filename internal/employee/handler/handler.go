package handler

import (
	"github.com/fekuna/omnipos-backoffice/internal/employee"
	"github.com/fekuna/omnipos-backoffice/internal/employee/dto"
	"github.com/fekuna/omnipos-backoffice/internal/httpapi"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	uc     employee.UseCase
	logger logger.ZapLogger
}

func NewEmployeeHandler(uc employee.UseCase, log logger.ZapLogger) *EmployeeHandler {
	return &EmployeeHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/employees")
	g.GET("", h.ListEmployees)
	g.GET("/:id", h.GetEmployee)
	g.POST("", h.CreateEmployee)
	g.PUT("/:id", h.UpdateEmployee)
	g.DELETE("/:id", h.DeleteEmployee)
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	page, pageSize := httpapi.Pagination(c)

	employees, total, err := h.uc.ListEmployees(c.Request.Context(), &dto.EmployeeFilters{
		Search:     c.Query("search"),
		Department: c.Query("department"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.List(c, "Employees retrieved successfully", employees, total, page, pageSize)
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	e, err := h.uc.GetEmployee(c.Request.Context(), id)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Employee retrieved successfully", e)
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var input dto.EmployeeInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	e, err := h.uc.CreateEmployee(c.Request.Context(), &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.Created(c, "Employee created successfully", e)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}
	var input dto.EmployeeInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	e, err := h.uc.UpdateEmployee(c.Request.Context(), id, &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Employee updated successfully", e)
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteEmployee(c.Request.Context(), id); err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Employee deleted successfully", nil)
}
