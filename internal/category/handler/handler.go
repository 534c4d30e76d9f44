package handler

import (
	"github.com/fekuna/omnipos-backoffice/internal/category"
	"github.com/fekuna/omnipos-backoffice/internal/category/dto"
	"github.com/fekuna/omnipos-backoffice/internal/httpapi"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/categories")
	g.GET("", h.ListCategories)
	g.GET("/:id", h.GetCategory)
	g.POST("", h.CreateCategory)
	g.PUT("/:id", h.UpdateCategory)
	g.DELETE("/:id", h.DeleteCategory)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	page, pageSize := httpapi.Pagination(c)

	cats, total, err := h.uc.ListCategories(c.Request.Context(), &dto.CategoryFilters{
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.List(c, "Categories retrieved successfully", cats, total, page, pageSize)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	cat, err := h.uc.GetCategory(c.Request.Context(), id)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Category retrieved successfully", cat)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input dto.CategoryInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.Created(c, "Category created successfully", cat)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}
	var input dto.CategoryInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	cat, err := h.uc.UpdateCategory(c.Request.Context(), id, &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Category updated successfully", cat)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteCategory(c.Request.Context(), id); err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Category deleted successfully", nil)
}
