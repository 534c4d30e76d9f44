package handler

import (
	"github.com/fekuna/omnipos-backoffice/internal/httpapi"
	"github.com/fekuna/omnipos-backoffice/internal/product"
	"github.com/fekuna/omnipos-backoffice/internal/product/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/products")
	g.GET("", h.ListProducts)
	g.GET("/:id", h.GetProduct)
	g.POST("", h.CreateProduct)
	g.PUT("/:id", h.UpdateProduct)
	g.DELETE("/:id", h.DeleteProduct)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	categoryID, ok := httpapi.QueryID(c, "category_id")
	if !ok {
		return
	}
	supplierID, ok := httpapi.QueryID(c, "supplier_id")
	if !ok {
		return
	}
	sortBy := c.DefaultQuery("sort", dto.SortCreatedAt)
	switch sortBy {
	case dto.SortName, dto.SortPrice, dto.SortCreatedAt:
	default:
		httpapi.BadRequest(c, "invalid sort: must be one of name, price, created_at")
		return
	}
	page, pageSize := httpapi.Pagination(c)

	products, total, err := h.uc.ListProducts(c.Request.Context(), &dto.ProductFilters{
		Search:     c.Query("search"),
		CategoryID: categoryID,
		SupplierID: supplierID,
		Status:     c.Query("status"),
		SortBy:     sortBy,
		SortOrder:  c.DefaultQuery("order", "desc"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.List(c, "Products retrieved successfully", products, total, page, pageSize)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	p, err := h.uc.GetProduct(c.Request.Context(), id)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Product retrieved successfully", p)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input dto.ProductInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.Created(c, "Product created successfully", p)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}
	var input dto.ProductInput
	if !httpapi.BindJSON(c, &input) {
		return
	}

	p, err := h.uc.UpdateProduct(c.Request.Context(), id, &input)
	if err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Product updated successfully", p)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := httpapi.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteProduct(c.Request.Context(), id); err != nil {
		httpapi.Fail(c, h.logger, err)
		return
	}

	httpapi.OK(c, "Product deleted successfully", nil)
}
