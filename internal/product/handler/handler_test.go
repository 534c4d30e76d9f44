package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/product/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error) {
	args := m.Called(input)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockUseCase) ListProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	args := m.Called(f)
	return args.Get(0).([]model.Product), args.Int(1), args.Error(2)
}

func (m *mockUseCase) UpdateProduct(ctx context.Context, id int64, input *dto.ProductInput) (*model.Product, error) {
	args := m.Called(id, input)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}

func (m *mockUseCase) InvalidateListCache(ctx context.Context) {
	m.Called()
}

func newRouter(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewProductHandler(uc, logger.NewNop()).RegisterRoutes(r.Group("/v1"))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListProductsFilters(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("ListProducts", &dto.ProductFilters{
		CategoryID: 3,
		SupplierID: 4,
		Status:     "active",
		SortBy:     dto.SortPrice,
		SortOrder:  "asc",
		Page:       1,
		PageSize:   10,
	}).Return([]model.Product{}, 0, nil)

	w := do(newRouter(uc), http.MethodGet, "/v1/products?category_id=3&supplier_id=4&status=active&sort=price&order=asc", "")

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestListProductsRejectsBadQuery(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"unknown sort", "/v1/products?sort=stock"},
		{"non numeric category", "/v1/products?category_id=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			w := do(newRouter(uc), http.MethodGet, tt.path, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			uc.AssertNotCalled(t, "ListProducts", mock.Anything)
		})
	}
}

func TestCreateProductAcceptsStringAndNumberPrices(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("CreateProduct", mock.MatchedBy(func(in *dto.ProductInput) bool {
		return in.CostPrice.Equal(decimal.RequireFromString("12.5")) && in.SellingPrice.Equal(decimal.RequireFromString("18"))
	})).Return(&model.Product{
		BaseModel:    model.BaseModel{ID: 9},
		ProductName:  "Chai",
		SellingPrice: decimal.RequireFromString("18.00"),
	}, nil)

	body := `{"product_name":"Chai","cost_price":12.5,"selling_price":"18","supplier_id":1,"category_id":1}`
	w := do(newRouter(uc), http.MethodPost, "/v1/products", body)

	require.Equal(t, http.StatusCreated, w.Code)
	var out struct {
		Data struct {
			ID           int64  `json:"id"`
			SellingPrice string `json:"selling_price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, int64(9), out.Data.ID)
	assert.Equal(t, "18", out.Data.SellingPrice)
}
