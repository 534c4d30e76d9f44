package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/order"
	"github.com/fekuna/omnipos-backoffice/internal/order/dto"
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

func (m *mockUseCase) CreateOrder(ctx context.Context, input *dto.OrderInput) (*dto.OrderResult, error) {
	args := m.Called(input)
	r, _ := args.Get(0).(*dto.OrderResult)
	return r, args.Error(1)
}

func (m *mockUseCase) ReplaceOrder(ctx context.Context, id int64, input *dto.OrderInput) (*dto.OrderResult, error) {
	args := m.Called(id, input)
	r, _ := args.Get(0).(*dto.OrderResult)
	return r, args.Error(1)
}

func (m *mockUseCase) EditItems(ctx context.Context, id int64, edit order.ItemEditor) (*dto.OrderResult, error) {
	args := m.Called(id)
	r, _ := args.Get(0).(*dto.OrderResult)
	return r, args.Error(1)
}

func (m *mockUseCase) DeleteOrder(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}

func (m *mockUseCase) UpdateStatus(ctx context.Context, id int64, input *dto.UpdateStatusInput) (*dto.OrderResult, error) {
	args := m.Called(id, input)
	r, _ := args.Get(0).(*dto.OrderResult)
	return r, args.Error(1)
}

func (m *mockUseCase) GetOrder(ctx context.Context, id int64) (*dto.OrderResult, error) {
	args := m.Called(id)
	r, _ := args.Get(0).(*dto.OrderResult)
	return r, args.Error(1)
}

func (m *mockUseCase) ListOrders(ctx context.Context, f *dto.OrderFilters) ([]dto.OrderResult, int, error) {
	args := m.Called(f)
	return args.Get(0).([]dto.OrderResult), args.Int(1), args.Error(2)
}

func newRouter(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewOrderHandler(uc, logger.NewNop()).RegisterRoutes(r.Group("/v1"))
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func sampleResult() *dto.OrderResult {
	return &dto.OrderResult{
		Order: dto.OrderSummary{ID: 7, OrderDate: "2024-03-01", TotalAmount: decimal.RequireFromString("20.00"), Status: model.OrderStatusPending},
		Items: []model.OrderDetail{{OrderID: 7, ProductID: 3, Quantity: 2, Price: decimal.RequireFromString("10.00"), Subtotal: decimal.RequireFromString("20.00")}},
		StockUpdates: []model.StockChange{
			{ProductID: 3, ProductName: "Widget", PreviousStock: 10, NewStock: 8, Difference: -2},
		},
		TotalPrice: decimal.RequireFromString("20.00"),
	}
}

func TestCreateOrder(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("CreateOrder", &dto.OrderInput{
		OrderDate:  "2024-03-01",
		CustomerID: 1,
		EmployeeID: 2,
		ShipperID:  3,
		Items:      []dto.OrderItemInput{{ProductID: 3, Quantity: 2}},
	}).Return(sampleResult(), nil)

	w, body := do(newRouter(uc), http.MethodPost, "/v1/orders",
		`{"order_date":"2024-03-01","customer_id":1,"employee_id":2,"shipper_id":3,"items":[{"product_id":3,"quantity":2}]}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Order created successfully", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "20", data["total_price"])
	updates := data["stock_updates"].([]any)
	require.Len(t, updates, 1)
	assert.EqualValues(t, -2, updates[0].(map[string]any)["difference"])
	uc.AssertExpectations(t)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("CreateOrder", mock.Anything).Return(nil, &apperror.InsufficientStockError{
		ProductID: 3, ProductName: "Widget", Available: 1, Requested: 2,
	})

	w, body := do(newRouter(uc), http.MethodPost, "/v1/orders",
		`{"order_date":"2024-03-01","customer_id":1,"employee_id":2,"shipper_id":3,"items":[{"product_id":3,"quantity":2}]}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "error", body["status"])
	detail := body["error"].(map[string]any)
	assert.EqualValues(t, 1, detail["available"])
	assert.EqualValues(t, 2, detail["requested"])
}

func TestCreateOrderMalformedBody(t *testing.T) {
	uc := new(mockUseCase)

	w, _ := do(newRouter(uc), http.MethodPost, "/v1/orders", `{"items":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "CreateOrder", mock.Anything)
}

func TestReplaceOrderNotFound(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("ReplaceOrder", int64(9), mock.Anything).Return(nil, apperror.NotFound("order", 9))

	w, body := do(newRouter(uc), http.MethodPut, "/v1/orders/9",
		`{"order_date":"2024-03-01","customer_id":1,"employee_id":2,"shipper_id":3,"items":[{"product_id":3,"quantity":1}]}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", body["status"])
}

func TestUpdateStatusCancelledOrder(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("UpdateStatus", int64(7), &dto.UpdateStatusInput{Status: "shipped"}).
		Return(nil, apperror.BusinessRule("order %d is cancelled", 7))

	w, body := do(newRouter(uc), http.MethodPatch, "/v1/orders/7/status", `{"status":"shipped"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "order 7 is cancelled", body["message"])
}

func TestListOrders(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("ListOrders", &dto.OrderFilters{CustomerID: 1, Status: "pending", Page: 2, PageSize: 5}).
		Return([]dto.OrderResult{*sampleResult()}, 6, nil)

	w, body := do(newRouter(uc), http.MethodGet, "/v1/orders?customer_id=1&status=pending&page=2&page_size=5", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 6, data["total"])
	assert.EqualValues(t, 2, data["page"])
	assert.Len(t, data["items"], 1)
}

func TestListOrdersBadCustomer(t *testing.T) {
	uc := new(mockUseCase)

	w, _ := do(newRouter(uc), http.MethodGet, "/v1/orders?customer_id=abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOrder(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("DeleteOrder", int64(7)).Return(nil)

	w, body := do(newRouter(uc), http.MethodDelete, "/v1/orders/7", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Order deleted successfully", body["message"])
	uc.AssertExpectations(t)
}
