package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	invUC "github.com/fekuna/omnipos-backoffice/internal/inventory/usecase"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	orderdto "github.com/fekuna/omnipos-backoffice/internal/order/dto"
	orderUC "github.com/fekuna/omnipos-backoffice/internal/order/usecase"
	"github.com/fekuna/omnipos-backoffice/internal/orderdetail"
	"github.com/fekuna/omnipos-backoffice/internal/orderdetail/dto"
	"github.com/fekuna/omnipos-backoffice/internal/testutil/memstore"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   *memstore.Store
	uc      orderdetail.UseCase
	orderID int64
	widget  int64
	gadget  int64
}

// newFixture seeds one order holding 2 widgets at 10.00.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	log := logger.NewNop()
	orders := orderUC.NewOrderUseCase(store, invUC.NewLedger(store, log), store, nil, nil, log)

	f := &fixture{
		store: store,
		uc:    NewOrderDetailUseCase(store, orders, log),
	}
	f.widget = store.AddProduct(model.Product{ProductName: "Widget", SellingPrice: decimal.RequireFromString("10.00"), QuantityInStock: 10})
	f.gadget = store.AddProduct(model.Product{ProductName: "Gadget", SellingPrice: decimal.RequireFromString("4.50"), QuantityInStock: 10})

	res, err := orders.CreateOrder(context.Background(), &orderdto.OrderInput{
		OrderDate:  "2025-03-27",
		CustomerID: store.AddCustomer(model.Customer{CustomerName: "Acme", Email: "acme@example.com"}),
		EmployeeID: store.AddEmployee(model.Employee{FirstName: "John", LastName: "Doe", Email: "john@example.com"}),
		ShipperID:  store.AddShipper(model.Shipper{ShipperName: "FastShip"}),
		Items:      []orderdto.OrderItemInput{{ProductID: f.widget, Quantity: 2}},
	})
	require.NoError(t, err)
	f.orderID = res.Order.ID
	return f
}

func (f *fixture) lines(t *testing.T) []model.OrderDetail {
	t.Helper()
	lines, _, err := f.uc.ListDetails(context.Background(), &orderdto.DetailFilters{OrderID: f.orderID})
	require.NoError(t, err)
	return lines
}

func (f *fixture) lineOf(t *testing.T, productID int64) int64 {
	t.Helper()
	for _, l := range f.lines(t) {
		if l.ProductID == productID {
			return l.ID
		}
	}
	t.Fatalf("no line for product %d", productID)
	return 0
}

func TestAddDetail(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.AddDetail(context.Background(), &dto.AddDetailInput{OrderID: f.orderID, ProductID: f.gadget, Quantity: 2})
	require.NoError(t, err)

	assert.Len(t, res.Items, 2)
	assert.Equal(t, "29.00", res.TotalPrice.StringFixed(2))
	assert.Equal(t, 8, f.store.Stock(f.widget))
	assert.Equal(t, 8, f.store.Stock(f.gadget))
	assert.Len(t, f.lines(t), 2)
}

func TestAddDetailInsufficientStockKeepsOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.AddDetail(context.Background(), &dto.AddDetailInput{OrderID: f.orderID, ProductID: f.gadget, Quantity: 11})

	var stock *apperror.InsufficientStockError
	require.ErrorAs(t, err, &stock)
	assert.Equal(t, 8, f.store.Stock(f.widget))
	assert.Equal(t, 10, f.store.Stock(f.gadget))
	assert.Len(t, f.lines(t), 1)
}

func TestAddDetailUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.AddDetail(context.Background(), &dto.AddDetailInput{OrderID: 999, ProductID: f.gadget, Quantity: 1})

	var nf *apperror.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "order", nf.Resource)
}

func TestUpdateDetail(t *testing.T) {
	f := newFixture(t)
	line := f.lines(t)[0]

	res, err := f.uc.UpdateDetail(context.Background(), line.ID, &dto.UpdateDetailInput{ProductID: f.widget, Quantity: 5})
	require.NoError(t, err)

	assert.Equal(t, "50.00", res.TotalPrice.StringFixed(2))
	assert.Equal(t, 5, f.store.Stock(f.widget))
	require.Len(t, res.Items, 1)
	assert.Equal(t, 5, res.Items[0].Quantity)
}

func TestUpdateDetailSwapsProduct(t *testing.T) {
	f := newFixture(t)
	line := f.lines(t)[0]

	_, err := f.uc.UpdateDetail(context.Background(), line.ID, &dto.UpdateDetailInput{ProductID: f.gadget, Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, 10, f.store.Stock(f.widget))
	assert.Equal(t, 9, f.store.Stock(f.gadget))
}

func TestDeleteDetail(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.AddDetail(context.Background(), &dto.AddDetailInput{OrderID: f.orderID, ProductID: f.gadget, Quantity: 2})
	require.NoError(t, err)

	var gadgetLine int64
	for _, l := range f.lines(t) {
		if l.ProductID == f.gadget {
			gadgetLine = l.ID
		}
	}
	require.NotZero(t, gadgetLine)

	res, err := f.uc.DeleteDetail(context.Background(), gadgetLine)
	require.NoError(t, err)

	assert.Equal(t, "20.00", res.TotalPrice.StringFixed(2))
	assert.Equal(t, 10, f.store.Stock(f.gadget))
	assert.Equal(t, 8, f.store.Stock(f.widget))
}

func TestEditKeepsUntouchedLinePrices(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.AddDetail(context.Background(), &dto.AddDetailInput{OrderID: f.orderID, ProductID: f.gadget, Quantity: 2})
	require.NoError(t, err)

	f.store.SetSellingPrice(f.widget, decimal.RequireFromString("12.00"))
	f.store.SetSellingPrice(f.gadget, decimal.RequireFromString("5.00"))

	gadgetLine := f.lineOf(t, f.gadget)

	res, err := f.uc.UpdateDetail(context.Background(), gadgetLine, &dto.UpdateDetailInput{ProductID: f.gadget, Quantity: 3})
	require.NoError(t, err)

	prices := map[int64]string{}
	for _, l := range res.Items {
		prices[l.ProductID] = l.Price.StringFixed(2)
	}
	assert.Equal(t, "10.00", prices[f.widget])
	assert.Equal(t, "5.00", prices[f.gadget])
	assert.Equal(t, "35.00", res.TotalPrice.StringFixed(2))

	// Replacing recreates the lines, so look the id up again.
	res, err = f.uc.DeleteDetail(context.Background(), f.lineOf(t, f.gadget))
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "10.00", res.Items[0].Price.StringFixed(2))
	assert.Equal(t, "20.00", res.TotalPrice.StringFixed(2))
}

func TestDeleteLastDetailIsRejected(t *testing.T) {
	f := newFixture(t)
	line := f.lines(t)[0]

	_, err := f.uc.DeleteDetail(context.Background(), line.ID)

	var rule *apperror.BusinessRuleError
	require.ErrorAs(t, err, &rule)
	assert.Equal(t, 8, f.store.Stock(f.widget))
	assert.Len(t, f.lines(t), 1)
}

func TestGetDetailNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.GetDetail(context.Background(), 12345)

	var nf *apperror.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "order detail", nf.Resource)
}

func TestDetailInputValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.AddDetail(context.Background(), &dto.AddDetailInput{OrderID: f.orderID, ProductID: f.gadget})

	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quantity", verr.Fields[0].Field)
}
