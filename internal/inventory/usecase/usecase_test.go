package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/inventory"
	"github.com/fekuna/omnipos-backoffice/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/testutil/memstore"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) InvalidateListCache(ctx context.Context) {
	m.Called(ctx)
}

func seedProduct(store *memstore.Store, stock, minimum int) int64 {
	return store.AddProduct(model.Product{
		ProductName:       "Widget",
		SellingPrice:      decimal.RequireFromString("10.00"),
		QuantityInStock:   stock,
		MinimumStockLevel: minimum,
	})
}

func TestLedgerReserve(t *testing.T) {
	store := memstore.New()
	ledger := NewLedger(store, logger.NewNop())
	p := seedProduct(store, 5, 0)
	orderID := int64(77)

	var res *inventory.Reservation
	err := store.WithinTransaction(context.Background(), func(ctx context.Context) error {
		var err error
		res, err = ledger.Reserve(ctx, p, 3, inventory.Reference{Type: inventory.RefOrder, ID: &orderID})
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, model.StockChange{ProductID: p, ProductName: "Widget", PreviousStock: 5, NewStock: 2, Difference: -3}, res.Change)
	assert.Equal(t, 2, res.Product.QuantityInStock)
	assert.Equal(t, 2, store.Stock(p))

	movements := store.Movements()
	require.Len(t, movements, 1)
	m := movements[0]
	assert.Equal(t, model.MovementReserve, m.MovementType)
	assert.Equal(t, -3, m.QuantityChange)
	assert.Equal(t, 5, m.QuantityBefore)
	assert.Equal(t, 2, m.QuantityAfter)
	require.NotNil(t, m.ReferenceType)
	assert.Equal(t, inventory.RefOrder, *m.ReferenceType)
	assert.Equal(t, orderID, *m.ReferenceID)
}

func TestLedgerReserveFailures(t *testing.T) {
	store := memstore.New()
	ledger := NewLedger(store, logger.NewNop())
	p := seedProduct(store, 2, 0)

	tests := []struct {
		name      string
		productID int64
		quantity  int
		check     func(t *testing.T, err error)
	}{
		{
			name:      "insufficient stock",
			productID: p,
			quantity:  3,
			check: func(t *testing.T, err error) {
				var stock *apperror.InsufficientStockError
				require.True(t, errors.As(err, &stock))
				assert.Equal(t, 2, stock.Available)
				assert.Equal(t, 3, stock.Requested)
			},
		},
		{
			name:      "missing product",
			productID: 999,
			quantity:  1,
			check: func(t *testing.T, err error) {
				var nf *apperror.NotFoundError
				require.True(t, errors.As(err, &nf))
				assert.Equal(t, "product", nf.Resource)
			},
		},
		{
			name:      "non-positive quantity",
			productID: p,
			quantity:  0,
			check: func(t *testing.T, err error) {
				var verr *apperror.ValidationError
				require.True(t, errors.As(err, &verr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.WithinTransaction(context.Background(), func(ctx context.Context) error {
				_, err := ledger.Reserve(ctx, tt.productID, tt.quantity, inventory.Reference{})
				return err
			})
			tt.check(t, err)
			assert.Equal(t, 2, store.Stock(p))
			assert.Empty(t, store.Movements())
		})
	}
}

func TestLedgerReleaseHasNoUpperBound(t *testing.T) {
	store := memstore.New()
	ledger := NewLedger(store, logger.NewNop())
	p := seedProduct(store, 5, 0)

	err := store.WithinTransaction(context.Background(), func(ctx context.Context) error {
		res, err := ledger.Release(ctx, p, 1000, inventory.Reference{Type: inventory.RefOrder})
		if err != nil {
			return err
		}
		assert.Equal(t, 1000, res.Change.Difference)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1005, store.Stock(p))
	assert.Equal(t, model.MovementRelease, store.Movements()[0].MovementType)
}

func TestLedgerReleaseStopsAtStorageLimit(t *testing.T) {
	store := memstore.New()
	ledger := NewLedger(store, logger.NewNop())
	p := seedProduct(store, model.MaxQuantity-1, 0)

	err := store.WithinTransaction(context.Background(), func(ctx context.Context) error {
		_, err := ledger.Release(ctx, p, 2, inventory.Reference{Type: inventory.RefOrder})
		return err
	})

	var rule *apperror.BusinessRuleError
	require.ErrorAs(t, err, &rule)
	assert.Equal(t, model.MaxQuantity-1, store.Stock(p))
	assert.Empty(t, store.Movements())
}

func TestLedgerLockSortsAndDedupes(t *testing.T) {
	assert.Equal(t, []int64{1, 3, 9}, sortedUnique([]int64{9, 3, 1, 3, 9}))
	assert.Empty(t, sortedUnique(nil))
}

func TestAdjustStock(t *testing.T) {
	store := memstore.New()
	log := logger.NewNop()

	tests := []struct {
		name       string
		change     int
		wantStock  int
		wantErr    any
		invalidate bool
	}{
		{name: "increase", change: 4, wantStock: 9, invalidate: true},
		{name: "decrease", change: -5, wantStock: 0, invalidate: true},
		{name: "decrease below zero", change: -6, wantStock: 5, wantErr: &apperror.InsufficientStockError{}},
		{name: "zero", change: 0, wantStock: 5, wantErr: &apperror.ValidationError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := seedProduct(store, 5, 0)
			cache := &mockCache{}
			if tt.invalidate {
				cache.On("InvalidateListCache", mock.Anything).Return().Once()
			}
			uc := NewInventoryUseCase(store, NewLedger(store, log), store, cache, log)

			change, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
				ProductID:      p,
				QuantityChange: tt.change,
				Reason:         "cycle count",
			})

			switch want := tt.wantErr.(type) {
			case *apperror.InsufficientStockError:
				assert.True(t, errors.As(err, &want))
			case *apperror.ValidationError:
				assert.True(t, errors.As(err, &want))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantStock, change.NewStock)
			}
			assert.Equal(t, tt.wantStock, store.Stock(p))
			cache.AssertExpectations(t)
		})
	}
}

func TestAdjustStockRecordsAdjustmentMovement(t *testing.T) {
	store := memstore.New()
	log := logger.NewNop()
	p := seedProduct(store, 5, 0)
	uc := NewInventoryUseCase(store, NewLedger(store, log), store, nil, log)

	_, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{ProductID: p, QuantityChange: -2, Reason: "damaged"})
	require.NoError(t, err)

	movements, total, err := uc.ListMovements(context.Background(), &dto.MovementFilters{ProductID: p, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, model.MovementAdjustment, movements[0].MovementType)
	assert.Equal(t, "damaged", movements[0].Notes)
}

func TestAdjustStockReportsQuantityChange(t *testing.T) {
	store := memstore.New()
	log := logger.NewNop()
	p := seedProduct(store, 5, 0)
	uc := NewInventoryUseCase(store, NewLedger(store, log), store, nil, log)

	for _, change := range []int{0, model.MaxQuantity + 1, -model.MaxQuantity - 1} {
		_, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{ProductID: p, QuantityChange: change, Reason: "recount"})

		var verr *apperror.ValidationError
		require.ErrorAs(t, err, &verr, "change %d", change)
		assert.Equal(t, "quantity_change", verr.Fields[0].Field)
	}
	assert.Equal(t, 5, store.Stock(p))
}

func TestAdjustStockBeyondStorageLimit(t *testing.T) {
	store := memstore.New()
	log := logger.NewNop()
	p := seedProduct(store, model.MaxQuantity-10, 0)
	uc := NewInventoryUseCase(store, NewLedger(store, log), store, nil, log)

	_, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{ProductID: p, QuantityChange: 11, Reason: "delivery"})

	var rule *apperror.BusinessRuleError
	require.ErrorAs(t, err, &rule)
	assert.Equal(t, model.MaxQuantity-10, store.Stock(p))
}

func TestListLowStock(t *testing.T) {
	store := memstore.New()
	log := logger.NewNop()
	low := seedProduct(store, 2, 5)
	seedProduct(store, 10, 5)
	edge := seedProduct(store, 5, 5)
	uc := NewInventoryUseCase(store, NewLedger(store, log), store, nil, log)

	items, total, err := uc.ListLowStock(context.Background(), &dto.LowStockFilters{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, low, items[0].ID)
	assert.Equal(t, edge, items[1].ID)
}
