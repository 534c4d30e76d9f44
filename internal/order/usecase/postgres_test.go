//go:build integration

// Run with a disposable database:
//
//	TEST_DATABASE_DSN="host=localhost user=omnipos password=omnipos dbname=omnipos_test sslmode=disable" \
//	    go test -tags integration ./internal/order/usecase/
package usecase

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/database"
	invRepo "github.com/fekuna/omnipos-backoffice/internal/inventory/repository"
	invUC "github.com/fekuna/omnipos-backoffice/internal/inventory/usecase"
	"github.com/fekuna/omnipos-backoffice/internal/order"
	"github.com/fekuna/omnipos-backoffice/internal/order/dto"
	orderRepo "github.com/fekuna/omnipos-backoffice/internal/order/repository"
	"github.com/fekuna/omnipos-backoffice/migrations"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/fekuna/omnipos-backoffice/pkg/postgres"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pgFixture struct {
	db         *sqlx.DB
	uc         order.UseCase
	supplierID int64
	categoryID int64
	input      func(items ...dto.OrderItemInput) *dto.OrderInput
}

func newPGFixture(t *testing.T) *pgFixture {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := sqlx.Open("pgx", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(40)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, db.PingContext(ctx))
	require.NoError(t, postgres.ApplySchema(ctx, db, migrations.Init))

	log := logger.NewNop()
	inventory := invRepo.NewPGRepository(db)
	f := &pgFixture{
		db: db,
		uc: NewOrderUseCase(orderRepo.NewPGRepository(db), invUC.NewLedger(inventory, log), database.NewSQLTransactor(db), nil, nil, log),
	}

	run := uuid.NewString()
	f.supplierID = f.insert(t, `INSERT INTO suppliers (supplier_name, contact_person) VALUES ($1, 'Jane') RETURNING id`, "supplier-"+run)
	f.categoryID = f.insert(t, `INSERT INTO categories (category_name) VALUES ($1) RETURNING id`, "category-"+run)
	customerID := f.insert(t, `INSERT INTO customers (customer_name, email) VALUES ('Acme', $1) RETURNING id`, run+"@customer.test")
	employeeID := f.insert(t, `INSERT INTO employees (first_name, last_name, position, department, hire_date, email)
		VALUES ('John', 'Doe', 'Clerk', 'Sales', '2024-01-02', $1) RETURNING id`, run+"@employee.test")
	shipperID := f.insert(t, `INSERT INTO shippers (shipper_name) VALUES ($1) RETURNING id`, "shipper-"+run)

	f.input = func(items ...dto.OrderItemInput) *dto.OrderInput {
		return &dto.OrderInput{
			OrderDate:  "2025-03-27",
			CustomerID: customerID,
			EmployeeID: employeeID,
			ShipperID:  shipperID,
			Items:      items,
		}
	}
	return f
}

func (f *pgFixture) insert(t *testing.T, query string, args ...any) int64 {
	t.Helper()
	var id int64
	require.NoError(t, f.db.QueryRowx(query, args...).Scan(&id))
	return id
}

func (f *pgFixture) product(t *testing.T, price string, stock int) int64 {
	return f.insert(t, `INSERT INTO products (product_name, cost_price, selling_price, quantity_in_stock, supplier_id, category_id)
		VALUES ($1, $2, $2, $3, $4, $5) RETURNING id`, "product-"+uuid.NewString(), price, stock, f.supplierID, f.categoryID)
}

func (f *pgFixture) stock(t *testing.T, productID int64) int {
	t.Helper()
	var n int
	require.NoError(t, f.db.Get(&n, `SELECT quantity_in_stock FROM products WHERE id = $1`, productID))
	return n
}

func TestPostgresLockedProductDoesNotBlockOthers(t *testing.T) {
	f := newPGFixture(t)
	a := f.product(t, "1.00", 5)
	b := f.product(t, "1.00", 5)

	// Another transaction holds product a's row lock.
	holder, err := f.db.BeginTxx(context.Background(), nil)
	require.NoError(t, err)
	defer holder.Rollback()
	_, err = holder.Exec(`SELECT id FROM products WHERE id = $1 FOR UPDATE`, a)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = f.uc.CreateOrder(ctx, f.input(item(b, 2)))
	require.NoError(t, err, "order on an unlocked product must not wait")
	assert.Equal(t, 3, f.stock(t, b))

	done := make(chan error, 1)
	go func() {
		_, err := f.uc.CreateOrder(context.Background(), f.input(item(a, 2)))
		done <- err
	}()

	select {
	case err := <-done:
		t.Fatalf("order on a locked product finished early: %v", err)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, holder.Rollback())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("order did not resume after the lock was released")
	}
	assert.Equal(t, 3, f.stock(t, a))
}

func TestPostgresConcurrentOrdersNeverOversell(t *testing.T) {
	f := newPGFixture(t)
	p := f.product(t, "10.00", 5)
	q := f.product(t, "2.50", 50)

	const workers = 20
	errs := make([]error, workers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			// Alternate item order so lock ordering is exercised.
			items := []dto.OrderItemInput{item(p, 1), item(q, 1)}
			if i%2 == 1 {
				items[0], items[1] = items[1], items[0]
			}
			_, errs[i] = f.uc.CreateOrder(context.Background(), f.input(items...))
		}(i)
	}
	close(start)
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		var stock *apperror.InsufficientStockError
		switch {
		case err == nil:
			succeeded++
		case errors.As(err, &stock):
			assert.Equal(t, p, stock.ProductID)
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 5, succeeded)
	assert.Zero(t, f.stock(t, p))
	assert.Equal(t, 45, f.stock(t, q))

	var movements int
	require.NoError(t, f.db.Get(&movements, `SELECT count(*) FROM stock_movements WHERE product_id = $1`, p))
	assert.Equal(t, 5, movements)
}
