// Package memstore is an in-memory implementation of the order and
// inventory repositories with all-or-nothing transactions. A single store
// lock is held for the whole transaction, which serializes writers the way
// row locks on a shared product would.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	invdto "github.com/fekuna/omnipos-backoffice/internal/inventory/dto"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	orderdto "github.com/fekuna/omnipos-backoffice/internal/order/dto"
	"github.com/shopspring/decimal"
)

type txKey struct{}

type state struct {
	products  map[int64]model.Product
	customers map[int64]model.Customer
	employees map[int64]model.Employee
	shippers  map[int64]model.Shipper
	orders    map[int64]model.Order
	details   map[int64]model.OrderDetail
	movements []model.StockMovement
	nextID    int64
}

func (s *state) clone() *state {
	c := &state{
		products:  make(map[int64]model.Product, len(s.products)),
		customers: make(map[int64]model.Customer, len(s.customers)),
		employees: make(map[int64]model.Employee, len(s.employees)),
		shippers:  make(map[int64]model.Shipper, len(s.shippers)),
		orders:    make(map[int64]model.Order, len(s.orders)),
		details:   make(map[int64]model.OrderDetail, len(s.details)),
		movements: append([]model.StockMovement(nil), s.movements...),
		nextID:    s.nextID,
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.employees {
		c.employees[k] = v
	}
	for k, v := range s.shippers {
		c.shippers[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.details {
		c.details[k] = v
	}
	return c
}

type failure struct {
	after int
	err   error
}

type Store struct {
	mu       sync.Mutex
	st       *state
	failures map[string]*failure
}

func New() *Store {
	return &Store{
		st: &state{
			products:  map[int64]model.Product{},
			customers: map[int64]model.Customer{},
			employees: map[int64]model.Employee{},
			shippers:  map[int64]model.Shipper{},
			orders:    map[int64]model.Order{},
			details:   map[int64]model.OrderDetail{},
		},
		failures: map[string]*failure{},
	}
}

// WithinTransaction runs fn holding the store lock. State is restored to its
// snapshot when fn fails or panics.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	defer func() {
		if p := recover(); p != nil {
			s.st = snapshot
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// FailAfter makes the named repository method return err once it has
// succeeded n times.
func (s *Store) FailAfter(method string, n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = &failure{after: n, err: err}
}

func (s *Store) inject(method string) error {
	f, ok := s.failures[method]
	if !ok {
		return nil
	}
	if f.after > 0 {
		f.after--
		return nil
	}
	return f.err
}

func (s *Store) guard(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) id() int64 {
	s.st.nextID++
	return s.st.nextID
}

// Seeding and inspection helpers

func (s *Store) AddProduct(p model.Product) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	if p.Status == "" {
		p.Status = model.ProductStatusActive
	}
	s.st.products[p.ID] = p
	return p.ID
}

func (s *Store) AddCustomer(c model.Customer) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	s.st.customers[c.ID] = c
	return c.ID
}

func (s *Store) AddEmployee(e model.Employee) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.id()
	s.st.employees[e.ID] = e
	return e.ID
}

func (s *Store) AddShipper(sh model.Shipper) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh.ID = s.id()
	s.st.shippers[sh.ID] = sh
	return sh.ID
}

func (s *Store) SetSellingPrice(productID int64, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.st.products[productID]
	p.SellingPrice = price
	s.st.products[productID] = p
}

func (s *Store) RemoveCustomer(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.st.customers, id)
}

func (s *Store) Stock(productID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.products[productID].QuantityInStock
}

func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.orders)
}

func (s *Store) DetailCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.details)
}

func (s *Store) Movements() []model.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.StockMovement(nil), s.st.movements...)
}

// inventory.Repository

func (s *Store) LockProducts(ctx context.Context, ids []int64) error {
	defer s.guard(ctx)()
	return s.inject("LockProducts")
}

func (s *Store) LockProduct(ctx context.Context, id int64) (*model.Product, error) {
	defer s.guard(ctx)()
	if err := s.inject("LockProduct"); err != nil {
		return nil, err
	}
	p, ok := s.st.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) SetStock(ctx context.Context, productID int64, quantity int) error {
	defer s.guard(ctx)()
	if err := s.inject("SetStock"); err != nil {
		return err
	}
	if quantity < 0 {
		return apperror.Field("quantity_in_stock", "is invalid")
	}
	p, ok := s.st.products[productID]
	if !ok {
		return nil
	}
	p.QuantityInStock = quantity
	p.UpdatedAt = time.Now()
	s.st.products[productID] = p
	return nil
}

func (s *Store) LogMovement(ctx context.Context, m *model.StockMovement) error {
	defer s.guard(ctx)()
	if err := s.inject("LogMovement"); err != nil {
		return err
	}
	m.ID = s.id()
	s.st.movements = append(s.st.movements, *m)
	return nil
}

func (s *Store) ListMovements(ctx context.Context, f *invdto.MovementFilters) ([]model.StockMovement, int, error) {
	defer s.guard(ctx)()
	out := []model.StockMovement{}
	for i := len(s.st.movements) - 1; i >= 0; i-- {
		m := s.st.movements[i]
		if f.ProductID != 0 && m.ProductID != f.ProductID {
			continue
		}
		if f.MovementType != "" && m.MovementType != f.MovementType {
			continue
		}
		out = append(out, m)
	}
	return paginate(out, f.Page, f.PageSize), len(out), nil
}

func (s *Store) ListLowStock(ctx context.Context, f *invdto.LowStockFilters) ([]model.Product, int, error) {
	defer s.guard(ctx)()
	out := []model.Product{}
	for _, p := range s.st.products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].QuantityInStock != out[j].QuantityInStock {
			return out[i].QuantityInStock < out[j].QuantityInStock
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, f.Page, f.PageSize), len(out), nil
}

// order.Repository

func (s *Store) LockCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	defer s.guard(ctx)()
	if err := s.inject("LockCustomer"); err != nil {
		return nil, err
	}
	c, ok := s.st.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) LockEmployee(ctx context.Context, id int64) (*model.Employee, error) {
	defer s.guard(ctx)()
	e, ok := s.st.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *Store) LockShipper(ctx context.Context, id int64) (*model.Shipper, error) {
	defer s.guard(ctx)()
	sh, ok := s.st.shippers[id]
	if !ok {
		return nil, nil
	}
	return &sh, nil
}

func (s *Store) Create(ctx context.Context, o *model.Order) error {
	defer s.guard(ctx)()
	if err := s.inject("Create"); err != nil {
		return err
	}
	o.ID = s.id()
	s.st.orders[o.ID] = *o
	return nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	defer s.guard(ctx)()
	o, ok := s.st.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (s *Store) LockByID(ctx context.Context, id int64) (*model.Order, error) {
	return s.FindByID(ctx, id)
}

func (s *Store) FindAll(ctx context.Context, f *orderdto.OrderFilters) ([]model.Order, int, error) {
	defer s.guard(ctx)()
	out := []model.Order{}
	for _, o := range s.st.orders {
		if f.CustomerID != 0 && o.CustomerID != f.CustomerID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return paginate(out, f.Page, f.PageSize), len(out), nil
}

func (s *Store) Update(ctx context.Context, o *model.Order) error {
	defer s.guard(ctx)()
	if err := s.inject("Update"); err != nil {
		return err
	}
	if _, ok := s.st.orders[o.ID]; !ok {
		return nil
	}
	s.st.orders[o.ID] = *o
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	defer s.guard(ctx)()
	if err := s.inject("Delete"); err != nil {
		return err
	}
	delete(s.st.orders, id)
	for did, d := range s.st.details {
		if d.OrderID == id {
			delete(s.st.details, did)
		}
	}
	return nil
}

func (s *Store) CreateDetail(ctx context.Context, d *model.OrderDetail) error {
	defer s.guard(ctx)()
	if err := s.inject("CreateDetail"); err != nil {
		return err
	}
	if _, ok := s.st.orders[d.OrderID]; !ok {
		return apperror.Field("order_id", "does not exist")
	}
	if _, ok := s.st.products[d.ProductID]; !ok {
		return apperror.Field("product_id", "does not exist")
	}
	d.ID = s.id()
	stored := *d
	stored.Product = nil
	s.st.details[d.ID] = stored
	return nil
}

func (s *Store) FindDetailByID(ctx context.Context, id int64) (*model.OrderDetail, error) {
	defer s.guard(ctx)()
	d, ok := s.st.details[id]
	if !ok {
		return nil, nil
	}
	s.attach(&d)
	return &d, nil
}

func (s *Store) FindDetails(ctx context.Context, f *orderdto.DetailFilters) ([]model.OrderDetail, int, error) {
	defer s.guard(ctx)()
	out := []model.OrderDetail{}
	for _, d := range s.st.details {
		if f.OrderID != 0 && d.OrderID != f.OrderID {
			continue
		}
		if f.ProductID != 0 && d.ProductID != f.ProductID {
			continue
		}
		s.attach(&d)
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, f.Page, f.PageSize), len(out), nil
}

func (s *Store) FindDetailsByOrderIDs(ctx context.Context, orderIDs []int64) ([]model.OrderDetail, error) {
	defer s.guard(ctx)()
	wanted := make(map[int64]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	out := []model.OrderDetail{}
	for _, d := range s.st.details {
		if wanted[d.OrderID] {
			s.attach(&d)
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderID != out[j].OrderID {
			return out[i].OrderID < out[j].OrderID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) DeleteDetailsByOrderID(ctx context.Context, orderID int64) error {
	defer s.guard(ctx)()
	if err := s.inject("DeleteDetailsByOrderID"); err != nil {
		return err
	}
	for id, d := range s.st.details {
		if d.OrderID == orderID {
			delete(s.st.details, id)
		}
	}
	return nil
}

func (s *Store) FindCustomersByIDs(ctx context.Context, ids []int64) ([]model.Customer, error) {
	defer s.guard(ctx)()
	var out []model.Customer
	for _, id := range uniq(ids) {
		if c, ok := s.st.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) FindEmployeesByIDs(ctx context.Context, ids []int64) ([]model.Employee, error) {
	defer s.guard(ctx)()
	var out []model.Employee
	for _, id := range uniq(ids) {
		if e, ok := s.st.employees[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) FindShippersByIDs(ctx context.Context, ids []int64) ([]model.Shipper, error) {
	defer s.guard(ctx)()
	var out []model.Shipper
	for _, id := range uniq(ids) {
		if sh, ok := s.st.shippers[id]; ok {
			out = append(out, sh)
		}
	}
	return out, nil
}

func (s *Store) attach(d *model.OrderDetail) {
	if p, ok := s.st.products[d.ProductID]; ok {
		d.Product = &p
	}
}

func uniq(ids []int64) []int64 {
	seen := map[int64]bool{}
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
