package usecase

import (
	"context"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/order/dto"
)

func (uc *orderUseCase) GetOrder(ctx context.Context, id int64) (*dto.OrderResult, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperror.NotFound("order", id)
	}

	results, err := uc.compose(ctx, []model.Order{*o})
	if err != nil {
		return nil, err
	}
	return &results[0], nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, filters *dto.OrderFilters) ([]dto.OrderResult, int, error) {
	orders, total, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	results, err := uc.compose(ctx, orders)
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// compose loads the parties and lines of orders with one batch query per
// relation and assembles the results in input order.
func (uc *orderUseCase) compose(ctx context.Context, orders []model.Order) ([]dto.OrderResult, error) {
	results := make([]dto.OrderResult, 0, len(orders))
	if len(orders) == 0 {
		return results, nil
	}

	var orderIDs, customerIDs, employeeIDs, shipperIDs []int64
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
		customerIDs = append(customerIDs, o.CustomerID)
		employeeIDs = append(employeeIDs, o.EmployeeID)
		shipperIDs = append(shipperIDs, o.ShipperID)
	}

	details, err := uc.repo.FindDetailsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	customers, err := uc.repo.FindCustomersByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}
	employees, err := uc.repo.FindEmployeesByIDs(ctx, employeeIDs)
	if err != nil {
		return nil, err
	}
	shippers, err := uc.repo.FindShippersByIDs(ctx, shipperIDs)
	if err != nil {
		return nil, err
	}

	linesByOrder := make(map[int64][]model.OrderDetail, len(orders))
	for _, d := range details {
		linesByOrder[d.OrderID] = append(linesByOrder[d.OrderID], d)
	}
	customerByID := make(map[int64]*model.Customer, len(customers))
	for i := range customers {
		customerByID[customers[i].ID] = &customers[i]
	}
	employeeByID := make(map[int64]*model.Employee, len(employees))
	for i := range employees {
		employeeByID[employees[i].ID] = &employees[i]
	}
	shipperByID := make(map[int64]*model.Shipper, len(shippers))
	for i := range shippers {
		shipperByID[shippers[i].ID] = &shippers[i]
	}

	for i := range orders {
		o := &orders[i]
		p := &parties{
			customer: customerByID[o.CustomerID],
			employee: employeeByID[o.EmployeeID],
			shipper:  shipperByID[o.ShipperID],
		}
		results = append(results, *buildResult(o, p, linesByOrder[o.ID], nil))
	}
	return results, nil
}

func buildResult(o *model.Order, p *parties, lines []model.OrderDetail, changes []model.StockChange) *dto.OrderResult {
	if lines == nil {
		lines = []model.OrderDetail{}
	}

	res := &dto.OrderResult{
		Order: dto.OrderSummary{
			ID:          o.ID,
			OrderDate:   o.OrderDate.Format(dto.DateLayout),
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
		},
		Items:        lines,
		StockUpdates: changes,
		TotalPrice:   o.TotalAmount,
	}

	if c := p.customer; c != nil {
		res.Customer = &dto.CustomerSummary{ID: c.ID, Name: c.CustomerName, Contact: c.ContactName, Phone: c.Phone}
	}
	if e := p.employee; e != nil {
		res.Employee = &dto.EmployeeSummary{ID: e.ID, Name: e.FullName()}
	}
	if s := p.shipper; s != nil {
		res.Shipper = &dto.ShipperSummary{ID: s.ID, Name: s.ShipperName, Phone: s.Phone}
	}
	return res
}
