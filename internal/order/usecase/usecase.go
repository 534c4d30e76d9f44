package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/database"
	"github.com/fekuna/omnipos-backoffice/internal/inventory"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/internal/order"
	"github.com/fekuna/omnipos-backoffice/internal/order/dto"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// CacheInvalidator drops cached product listings once stock has changed.
type CacheInvalidator interface {
	InvalidateListCache(ctx context.Context)
}

type orderUseCase struct {
	repo      order.Repository
	ledger    inventory.Ledger
	tx        database.Transactor
	cache     CacheInvalidator
	publisher order.Publisher
	logger    logger.ZapLogger

	tracer    trace.Tracer
	committed metric.Int64Counter
	rejected  metric.Int64Counter
}

// NewOrderUseCase builds the order engine. cache and publisher may be nil.
func NewOrderUseCase(
	repo order.Repository,
	ledger inventory.Ledger,
	tx database.Transactor,
	cache CacheInvalidator,
	publisher order.Publisher,
	log logger.ZapLogger,
) order.UseCase {
	meter := otel.Meter("omnipos-backoffice/order")

	committed, err := meter.Int64Counter("orders.committed",
		metric.WithDescription("Order writes committed, by operation"))
	if err != nil {
		log.Warn("failed to create orders.committed counter", zap.Error(err))
		committed = noop.Int64Counter{}
	}
	rejected, err := meter.Int64Counter("orders.stock_rejections",
		metric.WithDescription("Order writes rejected for insufficient stock"))
	if err != nil {
		log.Warn("failed to create orders.stock_rejections counter", zap.Error(err))
		rejected = noop.Int64Counter{}
	}

	return &orderUseCase{
		repo:      repo,
		ledger:    ledger,
		tx:        tx,
		cache:     cache,
		publisher: publisher,
		logger:    log,
		tracer:    otel.Tracer("omnipos-backoffice/order"),
		committed: committed,
		rejected:  rejected,
	}
}

type parties struct {
	customer *model.Customer
	employee *model.Employee
	shipper  *model.Shipper
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.OrderInput) (*dto.OrderResult, error) {
	ctx, span := uc.tracer.Start(ctx, "order.create")
	defer span.End()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		o      *model.Order
		result *dto.OrderResult
	)
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := uc.lockParties(ctx, input)
		if err != nil {
			return err
		}

		if err := uc.ledger.Lock(ctx, itemProductIDs(input.Items)...); err != nil {
			return err
		}

		now := time.Now()
		o = &model.Order{
			BaseModel:   model.BaseModel{CreatedAt: now, UpdatedAt: now},
			OrderDate:   input.Date(),
			TotalAmount: decimal.Zero,
			Status:      model.OrderStatusProcessing,
			CustomerID:  input.CustomerID,
			EmployeeID:  input.EmployeeID,
			ShipperID:   input.ShipperID,
		}
		if err := uc.repo.Create(ctx, o); err != nil {
			return err
		}
		span.SetAttributes(attribute.Int64("order_id", o.ID))

		lines, changes, total, err := uc.reserveItems(ctx, o.ID, input.Items, now)
		if err != nil {
			return err
		}

		o.TotalAmount = total
		if err := uc.repo.Update(ctx, o); err != nil {
			return err
		}

		result = buildResult(o, p, lines, changes)
		return nil
	})
	if err != nil {
		uc.fail(ctx, span, "create", err)
		return nil, err
	}

	uc.logger.Info("order created",
		zap.Int64("order_id", o.ID),
		zap.String("total_amount", o.TotalAmount.StringFixed(2)),
		zap.Int("lines", len(result.Items)),
	)
	uc.afterCommit(ctx, order.EventOrderCreated, o, result.Items)

	return result, nil
}

// ReplaceOrder restores the stock of every existing line, drops the lines
// and processes the new items as a fresh order, all in one transaction.
func (uc *orderUseCase) ReplaceOrder(ctx context.Context, id int64, input *dto.OrderInput) (*dto.OrderResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return uc.replace(ctx, id, func(*model.Order, []model.OrderDetail) (*dto.OrderInput, error) {
		return input, nil
	})
}

// EditItems replaces the order with the item list edit derives from its
// current lines. The order stays locked from reading the lines to commit.
func (uc *orderUseCase) EditItems(ctx context.Context, id int64, edit order.ItemEditor) (*dto.OrderResult, error) {
	return uc.replace(ctx, id, func(o *model.Order, lines []model.OrderDetail) (*dto.OrderInput, error) {
		items, err := edit(lines)
		if err != nil {
			return nil, err
		}
		input := &dto.OrderInput{
			OrderDate:  o.OrderDate.Format(dto.DateLayout),
			CustomerID: o.CustomerID,
			EmployeeID: o.EmployeeID,
			ShipperID:  o.ShipperID,
			Items:      items,
		}
		if err := input.Validate(); err != nil {
			return nil, err
		}
		return input, nil
	})
}

func (uc *orderUseCase) replace(
	ctx context.Context,
	id int64,
	build func(o *model.Order, lines []model.OrderDetail) (*dto.OrderInput, error),
) (*dto.OrderResult, error) {
	ctx, span := uc.tracer.Start(ctx, "order.replace")
	defer span.End()
	span.SetAttributes(attribute.Int64("order_id", id))

	var (
		o      *model.Order
		result *dto.OrderResult
	)
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		o, err = uc.lockOrder(ctx, id)
		if err != nil {
			return err
		}
		if o.Status == model.OrderStatusCancelled {
			return apperror.BusinessRule("order %d is cancelled and cannot be modified", id)
		}

		existing, err := uc.repo.FindDetailsByOrderIDs(ctx, []int64{id})
		if err != nil {
			return err
		}

		input, err := build(o, existing)
		if err != nil {
			return err
		}

		p, err := uc.lockParties(ctx, input)
		if err != nil {
			return err
		}

		// Lock old and new products together so the release and reserve
		// phases share one ascending lock order.
		ids := append(lineProductIDs(existing), itemProductIDs(input.Items)...)
		if err := uc.ledger.Lock(ctx, ids...); err != nil {
			return err
		}

		if _, err := uc.releaseLines(ctx, id, existing, "order replaced"); err != nil {
			return err
		}
		if err := uc.repo.DeleteDetailsByOrderID(ctx, id); err != nil {
			return err
		}

		now := time.Now()
		o.OrderDate = input.Date()
		o.CustomerID = input.CustomerID
		o.EmployeeID = input.EmployeeID
		o.ShipperID = input.ShipperID

		lines, changes, total, err := uc.reserveItems(ctx, id, input.Items, now)
		if err != nil {
			return err
		}

		o.TotalAmount = total
		o.UpdatedAt = now
		if err := uc.repo.Update(ctx, o); err != nil {
			return err
		}

		result = buildResult(o, p, lines, changes)
		return nil
	})
	if err != nil {
		uc.fail(ctx, span, "replace", err)
		return nil, err
	}

	uc.logger.Info("order replaced",
		zap.Int64("order_id", id),
		zap.String("total_amount", o.TotalAmount.StringFixed(2)),
		zap.Int("lines", len(result.Items)),
	)
	uc.afterCommit(ctx, order.EventOrderReplaced, o, result.Items)

	return result, nil
}

// DeleteOrder removes the order and its lines. Reserved stock is not
// returned to inventory.
func (uc *orderUseCase) DeleteOrder(ctx context.Context, id int64) error {
	ctx, span := uc.tracer.Start(ctx, "order.delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("order_id", id))

	var (
		o     *model.Order
		lines []model.OrderDetail
	)
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		o, err = uc.lockOrder(ctx, id)
		if err != nil {
			return err
		}

		lines, err = uc.repo.FindDetailsByOrderIDs(ctx, []int64{id})
		if err != nil {
			return err
		}

		if err := uc.repo.DeleteDetailsByOrderID(ctx, id); err != nil {
			return err
		}
		return uc.repo.Delete(ctx, id)
	})
	if err != nil {
		uc.fail(ctx, span, "delete", err)
		return err
	}

	uc.logger.Info("order deleted", zap.Int64("order_id", id))
	uc.afterCommit(ctx, order.EventOrderDeleted, o, lines)

	return nil
}

// UpdateStatus changes the order status. Cancelling releases the stock of
// every line; a cancelled order is final.
func (uc *orderUseCase) UpdateStatus(ctx context.Context, id int64, input *dto.UpdateStatusInput) (*dto.OrderResult, error) {
	ctx, span := uc.tracer.Start(ctx, "order.update_status")
	defer span.End()
	span.SetAttributes(attribute.Int64("order_id", id), attribute.String("status", input.Status))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		o       *model.Order
		result  *dto.OrderResult
		changed bool
	)
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		o, err = uc.lockOrder(ctx, id)
		if err != nil {
			return err
		}

		var changes []model.StockChange
		if o.Status != input.Status {
			if o.Status == model.OrderStatusCancelled {
				return apperror.BusinessRule("order %d is cancelled and its status cannot change", id)
			}

			if input.Status == model.OrderStatusCancelled {
				lines, err := uc.repo.FindDetailsByOrderIDs(ctx, []int64{id})
				if err != nil {
					return err
				}
				if err := uc.ledger.Lock(ctx, lineProductIDs(lines)...); err != nil {
					return err
				}
				changes, err = uc.releaseLines(ctx, id, lines, "order cancelled")
				if err != nil {
					return err
				}
			}

			o.Status = input.Status
			o.UpdatedAt = time.Now()
			if err := uc.repo.Update(ctx, o); err != nil {
				return err
			}
			changed = true
		}

		results, err := uc.compose(ctx, []model.Order{*o})
		if err != nil {
			return err
		}
		result = &results[0]
		result.StockUpdates = changes
		return nil
	})
	if err != nil {
		uc.fail(ctx, span, "update_status", err)
		return nil, err
	}

	if changed {
		uc.logger.Info("order status changed", zap.Int64("order_id", id), zap.String("status", o.Status))
		uc.afterCommit(ctx, order.EventOrderStatusChanged, o, result.Items)
	}

	return result, nil
}

func (uc *orderUseCase) lockParties(ctx context.Context, input *dto.OrderInput) (*parties, error) {
	customer, err := uc.repo.LockCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NotFound("customer", input.CustomerID)
	}

	employee, err := uc.repo.LockEmployee(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NotFound("employee", input.EmployeeID)
	}

	shipper, err := uc.repo.LockShipper(ctx, input.ShipperID)
	if err != nil {
		return nil, err
	}
	if shipper == nil {
		return nil, apperror.NotFound("shipper", input.ShipperID)
	}

	return &parties{customer: customer, employee: employee, shipper: shipper}, nil
}

func (uc *orderUseCase) lockOrder(ctx context.Context, id int64) (*model.Order, error) {
	o, err := uc.repo.LockByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperror.NotFound("order", id)
	}
	return o, nil
}

// reserveItems processes items in ascending product id order: reserve the
// stock, snapshot the selling price (or keep the item's carried price) and
// insert the line.
func (uc *orderUseCase) reserveItems(ctx context.Context, orderID int64, items []dto.OrderItemInput, now time.Time) ([]model.OrderDetail, []model.StockChange, decimal.Decimal, error) {
	sorted := make([]dto.OrderItemInput, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	ref := inventory.Reference{Type: inventory.RefOrder, ID: &orderID}

	lines := make([]model.OrderDetail, 0, len(sorted))
	changes := make([]model.StockChange, 0, len(sorted))
	total := decimal.Zero

	for _, item := range sorted {
		res, err := uc.ledger.Reserve(ctx, item.ProductID, item.Quantity, ref)
		if err != nil {
			return nil, nil, decimal.Zero, err
		}

		price := res.Product.SellingPrice
		if item.Price != nil {
			price = *item.Price
		}
		subtotal := price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if total.Add(subtotal).GreaterThan(model.MaxAmount) {
			return nil, nil, decimal.Zero, apperror.BusinessRule("order total may not exceed %s", model.MaxAmount.StringFixed(2))
		}

		line := model.OrderDetail{
			BaseModel: model.BaseModel{CreatedAt: now, UpdatedAt: now},
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
			Subtotal:  subtotal,
		}
		if err := uc.repo.CreateDetail(ctx, &line); err != nil {
			return nil, nil, decimal.Zero, err
		}

		product := *res.Product
		line.Product = &product

		lines = append(lines, line)
		changes = append(changes, res.Change)
		total = total.Add(subtotal)
	}

	return lines, changes, total, nil
}

func (uc *orderUseCase) releaseLines(ctx context.Context, orderID int64, lines []model.OrderDetail, notes string) ([]model.StockChange, error) {
	sorted := make([]model.OrderDetail, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	ref := inventory.Reference{Type: inventory.RefOrder, ID: &orderID, Notes: notes}

	changes := make([]model.StockChange, 0, len(sorted))
	for _, line := range sorted {
		res, err := uc.ledger.Release(ctx, line.ProductID, line.Quantity, ref)
		if err != nil {
			return nil, err
		}
		changes = append(changes, res.Change)
	}
	return changes, nil
}

func (uc *orderUseCase) fail(ctx context.Context, span trace.Span, op string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	var stock *apperror.InsufficientStockError
	if errors.As(err, &stock) {
		uc.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
		uc.logger.Info("order rejected: insufficient stock",
			zap.String("operation", op),
			zap.Int64("product_id", stock.ProductID),
			zap.Int("available", stock.Available),
			zap.Int("requested", stock.Requested),
		)
	}
}

// afterCommit runs side effects that must only happen once the transaction
// is durable. Failures are logged, never returned.
func (uc *orderUseCase) afterCommit(ctx context.Context, eventType string, o *model.Order, lines []model.OrderDetail) {
	ctx = context.WithoutCancel(ctx)

	uc.committed.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", eventType)))

	if uc.cache != nil {
		uc.cache.InvalidateListCache(ctx)
	}

	if uc.publisher == nil {
		return
	}

	evt := order.Event{
		EventID:     uuid.New().String(),
		Type:        eventType,
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}
	for _, l := range lines {
		evt.Items = append(evt.Items, order.EventItem{ProductID: l.ProductID, Quantity: l.Quantity, Price: l.Price})
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		uc.logger.Error("failed to marshal order event", zap.String("type", eventType), zap.Error(err))
		return
	}
	if err := uc.publisher.Publish(ctx, strconv.FormatInt(o.ID, 10), payload); err != nil {
		uc.logger.Error("failed to publish order event",
			zap.String("type", eventType),
			zap.Int64("order_id", o.ID),
			zap.Error(err),
		)
	}
}

func itemProductIDs(items []dto.OrderItemInput) []int64 {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	return ids
}

func lineProductIDs(lines []model.OrderDetail) []int64 {
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}
