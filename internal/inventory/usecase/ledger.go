package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/fekuna/omnipos-backoffice/internal/apperror"
	"github.com/fekuna/omnipos-backoffice/internal/inventory"
	"github.com/fekuna/omnipos-backoffice/internal/model"
	"github.com/fekuna/omnipos-backoffice/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type stockLedger struct {
	repo   inventory.Repository
	tracer trace.Tracer
	logger logger.ZapLogger
}

func NewLedger(repo inventory.Repository, log logger.ZapLogger) inventory.Ledger {
	return &stockLedger{
		repo:   repo,
		tracer: otel.Tracer("omnipos-backoffice/inventory"),
		logger: log,
	}
}

func (l *stockLedger) Lock(ctx context.Context, productIDs ...int64) error {
	ids := sortedUnique(productIDs)
	if len(ids) == 0 {
		return nil
	}
	return l.repo.LockProducts(ctx, ids)
}

func (l *stockLedger) Reserve(ctx context.Context, productID int64, quantity int, ref inventory.Reference) (*inventory.Reservation, error) {
	ctx, span := l.tracer.Start(ctx, "inventory.reserve")
	defer span.End()
	span.SetAttributes(attribute.Int64("product_id", productID), attribute.Int("quantity", quantity))

	if quantity <= 0 {
		return nil, apperror.Field("quantity", "must be at least 1")
	}

	p, err := l.lock(ctx, productID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	if p.QuantityInStock < quantity {
		err := &apperror.InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.ProductName,
			Available:   p.QuantityInStock,
			Requested:   quantity,
		}
		recordError(span, err)
		return nil, err
	}

	res, err := l.apply(ctx, p, -quantity, model.MovementReserve, ref)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return res, nil
}

func (l *stockLedger) Release(ctx context.Context, productID int64, quantity int, ref inventory.Reference) (*inventory.Reservation, error) {
	ctx, span := l.tracer.Start(ctx, "inventory.release")
	defer span.End()
	span.SetAttributes(attribute.Int64("product_id", productID), attribute.Int("quantity", quantity))

	if quantity <= 0 {
		return nil, apperror.Field("quantity", "must be at least 1")
	}

	p, err := l.lock(ctx, productID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	if p.QuantityInStock > model.MaxQuantity-quantity {
		err := apperror.BusinessRule("stock of product %s cannot exceed %d", p.ProductName, model.MaxQuantity)
		recordError(span, err)
		return nil, err
	}

	res, err := l.apply(ctx, p, quantity, model.MovementRelease, ref)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return res, nil
}

func (l *stockLedger) lock(ctx context.Context, productID int64) (*model.Product, error) {
	p, err := l.repo.LockProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("product", productID)
	}
	return p, nil
}

// apply writes the new stock level and its movement row.
func (l *stockLedger) apply(ctx context.Context, p *model.Product, delta int, movementType string, ref inventory.Reference) (*inventory.Reservation, error) {
	before := p.QuantityInStock
	after := before + delta
	if ref.Type == inventory.RefManualAdjustment {
		movementType = model.MovementAdjustment
	}

	if err := l.repo.SetStock(ctx, p.ID, after); err != nil {
		return nil, err
	}

	movement := &model.StockMovement{
		ProductID:      p.ID,
		MovementType:   movementType,
		QuantityChange: delta,
		QuantityBefore: before,
		QuantityAfter:  after,
		ReferenceID:    ref.ID,
		Notes:          ref.Notes,
		CreatedAt:      time.Now(),
	}
	if ref.Type != "" {
		refType := ref.Type
		movement.ReferenceType = &refType
	}
	if err := l.repo.LogMovement(ctx, movement); err != nil {
		return nil, err
	}

	l.logger.Debug("stock updated",
		zap.Int64("product_id", p.ID),
		zap.String("movement_type", movementType),
		zap.Int("quantity_before", before),
		zap.Int("quantity_after", after),
	)

	p.QuantityInStock = after
	return &inventory.Reservation{
		Product: p,
		Change: model.StockChange{
			ProductID:     p.ID,
			ProductName:   p.ProductName,
			PreviousStock: before,
			NewStock:      after,
			Difference:    delta,
		},
	}, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	var stock *apperror.InsufficientStockError
	if errors.As(err, &stock) {
		span.SetStatus(codes.Error, "insufficient stock")
		return
	}
	span.SetStatus(codes.Error, err.Error())
}

// sortedUnique returns ids in ascending order without duplicates.
func sortedUnique(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
