package commands

import (
	"context"
	"log/slog"

	"resqcart/internal/domain/product"
	"resqcart/internal/domain/rescue"
	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/infra"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "resqcart/usecase/commands"

type CascadeResult struct {
	Counts                 rescue.Counts
	TotalProductsProcessed int
	TotalProductsRescued   int
	RequestsCreated        int
}

type CascadeCommands interface {
	Run(ctx context.Context, req reqdto.RunCascadeRequest) (*CascadeResult, error)
}

type cascadeCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier RescueNotifier
	clock    clock.Clock
	tracer   trace.Tracer
}

func NewCascadeCommands(uow shared.UnitOfWork, notifier RescueNotifier, clk clock.Clock) CascadeCommands {
	return &cascadeCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		tracer:   otel.Tracer(tracerName),
	}
}

// Run sweeps in-stock products through the cascade in a single transaction.
// Products only ever move to a higher stage, so re-running is safe.
func (uc *cascadeCommandsImpl) Run(ctx context.Context, req reqdto.RunCascadeRequest) (*CascadeResult, error) {
	ctx, span := uc.tracer.Start(ctx, "rescue.cascade")
	defer span.End()
	if req.StoreID != nil {
		span.SetAttributes(attribute.String("rescue.store_id", req.StoreID.String()))
	}

	now := uc.clock.Now()

	var (
		result *CascadeResult
		alerts []RescueAlert
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// reset per attempt; the unit of work may retry this closure
		result, alerts = &CascadeResult{}, nil

		candidates, err := tx.Products().CascadeCandidates(ctx, tx.DB(), req.StoreID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result.TotalProductsProcessed = len(candidates)

		open, err := tx.RescueRequests().OpenAlertProductIDs(ctx, tx.DB(), productIDs(candidates))
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		for _, p := range candidates {
			days := rescue.DaysUntilExpiration(p.ExpirationDate(), now)
			action, ok := rescue.Classify(days)
			if !ok || action.Stage <= p.RescueStage() {
				continue
			}

			if err = p.ApplyRescue(action.Stage, action.Type, action.DiscountPercentage, now); err != nil {
				return errs.Wrapf(err, "apply stage %d to product %s", action.Stage, p.ID())
			}
			if err = tx.Products().SaveRescue(ctx, tx.DB(), p); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			result.Counts.Add(action.Stage)

			if !action.CreatesRequest() {
				continue
			}
			if _, exists := open[p.ID()]; exists {
				continue
			}
			r := rescue.NewCascadeRequest(p, action.Stage, days, now)
			if err = tx.RescueRequests().Create(ctx, tx.DB(), r); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return errs.Mark(err, ErrOpenAlertExists)
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			result.RequestsCreated++
			alerts = append(alerts, newRescueAlert(r, []*product.Product{p}))
		}

		result.TotalProductsRescued = result.Counts.Total()
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "cascade failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("rescue.processed", result.TotalProductsProcessed),
		attribute.Int("rescue.stage1", result.Counts.Stage1),
		attribute.Int("rescue.stage2", result.Counts.Stage2),
		attribute.Int("rescue.stage3", result.Counts.Stage3),
		attribute.Int("rescue.stage4", result.Counts.Stage4),
		attribute.Int("rescue.requests_created", result.RequestsCreated),
	)
	slog.Info("cascade completed",
		"processed", result.TotalProductsProcessed,
		"rescued", result.TotalProductsRescued,
		"requests_created", result.RequestsCreated,
	)

	notifyAlerts(ctx, uc.notifier, alerts)
	return result, nil
}

func productIDs(products []*product.Product) []uuid.UUID {
	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.ID()
	}
	return ids
}
