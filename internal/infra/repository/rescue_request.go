package repository

import (
	"context"

	"resqcart/internal/domain/product"
	"resqcart/internal/domain/rescue"
	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type RescueRequestWriteQueries interface {
	CreateRescueRequest(ctx context.Context, db query.DBTX, arg query.CreateRescueRequestParams) error
	AddRescueRequestProduct(ctx context.Context, db query.DBTX, arg query.AddRescueRequestProductParams) error
	GetRescueRequestForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.RescueRequests, error)
	GetRescueRequestProductIDs(ctx context.Context, db query.DBTX, requestID uuid.UUID) ([]uuid.UUID, error)
	UpdateRescueRequestStatus(ctx context.Context, db query.DBTX, arg query.UpdateRescueRequestStatusParams) (int64, error)
	CloseOpenAlerts(ctx context.Context, db query.DBTX, requestID uuid.UUID) error
	ListOpenAlertProductIDs(ctx context.Context, db query.DBTX, productIDs []uuid.UUID) ([]uuid.UUID, error)
}

type RescueRequestRepository struct {
	queries RescueRequestWriteQueries
}

func NewRescueRequestRepository(queries RescueRequestWriteQueries) *RescueRequestRepository {
	return &RescueRequestRepository{queries: queries}
}

func (r *RescueRequestRepository) Create(ctx context.Context, db query.DBTX, req *rescue.Request) error {
	if err := r.queries.CreateRescueRequest(ctx, db, converter.RescueRequestToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create rescue request", err)
	}

	openAlert := req.RescueType() == product.RescueStatusFoodBankAlert && !req.Status().IsTerminal()
	for _, productID := range req.ProductIDs() {
		err := r.queries.AddRescueRequestProduct(ctx, db, query.AddRescueRequestProductParams{
			RescueRequestID: req.ID(),
			ProductID:       productID,
			OpenAlert:       openAlert,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to link product to rescue request", err)
		}
	}
	return nil
}

func (r *RescueRequestRepository) FindForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (*rescue.Request, error) {
	row, err := r.queries.GetRescueRequestForUpdate(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock rescue request", err)
	}
	productIDs, err := r.queries.GetRescueRequestProductIDs(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load rescue request products", err)
	}
	return converter.RescueRequestFromRow(row, productIDs), nil
}

func (r *RescueRequestRepository) UpdateStatus(ctx context.Context, db query.DBTX, req *rescue.Request) error {
	n, err := r.queries.UpdateRescueRequestStatus(ctx, db, converter.RescueRequestToStatusParams(req))
	if err != nil {
		return infra.WrapRepoErr("failed to update rescue request status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("rescue request not found", nil, infra.KindNotFound)
	}
	if req.Status().IsTerminal() {
		if err := r.queries.CloseOpenAlerts(ctx, db, req.ID()); err != nil {
			return infra.WrapRepoErr("failed to close open alerts", err)
		}
	}
	return nil
}

func (r *RescueRequestRepository) OpenAlertProductIDs(ctx context.Context, db query.DBTX, productIDs []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	out := make(map[uuid.UUID]struct{})
	if len(productIDs) == 0 {
		return out, nil
	}
	ids, err := r.queries.ListOpenAlertProductIDs(ctx, db, productIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open alerts", err)
	}
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}
