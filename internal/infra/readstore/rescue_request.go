package readstore

import (
	"context"

	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/pgconv"
	"resqcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RescueRequestReadQueries interface {
	GetRescueRequestView(ctx context.Context, db query.DBTX, id uuid.UUID) (query.RescueRequestView, error)
	ListRescueRequests(ctx context.Context, db query.DBTX, arg query.ListRescueRequestsParams) ([]query.RescueRequestView, error)
	ListRescueRequestProducts(ctx context.Context, db query.DBTX, requestIDs []uuid.UUID) ([]query.RescueRequestProductRow, error)
}

type RescueRequestReadStore struct {
	queries RescueRequestReadQueries
	db      query.DBTX
}

func NewRescueRequestReadStore(queries RescueRequestReadQueries, db query.DBTX) *RescueRequestReadStore {
	return &RescueRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RescueRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RescueRequestView, error) {
	row, err := r.queries.GetRescueRequestView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rescue request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get rescue request by id", err)
	}
	views, err := r.withProducts(ctx, []query.RescueRequestView{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *RescueRequestReadStore) List(ctx context.Context, filters queries.RescueRequestFilters) ([]*queries.RescueRequestView, error) {
	params := query.ListRescueRequestsParams{
		StoreID:    pgconv.UUIDPtrToPgtype(filters.StoreID),
		FoodBankID: pgconv.UUIDPtrToPgtype(filters.FoodBankID),
	}
	if filters.Status != nil {
		params.Status = pgtype.Text{String: filters.Status.String(), Valid: true}
	}
	rows, err := r.queries.ListRescueRequests(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rescue requests", err)
	}
	return r.withProducts(ctx, rows)
}

// withProducts loads every request's products in one round trip.
func (r *RescueRequestReadStore) withProducts(ctx context.Context, rows []query.RescueRequestView) ([]*queries.RescueRequestView, error) {
	out := make([]*queries.RescueRequestView, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(rows))
	byID := make(map[uuid.UUID]*queries.RescueRequestView, len(rows))
	for i, row := range rows {
		out[i] = toRescueRequestView(row)
		ids[i] = row.ID
		byID[row.ID] = out[i]
	}

	products, err := r.queries.ListRescueRequestProducts(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rescue request products", err)
	}
	for _, p := range products {
		view, ok := byID[p.RescueRequestID]
		if !ok {
			continue
		}
		view.Products = append(view.Products, &queries.RescueProductItem{
			ID:              p.ProductID,
			Name:            p.Name,
			Category:        p.Category,
			QuantityInStock: int(p.QuantityInStock),
			Unit:            p.Unit,
			CurrentPrice:    pgconv.DecimalFromNumeric(p.CurrentPrice),
			ExpirationDate:  pgconv.TimeFromPgtype(p.ExpirationDate),
		})
	}
	return out, nil
}

func toRescueRequestView(row query.RescueRequestView) *queries.RescueRequestView {
	var days *int
	if row.DaysUntilExpiration.Valid {
		d := int(row.DaysUntilExpiration.Int32)
		days = &d
	}
	return &queries.RescueRequestView{
		ID:                  row.ID,
		StoreID:             row.StoreID,
		StoreName:           row.StoreName,
		FoodBankID:          pgconv.UUIDPtrFromPgtype(row.FoodBankID),
		FoodBankName:        pgconv.StringPtrFromPgtype(row.FoodBankName),
		Products:            []*queries.RescueProductItem{},
		RescueType:          row.RescueType,
		RescueCascadeStage:  int(row.RescueCascadeStage),
		DaysUntilExpiration: days,
		Status:              row.Status,
		ScheduledPickupTime: pgconv.TimePtrFromPgtype(row.ScheduledPickupTime),
		ActualPickupTime:    pgconv.TimePtrFromPgtype(row.ActualPickupTime),
		TotalValue:          pgconv.DecimalFromNumeric(row.TotalValue),
		TotalWeight:         row.TotalWeight,
		EnvironmentalImpact: row.EnvironmentalImpact,
		Notes:               row.Notes,
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
