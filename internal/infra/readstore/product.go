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

type ProductReadQueries interface {
	GetProductByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ProductWithStore, error)
	ListProducts(ctx context.Context, db query.DBTX, arg query.ListProductsParams) ([]query.ProductWithStore, error)
	ListAtRiskProducts(ctx context.Context, db query.DBTX) ([]query.ProductWithStore, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      query.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db query.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}
	return toProductView(row), nil
}

func (r *ProductReadStore) List(ctx context.Context, filters queries.ProductFilters, page queries.ProductPage) ([]*queries.ProductView, error) {
	params := query.ListProductsParams{
		Category:       pgconv.StringPtrToPgtype(filters.Category),
		StoreID:        pgconv.UUIDPtrToPgtype(filters.StoreID),
		RescueStatus:   pgconv.StringPtrToPgtype(filters.RescueStatus),
		AtRisk:         toPgBool(filters.AtRisk),
		AfterCreatedAt: pgconv.TimePtrToPgtype(page.AfterCreatedAt),
		AfterID:        pgconv.UUIDPtrToPgtype(page.AfterID),
		Limit:          page.Limit,
	}
	rows, err := r.queries.ListProducts(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	return toProductViews(rows), nil
}

func (r *ProductReadStore) ListAtRisk(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := r.queries.ListAtRiskProducts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list at-risk products", err)
	}
	return toProductViews(rows), nil
}

func toProductViews(rows []query.ProductWithStore) []*queries.ProductView {
	out := make([]*queries.ProductView, len(rows))
	for i, row := range rows {
		out[i] = toProductView(row)
	}
	return out
}

func toProductView(row query.ProductWithStore) *queries.ProductView {
	return &queries.ProductView{
		ID:                 row.ID,
		StoreID:            row.StoreID,
		StoreName:          row.StoreName,
		Name:               row.Name,
		Category:           row.Category,
		SubCategory:        row.SubCategory,
		SKU:                row.Sku,
		Barcode:            row.Barcode,
		Price:              pgconv.DecimalFromNumeric(row.Price),
		CurrentPrice:       pgconv.DecimalFromNumeric(row.CurrentPrice),
		DiscountPercentage: int(row.DiscountPercentage),
		QuantityInStock:    int(row.QuantityInStock),
		Unit:               row.Unit,
		ExpirationDate:     pgconv.TimeFromPgtype(row.ExpirationDate),
		StorageConditions:  row.StorageConditions,
		AtRisk:             row.AtRisk,
		RescueStatus:       row.RescueStatus,
		RescueStage:        int(row.RescueStage),
		RescueActionDate:   pgconv.TimePtrFromPgtype(row.RescueActionDate),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toPgBool(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}
