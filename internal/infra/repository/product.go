package repository

import (
	"context"

	"resqcart/internal/domain/product"
	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/infra/repository/converter"
	"resqcart/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductWriteQueries interface {
	CreateProduct(ctx context.Context, db query.DBTX, arg query.CreateProductParams) error
	GetProductsForUpdate(ctx context.Context, db query.DBTX, ids []uuid.UUID) ([]query.Products, error)
	UpdateProduct(ctx context.Context, db query.DBTX, arg query.UpdateProductParams) (int64, error)
	UpdateProductRescue(ctx context.Context, db query.DBTX, arg query.UpdateProductRescueParams) (int64, error)
	DeleteProduct(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	ListCascadeCandidates(ctx context.Context, db query.DBTX, storeID pgtype.UUID) ([]query.Products, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
}

func NewProductRepository(queries ProductWriteQueries) *ProductRepository {
	return &ProductRepository{queries: queries}
}

func (r *ProductRepository) Create(ctx context.Context, db query.DBTX, p *product.Product) error {
	if err := r.queries.CreateProduct(ctx, db, converter.ProductToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

// FindForUpdate returns only the products that exist; callers compare lengths.
func (r *ProductRepository) FindForUpdate(ctx context.Context, db query.DBTX, ids []uuid.UUID) ([]*product.Product, error) {
	rows, err := r.queries.GetProductsForUpdate(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock products", err)
	}
	return productsFromRows(rows), nil
}

func (r *ProductRepository) Update(ctx context.Context, db query.DBTX, p *product.Product) error {
	n, err := r.queries.UpdateProduct(ctx, db, converter.ProductToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) SaveRescue(ctx context.Context, db query.DBTX, p *product.Product) error {
	n, err := r.queries.UpdateProductRescue(ctx, db, converter.ProductToRescueParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to save product rescue state", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("product not found or stage already higher", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, db query.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteProduct(ctx, db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) CascadeCandidates(ctx context.Context, db query.DBTX, storeID *uuid.UUID) ([]*product.Product, error) {
	rows, err := r.queries.ListCascadeCandidates(ctx, db, pgconv.UUIDPtrToPgtype(storeID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cascade candidates", err)
	}
	return productsFromRows(rows), nil
}

func productsFromRows(rows []query.Products) []*product.Product {
	out := make([]*product.Product, len(rows))
	for i, row := range rows {
		out[i] = converter.ProductFromRow(row)
	}
	return out
}
