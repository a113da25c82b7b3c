package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const productColumns = `p.id, p.store_id, p.name, p.category, p.sub_category, p.sku, p.barcode,
	p.price, p.current_price, p.discount_percentage, p.quantity_in_stock, p.unit,
	p.expiration_date, p.storage_conditions, p.at_risk, p.rescue_status, p.rescue_stage,
	p.rescue_action_date, p.created_at, p.updated_at`

type ProductWithStore struct {
	Products
	StoreName string `db:"store_name"`
}

type CreateProductParams struct {
	ID                 uuid.UUID
	StoreID            uuid.UUID
	Name               string
	Category           string
	SubCategory        string
	Sku                string
	Barcode            string
	Price              pgtype.Numeric
	CurrentPrice       pgtype.Numeric
	DiscountPercentage int32
	QuantityInStock    int32
	Unit               string
	ExpirationDate     pgtype.Timestamptz
	StorageConditions  string
	AtRisk             bool
	RescueStatus       string
	RescueStage        int16
	RescueActionDate   pgtype.Timestamptz
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

const createProduct = `INSERT INTO products (
	id, store_id, name, category, sub_category, sku, barcode, price, current_price,
	discount_percentage, quantity_in_stock, unit, expiration_date, storage_conditions,
	at_risk, rescue_status, rescue_stage, rescue_action_date, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

func (q *Queries) CreateProduct(ctx context.Context, db DBTX, arg CreateProductParams) error {
	_, err := db.Exec(ctx, createProduct,
		arg.ID, arg.StoreID, arg.Name, arg.Category, arg.SubCategory, arg.Sku, arg.Barcode,
		arg.Price, arg.CurrentPrice, arg.DiscountPercentage, arg.QuantityInStock, arg.Unit,
		arg.ExpirationDate, arg.StorageConditions, arg.AtRisk, arg.RescueStatus, arg.RescueStage,
		arg.RescueActionDate, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getProductByID = `SELECT ` + productColumns + `, s.name AS store_name
FROM products p JOIN stores s ON s.id = p.store_id
WHERE p.id = $1`

func (q *Queries) GetProductByID(ctx context.Context, db DBTX, id uuid.UUID) (ProductWithStore, error) {
	return collectOne[ProductWithStore](ctx, db, getProductByID, id)
}

const getProductsForUpdate = `SELECT ` + productColumns + `
FROM products p
WHERE p.id = ANY($1::uuid[])
ORDER BY p.id
FOR UPDATE`

func (q *Queries) GetProductsForUpdate(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Products, error) {
	return collectAll[Products](ctx, db, getProductsForUpdate, ids)
}

type UpdateProductParams struct {
	ID                 uuid.UUID
	Name               string
	Category           string
	SubCategory        string
	Barcode            string
	Price              pgtype.Numeric
	CurrentPrice       pgtype.Numeric
	DiscountPercentage int32
	QuantityInStock    int32
	Unit               string
	ExpirationDate     pgtype.Timestamptz
	StorageConditions  string
	AtRisk             bool
	RescueStatus       string
	UpdatedAt          pgtype.Timestamptz
}

const updateProduct = `UPDATE products SET
	name = $2, category = $3, sub_category = $4, barcode = $5, price = $6, current_price = $7,
	discount_percentage = $8, quantity_in_stock = $9, unit = $10, expiration_date = $11,
	storage_conditions = $12, at_risk = $13, rescue_status = $14, updated_at = $15
WHERE id = $1`

func (q *Queries) UpdateProduct(ctx context.Context, db DBTX, arg UpdateProductParams) (int64, error) {
	tag, err := db.Exec(ctx, updateProduct,
		arg.ID, arg.Name, arg.Category, arg.SubCategory, arg.Barcode, arg.Price, arg.CurrentPrice,
		arg.DiscountPercentage, arg.QuantityInStock, arg.Unit, arg.ExpirationDate,
		arg.StorageConditions, arg.AtRisk, arg.RescueStatus, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type UpdateProductRescueParams struct {
	ID                 uuid.UUID
	RescueStatus       string
	RescueStage        int16
	AtRisk             bool
	DiscountPercentage int32
	CurrentPrice       pgtype.Numeric
	RescueActionDate   pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

// rescue_stage only moves forward; a stale write matches zero rows.
const updateProductRescue = `UPDATE products SET
	rescue_status = $2, rescue_stage = $3, at_risk = $4, discount_percentage = $5,
	current_price = $6, rescue_action_date = $7, updated_at = $8
WHERE id = $1 AND rescue_stage <= $3`

func (q *Queries) UpdateProductRescue(ctx context.Context, db DBTX, arg UpdateProductRescueParams) (int64, error) {
	tag, err := db.Exec(ctx, updateProductRescue,
		arg.ID, arg.RescueStatus, arg.RescueStage, arg.AtRisk, arg.DiscountPercentage,
		arg.CurrentPrice, arg.RescueActionDate, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteProduct = `DELETE FROM products WHERE id = $1`

func (q *Queries) DeleteProduct(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteProduct, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listCascadeCandidates = `SELECT ` + productColumns + `
FROM products p
WHERE p.quantity_in_stock > 0
  AND (p.rescue_status = 'none' OR p.rescue_stage BETWEEN 1 AND 3)
  AND ($1::uuid IS NULL OR p.store_id = $1)
ORDER BY p.expiration_date, p.id
FOR UPDATE`

func (q *Queries) ListCascadeCandidates(ctx context.Context, db DBTX, storeID pgtype.UUID) ([]Products, error) {
	return collectAll[Products](ctx, db, listCascadeCandidates, storeID)
}

type ListProductsParams struct {
	Category       pgtype.Text
	StoreID        pgtype.UUID
	RescueStatus   pgtype.Text
	AtRisk         pgtype.Bool
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

const listProducts = `SELECT ` + productColumns + `, s.name AS store_name
FROM products p JOIN stores s ON s.id = p.store_id
WHERE ($1::text IS NULL OR p.category = $1)
  AND ($2::uuid IS NULL OR p.store_id = $2)
  AND ($3::text IS NULL OR p.rescue_status = $3)
  AND ($4::bool IS NULL OR p.at_risk = $4)
  AND ($5::timestamptz IS NULL OR (p.created_at, p.id) < ($5, $6::uuid))
ORDER BY p.created_at DESC, p.id DESC
LIMIT $7`

func (q *Queries) ListProducts(ctx context.Context, db DBTX, arg ListProductsParams) ([]ProductWithStore, error) {
	return collectAll[ProductWithStore](ctx, db, listProducts,
		arg.Category, arg.StoreID, arg.RescueStatus, arg.AtRisk, arg.AfterCreatedAt, arg.AfterID, arg.Limit,
	)
}

const listAtRiskProducts = `SELECT ` + productColumns + `, s.name AS store_name
FROM products p JOIN stores s ON s.id = p.store_id
WHERE p.at_risk
ORDER BY p.expiration_date, p.id`

func (q *Queries) ListAtRiskProducts(ctx context.Context, db DBTX) ([]ProductWithStore, error) {
	return collectAll[ProductWithStore](ctx, db, listAtRiskProducts)
}
