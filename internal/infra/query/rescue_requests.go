package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const rescueRequestColumns = `r.id, r.store_id, r.food_bank_id, r.rescue_type, r.rescue_cascade_stage,
	r.days_until_expiration, r.status, r.scheduled_pickup_time, r.actual_pickup_time,
	r.total_value, r.total_weight, r.environmental_impact, r.notes, r.created_at, r.updated_at`

type RescueRequestView struct {
	RescueRequests
	StoreName    string      `db:"store_name"`
	FoodBankName pgtype.Text `db:"food_bank_name"`
}

type RescueRequestProductRow struct {
	RescueRequestID uuid.UUID          `db:"rescue_request_id"`
	ProductID       uuid.UUID          `db:"product_id"`
	Name            string             `db:"name"`
	Category        string             `db:"category"`
	QuantityInStock int32              `db:"quantity_in_stock"`
	Unit            string             `db:"unit"`
	CurrentPrice    pgtype.Numeric     `db:"current_price"`
	ExpirationDate  pgtype.Timestamptz `db:"expiration_date"`
}

type CreateRescueRequestParams struct {
	ID                  uuid.UUID
	StoreID             uuid.UUID
	FoodBankID          pgtype.UUID
	RescueType          string
	RescueCascadeStage  int16
	DaysUntilExpiration pgtype.Int4
	Status              string
	ScheduledPickupTime pgtype.Timestamptz
	TotalValue          pgtype.Numeric
	TotalWeight         float64
	EnvironmentalImpact float64
	Notes               string
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

const createRescueRequest = `INSERT INTO rescue_requests (
	id, store_id, food_bank_id, rescue_type, rescue_cascade_stage, days_until_expiration, status,
	scheduled_pickup_time, total_value, total_weight, environmental_impact, notes, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

func (q *Queries) CreateRescueRequest(ctx context.Context, db DBTX, arg CreateRescueRequestParams) error {
	_, err := db.Exec(ctx, createRescueRequest,
		arg.ID, arg.StoreID, arg.FoodBankID, arg.RescueType, arg.RescueCascadeStage, arg.DaysUntilExpiration,
		arg.Status, arg.ScheduledPickupTime, arg.TotalValue, arg.TotalWeight, arg.EnvironmentalImpact,
		arg.Notes, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

type AddRescueRequestProductParams struct {
	RescueRequestID uuid.UUID
	ProductID       uuid.UUID
	OpenAlert       bool
}

const addRescueRequestProduct = `INSERT INTO rescue_request_products (rescue_request_id, product_id, open_alert)
VALUES ($1, $2, $3)`

func (q *Queries) AddRescueRequestProduct(ctx context.Context, db DBTX, arg AddRescueRequestProductParams) error {
	_, err := db.Exec(ctx, addRescueRequestProduct, arg.RescueRequestID, arg.ProductID, arg.OpenAlert)
	return err
}

const getRescueRequestForUpdate = `SELECT ` + rescueRequestColumns + `
FROM rescue_requests r
WHERE r.id = $1
FOR UPDATE`

func (q *Queries) GetRescueRequestForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (RescueRequests, error) {
	return collectOne[RescueRequests](ctx, db, getRescueRequestForUpdate, id)
}

type productIDRow struct {
	ProductID uuid.UUID `db:"product_id"`
}

const getRescueRequestProductIDs = `SELECT product_id FROM rescue_request_products
WHERE rescue_request_id = $1
ORDER BY product_id`

func (q *Queries) GetRescueRequestProductIDs(ctx context.Context, db DBTX, requestID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := collectAll[productIDRow](ctx, db, getRescueRequestProductIDs, requestID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.ProductID
	}
	return ids, nil
}

const listOpenAlertProductIDs = `SELECT product_id FROM rescue_request_products
WHERE open_alert AND product_id = ANY($1::uuid[])`

func (q *Queries) ListOpenAlertProductIDs(ctx context.Context, db DBTX, productIDs []uuid.UUID) ([]uuid.UUID, error) {
	rows, err := collectAll[productIDRow](ctx, db, listOpenAlertProductIDs, productIDs)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.ProductID
	}
	return ids, nil
}

type UpdateRescueRequestStatusParams struct {
	ID                  uuid.UUID
	Status              string
	FoodBankID          pgtype.UUID
	ScheduledPickupTime pgtype.Timestamptz
	ActualPickupTime    pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

const updateRescueRequestStatus = `UPDATE rescue_requests SET
	status = $2, food_bank_id = $3, scheduled_pickup_time = $4, actual_pickup_time = $5, updated_at = $6
WHERE id = $1`

func (q *Queries) UpdateRescueRequestStatus(ctx context.Context, db DBTX, arg UpdateRescueRequestStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateRescueRequestStatus,
		arg.ID, arg.Status, arg.FoodBankID, arg.ScheduledPickupTime, arg.ActualPickupTime, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const closeOpenAlerts = `UPDATE rescue_request_products SET open_alert = FALSE
WHERE rescue_request_id = $1 AND open_alert`

func (q *Queries) CloseOpenAlerts(ctx context.Context, db DBTX, requestID uuid.UUID) error {
	_, err := db.Exec(ctx, closeOpenAlerts, requestID)
	return err
}

type ListRescueRequestsParams struct {
	Status     pgtype.Text
	StoreID    pgtype.UUID
	FoodBankID pgtype.UUID
}

const listRescueRequests = `SELECT ` + rescueRequestColumns + `, s.name AS store_name, fb.name AS food_bank_name
FROM rescue_requests r
JOIN stores s ON s.id = r.store_id
LEFT JOIN food_banks fb ON fb.id = r.food_bank_id
WHERE ($1::text IS NULL OR r.status = $1)
  AND ($2::uuid IS NULL OR r.store_id = $2)
  AND ($3::uuid IS NULL OR r.food_bank_id = $3)
ORDER BY r.created_at DESC, r.id DESC`

func (q *Queries) ListRescueRequests(ctx context.Context, db DBTX, arg ListRescueRequestsParams) ([]RescueRequestView, error) {
	return collectAll[RescueRequestView](ctx, db, listRescueRequests, arg.Status, arg.StoreID, arg.FoodBankID)
}

const getRescueRequestView = `SELECT ` + rescueRequestColumns + `, s.name AS store_name, fb.name AS food_bank_name
FROM rescue_requests r
JOIN stores s ON s.id = r.store_id
LEFT JOIN food_banks fb ON fb.id = r.food_bank_id
WHERE r.id = $1`

func (q *Queries) GetRescueRequestView(ctx context.Context, db DBTX, id uuid.UUID) (RescueRequestView, error) {
	return collectOne[RescueRequestView](ctx, db, getRescueRequestView, id)
}

const listRescueRequestProducts = `SELECT rp.rescue_request_id, p.id AS product_id, p.name, p.category,
	p.quantity_in_stock, p.unit, p.current_price, p.expiration_date
FROM rescue_request_products rp
JOIN products p ON p.id = rp.product_id
WHERE rp.rescue_request_id = ANY($1::uuid[])
ORDER BY rp.rescue_request_id, p.expiration_date, p.id`

func (q *Queries) ListRescueRequestProducts(ctx context.Context, db DBTX, requestIDs []uuid.UUID) ([]RescueRequestProductRow, error) {
	return collectAll[RescueRequestProductRow](ctx, db, listRescueRequestProducts, requestIDs)
}
