package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Stores struct {
	ID        uuid.UUID          `db:"id"`
	Name      string             `db:"name"`
	Address   string             `db:"address"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
}

type Products struct {
	ID                 uuid.UUID          `db:"id"`
	StoreID            uuid.UUID          `db:"store_id"`
	Name               string             `db:"name"`
	Category           string             `db:"category"`
	SubCategory        string             `db:"sub_category"`
	Sku                string             `db:"sku"`
	Barcode            string             `db:"barcode"`
	Price              pgtype.Numeric     `db:"price"`
	CurrentPrice       pgtype.Numeric     `db:"current_price"`
	DiscountPercentage int32              `db:"discount_percentage"`
	QuantityInStock    int32              `db:"quantity_in_stock"`
	Unit               string             `db:"unit"`
	ExpirationDate     pgtype.Timestamptz `db:"expiration_date"`
	StorageConditions  string             `db:"storage_conditions"`
	AtRisk             bool               `db:"at_risk"`
	RescueStatus       string             `db:"rescue_status"`
	RescueStage        int16              `db:"rescue_stage"`
	RescueActionDate   pgtype.Timestamptz `db:"rescue_action_date"`
	CreatedAt          pgtype.Timestamptz `db:"created_at"`
	UpdatedAt          pgtype.Timestamptz `db:"updated_at"`
}

type FoodBanks struct {
	ID                 uuid.UUID          `db:"id"`
	Name               string             `db:"name"`
	ContactPerson      string             `db:"contact_person"`
	Email              string             `db:"email"`
	Phone              string             `db:"phone"`
	Street             string             `db:"street"`
	City               string             `db:"city"`
	State              string             `db:"state"`
	ZipCode            string             `db:"zip_code"`
	Latitude           pgtype.Float8      `db:"latitude"`
	Longitude          pgtype.Float8      `db:"longitude"`
	VerificationStatus string             `db:"verification_status"`
	AcceptedCategories []string           `db:"accepted_categories"`
	CreatedAt          pgtype.Timestamptz `db:"created_at"`
	UpdatedAt          pgtype.Timestamptz `db:"updated_at"`
}

type RescueRequests struct {
	ID                  uuid.UUID          `db:"id"`
	StoreID             uuid.UUID          `db:"store_id"`
	FoodBankID          pgtype.UUID        `db:"food_bank_id"`
	RescueType          string             `db:"rescue_type"`
	RescueCascadeStage  int16              `db:"rescue_cascade_stage"`
	DaysUntilExpiration pgtype.Int4        `db:"days_until_expiration"`
	Status              string             `db:"status"`
	ScheduledPickupTime pgtype.Timestamptz `db:"scheduled_pickup_time"`
	ActualPickupTime    pgtype.Timestamptz `db:"actual_pickup_time"`
	TotalValue          pgtype.Numeric     `db:"total_value"`
	TotalWeight         float64            `db:"total_weight"`
	EnvironmentalImpact float64            `db:"environmental_impact"`
	Notes               string             `db:"notes"`
	CreatedAt           pgtype.Timestamptz `db:"created_at"`
	UpdatedAt           pgtype.Timestamptz `db:"updated_at"`
}

type Admins struct {
	ID           uuid.UUID          `db:"id"`
	Email        string             `db:"email"`
	PasswordHash string             `db:"password_hash"`
	FirstName    string             `db:"first_name"`
	LastName     string             `db:"last_name"`
	Role         string             `db:"role"`
	LastLoginAt  pgtype.Timestamptz `db:"last_login_at"`
	CreatedAt    pgtype.Timestamptz `db:"created_at"`
	UpdatedAt    pgtype.Timestamptz `db:"updated_at"`
}

type IdempotencyKeys struct {
	Key         uuid.UUID          `db:"key"`
	Endpoint    string             `db:"endpoint"`
	RequestHash string             `db:"request_hash"`
	ResultID    pgtype.UUID        `db:"result_id"`
	CreatedAt   pgtype.Timestamptz `db:"created_at"`
	ExpiresAt   pgtype.Timestamptz `db:"expires_at"`
}
