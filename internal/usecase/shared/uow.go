package shared

import (
	"context"
	"time"

	"resqcart/internal/domain/admin"
	"resqcart/internal/domain/foodbank"
	"resqcart/internal/domain/product"
	"resqcart/internal/domain/rescue"
	"resqcart/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

type Tx interface {
	Products() ProductRepository
	RescueRequests() RescueRequestRepository
	FoodBanks() FoodBankRepository
	Admins() AdminRepository
	Idempotency() IdempotencyRepository
	DB() query.DBTX
}

type ProductRepository interface {
	Create(ctx context.Context, db query.DBTX, p *product.Product) error
	FindForUpdate(ctx context.Context, db query.DBTX, ids []uuid.UUID) ([]*product.Product, error)
	Update(ctx context.Context, db query.DBTX, p *product.Product) error
	SaveRescue(ctx context.Context, db query.DBTX, p *product.Product) error
	Delete(ctx context.Context, db query.DBTX, id uuid.UUID) error
	// CascadeCandidates locks in-stock products the cascade may still escalate.
	CascadeCandidates(ctx context.Context, db query.DBTX, storeID *uuid.UUID) ([]*product.Product, error)
}

type RescueRequestRepository interface {
	Create(ctx context.Context, db query.DBTX, r *rescue.Request) error
	FindForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (*rescue.Request, error)
	UpdateStatus(ctx context.Context, db query.DBTX, r *rescue.Request) error
	// OpenAlertProductIDs returns which of the products already sit on a live food-bank alert.
	OpenAlertProductIDs(ctx context.Context, db query.DBTX, productIDs []uuid.UUID) (map[uuid.UUID]struct{}, error)
}

type FoodBankRepository interface {
	Create(ctx context.Context, db query.DBTX, fb *foodbank.FoodBank) error
	FindByID(ctx context.Context, db query.DBTX, id uuid.UUID) (*foodbank.FoodBank, error)
	FindForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (*foodbank.FoodBank, error)
	UpdateVerification(ctx context.Context, db query.DBTX, fb *foodbank.FoodBank) error
}

type AdminRepository interface {
	Create(ctx context.Context, db query.DBTX, a *admin.Admin) error
	FindByEmail(ctx context.Context, db query.DBTX, email admin.Email) (*admin.Admin, error)
	RecordLogin(ctx context.Context, db query.DBTX, a *admin.Admin) error
}

type IdempotencyRepository interface {
	// Claim reports whether the caller took ownership of key; false means a live record already exists.
	Claim(ctx context.Context, db query.DBTX, key uuid.UUID, endpoint, requestHash string, now, expiresAt time.Time) (bool, error)
	Find(ctx context.Context, db query.DBTX, key uuid.UUID, endpoint string) (*IdempotencyRecord, error)
	Complete(ctx context.Context, db query.DBTX, key uuid.UUID, endpoint string, resultID uuid.UUID) error
}
