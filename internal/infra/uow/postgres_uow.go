package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"resqcart/internal/infra/query"
	"resqcart/internal/infra/repository"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"

	maxAttempts = 4
	backoffBase = 100 * time.Millisecond
)

var errRetriesExhausted = errs.New("transaction retries exhausted")

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q}
}

// Within runs fn in a read-committed transaction. Writers serialize on the
// rows they lock with FOR UPDATE. Deadlocks and serialization failures rerun
// fn from the start, so fn must keep its side effects inside tx.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	for attempt := 1; ; attempt++ {
		err := pgx.BeginTxFunc(ctx, u.pool, opts, func(ptx pgx.Tx) error {
			return fn(ctx, &pgTx{dbtx: ptx, q: u.q})
		})
		if err == nil || !isRetryableError(err) {
			return err
		}
		if attempt == maxAttempts {
			slog.ErrorContext(ctx, "transaction retries exhausted", "attempts", attempt, "error", err)
			return errs.Mark(err, errRetriesExhausted)
		}

		wait := backoff(attempt, backoffBase)
		slog.WarnContext(ctx, "retrying transaction", "attempt", attempt, "wait", wait, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// WithinReadOnly gives fn one repeatable-read snapshot across several queries.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	return pgx.BeginTxFunc(ctx, u.pool, opts, func(ptx pgx.Tx) error {
		return fn(ctx, ptx)
	})
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, u.pool)
}

// backoff doubles per attempt (starting at base) and adds up to 20% jitter.
func backoff(attempt int, base time.Duration) time.Duration {
	wait := base << (attempt - 1)
	return wait + rand.N(wait/5+1)
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrSerializationFailure || pgErr.Code == pgErrDeadlockDetected
}

type pgTx struct {
	dbtx query.DBTX
	q    *query.Queries

	// Lazy-initialized repositories
	productRepo     shared.ProductRepository
	requestRepo     shared.RescueRequestRepository
	foodBankRepo    shared.FoodBankRepository
	adminRepo       shared.AdminRepository
	idempotencyRepo shared.IdempotencyRepository
}

func (t *pgTx) DB() query.DBTX {
	return t.dbtx
}

func (t *pgTx) Products() shared.ProductRepository {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository(t.q)
	}
	return t.productRepo
}

func (t *pgTx) RescueRequests() shared.RescueRequestRepository {
	if t.requestRepo == nil {
		t.requestRepo = repository.NewRescueRequestRepository(t.q)
	}
	return t.requestRepo
}

func (t *pgTx) FoodBanks() shared.FoodBankRepository {
	if t.foodBankRepo == nil {
		t.foodBankRepo = repository.NewFoodBankRepository(t.q)
	}
	return t.foodBankRepo
}

func (t *pgTx) Admins() shared.AdminRepository {
	if t.adminRepo == nil {
		t.adminRepo = repository.NewAdminRepository(t.q)
	}
	return t.adminRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.q)
	}
	return t.idempotencyRepo
}
