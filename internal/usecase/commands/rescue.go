package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"resqcart/internal/domain/product"
	"resqcart/internal/domain/rescue"
	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/infra"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createRescueEndpoint = "POST /api/rescue"
	idempotencyTTL       = 24 * time.Hour
)

type RescueCommands interface {
	CreateRequest(ctx context.Context, req reqdto.CreateRescueRequestRequest) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateRescueStatusRequest) error
}

type rescueCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier RescueNotifier
	clock    clock.Clock
}

func NewRescueCommands(uow shared.UnitOfWork, notifier RescueNotifier, clk clock.Clock) RescueCommands {
	return &rescueCommandsImpl{uow: uow, notifier: notifier, clock: clk}
}

// CreateRequest records a manual rescue and flags every listed product with
// the requested rescue type. Food-bank alerts are announced after commit.
// A replayed Idempotency-Key returns the originally created request.
func (uc *rescueCommandsImpl) CreateRequest(ctx context.Context, req reqdto.CreateRescueRequestRequest) (uuid.UUID, error) {
	ids := uniqueIDs(req.ProductIDs)
	now := uc.clock.Now()

	var (
		created  *rescue.Request
		products []*product.Product
		replayed uuid.UUID
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if req.IdempotencyKey != nil {
			existing, err := uc.handleIdempotency(ctx, tx, *req.IdempotencyKey, req, now)
			if err != nil {
				return err
			}
			if existing != nil {
				replayed = *existing
				return nil
			}
		}

		found, err := tx.Products().FindForUpdate(ctx, tx.DB(), ids)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(found) != len(ids) {
			return ErrUnknownProduct
		}

		r, err := req.ToDomain(found, now)
		if err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		if r.RescueType() == product.RescueStatusFoodBankAlert {
			open, err := tx.RescueRequests().OpenAlertProductIDs(ctx, tx.DB(), r.ProductIDs())
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if len(open) > 0 {
				return ErrOpenAlertExists
			}
		}

		for _, p := range found {
			if err = p.MarkForRescue(r.RescueType(), now); err != nil {
				return errs.Mark(err, ErrDomainValidationFailed)
			}
			if err = tx.Products().SaveRescue(ctx, tx.DB(), p); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err = tx.RescueRequests().Create(ctx, tx.DB(), r); err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.Mark(err, ErrOpenAlertExists)
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, ErrStoreNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if req.IdempotencyKey != nil {
			if err = tx.Idempotency().Complete(ctx, tx.DB(), *req.IdempotencyKey, createRescueEndpoint, r.ID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		created, products = r, found
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if replayed != uuid.Nil {
		return replayed, nil
	}

	if created.RescueType() == product.RescueStatusFoodBankAlert {
		notifyAlerts(ctx, uc.notifier, []RescueAlert{newRescueAlert(created, products)})
	}
	return created.ID(), nil
}

// handleIdempotency claims key for this request. It returns the previously
// created request ID when the key was already used with an identical body.
func (uc *rescueCommandsImpl) handleIdempotency(ctx context.Context, tx shared.Tx, key uuid.UUID, req reqdto.CreateRescueRequestRequest, now time.Time) (*uuid.UUID, error) {
	hash, err := calculateRequestHash(req)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash request")
	}

	claimed, err := tx.Idempotency().Claim(ctx, tx.DB(), key, createRescueEndpoint, hash, now, now.Add(idempotencyTTL))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if claimed {
		return nil, nil
	}

	record, err := tx.Idempotency().Find(ctx, tx.DB(), key, createRescueEndpoint)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if record.RequestHash != hash {
		return nil, ErrIdempotencyKeyReused
	}
	if record.ResultID == nil {
		return nil, errs.New("idempotency key claimed without result")
	}
	return record.ResultID, nil
}

func calculateRequestHash(req reqdto.CreateRescueRequestRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// UpdateStatus moves a request through its lifecycle. The row is locked for
// the duration, so concurrent claims resolve to the first writer.
func (uc *rescueCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateRescueStatusRequest) error {
	change, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrInvalidStatus)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.RescueRequests().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRescueRequestNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if change.FoodBankID != nil {
			if _, err = tx.FoodBanks().FindByID(ctx, tx.DB(), *change.FoodBankID); err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, ErrUnknownFoodBank)
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err = r.ChangeStatus(change, uc.clock.Now()); err != nil {
			switch {
			case errs.Is(err, rescue.ErrInvalidTransition):
				return errs.Mark(err, ErrInvalidTransition)
			case errs.Is(err, rescue.ErrInvalidStatus):
				return errs.Mark(err, ErrInvalidStatus)
			}
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		if err = tx.RescueRequests().UpdateStatus(ctx, tx.DB(), r); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRescueRequestNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
