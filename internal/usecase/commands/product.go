package commands

import (
	"context"

	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/infra"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductCommands interface {
	Create(ctx context.Context, req reqdto.CreateProductRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProductCommands(uow shared.UnitOfWork, clk clock.Clock) ProductCommands {
	return &productCommandsImpl{uow: uow, clock: clk}
}

func (uc *productCommandsImpl) Create(ctx context.Context, req reqdto.CreateProductRequest) (uuid.UUID, error) {
	p, err := req.ToDomain(uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if cerr := tx.Products().Create(ctx, tx.DB(), p); cerr != nil {
			switch {
			case infra.IsKind(cerr, infra.KindDuplicateKey):
				return errs.Mark(cerr, ErrDuplicateSKU)
			case infra.IsKind(cerr, infra.KindForeignKeyViolated):
				return errs.Mark(cerr, ErrStoreNotFound)
			case infra.IsKind(cerr, infra.KindCheckViolated):
				return errs.Mark(cerr, ErrDomainValidationFailed)
			}
			return errs.Mark(cerr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func (uc *productCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest) error {
	in := req.ToDomain()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Products().FindForUpdate(ctx, tx.DB(), []uuid.UUID{id})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if len(found) == 0 {
			return ErrProductNotFound
		}

		p := found[0]
		if err = p.Update(in, uc.clock.Now()); err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}
		if err = tx.Products().Update(ctx, tx.DB(), p); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrProductNotFound)
			case infra.IsKind(err, infra.KindCheckViolated):
				return errs.Mark(err, ErrDomainValidationFailed)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *productCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Products().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrProductNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
