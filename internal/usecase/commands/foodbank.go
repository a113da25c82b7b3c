package commands

import (
	"context"

	"resqcart/internal/domain/foodbank"
	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/infra"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FoodBankCommands interface {
	Register(ctx context.Context, req reqdto.RegisterFoodBankRequest) (uuid.UUID, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, req reqdto.UpdateVerificationRequest) error
}

type foodBankCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFoodBankCommands(uow shared.UnitOfWork, clk clock.Clock) FoodBankCommands {
	return &foodBankCommandsImpl{uow: uow, clock: clk}
}

func (uc *foodBankCommandsImpl) Register(ctx context.Context, req reqdto.RegisterFoodBankRequest) (uuid.UUID, error) {
	var in foodbank.RegisterInput
	if err := copier.Copy(&in, &req); err != nil {
		return uuid.Nil, errs.Wrap(err, "copy food bank registration")
	}

	fb, err := foodbank.Register(in, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if cerr := tx.FoodBanks().Create(ctx, tx.DB(), fb); cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return errs.Mark(cerr, ErrDuplicateFoodBank)
			}
			return errs.Mark(cerr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return fb.ID(), nil
}

func (uc *foodBankCommandsImpl) UpdateVerification(ctx context.Context, id uuid.UUID, req reqdto.UpdateVerificationRequest) error {
	status, err := foodbank.ParseVerificationStatus(req.Status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fb, err := tx.FoodBanks().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrFoodBankNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		fb.SetVerification(status, uc.clock.Now())
		if err = tx.FoodBanks().UpdateVerification(ctx, tx.DB(), fb); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrFoodBankNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
