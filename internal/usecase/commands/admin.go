package commands

import (
	"context"

	"resqcart/internal/domain/admin"
	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/infra"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/pkg/password"
	"resqcart/internal/usecase/shared"

	"github.com/google/uuid"
)

type AdminCommands interface {
	Create(ctx context.Context, req reqdto.CreateAdminRequest) (uuid.UUID, error)
}

type adminCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAdminCommands(uow shared.UnitOfWork, clk clock.Clock) AdminCommands {
	return &adminCommandsImpl{uow: uow, clock: clk}
}

func (uc *adminCommandsImpl) Create(ctx context.Context, req reqdto.CreateAdminRequest) (uuid.UUID, error) {
	email, err := admin.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	pw, err := admin.NewPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	hash, err := password.Hash(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash admin password")
	}
	adm, err := admin.NewAdmin(email, hash, req.FirstName, req.LastName, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if cerr := tx.Admins().Create(ctx, tx.DB(), adm); cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return errs.Mark(cerr, ErrDuplicateAdmin)
			}
			return errs.Mark(cerr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return adm.ID(), nil
}
