package commands

import (
	"context"
	"log/slog"

	"resqcart/internal/domain/admin"
	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/infra"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/pkg/jwt"
	"resqcart/internal/pkg/password"
	"resqcart/internal/usecase/queries"
	"resqcart/internal/usecase/shared"
)

type LoginResult struct {
	AccessToken string
	Admin       *queries.AdminView
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	var found *admin.Admin
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		adm, ferr := tx.Admins().FindByEmail(ctx, tx.DB(), credentials.Email())
		if ferr != nil {
			if infra.IsKind(ferr, infra.KindNotFound) {
				_ = password.CompareMissing(credentials.Password().Value())
				return ErrInvalidCredentials
			}
			return errs.Mark(ferr, ErrAuthenticationFailed)
		}

		if perr := password.Compare(adm.PasswordHash(), credentials.Password().Value()); perr != nil {
			return ErrInvalidCredentials
		}

		adm.RecordLogin(a.clock.Now())
		if uerr := tx.Admins().RecordLogin(ctx, tx.DB(), adm); uerr != nil {
			slog.Warn("failed to update last login", "admin_id", adm.ID(), "error", uerr.Error())
			// Continue without failing - this is not critical
		}
		found = adm
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(found.ID(), found.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccessToken: token,
		Admin: &queries.AdminView{
			ID:          found.ID(),
			Email:       found.Email().Value(),
			FirstName:   found.FirstName(),
			LastName:    found.LastName(),
			Role:        found.Role().String(),
			LastLoginAt: found.LastLoginAt(),
		},
	}, nil
}
