package usecase

import (
	"resqcart/internal/domain/admin"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errs.New("access token expired")
	ErrTokenInvalid = errs.New("access token invalid")
)

// TokenValidator resolves a bearer token to the admin it was issued to.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, admin.Role, error)
}

type jwtTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(svc *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwt: svc}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, admin.Role, error) {
	claims, err := v.jwt.ValidateToken(token)
	switch {
	case errs.Is(err, jwt.ErrExpiredToken):
		return uuid.Nil, "", errs.Mark(err, ErrTokenExpired)
	case err != nil:
		return uuid.Nil, "", errs.Mark(err, ErrTokenInvalid)
	case claims.AdminID == uuid.Nil:
		return uuid.Nil, "", ErrTokenInvalid
	}

	role, err := admin.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenInvalid)
	}
	return claims.AdminID, role, nil
}
