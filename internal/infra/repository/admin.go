package repository

import (
	"context"

	"resqcart/internal/domain/admin"
	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/infra/repository/converter"
	"resqcart/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AdminWriteQueries interface {
	CreateAdmin(ctx context.Context, db query.DBTX, arg query.CreateAdminParams) error
	GetAdminByEmail(ctx context.Context, db query.DBTX, email string) (query.Admins, error)
	UpdateAdminLastLogin(ctx context.Context, db query.DBTX, id uuid.UUID, at pgtype.Timestamptz) error
}

type AdminRepository struct {
	queries AdminWriteQueries
}

func NewAdminRepository(queries AdminWriteQueries) *AdminRepository {
	return &AdminRepository{queries: queries}
}

func (r *AdminRepository) Create(ctx context.Context, db query.DBTX, a *admin.Admin) error {
	if err := r.queries.CreateAdmin(ctx, db, converter.AdminToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to create admin", err)
	}
	return nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, db query.DBTX, email admin.Email) (*admin.Admin, error) {
	row, err := r.queries.GetAdminByEmail(ctx, db, email.Value())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find admin by email", err)
	}
	return converter.AdminFromRow(row), nil
}

func (r *AdminRepository) RecordLogin(ctx context.Context, db query.DBTX, a *admin.Admin) error {
	if err := r.queries.UpdateAdminLastLogin(ctx, db, a.ID(), pgconv.TimePtrToPgtype(a.LastLoginAt())); err != nil {
		return infra.WrapRepoErr("failed to update admin last login", err)
	}
	return nil
}
