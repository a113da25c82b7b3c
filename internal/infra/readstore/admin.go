package readstore

import (
	"context"

	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/pgconv"
	"resqcart/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdminReadQueries interface {
	GetAdminByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Admins, error)
}

type AdminReadStore struct {
	queries AdminReadQueries
	db      query.DBTX
}

func NewAdminReadStore(queries AdminReadQueries, db query.DBTX) *AdminReadStore {
	return &AdminReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AdminReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AdminView, error) {
	row, err := r.queries.GetAdminByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin by id", err)
	}
	return &queries.AdminView{
		ID:          row.ID,
		Email:       row.Email,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Role:        row.Role,
		LastLoginAt: pgconv.TimePtrFromPgtype(row.LastLoginAt),
	}, nil
}
