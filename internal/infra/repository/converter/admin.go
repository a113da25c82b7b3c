package converter

import (
	"resqcart/internal/domain/admin"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/pgconv"
)

func AdminToCreateParams(a *admin.Admin) query.CreateAdminParams {
	return query.CreateAdminParams{
		ID:           a.ID(),
		Email:        a.Email().Value(),
		PasswordHash: a.PasswordHash(),
		FirstName:    a.FirstName(),
		LastName:     a.LastName(),
		Role:         a.Role().String(),
		CreatedAt:    pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AdminFromRow(row query.Admins) *admin.Admin {
	return admin.ReconstructAdmin(
		row.ID,
		admin.EmailFromTrusted(row.Email),
		row.PasswordHash, row.FirstName, row.LastName,
		admin.Role(row.Role),
		pgconv.TimePtrFromPgtype(row.LastLoginAt),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
