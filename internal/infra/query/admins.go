package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const adminColumns = `id, email, password_hash, first_name, last_name, role, last_login_at, created_at, updated_at`

type CreateAdminParams struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

const createAdmin = `INSERT INTO admins (id, email, password_hash, first_name, last_name, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (q *Queries) CreateAdmin(ctx context.Context, db DBTX, arg CreateAdminParams) error {
	_, err := db.Exec(ctx, createAdmin,
		arg.ID, arg.Email, arg.PasswordHash, arg.FirstName, arg.LastName, arg.Role, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getAdminByEmail = `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`

func (q *Queries) GetAdminByEmail(ctx context.Context, db DBTX, email string) (Admins, error) {
	return collectOne[Admins](ctx, db, getAdminByEmail, email)
}

const getAdminByID = `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

func (q *Queries) GetAdminByID(ctx context.Context, db DBTX, id uuid.UUID) (Admins, error) {
	return collectOne[Admins](ctx, db, getAdminByID, id)
}

const updateAdminLastLogin = `UPDATE admins SET last_login_at = $2, updated_at = $2 WHERE id = $1`

func (q *Queries) UpdateAdminLastLogin(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, updateAdminLastLogin, id, at)
	return err
}
