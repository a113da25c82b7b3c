//go:build unit || e2e

package builder

import (
	"time"

	"resqcart/internal/domain/admin"
	"resqcart/internal/pkg/password"

	"github.com/google/uuid"
)

type AdminBuilder struct {
	ID        uuid.UUID
	Email     string
	Password  string
	FirstName string
	LastName  string
	CreatedAt time.Time
}

func NewAdminBuilder() *AdminBuilder {
	return &AdminBuilder{
		ID:        uuid.New(),
		Email:     "admin@resqcart.test",
		Password:  "s3cret!",
		FirstName: "Ada",
		LastName:  "Admin",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *AdminBuilder) With(mutate func(*AdminBuilder)) *AdminBuilder {
	mutate(b)
	return b
}

func (b *AdminBuilder) WithEmail(email string) *AdminBuilder {
	b.Email = email
	return b
}

func (b *AdminBuilder) WithPassword(pw string) *AdminBuilder {
	b.Password = pw
	return b
}

func (b *AdminBuilder) BuildDomain() (*admin.Admin, error) {
	email, err := admin.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	pw, err := admin.NewPassword(b.Password)
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(pw.Value())
	if err != nil {
		return nil, err
	}
	return admin.NewAdmin(email, hash, b.FirstName, b.LastName, b.CreatedAt)
}

// BuildPersisted hashes with the minimum bcrypt cost to keep tests fast.
func (b *AdminBuilder) BuildPersisted() *admin.Admin {
	hash, _ := password.HashWithCost(b.Password, password.MinCost)
	return admin.ReconstructAdmin(
		b.ID, admin.EmailFromTrusted(b.Email), hash,
		b.FirstName, b.LastName, admin.RoleAdmin,
		nil, b.CreatedAt, b.CreatedAt,
	)
}
