package admin

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	firstName    string
	lastName     string
	role         Role
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAdmin(email Email, passwordHash, firstName, lastName string, now time.Time) (*Admin, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}
	return &Admin{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         RoleAdmin,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (a *Admin) ID() uuid.UUID           { return a.id }
func (a *Admin) Email() Email            { return a.email }
func (a *Admin) PasswordHash() string    { return a.passwordHash }
func (a *Admin) FirstName() string       { return a.firstName }
func (a *Admin) LastName() string        { return a.lastName }
func (a *Admin) Role() Role              { return a.role }
func (a *Admin) LastLoginAt() *time.Time { return a.lastLoginAt }
func (a *Admin) CreatedAt() time.Time    { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time    { return a.updatedAt }

func ReconstructAdmin(
	id uuid.UUID,
	email Email,
	passwordHash, firstName, lastName string,
	role Role,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) *Admin {
	return &Admin{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// EmailFromTrusted wraps an address already normalized by the database.
func EmailFromTrusted(s string) Email {
	return Email{value: s}
}

func (a *Admin) RecordLogin(now time.Time) {
	a.lastLoginAt = &now
	a.updatedAt = now
}
