package request

import (
	"resqcart/internal/domain/admin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r *LoginRequest) ToDomain() (admin.Credentials, error) {
	return admin.NewCredentials(r.Email, r.Password)
}

// CreateAdminRequest is filled from resqctl flags rather than HTTP.
type CreateAdminRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}
