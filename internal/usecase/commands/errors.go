package commands

import (
	"resqcart/internal/pkg/errs"
)

var (
	ErrDomainValidationFailed  = errs.New("domain validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")

	ErrProductNotFound = errs.New("product not found")
	ErrDuplicateSKU    = errs.New("product sku already exists")
	ErrStoreNotFound   = errs.New("store not found")

	ErrUnknownProduct        = errs.New("one or more products do not exist")
	ErrOpenAlertExists       = errs.New("product already has an open food bank alert")
	ErrRescueRequestNotFound = errs.New("rescue request not found")
	ErrInvalidStatus         = errs.New("invalid rescue request status")
	ErrInvalidTransition     = errs.New("rescue request status transition not allowed")
	ErrUnknownFoodBank       = errs.New("food bank does not exist")
	ErrIdempotencyKeyReused  = errs.New("idempotency key reused with a different request")

	ErrFoodBankNotFound  = errs.New("food bank not found")
	ErrDuplicateFoodBank = errs.New("food bank email already registered")

	ErrDuplicateAdmin       = errs.New("admin email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)
