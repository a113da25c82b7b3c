package queries

import "resqcart/internal/pkg/errs"

var (
	ErrProductNotFound       = errs.New("product not found")
	ErrRescueRequestNotFound = errs.New("rescue request not found")
	ErrFoodBankNotFound      = errs.New("food bank not found")
	ErrAdminNotFound         = errs.New("admin not found")
	ErrInvalidCursor         = errs.New("invalid cursor")
	ErrInvalidFilter         = errs.New("invalid filter")
	ErrInvalidCoordinates    = errs.New("invalid coordinates")
)
