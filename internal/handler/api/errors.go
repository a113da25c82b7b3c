package api

import (
	"log/slog"
	"net/http"

	"resqcart/internal/handler/httperr"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/usecase"
	"resqcart/internal/usecase/commands"
	"resqcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters: the first match wins.
var errorMappings = []errorMapping{
	{commands.ErrDomainValidationFailed, http.StatusBadRequest, "Invalid request"},
	{commands.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
	{commands.ErrUnknownProduct, http.StatusBadRequest, "One or more products do not exist"},
	{commands.ErrUnknownFoodBank, http.StatusBadRequest, "Food bank does not exist"},
	{commands.ErrStoreNotFound, http.StatusBadRequest, "Store does not exist"},
	{queries.ErrInvalidFilter, http.StatusBadRequest, "Invalid filter"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{queries.ErrInvalidCoordinates, http.StatusBadRequest, "Invalid coordinates"},

	{commands.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{queries.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{commands.ErrRescueRequestNotFound, http.StatusNotFound, "Rescue request not found"},
	{queries.ErrRescueRequestNotFound, http.StatusNotFound, "Rescue request not found"},
	{commands.ErrFoodBankNotFound, http.StatusNotFound, "Food bank not found"},
	{queries.ErrFoodBankNotFound, http.StatusNotFound, "Food bank not found"},
	{queries.ErrAdminNotFound, http.StatusNotFound, "Admin not found"},

	{commands.ErrDuplicateSKU, http.StatusConflict, "Product with this SKU already exists"},
	{commands.ErrDuplicateFoodBank, http.StatusConflict, "Food bank with this email already exists"},
	{commands.ErrOpenAlertExists, http.StatusConflict, "Product already has an open food bank alert"},
	{commands.ErrInvalidTransition, http.StatusConflict, "Invalid status transition"},
	{commands.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "Idempotency-Key was used with a different request"},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{usecase.ErrSpoilageImageRejected, http.StatusBadRequest, "Image rejected by the spoilage model"},
	{usecase.ErrSpoilageModelUnavailable, http.StatusBadGateway, "Spoilage model service unavailable"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	slog.ErrorContext(c.Request.Context(), "request failed", "error", err, "path", c.FullPath())
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}
