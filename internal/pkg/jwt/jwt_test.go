//go:build unit

package jwt

import (
	"testing"
	"time"

	"resqcart/internal/domain/admin"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/errs"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	svc := NewService("secret", time.Hour)
	adminID := uuid.New()

	token, err := svc.GenerateToken(adminID, admin.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, issuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
		svc := NewService("secret", time.Minute, WithClock(clk))

		token, err := svc.GenerateToken(uuid.New(), admin.RoleAdmin)
		require.NoError(t, err)

		clk.Advance(2 * time.Hour)
		_, err = svc.ValidateToken(token)
		assert.True(t, errs.Is(err, ErrExpiredToken))
	})

	t.Run("foreign signature", func(t *testing.T) {
		token, err := NewService("other", time.Hour).GenerateToken(uuid.New(), admin.RoleAdmin)
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).ValidateToken(token)
		assert.True(t, errs.Is(err, ErrInvalidToken))
	})

	t.Run("foreign issuer", func(t *testing.T) {
		claims := Claims{
			AdminID: uuid.New(),
			Role:    "admin",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).ValidateToken(token)
		assert.True(t, errs.Is(err, ErrInvalidToken))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.True(t, errs.Is(err, ErrInvalidToken))
	})
}
