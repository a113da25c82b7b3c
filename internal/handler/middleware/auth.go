package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"resqcart/internal/domain/admin"
	"resqcart/internal/handler/httperr"
	"resqcart/internal/pkg/cookie"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAdminIDKey   = "admin_id"
	ctxAdminRoleKey = "admin_role"
	ctxClaimsKey    = "jwt_claims"
)

var (
	errMissingToken = errs.New("access token required")
	errInvalidToken = errs.New("invalid or expired token")
	errForbidden    = errs.New("insufficient permissions")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the access_token cookie first, then a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			return
		}
		c.Next()
	}
}

// RequireAdmin authenticates and checks the role claim in one step.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			return
		}
		if role, _ := GetAdminRole(c); role != admin.RoleAdmin {
			httperr.AbortWithError(c, http.StatusForbidden, errForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) bool {
	token := extractToken(c)
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
		return false
	}

	adminID, role, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "token rejected", "error", err.Error(), "path", c.FullPath())
		msg := "Invalid or expired token"
		if errs.Is(err, usecase.ErrTokenExpired) {
			msg = "Token expired"
		}
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errInvalidToken), msg, nil)
		return false
	}

	c.Set(ctxAdminIDKey, adminID)
	c.Set(ctxAdminRoleKey, role)
	c.Set(ctxClaimsKey, map[string]any{
		"admin_id": adminID.String(),
		"role":     string(role),
	})
	return true
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	adminID, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := adminID.(uuid.UUID)
	return id, ok
}

func GetAdminRole(c *gin.Context) (admin.Role, bool) {
	adminRole, exists := c.Get(ctxAdminRoleKey)
	if !exists {
		return "", false
	}

	role, ok := adminRole.(admin.Role)
	return role, ok
}
