//go:build e2e

package e2etest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	reqdto "resqcart/internal/handler/dto/request"
	resdto "resqcart/internal/handler/dto/response"
	"resqcart/internal/testutil/httptest"
	"resqcart/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	truncateOnce sync.Once
	truncateSQL  string
	truncateErr  error
)

// ResetDB truncates every table except the migration ledger.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename <> 'schema_migrations'`)
		if err != nil {
			truncateErr = err
			return
		}
		defer rows.Close()

		var tables []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				truncateErr = err
				return
			}
			tables = append(tables, name)
		}
		if err := rows.Err(); err != nil {
			truncateErr = err
			return
		}
		if len(tables) == 0 {
			truncateErr = fmt.Errorf("no tables to truncate")
			return
		}
		truncateSQL = "TRUNCATE " + strings.Join(tables, ", ") + " CASCADE"
	})
	if truncateErr != nil {
		return truncateErr
	}

	_, err := pool.Exec(ctx, truncateSQL)
	return err
}

func CreateStore(t *testing.T, pool *pgxpool.Pool, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO stores (id, name, address) VALUES ($1, $2, $3)", id, name, name+" address")
	require.NoError(t, err)
	return id
}

// LoginAsNewAdmin creates an administrator through the use case and returns a bearer token for it.
func LoginAsNewAdmin(t *testing.T, router *gin.Engine, admins commands.AdminCommands, email string) string {
	t.Helper()

	const password = "password123"
	_, err := admins.Create(context.Background(), reqdto.CreateAdminRequest{
		Email:     email,
		Password:  password,
		FirstName: "Test",
		LastName:  "Admin",
	})
	require.NoError(t, err)

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}
