//go:build unit

package commands_test

import (
	"context"
	"testing"

	"resqcart/internal/domain/admin"
	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/pkg/password"
	"resqcart/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminCommands_Create(t *testing.T) {
	ctx := context.Background()
	req := reqdto.CreateAdminRequest{
		Email:     "Ops@ResQCart.test",
		Password:  "hunter22",
		FirstName: "Olive",
		LastName:  "Ops",
	}

	t.Run("stores a hashed password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)

		var saved *admin.Admin
		h.admins.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ query.DBTX, a *admin.Admin) error {
				saved = a
				return nil
			},
		)

		uc := commands.NewAdminCommands(h.uow, clock.NewMockClock(testNow))
		id, err := uc.Create(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID(), id)
		assert.Equal(t, "ops@resqcart.test", saved.Email().Value())
		assert.Equal(t, admin.RoleAdmin, saved.Role())
		assert.NotEqual(t, req.Password, saved.PasswordHash())
		assert.NoError(t, password.Compare(saved.PasswordHash(), req.Password))
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		h.admins.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create admin", &pgconn.PgError{Code: "23505"}))

		uc := commands.NewAdminCommands(h.uow, clock.NewMockClock(testNow))
		id, err := uc.Create(ctx, req)

		assert.Equal(t, uuid.Nil, id)
		assert.True(t, errs.Is(err, commands.ErrDuplicateAdmin))
	})

	t.Run("weak password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)

		bad := req
		bad.Password = "abc"

		uc := commands.NewAdminCommands(h.uow, clock.NewMockClock(testNow))
		_, err := uc.Create(ctx, bad)

		assert.True(t, errs.Is(err, commands.ErrDomainValidationFailed))
	})
}
