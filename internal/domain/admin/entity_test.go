//go:build unit

package admin_test

import (
	"testing"
	"time"

	"resqcart/internal/domain/admin"
	"resqcart/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AdminBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewAdminBuilder()
			tc.mutate(b)
			a, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, a)
		})
	}
}

func TestAdmin(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		a, err := builder.NewAdminBuilder().WithEmail("  Ada@ResQCart.TEST ").BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, "ada@resqcart.test", a.Email().Value())
		assert.Equal(t, admin.RoleAdmin, a.Role())
		assert.NotEqual(t, "s3cret!", a.PasswordHash())
		assert.Nil(t, a.LastLoginAt())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.AdminBuilder) { b.WithEmail("ops@store.example") }},
			{name: "empty", mutate: func(b *builder.AdminBuilder) { b.WithEmail("") }, errIs: admin.ErrInvalidEmail},
			{name: "no at sign", mutate: func(b *builder.AdminBuilder) { b.WithEmail("ops.store.example") }, errIs: admin.ErrInvalidEmail},
		})
	})

	t.Run("password", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "six chars", mutate: func(b *builder.AdminBuilder) { b.WithPassword("abcdef") }},
			{name: "five chars", mutate: func(b *builder.AdminBuilder) { b.WithPassword("abcde") }, errIs: admin.ErrPasswordTooWeak},
		})
	})

	t.Run("names", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank first name", mutate: func(b *builder.AdminBuilder) { b.FirstName = " " }, errIs: admin.ErrEmptyName},
			{name: "blank last name", mutate: func(b *builder.AdminBuilder) { b.LastName = "" }, errIs: admin.ErrEmptyName},
		})
	})
}

func TestRecordLogin(t *testing.T) {
	a := builder.NewAdminBuilder().BuildPersisted()
	before := *a
	at := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)
	a.RecordLogin(at)

	require.NotNil(t, a.LastLoginAt())
	assert.Equal(t, at, *a.LastLoginAt())
	if diff := cmp.Diff(before.ID(), a.ID()); diff != "" {
		t.Errorf("id changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, before.Email(), a.Email())
	assert.Equal(t, at, a.UpdatedAt())
}

func TestRole(t *testing.T) {
	r, err := admin.NewRole("admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", r.String())

	_, err = admin.NewRole("viewer")
	assert.ErrorIs(t, err, admin.ErrInvalidRole)
}
