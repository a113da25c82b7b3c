//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resqcart/internal/domain/product"
	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/testutil/builder"
	"resqcart/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validCreateProductRequest() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		StoreID:         uuid.New(),
		Name:            "Whole Milk",
		Category:        "Dairy",
		SKU:             "MILK-001",
		Price:           decimal.RequireFromString("3.49"),
		QuantityInStock: 24,
		ExpirationDate:  testNow.Add(5 * 24 * time.Hour),
	}
}

func TestProductCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the product with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)

		var saved *product.Product
		h.products.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ query.DBTX, p *product.Product) error {
				saved = p
				return nil
			},
		)

		uc := commands.NewProductCommands(h.uow, clock.NewMockClock(testNow))
		id, err := uc.Create(ctx, validCreateProductRequest())

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID(), id)
		assert.Equal(t, "each", saved.Unit())
		assert.Equal(t, product.StorageAmbient, saved.StorageConditions())
		assert.True(t, saved.CurrentPrice().Equal(saved.Price()))
		assert.Equal(t, product.RescueStatusNone, saved.RescueStatus())
	})

	t.Run("validation failure skips the transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)

		req := validCreateProductRequest()
		req.Price = decimal.Zero

		uc := commands.NewProductCommands(h.uow, clock.NewMockClock(testNow))
		_, err := uc.Create(ctx, req)

		assert.True(t, errs.Is(err, commands.ErrDomainValidationFailed))
	})

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{
			name:    "duplicate sku",
			repoErr: infra.WrapRepoErr("failed to create product", &pgconn.PgError{Code: "23505"}),
			wantErr: commands.ErrDuplicateSKU,
		},
		{
			name:    "unknown store",
			repoErr: infra.WrapRepoErr("failed to create product", &pgconn.PgError{Code: "23503"}),
			wantErr: commands.ErrStoreNotFound,
		},
		{
			name:    "database failure",
			repoErr: infra.WrapRepoErr("failed to create product", errors.New("connection reset")),
			wantErr: commands.ErrDatabaseOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			h.products.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.repoErr)

			uc := commands.NewProductCommands(h.uow, clock.NewMockClock(testNow))
			id, err := uc.Create(ctx, validCreateProductRequest())

			assert.Equal(t, uuid.Nil, id)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestProductCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only the provided fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		p := builder.NewProductBuilder().WithPrice("10.00").BuildPersisted()
		originalName := p.Name()

		h.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), []uuid.UUID{p.ID()}).Return([]*product.Product{p}, nil)
		h.products.EXPECT().Update(gomock.Any(), gomock.Any(), p).Return(nil)

		discount := 25
		qty := 3
		uc := commands.NewProductCommands(h.uow, clock.NewMockClock(testNow))
		err := uc.Update(ctx, p.ID(), reqdto.UpdateProductRequest{
			DiscountPercentage: &discount,
			QuantityInStock:    &qty,
		})

		require.NoError(t, err)
		assert.Equal(t, originalName, p.Name())
		assert.Equal(t, 3, p.QuantityInStock())
		assert.True(t, p.CurrentPrice().Equal(decimal.RequireFromString("7.50")))
		assert.Equal(t, testNow, p.UpdatedAt())
	})

	t.Run("missing product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		h.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		uc := commands.NewProductCommands(h.uow, clock.NewMockClock(testNow))
		err := uc.Update(ctx, uuid.New(), reqdto.UpdateProductRequest{})

		assert.True(t, errs.Is(err, commands.ErrProductNotFound))
	})

	t.Run("invalid update leaves the product untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		p := builder.NewProductBuilder().BuildPersisted()
		h.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*product.Product{p}, nil)

		negative := -1
		uc := commands.NewProductCommands(h.uow, clock.NewMockClock(testNow))
		err := uc.Update(ctx, p.ID(), reqdto.UpdateProductRequest{QuantityInStock: &negative})

		assert.True(t, errs.Is(err, commands.ErrDomainValidationFailed))
		assert.Equal(t, 10, p.QuantityInStock())
	})
}

func TestProductCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		id := uuid.New()
		h.products.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil)

		uc := commands.NewProductCommands(h.uow, clock.NewMockClock(testNow))
		assert.NoError(t, uc.Delete(ctx, id))
	})

	t.Run("missing product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		h.products.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

		uc := commands.NewProductCommands(h.uow, clock.NewMockClock(testNow))
		err := uc.Delete(ctx, uuid.New())

		assert.True(t, errs.Is(err, commands.ErrProductNotFound))
	})
}
