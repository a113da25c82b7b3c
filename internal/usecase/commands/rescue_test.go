//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resqcart/internal/domain/product"
	"resqcart/internal/domain/rescue"
	reqdto "resqcart/internal/handler/dto/request"
	"resqcart/internal/infra"
	"resqcart/internal/infra/query"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/testutil/builder"
	commandsmock "resqcart/internal/testutil/mock/commands"
	"resqcart/internal/usecase/commands"
	"resqcart/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRescueCommands_CreateRequest(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	apples := builder.NewProductBuilder().WithStore(storeID).BuildPersisted()
	bread := builder.NewProductBuilder().WithStore(storeID).WithName("Sourdough").WithCategory("Bakery").BuildPersisted()

	t.Run("price reduction marks every product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		notifier := commandsmock.NewMockRescueNotifier(ctrl)

		a := builder.NewProductBuilder().WithStore(storeID).BuildPersisted()
		b := builder.NewProductBuilder().WithStore(storeID).BuildPersisted()
		h.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), []uuid.UUID{a.ID(), b.ID()}).
			Return([]*product.Product{a, b}, nil)
		h.products.EXPECT().SaveRescue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		var created *rescue.Request
		h.requests.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ query.DBTX, r *rescue.Request) error {
				created = r
				return nil
			},
		)

		uc := commands.NewRescueCommands(h.uow, notifier, clock.NewMockClock(testNow))
		id, err := uc.CreateRequest(ctx, reqdto.CreateRescueRequestRequest{
			StoreID:    storeID,
			ProductIDs: []uuid.UUID{a.ID(), b.ID(), a.ID()},
			RescueType: string(product.RescueStatusPriceReduction),
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID(), id)
		assert.Equal(t, rescue.StatusPending, created.Status())
		for _, p := range []*product.Product{a, b} {
			assert.Equal(t, product.RescueStatusPriceReduction, p.RescueStatus())
			require.NotNil(t, p.RescueActionDate())
			assert.Equal(t, testNow, *p.RescueActionDate())
		}
	})

	t.Run("food bank alert notifies after commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		notifier := commandsmock.NewMockRescueNotifier(ctrl)

		h.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*product.Product{bread}, nil)
		h.requests.EXPECT().OpenAlertProductIDs(gomock.Any(), gomock.Any(), []uuid.UUID{bread.ID()}).Return(map[uuid.UUID]struct{}{}, nil)
		h.products.EXPECT().SaveRescue(gomock.Any(), gomock.Any(), bread).Return(nil)
		h.requests.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().NotifyRescueAlerts(gomock.Any(), gomock.Len(1)).Return(nil)

		uc := commands.NewRescueCommands(h.uow, notifier, clock.NewMockClock(testNow))
		_, err := uc.CreateRequest(ctx, reqdto.CreateRescueRequestRequest{
			StoreID:    storeID,
			ProductIDs: []uuid.UUID{bread.ID()},
			RescueType: string(product.RescueStatusFoodBankAlert),
		})

		require.NoError(t, err)
	})

	tests := []struct {
		name    string
		req     reqdto.CreateRescueRequestRequest
		setup   func(h *txHarness)
		wantErr error
	}{
		{
			name: "unknown product",
			req: reqdto.CreateRescueRequestRequest{
				StoreID:    storeID,
				ProductIDs: []uuid.UUID{apples.ID(), uuid.New()},
				RescueType: string(product.RescueStatusPriceReduction),
			},
			setup: func(h *txHarness) {
				h.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*product.Product{apples}, nil)
			},
			wantErr: commands.ErrUnknownProduct,
		},
		{
			name: "invalid rescue type",
			req: reqdto.CreateRescueRequestRequest{
				StoreID:    storeID,
				ProductIDs: []uuid.UUID{apples.ID()},
				RescueType: "giveaway",
			},
			setup: func(h *txHarness) {
				h.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*product.Product{apples}, nil)
			},
			wantErr: commands.ErrDomainValidationFailed,
		},
		{
			name: "product from another store",
			req: reqdto.CreateRescueRequestRequest{
				StoreID:    uuid.New(),
				ProductIDs: []uuid.UUID{apples.ID()},
				RescueType: string(product.RescueStatusEmployeeDiscount),
			},
			setup: func(h *txHarness) {
				h.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*product.Product{apples}, nil)
			},
			wantErr: commands.ErrDomainValidationFailed,
		},
		{
			name: "open alert already exists",
			req: reqdto.CreateRescueRequestRequest{
				StoreID:    storeID,
				ProductIDs: []uuid.UUID{apples.ID()},
				RescueType: string(product.RescueStatusFoodBankAlert),
			},
			setup: func(h *txHarness) {
				h.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*product.Product{apples}, nil)
				h.requests.EXPECT().OpenAlertProductIDs(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(map[uuid.UUID]struct{}{apples.ID(): {}}, nil)
			},
			wantErr: commands.ErrOpenAlertExists,
		},
		{
			name: "insert failure",
			req: reqdto.CreateRescueRequestRequest{
				StoreID:    storeID,
				ProductIDs: []uuid.UUID{apples.ID()},
				RescueType: string(product.RescueStatusEmployeeDiscount),
			},
			setup: func(h *txHarness) {
				h.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*product.Product{apples}, nil)
				h.products.EXPECT().SaveRescue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				h.requests.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("failed to create rescue request", errors.New("connection reset")))
			},
			wantErr: commands.ErrDatabaseOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			tt.setup(h)

			uc := commands.NewRescueCommands(h.uow, commandsmock.NewMockRescueNotifier(ctrl), clock.NewMockClock(testNow))
			id, err := uc.CreateRequest(ctx, tt.req)

			assert.Equal(t, uuid.Nil, id)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestRescueCommands_CreateRequest_Idempotency(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	p := builder.NewProductBuilder().WithStore(storeID).BuildPersisted()
	key := uuid.New()
	req := reqdto.CreateRescueRequestRequest{
		StoreID:        storeID,
		ProductIDs:     []uuid.UUID{p.ID()},
		RescueType:     string(product.RescueStatusPriceReduction),
		IdempotencyKey: &key,
	}

	var storedHash string
	var firstID uuid.UUID

	t.Run("first use claims and completes the key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		notifier := commandsmock.NewMockRescueNotifier(ctrl)

		h.idem.EXPECT().Claim(gomock.Any(), gomock.Any(), key, "POST /api/rescue", gomock.Any(), testNow, testNow.Add(24*time.Hour)).
			DoAndReturn(func(_ context.Context, _ query.DBTX, _ uuid.UUID, _, hash string, _, _ time.Time) (bool, error) {
				storedHash = hash
				return true, nil
			})
		h.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*product.Product{p}, nil)
		h.products.EXPECT().SaveRescue(gomock.Any(), gomock.Any(), p).Return(nil)
		h.requests.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		h.idem.EXPECT().Complete(gomock.Any(), gomock.Any(), key, "POST /api/rescue", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, _ uuid.UUID, _ string, resultID uuid.UUID) error {
				firstID = resultID
				return nil
			})

		uc := commands.NewRescueCommands(h.uow, notifier, clock.NewMockClock(testNow))
		id, err := uc.CreateRequest(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, firstID, id)
		assert.Len(t, storedHash, 64)
	})

	t.Run("replay returns the original request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		notifier := commandsmock.NewMockRescueNotifier(ctrl)

		h.idem.EXPECT().Claim(gomock.Any(), gomock.Any(), key, gomock.Any(), storedHash, gomock.Any(), gomock.Any()).Return(false, nil)
		h.idem.EXPECT().Find(gomock.Any(), gomock.Any(), key, "POST /api/rescue").Return(&shared.IdempotencyRecord{
			Key:         key,
			Endpoint:    "POST /api/rescue",
			RequestHash: storedHash,
			ResultID:    &firstID,
		}, nil)

		uc := commands.NewRescueCommands(h.uow, notifier, clock.NewMockClock(testNow))
		id, err := uc.CreateRequest(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, firstID, id)
	})

	t.Run("key reused with a different body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		notifier := commandsmock.NewMockRescueNotifier(ctrl)

		h.idem.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		h.idem.EXPECT().Find(gomock.Any(), gomock.Any(), key, "POST /api/rescue").Return(&shared.IdempotencyRecord{
			Key:         key,
			RequestHash: "other",
			ResultID:    &firstID,
		}, nil)

		uc := commands.NewRescueCommands(h.uow, notifier, clock.NewMockClock(testNow))
		_, err := uc.CreateRequest(ctx, req)

		assert.True(t, errs.Is(err, commands.ErrIdempotencyKeyReused))
	})
}

func TestRescueCommands_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	foodBank := builder.NewFoodBankBuilder().BuildPersisted()

	pendingRequest := func() *rescue.Request {
		p := builder.NewProductBuilder().WithExpiration(testNow.Add(48 * time.Hour)).BuildPersisted()
		return rescue.NewCascadeRequest(p, 3, 2, testNow.Add(-time.Hour))
	}

	t.Run("accepting records the food bank and pickup time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		r := pendingRequest()
		pickup := testNow.Add(6 * time.Hour)
		fbID := foodBank.ID()

		h.requests.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.ID()).Return(r, nil)
		h.foodBanks.EXPECT().FindByID(gomock.Any(), gomock.Any(), fbID).Return(foodBank, nil)
		h.requests.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), r).Return(nil)

		uc := commands.NewRescueCommands(h.uow, nil, clock.NewMockClock(testNow))
		err := uc.UpdateStatus(ctx, r.ID(), reqdto.UpdateRescueStatusRequest{
			Status:              "accepted",
			FoodBankID:          &fbID,
			ScheduledPickupTime: &pickup,
		})

		require.NoError(t, err)
		assert.Equal(t, rescue.StatusAccepted, r.Status())
		require.NotNil(t, r.FoodBankID())
		assert.Equal(t, fbID, *r.FoodBankID())
		require.NotNil(t, r.ScheduledPickupTime())
		assert.Equal(t, pickup, *r.ScheduledPickupTime())
		assert.Equal(t, testNow, r.UpdatedAt())
	})

	t.Run("unknown status never opens a transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := newTxHarness(ctrl).uow

		uc := commands.NewRescueCommands(uow, nil, clock.NewMockClock(testNow))
		err := uc.UpdateStatus(ctx, uuid.New(), reqdto.UpdateRescueStatusRequest{Status: "shipped"})

		assert.True(t, errs.Is(err, commands.ErrInvalidStatus))
	})

	tests := []struct {
		name    string
		req     reqdto.UpdateRescueStatusRequest
		setup   func(h *txHarness, r *rescue.Request)
		wantErr error
	}{
		{
			name: "missing request",
			req:  reqdto.UpdateRescueStatusRequest{Status: "cancelled"},
			setup: func(h *txHarness, _ *rescue.Request) {
				h.requests.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, infra.WrapRepoErr("rescue request not found", nil, infra.KindNotFound))
			},
			wantErr: commands.ErrRescueRequestNotFound,
		},
		{
			name: "pending cannot jump to completed",
			req:  reqdto.UpdateRescueStatusRequest{Status: "completed"},
			setup: func(h *txHarness, r *rescue.Request) {
				h.requests.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
			},
			wantErr: commands.ErrInvalidTransition,
		},
		{
			name: "accepting without a food bank",
			req:  reqdto.UpdateRescueStatusRequest{Status: "accepted"},
			setup: func(h *txHarness, r *rescue.Request) {
				h.requests.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
			},
			wantErr: commands.ErrDomainValidationFailed,
		},
		{
			name: "unknown food bank",
			req:  reqdto.UpdateRescueStatusRequest{Status: "accepted", FoodBankID: func() *uuid.UUID { id := uuid.New(); return &id }()},
			setup: func(h *txHarness, r *rescue.Request) {
				h.requests.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
				h.foodBanks.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, infra.WrapRepoErr("food bank not found", nil, infra.KindNotFound))
			},
			wantErr: commands.ErrUnknownFoodBank,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			r := pendingRequest()
			tt.setup(h, r)

			uc := commands.NewRescueCommands(h.uow, nil, clock.NewMockClock(testNow))
			err := uc.UpdateStatus(ctx, r.ID(), tt.req)

			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, rescue.StatusPending, r.Status())
		})
	}
}
