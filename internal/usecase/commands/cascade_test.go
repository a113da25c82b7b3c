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

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expiringIn(d time.Duration) *builder.ProductBuilder {
	return builder.NewProductBuilder().WithExpiration(testNow.Add(d))
}

func TestCascadeCommands_Run(t *testing.T) {
	ctx := context.Background()
	day := 24 * time.Hour

	t.Run("classifies every band and raises one alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		notifier := commandsmock.NewMockRescueNotifier(ctrl)

		stage1 := expiringIn(6 * day).BuildPersisted()
		stage2 := expiringIn(3 * day).BuildPersisted()
		stage3 := expiringIn(2 * day).BuildPersisted()
		stage4 := expiringIn(-time.Hour).BuildPersisted()
		expired := expiringIn(-30 * time.Hour).BuildPersisted()
		fresh := expiringIn(20 * day).BuildPersisted()
		alreadyStage2 := expiringIn(3*day).WithRescue(product.RescueStatusPriceReduction, 2).BuildPersisted()

		candidates := []*product.Product{stage1, stage2, stage3, stage4, expired, fresh, alreadyStage2}
		h.products.EXPECT().CascadeCandidates(gomock.Any(), gomock.Any(), (*uuid.UUID)(nil)).Return(candidates, nil)
		h.requests.EXPECT().OpenAlertProductIDs(gomock.Any(), gomock.Any(), gomock.Len(len(candidates))).
			Return(map[uuid.UUID]struct{}{}, nil)
		h.products.EXPECT().SaveRescue(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)

		var created *rescue.Request
		h.requests.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ query.DBTX, r *rescue.Request) error {
				created = r
				return nil
			},
		)
		notifier.EXPECT().NotifyRescueAlerts(gomock.Any(), gomock.Len(1)).DoAndReturn(
			func(_ context.Context, alerts []commands.RescueAlert) error {
				assert.Equal(t, created.ID(), alerts[0].RequestID)
				require.Len(t, alerts[0].Items, 1)
				assert.Equal(t, stage3.ID(), alerts[0].Items[0].ProductID)
				return nil
			},
		)

		uc := commands.NewCascadeCommands(h.uow, notifier, clock.NewMockClock(testNow))
		result, err := uc.Run(ctx, reqdto.RunCascadeRequest{})

		require.NoError(t, err)
		assert.Equal(t, rescue.Counts{Stage1: 1, Stage2: 1, Stage3: 1, Stage4: 1}, result.Counts)
		assert.Equal(t, 7, result.TotalProductsProcessed)
		assert.Equal(t, 4, result.TotalProductsRescued)
		assert.Equal(t, 1, result.RequestsCreated)

		assert.True(t, stage1.CurrentPrice().Equal(decimal.RequireFromString("3.60")))
		assert.Equal(t, 10, stage1.DiscountPercentage())
		assert.True(t, stage2.CurrentPrice().Equal(decimal.RequireFromString("2.80")))
		assert.True(t, stage3.CurrentPrice().Equal(decimal.RequireFromString("4.00")))
		assert.Equal(t, product.RescueStatusFoodBankAlert, stage3.RescueStatus())
		assert.Equal(t, product.RescueStatusFinalSale, stage4.RescueStatus())
		assert.Equal(t, 0, expired.RescueStage())
		assert.Equal(t, 0, fresh.RescueStage())
		assert.False(t, fresh.AtRisk())

		require.NotNil(t, created)
		assert.Equal(t, stage3.StoreID(), created.StoreID())
		assert.Equal(t, 3, created.CascadeStage())
		require.NotNil(t, created.DaysUntilExpiration())
		assert.Equal(t, 2, *created.DaysUntilExpiration())
		assert.Equal(t, rescue.StatusPending, created.Status())
	})

	t.Run("skips request creation when the product already has an open alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		notifier := commandsmock.NewMockRescueNotifier(ctrl)

		p := expiringIn(2*24*time.Hour).WithRescue(product.RescueStatusPriceReduction, 2).BuildPersisted()
		storeID := p.StoreID()

		h.products.EXPECT().CascadeCandidates(gomock.Any(), gomock.Any(), &storeID).Return([]*product.Product{p}, nil)
		h.requests.EXPECT().OpenAlertProductIDs(gomock.Any(), gomock.Any(), []uuid.UUID{p.ID()}).
			Return(map[uuid.UUID]struct{}{p.ID(): {}}, nil)
		h.products.EXPECT().SaveRescue(gomock.Any(), gomock.Any(), p).Return(nil)

		uc := commands.NewCascadeCommands(h.uow, notifier, clock.NewMockClock(testNow))
		result, err := uc.Run(ctx, reqdto.RunCascadeRequest{StoreID: &storeID})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Counts.Stage3)
		assert.Equal(t, 0, result.RequestsCreated)
		assert.Equal(t, 3, p.RescueStage())
	})

	t.Run("second run over escalated products changes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		notifier := commandsmock.NewMockRescueNotifier(ctrl)

		p := expiringIn(6*24*time.Hour).WithRescue(product.RescueStatusPriceReduction, 1).BuildPersisted()
		h.products.EXPECT().CascadeCandidates(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*product.Product{p}, nil)
		h.requests.EXPECT().OpenAlertProductIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		uc := commands.NewCascadeCommands(h.uow, notifier, clock.NewMockClock(testNow))
		result, err := uc.Run(ctx, reqdto.RunCascadeRequest{})

		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalProductsProcessed)
		assert.Equal(t, 0, result.TotalProductsRescued)
	})

	t.Run("repository failure aborts the run without notifying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		notifier := commandsmock.NewMockRescueNotifier(ctrl)

		p := expiringIn(6 * 24 * time.Hour).BuildPersisted()
		h.products.EXPECT().CascadeCandidates(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*product.Product{p}, nil)
		h.requests.EXPECT().OpenAlertProductIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		h.products.EXPECT().SaveRescue(gomock.Any(), gomock.Any(), p).
			Return(infra.WrapRepoErr("failed to save rescue", errors.New("connection reset")))

		uc := commands.NewCascadeCommands(h.uow, notifier, clock.NewMockClock(testNow))
		result, err := uc.Run(ctx, reqdto.RunCascadeRequest{})

		assert.Nil(t, result)
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})

	t.Run("notifier failure does not fail the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		notifier := commandsmock.NewMockRescueNotifier(ctrl)

		p := expiringIn(36 * time.Hour).BuildPersisted()
		h.products.EXPECT().CascadeCandidates(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*product.Product{p}, nil)
		h.requests.EXPECT().OpenAlertProductIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		h.products.EXPECT().SaveRescue(gomock.Any(), gomock.Any(), p).Return(nil)
		h.requests.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().NotifyRescueAlerts(gomock.Any(), gomock.Any()).Return(errors.New("telegram unreachable"))

		uc := commands.NewCascadeCommands(h.uow, notifier, clock.NewMockClock(testNow))
		result, err := uc.Run(ctx, reqdto.RunCascadeRequest{})

		require.NoError(t, err)
		assert.Equal(t, 1, result.RequestsCreated)
	})
}
