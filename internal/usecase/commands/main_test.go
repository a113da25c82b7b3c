//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	sharedmock "resqcart/internal/testutil/mock/shared"
	"resqcart/internal/usecase/shared"

	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

// txHarness runs every Within closure against mocked repositories.
type txHarness struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	products  *sharedmock.MockProductRepository
	requests  *sharedmock.MockRescueRequestRepository
	foodBanks *sharedmock.MockFoodBankRepository
	admins    *sharedmock.MockAdminRepository
	idem      *sharedmock.MockIdempotencyRepository
}

func newTxHarness(ctrl *gomock.Controller) *txHarness {
	h := &txHarness{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		products:  sharedmock.NewMockProductRepository(ctrl),
		requests:  sharedmock.NewMockRescueRequestRepository(ctrl),
		foodBanks: sharedmock.NewMockFoodBankRepository(ctrl),
		admins:    sharedmock.NewMockAdminRepository(ctrl),
		idem:      sharedmock.NewMockIdempotencyRepository(ctrl),
	}
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		},
	).AnyTimes()
	h.tx.EXPECT().Products().Return(h.products).AnyTimes()
	h.tx.EXPECT().RescueRequests().Return(h.requests).AnyTimes()
	h.tx.EXPECT().FoodBanks().Return(h.foodBanks).AnyTimes()
	h.tx.EXPECT().Admins().Return(h.admins).AnyTimes()
	h.tx.EXPECT().Idempotency().Return(h.idem).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	return h
}
