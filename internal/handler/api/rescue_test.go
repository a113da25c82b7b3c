//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"resqcart/internal/domain/product"
	"resqcart/internal/domain/rescue"
	"resqcart/internal/handler/api"
	reqdto "resqcart/internal/handler/dto/request"
	resdto "resqcart/internal/handler/dto/response"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/testutil"
	"resqcart/internal/testutil/httptest"
	commandsmock "resqcart/internal/testutil/mock/commands"
	queriesmock "resqcart/internal/testutil/mock/queries"
	"resqcart/internal/usecase/commands"
	"resqcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RescueHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockRescueCommands
	mockCascade   *commandsmock.MockCascadeCommands
	mockQueries   *queriesmock.MockRescueRequestQueries
	mockFoodBanks *queriesmock.MockFoodBankQueries
	handler       *api.RescueHandler
}

func (s *RescueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRescueCommands(s.mockCtrl)
	s.mockCascade = commandsmock.NewMockCascadeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRescueRequestQueries(s.mockCtrl)
	s.mockFoodBanks = queriesmock.NewMockFoodBankQueries(s.mockCtrl)
	s.handler = api.NewRescueHandler(s.mockCommands, s.mockCascade, s.mockQueries, s.mockFoodBanks)

	s.router.GET("/rescue", s.handler.List)
	s.router.GET("/rescue/nearby-foodbanks", s.handler.NearbyFoodBanks)
	s.router.GET("/rescue/store/:storeId", s.handler.ListByStore)
	s.router.GET("/rescue/foodbank/:foodBankId", s.handler.ListByFoodBank)
	s.router.GET("/rescue/:id", s.handler.Get)
	s.router.POST("/rescue", s.handler.Create)
	s.router.POST("/rescue/cascade", s.handler.RunCascade)
	s.router.PATCH("/rescue/:id/status", s.handler.UpdateStatus)
}

func (s *RescueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRescueHandlerSuite(t *testing.T) {
	suite.Run(t, new(RescueHandlerTestSuite))
}

func newRescueView(status string) *queries.RescueRequestView {
	days := 2
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	return &queries.RescueRequestView{
		ID:                  uuid.New(),
		StoreID:             uuid.New(),
		StoreName:           "Downtown Market",
		RescueType:          string(product.RescueStatusFoodBankAlert),
		RescueCascadeStage:  4,
		DaysUntilExpiration: &days,
		Status:              status,
		TotalValue:          decimal.RequireFromString("12.50"),
		TotalWeight:         5,
		EnvironmentalImpact: 12.5,
		Products:            []*queries.RescueProductItem{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// ================================================================================
// TestList
// ================================================================================

func (s *RescueHandlerTestSuite) TestList() {
	s.Run("success: status filter is forwarded", func() {
		view := newRescueView("pending")
		s.mockQueries.EXPECT().List(gomock.Any(), "pending").Return([]*queries.RescueRequestView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rescue?status=pending", nil, "")

		var body []queries.RescueRequestView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID, body[0].ID)
	})

	s.Run("success: empty list encodes as array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "").Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rescue", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on unknown status", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "lost").
			Return(nil, errs.Mark(errors.New("invalid status"), queries.ErrInvalidFilter))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rescue?status=lost", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
	})
}

func (s *RescueHandlerTestSuite) TestListByStoreAndFoodBank() {
	storeID, foodBankID := uuid.New(), uuid.New()
	s.mockQueries.EXPECT().ListByStore(gomock.Any(), storeID).Return([]*queries.RescueRequestView{newRescueView("pending")}, nil)
	s.mockQueries.EXPECT().ListByFoodBank(gomock.Any(), foodBankID).Return(nil, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rescue/store/"+storeID.String(), nil, "")
	var byStore []queries.RescueRequestView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &byStore)
	s.Len(byStore, 1)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rescue/foodbank/"+foodBankID.String(), nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rescue/store/xyz", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid storeId")
}

func (s *RescueHandlerTestSuite) TestGet() {
	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, queries.ErrRescueRequestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rescue/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rescue request not found")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *RescueHandlerTestSuite) TestCreate() {
	reqBody := reqdto.CreateRescueRequestRequest{
		StoreID:    uuid.New(),
		ProductIDs: []uuid.UUID{uuid.New()},
		RescueType: string(product.RescueStatusFoodBankAlert),
	}

	s.Run("success: 201 with the created request", func() {
		view := newRescueView("pending")
		s.mockCommands.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rescue", reqBody, "")

		var body queries.RescueRequestView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("pending", body.Status)
	})

	s.Run("error: 400 on binding failures", func() {
		for name, mutate := range map[string]func(map[string]any){
			"missing productIds": testutil.Field("productIds", nil),
			"empty productIds":   testutil.Field("productIds", []string{}),
			"missing rescueType": testutil.Field("rescueType", nil),
			"missing storeId":    testutil.Field("storeId", nil),
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rescue", testutil.DtoMap(s.T(), reqBody, mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps command errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "unknown product", err: commands.ErrUnknownProduct, status: http.StatusBadRequest},
			{name: "validation", err: errs.Mark(errors.New("unknown rescue type"), commands.ErrDomainValidationFailed), status: http.StatusBadRequest},
			{name: "open alert", err: commands.ErrOpenAlertExists, status: http.StatusConflict},
			{name: "store missing", err: commands.ErrStoreNotFound, status: http.StatusBadRequest},
			{name: "database", err: commands.ErrDatabaseOperationFailed, status: http.StatusInternalServerError},
			{name: "idempotency key reused", err: commands.ErrIdempotencyKeyReused, status: http.StatusUnprocessableEntity},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rescue", reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})

	s.Run("success: Idempotency-Key header is forwarded", func() {
		key := uuid.New()
		view := newRescueView("pending")
		s.mockCommands.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req reqdto.CreateRescueRequestRequest) (uuid.UUID, error) {
				s.Require().NotNil(req.IdempotencyKey)
				s.Equal(key, *req.IdempotencyKey)
				return view.ID, nil
			},
		)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/rescue", reqBody,
			map[string]string{"Idempotency-Key": key.String()}, "")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 on malformed Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/rescue", reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid Idempotency-Key")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *RescueHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/rescue/" + id.String() + "/status"

	s.Run("success: returns the updated request", func() {
		view := newRescueView("accepted")
		view.ID = id
		foodBankID := uuid.New()
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, reqdto.UpdateRescueStatusRequest{Status: "accepted", FoodBankID: &foodBankID}).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "accepted", "foodBankId": foodBankID}, "")

		var body queries.RescueRequestView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("accepted", body.Status)
	})

	s.Run("error: maps command errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "invalid status string", err: commands.ErrInvalidStatus, status: http.StatusBadRequest, msg: "Invalid status"},
			{name: "missing request", err: commands.ErrRescueRequestNotFound, status: http.StatusNotFound, msg: "Rescue request not found"},
			{name: "illegal transition", err: errs.Mark(rescue.ErrInvalidTransition, commands.ErrInvalidTransition), status: http.StatusConflict, msg: "Invalid status transition"},
			{name: "unknown food bank", err: commands.ErrUnknownFoodBank, status: http.StatusBadRequest, msg: "Food bank does not exist"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, gomock.Any()).Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "whatever"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("error: 400 when status missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestRunCascade
// ================================================================================

func (s *RescueHandlerTestSuite) TestRunCascade() {
	result := &commands.CascadeResult{
		Counts:                 rescue.Counts{Stage1: 2, Stage4: 1},
		TotalProductsProcessed: 5,
		TotalProductsRescued:   3,
		RequestsCreated:        1,
	}

	s.Run("success: no body runs over every store", func() {
		s.mockCascade.EXPECT().Run(gomock.Any(), reqdto.RunCascadeRequest{}).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rescue/cascade", nil, "")

		var body resdto.CascadeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Rescue cascade completed", body.Message)
		s.Equal(2, body.Results.Stage1)
		s.Equal(1, body.Results.Stage4)
		s.Equal(3, body.TotalProductsRescued)
		s.Equal(1, body.RequestsCreated)
	})

	s.Run("success: store scope is forwarded", func() {
		storeID := uuid.New()
		s.mockCascade.EXPECT().Run(gomock.Any(), reqdto.RunCascadeRequest{StoreID: &storeID}).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rescue/cascade", map[string]any{"storeId": storeID}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: generic 500 on failure", func() {
		s.mockCascade.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, commands.ErrDatabaseOperationFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rescue/cascade", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestNearbyFoodBanks
// ================================================================================

func (s *RescueHandlerTestSuite) TestNearbyFoodBanks() {
	s.Run("success: forwards coordinates and radius", func() {
		radius := 10.0
		near := &queries.NearbyFoodBankView{FoodBankView: queries.FoodBankView{ID: uuid.New(), Name: "Food Bank Central"}, Distance: 0.5}
		s.mockFoodBanks.EXPECT().Nearby(gomock.Any(), 40.7, -74.0, &radius).Return([]*queries.NearbyFoodBankView{near}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rescue/nearby-foodbanks?lat=40.7&lng=-74.0&radius=10", nil, "")

		var body []queries.NearbyFoodBankView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.InDelta(0.5, body[0].Distance, 1e-9)
	})

	s.Run("success: radius is optional", func() {
		s.mockFoodBanks.EXPECT().Nearby(gomock.Any(), 0.0, 0.0, nil).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rescue/nearby-foodbanks?lat=0&lng=0", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on missing or unparsable coordinates", func() {
		for _, q := range []string{"", "lat=40.7", "lng=-74", "lat=abc&lng=1", "lat=1&lng=2&radius=-3"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rescue/nearby-foodbanks?"+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})
}
