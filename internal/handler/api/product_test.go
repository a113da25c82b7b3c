//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"resqcart/internal/handler/api"
	resdto "resqcart/internal/handler/dto/response"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/testutil"
	"resqcart/internal/testutil/builder"
	"resqcart/internal/testutil/httptest"
	commandsmock "resqcart/internal/testutil/mock/commands"
	queriesmock "resqcart/internal/testutil/mock/queries"
	"resqcart/internal/usecase/commands"
	"resqcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductCommands
	mockQueries  *queriesmock.MockProductQueries
	handler      *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/products", s.handler.List)
	s.router.GET("/products/at-risk", s.handler.ListAtRisk)
	s.router.GET("/products/:id", s.handler.Get)
	s.router.POST("/products", s.handler.Create)
	s.router.PUT("/products/:id", s.handler.Update)
	s.router.DELETE("/products/:id", s.handler.Delete)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

type testCaseProduct struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ProductHandlerTestSuite) TestCreate() {
	url := "/products"
	reqBody := builder.NewProductBuilder().BuildCreateRequestDTO()
	newID := uuid.New()

	s.Run("success: returns 201 with id and Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(newID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/products/" + newID.String()})
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []testCaseProduct{
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing sku", mutate: testutil.Field("sku", nil), expectCode: http.StatusBadRequest},
			{name: "missing storeId", mutate: testutil.Field("storeId", nil), expectCode: http.StatusBadRequest},
			{name: "discount above 100", mutate: testutil.Field("discountPercentage", 101), expectCode: http.StatusBadRequest},
			{name: "negative quantity", mutate: testutil.Field("quantityInStock", -1), expectCode: http.StatusBadRequest},
			{name: "unknown storage condition", mutate: testutil.Field("storageConditions", "warm"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				body := httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				s.NotNil(body.Detail)
			})
		}
	})

	s.Run("error: maps command errors to statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "domain validation", err: errs.Mark(errors.New("price must be positive"), commands.ErrDomainValidationFailed), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid request"},
			{name: "duplicate sku", err: commands.ErrDuplicateSKU, expectedStatus: http.StatusConflict, expectedMsg: "SKU already exists"},
			{name: "unknown store", err: commands.ErrStoreNotFound, expectedStatus: http.StatusBadRequest, expectedMsg: "Store does not exist"},
			{name: "database failure", err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ProductHandlerTestSuite) TestList() {
	view := builder.NewProductBuilder().BuildView()

	s.Run("success: passes filters and returns next cursor", func() {
		storeID := uuid.New()
		next := &queries.Cursor{After: "abc"}
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any(), 10).
			DoAndReturn(func(_ any, f queries.ProductFilters, c *queries.Cursor, _ int) ([]*queries.ProductView, *queries.Cursor, error) {
				s.Require().NotNil(f.Category)
				s.Equal("Produce", *f.Category)
				s.Require().NotNil(f.StoreID)
				s.Equal(storeID, *f.StoreID)
				s.Require().NotNil(f.AtRisk)
				s.True(*f.AtRisk)
				s.Require().NotNil(c)
				s.Equal("prev", c.After)
				return []*queries.ProductView{view}, next, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/products?category=Produce&atRisk=true&limit=10&after=prev&storeId="+storeID.String(), nil, "")

		var body resdto.ProductListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Require().NotNil(body.NextCursor)
		s.Equal("abc", *body.NextCursor)
	})

	s.Run("success: default page size", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), nil, 50).Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")

		var body resdto.ProductListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 400 on malformed query", func() {
		for _, q := range []string{"limit=0x", "limit=500", "storeId=not-a-uuid", "atRisk=maybe"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?"+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 400 on invalid cursor or filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil, queries.ErrInvalidCursor)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")

		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errors.New("bad status"), queries.ErrInvalidFilter))
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?rescueStatus=bogus", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
	})
}

func (s *ProductHandlerTestSuite) TestListAtRisk() {
	s.mockQueries.EXPECT().ListAtRisk(gomock.Any()).Return(nil, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/at-risk", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

// ================================================================================
// TestGet / TestUpdate / TestDelete
// ================================================================================

func (s *ProductHandlerTestSuite) TestGet() {
	view := builder.NewProductBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+view.ID.String(), nil, "")

		var body queries.ProductView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.SKU, body.SKU)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, queries.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *ProductHandlerTestSuite) TestUpdate() {
	view := builder.NewProductBuilder().BuildView()
	url := "/products/" + view.ID.String()

	s.Run("success: returns the reloaded product", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"quantityInStock": 3}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).Return(commands.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": "Pears"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 400 on discount out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"discountPercentage": 150}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ProductHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/products/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/products/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}
