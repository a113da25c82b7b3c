//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"resqcart/internal/handler/api"
	reqdto "resqcart/internal/handler/dto/request"
	resdto "resqcart/internal/handler/dto/response"
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

type FoodBankHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFoodBankCommands
	mockQueries  *queriesmock.MockFoodBankQueries
}

func (s *FoodBankHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFoodBankCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFoodBankQueries(s.mockCtrl)
	h := api.NewFoodBankHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/foodbanks", h.Register)
	s.router.GET("/foodbanks", h.List)
	s.router.GET("/foodbanks/:id", h.Get)
	s.router.PATCH("/foodbanks/:id/verification", h.UpdateVerification)
}

func (s *FoodBankHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFoodBankHandlerSuite(t *testing.T) {
	suite.Run(t, new(FoodBankHandlerTestSuite))
}

func (s *FoodBankHandlerTestSuite) TestRegister() {
	reqBody := builder.NewFoodBankBuilder().BuildRegisterRequestDTO()

	s.Run("success: 201", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/foodbanks", reqBody, "")

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id, body.ID)
	})

	s.Run("error: 400 on binding failures", func() {
		for name, mutate := range map[string]func(map[string]any){
			"bad email":       testutil.Field("email", "not-an-email"),
			"missing name":    testutil.Field("name", nil),
			"missing phone":   testutil.Field("phone", nil),
			"latitude > 90":   testutil.Field("latitude", 91),
			"longitude < 180": testutil.Field("longitude", -181),
		} {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/foodbanks", testutil.DtoMap(s.T(), reqBody, mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 on duplicate email", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrDuplicateFoodBank)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/foodbanks", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})
}

func (s *FoodBankHandlerTestSuite) TestListAndGet() {
	view := builder.NewFoodBankBuilder().BuildView()

	s.mockQueries.EXPECT().List(gomock.Any(), "verified").Return([]*queries.FoodBankView{view}, nil)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/foodbanks?status=verified", nil, "")
	var list []queries.FoodBankView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
	s.Require().Len(list, 1)
	s.Equal(view.Email, list[0].Email)

	s.mockQueries.EXPECT().List(gomock.Any(), "bogus").Return(nil, queries.ErrInvalidFilter)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/foodbanks?status=bogus", nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")

	s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrFoodBankNotFound)
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/foodbanks/"+view.ID.String(), nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Food bank not found")
}

func (s *FoodBankHandlerTestSuite) TestUpdateVerification() {
	view := builder.NewFoodBankBuilder().BuildView()
	url := "/foodbanks/" + view.ID.String() + "/verification"

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateVerification(gomock.Any(), view.ID, reqdto.UpdateVerificationRequest{Status: "verified"}).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "verified"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "approved"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().UpdateVerification(gomock.Any(), view.ID, gomock.Any()).Return(commands.ErrFoodBankNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"status": "rejected"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Food bank not found")
	})
}
