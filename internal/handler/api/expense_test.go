//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"caja-api/internal/domain/expense"
	"caja-api/internal/handler/api"
	resdto "caja-api/internal/handler/dto/response"
	"caja-api/internal/usecase"
	"caja-api/internal/usecase/readmodel"
	"caja-api/tests/common/builder"
	"caja-api/tests/common/httptest"
	"caja-api/tests/common/testutil"
	usecasemock "caja-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExpenseHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockExpense *usecasemock.MockExpenseUseCase
	handler     *api.ExpenseHandler
}

func (s *ExpenseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockExpense = usecasemock.NewMockExpenseUseCase(s.mockCtrl)
	s.handler = api.NewExpenseHandler(s.mockExpense)

	s.router.POST("/expenses", s.handler.CreateExpense)
	s.router.GET("/expenses", s.handler.ListExpenses)
	s.router.PUT("/expenses/:id", s.handler.UpdateExpense)
	s.router.DELETE("/expenses/:id", s.handler.DeleteExpense)
}

func (s *ExpenseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExpenseHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}

func (s *ExpenseHandlerTestSuite) TestCreateExpense() {
	url := "/expenses"

	reqBody := builder.NewExpenseBuilder().BuildRequestDTO()
	returnExpense := builder.NewExpenseBuilder().BuildReadModel()

	s.Run("success: returns 201 Created", func() {
		s.mockExpense.EXPECT().CreateExpense(gomock.Any(), reqBody.ToParams()).
			Return(returnExpense, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ExpenseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnExpense.Description, response.Description)
		s.True(response.Amount.Equal(returnExpense.Amount))
	})

	s.Run("error: 400 Bad Request for an unparseable amount", func() {
		s.mockExpense.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrInvalidAmount).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("amount", "not-a-number"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorEnvelope(s.T(), rec, http.StatusBadRequest, "Invalid expense data")
	})

	s.Run("error: 400 Bad Request on binding validation", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "unknown category", mutate: testutil.Field("category", "gasolina")},
			{name: "unknown type", mutate: testutil.Field("type", "mensual")},
			{name: "missing description", mutate: testutil.Field("description", nil)},
			{name: "missing date", mutate: testutil.Field("date", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorEnvelope(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 Bad Request when the domain rejects the expense", func() {
		s.mockExpense.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).
			Return(nil, expense.ErrNegativeAmount).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("amount", "-50"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorEnvelope(s.T(), rec, http.StatusBadRequest, "Invalid expense data")
	})
}

func (s *ExpenseHandlerTestSuite) TestUpdateExpense() {
	reqBody := builder.NewExpenseBuilder().WithDescription("Recibo de internet").WithCategory("internet").BuildRequestDTO()
	returnExpense := builder.NewExpenseBuilder().WithDescription("Recibo de internet").WithCategory("internet").BuildReadModel()

	s.Run("success: returns 200 OK", func() {
		s.mockExpense.EXPECT().UpdateExpense(gomock.Any(), returnExpense.ID, reqBody.ToParams()).
			Return(returnExpense, nil).Times(1)

		url := fmt.Sprintf("/expenses/%s", returnExpense.ID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.ExpenseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Recibo de internet", response.Description)
	})

	s.Run("error: 404 Not Found for an unknown expense", func() {
		s.mockExpense.EXPECT().UpdateExpense(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrExpenseNotFound).Times(1)

		url := fmt.Sprintf("/expenses/%s", uuid.New())
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorEnvelope(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/expenses/not-a-uuid", reqBody, "")
		httptest.AssertErrorEnvelope(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ExpenseHandlerTestSuite) TestDeleteExpense() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockExpense.EXPECT().DeleteExpense(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, fmt.Sprintf("/expenses/%s", id), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown expense", func() {
		s.mockExpense.EXPECT().DeleteExpense(gomock.Any(), gomock.Any()).
			Return(usecase.ErrExpenseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, fmt.Sprintf("/expenses/%s", uuid.New()), nil, "")
		httptest.AssertErrorEnvelope(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *ExpenseHandlerTestSuite) TestListExpenses() {
	url := "/expenses"

	s.Run("success: returns 200 OK with all expenses", func() {
		returned := []*readmodel.ExpenseRM{
			builder.NewExpenseBuilder().BuildReadModel(),
			builder.NewExpenseBuilder().WithCategory("internet").BuildReadModel(),
		}
		s.mockExpense.EXPECT().ListExpenses(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return(returned, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ExpenseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 400 Bad Request for a malformed range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=yesterday", nil, "")
		httptest.AssertErrorEnvelope(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})
}
