//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"caja-api/internal/domain/cashier"
	"caja-api/internal/handler/api"
	reqdto "caja-api/internal/handler/dto/request"
	resdto "caja-api/internal/handler/dto/response"
	"caja-api/internal/usecase"
	"caja-api/internal/usecase/readmodel"
	"caja-api/tests/common/httptest"
	usecasemock "caja-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CashierHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCashier *usecasemock.MockCashierUseCase
	handler     *api.CashierHandler
}

func (s *CashierHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCashier = usecasemock.NewMockCashierUseCase(s.mockCtrl)
	s.handler = api.NewCashierHandler(s.mockCashier)

	s.router.POST("/cash-sessions", s.handler.OpenDay)
	s.router.POST("/cash-sessions/close", s.handler.CloseDay)
	s.router.GET("/cash-sessions/current", s.handler.CurrentReport)
	s.router.GET("/cash-sessions", s.handler.History)
}

func (s *CashierHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCashierHandlerSuite(t *testing.T) {
	suite.Run(t, new(CashierHandlerTestSuite))
}

func openSessionRM() *readmodel.CashSessionRM {
	return &readmodel.CashSessionRM{
		ID:          uuid.New(),
		StartDate:   time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		StartAmount: decimal.NewFromInt(500),
		Status:      "open",
	}
}

func (s *CashierHandlerTestSuite) TestOpenDay() {
	url := "/cash-sessions"

	s.Run("success: returns 201 Created with the open session", func() {
		session := openSessionRM()
		s.mockCashier.EXPECT().OpenDay(gomock.Any(), decimal.NewFromInt(500)).
			Return(session, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.OpenCashSessionRequest{StartAmount: "500"}, "")

		var response resdto.CashSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(session.ID, response.ID)
		s.Equal("open", response.Status)
		s.True(response.StartAmount.Equal(decimal.NewFromInt(500)))
	})

	s.Run("error: 409 Conflict when a session is already open", func() {
		s.mockCashier.EXPECT().OpenDay(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrSessionAlreadyOpen).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.OpenCashSessionRequest{StartAmount: "500"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already open")
	})

	s.Run("error: 400 Bad Request for a negative start amount", func() {
		s.mockCashier.EXPECT().OpenDay(gomock.Any(), decimal.NewFromInt(-10)).
			Return(nil, cashier.ErrNegativeStartAmount).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.OpenCashSessionRequest{StartAmount: "-10"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "negative")
	})

	s.Run("error: 400 Bad Request for a malformed amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.OpenCashSessionRequest{StartAmount: "abc"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start amount")
	})
}

func (s *CashierHandlerTestSuite) TestCloseDay() {
	url := "/cash-sessions/close"

	s.Run("success: returns 200 OK with the reconciliation", func() {
		session := openSessionRM()
		endDate := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
		endAmount := decimal.NewFromInt(1480)
		session.Status = "closed"
		session.EndDate = &endDate
		session.EndAmount = &endAmount

		result := &readmodel.CashCloseRM{
			Session:      *session,
			CashSales:    decimal.NewFromInt(1200),
			CashExpenses: decimal.NewFromInt(220),
			Expected:     decimal.NewFromInt(1480),
			Difference:   decimal.Zero,
			Verdict:      "balanced",
		}
		s.mockCashier.EXPECT().CloseDay(gomock.Any(), decimal.NewFromInt(1480)).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.CloseCashSessionRequest{CountedAmount: "1480"}, "")

		var response resdto.CashCloseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("balanced", response.Verdict)
		s.True(response.Expected.Equal(decimal.NewFromInt(1480)))
		s.True(response.Difference.IsZero())
	})

	s.Run("error: 404 Not Found when nothing is open", func() {
		s.mockCashier.EXPECT().CloseDay(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrNoOpenSession).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.CloseCashSessionRequest{CountedAmount: "1480"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No open cash session")
	})

	s.Run("error: 400 Bad Request for a negative counted amount", func() {
		s.mockCashier.EXPECT().CloseDay(gomock.Any(), decimal.NewFromInt(-1)).
			Return(nil, cashier.ErrNegativeEndAmount).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.CloseCashSessionRequest{CountedAmount: "-1"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "negative")
	})
}

func (s *CashierHandlerTestSuite) TestCurrentReport() {
	url := "/cash-sessions/current"

	s.Run("success: returns 200 OK with live totals", func() {
		report := &readmodel.DrawerReportRM{
			Session:      *openSessionRM(),
			CashSales:    decimal.NewFromInt(300),
			CardSales:    decimal.NewFromInt(150),
			CashExpenses: decimal.NewFromInt(80),
			ExpectedCash: decimal.NewFromInt(720),
		}
		s.mockCashier.EXPECT().CurrentReport(gomock.Any()).
			Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.DrawerReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.ExpectedCash.Equal(decimal.NewFromInt(720)))
		s.True(response.CardSales.Equal(decimal.NewFromInt(150)))
	})

	s.Run("error: 404 Not Found when nothing is open", func() {
		s.mockCashier.EXPECT().CurrentReport(gomock.Any()).
			Return(nil, usecase.ErrNoOpenSession).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No open cash session")
	})
}

func (s *CashierHandlerTestSuite) TestHistory() {
	url := "/cash-sessions"

	s.Run("success: returns 200 OK with past sessions", func() {
		s.mockCashier.EXPECT().History(gomock.Any()).
			Return([]*readmodel.CashSessionRM{openSessionRM(), openSessionRM()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.CashSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})
}
