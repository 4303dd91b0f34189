//go:build e2e

package cashier_test

import (
	"net/http"
	"testing"
	"time"

	"caja-api/internal/handler/dto/request"
	resdto "caja-api/internal/handler/dto/response"
	"caja-api/tests/common/authtest"
	"caja-api/tests/common/dbtest"
	"caja-api/tests/common/httptest"
	"caja-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	sessionsURL = "/api/cash-sessions"
	ordersURL   = "/api/orders"
	expensesURL = "/api/expenses"
)

type cashierSuite struct {
	e2e.SharedSuite
	token  string
	cafeID uuid.UUID
	sodaID uuid.UUID
}

func TestCashierSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(cashierSuite))
}

func (s *cashierSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "cajero", "admin")
	s.cafeID = dbtest.CreateTestProduct(s.T(), s.DB, "Cafe americano", "35", "cafeteria")
	s.sodaID = dbtest.CreateTestProduct(s.T(), s.DB, "Refresco", "25", "fridge")
}

func (s *cashierSuite) openDay(startAmount string) resdto.CashSessionResponse {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL,
		request.OpenCashSessionRequest{StartAmount: startAmount}, s.token)

	var session resdto.CashSessionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &session)
	return session
}

func (s *cashierSuite) checkout(productID uuid.UUID, quantity int32, paymentMethod string) resdto.OrderResponse {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, request.CheckoutRequest{
		Items:         []request.CheckoutItemRequest{{ProductID: productID, Quantity: quantity}},
		ServiceType:   "mesa",
		PaymentMethod: paymentMethod,
	}, s.token)

	var order resdto.OrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &order)
	return order
}

func (s *cashierSuite) TestOpenDay() {
	s.Run("opens the drawer with a starting float", func() {
		session := s.openDay("500")
		require.Equal(s.T(), "open", session.Status)
		require.True(s.T(), session.StartAmount.Equal(decimal.NewFromInt(500)))
	})

	s.Run("rejects a second open drawer", func() {
		s.openDay("500")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL,
			request.OpenCashSessionRequest{StartAmount: "200"}, s.token)
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("rejects a negative starting float", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL,
			request.OpenCashSessionRequest{StartAmount: "-50"}, s.token)
		require.Equal(s.T(), http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("rejects unauthenticated access", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL,
			request.OpenCashSessionRequest{StartAmount: "500"}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *cashierSuite) TestDrawerReport() {
	s.Run("tracks sales and expenses of the open day", func() {
		t := s.T()

		s.openDay("500")

		s.checkout(s.cafeID, 2, "efectivo") // 70 cash
		s.checkout(s.sodaID, 1, "tarjeta")  // 25 card

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, expensesURL, request.ExpenseRequest{
			Date:        time.Now(),
			Description: "Hielo para el refrigerador",
			Amount:      "80",
			Category:    "inventario",
			Type:        "emergente",
		}, s.token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, sessionsURL+"/current", nil, s.token)

		var report resdto.DrawerReportResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &report)
		require.True(t, report.CashSales.Equal(decimal.NewFromInt(70)), "cash sales: %s", report.CashSales)
		require.True(t, report.CardSales.Equal(decimal.NewFromInt(25)), "card sales: %s", report.CardSales)
		require.True(t, report.CashExpenses.Equal(decimal.NewFromInt(80)), "cash expenses: %s", report.CashExpenses)
		// 500 + 70 - 80
		require.True(t, report.ExpectedCash.Equal(decimal.NewFromInt(490)), "expected cash: %s", report.ExpectedCash)
	})

	s.Run("404 when no drawer is open", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, sessionsURL+"/current", nil, s.token)
		require.Equal(s.T(), http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *cashierSuite) TestCloseDay() {
	s.Run("reconciles a balanced drawer", func() {
		t := s.T()

		s.openDay("500")
		s.checkout(s.cafeID, 2, "efectivo") // 70 cash

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL+"/close",
			request.CloseCashSessionRequest{CountedAmount: "570"}, s.token)

		var result resdto.CashCloseResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.Equal(t, "balanced", result.Verdict)
		require.True(t, result.Expected.Equal(decimal.NewFromInt(570)))
		require.True(t, result.Difference.IsZero())
		require.Equal(t, "closed", result.Session.Status)
		require.NotNil(t, result.Session.EndDate)
	})

	s.Run("reports a shortfall", func() {
		t := s.T()

		s.openDay("500")
		s.checkout(s.cafeID, 1, "efectivo") // 35 cash

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL+"/close",
			request.CloseCashSessionRequest{CountedAmount: "520"}, s.token)

		var result resdto.CashCloseResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.Equal(t, "shortfall", result.Verdict)
		require.True(t, result.Difference.Equal(decimal.NewFromInt(-15)), "difference: %s", result.Difference)
	})

	s.Run("reports a surplus", func() {
		t := s.T()

		s.openDay("500")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL+"/close",
			request.CloseCashSessionRequest{CountedAmount: "505"}, s.token)

		var result resdto.CashCloseResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.Equal(t, "surplus", result.Verdict)
		require.True(t, result.Difference.Equal(decimal.NewFromInt(5)))
	})

	s.Run("404 when no drawer is open", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL+"/close",
			request.CloseCashSessionRequest{CountedAmount: "500"}, s.token)
		require.Equal(s.T(), http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("drawer can be reopened the next day", func() {
		t := s.T()

		s.openDay("500")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL+"/close",
			request.CloseCashSessionRequest{CountedAmount: "500"}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		s.openDay("300")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, sessionsURL, nil, s.token)
		var history []resdto.CashSessionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Len(t, history, 2)
	})
}
