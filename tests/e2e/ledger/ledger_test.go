//go:build e2e

package ledger_test

import (
	"fmt"
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

type ledgerSuite struct {
	e2e.SharedSuite
	token      string
	salesID    uuid.UUID
	groceryID  uuid.UUID
	servicesID uuid.UUID
}

func TestLedgerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ledgerSuite))
}

func (s *ledgerSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "tesorera", "member")
	s.salesID = dbtest.CreateTestCategory(s.T(), s.DB, "Ventas", "income")
	s.groceryID = dbtest.CreateTestCategory(s.T(), s.DB, "Despensa", "expense")
	s.servicesID = dbtest.CreateTestCategory(s.T(), s.DB, "Servicios", "expense")
}

func (s *ledgerSuite) createTransaction(description, amount, txType string, categoryID uuid.UUID) resdto.TransactionResponse {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/transactions",
		request.TransactionRequest{
			Date:        time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
			Description: description,
			Amount:      amount,
			Type:        txType,
			CategoryID:  categoryID,
		}, s.token)

	var tx resdto.TransactionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &tx)
	return tx
}

func (s *ledgerSuite) TestTransactions() {
	s.Run("create, list, update and delete", func() {
		t := s.T()

		created := s.createTransaction("Venta de pan", "350", "income", s.salesID)
		require.Equal(t, "income", created.Type)
		require.True(t, created.Amount.Equal(decimal.NewFromInt(350)))

		s.createTransaction("Mandado de la semana", "480.50", "expense", s.groceryID)

		var listed []resdto.TransactionResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/transactions", nil, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/transactions/"+created.ID.String(),
			request.TransactionRequest{
				Date:        created.Date,
				Description: "Venta de pan dulce",
				Amount:      "380",
				Type:        "income",
				CategoryID:  s.salesID,
			}, s.token)

		var updated resdto.TransactionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, "Venta de pan dulce", updated.Description)
		require.True(t, updated.Amount.Equal(decimal.NewFromInt(380)))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/transactions/"+created.ID.String(), nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/transactions", nil, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 1)
	})

	s.Run("date range filter", func() {
		t := s.T()

		s.createTransaction("Recibo de marzo", "200", "expense", s.servicesID)

		url := fmt.Sprintf("/api/transactions?from=%s&to=%s",
			"2026-03-01T00:00:00Z", "2026-04-01T00:00:00Z")
		var listed []resdto.TransactionResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 1)

		url = fmt.Sprintf("/api/transactions?from=%s&to=%s",
			"2026-04-01T00:00:00Z", "2026-05-01T00:00:00Z")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Empty(t, listed)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/transactions?from=ayer", nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid date range")
	})

	s.Run("unknown category is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/transactions",
			request.TransactionRequest{
				Date:        time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
				Description: "Sin categoria",
				Amount:      "50",
				Type:        "expense",
				CategoryID:  uuid.New(),
			}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Category not found")
	})
}

func (s *ledgerSuite) TestCategories() {
	s.Run("create and list", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/categories",
			request.CategoryRequest{Name: "Transporte", Type: "expense", Icon: "bus"}, s.token)

		var created resdto.CategoryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "Transporte", created.Name)
		require.Equal(t, "bus", created.Icon)

		var listed []resdto.CategoryResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/categories", nil, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 4)
	})

	s.Run("delete", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/categories/"+s.servicesID.String(), nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		s.createTransaction("Mandado", "100", "expense", s.groceryID)
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/categories/"+s.groceryID.String(), nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "still referenced")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/categories/"+uuid.NewString(), nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Category not found")
	})
}

func (s *ledgerSuite) TestBudgetsAndSummary() {
	s.Run("spend against a budget", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			"/api/categories/"+s.groceryID.String()+"/budget",
			request.SetBudgetRequest{Amount: "2000"}, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		s.createTransaction("Venta del dia", "1000", "income", s.salesID)
		s.createTransaction("Mandado de la semana", "480.50", "expense", s.groceryID)
		s.createTransaction("Fruta y verdura", "120", "expense", s.groceryID)

		var summary resdto.MonthlySummaryResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/ledger/summary?year=2026&month=3", nil, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &summary)

		require.True(t, summary.Income.Equal(decimal.NewFromInt(1000)), "income: %s", summary.Income)
		require.True(t, summary.Expenses.Equal(decimal.RequireFromString("600.50")), "expenses: %s", summary.Expenses)
		require.True(t, summary.Balance.Equal(decimal.RequireFromString("399.50")), "balance: %s", summary.Balance)

		var grocery *resdto.CategorySummaryResponse
		for i := range summary.Categories {
			if summary.Categories[i].CategoryID == s.groceryID {
				grocery = &summary.Categories[i]
			}
		}
		require.NotNil(t, grocery)
		require.True(t, grocery.Spent.Equal(decimal.RequireFromString("600.50")))
		require.NotNil(t, grocery.Budget)
		require.True(t, grocery.Budget.Equal(decimal.NewFromInt(2000)))
	})

	s.Run("zero amount removes the budget", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			"/api/categories/"+s.groceryID.String()+"/budget",
			request.SetBudgetRequest{Amount: "1500"}, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		var budgets []resdto.BudgetResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/ledger/budgets", nil, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &budgets)
		require.Len(t, budgets, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			"/api/categories/"+s.groceryID.String()+"/budget",
			request.SetBudgetRequest{Amount: "0"}, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/ledger/budgets", nil, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &budgets)
		require.Empty(t, budgets)
	})

	s.Run("summary rejects a bad month", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/ledger/summary?year=2026&month=13", nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid month")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/ledger/summary?month=3", nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid year")
	})
}
