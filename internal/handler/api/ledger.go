package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"caja-api/internal/domain/ledger"
	reqdto "caja-api/internal/handler/dto/request"
	resdto "caja-api/internal/handler/dto/response"
	"caja-api/internal/handler/middleware"
	"caja-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LedgerHandler struct {
	ledgerUseCase usecase.LedgerUseCase
}

func NewLedgerHandler(ledgerUseCase usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
	}
}

// @Summary Create transaction
// @Description Record a ledger transaction for the current member
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TransactionRequest true "Transaction request"
// @Success 201 {object} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions [post]
func (h *LedgerHandler) CreateTransaction(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	t, err := h.ledgerUseCase.CreateTransaction(c.Request.Context(), memberID, req.ToParams())
	if err != nil {
		h.respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTransactionRM(t))
}

// @Summary Update transaction
// @Description Update a ledger transaction
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.TransactionRequest true "Transaction request"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [put]
func (h *LedgerHandler) UpdateTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transaction ID",
		})
		return
	}

	var req reqdto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	t, err := h.ledgerUseCase.UpdateTransaction(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransactionRM(t))
}

// @Summary Delete transaction
// @Description Remove a ledger transaction
// @Tags ledger
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [delete]
func (h *LedgerHandler) DeleteTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transaction ID",
		})
		return
	}

	if err := h.ledgerUseCase.DeleteTransaction(c.Request.Context(), id); err != nil {
		h.respondLedgerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List transactions
// @Description List ledger transactions, optionally filtered by date range
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Router /transactions [get]
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date range",
		})
		return
	}

	transactions, err := h.ledgerUseCase.ListTransactions(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransactionRMs(transactions))
}

// @Summary Create category
// @Description Add a transaction category
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CategoryRequest true "Category request"
// @Success 201 {object} resdto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Router /categories [post]
func (h *LedgerHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	category, err := h.ledgerUseCase.CreateCategory(c.Request.Context(), usecase.CategoryParams{
		Name: req.Name,
		Type: req.Type,
		Icon: req.Icon,
	})
	if err != nil {
		h.respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCategoryRM(category))
}

// @Summary List categories
// @Description List transaction categories
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CategoryResponse
// @Router /categories [get]
func (h *LedgerHandler) ListCategories(c *gin.Context) {
	categories, err := h.ledgerUseCase.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryRMs(categories))
}

// @Summary Delete category
// @Description Remove a category that no transaction or budget references
// @Tags ledger
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /categories/{id} [delete]
func (h *LedgerHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID",
		})
		return
	}

	if err := h.ledgerUseCase.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respondLedgerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Set budget
// @Description Set a monthly budget for a category; non-positive amount removes it
// @Tags ledger
// @Accept json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body reqdto.SetBudgetRequest true "Budget request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /categories/{id}/budget [put]
func (h *LedgerHandler) SetBudget(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID",
		})
		return
	}

	var req reqdto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid budget amount",
		})
		return
	}

	if err := h.ledgerUseCase.SetBudget(c.Request.Context(), id, amount); err != nil {
		h.respondLedgerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List budgets
// @Description List all category budgets
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BudgetResponse
// @Router /ledger/budgets [get]
func (h *LedgerHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.ledgerUseCase.ListBudgets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBudgetRMs(budgets))
}

// @Summary Monthly summary
// @Description Income, expenses and per-category spend vs budget for one month
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} resdto.MonthlySummaryResponse
// @Failure 400 {object} map[string]string
// @Router /ledger/summary [get]
func (h *LedgerHandler) MonthlySummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid year",
		})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid month",
		})
		return
	}

	summary, err := h.ledgerUseCase.MonthlySummary(c.Request.Context(), year, time.Month(month))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMonthlySummaryRM(summary))
}

func (h *LedgerHandler) respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Transaction not found",
		})
	case errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
	case errors.Is(err, usecase.ErrCategoryInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Category is still referenced by transactions or budgets",
		})
	case errors.Is(err, ledger.ErrEmptyDescription),
		errors.Is(err, ledger.ErrNonPositiveAmount),
		errors.Is(err, ledger.ErrInvalidType),
		errors.Is(err, ledger.ErrEmptyCategoryName),
		errors.Is(err, usecase.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
