package api

import (
	"errors"
	"net/http"

	"caja-api/internal/domain/expense"
	reqdto "caja-api/internal/handler/dto/request"
	resdto "caja-api/internal/handler/dto/response"
	"caja-api/internal/handler/httperr"
	"caja-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExpenseHandler struct {
	expenseUseCase usecase.ExpenseUseCase
}

func NewExpenseHandler(expenseUseCase usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUseCase: expenseUseCase,
	}
}

// @Summary Create expense
// @Description Record a business expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ExpenseRequest true "Expense request"
// @Success 201 {object} resdto.ExpenseResponse
// @Failure 400 {object} httperr.Response
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req reqdto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	e, err := h.expenseUseCase.CreateExpense(c.Request.Context(), req.ToParams())
	if err != nil {
		h.abortExpenseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromExpenseRM(e))
}

// @Summary Update expense
// @Description Update a recorded expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Param request body reqdto.ExpenseRequest true "Expense request"
// @Success 200 {object} resdto.ExpenseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}

	var req reqdto.ExpenseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request")
		return
	}

	e, err := h.expenseUseCase.UpdateExpense(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.abortExpenseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpenseRM(e))
}

// @Summary Delete expense
// @Description Remove a recorded expense
// @Tags expenses
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}

	if err := h.expenseUseCase.DeleteExpense(c.Request.Context(), id); err != nil {
		h.abortExpenseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List expenses
// @Description List expenses, optionally filtered by date range
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Success 200 {array} resdto.ExpenseResponse
// @Failure 400 {object} httperr.Response
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range")
		return
	}

	expenses, err := h.expenseUseCase.ListExpenses(c.Request.Context(), from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load expenses")
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpenseRMs(expenses))
}

func (h *ExpenseHandler) abortExpenseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrExpenseNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found")
	case errors.Is(err, expense.ErrEmptyDescription),
		errors.Is(err, expense.ErrNegativeAmount),
		errors.Is(err, expense.ErrInvalidCategory),
		errors.Is(err, expense.ErrInvalidType),
		errors.Is(err, usecase.ErrInvalidAmount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid expense data")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error")
	}
}
