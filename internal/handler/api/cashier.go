package api

import (
	"errors"
	"net/http"

	"caja-api/internal/domain/cashier"
	reqdto "caja-api/internal/handler/dto/request"
	resdto "caja-api/internal/handler/dto/response"
	"caja-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CashierHandler struct {
	cashierUseCase usecase.CashierUseCase
}

func NewCashierHandler(cashierUseCase usecase.CashierUseCase) *CashierHandler {
	return &CashierHandler{
		cashierUseCase: cashierUseCase,
	}
}

// @Summary Open cash session
// @Description Open the drawer for the day with a starting float
// @Tags cashier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenCashSessionRequest true "Open request"
// @Success 201 {object} resdto.CashSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cash-sessions [post]
func (h *CashierHandler) OpenDay(c *gin.Context) {
	var req reqdto.OpenCashSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	startAmount, err := decimal.NewFromString(req.StartAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start amount",
		})
		return
	}

	session, err := h.cashierUseCase.OpenDay(c.Request.Context(), startAmount)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionAlreadyOpen):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A cash session is already open",
			})
		case errors.Is(err, cashier.ErrNegativeStartAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Start amount cannot be negative",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCashSessionRM(session))
}

// @Summary Close cash session
// @Description Close the open drawer, reconciling against the counted amount
// @Tags cashier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CloseCashSessionRequest true "Close request"
// @Success 200 {object} resdto.CashCloseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cash-sessions/close [post]
func (h *CashierHandler) CloseDay(c *gin.Context) {
	var req reqdto.CloseCashSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	countedAmount, err := decimal.NewFromString(req.CountedAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid counted amount",
		})
		return
	}

	result, err := h.cashierUseCase.CloseDay(c.Request.Context(), countedAmount)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoOpenSession):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No open cash session",
			})
		case errors.Is(err, cashier.ErrNegativeEndAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Counted amount cannot be negative",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCashCloseRM(result))
}

// @Summary Current drawer report
// @Description Live totals for the open drawer
// @Tags cashier
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DrawerReportResponse
// @Failure 404 {object} map[string]string
// @Router /cash-sessions/current [get]
func (h *CashierHandler) CurrentReport(c *gin.Context) {
	report, err := h.cashierUseCase.CurrentReport(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoOpenSession):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No open cash session",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDrawerReportRM(report))
}

// @Summary Cash session history
// @Description List past and current cash sessions
// @Tags cashier
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CashSessionResponse
// @Router /cash-sessions [get]
func (h *CashierHandler) History(c *gin.Context) {
	sessions, err := h.cashierUseCase.History(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCashSessionRMs(sessions))
}
