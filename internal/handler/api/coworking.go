package api

import (
	"errors"
	"net/http"

	"caja-api/internal/domain/coworking"
	reqdto "caja-api/internal/handler/dto/request"
	resdto "caja-api/internal/handler/dto/response"
	"caja-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CoworkingHandler struct {
	coworkingUseCase usecase.CoworkingUseCase
}

func NewCoworkingHandler(coworkingUseCase usecase.CoworkingUseCase) *CoworkingHandler {
	return &CoworkingHandler{
		coworkingUseCase: coworkingUseCase,
	}
}

// @Summary Start coworking session
// @Description Start a timed coworking session for a client
// @Tags coworking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartCoworkingSessionRequest true "Session request"
// @Success 201 {object} resdto.CoworkingSessionResponse
// @Failure 400 {object} map[string]string
// @Router /coworking/sessions [post]
func (h *CoworkingHandler) StartSession(c *gin.Context) {
	var req reqdto.StartCoworkingSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	session, err := h.coworkingUseCase.StartSession(c.Request.Context(), req.ClientName)
	if err != nil {
		switch {
		case errors.Is(err, coworking.ErrEmptyClientName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Client name is required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCoworkingSessionRM(session))
}

// @Summary List active sessions
// @Description List currently running coworking sessions
// @Tags coworking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CoworkingSessionResponse
// @Router /coworking/sessions [get]
func (h *CoworkingHandler) ListActive(c *gin.Context) {
	sessions, err := h.coworkingUseCase.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCoworkingSessionRMs(sessions))
}

// @Summary List finished sessions
// @Description List finished coworking sessions
// @Tags coworking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CoworkingSessionResponse
// @Router /coworking/sessions/history [get]
func (h *CoworkingHandler) ListFinished(c *gin.Context) {
	sessions, err := h.coworkingUseCase.ListFinished(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCoworkingSessionRMs(sessions))
}

// @Summary Add extra to session
// @Description Add a consumed product to an active coworking session
// @Tags coworking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.AddExtraRequest true "Extra request"
// @Success 200 {object} resdto.CoworkingSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coworking/sessions/{id}/extras [post]
func (h *CoworkingHandler) AddExtra(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID",
		})
		return
	}

	var req reqdto.AddExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	session, err := h.coworkingUseCase.AddExtra(c.Request.Context(), sessionID, req.ProductID, req.QuantityValue())
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCoworkingSessionRM(session))
}

// @Summary Remove extra from session
// @Description Remove a consumed product from an active coworking session
// @Tags coworking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CoworkingSessionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coworking/sessions/{id}/extras/{productId} [delete]
func (h *CoworkingHandler) RemoveExtra(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID",
		})
		return
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	session, err := h.coworkingUseCase.RemoveExtra(c.Request.Context(), sessionID, productID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCoworkingSessionRM(session))
}

// @Summary Quote session
// @Description Get the current charge estimate for an active session
// @Tags coworking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.CoworkingQuoteResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coworking/sessions/{id}/quote [get]
func (h *CoworkingHandler) Quote(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID",
		})
		return
	}

	quote, err := h.coworkingUseCase.Quote(c.Request.Context(), sessionID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCoworkingQuoteRM(quote))
}

// @Summary Finish session
// @Description Close an active session and record the charge as an order
// @Tags coworking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.FinishCoworkingSessionRequest true "Finish request"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coworking/sessions/{id}/finish [post]
func (h *CoworkingHandler) FinishSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID",
		})
		return
	}

	var req reqdto.FinishCoworkingSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	o, err := h.coworkingUseCase.FinishSession(c.Request.Context(), sessionID, req.PaymentMethod)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderRM(o))
}

func (h *CoworkingHandler) respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCoworkingSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Coworking session not found",
		})
	case errors.Is(err, usecase.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, usecase.ErrSessionNotActive), errors.Is(err, coworking.ErrSessionNotActive):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Coworking session is not active",
		})
	case errors.Is(err, coworking.ErrExtraNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Extra not found in session",
		})
	case errors.Is(err, coworking.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be at least 1",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
