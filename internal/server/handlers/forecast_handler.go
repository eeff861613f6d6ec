package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kressgarten/growops/internal/domain/cultivation"
	"github.com/kressgarten/growops/internal/domain/models"
	"github.com/kressgarten/growops/internal/service/forecasts"
)

// ForecastHandler exposes the demand forecast operations over HTTP.
type ForecastHandler struct {
	svc    *forecasts.Service
	logger *zap.Logger
}

// NewForecastHandler constructs the HTTP handler adapter.
func NewForecastHandler(svc *forecasts.Service, logger *zap.Logger) *ForecastHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ForecastHandler{svc: svc, logger: logger}
}

// List returns all forecasts with deviation previews.
func (h *ForecastHandler) List(c *gin.Context) {
	views, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing forecasts", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load forecasts"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// Override validates and submits a manual forecast override.
func (h *ForecastHandler) Override(c *gin.Context) {
	var req models.ForecastOverride
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid override payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	evaluation, err := h.svc.SubmitOverride(c.Request.Context(), c.Param("id"), req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"evaluation": evaluation})
	case errors.Is(err, cultivation.ErrInvalidQuantity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "field": "quantity_g"})
	case errors.Is(err, cultivation.ErrJustificationRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "field": "justification", "evaluation": evaluation})
	case errors.Is(err, cultivation.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, forecasts.ErrForecastNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("failed submitting override", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to submit override"})
	}
}
