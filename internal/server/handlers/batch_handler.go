package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kressgarten/growops/internal/domain/cultivation"
	"github.com/kressgarten/growops/internal/domain/models"
	"github.com/kressgarten/growops/internal/service/batches"
)

// BatchHandler exposes the grow batch operations over HTTP.
type BatchHandler struct {
	svc    *batches.Service
	logger *zap.Logger
}

// NewBatchHandler constructs the HTTP handler adapter.
func NewBatchHandler(svc *batches.Service, logger *zap.Logger) *BatchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchHandler{svc: svc, logger: logger}
}

// List returns all batches with their derived state. The reference time can
// be pinned with the "at" query parameter (RFC 3339) for reproducible views.
func (h *BatchHandler) List(c *gin.Context) {
	now := time.Now()
	if at := c.Query("at"); at != "" {
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'at' timestamp, expected RFC 3339"})
			return
		}
		now = parsed
	}

	views, err := h.svc.ListBatches(c.Request.Context(), now)
	if err != nil {
		h.logger.Error("failed listing batches", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load batches"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// Sow validates and submits a sowing request.
func (h *BatchHandler) Sow(c *gin.Context) {
	var req models.SowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid sowing payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	batch, projection, err := h.svc.SubmitSowing(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "unable to submit sowing")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"batch": batch, "projection": projection})
}

type harvestRequest struct {
	HarvestDate time.Time `json:"harvest_date" binding:"required"`
	HarvestedG  float64   `json:"harvested_g"`
	LossG       float64   `json:"loss_g"`
	Quality     int       `json:"quality" binding:"required"`
}

// Harvest records the actual outcome of a batch. A strong deviation from the
// projection is returned as a warning in the response, not as a failure.
func (h *BatchHandler) Harvest(c *gin.Context) {
	var req harvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid harvest payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record := models.HarvestRecord{
		BatchID:     c.Param("id"),
		HarvestDate: req.HarvestDate,
		HarvestedG:  req.HarvestedG,
		LossG:       req.LossG,
		Quality:     req.Quality,
	}

	result, err := h.svc.SubmitHarvest(c.Request.Context(), record)
	if err != nil {
		h.respondError(c, err, "unable to submit harvest")
		return
	}

	body := gin.H{"result": result}
	if result.Evaluation.Severity == cultivation.VarianceLarge {
		body["warning"] = "harvest deviates strongly from projection, operator attention required"
	}

	c.JSON(http.StatusCreated, body)
}

type statusRequest struct {
	Status models.BatchStatus `json:"status" binding:"required"`
}

// Status requests a lifecycle transition from the backend.
func (h *BatchHandler) Status(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid status payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.RequestStatusChange(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		h.respondError(c, err, "unable to request status change")
		return
	}

	c.Status(http.StatusAccepted)
}

func (h *BatchHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, cultivation.ErrInvalidInput),
		errors.Is(err, batches.ErrInvalidQuality),
		errors.Is(err, batches.ErrUnknownPlan),
		errors.Is(err, batches.ErrInsufficientSeedStock),
		errors.Is(err, batches.ErrMeaninglessTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
	}
}
