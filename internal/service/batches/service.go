package batches

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kressgarten/growops/internal/domain/cultivation"
	"github.com/kressgarten/growops/internal/domain/models"
	"github.com/kressgarten/growops/internal/repository/mongodb"
	"github.com/kressgarten/growops/internal/repository/sheets"
	"github.com/kressgarten/growops/pkg/clients/backend"
)

// ErrUnknownPlan indicates a reference to a seed plan the backend does not know.
var ErrUnknownPlan = errors.New("unknown seed plan")

// ErrInsufficientSeedStock indicates no sowable seed lot is available for the plan.
var ErrInsufficientSeedStock = errors.New("insufficient seed stock")

// ErrMeaninglessTransition indicates a status change request that makes no
// sense for the batch's current status, e.g. harvesting an already harvested
// batch. The backend stays authoritative for everything else.
var ErrMeaninglessTransition = errors.New("meaningless status transition")

// ErrInvalidQuality indicates a quality rating outside the 1..5 scale.
var ErrInvalidQuality = errors.New("quality rating must be between 1 and 5")

// SeedStockProvider supplies the sowable seed inventory. Today this is the
// backend's seed-stock endpoint; the interface keeps the sowing flow
// decoupled from it.
type SeedStockProvider interface {
	ListSeedStock(ctx context.Context) ([]models.SeedStock, error)
}

// BatchView is a grow batch enriched with its derived state and projection.
// The projection is nil when the plan's offsets cannot produce one.
type BatchView struct {
	Batch      models.GrowBatch        `json:"batch"`
	Plan       models.SeedPlan         `json:"plan"`
	State      cultivation.BatchState  `json:"state"`
	Projection *cultivation.Projection `json:"projection,omitempty"`
}

// HarvestResult is the outcome of a harvest submission, including the
// advisory variance verdict.
type HarvestResult struct {
	Record     models.HarvestRecord          `json:"record"`
	Evaluation cultivation.HarvestEvaluation `json:"evaluation"`
}

// Service coordinates batch reads and submissions between the backend, the
// projection logic and the local audit trail.
type Service struct {
	backend  backend.Client
	stock    SeedStockProvider
	store    mongodb.Repository
	exporter sheets.Exporter
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a new batch service instance.
func NewService(client backend.Client, stock SeedStockProvider, store mongodb.Repository, exporter sheets.Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		backend:  client,
		stock:    stock,
		store:    store,
		exporter: exporter,
		logger:   logger,
		now:      time.Now,
	}
}

// ListBatches returns all batches enriched with elapsed days, phase and
// harvest window as of now. Batches whose plan is missing or inconsistent
// are still listed, without a projection.
func (s *Service) ListBatches(ctx context.Context, now time.Time) ([]BatchView, error) {
	plans, err := s.planIndex(ctx)
	if err != nil {
		return nil, err
	}

	batches, err := s.backend.ListBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}

	views := make([]BatchView, 0, len(batches))
	for _, batch := range batches {
		plan, ok := plans[batch.PlanID]
		if !ok {
			s.logger.Warn("batch references unknown plan", zap.String("batch_id", batch.ID), zap.String("plan_id", batch.PlanID))
		}

		view := BatchView{
			Batch: batch,
			Plan:  plan,
			State: cultivation.State(batch, plan, now),
		}

		if ok {
			if projection, err := cultivation.Project(plan, batch.SowDate, batch.UnitCount); err == nil {
				view.Projection = &projection
			} else {
				s.logger.Warn("batch projection failed", zap.String("batch_id", batch.ID), zap.Error(err))
			}
		}

		views = append(views, view)
	}

	return views, nil
}

// SubmitSowing validates a sowing request locally and opens the batch on the
// backend. The returned projection is the preview the operator confirmed.
func (s *Service) SubmitSowing(ctx context.Context, req models.SowingRequest) (*models.GrowBatch, *cultivation.Projection, error) {
	plans, err := s.planIndex(ctx)
	if err != nil {
		return nil, nil, err
	}

	plan, ok := plans[req.PlanID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownPlan, req.PlanID)
	}

	projection, err := cultivation.Project(plan, req.SowDate, req.UnitCount)
	if err != nil {
		return nil, nil, err
	}

	if err := s.checkSeedStock(ctx, req.PlanID); err != nil {
		return nil, nil, err
	}

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	batch, err := s.backend.SubmitSowing(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("submit sowing: %w", err)
	}

	s.logger.Info("sowing submitted",
		zap.String("batch_id", batch.ID),
		zap.String("plan_id", req.PlanID),
		zap.Int("unit_count", req.UnitCount))

	return batch, &projection, nil
}

// SubmitHarvest evaluates an actual harvest against its projection, submits
// the record and writes the audit trail. A large deviation is returned as an
// advisory verdict; it never blocks the submission.
func (s *Service) SubmitHarvest(ctx context.Context, record models.HarvestRecord) (*HarvestResult, error) {
	if record.Quality < 1 || record.Quality > 5 {
		return nil, ErrInvalidQuality
	}

	batch, err := s.backend.GetBatch(ctx, record.BatchID)
	if err != nil {
		return nil, fmt.Errorf("load batch: %w", err)
	}
	if batch.Status.Terminal() {
		return nil, fmt.Errorf("%w: batch %s is already %s", ErrMeaninglessTransition, batch.ID, batch.Status)
	}

	plans, err := s.planIndex(ctx)
	if err != nil {
		return nil, err
	}
	plan, ok := plans[batch.PlanID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlan, batch.PlanID)
	}

	projection, err := cultivation.Project(plan, batch.SowDate, batch.UnitCount)
	if err != nil {
		return nil, err
	}

	evaluation, err := cultivation.EvaluateHarvest(record.HarvestedG, record.LossG, projection.ProjectedYieldG)
	if err != nil {
		return nil, err
	}

	if err := s.backend.SubmitHarvest(ctx, record); err != nil {
		return nil, fmt.Errorf("submit harvest: %w", err)
	}

	s.recordAudit(ctx, *batch, record, projection, evaluation)

	if evaluation.Severity == cultivation.VarianceLarge {
		s.logger.Warn("harvest deviates strongly from projection",
			zap.String("batch_id", record.BatchID),
			zap.Float64("deviation_pct", evaluation.DeviationPct))
	}

	return &HarvestResult{Record: record, Evaluation: evaluation}, nil
}

// RequestStatusChange forwards a status transition request after filtering
// out requests that are meaningless for the current status. Authoritative
// acceptance stays with the backend.
func (s *Service) RequestStatusChange(ctx context.Context, batchID string, status models.BatchStatus) error {
	if !status.Known() {
		return fmt.Errorf("%w: unknown status %q", ErrMeaninglessTransition, status)
	}

	batch, err := s.backend.GetBatch(ctx, batchID)
	if err != nil {
		return fmt.Errorf("load batch: %w", err)
	}

	if batch.Status.Terminal() {
		return fmt.Errorf("%w: batch %s is already %s", ErrMeaninglessTransition, batchID, batch.Status)
	}
	if batch.Status == status {
		return fmt.Errorf("%w: batch %s is already %s", ErrMeaninglessTransition, batchID, status)
	}

	if err := s.backend.RequestStatusChange(ctx, batchID, status); err != nil {
		return fmt.Errorf("request status change: %w", err)
	}

	s.logger.Info("status change requested",
		zap.String("batch_id", batchID),
		zap.String("from", string(batch.Status)),
		zap.String("to", string(status)))

	return nil
}

func (s *Service) planIndex(ctx context.Context) (map[string]models.SeedPlan, error) {
	plans, err := s.backend.ListSeedPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seed plans: %w", err)
	}

	index := make(map[string]models.SeedPlan, len(plans))
	for _, plan := range plans {
		index[plan.ID] = plan
	}
	return index, nil
}

func (s *Service) checkSeedStock(ctx context.Context, planID string) error {
	stock, err := s.stock.ListSeedStock(ctx)
	if err != nil {
		return fmt.Errorf("list seed stock: %w", err)
	}

	for _, lot := range stock {
		if lot.PlanID == planID && lot.AmountG > 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: plan %s", ErrInsufficientSeedStock, planID)
}

// recordAudit writes the audit entry and the export row. Both are best
// effort: the harvest is already accepted by the backend, so failures here
// are logged, not surfaced.
func (s *Service) recordAudit(ctx context.Context, batch models.GrowBatch, record models.HarvestRecord, projection cultivation.Projection, evaluation cultivation.HarvestEvaluation) {
	entry := models.HarvestAuditEntry{
		BatchID:      record.BatchID,
		PlanID:       batch.PlanID,
		HarvestDate:  record.HarvestDate,
		HarvestedG:   record.HarvestedG,
		LossG:        record.LossG,
		Quality:      record.Quality,
		ProjectedG:   projection.ProjectedYieldG,
		DeviationPct: evaluation.DeviationPct,
		Severity:     string(evaluation.Severity),
		CreatedAt:    s.now().UTC(),
	}

	if s.store != nil {
		if err := s.store.SaveHarvestAudit(ctx, entry); err != nil {
			s.logger.Error("failed to save harvest audit entry", zap.String("batch_id", record.BatchID), zap.Error(err))
		}
	}

	if s.exporter != nil {
		if err := s.exporter.AppendHarvest(ctx, entry); err != nil {
			s.logger.Error("failed to export harvest row", zap.String("batch_id", record.BatchID), zap.Error(err))
		}
	}
}
