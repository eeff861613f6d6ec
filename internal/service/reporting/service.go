package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kressgarten/growops/internal/domain/cultivation"
	"github.com/kressgarten/growops/internal/domain/models"
	"github.com/kressgarten/growops/internal/repository/mongodb"
	"github.com/kressgarten/growops/pkg/clients/backend"
)

const (
	dateLayout   = "2006-01-02"
	upcomingDays = 7
)

// Service builds harvest-readiness snapshots across the active batches.
type Service struct {
	backend backend.Client
	store   mongodb.Repository
	logger  *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(client backend.Client, store mongodb.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{backend: client, store: store, logger: logger}
}

// GenerateReadinessReport classifies every active batch against its harvest
// window as of now, persists the snapshot and returns it.
func (s *Service) GenerateReadinessReport(ctx context.Context, now time.Time) (*models.ReadinessReport, error) {
	plans, err := s.backend.ListSeedPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seed plans: %w", err)
	}
	planIndex := make(map[string]models.SeedPlan, len(plans))
	for _, plan := range plans {
		planIndex[plan.ID] = plan
	}

	batches, err := s.backend.ListBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}

	today := cultivation.Midnight(now)
	report := models.ReadinessReport{
		Date:      today,
		CreatedAt: now.UTC(),
	}

	for _, batch := range batches {
		if batch.Status.Terminal() {
			continue
		}
		report.ActiveCount++

		plan, ok := planIndex[batch.PlanID]
		if !ok {
			s.logger.Warn("skipping batch with unknown plan", zap.String("batch_id", batch.ID), zap.String("plan_id", batch.PlanID))
			continue
		}

		projection, err := cultivation.Project(plan, batch.SowDate, batch.UnitCount)
		if err != nil {
			s.logger.Warn("skipping batch without projection", zap.String("batch_id", batch.ID), zap.Error(err))
			continue
		}

		switch {
		case today.After(projection.HarvestMax):
			report.Overdue = append(report.Overdue, batch.ID)
		case !today.Before(projection.HarvestMin):
			report.DueToday = append(report.DueToday, batch.ID)
		case !projection.HarvestMin.After(cultivation.AddDays(today, upcomingDays)):
			report.UpcomingWeek = append(report.UpcomingWeek, batch.ID)
		}
	}

	report.Summary = formatSummary(report)

	if s.store != nil {
		if err := s.store.SaveReadinessReport(ctx, report); err != nil {
			return nil, fmt.Errorf("save readiness report: %w", err)
		}
	}

	return &report, nil
}

func formatSummary(r models.ReadinessReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Readiness %s: %d active batches.", r.Date.Format(dateLayout), r.ActiveCount)

	if len(r.Overdue) > 0 {
		fmt.Fprintf(&b, " %d past their harvest window (%s).", len(r.Overdue), strings.Join(r.Overdue, ", "))
	}
	if len(r.DueToday) > 0 {
		fmt.Fprintf(&b, " %d in window today (%s).", len(r.DueToday), strings.Join(r.DueToday, ", "))
	}
	if len(r.UpcomingWeek) > 0 {
		fmt.Fprintf(&b, " %d opening within %d days.", len(r.UpcomingWeek), upcomingDays)
	}
	if len(r.Overdue) == 0 && len(r.DueToday) == 0 && len(r.UpcomingWeek) == 0 {
		b.WriteString(" Nothing due.")
	}

	return b.String()
}
