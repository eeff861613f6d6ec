package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/kressgarten/growops/internal/config"
	"github.com/kressgarten/growops/internal/service/reporting"
)

// Scheduler manages the daily harvest-readiness sweep.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	cfg          config.ReadinessConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. The sweep runs in the
// configured timezone so "morning" means the nursery's morning.
func NewScheduler(cfg config.ReadinessConfig, reportingSvc *reporting.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to local", zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		reportingSvc: reportingSvc,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runReadinessSweep); err != nil {
		s.logger.Error("failed to schedule readiness sweep", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runReadinessSweep() {
	s.logger.Info("running readiness sweep")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := s.reportingSvc.GenerateReadinessReport(ctx, time.Now())
	if err != nil {
		s.logger.Error("failed to generate readiness report", zap.Error(err))
		return
	}

	s.logger.Info("readiness report stored",
		zap.Int("active", report.ActiveCount),
		zap.Int("due_today", len(report.DueToday)),
		zap.Int("overdue", len(report.Overdue)),
		zap.String("summary", report.Summary))
}
