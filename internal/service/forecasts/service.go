package forecasts

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kressgarten/growops/internal/domain/cultivation"
	"github.com/kressgarten/growops/internal/domain/models"
	"github.com/kressgarten/growops/pkg/clients/backend"
)

// ErrForecastNotFound indicates an override for a forecast the backend did
// not return.
var ErrForecastNotFound = errors.New("forecast not found")

// ForecastView is a forecast enriched with the deviation preview for an
// already stored override.
type ForecastView struct {
	Forecast     models.Forecast `json:"forecast"`
	DeviationPct *float64        `json:"deviation_pct,omitempty"`
}

// Service validates forecast overrides locally before handing them to the
// backend, which recomputes and persists the authoritative values.
type Service struct {
	backend backend.Client
	logger  *zap.Logger
}

// NewService wires a new forecast service instance.
func NewService(client backend.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{backend: client, logger: logger}
}

// List returns all forecasts with the deviation of any stored override.
func (s *Service) List(ctx context.Context) ([]ForecastView, error) {
	forecasts, err := s.backend.ListForecasts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forecasts: %w", err)
	}

	views := make([]ForecastView, 0, len(forecasts))
	for _, f := range forecasts {
		view := ForecastView{Forecast: f}
		if f.OverrideG != nil && f.QuantityG > 0 {
			deviation := (*f.OverrideG - f.QuantityG) / f.QuantityG * 100
			view.DeviationPct = &deviation
		}
		views = append(views, view)
	}

	return views, nil
}

// SubmitOverride evaluates a candidate override and submits it when the local
// checks pass. The evaluation is returned alongside validation errors so the
// caller can surface the deviation either way.
func (s *Service) SubmitOverride(ctx context.Context, forecastID string, override models.ForecastOverride) (*cultivation.OverrideEvaluation, error) {
	forecasts, err := s.backend.ListForecasts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forecasts: %w", err)
	}

	var forecast *models.Forecast
	for i := range forecasts {
		if forecasts[i].ID == forecastID {
			forecast = &forecasts[i]
			break
		}
	}
	if forecast == nil {
		return nil, fmt.Errorf("%w: %s", ErrForecastNotFound, forecastID)
	}

	evaluation, err := cultivation.EvaluateOverride(forecast.QuantityG, override.QuantityG, override.Justification)
	if err != nil {
		return &evaluation, err
	}

	if err := s.backend.SubmitOverride(ctx, forecastID, override); err != nil {
		return &evaluation, fmt.Errorf("submit override: %w", err)
	}

	s.logger.Info("forecast override submitted",
		zap.String("forecast_id", forecastID),
		zap.Float64("deviation_pct", evaluation.DeviationPct),
		zap.Bool("justified", override.Justification != ""))

	return &evaluation, nil
}
