package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kressgarten/growops/internal/config"
	"github.com/kressgarten/growops/internal/domain/models"
)

// Client exposes the production backend operations used by the application.
// The backend owns persistence and every authoritative state transition;
// this client only reads and submits.
type Client interface {
	ListSeedPlans(ctx context.Context) ([]models.SeedPlan, error)
	ListBatches(ctx context.Context) ([]models.GrowBatch, error)
	GetBatch(ctx context.Context, id string) (*models.GrowBatch, error)
	SubmitSowing(ctx context.Context, req models.SowingRequest) (*models.GrowBatch, error)
	SubmitHarvest(ctx context.Context, record models.HarvestRecord) error
	RequestStatusChange(ctx context.Context, batchID string, status models.BatchStatus) error
	ListForecasts(ctx context.Context) ([]models.Forecast, error)
	SubmitOverride(ctx context.Context, forecastID string, override models.ForecastOverride) error
	ListSeedStock(ctx context.Context) ([]models.SeedStock, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a backend API client using the provided configuration values.
func NewClient(cfg config.BackendConfig) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(fmt.Sprintf("%s/api/%s", base, cfg.APIVersion)).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Token)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{httpClient: restyClient}
}

// apiError represents the backend's error payload.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Field   string `json:"field"`
	} `json:"error"`
}

func (c *APIClient) get(ctx context.Context, path string, result any) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}

	return checkStatus(resp, apiErr, path)
}

func (c *APIClient) post(ctx context.Context, path string, body, result any) error {
	apiErr := new(apiError)

	req := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetError(apiErr)
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}

	return checkStatus(resp, apiErr, path)
}

func checkStatus(resp *resty.Response, apiErr *apiError, path string) error {
	if resp.StatusCode() < http.StatusBadRequest {
		return nil
	}

	message := ""
	code := apiErr.Error.Code
	if apiErr != nil {
		message = apiErr.Error.Message
	}
	if code == "" {
		code = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("backend api error on %s: status=%d, code=%s, message=%s", path, resp.StatusCode(), code, message)
}

// ListSeedPlans fetches the seed plan master data.
func (c *APIClient) ListSeedPlans(ctx context.Context) ([]models.SeedPlan, error) {
	var plans []models.SeedPlan
	if err := c.get(ctx, "/seed-plans", &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// ListBatches fetches all grow batches.
func (c *APIClient) ListBatches(ctx context.Context) ([]models.GrowBatch, error) {
	var batches []models.GrowBatch
	if err := c.get(ctx, "/batches", &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

// GetBatch fetches a single grow batch by id.
func (c *APIClient) GetBatch(ctx context.Context, id string) (*models.GrowBatch, error) {
	batch := new(models.GrowBatch)
	if err := c.get(ctx, fmt.Sprintf("/batches/%s", id), batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// SubmitSowing opens a new grow batch on the backend and returns it.
func (c *APIClient) SubmitSowing(ctx context.Context, req models.SowingRequest) (*models.GrowBatch, error) {
	batch := new(models.GrowBatch)
	if err := c.post(ctx, "/sowings", req, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// SubmitHarvest records the actual outcome of a batch.
func (c *APIClient) SubmitHarvest(ctx context.Context, record models.HarvestRecord) error {
	return c.post(ctx, fmt.Sprintf("/batches/%s/harvest", record.BatchID), record, nil)
}

// RequestStatusChange asks the backend to transition a batch. The backend
// remains free to refuse.
func (c *APIClient) RequestStatusChange(ctx context.Context, batchID string, status models.BatchStatus) error {
	body := map[string]string{"status": string(status)}
	return c.post(ctx, fmt.Sprintf("/batches/%s/status", batchID), body, nil)
}

// ListForecasts fetches the computed demand forecasts.
func (c *APIClient) ListForecasts(ctx context.Context) ([]models.Forecast, error) {
	var forecasts []models.Forecast
	if err := c.get(ctx, "/forecasts", &forecasts); err != nil {
		return nil, err
	}
	return forecasts, nil
}

// SubmitOverride replaces a computed forecast quantity with a manual one.
func (c *APIClient) SubmitOverride(ctx context.Context, forecastID string, override models.ForecastOverride) error {
	return c.post(ctx, fmt.Sprintf("/forecasts/%s/override", forecastID), override, nil)
}

// ListSeedStock fetches the sowable seed inventory.
func (c *APIClient) ListSeedStock(ctx context.Context) ([]models.SeedStock, error) {
	var stock []models.SeedStock
	if err := c.get(ctx, "/seed-stock", &stock); err != nil {
		return nil, err
	}
	return stock, nil
}
