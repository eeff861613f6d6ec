package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/kressgarten/growops/internal/config"
	"github.com/kressgarten/growops/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Exporter appends submitted harvests to the operations spreadsheet that the
// accounting export is fed from.
type Exporter interface {
	AppendHarvest(ctx context.Context, entry models.HarvestAuditEntry) error
}

// GoogleSheetExporter implements the Exporter interface using the official
// Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	exportRange   string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		exportRange:   cfg.ExportRange,
		logger:        logger,
	}, nil
}

// AppendHarvest appends one harvest row to the export range.
func (e *GoogleSheetExporter) AppendHarvest(ctx context.Context, entry models.HarvestAuditEntry) error {
	row := []interface{}{
		entry.HarvestDate.Format(dateLayout),
		entry.BatchID,
		entry.PlanID,
		entry.HarvestedG,
		entry.LossG,
		entry.Quality,
		entry.ProjectedG,
		entry.Severity,
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, e.exportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append harvest row into range %s: %w", e.exportRange, err)
	}

	e.logger.Debug("harvest row appended to sheet", zap.String("batch_id", entry.BatchID))
	return nil
}
