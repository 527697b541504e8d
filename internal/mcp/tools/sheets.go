package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobnest/internal/domain"
	"github.com/honeycarbs/jobnest/internal/domain/job"
	"github.com/honeycarbs/jobnest/pkg/logging"
)

// SheetRow is one exported application
type SheetRow struct {
	ApplicationID  string
	ApplicantEmail string
	Status         string
	LinkedIn       string
	GitHub         string
	Resume         string
	JobTitle       string
	Company        string
}

// SheetTarget identifies where rows are written
type SheetTarget struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name, defaults to Sheet1"`
	Range         string `json:"range,omitempty" jsonschema:"Optional A1 range override"`
}

// SheetsExportRequest is what the sheets client writes
type SheetsExportRequest struct {
	Sheet    SheetTarget
	Rows     []SheetRow
	ClearTab bool
}

// SheetsClient writes rows to a spreadsheet
type SheetsClient interface {
	Export(ctx context.Context, req SheetsExportRequest) (SheetsExportResult, error)
}

// ApplicationLister lists the applications of one job
type ApplicationLister interface {
	ListForJob(ctx context.Context, jobID string) ([]domain.JobApplication, error)
}

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	JobID    string      `json:"job_id" jsonschema:"Job whose applications are exported"`
	ClearTab bool        `json:"clear_tab,omitempty" jsonschema:"If true, clears the tab before writing"`
	Sheet    SheetTarget `json:"sheet" jsonschema:"Destination sheet information"`
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id" jsonschema:"Target spreadsheet ID"`
	Tab           string    `json:"tab,omitempty" jsonschema:"Target tab name"`
	WrittenRows   int       `json:"written_rows" jsonschema:"How many rows were written"`
	CompletedAt   time.Time `json:"completed_at" jsonschema:"Timestamp when export finished"`
	Message       string    `json:"message,omitempty" jsonschema:"Optional status message"`
}

var errMissingSheet = errors.New("sheet.spreadsheet_id is required")

type sheetsExportTool struct {
	jobs         job.Service
	applications ApplicationLister
	client       SheetsClient
	logger       *logging.Logger
}

// WithSheetsExport registers the sheets_export tool
func WithSheetsExport(jobs job.Service, applications ApplicationLister, client SheetsClient) Option {
	return func(reg *registry) {
		handler := sheetsExportTool{
			jobs:         jobs,
			applications: applications,
			client:       client,
			logger:       reg.logger,
		}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Export the applications submitted for a job to Google Sheets",
		}, handler.handle)
	}
}

func (t sheetsExportTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.Sheet.SpreadsheetID == "" {
		return nil, nil, errMissingSheet
	}

	posting, err := t.jobs.Get(ctx, params.JobID)
	if err != nil {
		return nil, nil, fmt.Errorf("sheets_export: %w", err)
	}

	apps, err := t.applications.ListForJob(ctx, posting.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("sheets_export: %w", err)
	}

	rows := make([]SheetRow, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, SheetRow{
			ApplicationID:  app.ID,
			ApplicantEmail: app.ApplicantEmail,
			Status:         app.Status,
			LinkedIn:       app.LinkedIn,
			GitHub:         app.GitHub,
			Resume:         app.Resume,
			JobTitle:       posting.Title,
			Company:        posting.Company,
		})
	}

	result, err := t.client.Export(ctx, SheetsExportRequest{
		Sheet:    params.Sheet,
		Rows:     rows,
		ClearTab: params.ClearTab,
	})
	if err != nil {
		t.logger.Warn("sheets_export failed", "job_id", posting.ID, "err", err)
		return nil, nil, fmt.Errorf("sheets_export: %w", err)
	}

	t.logger.Info("sheets_export completed",
		"job_id", posting.ID,
		"spreadsheet_id", result.SpreadsheetID,
		"rows", result.WrittenRows,
	)
	return textResult(result.Message), result, nil
}
