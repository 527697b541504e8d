package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/jobnest/internal/mcp/tools"
	sheetsclient "github.com/honeycarbs/jobnest/pkg/sheets"
)

// sheetHeader is written above the rows when a tab is cleared first
var sheetHeader = []any{"Application ID", "Applicant", "Status", "LinkedIn", "GitHub", "Resume", "Job", "Company"}

// valueWriter is the subset of the sheets client used for export
type valueWriter interface {
	AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error
	UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error
	ClearValues(ctx context.Context, spreadsheetID, rng string) error
}

type sheetsExporter struct {
	client valueWriter
	now    func() time.Time
}

// NewSheetsExporter adapts the Google Sheets client to the sheets_export tool
func NewSheetsExporter(client *sheetsclient.Client) tools.SheetsClient {
	e := &sheetsExporter{now: time.Now}
	if client != nil {
		e.client = client
	}
	return e
}

func (e *sheetsExporter) Export(ctx context.Context, req tools.SheetsExportRequest) (tools.SheetsExportResult, error) {
	result := tools.SheetsExportResult{
		SpreadsheetID: req.Sheet.SpreadsheetID,
		Tab:           tabName(req.Sheet.Tab),
	}

	if e.client == nil {
		result.Message = "Google Sheets client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)"
		return result, fmt.Errorf("sheets: client not configured")
	}

	if req.ClearTab {
		if err := e.client.ClearValues(ctx, req.Sheet.SpreadsheetID, result.Tab+"!A1:Z"); err != nil {
			return result, fmt.Errorf("sheets: failed to clear sheet: %w", err)
		}
		values := append([][]any{sheetHeader}, rowValues(req.Rows)...)
		if err := e.client.UpdateValues(ctx, req.Sheet.SpreadsheetID, rangeOf(req.Sheet, result.Tab), values); err != nil {
			return result, fmt.Errorf("sheets: failed to write rows: %w", err)
		}
	} else if len(req.Rows) > 0 {
		if err := e.client.AppendValues(ctx, req.Sheet.SpreadsheetID, rangeOf(req.Sheet, result.Tab), rowValues(req.Rows)); err != nil {
			return result, fmt.Errorf("sheets: failed to append rows: %w", err)
		}
	}

	result.WrittenRows = len(req.Rows)
	result.CompletedAt = e.now().UTC()
	if result.WrittenRows == 0 {
		result.Message = "no applications to export"
	} else {
		result.Message = fmt.Sprintf("successfully exported %d row(s)", result.WrittenRows)
	}
	return result, nil
}

func tabName(tab string) string {
	if tab == "" {
		return "Sheet1"
	}
	return tab
}

func rangeOf(sheet tools.SheetTarget, tab string) string {
	if sheet.Range != "" {
		return sheet.Range
	}
	return tab + "!A1"
}

func rowValues(rows []tools.SheetRow) [][]any {
	values := make([][]any, len(rows))
	for i, row := range rows {
		values[i] = []any{
			row.ApplicationID,
			row.ApplicantEmail,
			row.Status,
			row.LinkedIn,
			row.GitHub,
			row.Resume,
			row.JobTitle,
			row.Company,
		}
	}
	return values
}
