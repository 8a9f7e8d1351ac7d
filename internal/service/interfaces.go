package service

import (
	"context"

	"github.com/alexanderramin/hoursreport/internal/domain"
	"github.com/alexanderramin/hoursreport/internal/layout"
)

// GenerateRequest describes one report generation.
type GenerateRequest struct {
	ConfigKey string
	// Files are the input CSVs in sheet order. When empty, DataDir is
	// scanned for *.csv files sorted by name.
	Files      []string
	DataDir    string
	OutputPath string
	// TotalSheetFirst places the Total sheet before the category sheets.
	TotalSheetFirst bool
	// ReopenViewer closes a running spreadsheet application before the
	// write and opens the new file afterwards.
	ReopenViewer bool
}

// GenerateResult holds the outcome of a successful generation.
type GenerateResult struct {
	Run        *domain.ReportRun
	Projects   []domain.ProjectReport
	SheetNames []string
	// Warnings are best-effort failures (viewer, history) that did not stop
	// the report from being written.
	Warnings []string
}

type ReportService interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

type HistoryService interface {
	Record(ctx context.Context, run *domain.ReportRun) error
	Recent(ctx context.Context, configKey string, limit int) ([]*domain.ReportRun, error)
	Get(ctx context.Context, id string) (*domain.ReportRun, error)
}

// WorkbookSaver persists a rendered workbook, implemented by xlsx.Writer.
type WorkbookSaver interface {
	Save(ctx context.Context, wb *layout.Workbook, path string) error
}
