package testutil

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/hoursreport/internal/domain"
	"github.com/google/uuid"
)

// Session options
type SessionOption func(*domain.Session)

func WithDescription(d string) SessionOption {
	return func(s *domain.Session) {
		s.Description = d
	}
}

func WithLine(line int) SessionOption {
	return func(s *domain.Session) {
		s.Line = line
	}
}

// NewTestSession builds a session starting at 10:00 UTC on the given date.
func NewTestSession(y int, m time.Month, d int, minutes float64, opts ...SessionOption) domain.Session {
	start := time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	s := domain.Session{
		StartedAt: start,
		Date:      domain.TruncateDate(start),
		Minutes:   minutes,
		Line:      2,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Run options
type RunOption func(*domain.ReportRun)

func WithConfigKey(key string) RunOption {
	return func(r *domain.ReportRun) {
		r.ConfigKey = key
	}
}

func WithCreatedAt(t time.Time) RunOption {
	return func(r *domain.ReportRun) {
		r.CreatedAt = t
	}
}

func WithRunProjects(projects ...domain.RunProject) RunOption {
	return func(r *domain.ReportRun) {
		r.Projects = projects
		r.ProjectCount = len(projects)
		r.SheetCount = len(projects) + 1
		r.TotalHours = 0
		for _, p := range projects {
			r.TotalHours += p.Hours
		}
	}
}

func NewTestRun(opts ...RunOption) *domain.ReportRun {
	r := &domain.ReportRun{
		ID:         uuid.NewString(),
		ConfigKey:  "webdev",
		OutputPath: "/tmp/HoursReport.xlsx",
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CSVRow is one data row of a time-tracking export.
type CSVRow struct {
	Start       string
	Minutes     string
	Description string
}

// WriteCSV writes a time-tracking export with the standard header into dir
// and returns its path.
func WriteCSV(t *testing.T, dir, name string, rows ...CSVRow) string {
	t.Helper()
	var b bytes.Buffer
	w := csv.NewWriter(&b)
	records := [][]string{{"startTime", "duration", "description"}}
	for _, r := range rows {
		records = append(records, []string{r.Start, r.Minutes, r.Description})
	}
	if err := w.WriteAll(records); err != nil {
		t.Fatalf("encoding %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
