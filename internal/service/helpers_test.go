package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/hoursreport/internal/domain"
	"github.com/alexanderramin/hoursreport/internal/layout"
	"github.com/alexanderramin/hoursreport/internal/projectconfig"
	"github.com/alexanderramin/hoursreport/internal/repository"
	"github.com/alexanderramin/hoursreport/internal/testutil"
	"github.com/stretchr/testify/require"
)

type fakeViewer struct {
	closeErr error
	openErr  error
	calls    []string
	opened   string
}

func (v *fakeViewer) Close(context.Context) (bool, error) {
	v.calls = append(v.calls, "close")
	return v.closeErr == nil, v.closeErr
}

func (v *fakeViewer) Open(_ context.Context, path string) error {
	v.calls = append(v.calls, "open")
	v.opened = path
	return v.openErr
}

type fakeSaver struct {
	err   error
	saved []string
}

func (s *fakeSaver) Save(_ context.Context, wb *layout.Workbook, path string) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, path)
	return nil
}

type fakeHistory struct {
	err      error
	recorded []*domain.ReportRun
}

func (h *fakeHistory) Record(_ context.Context, run *domain.ReportRun) error {
	if h.err != nil {
		return h.err
	}
	h.recorded = append(h.recorded, run)
	return nil
}

func (h *fakeHistory) Recent(context.Context, string, int) ([]*domain.ReportRun, error) {
	return h.recorded, nil
}

func (h *fakeHistory) Get(context.Context, string) (*domain.ReportRun, error) {
	return nil, errors.New("not implemented")
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func builtinRegistry(t *testing.T) *projectconfig.Registry {
	t.Helper()
	reg, err := projectconfig.DefaultRegistry("")
	require.NoError(t, err)
	return reg
}

func newTestHistory(t *testing.T, keep int) HistoryService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewHistoryService(repository.NewSQLiteRunRepo(database), testutil.NewTestUoW(database), keep)
}

// writeWebDevCSV writes one session per Project 1, Peer Reviews and
// Project 2 category, one extra Project 1 session and one out-of-range
// session. Total 5 hours, 1 dropped.
func writeWebDevCSV(t *testing.T, dir, name string) string {
	t.Helper()
	return testutil.WriteCSV(t, dir, name,
		testutil.CSVRow{Start: "2024-09-02T10:00:00", Minutes: "60", Description: "setup"},
		testutil.CSVRow{Start: "2024-09-23T10:00:00", Minutes: "90", Description: "Peer review of group 5"},
		testutil.CSVRow{Start: "2024-09-24T10:00:00", Minutes: "30", Description: "fix bugs"},
		testutil.CSVRow{Start: "2024-10-01T10:00:00", Minutes: "120", Description: "api"},
		testutil.CSVRow{Start: "2025-01-01T10:00:00", Minutes: "15", Description: "after the course"},
	)
}

func outPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "HoursReport.xlsx")
}
