package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/hoursreport/internal/domain"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/alexanderramin/hoursreport/internal/logger"
	"github.com/alexanderramin/hoursreport/internal/repository"
	"github.com/alexanderramin/hoursreport/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_RecordAndRecent(t *testing.T) {
	h := newTestHistory(t, 0)
	ctx := context.Background()

	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	for i, key := range []string{"webdev", "itp2", "webdev"} {
		run := testutil.NewTestRun(testutil.WithConfigKey(key), testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, h.Record(ctx, run))
	}

	all, err := h.Recent(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	webdev, err := h.Recent(ctx, "webdev", 10)
	require.NoError(t, err)
	assert.Len(t, webdev, 2)
}

func TestHistory_RecordPrunes(t *testing.T) {
	h := newTestHistory(t, 2)
	ctx := context.Background()

	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	var last string
	for i := 0; i < 4; i++ {
		run := testutil.NewTestRun(testutil.WithCreatedAt(base.Add(time.Duration(i) * time.Minute)))
		require.NoError(t, h.Record(ctx, run))
		last = run.ID
	}

	runs, err := h.Recent(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, last, runs[0].ID)
}

func TestHistory_RecordIsAtomic(t *testing.T) {
	database := testutil.NewTestDB(t)
	injected := errors.New("disk I/O error")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}
	h := NewHistoryService(repository.NewSQLiteRunRepo(database), uow, 0)

	// Exec 1 inserts the run, exec 2 its only project line.
	run := testutil.NewTestRun(testutil.WithRunProjects(
		domain.RunProject{Title: "Data", SourceFile: "data.csv", Hours: 2, Weeks: 1},
	))
	err := h.Record(context.Background(), run)
	require.ErrorIs(t, err, injected)

	runs, err := h.Recent(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestHistory_GetByPrefix(t *testing.T) {
	h := newTestHistory(t, 0)
	ctx := context.Background()

	run := testutil.NewTestRun(testutil.WithRunProjects(
		domain.RunProject{Title: "Data", SourceFile: "data.csv", Hours: 2, Weeks: 1},
	))
	require.NoError(t, h.Record(ctx, run))

	got, err := h.Get(ctx, run.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, "Data", got.Projects[0].Title)
}

func TestHistory_GetUnknownIsInputError(t *testing.T) {
	h := newTestHistory(t, 0)

	_, err := h.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, rerr.IsKind(err, rerr.KindInput))
	assert.Contains(t, err.Error(), "missing")
}

func TestLogUseCaseObserver_WritesEvent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: "info", Format: "json", Writer: &buf})
	obs := NewLogUseCaseObserver(&log)

	ctx := logger.WithRun(context.Background(), "run-1", "itp2")
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "generate-report", Success: true, Fields: map[string]any{"sheets": 3}})

	out := buf.String()
	assert.Contains(t, out, `"use_case":"generate-report"`)
	assert.Contains(t, out, `"run_id":"run-1"`)
	assert.Contains(t, out, `"config":"itp2"`)
	assert.Contains(t, out, `"sheets":3`)
	assert.Contains(t, out, `"level":"info"`)

	buf.Reset()
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "generate-report", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestNewLogUseCaseObserver_NilIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
