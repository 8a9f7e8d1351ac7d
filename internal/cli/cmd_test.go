package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/hoursreport/internal/config"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/alexanderramin/hoursreport/internal/projectconfig"
	"github.com/alexanderramin/hoursreport/internal/repository"
	"github.com/alexanderramin/hoursreport/internal/service"
	"github.com/alexanderramin/hoursreport/internal/testutil"
	"github.com/alexanderramin/hoursreport/internal/viewer"
	"github.com/alexanderramin/hoursreport/internal/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// testApp wires a full App backed by an in-memory history DB. The data dir
// and output live in a temp dir.
func testApp(t *testing.T) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	database := testutil.NewTestDB(t)

	reg, err := projectconfig.DefaultRegistry("")
	require.NoError(t, err)

	s := config.Default()
	s.Report.DataDir = filepath.Join(dir, "data")
	s.Report.OutputName = filepath.Join(dir, "HoursReport.xlsx")
	require.NoError(t, os.MkdirAll(s.Report.DataDir, 0o755))

	history := service.NewHistoryService(repository.NewSQLiteRunRepo(database), testutil.NewTestUoW(database), 0)
	app := &App{
		Settings:      s,
		Registry:      reg,
		History:       history,
		Reports:       service.NewReportService(reg, xlsx.NewWriter(0, 0, nil), viewer.Noop{}, history, nil),
		IsInteractive: func() bool { return false },
	}
	return app, dir
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeITP2CSV(t *testing.T, dir, name string) string {
	t.Helper()
	return testutil.WriteCSV(t, dir, name,
		testutil.CSVRow{Start: "2025-01-20T09:00:00", Minutes: "60", Description: "sprint planning"},
		testutil.CSVRow{Start: "2025-02-20T09:00:00", Minutes: "90", Description: "report: midterm draft"},
		testutil.CSVRow{Start: "2025-03-17T09:00:00", Minutes: "45", Description: "self assessment form"},
		testutil.CSVRow{Start: "2025-05-12T09:00:00", Minutes: "30", Description: "\"video\" editing"},
		testutil.CSVRow{Start: "2025-06-30T09:00:00", Minutes: "30", Description: "after the course"},
	)
}

func TestGenerateCmd_WritesWorkbook(t *testing.T) {
	app, dir := testApp(t)
	in := writeITP2CSV(t, dir, "alice_log.csv")
	out := filepath.Join(dir, "custom.xlsx")

	output, err := executeCmd(t, app, "generate", "--config", "itp2", "-o", out, in)
	require.NoError(t, err)

	assert.Contains(t, output, "REPORT")
	assert.Contains(t, output, "Alice")
	assert.Contains(t, output, "3.8h")
	assert.Contains(t, output, "Alice: 1 session outside every category")

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Total", "Alice Code", "Alice Report", "Alice Self Accessment", "Alice Video"}, f.GetSheetList())
}

func TestGenerateCmd_ScansDataDirAndTotalLast(t *testing.T) {
	app, _ := testApp(t)
	writeITP2CSV(t, app.Settings.Report.DataDir, "b.csv")
	writeITP2CSV(t, app.Settings.Report.DataDir, "a.csv")

	_, err := executeCmd(t, app, "generate", "-c", "itp2", "--total-last")
	require.NoError(t, err)

	f, err := excelize.OpenFile(app.Settings.Report.OutputName)
	require.NoError(t, err)
	defer f.Close()
	sheets := f.GetSheetList()
	require.Len(t, sheets, 9)
	assert.Equal(t, "A Code", sheets[0])
	assert.Equal(t, "B Code", sheets[4])
	assert.Equal(t, "Total", sheets[8])
}

func TestGenerateCmd_DataDirFlagOverridesSettings(t *testing.T) {
	app, dir := testApp(t)
	other := filepath.Join(dir, "other")
	require.NoError(t, os.MkdirAll(other, 0o755))

	_, err := executeCmd(t, app, "generate", "-c", "itp2", "--data-dir", other)
	require.Error(t, err)
	assert.True(t, rerr.IsKind(err, rerr.KindInput))
	assert.Contains(t, err.Error(), other)
}

func TestGenerateCmd_ConfigResolution(t *testing.T) {
	t.Run("missing config when not interactive", func(t *testing.T) {
		app, dir := testApp(t)
		in := writeITP2CSV(t, dir, "a.csv")

		_, err := executeCmd(t, app, "generate", in)
		require.Error(t, err)
		assert.True(t, rerr.IsKind(err, rerr.KindConfig))
		assert.Contains(t, err.Error(), "webdev, itp2")
	})

	t.Run("picker when interactive", func(t *testing.T) {
		app, dir := testApp(t)
		in := writeITP2CSV(t, dir, "a.csv")
		app.IsInteractive = func() bool { return true }
		var offered []string
		app.PickConfig = func(_ context.Context, configs []projectconfig.ProjectConfig) (string, error) {
			for _, c := range configs {
				offered = append(offered, c.Key())
			}
			return "itp2", nil
		}

		output, err := executeCmd(t, app, "generate", in)
		require.NoError(t, err)
		assert.Equal(t, []string{"webdev", "itp2"}, offered)
		assert.Contains(t, output, "itp2")
	})

	t.Run("settings default", func(t *testing.T) {
		app, dir := testApp(t)
		in := writeITP2CSV(t, dir, "a.csv")
		app.Settings.Report.DefaultConfig = "itp2"

		_, err := executeCmd(t, app, "generate", in)
		require.NoError(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		app, dir := testApp(t)
		in := writeITP2CSV(t, dir, "a.csv")

		_, err := executeCmd(t, app, "generate", "-c", "nope", in)
		require.Error(t, err)
		assert.Equal(t, 3, rerr.ExitCode(rerr.KindOf(err)))
	})
}

func TestConfigsCmd(t *testing.T) {
	app, dir := testApp(t)

	output, err := executeCmd(t, app, "configs", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "webdev")
	assert.Contains(t, output, "IT2901 ITP2")

	output, err = executeCmd(t, app, "configs", "show", "WEBDEV")
	require.NoError(t, err)
	assert.Contains(t, output, "Peer Review P2 Part 3")
	assert.Contains(t, output, "Final Delivery")

	_, err = executeCmd(t, app, "configs", "show", "missing")
	assert.True(t, rerr.IsKind(err, rerr.KindConfig))

	good := filepath.Join(dir, "thesis.json")
	require.NoError(t, os.WriteFile(good, []byte(`{
		"key": "thesis",
		"parts": [{"name": "Writing", "start": "2025-01-01", "end": "2025-06-01"}],
		"groupings": [{"category": "Thesis", "parts": ["Writing"]}]
	}`), 0o644))
	output, err = executeCmd(t, app, "configs", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, output, "thesis (1 parts, 1 categories)")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"key": "bad", "parts": [], "groupings": []}`), 0o644))
	_, err = executeCmd(t, app, "configs", "validate", bad)
	require.Error(t, err)
	assert.True(t, rerr.IsKind(err, rerr.KindConfig))
}

func TestLabelCmd(t *testing.T) {
	app, _ := testApp(t)

	tests := []struct {
		name     string
		args     []string
		part     string
		category string
	}{
		{"peer review prefix", []string{"-c", "webdev", "-d", "2024-09-23", "Peer", "review", "of", "group", "5"}, "Peer Review P1 Part 1", "Peer Reviews"},
		{"plain description in review week", []string{"-c", "webdev", "-d", "2024-09-23", "fix bugs"}, "P1 Part 1", "Project 1"},
		{"report beats code", []string{"-c", "itp2", "-d", "2025-03-01", "report: intro"}, "Report Midterm", "Report"},
		{"quotes stripped", []string{"-c", "itp2", "-d", "2025-05-12", `"video"`}, "Video", "Video"},
		{"outside every part", []string{"-c", "itp2", "-d", "2026-01-01", "anything"}, "Unknown", "(not reported)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCmd(t, app, append([]string{"label"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, output, tt.part)
			assert.Contains(t, output, tt.category)
		})
	}
}

func TestLabelCmd_DateErrors(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "label", "-c", "itp2", "x")
	require.Error(t, err)
	assert.True(t, rerr.IsKind(err, rerr.KindInput))

	_, err = executeCmd(t, app, "label", "-c", "itp2", "-d", "March 1st", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "March 1st")
}

func TestHistoryCmd(t *testing.T) {
	app, dir := testApp(t)
	in := writeITP2CSV(t, dir, "alice.csv")

	output, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, output, "No report runs recorded.")

	_, err = executeCmd(t, app, "generate", "-c", "itp2", in)
	require.NoError(t, err)

	runs, err := app.History.Recent(context.Background(), "", 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	id := runs[0].ID

	output, err = executeCmd(t, app, "history", "--config", "itp2")
	require.NoError(t, err)
	assert.Contains(t, output, id[:8])

	output, err = executeCmd(t, app, "history", "--config", "webdev")
	require.NoError(t, err)
	assert.Contains(t, output, "No report runs recorded.")

	output, err = executeCmd(t, app, "history", "show", id[:8])
	require.NoError(t, err)
	assert.Contains(t, output, id)
	assert.Contains(t, output, "Alice")
	assert.Contains(t, output, "alice.csv")

	_, err = executeCmd(t, app, "history", "-n", "0")
	assert.True(t, rerr.IsKind(err, rerr.KindInput))
}

func TestHistoryCmd_Disabled(t *testing.T) {
	app, _ := testApp(t)
	app.History = nil

	_, err := executeCmd(t, app, "history")
	require.Error(t, err)
	assert.True(t, rerr.IsKind(err, rerr.KindConfig))
	assert.Contains(t, err.Error(), "history.enabled")
}

func TestRootCmd_SetupReceivesGlobalFlags(t *testing.T) {
	app, _ := testApp(t)
	var got GlobalOptions
	app.Setup = func(opts GlobalOptions) error {
		got = opts
		return nil
	}

	_, err := executeCmd(t, app, "--config-file", "/tmp/x.yaml", "--log-level", "debug", "configs", "list")
	require.NoError(t, err)
	assert.Equal(t, GlobalOptions{ConfigFile: "/tmp/x.yaml", LogLevel: "debug"}, got)
}

func TestRootCmd_SetupErrorStopsCommand(t *testing.T) {
	app, _ := testApp(t)
	app.Setup = func(GlobalOptions) error { return rerr.Configf("broken settings") }

	output, err := executeCmd(t, app, "configs", "list")
	require.Error(t, err)
	assert.False(t, strings.Contains(output, "webdev"))
}

func TestConfigOptions_Labels(t *testing.T) {
	opts := configOptions([]projectconfig.ProjectConfig{projectconfig.WebDev()})
	require.Len(t, opts, 1)
	assert.Equal(t, "webdev", opts[0].Value)
	assert.Equal(t, "webdev — IT2810 WebDev", opts[0].Key)
}
