package projectconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/hoursreport/internal/domain"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const thesisJSON = `{
  "key": "Thesis",
  "display_name": "Master Thesis",
  "description": "Thesis writing and experiments.",
  "rules": [
    {"track": "writing", "keywords": ["write", "draft"], "part_marker": "writing"},
    {"keywords": ["experiment"], "match": "prefix"}
  ],
  "parts": [
    {"name": "Writing Autumn", "start": "2025-08-15", "end": "2025-12-20"},
    {"name": "Experiment Runs", "start": "2025-08-15", "end": "2025-10-31"},
    {"name": "Implementation", "start": "2025-08-15", "end": "2025-12-20"}
  ],
  "groupings": [
    {"category": "Writing", "parts": ["Writing Autumn"]},
    {"category": "Lab", "parts": ["Experiment Runs", "Implementation"]}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ConvertsSchemaWithDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "thesis.json", thesisJSON)

	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Thesis", d.Key())
	assert.Equal(t, "Master Thesis", d.DisplayName())
	require.Len(t, d.Parts(), 3)
	assert.Equal(t, date(2025, 8, 15), d.Parts()[0].Start)

	kp, ok := d.Policy().(KeywordPolicy)
	require.True(t, ok)
	assert.Equal(t, FallbackFirstPlain, kp.Fallback)
	require.Len(t, kp.Rules, 2)
	assert.Equal(t, MatchContains, kp.Rules[0].Match)
	assert.Equal(t, MatchPrefix, kp.Rules[1].Match)
	assert.Equal(t, "experiment", kp.Rules[1].PartMarker)
	assert.Equal(t, "experiment", kp.Rules[1].Track)

	assert.Equal(t, "Writing Autumn", d.LabelSession(date(2025, 9, 1), "Draft chapter 2"))
	assert.Equal(t, "Experiment Runs", d.LabelSession(date(2025, 9, 1), "experiment batch 4"))
	assert.Equal(t, "Implementation", d.LabelSession(date(2025, 9, 1), "rerun experiment"))
	assert.Equal(t, domain.UnknownPart, d.LabelSession(date(2026, 1, 5), "draft"))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed json", `{"key": `, "parsing project config"},
		{"bad date", `{"key":"x","parts":[{"name":"A","start":"01/02/2025","end":"2025-02-01"}],"groupings":[{"category":"A","parts":["A"]}]}`, "invalid date format"},
		{"start after end", `{"key":"x","parts":[{"name":"A","start":"2025-03-01","end":"2025-02-01"}],"groupings":[{"category":"A","parts":["A"]}]}`, "is after end"},
		{"unknown grouping part", `{"key":"x","parts":[{"name":"A","start":"2025-01-01","end":"2025-02-01"}],"groupings":[{"category":"A","parts":["B"]}]}`, `part "B" not found`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "bad.json", tc.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.True(t, rerr.IsKind(err, rerr.KindConfig))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, rerr.IsKind(err, rerr.KindConfig))
}

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(Builtins()...)
	require.NoError(t, err)

	assert.Equal(t, []string{"webdev", "itp2"}, r.Keys())
	cfg, ok := r.Get("ITP2")
	require.True(t, ok)
	assert.Equal(t, "IT2901 ITP2", cfg.DisplayName())
	assert.Len(t, r.List(), 2)
}

func TestNewRegistry_RejectsDuplicateKey(t *testing.T) {
	_, err := NewRegistry(WebDev(), WebDev())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate project config key "webdev"`)
	assert.True(t, rerr.IsKind(err, rerr.KindConfig))
}

func TestNewRegistry_RejectsInvalidDefinition(t *testing.T) {
	bad := NewDefinition("bad", "Bad", "", nil, nil, validPolicy())
	_, err := NewRegistry(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project config bad is invalid")
}

func TestRegistry_MustGetUnknown(t *testing.T) {
	r, err := NewRegistry(Builtins()...)
	require.NoError(t, err)

	_, err = r.MustGet("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: webdev, itp2")
	e, ok := rerr.As(err)
	require.True(t, ok)
	assert.Equal(t, "config", e.Field())
}

func TestDefaultRegistry_LoadsDirAfterBuiltins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "thesis.json", thesisJSON)
	writeFile(t, dir, "notes.txt", "ignored")

	r, err := DefaultRegistry(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"webdev", "itp2", "thesis"}, r.Keys())
}

func TestDefaultRegistry_MissingDir(t *testing.T) {
	r, err := DefaultRegistry(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Equal(t, []string{"webdev", "itp2"}, r.Keys())
}

func TestDefaultRegistry_BuiltinKeyClash(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "webdev.json", `{"key":"WEBDEV","parts":[{"name":"A","start":"2025-01-01","end":"2025-02-01"}],"groupings":[{"category":"A","parts":["A"]}]}`)

	_, err := DefaultRegistry(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
