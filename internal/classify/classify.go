// Package classify assigns sessions to parts and aggregates them into
// per-category tables and summaries.
package classify

import (
	"strings"

	"github.com/alexanderramin/hoursreport/internal/domain"
	"github.com/alexanderramin/hoursreport/internal/projectconfig"
)

// Label returns the sessions in chronological order with quotes stripped
// from descriptions and a part assigned to each. The input is not modified.
func Label(sessions []domain.Session, cfg projectconfig.ProjectConfig) []domain.ClassifiedSession {
	sorted := make([]domain.Session, len(sessions))
	copy(sorted, sessions)
	ChronologicalSort(sorted)

	out := make([]domain.ClassifiedSession, len(sorted))
	for i, s := range sorted {
		s.Description = strings.ReplaceAll(s.Description, `"`, "")
		out[i] = domain.ClassifiedSession{
			Session: s,
			Part:    cfg.LabelSession(s.Date, s.Description),
		}
	}
	return out
}

// Classify labels the sessions and buckets them into the config's
// categories. Categories are returned in grouping order; categories with no
// sessions are omitted. Sessions labelled Unknown, or whose part belongs to
// no category, are left out.
func Classify(sessions []domain.Session, cfg projectconfig.ProjectConfig) []domain.CategoryResult {
	groups := cfg.Groupings()
	tables := make(map[string]domain.CategoryTable, len(groups))

	for _, cs := range Label(sessions, cfg) {
		category, ok := groups.CategoryOf(cs.Part)
		if !ok {
			continue
		}
		tables[category] = append(tables[category], domain.CategoryRow{
			Part:        cs.Part,
			Week:        domain.ISOWeek(cs.Date),
			Date:        cs.Date,
			Minutes:     cs.Minutes,
			Description: cs.Description,
		})
	}

	results := make([]domain.CategoryResult, 0, len(tables))
	for _, c := range groups {
		table, ok := tables[c.Name]
		if !ok {
			continue
		}
		delete(tables, c.Name)
		results = append(results, domain.CategoryResult{
			Name:    c.Name,
			Table:   table,
			Summary: domain.Summarize(table),
		})
	}
	return results
}

// Unlabeled counts the sessions Classify leaves out.
func Unlabeled(sessions []domain.Session, cfg projectconfig.ProjectConfig) int {
	groups := cfg.Groupings()
	n := 0
	for _, cs := range Label(sessions, cfg) {
		if _, ok := groups.CategoryOf(cs.Part); !ok {
			n++
		}
	}
	return n
}
