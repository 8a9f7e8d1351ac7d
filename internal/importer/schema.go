// Package importer reads time-tracking CSV exports into domain sessions.
package importer

import (
	"fmt"
	"strings"
)

// Column names of a time-tracking export. Matching is case-insensitive.
const (
	ColumnStartTime   = "starttime"
	ColumnDuration    = "duration"
	ColumnDescription = "description"
)

var columnAliases = map[string]string{
	"starttime":   ColumnStartTime,
	"start_time":  ColumnStartTime,
	"start":       ColumnStartTime,
	"duration":    ColumnDuration,
	"minutes":     ColumnDuration,
	"description": ColumnDescription,
}

// Columns holds the zero-based index of each required column.
type Columns struct {
	StartTime   int
	Duration    int
	Description int
}

// ResolveColumns maps a header row to column indexes. Extra columns are
// ignored; the first occurrence of a column wins.
func ResolveColumns(header []string) (Columns, error) {
	idx := map[string]int{}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		canonical, ok := columnAliases[name]
		if !ok {
			continue
		}
		if _, seen := idx[canonical]; !seen {
			idx[canonical] = i
		}
	}

	var missing []string
	for _, c := range []string{ColumnStartTime, ColumnDuration, ColumnDescription} {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return Columns{}, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}

	return Columns{
		StartTime:   idx[ColumnStartTime],
		Duration:    idx[ColumnDuration],
		Description: idx[ColumnDescription],
	}, nil
}

func (c Columns) width() int {
	return max(c.StartTime, c.Duration, c.Description) + 1
}
