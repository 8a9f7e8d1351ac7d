package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/hoursreport/internal/domain"
)

// TimestampLayouts are tried in order when parsing startTime.
var TimestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a startTime value using TimestampLayouts.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range TimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid startTime %q", s)
}

// ParseMinutes parses a non-negative duration in minutes.
func ParseMinutes(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q (expected minutes)", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("duration %q is negative", s)
	}
	return v, nil
}

// CleanDescription strips double quotes and surrounding whitespace.
func CleanDescription(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}

// convertRow builds a session from one data record starting at line.
func convertRow(record []string, cols Columns, line int) (domain.Session, []error) {
	if len(record) < cols.width() {
		return domain.Session{}, []error{fmt.Errorf("expected at least %d fields, got %d", cols.width(), len(record))}
	}

	var errs []error
	started, err := ParseTimestamp(record[cols.StartTime])
	if err != nil {
		errs = append(errs, err)
	}
	minutes, err := ParseMinutes(record[cols.Duration])
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return domain.Session{}, errs
	}

	return domain.Session{
		StartedAt:   started,
		Date:        domain.TruncateDate(started),
		Minutes:     minutes,
		Description: CleanDescription(record[cols.Description]),
		Line:        line,
	}, nil
}
