package domain

import "time"

// UnknownPart labels a session whose date falls outside every part.
const UnknownPart = "Unknown"

// Session is one logged unit of work parsed from a time-tracking export row.
type Session struct {
	StartedAt   time.Time
	Date        time.Time // StartedAt truncated to its calendar date, UTC midnight
	Minutes     float64
	Description string
	Line        int // 1-based line of the row in the source file
}

// ClassifiedSession is a session with the part assigned by a labeling policy.
type ClassifiedSession struct {
	Session
	Part string
}

// TruncateDate returns midnight UTC of t's calendar date.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ISOWeek returns the ISO 8601 week number of t.
func ISOWeek(t time.Time) int {
	_, w := t.ISOWeek()
	return w
}
