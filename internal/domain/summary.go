package domain

import (
	"sort"
	"time"
)

// CategoryRow is one output row of a category sheet.
type CategoryRow struct {
	Part        string
	Week        int
	Date        time.Time
	Minutes     float64
	Description string
}

// CategoryTable holds the rows of one category.
type CategoryTable []CategoryRow

// WeekHours is the hours logged in one ISO week.
type WeekHours struct {
	Week  int
	Hours float64
}

// CategorySummary is derived from a CategoryTable through Summarize and is
// never edited on its own.
type CategorySummary struct {
	TotalHours   float64
	HoursPerWeek []WeekHours
}

// Summarize computes total hours and hours per ISO week, sorted by week.
// Weeks without sessions are absent.
func Summarize(table CategoryTable) CategorySummary {
	var totalMin float64
	byWeek := make(map[int]float64)
	for _, r := range table {
		totalMin += r.Minutes
		byWeek[r.Week] += r.Minutes / 60
	}

	weeks := make([]WeekHours, 0, len(byWeek))
	for w, h := range byWeek {
		weeks = append(weeks, WeekHours{Week: w, Hours: h})
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Week < weeks[j].Week })

	return CategorySummary{
		TotalHours:   totalMin / 60,
		HoursPerWeek: weeks,
	}
}

// TotalWeeks is the number of weeks with at least one session.
func (s CategorySummary) TotalWeeks() int {
	return len(s.HoursPerWeek)
}

// AverageHoursPerWeek returns TotalHours / TotalWeeks, or 0 with no weeks.
func (s CategorySummary) AverageHoursPerWeek() float64 {
	return AverageHours(s.TotalHours, s.TotalWeeks())
}

// AverageHours divides hours by weeks, returning 0 when weeks is 0.
func AverageHours(hours float64, weeks int) float64 {
	if weeks <= 0 {
		return 0
	}
	return hours / float64(weeks)
}

// CategoryResult is the classified output for one category.
type CategoryResult struct {
	Name    string
	Table   CategoryTable
	Summary CategorySummary
}
