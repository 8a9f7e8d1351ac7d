package layout

import (
	"fmt"

	"github.com/alexanderramin/hoursreport/internal/domain"
)

// Category sheet columns.
const (
	ColPart        = 1
	ColWeek        = 2
	ColDate        = 3
	ColMinutes     = 4
	ColDescription = 5
	ColPanelLabel  = 7
	ColPanelValue  = 8
)

// Category sheet rows.
const (
	TitleRow     = 1
	HeaderRow    = 2
	FirstDataRow = 3
)

// Number formats.
const (
	FmtDate  = "yyyy-mm-dd"
	FmtHours = "0.0"
	FmtCount = "0"
)

const white = "FFFFFF"

var categoryHeaders = []string{"Part", "Week", "Date", "Minutes", "Description"}

func titleStyle() Style {
	return Style{Bold: true, FontSize: 14, Center: true}
}

func headerStyle(primary string) Style {
	return Style{Fill: primary, FontColor: white, Bold: true, Center: true}
}

// bodyStyle is the bordered, centred data style with the secondary tint on
// even rows.
func bodyStyle(row int, secondary string) Style {
	st := Style{Border: true, Center: true}
	if row%2 == 0 {
		st.Fill = secondary
	}
	return st
}

func (e *Engine) renderCategory(name string, id domain.ProjectIdentity, c domain.CategoryResult) *Sheet {
	d := e.opts.Dimensions
	s := NewSheet(name)
	s.TabColor = id.PrimaryColor

	s.Merge(Range{From: Ref{TitleRow, ColPart}, To: Ref{TitleRow, ColDescription}},
		fmt.Sprintf("%s - %s", id.Title, c.Name), titleStyle())

	for i, h := range categoryHeaders {
		s.Set(HeaderRow, ColPart+i, h, headerStyle(id.PrimaryColor))
	}

	for i, r := range c.Table {
		row := FirstDataRow + i
		st := bodyStyle(row, id.SecondaryColor)
		st.Wrap = true
		dateStyle := st
		dateStyle.NumFmt = FmtDate

		s.Set(row, ColPart, r.Part, st)
		s.Set(row, ColWeek, r.Week, st)
		s.Set(row, ColDate, r.Date, dateStyle)
		s.Set(row, ColMinutes, r.Minutes, st)
		s.Set(row, ColDescription, r.Description, st)
	}

	e.renderWeekPanel(s, id, c.Summary)
	e.renderSummaryBlock(s, id, c.Summary)

	s.ColWidths[ColPart] = d.PartWidth
	s.ColWidths[ColWeek] = d.WeekWidth
	s.ColWidths[ColDate] = d.DateWidth
	s.ColWidths[ColMinutes] = d.MinutesWidth
	s.ColWidths[ColDescription] = d.DescriptionWidth
	s.ColWidths[ColPanelLabel] = d.MetricWidth
	s.ColWidths[ColPanelValue] = d.ValueWidth
	for _, row := range s.UsedRows() {
		s.RowHeights[row] = d.RowHeight
	}
	return s
}

// renderWeekPanel writes the Week/Hours table beside the data.
func (e *Engine) renderWeekPanel(s *Sheet, id domain.ProjectIdentity, sum domain.CategorySummary) {
	s.Set(HeaderRow, ColPanelLabel, "Week", headerStyle(id.PrimaryColor))
	s.Set(HeaderRow, ColPanelValue, "Hours", headerStyle(id.PrimaryColor))

	for i, w := range sum.HoursPerWeek {
		row := FirstDataRow + i
		st := bodyStyle(row, id.SecondaryColor)
		hours := st
		hours.NumFmt = FmtHours

		s.Set(row, ColPanelLabel, fmt.Sprintf("Week %d", w.Week), st)
		s.Set(row, ColPanelValue, w.Hours, hours)
	}
}

// SummaryRow is the first row of a category sheet's summary block.
func SummaryRow(sum domain.CategorySummary) int {
	return len(sum.HoursPerWeek) + 4
}

func (e *Engine) renderSummaryBlock(s *Sheet, id domain.ProjectIdentity, sum domain.CategorySummary) {
	start := SummaryRow(sum)
	header := headerStyle(id.PrimaryColor)
	header.Wrap = true
	s.Merge(Range{From: Ref{start, ColPanelLabel}, To: Ref{start, ColPanelValue}}, "Summary", header)

	metrics := []struct {
		label  string
		value  any
		format string
	}{
		{"Total Hours", sum.TotalHours, FmtHours},
		{"Total Weeks", sum.TotalWeeks(), FmtCount},
		{"Average Hours/Week", sum.AverageHoursPerWeek(), FmtHours},
	}
	for i, m := range metrics {
		row := start + 1 + i
		st := bodyStyle(row, id.SecondaryColor)
		st.Wrap = true
		value := st
		value.NumFmt = m.format

		s.Set(row, ColPanelLabel, m.label, st)
		s.Set(row, ColPanelValue, m.value, value)
	}
}
