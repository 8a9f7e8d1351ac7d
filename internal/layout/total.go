package layout

import (
	"fmt"

	"github.com/alexanderramin/hoursreport/internal/domain"
)

// TotalSheetName is the name of the cross-project overview sheet.
const TotalSheetName = "Total"

var totalHeaders = []string{"Project", "Total Hours", "Total Weeks", "Average Hours/Week"}

// blockRows is the number of rows a project block occupies on the Total
// sheet: title, header, one row per category, a blank row, the totals
// header and three totals rows.
func blockRows(p domain.ProjectReport) int {
	return len(p.Categories) + 7
}

// totalGrid grows the band height when a block would not fit.
func (e *Engine) totalGrid(projects []domain.ProjectReport) Grid {
	g := e.opts.Grid.withDefaults()
	for _, p := range projects {
		g.BlockHeight = max(g.BlockHeight, blockRows(p)+1)
	}
	return g
}

func (e *Engine) renderTotal(projects []domain.ProjectReport) *Sheet {
	d := e.opts.Dimensions
	s := NewSheet(TotalSheetName)
	s.TabColor = e.opts.TotalTabColor
	s.ShowGridLines = false

	grid := e.totalGrid(projects)
	for i, p := range projects {
		row, off := grid.Position(i)
		e.renderProjectBlock(s, p, row, off)

		s.ColWidths[off+1] = d.ProjectWidth
		s.ColWidths[off+2] = d.TotalHoursWidth
		s.ColWidths[off+3] = d.TotalWeeksWidth
		s.ColWidths[off+4] = d.AverageWidth
	}

	for _, row := range s.UsedRows() {
		s.RowHeights[row] = d.TotalRowHeight
	}
	return s
}

func (e *Engine) renderProjectBlock(s *Sheet, p domain.ProjectReport, top, off int) {
	id := p.Identity
	s.Merge(Range{From: Ref{top, off + 1}, To: Ref{top, off + 4}},
		fmt.Sprintf("%s - Summary", id.Title), titleStyle())

	header := top + 1
	for i, h := range totalHeaders {
		s.Set(header, off+1+i, h, headerStyle(id.PrimaryColor))
	}

	row := header + 1
	for _, c := range p.Categories {
		st := bodyStyle(row, id.SecondaryColor)
		st.Wrap = true
		hours, count := st, st
		hours.NumFmt = FmtHours
		count.NumFmt = FmtCount

		s.Set(row, off+1, c.Name, st)
		s.Set(row, off+2, c.Summary.TotalHours, hours)
		s.Set(row, off+3, c.Summary.TotalWeeks(), count)
		s.Set(row, off+4, c.Summary.AverageHoursPerWeek(), hours)
		row++
	}

	// One blank row, then the project totals.
	start := row + 1
	totalHeader := headerStyle(id.PrimaryColor)
	totalHeader.Wrap = true
	s.Merge(Range{From: Ref{start, off + 1}, To: Ref{start, off + 2}}, "Project Total", totalHeader)

	totalHours, totalWeeks := p.Totals()
	metrics := []struct {
		label  string
		value  any
		format string
	}{
		{"Total Hours", totalHours, FmtHours},
		{"Total Weeks", totalWeeks, FmtCount},
		{"Average Hours/Week", domain.AverageHours(totalHours, totalWeeks), FmtHours},
	}
	for i, m := range metrics {
		r := start + 1 + i
		st := bodyStyle(r, id.SecondaryColor)
		value := st
		value.NumFmt = m.format

		s.Set(r, off+1, m.label, st)
		s.Set(r, off+2, m.value, value)
	}
}
