package layout

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/hoursreport/internal/domain"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// category builds a result with one 60-minute row per ISO week of 2025
// starting at week firstWeek, perWeek rows each.
func category(name string, firstWeek, weeks, perWeek int) domain.CategoryResult {
	var table domain.CategoryTable
	monday := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC) // ISO week 1 of 2025
	for w := 0; w < weeks; w++ {
		for i := 0; i < perWeek; i++ {
			date := monday.AddDate(0, 0, 7*(firstWeek-1+w)+i)
			table = append(table, domain.CategoryRow{
				Part:        name + " part",
				Week:        domain.ISOWeek(date),
				Date:        date,
				Minutes:     60,
				Description: fmt.Sprintf("%s session %d", name, i),
			})
		}
	}
	return domain.CategoryResult{Name: name, Table: table, Summary: domain.Summarize(table)}
}

func project(title string, cats ...domain.CategoryResult) domain.ProjectReport {
	return domain.ProjectReport{
		Identity:   domain.ProjectIdentity{Title: title, PrimaryColor: "0072BC", SecondaryColor: "D9EAF7"},
		Categories: cats,
	}
}

func TestGridPosition(t *testing.T) {
	tests := []struct {
		index   int
		wantRow int
		wantOff int
	}{
		{0, 1, 0},
		{1, 1, 5},
		{2, 1, 10},
		{3, 13, 0},
		{4, 13, 5},
		{6, 25, 0},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.index), func(t *testing.T) {
			row, off := GridPosition(tc.index)
			assert.Equal(t, tc.wantRow, row)
			assert.Equal(t, tc.wantOff, off)
		})
	}

	// Index 3 starts a new band in the column of index 0.
	row0, off0 := GridPosition(0)
	row3, off3 := GridPosition(3)
	assert.Greater(t, row3, row0)
	assert.Equal(t, off0, off3)
}

func TestRender_CategorySheet(t *testing.T) {
	p := project("Data", category("Code", 9, 3, 4))

	wb, err := Render([]domain.ProjectReport{p}, DefaultOptions())
	require.NoError(t, err)

	s, ok := wb.Sheet("Data Code")
	require.True(t, ok)
	assert.Equal(t, "0072BC", s.TabColor)
	assert.True(t, s.ShowGridLines)

	// Title and headers.
	assert.Equal(t, "Data - Code", s.Value(1, 1))
	assert.Contains(t, s.Merges, Range{From: Ref{1, 1}, To: Ref{1, 5}})
	title, _ := s.Cell(1, 1)
	assert.True(t, title.Style.Bold)
	assert.Equal(t, 14.0, title.Style.FontSize)
	for i, h := range []string{"Part", "Week", "Date", "Minutes", "Description"} {
		c, ok := s.Cell(2, 1+i)
		require.True(t, ok)
		assert.Equal(t, h, c.Value)
		assert.Equal(t, "0072BC", c.Style.Fill)
		assert.Equal(t, "FFFFFF", c.Style.FontColor)
	}

	// Twelve data rows, rows 3..14.
	for row := 3; row <= 14; row++ {
		_, ok := s.Cell(row, ColPart)
		assert.True(t, ok, "row %d", row)
	}
	_, ok = s.Cell(15, ColPart)
	assert.False(t, ok)

	odd, _ := s.Cell(3, ColPart)
	even, _ := s.Cell(4, ColPart)
	assert.Empty(t, odd.Style.Fill)
	assert.Equal(t, "D9EAF7", even.Style.Fill)
	assert.True(t, odd.Style.Border)
	assert.True(t, odd.Style.Wrap)

	date, _ := s.Cell(3, ColDate)
	assert.Equal(t, FmtDate, date.Style.NumFmt)
	assert.IsType(t, time.Time{}, date.Value)
	assert.Equal(t, 9, s.Value(3, ColWeek))
	assert.Equal(t, 60.0, s.Value(3, ColMinutes))

	// Week panel.
	assert.Equal(t, "Week", s.Value(2, ColPanelLabel))
	assert.Equal(t, "Hours", s.Value(2, ColPanelValue))
	assert.Equal(t, "Week 9", s.Value(3, ColPanelLabel))
	assert.Equal(t, "Week 11", s.Value(5, ColPanelLabel))
	assert.Equal(t, 4.0, s.Value(5, ColPanelValue))
	_, ok = s.Cell(6, ColPanelLabel)
	assert.False(t, ok)

	// Summary block at len(weeks)+4 = 7.
	assert.Equal(t, 7, SummaryRow(p.Categories[0].Summary))
	assert.Equal(t, "Summary", s.Value(7, ColPanelLabel))
	assert.Contains(t, s.Merges, Range{From: Ref{7, 7}, To: Ref{7, 8}})
	assert.Equal(t, "Total Hours", s.Value(8, ColPanelLabel))
	assert.Equal(t, 12.0, s.Value(8, ColPanelValue))
	assert.Equal(t, "Total Weeks", s.Value(9, ColPanelLabel))
	assert.Equal(t, 3, s.Value(9, ColPanelValue))
	assert.Equal(t, "Average Hours/Week", s.Value(10, ColPanelLabel))
	assert.Equal(t, 4.0, s.Value(10, ColPanelValue))
	weeks, _ := s.Cell(9, ColPanelValue)
	assert.Equal(t, FmtCount, weeks.Style.NumFmt)

	// Dimensions.
	assert.Equal(t, map[int]float64{1: 25, 2: 10, 3: 15, 4: 10, 5: 100, 7: 15, 8: 15}, s.ColWidths)
	for row := 1; row <= 14; row++ {
		assert.Equal(t, 32.0, s.RowHeights[row], "row %d", row)
	}
}

func TestRender_SummaryWithoutWeeks(t *testing.T) {
	empty := domain.CategoryResult{Name: "Video", Summary: domain.Summarize(nil)}
	wb, err := Render([]domain.ProjectReport{project("Data", empty)}, DefaultOptions())
	require.NoError(t, err)

	s, ok := wb.Sheet("Data Video")
	require.True(t, ok)
	assert.Equal(t, "Summary", s.Value(4, ColPanelLabel))
	assert.Equal(t, 0, s.Value(6, ColPanelValue))
	assert.Equal(t, 0.0, s.Value(7, ColPanelValue))
}

func TestRender_SheetOrder(t *testing.T) {
	projects := []domain.ProjectReport{
		project("Data", category("Code", 1, 1, 1), category("Report", 1, 1, 1)),
		project("Alice", category("Code", 1, 1, 1)),
	}

	first, err := Render(projects, Options{TotalSheetFirst: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Total", "Data Code", "Data Report", "Alice Code"}, first.Names())

	last, err := Render(projects, Options{TotalSheetFirst: false})
	require.NoError(t, err)
	assert.Equal(t, []string{"Data Code", "Data Report", "Alice Code", "Total"}, last.Names())
}

func TestRender_TotalSheet(t *testing.T) {
	var projects []domain.ProjectReport
	for i := 0; i < 4; i++ {
		projects = append(projects, project(fmt.Sprintf("P%d", i), category("Code", 1, 2, 1), category("Report", 3, 1, 3)))
	}

	wb, err := Render(projects, DefaultOptions())
	require.NoError(t, err)
	s, ok := wb.Sheet(TotalSheetName)
	require.True(t, ok)
	assert.False(t, s.ShowGridLines)
	assert.Equal(t, "FFD700", s.TabColor)

	// Block 1 starts at column F (offset 5), block 3 wraps to row 13.
	assert.Equal(t, "P0 - Summary", s.Value(1, 1))
	assert.Equal(t, "P1 - Summary", s.Value(1, 6))
	assert.Equal(t, "P2 - Summary", s.Value(1, 11))
	assert.Equal(t, "P3 - Summary", s.Value(13, 1))
	assert.Contains(t, s.Merges, Range{From: Ref{1, 6}, To: Ref{1, 9}})
	assert.Contains(t, s.Merges, Range{From: Ref{13, 1}, To: Ref{13, 4}})

	// Header and category rows.
	assert.Equal(t, "Project", s.Value(2, 1))
	assert.Equal(t, "Average Hours/Week", s.Value(2, 4))
	assert.Equal(t, "Code", s.Value(3, 1))
	assert.Equal(t, 2.0, s.Value(3, 2))
	assert.Equal(t, 2, s.Value(3, 3))
	assert.Equal(t, 1.0, s.Value(3, 4))
	assert.Equal(t, "Report", s.Value(4, 1))
	assert.Equal(t, 3.0, s.Value(4, 2))

	// Blank row 5, then Project Total at row 6.
	_, blank := s.Cell(5, 1)
	assert.False(t, blank)
	assert.Equal(t, "Project Total", s.Value(6, 1))
	assert.Contains(t, s.Merges, Range{From: Ref{6, 1}, To: Ref{6, 2}})
	assert.Equal(t, 5.0, s.Value(7, 2))
	assert.Equal(t, 3, s.Value(8, 2))
	assert.InDelta(t, 5.0/3.0, s.Value(9, 2).(float64), 1e-9)

	assert.Equal(t, 25.0, s.ColWidths[1])
	assert.Equal(t, 15.0, s.ColWidths[2])
	assert.Equal(t, 25.0, s.ColWidths[9])
	assert.Equal(t, 32.0, s.RowHeights[1])
	assert.Equal(t, 32.0, s.RowHeights[13])
	assert.NotContains(t, s.RowHeights, 5)
}

func TestRender_TotalBlockWithoutCategories(t *testing.T) {
	wb, err := Render([]domain.ProjectReport{project("Empty")}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"Total"}, wb.Names())

	s, _ := wb.Sheet(TotalSheetName)
	assert.Equal(t, "Project Total", s.Value(4, 1))
	assert.Equal(t, 0, s.Value(6, 2))
	assert.Equal(t, 0.0, s.Value(7, 2))
}

func TestRender_GridGrowsForTallBlocks(t *testing.T) {
	var cats []domain.CategoryResult
	for i := 0; i < 8; i++ {
		cats = append(cats, category(fmt.Sprintf("C%d", i), 1, 1, 1))
	}
	projects := []domain.ProjectReport{project("A", cats...), project("B"), project("C"), project("D")}

	wb, err := Render(projects, DefaultOptions())
	require.NoError(t, err)
	s, _ := wb.Sheet(TotalSheetName)

	// Block A spans 8+7 = 15 rows, so the second band starts at row 17.
	assert.Equal(t, "A - Summary", s.Value(1, 1))
	assert.Equal(t, "D - Summary", s.Value(17, 1))
}

func TestRender_InvalidColour(t *testing.T) {
	p := project("Data", category("Code", 1, 1, 1))
	p.Identity.SecondaryColor = "#D9EAF7"

	_, err := Render([]domain.ProjectReport{p}, DefaultOptions())
	require.Error(t, err)
	assert.True(t, rerr.IsKind(err, rerr.KindLayout))
}

func TestRender_UniqueSanitisedNames(t *testing.T) {
	long := strings.Repeat("x", 40)
	projects := []domain.ProjectReport{
		project("Data", category("Code/Review", 1, 1, 1)),
		project("data", category("CODEREVIEW", 1, 1, 1)),
		project(long, category("A", 1, 1, 1), category("B", 1, 1, 1)),
		project("Total", domain.CategoryResult{Name: ""}),
	}

	wb, err := Render(projects, Options{TotalSheetFirst: false})
	require.NoError(t, err)

	names := wb.Names()
	assert.Equal(t, "Data CodeReview", names[0])
	assert.Equal(t, "data CODEREVIEW (2)", names[1])
	assert.Equal(t, strings.Repeat("x", 31), names[2])
	assert.Equal(t, strings.Repeat("x", 27)+" (2)", names[3])
	assert.Equal(t, "Total (2)", names[4])
	assert.Equal(t, "Total", names[5])

	seen := map[string]bool{}
	for _, n := range names {
		assert.LessOrEqual(t, len([]rune(n)), MaxSheetNameLen)
		assert.False(t, seen[strings.ToLower(n)], n)
		seen[strings.ToLower(n)] = true
	}
}

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Data Code", "Data Code"},
		{"a[b]c:d*e?f/g\\h", "abcdefgh"},
		{"'quoted'", "quoted"},
		{"", "Sheet"},
		{"???", "Sheet"},
		{strings.Repeat("é", 35), strings.Repeat("é", 31)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeSheetName(tc.in))
		})
	}
}

func TestNewEngine_FillsDefaults(t *testing.T) {
	e := NewEngine(Options{Dimensions: Dimensions{DescriptionWidth: 60}})
	opts := e.Options()
	assert.Equal(t, 60.0, opts.Dimensions.DescriptionWidth)
	assert.Equal(t, 25.0, opts.Dimensions.PartWidth)
	assert.Equal(t, DefaultGrid, opts.Grid)
	assert.Equal(t, DefaultTotalTabColor, opts.TotalTabColor)
}

func TestSheet_CellsSorted(t *testing.T) {
	s := NewSheet("x")
	s.Set(2, 1, "c", Style{})
	s.Set(1, 2, "b", Style{})
	s.Set(1, 1, "a", Style{})

	cells := s.Cells()
	require.Len(t, cells, 3)
	assert.Equal(t, []any{"a", "b", "c"}, []any{cells[0].Value, cells[1].Value, cells[2].Value})
	assert.Equal(t, 2, s.MaxRow())
	assert.Equal(t, []int{1, 2}, s.UsedRows())
}
