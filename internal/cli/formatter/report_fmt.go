package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/hoursreport/internal/domain"
)

const shareWidth = 12

// FormatReportResult renders a generated run: output path, sheets and one
// line per project with its share of the total hours.
func FormatReportResult(run *domain.ReportRun, sheets []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("FILE  "), Bold(run.OutputPath))
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("CONFIG"), run.ConfigKey)
	fmt.Fprintf(&b, "%s  %d  %s\n", StyleDim.Render("SHEETS"), run.SheetCount, Dim(strings.Join(sheets, ", ")))
	b.WriteString("\n")

	headers := []string{"PROJECT", "HOURS", "WEEKS", "SHARE", "DROPPED"}
	rows := make([][]string, 0, len(run.Projects)+1)
	for _, p := range run.Projects {
		share := 0.0
		if run.TotalHours > 0 {
			share = p.Hours / run.TotalHours
		}
		rows = append(rows, []string{
			Bold(p.Title),
			FormatHours(p.Hours),
			strconv.Itoa(p.Weeks),
			RenderShare(share, shareWidth),
			droppedCell(p.Dropped),
		})
	}
	rows = append(rows, []string{StyleHeader.Render("Total"), Bold(FormatHours(run.TotalHours)), "", "", ""})
	b.WriteString(Table{Headers: headers, Rows: rows, Right: []int{1, 2, 4}}.String())

	return RenderBox("Report", strings.TrimRight(b.String(), "\n"))
}

// DroppedWarnings returns one warning line per project with sessions that
// landed in no category.
func DroppedWarnings(run *domain.ReportRun) []string {
	var out []string
	for _, p := range run.Projects {
		if p.Dropped == 0 {
			continue
		}
		noun := "sessions"
		if p.Dropped == 1 {
			noun = "session"
		}
		out = append(out, Warning(fmt.Sprintf("%s: %d %s outside every category (%s)", p.Title, p.Dropped, noun, p.SourceFile)))
	}
	return out
}

// FormatRuns renders the run history list, newest first.
func FormatRuns(runs []*domain.ReportRun) string {
	return formatRunsAt(runs, time.Now())
}

func formatRunsAt(runs []*domain.ReportRun, now time.Time) string {
	if len(runs) == 0 {
		return Dim("No report runs recorded.") + "\n"
	}
	headers := []string{"ID", "WHEN", "CONFIG", "PROJECTS", "SHEETS", "HOURS", "OUTPUT"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			TruncID(r.ID),
			HumanTimestampFrom(r.CreatedAt, now),
			r.ConfigKey,
			strconv.Itoa(r.ProjectCount),
			strconv.Itoa(r.SheetCount),
			FormatHours(r.TotalHours),
			Dim(r.OutputPath),
		})
	}
	return RenderBox("Report history", strings.TrimRight(RenderTable(headers, rows), "\n"))
}

// FormatRun renders one run with its project lines.
func FormatRun(run *domain.ReportRun) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("ID     "), run.ID)
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("CREATED"), run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	b.WriteString(strings.TrimSuffix(FormatReportResult(run, nil), "\n"))
	return b.String()
}

func droppedCell(n int) string {
	if n == 0 {
		return Dim("0")
	}
	return StyleYellow.Render(strconv.Itoa(n))
}
