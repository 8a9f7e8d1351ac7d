package domain

import "time"

// ProjectIdentity is the display title and colour theme of one input file.
// Colours are RRGGBB hex strings.
type ProjectIdentity struct {
	Title          string
	PrimaryColor   string
	SecondaryColor string
}

// ProjectReport is one input file's classified result.
type ProjectReport struct {
	Identity   ProjectIdentity
	SourceFile string
	Categories []CategoryResult
	Dropped    int // sessions labelled Unknown or left out of every category
}

// Totals sums hours and week counts across all categories.
func (p ProjectReport) Totals() (hours float64, weeks int) {
	for _, c := range p.Categories {
		hours += c.Summary.TotalHours
		weeks += c.Summary.TotalWeeks()
	}
	return hours, weeks
}

// ReportRun records one successful report generation.
type ReportRun struct {
	ID           string
	ConfigKey    string
	OutputPath   string
	ProjectCount int
	SheetCount   int
	TotalHours   float64
	CreatedAt    time.Time
	Projects     []RunProject
}

// RunProject is one input file's line in a ReportRun.
type RunProject struct {
	Title      string
	SourceFile string
	Hours      float64
	Weeks      int
	Dropped    int
}

// RunProjectOf summarises a project report for the run history.
func RunProjectOf(p ProjectReport) RunProject {
	hours, weeks := p.Totals()
	return RunProject{
		Title:      p.Identity.Title,
		SourceFile: p.SourceFile,
		Hours:      hours,
		Weeks:      weeks,
		Dropped:    p.Dropped,
	}
}
