package projectconfig

import (
	"time"

	"github.com/alexanderramin/hoursreport/internal/domain"
)

// Builtins returns the compiled-in project configurations.
func Builtins() []*Definition {
	return []*Definition{WebDev(), ITP2()}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WebDev is the IT2810 Web Development course (2024 schedule). Sessions
// whose description starts with "peer review" go to the peer review part
// open on that date; everything else is code work.
func WebDev() *Definition {
	parts := domain.PartCatalog{
		// Project 1
		{Name: "P1 Part 1", Start: date(2024, 8, 1), End: date(2024, 9, 20)},
		{Name: "Peer Review P1 Part 1", Start: date(2024, 9, 21), End: date(2024, 9, 27)},
		{Name: "P1 Part 1", Start: date(2024, 9, 21), End: date(2024, 9, 27)},
		// Project 2 Part 1
		{Name: "P2 Part 1", Start: date(2024, 9, 28), End: date(2024, 10, 11)},
		{Name: "Peer Review P2 Part 1", Start: date(2024, 10, 12), End: date(2024, 10, 18)},
		{Name: "P2 Part 1", Start: date(2024, 10, 12), End: date(2024, 10, 18)},
		// Project 2 Part 2
		{Name: "P2 Part 2", Start: date(2024, 10, 19), End: date(2024, 11, 1)},
		{Name: "Peer Review P2 Part 2", Start: date(2024, 11, 2), End: date(2024, 11, 8)},
		{Name: "P2 Part 2", Start: date(2024, 11, 2), End: date(2024, 11, 8)},
		// Project 2 Part 3
		{Name: "P2 Part 3", Start: date(2024, 11, 9), End: date(2024, 11, 20)},
		{Name: "Peer Review P2 Part 3", Start: date(2024, 11, 21), End: date(2024, 11, 29)},
		// Final delivery
		{Name: "Final Delivery", Start: date(2024, 11, 21), End: date(2024, 12, 6)},
	}

	groupings := domain.Grouping{
		{Name: "Project 1", Parts: []string{"P1 Part 1"}},
		{Name: "Project 2", Parts: []string{"P2 Part 1", "P2 Part 2", "P2 Part 3", "Final Delivery"}},
		{Name: "Peer Reviews", Parts: []string{
			"Peer Review P1 Part 1",
			"Peer Review P2 Part 1",
			"Peer Review P2 Part 2",
			"Peer Review P2 Part 3",
		}},
	}

	policy := KeywordPolicy{
		Rules: []KeywordRule{
			{Track: "peer review", Keywords: []string{"peer review"}, Match: MatchPrefix, PartMarker: "peer review"},
		},
		Fallback: FallbackFirstPlain,
	}

	description := `Configuration for the IT2810 Web Development course.
Project parts are labeled from the session date and description:
  - Start the description with "Peer Review" for peer review work
  - No keyword: the session counts as code work
Deadlines follow the 2024 course schedule.`

	return NewDefinition("webdev", "IT2810 WebDev", description, parts, groupings, policy)
}

// ITP2 is the IT2901 project course (spring 2025). Report, self assessment
// and video work are recognised by keyword, checked in that order.
func ITP2() *Definition {
	parts := domain.PartCatalog{
		// Preliminary report
		{Name: "Report start", Start: date(2025, 1, 13), End: date(2025, 2, 17)},
		{Name: "Code start", Start: date(2025, 1, 13), End: date(2025, 2, 17)},
		// Midterm
		{Name: "Report Midterm", Start: date(2025, 2, 18), End: date(2025, 3, 14)},
		{Name: "Self Accessment", Start: date(2025, 3, 15), End: date(2025, 3, 21)},
		{Name: "Code Midterm", Start: date(2025, 2, 18), End: date(2025, 3, 21)},
		// Final
		{Name: "Report Final", Start: date(2025, 3, 22), End: date(2025, 5, 9)},
		{Name: "Video", Start: date(2025, 5, 10), End: date(2025, 5, 16)},
		{Name: "Code Final", Start: date(2025, 3, 22), End: date(2025, 5, 9)},
	}

	groupings := domain.Grouping{
		{Name: "Code", Parts: []string{"Code start", "Code Midterm", "Code Final"}},
		{Name: "Report", Parts: []string{"Report start", "Report Midterm", "Report Final"}},
		{Name: "Self Accessment", Parts: []string{"Self Accessment"}},
		{Name: "Video", Parts: []string{"Video"}},
	}

	policy := KeywordPolicy{
		Rules: []KeywordRule{
			{Track: "report", Keywords: []string{"report"}, Match: MatchContains, PartMarker: "report"},
			{Track: "self assessment", Keywords: []string{"self accessment", "self assessment"}, Match: MatchContains, PartMarker: "self accessment"},
			{Track: "video", Keywords: []string{"video"}, Match: MatchContains, PartMarker: "video"},
		},
		Fallback: FallbackFirstPlain,
	}

	description := `Configuration for the IT2901 ITP2 project course.
Project parts are labeled from the session date and description:
  - "report" in the description: report work
  - "self assessment" in the description: self assessment work
  - "video" in the description: video work
  - No keyword: the session counts as code work
When several keywords appear, report wins over self assessment, which wins over video.`

	return NewDefinition("itp2", "IT2901 ITP2", description, parts, groupings, policy)
}
