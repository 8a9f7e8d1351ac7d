package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/hoursreport/internal/domain"
	"github.com/alexanderramin/hoursreport/internal/projectconfig"
)

const dateLayout = "2006-01-02"

// FormatConfigList renders the registered project configs.
func FormatConfigList(configs []projectconfig.ProjectConfig) string {
	headers := []string{"KEY", "NAME", "PARTS", "CATEGORIES"}
	rows := make([][]string, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, []string{
			Bold(c.Key()),
			c.DisplayName(),
			strconv.Itoa(len(c.Parts())),
			Dim(strings.Join(categoryNames(c.Groupings()), ", ")),
		})
	}
	return RenderBox("Project configs", strings.TrimRight(RenderTable(headers, rows), "\n"))
}

// FormatConfig renders one config: description, part calendar and keyword
// rules.
func FormatConfig(cfg projectconfig.ProjectConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n", StyleBold.Render(cfg.DisplayName()), StylePurple.Render(cfg.Key()))
	if d := strings.TrimSpace(cfg.Description()); d != "" {
		for _, line := range strings.Split(d, "\n") {
			b.WriteString("  " + Dim(line) + "\n")
		}
		b.WriteString("\n")
	}

	policy, _ := keywordPolicy(cfg)

	b.WriteString(Header("Parts") + "\n")
	headers := []string{"PART", "START", "END", "CATEGORY", "TRACK"}
	rows := make([][]string, 0, len(cfg.Parts()))
	for _, p := range cfg.Parts() {
		category, ok := cfg.Groupings().CategoryOf(p.Name)
		if !ok {
			category = StyleYellow.Render("(none)")
		}
		track, _ := policy.TrackOf(p.Name)
		rows = append(rows, []string{
			p.Name,
			p.Start.Format(dateLayout),
			p.End.Format(dateLayout),
			category,
			Dim(track),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if len(policy.Rules) > 0 {
		b.WriteString("\n" + Header("Keyword rules") + "\n")
		for i, r := range policy.Rules {
			fmt.Fprintf(&b, "  %d. %s  %s %s  %s %q\n",
				i+1, Bold(r.Track), Dim(string(r.Match)), strings.Join(quoteAll(r.Keywords), ", "),
				Dim("→ parts containing"), r.PartMarker)
		}
		fallback := policy.Fallback
		if fallback == "" {
			fallback = projectconfig.FallbackFirstPlain
		}
		fmt.Fprintf(&b, "  %s %s\n", Dim("fallback:"), fallback)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FormatLabel renders the outcome of labelling one session.
func FormatLabel(date time.Time, description, part, category string) string {
	partStyled := StyleGreen.Render(part)
	if part == domain.UnknownPart {
		partStyled = StyleRed.Render(part)
	}
	if category == "" {
		category = StyleYellow.Render("(not reported)")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("DATE       "), date.Format(dateLayout))
	fmt.Fprintf(&b, "%s  %q\n", StyleDim.Render("DESCRIPTION"), description)
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("PART       "), partStyled)
	fmt.Fprintf(&b, "%s  %s\n", StyleDim.Render("CATEGORY   "), category)
	return b.String()
}

func keywordPolicy(cfg projectconfig.ProjectConfig) (projectconfig.KeywordPolicy, bool) {
	withPolicy, ok := cfg.(interface {
		Policy() projectconfig.LabelingPolicy
	})
	if !ok {
		return projectconfig.KeywordPolicy{}, false
	}
	kp, ok := withPolicy.Policy().(projectconfig.KeywordPolicy)
	return kp, ok
}

func categoryNames(g domain.Grouping) []string {
	names := make([]string, 0, len(g))
	for _, c := range g {
		names = append(names, c.Name)
	}
	return names
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strconv.Quote(s)
	}
	return out
}
