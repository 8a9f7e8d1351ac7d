package domain

import "time"

// Part is a named, dated phase of a project. Start and End are inclusive
// calendar dates.
type Part struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Covers reports whether date falls within [Start, End].
func (p Part) Covers(date time.Time) bool {
	d := TruncateDate(date)
	return !d.Before(TruncateDate(p.Start)) && !d.After(TruncateDate(p.End))
}

// PartCatalog is the ordered part list of one project configuration.
// Ranges may overlap; declaration order is the tie-break.
type PartCatalog []Part

// Candidates returns every part covering date, in declaration order.
func (c PartCatalog) Candidates(date time.Time) []Part {
	var out []Part
	for _, p := range c {
		if p.Name == "" {
			continue
		}
		if p.Covers(date) {
			out = append(out, p)
		}
	}
	return out
}

// Names returns the distinct part names in first-declared order.
func (c PartCatalog) Names() []string {
	seen := make(map[string]bool, len(c))
	names := make([]string, 0, len(c))
	for _, p := range c {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		names = append(names, p.Name)
	}
	return names
}

// Has reports whether any part is declared with the given name.
func (c PartCatalog) Has(name string) bool {
	for _, p := range c {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Category groups one or more part names under a sheet-level name.
type Category struct {
	Name  string
	Parts []string
}

// Grouping maps parts to categories. Order is the output order.
type Grouping []Category

// CategoryOf returns the first category listing part.
func (g Grouping) CategoryOf(part string) (string, bool) {
	for _, c := range g {
		for _, p := range c.Parts {
			if p == part {
				return c.Name, true
			}
		}
	}
	return "", false
}
