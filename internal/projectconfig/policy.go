package projectconfig

import (
	"strings"
	"time"

	"github.com/alexanderramin/hoursreport/internal/domain"
)

// MatchMode selects how a rule's keywords are tested against a description.
type MatchMode string

const (
	MatchContains MatchMode = "contains"
	MatchPrefix   MatchMode = "prefix"
)

// Fallback selects the part returned when no keyword rule fires.
type Fallback string

const (
	// FallbackFirstPlain returns the first candidate carrying no rule
	// marker, then the first candidate overall.
	FallbackFirstPlain Fallback = "first_plain"
	// FallbackFirst returns the first candidate overall.
	FallbackFirst Fallback = "first"
)

// KeywordRule routes sessions whose description matches one of Keywords to
// candidate parts whose name contains PartMarker. Comparisons are
// case-insensitive.
type KeywordRule struct {
	Track      string
	Keywords   []string
	Match      MatchMode
	PartMarker string
}

// Matches reports whether the description triggers the rule.
func (r KeywordRule) Matches(description string) bool {
	lower := strings.ToLower(description)
	for _, kw := range r.Keywords {
		kw = strings.ToLower(kw)
		if kw == "" {
			continue
		}
		if r.Match == MatchPrefix {
			if strings.HasPrefix(lower, kw) {
				return true
			}
			continue
		}
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Marks reports whether a part name belongs to the rule's track.
func (r KeywordRule) Marks(partName string) bool {
	if r.PartMarker == "" {
		return false
	}
	return strings.Contains(strings.ToLower(partName), strings.ToLower(r.PartMarker))
}

// KeywordPolicy labels sessions by date range first, then by keyword rules
// in priority order. Rules earlier in the slice win when a description
// matches several tracks.
type KeywordPolicy struct {
	Rules    []KeywordRule
	Fallback Fallback
}

// Label returns the best part for the session or domain.UnknownPart.
func (p KeywordPolicy) Label(date time.Time, description string, catalog domain.PartCatalog) string {
	candidates := catalog.Candidates(date)
	if len(candidates) == 0 {
		return domain.UnknownPart
	}

	for _, rule := range p.Rules {
		if !rule.Matches(description) {
			continue
		}
		for _, c := range candidates {
			if rule.Marks(c.Name) {
				return c.Name
			}
		}
	}

	if p.Fallback != FallbackFirst {
		for _, c := range candidates {
			if !p.marked(c.Name) {
				return c.Name
			}
		}
	}
	return candidates[0].Name
}

// TrackOf returns the track whose marker appears in partName, if any.
func (p KeywordPolicy) TrackOf(partName string) (string, bool) {
	for _, r := range p.Rules {
		if r.Marks(partName) {
			return r.Track, true
		}
	}
	return "", false
}

func (p KeywordPolicy) marked(partName string) bool {
	_, ok := p.TrackOf(partName)
	return ok
}
