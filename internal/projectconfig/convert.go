package projectconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hoursreport/internal/domain"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
)

const dateLayout = "2006-01-02"

// ValidateSchema checks field formats that must hold before conversion.
func ValidateSchema(s *Schema) []error {
	var errs []error
	for i, p := range s.Parts {
		prefix := fmt.Sprintf("parts[%d]", i)
		if _, err := time.Parse(dateLayout, p.Start); err != nil {
			errs = append(errs, fmt.Errorf("%s.start: invalid date format %q (expected YYYY-MM-DD)", prefix, p.Start))
		}
		if _, err := time.Parse(dateLayout, p.End); err != nil {
			errs = append(errs, fmt.Errorf("%s.end: invalid date format %q (expected YYYY-MM-DD)", prefix, p.End))
		}
	}
	return errs
}

// Convert builds a Definition from a schema. Call ValidateSchema first;
// unparseable dates become zero and are reported again by Validate.
func Convert(s *Schema) *Definition {
	parts := make(domain.PartCatalog, 0, len(s.Parts))
	for _, p := range s.Parts {
		start, _ := time.Parse(dateLayout, p.Start)
		end, _ := time.Parse(dateLayout, p.End)
		parts = append(parts, domain.Part{Name: p.Name, Start: start, End: end})
	}

	groupings := make(domain.Grouping, 0, len(s.Groupings))
	for _, g := range s.Groupings {
		groupings = append(groupings, domain.Category{Name: g.Category, Parts: g.Parts})
	}

	rules := make([]KeywordRule, 0, len(s.Rules))
	for _, r := range s.Rules {
		marker := r.PartMarker
		if marker == "" && len(r.Keywords) > 0 {
			marker = r.Keywords[0]
		}
		rules = append(rules, KeywordRule{
			Track:      domain.CoalesceStr(r.Track, marker),
			Keywords:   r.Keywords,
			Match:      MatchMode(strings.ToLower(domain.CoalesceStr(r.Match, string(MatchContains)))),
			PartMarker: marker,
		})
	}

	policy := KeywordPolicy{
		Rules:    rules,
		Fallback: Fallback(domain.CoalesceStr(s.Fallback, string(FallbackFirstPlain))),
	}

	displayName := domain.CoalesceStr(s.DisplayName, s.Key)
	return NewDefinition(s.Key, displayName, s.Description, parts, groupings, policy)
}

// Load reads, validates and converts a project configuration file.
func Load(path string) (*Definition, error) {
	schema, err := LoadSchema(path)
	if err != nil {
		return nil, rerr.Wrapf(err, rerr.KindConfig, "loading %s", path)
	}
	if errs := ValidateSchema(schema); len(errs) > 0 {
		return nil, validationError(path, errs)
	}
	def := Convert(schema)
	if errs := Validate(def); len(errs) > 0 {
		return nil, validationError(path, errs)
	}
	return def, nil
}
