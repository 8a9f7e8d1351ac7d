package projectconfig

import (
	"fmt"
	"strings"
)

var (
	validMatchModes = map[MatchMode]bool{MatchContains: true, MatchPrefix: true}
	validFallbacks  = map[Fallback]bool{FallbackFirstPlain: true, FallbackFirst: true}
)

// Validate checks a definition for contradictions. It returns every problem
// found so a broken configuration can be fixed in one pass.
func Validate(d *Definition) []error {
	var errs []error

	if strings.TrimSpace(d.key) == "" {
		errs = append(errs, fmt.Errorf("key is required"))
	}
	if strings.TrimSpace(d.displayName) == "" {
		errs = append(errs, fmt.Errorf("display_name is required"))
	}
	if d.policy == nil {
		errs = append(errs, fmt.Errorf("labeling policy is required"))
	}
	if len(d.parts) == 0 {
		errs = append(errs, fmt.Errorf("parts: at least one part is required"))
	}

	for i, p := range d.parts {
		prefix := fmt.Sprintf("parts[%d]", i)
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Start.IsZero() || p.End.IsZero() {
			errs = append(errs, fmt.Errorf("%s: start and end dates are required", prefix))
			continue
		}
		if p.Start.After(p.End) {
			errs = append(errs, fmt.Errorf("%s (%q): start %s is after end %s",
				prefix, p.Name, p.Start.Format("2006-01-02"), p.End.Format("2006-01-02")))
		}
	}

	errs = append(errs, validateGroupings(d)...)

	if kp, ok := d.policy.(KeywordPolicy); ok {
		errs = append(errs, validateKeywordPolicy(kp)...)
	}

	return errs
}

func validateGroupings(d *Definition) []error {
	var errs []error
	if len(d.groupings) == 0 {
		errs = append(errs, fmt.Errorf("groupings: at least one category is required"))
	}

	seen := make(map[string]bool, len(d.groupings))
	for i, c := range d.groupings {
		prefix := fmt.Sprintf("groupings[%d]", i)
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.category is required", prefix))
		} else if seen[c.Name] {
			errs = append(errs, fmt.Errorf("%s: duplicate category %q", prefix, c.Name))
		} else {
			seen[c.Name] = true
		}

		if len(c.Parts) == 0 {
			errs = append(errs, fmt.Errorf("%s (%q): no parts listed", prefix, c.Name))
		}
		for _, name := range c.Parts {
			if !d.parts.Has(name) {
				errs = append(errs, fmt.Errorf("%s (%q): part %q not found in parts", prefix, c.Name, name))
			}
		}
	}
	return errs
}

func validateKeywordPolicy(p KeywordPolicy) []error {
	var errs []error
	if p.Fallback != "" && !validFallbacks[p.Fallback] {
		errs = append(errs, fmt.Errorf("fallback: invalid value %q", p.Fallback))
	}
	for i, r := range p.Rules {
		prefix := fmt.Sprintf("rules[%d]", i)
		if len(r.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one keyword is required", prefix))
		}
		for j, kw := range r.Keywords {
			if strings.TrimSpace(kw) == "" {
				errs = append(errs, fmt.Errorf("%s.keywords[%d] is empty", prefix, j))
			}
		}
		if !validMatchModes[r.Match] {
			errs = append(errs, fmt.Errorf("%s.match: invalid value %q", prefix, r.Match))
		}
		if strings.TrimSpace(r.PartMarker) == "" {
			errs = append(errs, fmt.Errorf("%s.part_marker is required", prefix))
		}
	}
	return errs
}
