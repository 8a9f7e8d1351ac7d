// Package projectconfig defines per-course project configurations: the part
// catalog, the grouping of parts into categories, and the labeling policy
// that assigns a session to a part.
package projectconfig

import (
	"time"

	"github.com/alexanderramin/hoursreport/internal/domain"
)

// ProjectConfig is the capability surface the report pipeline depends on.
type ProjectConfig interface {
	Key() string
	DisplayName() string
	Description() string
	Parts() domain.PartCatalog
	Groupings() domain.Grouping
	LabelSession(date time.Time, description string) string
}

// LabelingPolicy picks the single best part for a session.
type LabelingPolicy interface {
	Label(date time.Time, description string, catalog domain.PartCatalog) string
}

// Definition is the concrete ProjectConfig used by built-in and file-based
// configurations. It is immutable once built.
type Definition struct {
	key         string
	displayName string
	description string
	parts       domain.PartCatalog
	groupings   domain.Grouping
	policy      LabelingPolicy
}

// NewDefinition builds a Definition. Parts and groupings are copied.
// Use Validate (or NewRegistry) to check it.
func NewDefinition(key, displayName, description string, parts domain.PartCatalog, groupings domain.Grouping, policy LabelingPolicy) *Definition {
	ps := make(domain.PartCatalog, len(parts))
	copy(ps, parts)
	gs := make(domain.Grouping, len(groupings))
	for i, c := range groupings {
		gs[i] = domain.Category{Name: c.Name, Parts: append([]string(nil), c.Parts...)}
	}
	return &Definition{
		key:         key,
		displayName: displayName,
		description: description,
		parts:       ps,
		groupings:   gs,
		policy:      policy,
	}
}

func (d *Definition) Key() string         { return d.key }
func (d *Definition) DisplayName() string { return d.displayName }
func (d *Definition) Description() string { return d.description }

// Parts returns a copy of the part catalog.
func (d *Definition) Parts() domain.PartCatalog {
	out := make(domain.PartCatalog, len(d.parts))
	copy(out, d.parts)
	return out
}

// Groupings returns a copy of the category grouping.
func (d *Definition) Groupings() domain.Grouping {
	out := make(domain.Grouping, len(d.groupings))
	for i, c := range d.groupings {
		out[i] = domain.Category{Name: c.Name, Parts: append([]string(nil), c.Parts...)}
	}
	return out
}

// Policy returns the labeling policy.
func (d *Definition) Policy() LabelingPolicy { return d.policy }

// LabelSession labels a session against this definition's catalog.
func (d *Definition) LabelSession(date time.Time, description string) string {
	if d.policy == nil {
		return domain.UnknownPart
	}
	return d.policy.Label(date, description, d.parts)
}
