package layout

import (
	"fmt"

	"github.com/alexanderramin/hoursreport/internal/domain"
	rerr "github.com/alexanderramin/hoursreport/internal/errors"
)

// Engine renders project reports into a Workbook.
type Engine struct {
	opts Options
}

// NewEngine returns an engine. Zero dimensions, grid fields and tab colour
// take their defaults.
func NewEngine(opts Options) *Engine {
	opts.Dimensions = opts.Dimensions.withDefaults()
	opts.Grid = opts.Grid.withDefaults()
	if opts.TotalTabColor == "" {
		opts.TotalTabColor = DefaultTotalTabColor
	}
	return &Engine{opts: opts}
}

// Options returns the effective options.
func (e *Engine) Options() Options { return e.opts }

// Render lays out one sheet per (project, category) in input order plus the
// Total sheet, placed first or last per Options.TotalSheetFirst.
func (e *Engine) Render(projects []domain.ProjectReport) (*Workbook, error) {
	if !isHexColor(e.opts.TotalTabColor) {
		return nil, rerr.WithField(rerr.Layoutf("invalid total tab colour %q", e.opts.TotalTabColor), "total_tab_color")
	}
	for _, p := range projects {
		if err := checkIdentity(p.Identity); err != nil {
			return nil, err
		}
	}

	names := nameSet{}
	names.reserve(TotalSheetName)

	var sheets []*Sheet
	for _, p := range projects {
		for _, c := range p.Categories {
			name := names.unique(fmt.Sprintf("%s %s", p.Identity.Title, c.Name))
			sheets = append(sheets, e.renderCategory(name, p.Identity, c))
		}
	}

	total := e.renderTotal(projects)
	if e.opts.TotalSheetFirst {
		sheets = append([]*Sheet{total}, sheets...)
	} else {
		sheets = append(sheets, total)
	}
	return &Workbook{Sheets: sheets}, nil
}

// Render is NewEngine(opts).Render(projects).
func Render(projects []domain.ProjectReport, opts Options) (*Workbook, error) {
	return NewEngine(opts).Render(projects)
}

func checkIdentity(id domain.ProjectIdentity) error {
	if !isHexColor(id.PrimaryColor) {
		return rerr.Layoutf("project %q: invalid primary colour %q", id.Title, id.PrimaryColor)
	}
	if !isHexColor(id.SecondaryColor) {
		return rerr.Layoutf("project %q: invalid secondary colour %q", id.Title, id.SecondaryColor)
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
