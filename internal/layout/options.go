package layout

// Dimensions are column widths (in characters) and row heights (in points).
type Dimensions struct {
	// Category sheets
	PartWidth        float64
	WeekWidth        float64
	DateWidth        float64
	MinutesWidth     float64
	DescriptionWidth float64
	MetricWidth      float64
	ValueWidth       float64
	RowHeight        float64

	// Total sheet
	ProjectWidth    float64
	TotalHoursWidth float64
	TotalWeeksWidth float64
	AverageWidth    float64
	TotalRowHeight  float64
}

// DefaultDimensions returns the standard report dimensions.
func DefaultDimensions() Dimensions {
	return Dimensions{
		PartWidth:        25,
		WeekWidth:        10,
		DateWidth:        15,
		MinutesWidth:     10,
		DescriptionWidth: 100,
		MetricWidth:      15,
		ValueWidth:       15,
		RowHeight:        32,
		ProjectWidth:     25,
		TotalHoursWidth:  15,
		TotalWeeksWidth:  15,
		AverageWidth:     25,
		TotalRowHeight:   32,
	}
}

// withDefaults replaces zero fields with their defaults.
func (d Dimensions) withDefaults() Dimensions {
	def := DefaultDimensions()
	fill := func(v *float64, fallback float64) {
		if *v <= 0 {
			*v = fallback
		}
	}
	fill(&d.PartWidth, def.PartWidth)
	fill(&d.WeekWidth, def.WeekWidth)
	fill(&d.DateWidth, def.DateWidth)
	fill(&d.MinutesWidth, def.MinutesWidth)
	fill(&d.DescriptionWidth, def.DescriptionWidth)
	fill(&d.MetricWidth, def.MetricWidth)
	fill(&d.ValueWidth, def.ValueWidth)
	fill(&d.RowHeight, def.RowHeight)
	fill(&d.ProjectWidth, def.ProjectWidth)
	fill(&d.TotalHoursWidth, def.TotalHoursWidth)
	fill(&d.TotalWeeksWidth, def.TotalWeeksWidth)
	fill(&d.AverageWidth, def.AverageWidth)
	fill(&d.TotalRowHeight, def.TotalRowHeight)
	return d
}

// DefaultTotalTabColor is the tab colour of the Total sheet.
const DefaultTotalTabColor = "FFD700"

// Options control workbook layout.
type Options struct {
	TotalSheetFirst bool
	TotalTabColor   string
	Dimensions      Dimensions
	Grid            Grid
}

// DefaultOptions puts the Total sheet first with standard dimensions.
func DefaultOptions() Options {
	return Options{
		TotalSheetFirst: true,
		TotalTabColor:   DefaultTotalTabColor,
		Dimensions:      DefaultDimensions(),
		Grid:            DefaultGrid,
	}
}
