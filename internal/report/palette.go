package report

// ColorPair is a primary colour and its light tint, as RRGGBB hex.
type ColorPair struct {
	Primary   string
	Secondary string
}

// Palette assigns colours to projects by position, wrapping around.
type Palette []ColorPair

// DefaultPalette holds eight distinguishable theme colours.
var DefaultPalette = Palette{
	{Primary: "0072BC", Secondary: "D9EAF7"}, // blue
	{Primary: "FF5733", Secondary: "FFD9CC"}, // orange
	{Primary: "FFC300", Secondary: "FFF2CC"}, // yellow
	{Primary: "4CAF50", Secondary: "C8E6C9"}, // green
	{Primary: "9C27B0", Secondary: "E1BEE7"}, // purple
	{Primary: "F44336", Secondary: "FFCDD2"}, // red
	{Primary: "607D8B", Secondary: "CFD8DC"}, // blue grey
	{Primary: "795548", Secondary: "D7CCC8"}, // brown
}

// At returns the colours for the i-th project.
func (p Palette) At(i int) ColorPair {
	if len(p) == 0 {
		return DefaultPalette.At(i)
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}
