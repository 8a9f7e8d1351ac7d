package xlsx

import (
	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/hoursreport/internal/layout"
)

// borderColor is the colour of thin cell borders.
const borderColor = "000000"

// styleCache registers each distinct layout style once per file.
type styleCache struct {
	f   *excelize.File
	ids map[layout.Style]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, ids: map[layout.Style]int{}}
}

func (c *styleCache) id(s layout.Style) (int, error) {
	if id, ok := c.ids[s]; ok {
		return id, nil
	}
	id, err := c.f.NewStyle(toExcelize(s))
	if err != nil {
		return 0, err
	}
	c.ids[s] = id
	return id, nil
}

func toExcelize(s layout.Style) *excelize.Style {
	st := &excelize.Style{}
	if s.Fill != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{s.Fill}}
	}
	if s.Bold || s.FontSize > 0 || s.FontColor != "" {
		st.Font = &excelize.Font{Bold: s.Bold, Size: s.FontSize, Color: s.FontColor}
	}
	if s.Border {
		st.Border = []excelize.Border{
			{Type: "left", Color: borderColor, Style: 1},
			{Type: "top", Color: borderColor, Style: 1},
			{Type: "right", Color: borderColor, Style: 1},
			{Type: "bottom", Color: borderColor, Style: 1},
		}
	}
	if s.Center || s.Wrap {
		st.Alignment = &excelize.Alignment{WrapText: s.Wrap}
		if s.Center {
			st.Alignment.Horizontal = "center"
			st.Alignment.Vertical = "center"
		}
	}
	if s.NumFmt != "" {
		numFmt := s.NumFmt
		st.CustomNumFmt = &numFmt
	}
	return st
}
