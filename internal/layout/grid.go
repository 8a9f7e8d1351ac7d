package layout

// Grid tiles project blocks on the Total sheet, PerRow blocks per band.
type Grid struct {
	PerRow      int
	BlockHeight int // rows per band
	BlockWidth  int // columns per block, including the spacer column
}

// DefaultGrid places three blocks per band, 12 rows tall and 5 columns wide.
var DefaultGrid = Grid{PerRow: 3, BlockHeight: 12, BlockWidth: 5}

// Position returns the 1-based top row and the 0-based column offset of the
// i-th block.
func (g Grid) Position(i int) (row, colOffset int) {
	g = g.withDefaults()
	return 1 + g.BlockHeight*(i/g.PerRow), g.BlockWidth * (i % g.PerRow)
}

func (g Grid) withDefaults() Grid {
	if g.PerRow <= 0 {
		g.PerRow = DefaultGrid.PerRow
	}
	if g.BlockHeight <= 0 {
		g.BlockHeight = DefaultGrid.BlockHeight
	}
	if g.BlockWidth <= 0 {
		g.BlockWidth = DefaultGrid.BlockWidth
	}
	return g
}

// GridPosition is DefaultGrid.Position.
func GridPosition(i int) (row, colOffset int) {
	return DefaultGrid.Position(i)
}
