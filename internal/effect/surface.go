package effect

// Surface is a drawable area the background renderer paints on.
type Surface interface {
	Resize(width, height int)
	// Fade blends the whole surface toward its background by alpha (0..1).
	Fade(alpha float64)
	DrawGlyph(x, y int, glyph rune)
}

// visibilityFloor is the intensity below which a cell is treated as blank.
const visibilityFloor = 0.04

// Cell is one character position of a CellSurface.
type Cell struct {
	Glyph     rune
	Intensity float64
}

// Blank reports whether the cell has faded out.
func (c Cell) Blank() bool { return c.Glyph == 0 || c.Intensity < visibilityFloor }

// CellSurface is a character grid where one glyph occupies one cell.
type CellSurface struct {
	width  int
	height int
	cells  []Cell
}

// NewCellSurface allocates a width x height grid.
func NewCellSurface(width, height int) *CellSurface {
	s := &CellSurface{}
	s.Resize(width, height)
	return s
}

func (s *CellSurface) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.cells = make([]Cell, s.width*s.height)
}

func (s *CellSurface) Fade(alpha float64) {
	keep := 1 - clamp01(alpha)
	for i := range s.cells {
		c := &s.cells[i]
		if c.Glyph == 0 {
			continue
		}
		c.Intensity *= keep
		if c.Intensity < visibilityFloor {
			*c = Cell{}
		}
	}
}

func (s *CellSurface) DrawGlyph(x, y int, glyph rune) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = Cell{Glyph: glyph, Intensity: 1}
}

// Size returns the grid dimensions in cells.
func (s *CellSurface) Size() (width, height int) { return s.width, s.height }

// At returns the cell at x, y; out-of-range positions read as blank.
func (s *CellSurface) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return Cell{}
	}
	return s.cells[y*s.width+x]
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
