package landscape

import (
	"fmt"
	"math"
)

// New builds a rows×columns grid where every cell is active.
func New(rows, columns int, cellLength float64) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, ErrEmptyGrid
	}
	if err := checkCellLength(cellLength); err != nil {
		return nil, err
	}
	n := rows * columns
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}

	return &Grid{
		rows:        rows,
		columns:     columns,
		cellLength:  cellLength,
		active:      active,
		activeCount: n,
	}, nil
}

// FromMask builds a grid from a rectangular mask; mask[r][c] marks (r,c) active.
// The mask is copied.
func FromMask(mask [][]bool, cellLength float64) (*Grid, error) {
	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, columns := len(mask), len(mask[0])
	for _, row := range mask {
		if len(row) != columns {
			return nil, ErrNonRectangular
		}
	}
	if err := checkCellLength(cellLength); err != nil {
		return nil, err
	}
	g := &Grid{
		rows:       rows,
		columns:    columns,
		cellLength: cellLength,
		active:     make([]bool, rows*columns),
	}
	for r, row := range mask {
		for c, on := range row {
			if on {
				g.active[g.index(r, c)] = true
				g.activeCount++
			}
		}
	}

	return g, nil
}

func checkCellLength(v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: got %v", ErrBadCellLength, v)
	}
	return nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of grid columns.
func (g *Grid) Columns() int { return g.columns }

// Len returns Rows×Columns.
func (g *Grid) Len() int { return g.rows * g.columns }

// CellLength returns the physical edge length of one cell.
func (g *Grid) CellLength() float64 { return g.cellLength }

// ActiveCount returns the number of active cells.
func (g *Grid) ActiveCount() int { return g.activeCount }

// InBounds reports whether loc lies inside the grid.
func (g *Grid) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.rows && loc.Column >= 0 && loc.Column < g.columns
}

// IsActive reports whether loc is inside the grid and active.
func (g *Grid) IsActive(loc Location) bool {
	return g.InBounds(loc) && g.active[g.index(loc.Row, loc.Column)]
}

// SetActive toggles the active flag of an in-bounds cell.
// Out-of-bounds locations are ignored.
func (g *Grid) SetActive(loc Location, on bool) {
	if !g.InBounds(loc) {
		return
	}
	i := g.index(loc.Row, loc.Column)
	if g.active[i] == on {
		return
	}
	g.active[i] = on
	if on {
		g.activeCount++
	} else {
		g.activeCount--
	}
}

// CellAt resolves (row, col) to an active cell. ok is false when the
// coordinates are out of bounds or the cell is inactive.
func (g *Grid) CellAt(row, col int) (Location, bool) {
	loc := Location{Row: row, Column: col}
	return loc, g.IsActive(loc)
}

// NeighborOf returns the active cell reached from loc by off.
// Out-of-bounds and inactive targets are reported with ok=false; they are
// ordinary grid-edge conditions, not errors.
func (g *Grid) NeighborOf(loc Location, off Offset) (Location, bool) {
	n := loc.Add(off)
	return n, g.IsActive(n)
}

// Index maps an in-bounds location to its row-major index.
// Complexity: O(1).
func (g *Grid) Index(loc Location) int {
	return g.index(loc.Row, loc.Column)
}

func (g *Grid) index(row, col int) int {
	return row*g.columns + col
}

// LocationOf converts a row-major index back to a Location.
// Complexity: O(1).
func (g *Grid) LocationOf(idx int) Location {
	return Location{Row: idx / g.columns, Column: idx % g.columns}
}

// ActiveLocations lists every active cell in row-major order.
func (g *Grid) ActiveLocations() []Location {
	out := make([]Location, 0, g.activeCount)
	for i, on := range g.active {
		if on {
			out = append(out, g.LocationOf(i))
		}
	}
	return out
}
