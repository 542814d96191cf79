package landscape

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("landscape: grid must have at least one row and one column")
	// ErrNonRectangular indicates mask rows of differing lengths.
	ErrNonRectangular = errors.New("landscape: all rows must have the same length")
	// ErrBadCellLength indicates a non-positive or non-finite cell length.
	ErrBadCellLength = errors.New("landscape: cell length must be positive and finite")
)

// Location identifies a grid cell by 0-based row and column.
type Location struct {
	Row    int
	Column int
}

// Offset is a relative step between two cells.
type Offset struct {
	DRow int
	DCol int
}

var (
	offsets4 = []Offset{{DRow: -1}, {DCol: 1}, {DRow: 1}, {DCol: -1}}
	offsets8 = []Offset{
		{DRow: -1}, {DRow: -1, DCol: 1}, {DCol: 1}, {DRow: 1, DCol: 1},
		{DRow: 1}, {DRow: 1, DCol: -1}, {DCol: -1}, {DRow: -1, DCol: -1},
	}
)

// Neighbors4 returns a fresh copy of the orthogonal offsets, clockwise from north.
func Neighbors4() []Offset { return append([]Offset(nil), offsets4...) }

// Neighbors8 returns a fresh copy of the orthogonal and diagonal offsets,
// clockwise from north.
func Neighbors8() []Offset { return append([]Offset(nil), offsets8...) }

// Add returns the location reached by applying off.
func (l Location) Add(off Offset) Location {
	return Location{Row: l.Row + off.DRow, Column: l.Column + off.DCol}
}

// Grid is the landscape arena. Rows, columns and cell length are fixed at
// construction; the active mask, held row-major in active, changes only
// through SetActive.
type Grid struct {
	rows, columns int
	cellLength    float64
	active        []bool
	activeCount   int
}
