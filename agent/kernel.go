package agent

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/outbreak/landscape"
)

// MaxDiskRadius bounds the Disk kernel to a (2×512+1)² block of offsets.
const MaxDiskRadius = 512

var kernel12Extra = []landscape.Offset{{DRow: -2}, {DCol: 2}, {DRow: 2}, {DCol: -2}}

// ParseTemplate maps a parameter-file name to its template and neighbourhood.
// Accepted (case-insensitive): MaxRadius, 4N, 8N, 12N, 24N.
func ParseTemplate(s string) (DispersalTemplate, Neighborhood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "maxradius", "max_radius", "fixed_radius":
		return FixedRadius, Disk, nil
	case "4n":
		return Percolation, N4, nil
	case "8n":
		return Percolation, N8, nil
	case "12n":
		return Percolation, N12, nil
	case "24n":
		return Percolation, N24, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownTemplate, s)
	}
}

// Kernel returns the offsets of shape n. distance and cellLength are used
// only by Disk, which keeps every offset whose scaled distance from the
// centre is ≤ distance. Offsets are in row-major order for Disk and N24 and
// clockwise from north for the others.
func Kernel(n Neighborhood, distance, cellLength float64) ([]landscape.Offset, error) {
	switch n {
	case N4:
		return landscape.Neighbors4(), nil
	case N8:
		return landscape.Neighbors8(), nil
	case N12:
		return append(landscape.Neighbors8(), kernel12Extra...), nil
	case N24:
		return block(2, false), nil
	case Disk:
		return disk(distance, cellLength)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTemplate, int(n))
	}
}

// block returns every offset in the (2r+1)² square, optionally with the centre.
func block(r int, centre bool) []landscape.Offset {
	out := make([]landscape.Offset, 0, (2*r+1)*(2*r+1))
	for dr := -r; dr <= r; dr++ {
		for dc := -r; dc <= r; dc++ {
			if dr == 0 && dc == 0 && !centre {
				continue
			}
			out = append(out, landscape.Offset{DRow: dr, DCol: dc})
		}
	}
	return out
}

func disk(distance, cellLength float64) ([]landscape.Offset, error) {
	if cellLength <= 0 || math.IsNaN(cellLength) || math.IsInf(cellLength, 0) {
		return nil, fmt.Errorf("%w: cell length must be positive, got %v", ErrConfig, cellLength)
	}
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return nil, fmt.Errorf("%w: dispersal distance must be finite and non-negative, got %v", ErrConfig, distance)
	}
	cells := distance / cellLength
	if cells > MaxDiskRadius {
		return nil, fmt.Errorf("%w: dispersal distance %v spans %.0f cells, limit is %d",
			ErrConfig, distance, cells, MaxDiskRadius)
	}
	r := int(cells)
	out := make([]landscape.Offset, 0, (2*r+1)*(2*r+1))
	origin := landscape.Location{}
	for _, off := range block(r, true) {
		if landscape.CellDistance(origin, origin.Add(off))*cellLength <= distance {
			out = append(out, off)
		}
	}
	return out, nil
}

// BuildKernel fills DispersalNeighbors from Neighborhood for a grid with the
// given cell length and a timestep of timestepLength.
func (a *Agent) BuildKernel(cellLength float64, timestepLength int) error {
	k, err := Kernel(a.Neighborhood, a.DispersalDistance(timestepLength), cellLength)
	if err != nil {
		return err
	}
	a.DispersalNeighbors = k
	return nil
}
