package zone

import (
	"errors"
	"fmt"
)

// ErrUnknownZone indicates text that does not name a Zone.
var ErrUnknownZone = errors.New("zone: unknown zone name")

// Zone classifies a cell's outbreak membership.
type Zone uint8

const (
	// None: the cell is outside any outbreak zone.
	None Zone = iota
	// LastZone: the cell was in the outbreak zone as of the previous timestep.
	LastZone
	// NewZone: the cell was claimed by this timestep's spread.
	NewZone
)

// String returns the short text form used in CSV and logs.
func (z Zone) String() string {
	switch z {
	case None:
		return "none"
	case LastZone:
		return "last"
	case NewZone:
		return "new"
	default:
		return fmt.Sprintf("zone(%d)", uint8(z))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (z Zone) MarshalText() ([]byte, error) {
	if z > NewZone {
		return nil, fmt.Errorf("%w: %d", ErrUnknownZone, uint8(z))
	}
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text is None.
func (z *Zone) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "none":
		*z = None
	case "last":
		*z = LastZone
	case "new":
		*z = NewZone
	default:
		return fmt.Errorf("%w: %q", ErrUnknownZone, text)
	}
	return nil
}

// Connectivity selects 4- (orthogonal) or 8-neighbour (with diagonals) adjacency.
type Connectivity int

const (
	// Conn4 uses N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds NE, SE, SW, NW.
	Conn8
)

// Map is a dense row-major Zone table matching a grid's dimensions.
type Map struct {
	rows, columns int
	cells         []Zone
}
