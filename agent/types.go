package agent

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/outbreak/landscape"
)

// Sentinel errors for agent configuration.
var (
	// ErrConfig wraps every violation reported by Validate and BuildKernel.
	ErrConfig = errors.New("agent: invalid configuration")
	// ErrUnknownTemplate indicates an unrecognized dispersal template or
	// neighbourhood name.
	ErrUnknownTemplate = errors.New("agent: unknown dispersal template")
)

// DispersalTemplate selects how an outbreak spreads from its epicenters.
type DispersalTemplate int

const (
	// FixedRadius marks every active kernel neighbour of each epicenter.
	FixedRadius DispersalTemplate = iota
	// Percolation floods through kernel hops, bounded by distance from the epicenter.
	Percolation
)

// String returns the template name.
func (t DispersalTemplate) String() string {
	switch t {
	case FixedRadius:
		return "fixed_radius"
	case Percolation:
		return "percolation"
	default:
		return fmt.Sprintf("template(%d)", int(t))
	}
}

// Neighborhood selects the dispersal kernel shape.
type Neighborhood int

const (
	// Disk: every offset within the dispersal distance, centre included.
	Disk Neighborhood = iota
	// N4: orthogonal neighbours.
	N4
	// N8: orthogonal and diagonal neighbours.
	N8
	// N12: N8 plus the four cells two steps away orthogonally.
	N12
	// N24: the full 5×5 block minus the centre.
	N24
)

// String returns the neighbourhood name as written in parameter files.
func (n Neighborhood) String() string {
	switch n {
	case Disk:
		return "MaxRadius"
	case N4:
		return "4N"
	case N8:
		return "8N"
	case N12:
		return "12N"
	case N24:
		return "24N"
	default:
		return fmt.Sprintf("neighborhood(%d)", int(n))
	}
}

// Agent is the full parameter set of a disturbance agent.
// Selection and spread only read it, except for EpicenterNum.
type Agent struct {
	Name string

	// DispersalRate is the spread distance per timestep, in the grid's
	// physical units.
	DispersalRate      float64
	DispersalTemplate  DispersalTemplate
	Neighborhood       Neighborhood
	DispersalNeighbors []landscape.Offset

	// EpidemicThresh is the vulnerability an outside cell needs to become a
	// seed candidate.
	EpidemicThresh float64
	// OutbreakEpicenterThresh is the severity an inside cell needs to become
	// an epicenter candidate.
	OutbreakEpicenterThresh float64
	// OutbreakEpicenterCoeff is the fraction of inside candidates kept.
	OutbreakEpicenterCoeff float64

	SeedEpicenter bool

	// SeedEpicenterMax is the saturation level of the outside-epicenter curve.
	SeedEpicenterMax   int
	SeedEpicenterCoeff float64

	// EpicenterNum is read as the previous count and overwritten with the
	// number actually produced.
	EpicenterNum int
}

// DispersalDistance is DispersalRate × timestepLength.
func (a *Agent) DispersalDistance(timestepLength int) float64 {
	return a.DispersalRate * float64(timestepLength)
}
