package spread

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/outbreak/landscape"
)

// Sentinel errors for spread execution.
var (
	// ErrAgentNil is returned when the agent pointer is nil.
	ErrAgentNil = errors.New("spread: agent is nil")

	// ErrGridNil is returned when the grid pointer is nil.
	ErrGridNil = errors.New("spread: grid is nil")

	// ErrZonesNil is returned when the zone map is nil.
	ErrZonesNil = errors.New("spread: zone map is nil")

	// ErrShapeMismatch is returned when the zone map does not cover the grid.
	ErrShapeMismatch = errors.New("spread: zone map and grid differ in size")

	// ErrTimestepLength is returned for a timestep length below one.
	ErrTimestepLength = errors.New("spread: timestep length must be at least 1")

	// ErrEpicenterInactive is returned when an epicenter is out of bounds or
	// not an active cell.
	ErrEpicenterInactive = errors.New("spread: epicenter is not an active cell")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spread: invalid option supplied")
)

// Option configures Spread.
type Option func(*Options)

// Options holds the context and hooks of one Spread call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnClaim is called once per cell newly marked NewZone, with the index of
	// the epicenter that claimed it.
	OnClaim func(loc landscape.Location, epicenter int)

	err error
}

// DefaultOptions returns background context and a no-op OnClaim.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnClaim: func(landscape.Location, int) {},
	}
}

// WithContext sets the context checked during percolation. nil is rejected.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnClaim registers a claim hook. nil keeps the no-op.
func WithOnClaim(fn func(loc landscape.Location, epicenter int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClaim = fn
		}
	}
}

// Result summarizes one Spread call.
//   - Claimed: cells newly marked NewZone.
//   - PerEpicenter: new claims credited to each epicenter, in input order.
type Result struct {
	Claimed      int
	PerEpicenter []int
}
