package outbreak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/outbreak/agent"
	"github.com/katalvlaran/outbreak/epicenter"
	"github.com/katalvlaran/outbreak/landscape"
	"github.com/katalvlaran/outbreak/rng"
	"github.com/katalvlaran/outbreak/signals"
	"github.com/katalvlaran/outbreak/spread"
	"github.com/katalvlaran/outbreak/zone"
)

// Sentinel errors for a timestep run.
var (
	// ErrInput is returned when a required Input field is missing or out of
	// range.
	ErrInput = errors.New("outbreak: incomplete input")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("outbreak: invalid option supplied")
)

// Input bundles the collaborators of one timestep.
type Input struct {
	Grid    *landscape.Grid
	Signals signals.Provider
	Zones   *zone.Map
	Agent   *agent.Agent
	Source  rng.Source

	// Timestep is the current simulation time; TimestepLength is its
	// duration in years and scales the dispersal distance.
	Timestep       int
	TimestepLength int
}

func (in Input) check() error {
	switch {
	case in.Grid == nil:
		return fmt.Errorf("%w: grid", ErrInput)
	case in.Signals == nil:
		return fmt.Errorf("%w: signals", ErrInput)
	case in.Zones == nil:
		return fmt.Errorf("%w: zones", ErrInput)
	case in.Agent == nil:
		return fmt.Errorf("%w: agent", ErrInput)
	case in.Source == nil:
		return fmt.Errorf("%w: random source", ErrInput)
	case in.TimestepLength < 1:
		return fmt.Errorf("%w: timestep length must be at least 1, got %d", ErrInput, in.TimestepLength)
	case in.Zones.Rows() != in.Grid.Rows() || in.Zones.Columns() != in.Grid.Columns():
		return fmt.Errorf("%w: zones %dx%d, grid %dx%d",
			ErrInput, in.Zones.Rows(), in.Zones.Columns(), in.Grid.Rows(), in.Grid.Columns())
	}
	return nil
}

// Option configures Step.
type Option func(*Options)

// Options holds the knobs of one Step call.
type Options struct {
	Logger      *slog.Logger
	Ctx         context.Context
	MaxAttempts int

	err error
}

// DefaultOptions returns slog.Default(), a background context and the
// derived fallback attempt cap.
func DefaultOptions() Options {
	return Options{Logger: slog.Default(), Ctx: context.Background()}
}

// WithLogger routes Step's log records to l. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext sets the context used to cancel spreading. nil keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxAttempts caps fallback epicenter sampling; 0 derives the cap.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxAttempts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// Result is the outcome of one timestep.
type Result struct {
	Agent    string
	Timestep int

	Selection *epicenter.Result
	Spread    *spread.Result

	zones *zone.Map
}

// Epicenters returns the selected epicenters in processing order.
func (r *Result) Epicenters() []landscape.Location { return r.Selection.Epicenters }

// LogValue implements slog.LogValuer for structured logging.
func (r *Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("agent", r.Agent),
		slog.Int("timestep", r.Timestep),
		slog.Bool("pristine", r.Selection.Pristine),
		slog.Int("inside_candidates", r.Selection.InsideCandidates),
		slog.Int("outside_candidates", r.Selection.OutsideCandidates),
		slog.Int("inside", r.Selection.Inside),
		slog.Int("outside", r.Selection.Outside),
		slog.Int("fallback", r.Selection.Fallback),
		slog.Int("fallback_attempts", r.Selection.Attempts),
		slog.Int("epicenters", r.Selection.Count()),
		slog.Int("claimed", r.Spread.Claimed),
	)
}

// Summary describes the spatial structure of the new outbreak zone.
type Summary struct {
	ZoneCells int
	Patches   int
	MeanPatch float64
	MaxPatch  float64
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("zone_cells", s.ZoneCells),
		slog.Int("patches", s.Patches),
		slog.Float64("mean_patch", s.MeanPatch),
		slog.Float64("max_patch", s.MaxPatch),
	)
}
