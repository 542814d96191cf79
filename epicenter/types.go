package epicenter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/outbreak/landscape"
)

// Sentinel errors for epicenter selection.
var (
	// ErrGridNil is returned when the grid pointer is nil.
	ErrGridNil = errors.New("epicenter: grid is nil")
	// ErrSignalsNil is returned when the signal provider is nil.
	ErrSignalsNil = errors.New("epicenter: signal provider is nil")
	// ErrAgentNil is returned when the agent pointer is nil.
	ErrAgentNil = errors.New("epicenter: agent is nil")
	// ErrSourceNil is returned when no random source is supplied.
	ErrSourceNil = errors.New("epicenter: random source is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("epicenter: invalid option supplied")
	// ErrFallbackExhausted is returned when fallback sampling cannot reach the
	// previous epicenter count: insufficient active cells to meet the quota.
	ErrFallbackExhausted = errors.New("epicenter: insufficient active cells to meet fallback epicenter quota")
)

// defaultAttemptsPerEpicenter scales the derived fallback cap: per missing
// epicenter, this many draws per unit of inverse active-cell density.
const defaultAttemptsPerEpicenter = 1000

// Option configures Select.
type Option func(*Options)

// Options holds selection knobs.
type Options struct {
	// MaxAttempts caps fallback draws. 0 derives the cap from the deficit and
	// the active-cell density.
	MaxAttempts int
	// Dedup rejects fallback draws that hit an already chosen cell.
	Dedup bool

	err error
}

// DefaultOptions returns derived attempt cap and dedup on.
func DefaultOptions() Options {
	return Options{MaxAttempts: 0, Dedup: true}
}

// WithMaxAttempts caps fallback sampling draws.
//
//	n > 0:  at most n draws
//	n == 0: derived default
//	n < 0:  invalid → ErrOptionViolation
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxAttempts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// WithDedup toggles rejection of duplicate fallback cells.
func WithDedup(on bool) Option {
	return func(o *Options) { o.Dedup = on }
}

// Result is the outcome of one selection pass.
type Result struct {
	// Epicenters in the order they were chosen: inside, outside, fallback.
	Epicenters []landscape.Location

	Inside   int
	Outside  int
	Fallback int

	InsideCandidates  int
	OutsideCandidates int

	// Pristine reports whether the landscape had no prior outbreak trace.
	Pristine bool
	// Attempts counts fallback draws.
	Attempts int
}

// Count is the number of epicenters produced; it becomes the agent's EpicenterNum.
func (r *Result) Count() int { return len(r.Epicenters) }
