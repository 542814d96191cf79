package epicenter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/outbreak/agent"
	"github.com/katalvlaran/outbreak/landscape"
	"github.com/katalvlaran/outbreak/rng"
	"github.com/katalvlaran/outbreak/signals"
	"github.com/katalvlaran/outbreak/zone"
)

// selector encapsulates the state of one selection pass.
type selector struct {
	grid *landscape.Grid
	sig  signals.Provider
	ag   *agent.Agent
	src  rng.Source
	now  int
	opts Options
	res  *Result
}

// Select picks this timestep's epicenters for ag at timestep now.
// ag.EpicenterNum is read as the previous epicenter count and left untouched.
// Returns ErrGridNil, ErrSignalsNil, ErrAgentNil, ErrSourceNil,
// ErrOptionViolation, or ErrFallbackExhausted.
func Select(g *landscape.Grid, sig signals.Provider, ag *agent.Agent, src rng.Source, now int, opts ...Option) (*Result, error) {
	switch {
	case g == nil:
		return nil, ErrGridNil
	case sig == nil:
		return nil, ErrSignalsNil
	case ag == nil:
		return nil, ErrAgentNil
	case src == nil:
		return nil, ErrSourceNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &selector{grid: g, sig: sig, ag: ag, src: src, now: now, opts: o, res: &Result{}}
	prior := ag.EpicenterNum

	s.res.Pristine = s.pristine()
	inside, outside := s.candidates()
	s.res.InsideCandidates = len(inside)
	s.res.OutsideCandidates = len(outside)

	s.takeInside(inside)
	if ag.SeedEpicenter {
		s.takeOutside(outside)
	}
	if s.res.Pristine && s.res.Count() < prior {
		if err := s.fallback(prior); err != nil {
			return nil, err
		}
	}
	return s.res, nil
}

// disturbedLastStep reports whether this agent disturbed loc at now-1.
func (s *selector) disturbedLastStep(loc landscape.Location) bool {
	ts, name, ok := s.sig.LastEvent(loc)
	return ok && ts == s.now-1 && name == s.ag.Name
}

// pristine is the first scan: any LastZone cell or any disturbance by this
// agent in the previous timestep means the landscape carries history.
func (s *selector) pristine() bool {
	for _, loc := range s.grid.ActiveLocations() {
		if s.sig.LastZone(loc) == zone.LastZone || s.disturbedLastStep(loc) {
			return false
		}
	}
	return true
}

// candidates is the second scan. A cell lands in at most one list and the
// inside test wins.
func (s *selector) candidates() (inside, outside []landscape.Location) {
	thresh := s.ag.OutbreakEpicenterThresh
	for _, loc := range s.grid.ActiveLocations() {
		if s.sig.Severity(loc) >= thresh ||
			(s.disturbedLastStep(loc) && s.sig.LastEventSeverity(loc) >= thresh) {
			inside = append(inside, loc)
			continue
		}
		if s.sig.LastZone(loc) == zone.None && s.sig.Vulnerability(loc) >= s.ag.EpidemicThresh {
			outside = append(outside, loc)
		}
	}
	return inside, outside
}

// takeInside keeps floor(N × OutbreakEpicenterCoeff) shuffled inside
// candidates, never more than N.
func (s *selector) takeInside(inside []landscape.Location) {
	rng.ShuffleSlice(s.src, inside)
	n := InsideQuota(len(inside), s.ag.OutbreakEpicenterCoeff)
	s.res.Epicenters = append(s.res.Epicenters, inside[:n]...)
	s.res.Inside = n
}

// takeOutside keeps the Michaelis–Menten share of shuffled outside candidates.
func (s *selector) takeOutside(outside []landscape.Location) {
	rng.ShuffleSlice(s.src, outside)
	p := 0.0
	if active := s.grid.ActiveCount(); active > 0 {
		p = float64(len(outside)) / float64(active)
	}
	n := SeedTarget(s.ag.SeedEpicenterMax, s.ag.SeedEpicenterCoeff, p)
	if n > len(outside) {
		n = len(outside)
	}
	s.res.Epicenters = append(s.res.Epicenters, outside[:n]...)
	s.res.Outside = n
}

// fallback samples uniform cells until the epicenter count reaches quota.
func (s *selector) fallback(quota int) error {
	deficit := quota - s.res.Count()
	rows, cols := s.grid.Rows(), s.grid.Columns()

	chosen := make([]bool, s.grid.Len())
	distinct := 0
	for _, loc := range s.res.Epicenters {
		if i := s.grid.Index(loc); !chosen[i] {
			chosen[i] = true
			distinct++
		}
	}
	if s.opts.Dedup && deficit > s.grid.ActiveCount()-distinct {
		return fmt.Errorf("%w: need %d more, only %d active cells unchosen",
			ErrFallbackExhausted, deficit, s.grid.ActiveCount()-distinct)
	}
	if s.grid.ActiveCount() == 0 {
		return fmt.Errorf("%w: no active cells", ErrFallbackExhausted)
	}

	maxAttempts := s.opts.MaxAttempts
	if maxAttempts == 0 {
		density := (s.grid.Len() + s.grid.ActiveCount() - 1) / s.grid.ActiveCount()
		maxAttempts = defaultAttemptsPerEpicenter * deficit * density
	}

	for added := 0; added < deficit; {
		if s.res.Attempts >= maxAttempts {
			return fmt.Errorf("%w: placed %d of %d after %d attempts",
				ErrFallbackExhausted, added, deficit, s.res.Attempts)
		}
		s.res.Attempts++
		loc := landscape.Location{
			Row:    scale(s.src.Float64(), rows),
			Column: scale(s.src.Float64(), cols),
		}
		if !s.grid.IsActive(loc) {
			continue
		}
		i := s.grid.Index(loc)
		if s.opts.Dedup && chosen[i] {
			continue
		}
		chosen[i] = true
		s.res.Epicenters = append(s.res.Epicenters, loc)
		s.res.Fallback++
		added++
	}
	return nil
}

// scale maps u ∈ [0,1) onto [0,n). Values at or past 1 land on n-1.
func scale(u float64, n int) int {
	i := int(u * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// InsideQuota is floor(n × coeff) clamped to [0, n].
func InsideQuota(n int, coeff float64) int {
	q := int(math.Floor(float64(n) * coeff))
	if q > n {
		return n
	}
	if q < 0 {
		return 0
	}
	return q
}

// SeedTarget is the Michaelis–Menten outside-epicenter count
// RoundToEven(vmax × p / (k + p)). It is 0 when p ≤ 0 and never exceeds vmax
// for k ≥ 0.
func SeedTarget(vmax int, k, p float64) int {
	if p <= 0 || vmax <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(vmax) * p / (k + p)))
}
