package spread

import (
	"fmt"

	"github.com/katalvlaran/outbreak/agent"
	"github.com/katalvlaran/outbreak/landscape"
	"github.com/katalvlaran/outbreak/zone"
)

// walker encapsulates mutable spread state.
type walker struct {
	ag       *agent.Agent
	grid     *landscape.Grid
	zones    *zone.Map
	opts     Options
	distance float64
	queue    []landscape.Location
	pending  []int // fill stamp; pending[i] == fill marks i as queued
	res      *Result
}

// Spread marks the outbreak zone reached from epicenters, in order, into
// zones. The dispersal distance is ag.DispersalRate × timestepLength.
// See the package documentation for errors.
func Spread(ag *agent.Agent, epicenters []landscape.Location, timestepLength int,
	g *landscape.Grid, zones *zone.Map, opts ...Option) (*Result, error) {
	switch {
	case ag == nil:
		return nil, ErrAgentNil
	case g == nil:
		return nil, ErrGridNil
	case zones == nil:
		return nil, ErrZonesNil
	case zones.Rows() != g.Rows() || zones.Columns() != g.Columns():
		return nil, fmt.Errorf("%w: zones %dx%d, grid %dx%d",
			ErrShapeMismatch, zones.Rows(), zones.Columns(), g.Rows(), g.Columns())
	case timestepLength < 1:
		return nil, fmt.Errorf("%w: got %d", ErrTimestepLength, timestepLength)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	fill, err := handlerFor(ag.DispersalTemplate)
	if err != nil {
		return nil, err
	}
	for i, epi := range epicenters {
		if !g.IsActive(epi) {
			return nil, fmt.Errorf("%w: #%d at (%d,%d)", ErrEpicenterInactive, i, epi.Row, epi.Column)
		}
	}

	w := &walker{
		ag:       ag,
		grid:     g,
		zones:    zones,
		opts:     o,
		distance: ag.DispersalDistance(timestepLength),
		res:      &Result{PerEpicenter: make([]int, len(epicenters))},
	}
	for i, epi := range epicenters {
		if err := fill(w, i, epi); err != nil {
			return w.res, err
		}
	}
	return w.res, nil
}

// handler grows the zone of a single epicenter.
type handler func(w *walker, idx int, epi landscape.Location) error

// handlerFor dispatches on the closed set of dispersal templates.
func handlerFor(t agent.DispersalTemplate) (handler, error) {
	switch t {
	case agent.FixedRadius:
		return (*walker).stamp, nil
	case agent.Percolation:
		return (*walker).percolate, nil
	default:
		return nil, fmt.Errorf("spread: %w: %v", agent.ErrUnknownTemplate, t)
	}
}

// claim marks loc NewZone unless it already is, crediting epicenter idx.
// It reports whether loc was newly claimed.
func (w *walker) claim(loc landscape.Location, idx int) bool {
	if w.zones.Get(loc) == zone.NewZone {
		return false
	}
	w.zones.Set(loc, zone.NewZone)
	w.res.Claimed++
	w.res.PerEpicenter[idx]++
	w.opts.OnClaim(loc, idx)
	return true
}

// stamp claims every active kernel neighbour of epi.
func (w *walker) stamp(idx int, epi landscape.Location) error {
	for _, off := range w.ag.DispersalNeighbors {
		if nb, ok := w.grid.NeighborOf(epi, off); ok {
			w.claim(nb, idx)
		}
	}
	return nil
}

// percolate floods from epi through kernel hops, bounded by distance to epi.
// A seed already claimed by an earlier fill is not expanded again.
func (w *walker) percolate(idx int, epi landscape.Location) error {
	if w.zones.Get(epi) == zone.NewZone {
		return nil
	}
	if w.pending == nil {
		w.pending = make([]int, w.grid.Len())
	}
	stampID := idx + 1
	w.queue = append(w.queue[:0], epi)
	w.pending[w.grid.Index(epi)] = stampID

	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.claim(cur, idx)

		for _, off := range w.ag.DispersalNeighbors {
			nb, ok := w.grid.NeighborOf(cur, off)
			if !ok || w.zones.Get(nb) == zone.NewZone {
				continue
			}
			i := w.grid.Index(nb)
			if w.pending[i] == stampID {
				continue
			}
			if w.grid.Distance(nb, epi) <= w.distance {
				w.pending[i] = stampID
				w.queue = append(w.queue, nb)
			}
		}
	}
	return nil
}
