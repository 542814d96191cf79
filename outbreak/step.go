package outbreak

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/outbreak/epicenter"
	"github.com/katalvlaran/outbreak/spread"
	"github.com/katalvlaran/outbreak/zone"
)

// Step runs selection then spread for in.Agent at in.Timestep.
// On success in.Agent.EpicenterNum holds the number of epicenters selected.
// Errors from agent validation, selection and spread are returned as is.
func Step(in Input, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := in.check(); err != nil {
		return nil, err
	}
	ag := in.Agent
	log := o.Logger.With("agent", ag.Name, "timestep", in.Timestep)

	if err := ag.Validate(); err != nil {
		log.Error("agent rejected", "error", err)
		return nil, err
	}

	sel, err := epicenter.Select(in.Grid, in.Signals, ag, in.Source, in.Timestep,
		epicenter.WithMaxAttempts(o.MaxAttempts))
	if err != nil {
		log.Error("epicenter selection failed", "prior_epicenters", ag.EpicenterNum, "error", err)
		return nil, err
	}
	ag.EpicenterNum = sel.Count()

	res := &Result{Agent: ag.Name, Timestep: in.Timestep, Selection: sel, zones: in.Zones}
	if sel.Count() == 0 {
		log.Warn("no epicenters selected, zone unchanged", "pristine", sel.Pristine)
		res.Spread = &spread.Result{}
		return res, nil
	}

	res.Spread, err = spread.Spread(ag, sel.Epicenters, in.TimestepLength, in.Grid, in.Zones,
		spread.WithContext(o.Ctx))
	if err != nil {
		log.Error("spread failed", "error", err)
		return nil, err
	}
	log.Info("outbreak step", "result", res)
	return res, nil
}

// Summary groups the NewZone cells into patches under conn and reports
// their count, mean and maximum size.
func (r *Result) Summary(conn zone.Connectivity) Summary {
	if r.zones == nil {
		return Summary{}
	}
	patches := r.zones.Patches(conn)
	s := Summary{ZoneCells: r.zones.Count(zone.NewZone), Patches: len(patches)}
	if len(patches) == 0 {
		return s
	}
	sizes := make([]float64, len(patches))
	for i, p := range patches {
		sizes[i] = float64(len(p))
	}
	s.MeanPatch = stat.Mean(sizes, nil)
	s.MaxPatch = floats.Max(sizes)
	return s
}
