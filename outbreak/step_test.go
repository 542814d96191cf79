package outbreak_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/outbreak/agent"
	"github.com/katalvlaran/outbreak/epicenter"
	"github.com/katalvlaran/outbreak/landscape"
	"github.com/katalvlaran/outbreak/outbreak"
	"github.com/katalvlaran/outbreak/rng"
	"github.com/katalvlaran/outbreak/signals"
	"github.com/katalvlaran/outbreak/zone"
)

type scenario struct {
	in  outbreak.Input
	lay *signals.Layers
	log *bytes.Buffer
}

func newScenario(t *testing.T, rows, cols int, tpl agent.DispersalTemplate, n agent.Neighborhood, rate float64) *scenario {
	t.Helper()
	g, err := landscape.New(rows, cols, 30)
	require.NoError(t, err)
	zones := zone.NewMap(g)
	ag := &agent.Agent{
		Name:                    "budworm",
		DispersalRate:           rate,
		DispersalTemplate:       tpl,
		Neighborhood:            n,
		EpidemicThresh:          0.5,
		OutbreakEpicenterThresh: 2,
		OutbreakEpicenterCoeff:  1,
		SeedEpicenterMax:        10,
		SeedEpicenterCoeff:      0.5,
	}
	require.NoError(t, ag.BuildKernel(30, 1))
	lay := signals.NewLayers(g, zones)
	return &scenario{
		in: outbreak.Input{
			Grid: g, Signals: lay, Zones: zones, Agent: ag,
			Source: rng.New(7), Timestep: 3, TimestepLength: 1,
		},
		lay: lay,
		log: &bytes.Buffer{},
	}
}

func (s *scenario) logger() outbreak.Option {
	return outbreak.WithLogger(slog.New(slog.NewJSONHandler(s.log, nil)))
}

// records decodes the JSON log lines written so far.
func (s *scenario) records(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(bytes.NewReader(s.log.Bytes()))
	for dec.More() {
		rec := map[string]any{}
		require.NoError(t, dec.Decode(&rec))
		out = append(out, rec)
	}
	return out
}

func TestStep_InputErrors(t *testing.T) {
	s := newScenario(t, 3, 3, agent.Percolation, agent.N8, 60)

	for name, mutate := range map[string]func(in *outbreak.Input){
		"grid":    func(in *outbreak.Input) { in.Grid = nil },
		"signals": func(in *outbreak.Input) { in.Signals = nil },
		"zones":   func(in *outbreak.Input) { in.Zones = nil },
		"agent":   func(in *outbreak.Input) { in.Agent = nil },
		"source":  func(in *outbreak.Input) { in.Source = nil },
	} {
		t.Run(name, func(t *testing.T) {
			in := s.in
			mutate(&in)
			_, err := outbreak.Step(in)
			assert.ErrorIs(t, err, outbreak.ErrInput)
		})
	}

	_, err := outbreak.Step(s.in, outbreak.WithMaxAttempts(-2))
	assert.ErrorIs(t, err, outbreak.ErrOptionViolation)
}

func TestStep_BadInputLeavesAgentAlone(t *testing.T) {
	other, err := landscape.New(4, 4, 30)
	require.NoError(t, err)

	for name, mutate := range map[string]func(in *outbreak.Input){
		"zero timestep length":  func(in *outbreak.Input) { in.TimestepLength = 0 },
		"zones of another grid": func(in *outbreak.Input) { in.Zones = zone.NewMap(other) },
	} {
		t.Run(name, func(t *testing.T) {
			s := newScenario(t, 10, 10, agent.Percolation, agent.N8, 60)
			s.in.Agent.EpicenterNum = 3
			mutate(&s.in)

			_, err := outbreak.Step(s.in, s.logger())
			assert.ErrorIs(t, err, outbreak.ErrInput)
			assert.Equal(t, 3, s.in.Agent.EpicenterNum)
			assert.Zero(t, s.in.Zones.Count(zone.NewZone))
			assert.Empty(t, s.records(t))
		})
	}
}

func TestStep_RejectsInvalidAgent(t *testing.T) {
	s := newScenario(t, 3, 3, agent.Percolation, agent.N8, 60)
	s.in.Agent.OutbreakEpicenterCoeff = -1
	s.in.Agent.EpicenterNum = 4

	_, err := outbreak.Step(s.in, s.logger())
	assert.ErrorIs(t, err, agent.ErrConfig)
	assert.Equal(t, 4, s.in.Agent.EpicenterNum)
	assert.Zero(t, s.in.Zones.Count(zone.NewZone))

	recs := s.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "ERROR", recs[0]["level"])
}

func TestStep_PristineFallback(t *testing.T) {
	s := newScenario(t, 10, 10, agent.Percolation, agent.N8, 60)
	s.in.Agent.EpicenterNum = 2

	res, err := outbreak.Step(s.in, s.logger())
	require.NoError(t, err)
	assert.True(t, res.Selection.Pristine)
	assert.Equal(t, 2, res.Selection.Fallback)
	assert.Equal(t, 2, s.in.Agent.EpicenterNum)
	assert.Len(t, res.Epicenters(), 2)
	assert.Equal(t, res.Spread.Claimed, s.in.Zones.Count(zone.NewZone))
	for _, epi := range res.Epicenters() {
		assert.Equal(t, zone.NewZone, s.in.Zones.Get(epi))
	}

	recs := s.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "INFO", recs[0]["level"])
	assert.Equal(t, "budworm", recs[0]["agent"])
	result, ok := recs[0]["result"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, result["epicenters"])
	assert.EqualValues(t, res.Spread.Claimed, result["claimed"])
}

func TestStep_NoEpicentersWarns(t *testing.T) {
	s := newScenario(t, 5, 5, agent.Percolation, agent.N8, 60)
	s.in.Zones.Set(landscape.Location{Row: 4, Column: 4}, zone.LastZone)
	s.in.Agent.EpicenterNum = 3

	res, err := outbreak.Step(s.in, s.logger())
	require.NoError(t, err)
	assert.Zero(t, res.Selection.Count())
	assert.Zero(t, res.Spread.Claimed)
	assert.Zero(t, s.in.Agent.EpicenterNum)
	assert.Zero(t, s.in.Zones.Count(zone.NewZone))
	assert.Equal(t, zone.LastZone, s.in.Zones.Get(landscape.Location{Row: 4, Column: 4}))

	recs := s.records(t)
	require.Len(t, recs, 1)
	assert.Equal(t, "WARN", recs[0]["level"])
}

func TestStep_FallbackExhausted(t *testing.T) {
	s := newScenario(t, 10, 10, agent.Percolation, agent.N8, 60)
	for _, l := range s.in.Grid.ActiveLocations() {
		s.in.Grid.SetActive(l, l.Row == 0 && l.Column == 0)
	}
	s.in.Agent.EpicenterNum = 1
	s.in.Source = &rng.Scripted{Uniforms: []float64{0.5}}

	_, err := outbreak.Step(s.in, s.logger(), outbreak.WithMaxAttempts(10))
	assert.ErrorIs(t, err, epicenter.ErrFallbackExhausted)
	assert.Equal(t, 1, s.in.Agent.EpicenterNum)
}

func TestStep_SummaryAndAdvance(t *testing.T) {
	s := newScenario(t, 10, 10, agent.FixedRadius, agent.Disk, 30)
	s.in.Zones.Set(landscape.Location{Row: 9, Column: 9}, zone.LastZone)
	s.lay.SetSeverity(landscape.Location{Row: 2, Column: 2}, 3)
	s.lay.SetSeverity(landscape.Location{Row: 6, Column: 6}, 3)

	res, err := outbreak.Step(s.in, s.logger())
	require.NoError(t, err)
	assert.False(t, res.Selection.Pristine)
	assert.Equal(t, 2, res.Selection.Inside)
	assert.Equal(t, 10, res.Spread.Claimed)

	sum := res.Summary(zone.Conn4)
	assert.Equal(t, outbreak.Summary{ZoneCells: 10, Patches: 2, MeanPatch: 5, MaxPatch: 5}, sum)

	// next timestep: this zone becomes history and severity has dropped
	s.in.Zones.Advance()
	s.lay.SetSeverity(landscape.Location{Row: 2, Column: 2}, 0)
	s.lay.SetSeverity(landscape.Location{Row: 6, Column: 6}, 0)
	s.in.Timestep++

	res, err = outbreak.Step(s.in, s.logger())
	require.NoError(t, err)
	assert.False(t, res.Selection.Pristine)
	assert.Zero(t, res.Selection.Count())
	assert.Equal(t, 10, s.in.Zones.Count(zone.LastZone))
	assert.Equal(t, outbreak.Summary{}, res.Summary(zone.Conn8))
}

func TestStep_Deterministic(t *testing.T) {
	run := func() []landscape.Location {
		s := newScenario(t, 15, 15, agent.Percolation, agent.N12, 90)
		s.in.Agent.EpicenterNum = 4
		s.in.Agent.SeedEpicenter = true
		for _, l := range s.in.Grid.ActiveLocations() {
			if l.Column%4 == 0 {
				s.lay.SetVulnerability(l, 0.9)
			}
		}
		_, err := outbreak.Step(s.in, s.logger())
		require.NoError(t, err)
		return s.in.Zones.Locations(zone.NewZone)
	}
	assert.Equal(t, run(), run())
}
