package agent_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/outbreak/agent"
	"github.com/katalvlaran/outbreak/landscape"
)

// validAgent returns a percolation agent with an 8N kernel that passes Validate.
func validAgent(t *testing.T) *agent.Agent {
	t.Helper()
	a := &agent.Agent{
		Name:                    "budworm",
		DispersalRate:           60,
		DispersalTemplate:       agent.Percolation,
		Neighborhood:            agent.N8,
		OutbreakEpicenterThresh: 2,
		OutbreakEpicenterCoeff:  0.1,
		EpidemicThresh:          0.5,
		SeedEpicenter:           true,
		SeedEpicenterMax:        10,
		SeedEpicenterCoeff:      0.5,
		EpicenterNum:            3,
	}
	require.NoError(t, a.BuildKernel(30, 1))
	return a
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validAgent(t).Validate())
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *agent.Agent)
	}{
		{"empty name", func(a *agent.Agent) { a.Name = "" }},
		{"zero rate", func(a *agent.Agent) { a.DispersalRate = 0 }},
		{"negative rate", func(a *agent.Agent) { a.DispersalRate = -5 }},
		{"NaN rate", func(a *agent.Agent) { a.DispersalRate = math.NaN() }},
		{"infinite rate", func(a *agent.Agent) { a.DispersalRate = math.Inf(1) }},
		{"unknown template", func(a *agent.Agent) { a.DispersalTemplate = 9 }},
		{"empty kernel", func(a *agent.Agent) { a.DispersalNeighbors = nil }},
		{"percolation centre-only kernel", func(a *agent.Agent) {
			a.DispersalNeighbors = []landscape.Offset{{}}
		}},
		{"NaN epidemic threshold", func(a *agent.Agent) { a.EpidemicThresh = math.NaN() }},
		{"NaN outbreak threshold", func(a *agent.Agent) { a.OutbreakEpicenterThresh = math.NaN() }},
		{"negative outbreak coeff", func(a *agent.Agent) { a.OutbreakEpicenterCoeff = -0.1 }},
		{"negative seed max", func(a *agent.Agent) { a.SeedEpicenterMax = -1 }},
		{"negative seed coeff", func(a *agent.Agent) { a.SeedEpicenterCoeff = -1 }},
		{"negative epicenter count", func(a *agent.Agent) { a.EpicenterNum = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := validAgent(t)
			tc.mutate(a)
			assert.ErrorIs(t, a.Validate(), agent.ErrConfig)
		})
	}

	var nilAgent *agent.Agent
	assert.ErrorIs(t, nilAgent.Validate(), agent.ErrConfig)
}

func TestValidate_FixedRadiusCentreOnly(t *testing.T) {
	a := validAgent(t)
	a.DispersalTemplate = agent.FixedRadius
	a.DispersalNeighbors = []landscape.Offset{{}}
	assert.NoError(t, a.Validate(), "a fixed stamp may be just the epicenter")
}

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		in   string
		tmpl agent.DispersalTemplate
		nb   agent.Neighborhood
	}{
		{"MaxRadius", agent.FixedRadius, agent.Disk},
		{"fixed_radius", agent.FixedRadius, agent.Disk},
		{"4N", agent.Percolation, agent.N4},
		{"8n", agent.Percolation, agent.N8},
		{" 12N ", agent.Percolation, agent.N12},
		{"24N", agent.Percolation, agent.N24},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			tmpl, nb, err := agent.ParseTemplate(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.tmpl, tmpl)
			assert.Equal(t, tc.nb, nb)
		})
	}

	_, _, err := agent.ParseTemplate("16N")
	assert.ErrorIs(t, err, agent.ErrUnknownTemplate)
}

func TestKernel_Sizes(t *testing.T) {
	tests := []struct {
		nb   agent.Neighborhood
		want int
	}{
		{agent.N4, 4},
		{agent.N8, 8},
		{agent.N12, 12},
		{agent.N24, 24},
	}
	for _, tc := range tests {
		t.Run(tc.nb.String(), func(t *testing.T) {
			k, err := agent.Kernel(tc.nb, 0, 30)
			require.NoError(t, err)
			assert.Len(t, k, tc.want)
			assert.NotContains(t, k, landscape.Offset{})
		})
	}

	_, err := agent.Kernel(agent.Neighborhood(42), 0, 30)
	assert.ErrorIs(t, err, agent.ErrUnknownTemplate)
}

func TestKernel_Disk(t *testing.T) {
	// radius 60 with 30-unit cells: dr²+dc² ≤ 4 ⇒ centre, 8 ring cells and
	// the four cells two steps out orthogonally.
	k, err := agent.Kernel(agent.Disk, 60, 30)
	require.NoError(t, err)
	assert.Len(t, k, 13)
	assert.Contains(t, k, landscape.Offset{})
	assert.Contains(t, k, landscape.Offset{DRow: 2})
	assert.NotContains(t, k, landscape.Offset{DRow: 2, DCol: 1})

	// below one cell only the centre remains
	k, err = agent.Kernel(agent.Disk, 29, 30)
	require.NoError(t, err)
	assert.Equal(t, []landscape.Offset{{}}, k)

	_, err = agent.Kernel(agent.Disk, 60, 0)
	assert.ErrorIs(t, err, agent.ErrConfig)
	_, err = agent.Kernel(agent.Disk, 30*agent.MaxDiskRadius+1, 30)
	assert.ErrorIs(t, err, agent.ErrConfig)
	k, err = agent.Kernel(agent.Disk, 30*agent.MaxDiskRadius, 30)
	require.NoError(t, err)
	assert.Equal(t, landscape.Offset{DRow: -agent.MaxDiskRadius}, k[0])
	_, err = agent.Kernel(agent.Disk, -1, 30)
	assert.ErrorIs(t, err, agent.ErrConfig)
}

func TestBuildKernel_HugeDiskRejected(t *testing.T) {
	a := &agent.Agent{Name: "budworm", DispersalRate: 1e12, DispersalTemplate: agent.FixedRadius, Neighborhood: agent.Disk}
	assert.NotPanics(t, func() {
		err := a.BuildKernel(30, 1)
		assert.ErrorIs(t, err, agent.ErrConfig)
	})
	assert.Empty(t, a.DispersalNeighbors)
}

func TestKernel_ReturnsCopies(t *testing.T) {
	a, err := agent.Kernel(agent.N4, 0, 1)
	require.NoError(t, err)
	a[0] = landscape.Offset{DRow: 99}

	b, err := agent.Kernel(agent.N4, 0, 1)
	require.NoError(t, err)
	assert.NotEqual(t, a[0], b[0])
}

func TestDispersalDistance(t *testing.T) {
	a := &agent.Agent{DispersalRate: 2}
	assert.Equal(t, 2.0, a.DispersalDistance(1))
	assert.Equal(t, 20.0, a.DispersalDistance(10))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "percolation", agent.Percolation.String())
	assert.Equal(t, "fixed_radius", agent.FixedRadius.String())
	assert.Equal(t, "template(7)", agent.DispersalTemplate(7).String())
	assert.Equal(t, "MaxRadius", agent.Disk.String())
	assert.Equal(t, "12N", agent.N12.String())
}
