package signals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/outbreak/landscape"
	"github.com/katalvlaran/outbreak/signals"
	"github.com/katalvlaran/outbreak/zone"
)

func TestLayers(t *testing.T) {
	g, err := landscape.New(3, 3, 30)
	require.NoError(t, err)
	zones := zone.NewMap(g)
	l := signals.NewLayers(g, zones)

	var _ signals.Provider = l

	loc := landscape.Location{Row: 2, Column: 1}
	_, _, ok := l.LastEvent(loc)
	assert.False(t, ok, "fresh layers have no events")

	l.SetSeverity(loc, 2.5)
	l.SetVulnerability(loc, 0.7)
	l.SetEvent(loc, 4, "budworm", 3)

	assert.Equal(t, 2.5, l.Severity(loc))
	assert.Equal(t, 0.7, l.Vulnerability(loc))
	assert.Equal(t, 3.0, l.LastEventSeverity(loc))

	ts, name, ok := l.LastEvent(loc)
	assert.True(t, ok)
	assert.Equal(t, 4, ts)
	assert.Equal(t, "budworm", name)

	assert.Equal(t, zone.None, l.LastZone(loc))
	zones.Set(loc, zone.LastZone)
	assert.Equal(t, zone.LastZone, l.LastZone(loc))

	// neighbouring cells are untouched
	assert.Zero(t, l.Severity(landscape.Location{Row: 2, Column: 0}))
}

func TestLayers_NilZones(t *testing.T) {
	g, err := landscape.New(1, 1, 1)
	require.NoError(t, err)
	l := signals.NewLayers(g, nil)
	assert.Equal(t, zone.None, l.LastZone(landscape.Location{}))
}
