package signals

import (
	"github.com/katalvlaran/outbreak/landscape"
	"github.com/katalvlaran/outbreak/zone"
)

// NoEvent marks a cell with no recorded disturbance in Layers.LastEventTime.
const NoEvent = -1

// Provider is the read-only view of per-cell selection signals.
// Implementations index by Location and may assume loc is an active cell.
type Provider interface {
	// Severity is the agent's current outbreak severity at loc.
	Severity(loc landscape.Location) float64
	// LastEventSeverity is the severity recorded by the most recent disturbance.
	LastEventSeverity(loc landscape.Location) float64
	// Vulnerability is the site vulnerability score.
	Vulnerability(loc landscape.Location) float64
	// LastEvent reports the timestep and agent name of the most recent
	// disturbance; ok is false when the cell has none.
	LastEvent(loc landscape.Location) (timestep int, agentName string, ok bool)
	// LastZone is the cell's outbreak-zone membership carried over from the
	// previous timestep.
	LastZone(loc landscape.Location) zone.Zone
}

// Layers stores every signal in row-major slices of length Rows×Columns.
// Zones may be nil, in which case LastZone always reports None.
type Layers struct {
	columns int

	SeverityValues          []float64
	LastEventSeverityValues []float64
	VulnerabilityValues     []float64
	LastEventTime           []int
	LastEventAgent          []string

	Zones *zone.Map
}

// NewLayers allocates zeroed layers sized to g with no recorded events.
func NewLayers(g *landscape.Grid, zones *zone.Map) *Layers {
	n := g.Len()
	l := &Layers{
		columns:                 g.Columns(),
		SeverityValues:          make([]float64, n),
		LastEventSeverityValues: make([]float64, n),
		VulnerabilityValues:     make([]float64, n),
		LastEventTime:           make([]int, n),
		LastEventAgent:          make([]string, n),
		Zones:                   zones,
	}
	for i := range l.LastEventTime {
		l.LastEventTime[i] = NoEvent
	}
	return l
}

func (l *Layers) index(loc landscape.Location) int {
	return loc.Row*l.columns + loc.Column
}

// Severity implements Provider.
func (l *Layers) Severity(loc landscape.Location) float64 {
	return l.SeverityValues[l.index(loc)]
}

// LastEventSeverity implements Provider.
func (l *Layers) LastEventSeverity(loc landscape.Location) float64 {
	return l.LastEventSeverityValues[l.index(loc)]
}

// Vulnerability implements Provider.
func (l *Layers) Vulnerability(loc landscape.Location) float64 {
	return l.VulnerabilityValues[l.index(loc)]
}

// LastEvent implements Provider.
func (l *Layers) LastEvent(loc landscape.Location) (int, string, bool) {
	i := l.index(loc)
	if l.LastEventTime[i] == NoEvent {
		return 0, "", false
	}
	return l.LastEventTime[i], l.LastEventAgent[i], true
}

// LastZone implements Provider.
func (l *Layers) LastZone(loc landscape.Location) zone.Zone {
	if l.Zones == nil {
		return zone.None
	}
	return l.Zones.Get(loc)
}

// SetEvent records a disturbance by agentName at timestep with the given severity.
func (l *Layers) SetEvent(loc landscape.Location, timestep int, agentName string, severity float64) {
	i := l.index(loc)
	l.LastEventTime[i] = timestep
	l.LastEventAgent[i] = agentName
	l.LastEventSeverityValues[i] = severity
}

// SetSeverity sets the current severity at loc.
func (l *Layers) SetSeverity(loc landscape.Location, v float64) {
	l.SeverityValues[l.index(loc)] = v
}

// SetVulnerability sets the vulnerability at loc.
func (l *Layers) SetVulnerability(loc landscape.Location, v float64) {
	l.VulnerabilityValues[l.index(loc)] = v
}
