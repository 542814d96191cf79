package csvio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/outbreak/landscape"
	"github.com/katalvlaran/outbreak/signals"
	"github.com/katalvlaran/outbreak/zone"
)

// Sentinel errors for cell input.
var (
	// ErrNoCells is returned when the input holds no records.
	ErrNoCells = errors.New("csvio: no cell records")
	// ErrBadRecord is returned for a malformed or duplicated cell record.
	ErrBadRecord = errors.New("csvio: bad cell record")
)

// Limits on the grid a cell file may describe.
const (
	MaxSide  = 1 << 15 // rows or columns
	MaxCells = 1 << 24 // rows × columns
)

// CellRecord is one line of the cell input file.
type CellRecord struct {
	Row               int       `csv:"row"`
	Column            int       `csv:"column"`
	Active            bool      `csv:"active"`
	Severity          float64   `csv:"severity"`
	LastEventSeverity float64   `csv:"last_event_severity"`
	Vulnerability     float64   `csv:"vulnerability"`
	LastEventTime     string    `csv:"last_event_time"` // empty = no event
	LastEventAgent    string    `csv:"last_event_agent"`
	Zone              zone.Zone `csv:"zone"`
}

// ZoneRecord is one line of zones.csv.
type ZoneRecord struct {
	Row    int       `csv:"row"`
	Column int       `csv:"column"`
	Zone   zone.Zone `csv:"zone"`
}

// EpicenterRecord is one line of epicenters.csv.
type EpicenterRecord struct {
	Order  int `csv:"order"`
	Row    int `csv:"row"`
	Column int `csv:"column"`
}

// Landscape bundles what a cell file describes.
type Landscape struct {
	Grid   *landscape.Grid
	Layers *signals.Layers
	Zones  *zone.Map
}

// LoadCells reads the cell file at path. See ReadCells.
func LoadCells(path string, cellLength float64) (*Landscape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cells file: %w", err)
	}
	defer f.Close()
	return ReadCells(f, cellLength)
}

// ReadCells builds the grid, signal layers and zone map from cell records.
// The zone column seeds the map as the previous run left it; callers roll it
// forward with zone.Map.Advance before selecting epicenters.
func ReadCells(r io.Reader, cellLength float64) (*Landscape, error) {
	var recs []*CellRecord
	if err := gocsv.Unmarshal(r, &recs); err != nil {
		return nil, fmt.Errorf("parsing cells: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrNoCells
	}

	rows, cols := 0, 0
	for i, rec := range recs {
		if rec.Row < 0 || rec.Column < 0 {
			return nil, fmt.Errorf("%w: line %d: negative coordinates (%d,%d)", ErrBadRecord, i+2, rec.Row, rec.Column)
		}
		if rec.Row >= MaxSide || rec.Column >= MaxSide {
			return nil, fmt.Errorf("%w: line %d: (%d,%d) beyond the %d-cell side limit",
				ErrBadRecord, i+2, rec.Row, rec.Column, MaxSide)
		}
		rows = max(rows, rec.Row+1)
		cols = max(cols, rec.Column+1)
	}
	if rows*cols > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d grid exceeds %d cells", ErrBadRecord, rows, cols, MaxCells)
	}

	mask := make([][]bool, rows)
	for r := range mask {
		mask[r] = make([]bool, cols)
	}
	seen := make(map[landscape.Location]int, len(recs))
	for i, rec := range recs {
		loc := landscape.Location{Row: rec.Row, Column: rec.Column}
		if prev, dup := seen[loc]; dup {
			return nil, fmt.Errorf("%w: line %d repeats (%d,%d) from line %d", ErrBadRecord, i+2, rec.Row, rec.Column, prev+2)
		}
		seen[loc] = i
		mask[rec.Row][rec.Column] = rec.Active
	}
	g, err := landscape.FromMask(mask, cellLength)
	if err != nil {
		return nil, err
	}

	zones := zone.NewMap(g)
	layers := signals.NewLayers(g, zones)
	for i, rec := range recs {
		loc := landscape.Location{Row: rec.Row, Column: rec.Column}
		layers.SetSeverity(loc, rec.Severity)
		layers.SetVulnerability(loc, rec.Vulnerability)
		if ts := strings.TrimSpace(rec.LastEventTime); ts != "" {
			t, err := strconv.Atoi(ts)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: last_event_time %q: %v", ErrBadRecord, i+2, ts, err)
			}
			layers.SetEvent(loc, t, rec.LastEventAgent, rec.LastEventSeverity)
		}
		zones.Set(loc, rec.Zone)
	}
	return &Landscape{Grid: g, Layers: layers, Zones: zones}, nil
}

// WriteZones writes the zone of every active cell in row-major order.
func WriteZones(w io.Writer, g *landscape.Grid, zones *zone.Map) error {
	active := g.ActiveLocations()
	recs := make([]ZoneRecord, 0, len(active))
	for _, loc := range active {
		recs = append(recs, ZoneRecord{Row: loc.Row, Column: loc.Column, Zone: zones.Get(loc)})
	}
	if err := gocsv.Marshal(recs, w); err != nil {
		return fmt.Errorf("writing zones: %w", err)
	}
	return nil
}

// WriteEpicenters writes epicenters in processing order, numbered from 0.
func WriteEpicenters(w io.Writer, epicenters []landscape.Location) error {
	recs := make([]EpicenterRecord, len(epicenters))
	for i, loc := range epicenters {
		recs[i] = EpicenterRecord{Order: i, Row: loc.Row, Column: loc.Column}
	}
	if err := gocsv.Marshal(recs, w); err != nil {
		return fmt.Errorf("writing epicenters: %w", err)
	}
	return nil
}
