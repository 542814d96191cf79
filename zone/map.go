package zone

import "github.com/katalvlaran/outbreak/landscape"

// NewMap allocates a Map sized to g with every cell set to None.
func NewMap(g *landscape.Grid) *Map {
	return &Map{
		rows:    g.Rows(),
		columns: g.Columns(),
		cells:   make([]Zone, g.Len()),
	}
}

// Rows returns the number of rows covered by the map.
func (m *Map) Rows() int { return m.rows }

// Columns returns the number of columns covered by the map.
func (m *Map) Columns() int { return m.columns }

func (m *Map) inBounds(loc landscape.Location) bool {
	return loc.Row >= 0 && loc.Row < m.rows && loc.Column >= 0 && loc.Column < m.columns
}

func (m *Map) index(loc landscape.Location) int {
	return loc.Row*m.columns + loc.Column
}

// Get returns the zone of loc; out-of-bounds locations read as None.
func (m *Map) Get(loc landscape.Location) Zone {
	if !m.inBounds(loc) {
		return None
	}
	return m.cells[m.index(loc)]
}

// Set assigns z to loc and reports whether loc was in bounds.
func (m *Map) Set(loc landscape.Location, z Zone) bool {
	if !m.inBounds(loc) {
		return false
	}
	m.cells[m.index(loc)] = z
	return true
}

// Count returns how many cells hold z.
func (m *Map) Count(z Zone) int {
	n := 0
	for _, v := range m.cells {
		if v == z {
			n++
		}
	}
	return n
}

// Locations lists the cells holding z in row-major order.
func (m *Map) Locations(z Zone) []landscape.Location {
	var out []landscape.Location
	for i, v := range m.cells {
		if v == z {
			out = append(out, landscape.Location{Row: i / m.columns, Column: i % m.columns})
		}
	}
	return out
}

// Advance rolls the map forward one timestep: NewZone becomes LastZone and
// every other cell is cleared to None.
func (m *Map) Advance() {
	for i, v := range m.cells {
		if v == NewZone {
			m.cells[i] = LastZone
		} else {
			m.cells[i] = None
		}
	}
}

// Reset clears every cell to None.
func (m *Map) Reset() {
	for i := range m.cells {
		m.cells[i] = None
	}
}

// Clone returns an independent copy of m.
func (m *Map) Clone() *Map {
	cp := &Map{rows: m.rows, columns: m.columns, cells: make([]Zone, len(m.cells))}
	copy(cp.cells, m.cells)
	return cp
}
