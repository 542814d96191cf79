package zone

import "github.com/katalvlaran/outbreak/landscape"

// Patches finds the contiguous groups of NewZone cells under conn.
// Components are returned in row-major order of their first cell; cells
// inside a component are in BFS discovery order.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for seen flags and output.
func (m *Map) Patches(conn Connectivity) [][]landscape.Location {
	offsets := landscape.Neighbors4()
	if conn == Conn8 {
		offsets = landscape.Neighbors8()
	}
	seen := make([]bool, len(m.cells))
	var comps [][]landscape.Location

	for i0, z := range m.cells {
		if z != NewZone || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []landscape.Location

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			uloc := landscape.Location{Row: u / m.columns, Column: u % m.columns}
			comp = append(comp, uloc)
			for _, d := range offsets {
				v := uloc.Add(d)
				if !m.inBounds(v) {
					continue
				}
				vi := m.index(v)
				if m.cells[vi] == NewZone && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
