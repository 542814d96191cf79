package zone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/outbreak/landscape"
	"github.com/katalvlaran/outbreak/zone"
)

// fill marks every 'N' in rows as NewZone and every 'L' as LastZone.
func fill(t *testing.T, rows []string) *zone.Map {
	t.Helper()
	m := newMap(t, len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			loc := landscape.Location{Row: r, Column: c}
			switch ch {
			case 'N':
				m.Set(loc, zone.NewZone)
			case 'L':
				m.Set(loc, zone.LastZone)
			}
		}
	}
	return m
}

func TestPatches(t *testing.T) {
	m := fill(t, []string{
		"NN..N",
		".N.N.",
		"L...N",
	})

	t.Run("Conn4", func(t *testing.T) {
		comps := m.Patches(zone.Conn4)
		assert.Len(t, comps, 4)
		assert.ElementsMatch(t,
			[]landscape.Location{{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 1, Column: 1}},
			comps[0])
		assert.Equal(t, []landscape.Location{{Row: 0, Column: 4}}, comps[1])
	})

	t.Run("Conn8", func(t *testing.T) {
		comps := m.Patches(zone.Conn8)
		assert.Len(t, comps, 2, "diagonals join the right-hand cells")
		assert.Len(t, comps[1], 3)
	})
}

func TestPatches_Empty(t *testing.T) {
	m := fill(t, []string{"L.", ".L"})
	assert.Empty(t, m.Patches(zone.Conn8))
}
