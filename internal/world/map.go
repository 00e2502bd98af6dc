package world

import "math/rand"

// MacroMap owns the full generated grid. Construction via Generate runs
// every pass to completion before the map is returned; callers never see a
// partially generated grid.
type MacroMap struct {
	Width  int
	Height int
	Seed   int64  // effective seed, retrievable for reproduction
	Noise  string // effective noise backend; a seed only reproduces a map within one backend

	SeaLevel       float64
	LandRatio      float64 // reserved, not consulted by any pass
	IslandClusters int     // reserved, not consulted by any pass

	rng   *rand.Rand
	cells map[Coord]*MacroCell
}

// CellAt returns the cell at (x, y), or nil when the coordinate is out of
// range. Absence is a normal outcome at grid edges, not an error.
func (m *MacroMap) CellAt(x, y int) *MacroCell {
	return m.cells[Coord{X: x, Y: y}]
}

// CellCount returns the total number of cells in the grid.
func (m *MacroMap) CellCount() int {
	return len(m.cells)
}

// Neighbors returns all existing cells within Chebyshev distance radius of
// (x, y), excluding the center, in row-major offset order. Passes that
// break ties by enumeration order depend on this ordering.
func (m *MacroMap) Neighbors(x, y, radius int) []*MacroCell {
	var out []*MacroCell
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if c := m.CellAt(x+dx, y+dy); c != nil {
				out = append(out, c)
			}
		}
	}
	return out
}

// oceanSearchRings bounds the outward ring search in OceanDistance.
const oceanSearchRings = 5

// OceanDistance returns the minimum Chebyshev ring distance (1..5) from
// (x, y) at which a below-sea-level cell exists. The second return is
// false when no ocean lies within range.
func (m *MacroMap) OceanDistance(x, y int) (int, bool) {
	for d := 1; d <= oceanSearchRings; d++ {
		for dy := -d; dy <= d; dy++ {
			for dx := -d; dx <= d; dx++ {
				if chebyshev(dx, dy) != d {
					continue
				}
				c := m.CellAt(x+dx, y+dy)
				if c != nil && c.Elevation < m.SeaLevel {
					return d, true
				}
			}
		}
	}
	return 0, false
}

// LandCells returns every cell at or above sea level, in row-major order.
func (m *MacroMap) LandCells() []*MacroCell {
	var out []*MacroCell
	m.eachCell(func(c *MacroCell) {
		if c.Elevation >= m.SeaLevel {
			out = append(out, c)
		}
	})
	return out
}

// WaterCells returns every cell below sea level, in row-major order.
func (m *MacroMap) WaterCells() []*MacroCell {
	var out []*MacroCell
	m.eachCell(func(c *MacroCell) {
		if c.Elevation < m.SeaLevel {
			out = append(out, c)
		}
	})
	return out
}

// Settlements returns every cell with a placed settlement, in row-major
// order.
func (m *MacroMap) Settlements() []*MacroCell {
	var out []*MacroCell
	m.eachCell(func(c *MacroCell) {
		if c.Population > 0 {
			out = append(out, c)
		}
	})
	return out
}

// eachCell visits every cell in row-major order. The generation passes all
// iterate through it so rng consumption order is fixed.
func (m *MacroMap) eachCell(fn func(*MacroCell)) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			fn(m.cells[Coord{X: x, Y: y}])
		}
	}
}

func chebyshev(dx, dy int) int {
	adx, ady := abs(dx), abs(dy)
	if adx > ady {
		return adx
	}
	return ady
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
