// River tracing: steepest-descent walks from highland sources down to the
// sea, recording flow-entry directions per cell.
// See design doc Section 3.2.
package world

import "github.com/at10ti0n/pirate-cove-roguelike/internal/biome"

const (
	riverSourceElevation = 0.6
	riverSourceMoisture  = 0.4
	maxRivers            = 10 // design limit, not a quality filter
	maxRiverSteps        = 50 // hard cap per trace
)

// traceRivers collects qualifying source cells in row-major order and
// traces at most maxRivers of them.
func (m *MacroMap) traceRivers() {
	var sources []*MacroCell
	m.eachCell(func(c *MacroCell) {
		if c.Elevation >= riverSourceElevation &&
			c.Moisture >= riverSourceMoisture &&
			(c.Biome == biome.Mountains || c.Biome == biome.Hills) {
			sources = append(sources, c)
		}
	})

	if len(sources) > maxRivers {
		sources = sources[:maxRivers]
	}

	for _, src := range sources {
		m.traceRiver(src)
	}
}

// traceRiver walks the steepest descent from a source cell. Each step
// marks the current cell as carrying the river and records which edge the
// flow leaves through; the trace ends when the chosen next cell is below
// sea level (the river reached the ocean), was already visited, is not
// strictly lower, or does not exist.
func (m *MacroMap) traceRiver(source *MacroCell) {
	current := source
	visited := make(map[Coord]bool)

	for step := 0; step < maxRiverSteps; step++ {
		visited[Coord{X: current.X, Y: current.Y}] = true
		current.HasRiver = true

		// First strictly-lowest neighbor in enumeration order wins ties.
		var next *MacroCell
		for _, n := range m.Neighbors(current.X, current.Y, 1) {
			if next == nil || n.Elevation < next.Elevation {
				next = n
			}
		}

		if next == nil ||
			visited[Coord{X: next.X, Y: next.Y}] ||
			next.Elevation >= current.Elevation ||
			next.Elevation < m.SeaLevel {
			return
		}

		current.RiverEntrySides.Put(stepDirection(next.X-current.X, next.Y-current.Y))
		current = next
	}
}

// stepDirection labels the edge a flow step crosses. Horizontal
// displacement is checked before vertical; the name is the edge as the
// downstream cell sees it.
func stepDirection(dx, dy int) Direction {
	switch {
	case dx > 0:
		return West
	case dx < 0:
		return East
	case dy > 0:
		return North
	default:
		return South
	}
}
