// Settlement placement: scores eligible land cells and assigns population
// and wealth from the map's seeded generator.
// See design doc Section 3.3.
package world

import (
	"sort"

	"github.com/at10ti0n/pirate-cove-roguelike/internal/biome"
)

const (
	settlementBasePopMin = 50
	settlementBasePopMax = 300
	seaBorderPopFactor   = 1.5
	riverPopFactor       = 1.3
)

// placeSettlements assigns a settlement to every eligible cell. The score
// sort is a priority order only: the best sites draw population first, but
// no candidate is dropped and no spacing rule applies.
func (m *MacroMap) placeSettlements() {
	var candidates []*MacroCell
	m.eachCell(func(c *MacroCell) {
		if c.Elevation < m.SeaLevel {
			return
		}
		if c.Biome != biome.Grassland && c.Biome != biome.Forest && c.Biome != biome.Beach {
			return
		}
		if !c.IsSeaBorder && !c.HasRiver {
			return
		}
		candidates = append(candidates, c)
	})

	// Stable so that equal scores keep row-major order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return siteScore(candidates[i]) > siteScore(candidates[j])
	})

	for _, c := range candidates {
		pop := float64(settlementBasePopMin + m.rng.Intn(settlementBasePopMax-settlementBasePopMin+1))
		if c.IsSeaBorder {
			pop *= seaBorderPopFactor
		}
		if c.HasRiver {
			pop *= riverPopFactor
		}
		c.Population = int(pop)
		c.Wealth = float64(c.Population) * (1 + m.rng.Float64())
	}
}

// siteScore ranks settlement candidates: elevation plus a flat coastal
// bonus.
func siteScore(c *MacroCell) float64 {
	s := c.Elevation
	if c.IsSeaBorder {
		s += 0.5
	}
	return s
}
