// Package world implements the macro-scale overworld synthesizer: a
// fixed-size grid of cells annotated with elevation, climate, biome,
// landform, rivers, and settlements, generated deterministically from a
// seed in nine sequential passes.
// See design doc Section 3.
package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/at10ti0n/pirate-cove-roguelike/internal/biome"
)

// Coord identifies a macro cell by grid position.
type Coord struct {
	X int
	Y int
}

// Direction names the edge of a cell a river flows through.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Landform classifies a land cell by the water content of its 8-connected
// neighborhood. Below sea level it is always LandformOcean.
type Landform uint8

const (
	LandformOcean Landform = iota
	LandformIsland
	LandformArchipelago
	LandformContinent
	LandformAtoll
	LandformPeninsula
)

func (l Landform) String() string {
	switch l {
	case LandformOcean:
		return "ocean"
	case LandformIsland:
		return "island"
	case LandformArchipelago:
		return "archipelago"
	case LandformContinent:
		return "continent"
	case LandformAtoll:
		return "atoll"
	case LandformPeninsula:
		return "peninsula"
	default:
		return "unknown"
	}
}

// MacroCell is one unit of the overworld grid. Cells are mutated only by
// the pass currently executing; once Generate returns, the grid is
// read-only.
type MacroCell struct {
	X int
	Y int

	Elevation   float64 // unitless; < sea level means water
	Moisture    float64 // [0, 1]
	Temperature float64 // [0, 1]

	Climate  biome.Climate
	Biome    biome.Biome
	Landform Landform

	HasRiver        bool
	RiverEntrySides mapset.Set[Direction]
	// RiverSourcePos is reserved for river provenance tracking; no current
	// pass populates it.
	RiverSourcePos *Coord

	IsSeaBorder bool

	Population int     // zero unless a settlement was placed here
	Wealth     float64 // zero unless a settlement was placed here
}

// IsLand reports whether the cell sits at or above the given sea level.
func (c *MacroCell) IsLand(seaLevel float64) bool {
	return c.Elevation >= seaLevel
}
