// Package biome holds the biome and climate vocabularies shared by the
// macro map and its consumers, plus the default classifier and the glyph
// table used by the diagnostic map dump.
// See design doc Section 4.
package biome

// Biome is the terrain type assigned to a macro cell by the classifier.
type Biome uint8

const (
	Ocean Biome = iota
	Beach
	Grassland
	Forest
	Hills
	Mountains
	Swamp
	Desert
	Jungle
	Tundra
	River
	Lake
)

func (b Biome) String() string {
	switch b {
	case Ocean:
		return "ocean"
	case Beach:
		return "beach"
	case Grassland:
		return "grassland"
	case Forest:
		return "forest"
	case Hills:
		return "hills"
	case Mountains:
		return "mountains"
	case Swamp:
		return "swamp"
	case Desert:
		return "desert"
	case Jungle:
		return "jungle"
	case Tundra:
		return "tundra"
	case River:
		return "river"
	case Lake:
		return "lake"
	default:
		return "unknown"
	}
}

// Climate is the temperature/moisture zone of a macro cell, distinct from
// its biome. Assignment logic lives in the world generator; only the
// vocabulary is shared here.
type Climate uint8

const (
	Tropical Climate = iota
	Temperate
	Arid
	Cold
	Arctic
)

func (c Climate) String() string {
	switch c {
	case Tropical:
		return "tropical"
	case Temperate:
		return "temperate"
	case Arid:
		return "arid"
	case Cold:
		return "cold"
	case Arctic:
		return "arctic"
	default:
		return "unknown"
	}
}

// Classifier maps a cell's elevation, moisture, and temperature to a
// biome. The world generator calls it exactly once per cell, after all
// three fields are finalized.
type Classifier func(elevation, moisture, temperature float64) Biome

// Determine is the default classifier. Water cutoffs are aligned to the
// default sea level (0.3); land tiers split by temperature band first,
// then elevation and moisture within the band.
func Determine(elevation, moisture, temperature float64) Biome {
	if elevation < 0.3 {
		return Ocean
	}
	if elevation < 0.4 {
		return Beach
	}

	switch {
	case temperature < 0.2: // Cold
		return Tundra

	case temperature < 0.4: // Cool
		if moisture > 0.6 {
			return Forest
		}
		if moisture > 0.3 {
			return Grassland
		}
		return Hills

	case temperature < 0.7: // Temperate
		if elevation > 0.7 {
			return Mountains
		}
		if elevation > 0.5 {
			return Hills
		}
		if moisture > 0.7 {
			return Forest
		}
		if moisture > 0.6 {
			return Swamp
		}
		if moisture > 0.3 {
			return Grassland
		}
		return Desert

	default: // Hot
		if elevation > 0.6 {
			return Mountains
		}
		if moisture > 0.8 {
			return Jungle
		}
		if moisture > 0.6 {
			return Swamp
		}
		if moisture > 0.2 {
			return Grassland
		}
		return Desert
	}
}

// Glyph returns the default map glyph for a biome.
func Glyph(b Biome) rune {
	switch b {
	case Ocean, Desert, River, Lake:
		return '~'
	case Beach, Grassland, Tundra:
		return '.'
	case Forest, Jungle:
		return '♠'
	case Hills:
		return '^'
	case Mountains:
		return '▲'
	case Swamp:
		return '≈'
	default:
		return '.'
	}
}
