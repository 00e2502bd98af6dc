// Macro world generation: nine sequential passes over one shared grid.
// Elevation, temperature, and moisture fields first, then climate, biome,
// and landform classification, then rivers, sea borders, and settlements.
// See design doc Section 3.2.
package world

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/at10ti0n/pirate-cove-roguelike/internal/biome"
	"github.com/at10ti0n/pirate-cove-roguelike/internal/noise"
)

// Noise backend names accepted by GenConfig.Noise.
const (
	NoiseSimplex = "simplex"
	NoisePerlin  = "perlin"
)

// GenConfig holds macro map generation parameters.
type GenConfig struct {
	Width  int
	Height int
	Seed   int64 // 0 = fresh random seed

	SeaLevel       float64 // elevation threshold for ocean
	LandRatio      float64 // reserved for land-fraction tuning
	IslandClusters int     // reserved for multi-cluster landmass shaping

	Noise      string           // NoiseSimplex or NoisePerlin
	Classifier biome.Classifier // nil = biome.Determine
}

// DefaultGenConfig returns the standard overworld configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:          32,
		Height:         16,
		Seed:           0,
		SeaLevel:       0.3,
		LandRatio:      0.6,
		IslandClusters: 5,
		Noise:          NoiseSimplex,
		Classifier:     biome.Determine,
	}
}

// Elevation octave schedule: base frequency 0.02 doubling to 0.16, with
// amplitudes halving from 1.0 to 0.125.
const (
	elevationOctaves     = 4
	elevationFrequency   = 0.02
	elevationPersistence = 0.5
)

const (
	elevationCooling = 0.3 // temperature lost per unit of elevation
	temperatureNoise = 0.2 // full width of the rng jitter on temperature
	moistureNoise    = 0.4 // full width of the rng spread on base moisture
	oceanBonusScale  = 0.3 // maximum moisture bonus from ocean proximity
)

// Generate creates a complete macro world map, running every pass in fixed
// order before returning. The effective seed is retrievable from the map.
func Generate(cfg GenConfig) (*MacroMap, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("world: invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	backend := cfg.Noise
	if backend == "" {
		backend = NoiseSimplex
	}
	var src noise.Source
	switch backend {
	case NoiseSimplex:
		src = noise.NewSimplex(seed)
	case NoisePerlin:
		src = noise.NewPerlin(seed)
	default:
		return nil, fmt.Errorf("world: unknown noise backend %q", cfg.Noise)
	}

	classify := cfg.Classifier
	if classify == nil {
		classify = biome.Determine
	}

	m := &MacroMap{
		Width:          cfg.Width,
		Height:         cfg.Height,
		Seed:           seed,
		Noise:          backend,
		SeaLevel:       cfg.SeaLevel,
		LandRatio:      cfg.LandRatio,
		IslandClusters: cfg.IslandClusters,
		rng:            rand.New(rand.NewSource(seed)),
		cells:          make(map[Coord]*MacroCell, cfg.Width*cfg.Height),
	}

	m.genElevation(noise.NewOctave(src, elevationOctaves, elevationFrequency, elevationPersistence))
	m.genTemperature()
	m.genMoisture()
	m.assignClimates()
	m.assignBiomes(classify)
	m.classifyLandforms()
	m.traceRivers()
	m.markSeaBorders()
	m.placeSettlements()

	return m, nil
}

// genElevation builds the base elevation field: multi-octave noise damped
// radially from the grid center so the landmass sits centrally and the
// border trends to ocean.
func (m *MacroMap) genElevation(src noise.Source) {
	cx, cy := m.Width/2, m.Height/2
	maxDist := math.Sqrt(float64(cx*cx + cy*cy))

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			elev := src.Eval2(float64(x), float64(y))

			dist := 0.0
			if maxDist > 0 {
				dx, dy := float64(x-cx), float64(y-cy)
				dist = math.Sqrt(dx*dx+dy*dy) / maxDist
			}
			elev *= 1 - dist*dist

			// Bias the overall land fraction against the sea level.
			elev -= 0.5 - m.SeaLevel

			m.cells[Coord{X: x, Y: y}] = &MacroCell{
				X:               x,
				Y:               y,
				Elevation:       elev,
				RiverEntrySides: mapset.New[Direction](),
			}
		}
	}
}

// genTemperature derives temperature from latitude, cooled by elevation,
// with a small rng jitter.
func (m *MacroMap) genTemperature() {
	half := m.Height / 2
	for y := 0; y < m.Height; y++ {
		latitude := 0.0
		if half > 0 {
			latitude = math.Abs(float64(y-half)) / float64(half)
		}
		for x := 0; x < m.Width; x++ {
			c := m.cells[Coord{X: x, Y: y}]
			t := 1 - latitude
			t -= math.Max(0, c.Elevation) * elevationCooling
			t += (m.rng.Float64() - 0.5) * temperatureNoise
			c.Temperature = clamp01(t)
		}
	}
}

// genMoisture derives moisture from a random base plus an ocean-proximity
// bonus that fades with both ring distance and elevation.
func (m *MacroMap) genMoisture() {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := m.cells[Coord{X: x, Y: y}]
			moist := 0.5 + (m.rng.Float64()-0.5)*moistureNoise
			if d, ok := m.OceanDistance(x, y); ok {
				bonus := (1 - float64(d)/oceanSearchRings) * oceanBonusScale
				moist += bonus * math.Max(0, 1-c.Elevation)
			}
			c.Moisture = clamp01(moist)
		}
	}
}

// assignClimates applies the climate decision table to every cell.
func (m *MacroMap) assignClimates() {
	m.eachCell(func(c *MacroCell) {
		c.Climate = climateFor(c.Temperature, c.Moisture)
	})
}

// climateFor is the climate decision table. Branch order matters: warm
// bands win first, then aridity, then the arctic cutoff.
func climateFor(temperature, moisture float64) biome.Climate {
	switch {
	case temperature >= 0.7:
		return biome.Tropical
	case temperature >= 0.5:
		return biome.Temperate
	case moisture < 0.3:
		return biome.Arid
	case temperature < 0.3:
		return biome.Arctic
	default:
		return biome.Cold
	}
}

// assignBiomes calls the classifier once per cell, after elevation,
// moisture, and temperature are all finalized.
func (m *MacroMap) assignBiomes(classify biome.Classifier) {
	m.eachCell(func(c *MacroCell) {
		c.Biome = classify(c.Elevation, c.Moisture, c.Temperature)
	})
}

// classifyLandforms buckets each cell by how much of its 8-connected
// neighborhood is water. The count boundaries are a fixed tie-break table.
func (m *MacroMap) classifyLandforms() {
	m.eachCell(func(c *MacroCell) {
		if c.Elevation < m.SeaLevel {
			c.Landform = LandformOcean
			return
		}

		water, land := 0, 0
		for _, n := range m.Neighbors(c.X, c.Y, 1) {
			if n.Elevation < m.SeaLevel {
				water++
			} else {
				land++
			}
		}

		switch {
		case water == 0:
			c.Landform = LandformContinent
		case water <= 2:
			c.Landform = LandformPeninsula
		case water == 3:
			c.Landform = LandformArchipelago
		case land > 0:
			c.Landform = LandformAtoll
		default:
			c.Landform = LandformIsland
		}
	})
}

// markSeaBorders flags land cells with at least one below-sea-level
// neighbor.
func (m *MacroMap) markSeaBorders() {
	m.eachCell(func(c *MacroCell) {
		if c.Elevation < m.SeaLevel {
			return
		}
		for _, n := range m.Neighbors(c.X, c.Y, 1) {
			if n.Elevation < m.SeaLevel {
				c.IsSeaBorder = true
				return
			}
		}
	})
}

// BiomeCounts returns the biome distribution of the map.
func (m *MacroMap) BiomeCounts() map[biome.Biome]int {
	counts := make(map[biome.Biome]int)
	m.eachCell(func(c *MacroCell) {
		counts[c.Biome]++
	})
	return counts
}

// LandformCounts returns the landform distribution of the map.
func (m *MacroMap) LandformCounts() map[Landform]int {
	counts := make(map[Landform]int)
	m.eachCell(func(c *MacroCell) {
		counts[c.Landform]++
	})
	return counts
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
