// Command covegen generates the Pirate Cove macro world map, prints the
// diagnostic dump, and optionally exports a SQLite snapshot.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/at10ti0n/pirate-cove-roguelike/internal/biome"
	"github.com/at10ti0n/pirate-cove-roguelike/internal/export"
	"github.com/at10ti0n/pirate-cove-roguelike/internal/world"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := world.DefaultGenConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "map width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "map height in cells")
	flag.Int64Var(&cfg.Seed, "seed", 0, "world seed (0 = random)")
	flag.StringVar(&cfg.Noise, "noise", cfg.Noise, "noise backend: simplex or perlin")
	dbPath := flag.String("db", "", "optional SQLite snapshot path")
	flag.Parse()

	m, err := world.Generate(cfg)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	fmt.Print(m.RenderText())

	settlements := m.Settlements()
	totalPop := 0
	for _, c := range settlements {
		totalPop += c.Population
	}

	slog.Info("macro world generated",
		"seed", m.Seed,
		"cells", m.CellCount(),
		"land", len(m.LandCells()),
		"water", len(m.WaterCells()),
		"settlements", len(settlements),
		"population", humanize.Comma(int64(totalPop)),
	)

	biomes := m.BiomeCounts()
	for b := biome.Ocean; b <= biome.Lake; b++ {
		if n := biomes[b]; n > 0 {
			slog.Info("biome", "type", b.String(), "count", n)
		}
	}
	landforms := m.LandformCounts()
	for l := world.LandformOcean; l <= world.LandformPeninsula; l++ {
		if n := landforms[l]; n > 0 {
			slog.Info("landform", "type", l.String(), "count", n)
		}
	}

	if *dbPath != "" {
		db, err := export.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open snapshot database", "error", err)
			os.Exit(1)
		}
		if err := db.SaveMap(m); err != nil {
			db.Close()
			slog.Error("snapshot export failed", "error", err)
			os.Exit(1)
		}
		db.Close()
		slog.Info("snapshot written", "path", *dbPath)
	}
}
