package world

import (
	"fmt"
	"strings"

	"github.com/at10ti0n/pirate-cove-roguelike/internal/biome"
)

// RenderText returns the diagnostic glyph dump of the map, one glyph per
// cell. Purely for human inspection; it never mutates the map and carries
// no data contract.
func (m *MacroMap) RenderText() string {
	var b strings.Builder
	border := strings.Repeat("=", m.Width+2)

	fmt.Fprintf(&b, "Macro Map (%dx%d):\n", m.Width, m.Height)
	b.WriteString(border)
	b.WriteByte('\n')

	for y := 0; y < m.Height; y++ {
		b.WriteByte('|')
		for x := 0; x < m.Width; x++ {
			b.WriteRune(consoleGlyph(biome.Glyph(m.cells[Coord{X: x, Y: y}].Biome)))
		}
		b.WriteString("|\n")
	}

	b.WriteString(border)
	b.WriteByte('\n')
	b.WriteString("Legend: ~ Ocean, . Land, ^ Hills, M Mountains, T Forest, S Swamp\n")
	return b.String()
}

// consoleGlyph substitutes ASCII for glyphs some terminals render
// double-width.
func consoleGlyph(g rune) rune {
	switch g {
	case '♠':
		return 'T'
	case '▲':
		return 'M'
	case '≈':
		return 'S'
	}
	return g
}
