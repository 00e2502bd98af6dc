package world

import "testing"

// Landform classification over hand-built 5x5 elevation fields, checking
// the center cell against the neighbor-count table. L = land (0.8),
// W = water (0.1).
func TestLandformNeighborTable(t *testing.T) {
	const L, W = 0.8, 0.1

	cases := []struct {
		name  string
		field [][]float64
		want  Landform
	}{
		{
			name: "below sea level is ocean",
			field: [][]float64{
				{L, L, L, L, L},
				{L, L, L, L, L},
				{L, L, W, L, L},
				{L, L, L, L, L},
				{L, L, L, L, L},
			},
			want: LandformOcean,
		},
		{
			name: "no water neighbors is continent",
			field: [][]float64{
				{L, L, L, L, L},
				{L, L, L, L, L},
				{L, L, L, L, L},
				{L, L, L, L, L},
				{L, L, L, L, L},
			},
			want: LandformContinent,
		},
		{
			name: "one water neighbor is peninsula",
			field: [][]float64{
				{L, L, L, L, L},
				{L, W, L, L, L},
				{L, L, L, L, L},
				{L, L, L, L, L},
				{L, L, L, L, L},
			},
			want: LandformPeninsula,
		},
		{
			name: "two water neighbors is peninsula",
			field: [][]float64{
				{L, L, L, L, L},
				{L, W, W, L, L},
				{L, L, L, L, L},
				{L, L, L, L, L},
				{L, L, L, L, L},
			},
			want: LandformPeninsula,
		},
		{
			name: "three water neighbors is archipelago",
			field: [][]float64{
				{L, L, L, L, L},
				{L, W, W, W, L},
				{L, L, L, L, L},
				{L, L, L, L, L},
				{L, L, L, L, L},
			},
			want: LandformArchipelago,
		},
		{
			name: "four water neighbors with land is atoll",
			field: [][]float64{
				{L, L, L, L, L},
				{L, W, W, W, L},
				{L, W, L, L, L},
				{L, L, L, L, L},
				{L, L, L, L, L},
			},
			want: LandformAtoll,
		},
		{
			name: "seven water neighbors with land is atoll",
			field: [][]float64{
				{L, L, L, L, L},
				{L, W, W, W, L},
				{L, W, L, W, L},
				{L, W, W, L, L},
				{L, L, L, L, L},
			},
			want: LandformAtoll,
		},
		{
			name: "fully surrounded by water is island",
			field: [][]float64{
				{L, L, L, L, L},
				{L, W, W, W, L},
				{L, W, L, W, L},
				{L, W, W, W, L},
				{L, L, L, L, L},
			},
			want: LandformIsland,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMap(t, tc.field)
			m.classifyLandforms()
			if got := m.CellAt(2, 2).Landform; got != tc.want {
				t.Errorf("center landform = %v, want %v", got, tc.want)
			}
		})
	}
}

// A corner cell is classified against its existing neighbors only: three
// water neighbors hit the archipelago bucket even though the cell is
// entirely surrounded by water.
func TestLandformCornerCountsExistingNeighbors(t *testing.T) {
	const L, W = 0.8, 0.1
	m := newTestMap(t, [][]float64{
		{L, W, W},
		{W, W, W},
		{W, W, W},
	})
	m.classifyLandforms()

	if got := m.CellAt(0, 0).Landform; got != LandformArchipelago {
		t.Errorf("corner landform = %v, want archipelago", got)
	}
}
