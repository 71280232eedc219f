package slotting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_Adjacency(t *testing.T) {
	l := NewLayout(testConfig(), nil)

	tests := []struct {
		a, b int
		want bool
		why  string
	}{
		{1, 2, true, "neighbors in the first half-row"},
		{2, 1, true, "adjacency is symmetric"},
		{4, 5, true, "neighbors in the second half-row"},
		{3, 4, false, "the central aisle separates positions 3 and 4"},
		{9, 10, false, "the aisle splits every row, not just the first"},
		{21, 22, false, "aisle split in the last row"},
		{6, 7, false, "row boundary: cabinet 6 ends row one, 7 starts row two"},
		{5, 6, true, "neighbors at the far end of the first row"},
		{8, 14, false, "back-to-back rows share no walkable face"},
		{1, 3, false, "index gap of two"},
		{5, 5, false, "a cabinet is not adjacent to itself"},
		{0, 1, false, "ids below the grid"},
		{24, 25, false, "ids beyond the grid"},
	}
	for _, tc := range tests {
		if got := l.Adjacent(tc.a, tc.b); got != tc.want {
			t.Errorf("Adjacent(%d, %d) = %v, want %v (%s)", tc.a, tc.b, got, tc.want, tc.why)
		}
	}
}

func TestLayout_AdjacencyIsSymmetric(t *testing.T) {
	l := NewLayout(testConfig(), nil)
	for a := 1; a <= l.NumCabinets; a++ {
		for b := 1; b <= l.NumCabinets; b++ {
			if l.Adjacent(a, b) != l.Adjacent(b, a) {
				t.Errorf("Adjacent(%d, %d) != Adjacent(%d, %d)", a, b, b, a)
			}
		}
	}
}

func TestLayout_AdjacentCabinetsOrderedByDistance(t *testing.T) {
	l := NewLayout(testConfig(), nil)

	// Cabinet 2 neighbors 1 (4.95 m) and 3 (0.99 m): nearest first.
	assert.Equal(t, []int{3, 1}, l.AdjacentCabinets(2))
	// Cabinet 1 sits at a row end with a single neighbor.
	assert.Equal(t, []int{2}, l.AdjacentCabinets(1))
	// Cabinet 3 borders the aisle: only cabinet 2 is reachable.
	assert.Equal(t, []int{2}, l.AdjacentCabinets(3))
}

func TestLayout_CabinetsByWalkingDistance(t *testing.T) {
	l := NewLayout(testConfig(), nil)
	cabs := l.CabinetsByWalkingDistance()

	require.Len(t, cabs, l.NumCabinets)
	for i := 1; i < len(cabs); i++ {
		di, dj := l.WalkingDistance(cabs[i-1]), l.WalkingDistance(cabs[i])
		if di > dj {
			t.Fatalf("order broken at %d: %v (%.2f m) before %v (%.2f m)",
				i, cabs[i-1], di, cabs[i], dj)
		}
		if di == dj && cabs[i-1] > cabs[i] {
			t.Fatalf("tie at %.2f m not broken by cabinet id: %d before %d", di, cabs[i-1], cabs[i])
		}
	}
	// The aisle-front cabinets 3 and 4 are nearest at 0.99 m each.
	assert.Equal(t, []int{3, 4}, cabs[:2])
}

func TestLayout_WalkingDistanceOverridesAndFallback(t *testing.T) {
	// GIVEN a grid larger than the measured table with one override
	cfg := testConfig()
	cfg.NumCabinets = 26
	l := NewLayout(cfg, map[int]float64{1: 12.5})

	assert.InDelta(t, 12.5, l.WalkingDistance(1), 1e-12, "override wins over the table")
	assert.InDelta(t, 2.97, l.WalkingDistance(2), 1e-12, "table value kept")
	assert.InDelta(t, AverageWalkingDistanceM, l.WalkingDistance(25), 1e-12,
		"cabinets outside the table fall back to the grid average")
}
