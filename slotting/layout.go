package slotting

import "sort"

// cabinetsPerRow is the width of one cabinet row in the reference layout:
// four rows of six cabinets, split 3|3 by the central aisle where the picker
// start point sits (between cabinets 3 and 4).
const cabinetsPerRow = 6

// defaultWalkingDistanceM is the measured one-way walking distance from the
// start point to each cabinet, in meters.
var defaultWalkingDistanceM = map[int]float64{
	1: 4.95, 2: 2.97, 3: 0.99, 4: 0.99, 5: 2.97, 6: 4.95,
	7: 7.63, 8: 5.65, 9: 3.67, 10: 3.67, 11: 5.65, 12: 7.63,
	13: 10.99, 14: 9.01, 15: 7.03, 16: 7.03, 17: 9.01, 18: 10.99,
	19: 10.31, 20: 8.33, 21: 6.35, 22: 6.35, 23: 8.33, 24: 10.31,
}

// AverageWalkingDistanceM covers cabinets outside the measured table, using
// the grid-average distance from the reference data.
const AverageWalkingDistanceM = 5.7

// Layout is the fixed physical cabinet grid: identifiers, slot geometry,
// the cabinet adjacency relation, and walking distances. Static for the
// life of a run.
type Layout struct {
	NumCabinets int
	NumFloors   int
	SlotWidthM  float64

	// FloorPriority lists floors best-first: waist height, then
	// progressively more awkward reaches.
	FloorPriority []int

	walkingDistance map[int]float64
}

// NewLayout builds the layout described by cfg. Walking distances default to
// the measured reference table; override entries may be supplied for
// non-standard grids (nil keeps the defaults).
func NewLayout(cfg Config, walkingDistance map[int]float64) *Layout {
	l := &Layout{
		NumCabinets:     cfg.NumCabinets,
		NumFloors:       cfg.NumFloorsPerCabinet,
		SlotWidthM:      cfg.SlotWidthM,
		FloorPriority:   append([]int(nil), cfg.FloorPriority...),
		walkingDistance: make(map[int]float64, cfg.NumCabinets),
	}
	for c := 1; c <= cfg.NumCabinets; c++ {
		if d, ok := walkingDistance[c]; ok {
			l.walkingDistance[c] = d
		} else if d, ok := defaultWalkingDistanceM[c]; ok {
			l.walkingDistance[c] = d
		} else {
			l.walkingDistance[c] = AverageWalkingDistanceM
		}
	}
	return l
}

// WalkingDistance is the one-way distance from the picker start point to the
// cabinet, in meters.
func (l *Layout) WalkingDistance(cabinet int) float64 {
	return l.walkingDistance[cabinet]
}

// Adjacent reports whether two cabinets are physically adjacent: same row,
// index differing by exactly one, and not separated by the central aisle.
// Pairs across the back-to-back row boundary (consecutive rows share no
// walkable face) are never adjacent.
func (l *Layout) Adjacent(a, b int) bool {
	if a < 1 || b < 1 || a > l.NumCabinets || b > l.NumCabinets || a == b {
		return false
	}
	if (a-1)/cabinetsPerRow != (b-1)/cabinetsPerRow {
		return false
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo != 1 {
		return false
	}
	// The central aisle runs between in-row positions 3 and 4.
	return (lo-1)%cabinetsPerRow+1 != cabinetsPerRow/2
}

// AdjacentCabinets lists the cabinets adjacent to c, nearest walking
// distance first with cabinet id as tiebreak, so placement scans them in a
// deterministic order.
func (l *Layout) AdjacentCabinets(c int) []int {
	var adj []int
	for other := 1; other <= l.NumCabinets; other++ {
		if l.Adjacent(c, other) {
			adj = append(adj, other)
		}
	}
	sort.Slice(adj, func(i, j int) bool {
		di, dj := l.WalkingDistance(adj[i]), l.WalkingDistance(adj[j])
		if di != dj {
			return di < dj
		}
		return adj[i] < adj[j]
	})
	return adj
}

// CabinetsByWalkingDistance lists all cabinets in ascending walking distance
// order, cabinet id as tiebreak.
func (l *Layout) CabinetsByWalkingDistance() []int {
	cabs := make([]int, l.NumCabinets)
	for i := range cabs {
		cabs[i] = i + 1
	}
	sort.Slice(cabs, func(i, j int) bool {
		di, dj := l.WalkingDistance(cabs[i]), l.WalkingDistance(cabs[j])
		if di != dj {
			return di < dj
		}
		return cabs[i] < cabs[j]
	})
	return cabs
}
