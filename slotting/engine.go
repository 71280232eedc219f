package slotting

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// familyPrefixLen is the shared part-number prefix length that defines a
// product family for the colocation tier.
const familyPrefixLen = 5

// widthEpsilon absorbs floating-point drift when comparing a required width
// against remaining slot width.
const widthEpsilon = 1e-9

// Placement records where one SKU ended up: a contiguous sub-range of one
// (cabinet, floor) slot's width.
type Placement struct {
	PartNo         string
	Cabinet        int
	Floor          int
	SubPosStartM   float64
	SubPosEndM     float64
	WidthNeededM   float64
	GroupID        int      // 0 = not in an affinity group
	AssociatedWith []string // other members of the affinity group
}

// PlacementResult is the output of the slotting engine: one placement per
// successfully placed SKU plus the parts it could not fit anywhere.
type PlacementResult struct {
	Placements []Placement
	Unplaced   []string

	// PerFloorFrequency aggregates annual pick frequency by floor, for
	// reporting the ergonomic load distribution.
	PerFloorFrequency map[int]int
}

// shelfState is the engine's only mutable state: remaining width per
// (cabinet, floor) slot and the placements made so far. It is threaded
// explicitly through the placement search; nothing global.
type shelfState struct {
	layout    *Layout
	remaining [][]float64           // [cabinet-1][floor-1]
	byPart    map[string]*Placement // placed SKUs by part number
	result    *PlacementResult
}

func newShelfState(layout *Layout) *shelfState {
	remaining := make([][]float64, layout.NumCabinets)
	for c := range remaining {
		remaining[c] = make([]float64, layout.NumFloors)
		for f := range remaining[c] {
			remaining[c][f] = layout.SlotWidthM
		}
	}
	return &shelfState{
		layout:    layout,
		remaining: remaining,
		byPart:    make(map[string]*Placement),
		result: &PlacementResult{
			PerFloorFrequency: make(map[int]int),
		},
	}
}

// tryPlace puts the SKU into (cabinet, floor) if the slot still has room.
// Sub-positions advance first-fit: the next SKU starts where the previous
// one ended, and nothing is ever re-packed.
func (st *shelfState) tryPlace(item *Discretized, cabinet, floor, groupID int, associated []string) bool {
	rem := st.remaining[cabinet-1][floor-1]
	if rem+widthEpsilon < item.WidthNeededM {
		return false
	}
	start := st.layout.SlotWidthM - rem
	p := Placement{
		PartNo:         item.PartNo,
		Cabinet:        cabinet,
		Floor:          floor,
		SubPosStartM:   start,
		SubPosEndM:     start + item.WidthNeededM,
		WidthNeededM:   item.WidthNeededM,
		GroupID:        groupID,
		AssociatedWith: associated,
	}
	st.remaining[cabinet-1][floor-1] = rem - item.WidthNeededM
	st.result.Placements = append(st.result.Placements, p)
	st.byPart[item.PartNo] = &st.result.Placements[len(st.result.Placements)-1]
	st.result.PerFloorFrequency[floor] += item.AnnualFrequency
	return true
}

// maxRemaining is the single largest remaining width anywhere on the grid.
func (st *shelfState) maxRemaining() float64 {
	best := 0.0
	for c := range st.remaining {
		for f := range st.remaining[c] {
			if st.remaining[c][f] > best {
				best = st.remaining[c][f]
			}
		}
	}
	return best
}

// PlaceAll assigns every discretized SKU to a concrete slot.
//
// Processing order: SKUs in a non-trivial affinity group first, then
// descending annual pick frequency so heavily picked SKUs reach favorable
// floors before the rest; part number breaks remaining ties.
//
// Each SKU tries three tiers in strict order, first success wins:
//
//  1. group colocation: an already placed group member's exact slot, then
//     adjacent cabinets at that member's floor
//  2. family colocation: an already placed same-prefix SKU's cabinet across
//     all floors in ergonomic order, then its adjacent cabinets likewise
//  3. standard scan: floor-priority crossed with cabinet index, or walking
//     distance crossed with floor-priority, per cfg.Ordering
//
// A SKU wider than the largest remaining width anywhere is unplaceable and
// recorded as such; the check is evaluated fresh per SKU because widths are
// not monotone along the processing order. Placement failures never abort
// the run.
func PlaceAll(items []Discretized, groups *Grouping, layout *Layout, cfg Config) *PlacementResult {
	ordered := make([]Discretized, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		_, gi := groups.GroupID[ordered[i].PartNo]
		_, gj := groups.GroupID[ordered[j].PartNo]
		if gi != gj {
			return gi // grouped SKUs go first
		}
		if ordered[i].AnnualFrequency != ordered[j].AnnualFrequency {
			return ordered[i].AnnualFrequency > ordered[j].AnnualFrequency
		}
		return ordered[i].PartNo < ordered[j].PartNo
	})

	st := newShelfState(layout)
	for i := range ordered {
		item := &ordered[i]
		if st.maxRemaining()+widthEpsilon < item.WidthNeededM {
			// No slot anywhere can take this SKU.
			st.result.Unplaced = append(st.result.Unplaced, item.PartNo)
			continue
		}
		if !placeOne(st, item, groups, layout, cfg) {
			st.result.Unplaced = append(st.result.Unplaced, item.PartNo)
		}
	}

	if n := len(st.result.Unplaced); n > 0 {
		logrus.Warnf("slotting: %d SKUs left unplaced", n)
	}
	logrus.Infof("slotting: placed %d of %d SKUs", len(st.result.Placements), len(items))
	return st.result
}

func placeOne(st *shelfState, item *Discretized, groups *Grouping, layout *Layout, cfg Config) bool {
	groupID := groups.GroupID[item.PartNo]
	associated := groups.Associated(item.PartNo)

	// Tier 1: colocate with an already placed affinity-group member.
	if groupID != 0 {
		for _, member := range groups.Members[groupID] {
			mp, placed := st.byPart[member]
			if !placed || member == item.PartNo {
				continue
			}
			if st.tryPlace(item, mp.Cabinet, mp.Floor, groupID, associated) {
				return true
			}
			for _, adj := range layout.AdjacentCabinets(mp.Cabinet) {
				if st.tryPlace(item, adj, mp.Floor, groupID, associated) {
					return true
				}
			}
		}
	}

	// Tier 2: colocate with an already placed product-family sibling.
	if sibling := st.familySibling(item.PartNo); sibling != nil {
		cabinets := append([]int{sibling.Cabinet}, layout.AdjacentCabinets(sibling.Cabinet)...)
		for _, cab := range cabinets {
			for _, floor := range layout.FloorPriority {
				if st.tryPlace(item, cab, floor, groupID, associated) {
					return true
				}
			}
		}
	}

	// Tier 3: standard scan.
	switch cfg.Ordering {
	case OrderWalkingDistance:
		for _, cab := range layout.CabinetsByWalkingDistance() {
			for _, floor := range layout.FloorPriority {
				if st.tryPlace(item, cab, floor, groupID, associated) {
					return true
				}
			}
		}
	default: // OrderFloorPriority
		for _, floor := range layout.FloorPriority {
			for cab := 1; cab <= layout.NumCabinets; cab++ {
				if st.tryPlace(item, cab, floor, groupID, associated) {
					return true
				}
			}
		}
	}
	return false
}

// familySibling returns the earliest-placed SKU sharing the part-number
// prefix, or nil. Placement order is deterministic, so so is the sibling.
func (st *shelfState) familySibling(partNo string) *Placement {
	prefix := familyPrefix(partNo)
	if prefix == "" {
		return nil
	}
	for i := range st.result.Placements {
		p := &st.result.Placements[i]
		if p.PartNo != partNo && familyPrefix(p.PartNo) == prefix {
			return p
		}
	}
	return nil
}

// familyPrefix is the leading segment of a part number that identifies its
// product family: everything before the first separator, or the first
// familyPrefixLen characters when the number has no separator.
func familyPrefix(partNo string) string {
	if i := strings.IndexAny(partNo, "-_/"); i > 0 {
		return partNo[:i]
	}
	if len(partNo) < familyPrefixLen {
		return ""
	}
	return partNo[:familyPrefixLen]
}
