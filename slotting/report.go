package slotting

import (
	"fmt"
	"sort"
)

// SelectionRow is one line of the per-SKU selection + allocation table
// produced for downstream reporting and simulation collaborators.
type SelectionRow struct {
	PartNo                    string
	PartName                  string
	AnnualFrequency           int
	AnnualDemandVolumeM3      float64
	Viscosity                 float64
	AllocatedVolumeM3         float64
	BenefitMinPerYear         float64
	ReplenishmentTripsPerYear float64
}

// PlacementRow is one line of the per-SKU placement table.
type PlacementRow struct {
	PartNo         string
	CabinetID      int
	FloorID        int
	PositionID     string
	SubPosStartM   float64
	SubPosEndM     float64
	WidthNeededM   float64
	AffinityGroup  int
	AssociatedWith []string
}

// PositionID renders the canonical slot identifier, e.g. "C03F2".
func PositionID(cabinet, floor int) string {
	return fmt.Sprintf("C%02dF%d", cabinet, floor)
}

// SelectionTable returns the selection rows in viscosity rank order.
func (r *Result) SelectionTable() []SelectionRow {
	rows := make([]SelectionRow, 0, len(r.Selection.SKUs))
	for i := range r.Selection.SKUs {
		s := &r.Selection.SKUs[i]
		rows = append(rows, SelectionRow{
			PartNo:                    s.PartNo,
			PartName:                  s.PartName,
			AnnualFrequency:           s.AnnualFrequency,
			AnnualDemandVolumeM3:      s.DemandVolume(),
			Viscosity:                 s.Viscosity(),
			AllocatedVolumeM3:         s.AllocatedVolumeM3,
			BenefitMinPerYear:         s.BenefitMinPerYear,
			ReplenishmentTripsPerYear: s.ReplenishTripsPerYear,
		})
	}
	return rows
}

// PlacementTable returns the placement rows in placement order.
func (r *Result) PlacementTable() []PlacementRow {
	rows := make([]PlacementRow, 0, len(r.Placement.Placements))
	for i := range r.Placement.Placements {
		p := &r.Placement.Placements[i]
		rows = append(rows, PlacementRow{
			PartNo:         p.PartNo,
			CabinetID:      p.Cabinet,
			FloorID:        p.Floor,
			PositionID:     PositionID(p.Cabinet, p.Floor),
			SubPosStartM:   p.SubPosStartM,
			SubPosEndM:     p.SubPosEndM,
			WidthNeededM:   p.WidthNeededM,
			AffinityGroup:  p.GroupID,
			AssociatedWith: p.AssociatedWith,
		})
	}
	return rows
}

// Print displays the run summary: selection economics, exclusion counters,
// and the ergonomic load per floor.
func (s *Summary) Print() {
	fmt.Println("=== Slotting Summary ===")
	fmt.Printf("Candidates ranked      : %d\n", s.CandidateCount)
	fmt.Printf("Benefit peak           : %.1f min/year at n=%d\n", s.PeakBenefitMinPerYear, s.OptimalN)
	fmt.Printf("Selected (discretized) : %d (trimmed %d, width-capped %d)\n",
		s.SelectedCount, s.DiscretizationTrimmed, s.WidthCapped)
	fmt.Printf("Placed / unplaced      : %d / %d\n", s.PlacedCount, s.UnplacedCount)
	fmt.Printf("Affinity groups        : %d\n", s.AffinityGroupCount)
	fmt.Printf("Excluded upstream      : %d missing geometry, %d bad geometry, %d size-filtered, %d zero-demand\n",
		s.DroppedMissingGeometry, s.DroppedBadGeometry, s.SizeFiltered, s.ZeroDemandExcluded)

	floors := make([]int, 0, len(s.PerFloorFrequency))
	for f := range s.PerFloorFrequency {
		floors = append(floors, f)
	}
	sort.Ints(floors)
	for _, f := range floors {
		fmt.Printf("Floor %d picks/year     : %d\n", f, s.PerFloorFrequency[f])
	}
}
