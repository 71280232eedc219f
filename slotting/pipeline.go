package slotting

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Summary collects the run-level counters: how many SKUs entered, how many
// were excluded at each stage and why, and the economics at the benefit
// peak. A completed run always produces a placement table; these counts make
// any shortfall explainable instead of silently partial.
type Summary struct {
	CandidateCount int // eligible SKUs entering the ranking
	OptimalN       int // benefit-maximizing selection size
	SelectedCount  int // SKUs surviving discretization
	PlacedCount    int
	UnplacedCount  int

	DroppedMissingGeometry int
	DroppedBadGeometry     int
	SizeFiltered           int
	ZeroDemandExcluded     int
	DiscretizationTrimmed  int
	WidthCapped            int

	PeakBenefitMinPerYear float64
	AffinityGroupCount    int
	PerFloorFrequency     map[int]int
}

// Result is the full output of one pipeline run.
type Result struct {
	Selection *Selection
	Items     []Discretized
	Groups    *Grouping
	Placement *PlacementResult
	Summary   Summary
}

// Run executes the whole pipeline: aggregate -> rank -> benefit-peak search
// -> discretize -> affinity grouping -> placement. Per-SKU data problems are
// counted in the Summary and never abort the batch; only an invalid Config
// or a candidate pool that is empty by the time allocation runs returns an
// error.
func Run(txns []Transaction, geometry []Geometry, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	skus, aggStats := Aggregate(txns, geometry, cfg)
	ranked, zeroDemand := RankByViscosity(skus)
	if len(ranked) == 0 {
		return nil, fmt.Errorf("pipeline: no rankable candidates: %w", ErrDegenerateInput)
	}

	selection, err := FindOptimalN(ranked, cfg)
	if err != nil {
		return nil, fmt.Errorf("pipeline: benefit-peak search: %w", err)
	}

	items, discStats := Discretize(selection.SKUs, cfg)

	// The grouper sees only the SKUs that will actually be placed plus the
	// transaction history; it runs independently of the volume model.
	placeable := make([]SKU, len(items))
	for i := range items {
		placeable[i] = items[i].SKU
	}
	groups := BuildAffinityGroups(placeable, txns, cfg)

	layout := NewLayout(cfg, nil)
	placement := PlaceAll(items, groups, layout, cfg)

	res := &Result{
		Selection: selection,
		Items:     items,
		Groups:    groups,
		Placement: placement,
		Summary: Summary{
			CandidateCount:         len(ranked),
			OptimalN:               selection.OptimalN,
			SelectedCount:          len(items),
			PlacedCount:            len(placement.Placements),
			UnplacedCount:          len(placement.Unplaced),
			DroppedMissingGeometry: aggStats.MissingGeometry,
			DroppedBadGeometry:     aggStats.BadGeometry,
			SizeFiltered:           aggStats.SizeFiltered,
			ZeroDemandExcluded:     zeroDemand,
			DiscretizationTrimmed:  discStats.Trimmed,
			WidthCapped:            discStats.WidthCapped,
			PeakBenefitMinPerYear:  selection.Peak,
			AffinityGroupCount:     len(groups.Members),
			PerFloorFrequency:      placement.PerFloorFrequency,
		},
	}
	logrus.Infof("pipeline: selected %d SKUs, placed %d, %d unplaced",
		res.Summary.SelectedCount, res.Summary.PlacedCount, res.Summary.UnplacedCount)
	return res, nil
}
