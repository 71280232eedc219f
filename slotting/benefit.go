package slotting

import (
	"github.com/sirupsen/logrus"
)

// BenefitPoint is one sample of the benefit curve: the aggregate net benefit
// of stocking the top-n viscosity-ranked SKUs.
type BenefitPoint struct {
	N            int
	TotalBenefit float64 // minutes saved per year
}

// SelectedSKU is a candidate that made it into the fast-pick area, carrying
// its continuous volume allocation and per-SKU economics at the optimal n.
type SelectedSKU struct {
	SKU
	AllocatedVolumeM3     float64
	BenefitMinPerYear     float64
	ReplenishTripsPerYear float64
}

// Selection is the outcome of the benefit-peak search.
type Selection struct {
	SKUs     []SelectedSKU  // the top-OptimalN ranked SKUs, in rank order
	Curve    []BenefitPoint // benefit at every swept n
	OptimalN int
	Peak     float64 // total benefit at OptimalN, minutes per year
}

// FindOptimalN sweeps prefix sizes n = 1..min(len(ranked), MaxCandidateSweep)
// of the viscosity ranking. For each n it recomputes the full closed-form
// allocation and evaluates
//
//	benefit(n) = sum_i [ s*freq_i - Cr * D_i / volume_i(n) ]
//
// then returns the prefix with the highest benefit. The curve is not assumed
// unimodal, so the sweep is exhaustive: the true global maximum over the
// swept range wins, never the first local peak. Recomputing the allocation
// at every n is quadratic but the sweep is capped at a few hundred
// candidates; the naive form is kept for clarity.
func FindOptimalN(ranked []SKU, cfg Config) (*Selection, error) {
	if len(ranked) == 0 {
		return nil, ErrDegenerateInput
	}
	maxN := min(len(ranked), cfg.MaxCandidateSweep)
	v := cfg.SearchVolume()

	curve := make([]BenefitPoint, 0, maxN)
	for n := 1; n <= maxN; n++ {
		prefix := ranked[:n]
		volumes, err := Allocate(prefix, v)
		if err != nil {
			return nil, err
		}
		total := 0.0
		for i := range prefix {
			total += skuBenefit(&prefix[i], volumes[prefix[i].PartNo], cfg)
		}
		curve = append(curve, BenefitPoint{N: n, TotalBenefit: total})
	}

	best := argmaxCurve(curve)
	optimalN := curve[best].N

	// Rebuild the allocation at the winning n for the per-SKU outputs.
	volumes, err := Allocate(ranked[:optimalN], v)
	if err != nil {
		return nil, err
	}
	selected := make([]SelectedSKU, 0, optimalN)
	for i := range ranked[:optimalN] {
		s := ranked[i]
		vol := volumes[s.PartNo]
		selected = append(selected, SelectedSKU{
			SKU:                   s,
			AllocatedVolumeM3:     vol,
			BenefitMinPerYear:     skuBenefit(&s, vol, cfg),
			ReplenishTripsPerYear: s.DemandVolume() / vol,
		})
	}

	logrus.Infof("benefit: peak %.1f min/year at n=%d (swept 1..%d)",
		curve[best].TotalBenefit, optimalN, maxN)
	return &Selection{
		SKUs:     selected,
		Curve:    curve,
		OptimalN: optimalN,
		Peak:     curve[best].TotalBenefit,
	}, nil
}

// skuBenefit is the net annual time saved by stocking one SKU at the given
// volume: pick-time savings minus the cost of replenishment trips.
func skuBenefit(s *SKU, volume float64, cfg Config) float64 {
	return cfg.TimeSavedPerPickMin*float64(s.AnnualFrequency) -
		cfg.ReplenishmentTimeMin*(s.DemandVolume()/volume)
}

// argmaxCurve returns the index of the global maximum; the first index wins
// ties so the result is deterministic.
func argmaxCurve(curve []BenefitPoint) int {
	best := 0
	for i := 1; i < len(curve); i++ {
		if curve[i].TotalBenefit > curve[best].TotalBenefit {
			best = i
		}
	}
	return best
}
