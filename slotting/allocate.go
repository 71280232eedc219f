package slotting

import "math"

// Allocate splits total volume v across the candidates in closed form:
// each SKU receives v * sqrt(D_i) / sum_j sqrt(D_j), the Lagrange-optimal
// solution of the fluid model's benefit maximization. Runs in O(n); no
// iterative solve.
//
// The returned volumes are strictly positive and sum to v within floating
// tolerance. They are deliberately NOT capped to any SKU's realistic box
// packing limit; that reconciliation belongs to the discretizer so the
// continuous optimum stays exact.
//
// Returns ErrDegenerateInput when the candidate set is empty or all demand
// volumes are zero.
func Allocate(candidates []SKU, v float64) (map[string]float64, error) {
	sqrtSum := 0.0
	for i := range candidates {
		sqrtSum += math.Sqrt(candidates[i].DemandVolume())
	}
	if sqrtSum == 0 {
		return nil, ErrDegenerateInput
	}

	volumes := make(map[string]float64, len(candidates))
	for i := range candidates {
		volumes[candidates[i].PartNo] = v * math.Sqrt(candidates[i].DemandVolume()) / sqrtSum
	}
	return volumes, nil
}
