package slotting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastpick-sim/fastpick-sim/slotting/internal/testutil"
)

func TestArgmaxCurve_GlobalNotFirstLocalMax(t *testing.T) {
	// GIVEN a curve with a local maximum at n=2 and n=4 before the global
	// maximum at n=6
	values := []float64{1, 5, 3, 5, 2, 8, 1}
	curve := make([]BenefitPoint, len(values))
	for i, v := range values {
		curve[i] = BenefitPoint{N: i + 1, TotalBenefit: v}
	}

	// WHEN the argmax is taken
	best := argmaxCurve(curve)

	// THEN the true global maximum wins, not the first local peak
	if curve[best].N != 6 {
		t.Errorf("argmax: got n=%d, want n=6", curve[best].N)
	}
}

func TestArgmaxCurve_FirstIndexWinsTies(t *testing.T) {
	curve := []BenefitPoint{
		{N: 1, TotalBenefit: 4},
		{N: 2, TotalBenefit: 7},
		{N: 3, TotalBenefit: 7},
	}
	if got := argmaxCurve(curve); curve[got].N != 2 {
		t.Errorf("tie argmax: got n=%d, want n=2", curve[got].N)
	}
}

func TestFindOptimalN_SelectsBenefitMaximizingPrefix(t *testing.T) {
	// GIVEN a ranked pool where the benefit eventually turns negative:
	// high-frequency SKUs pay for themselves, low-frequency bulky ones don't.
	ranked := []SKU{
		demandSKU("A", 500, 4),
		demandSKU("B", 300, 9),
		demandSKU("C", 100, 16),
		demandSKU("D", 2, 400),
		demandSKU("E", 1, 900),
	}
	cfg := testConfig()

	sel, err := FindOptimalN(ranked, cfg)
	require.NoError(t, err)

	// The curve covers the full sweep and the reported peak is its maximum.
	require.Len(t, sel.Curve, len(ranked))
	best := sel.Curve[0].TotalBenefit
	for _, p := range sel.Curve {
		if p.TotalBenefit > best {
			best = p.TotalBenefit
		}
	}
	testutil.AssertFloat64Equal(t, "peak benefit", best, sel.Peak, 1e-12)

	// The selection is exactly the top-n* prefix with a full allocation.
	require.Len(t, sel.SKUs, sel.OptimalN)
	sum := 0.0
	for i, s := range sel.SKUs {
		assert.Equal(t, ranked[i].PartNo, s.PartNo, "selection must be the ranked prefix")
		assert.Greater(t, s.AllocatedVolumeM3, 0.0)
		sum += s.AllocatedVolumeM3
	}
	testutil.AssertFloat64Equal(t, "selected allocation sum", cfg.SearchVolume(), sum, 1e-6)
}

func TestFindOptimalN_ReplenishmentTripsMatchAllocation(t *testing.T) {
	ranked := []SKU{
		demandSKU("A", 100, 100),
		demandSKU("B", 50, 25),
	}
	sel, err := FindOptimalN(ranked, testConfig())
	require.NoError(t, err)

	for _, s := range sel.SKUs {
		testutil.AssertFloat64Equal(t, "trips "+s.PartNo,
			s.DemandVolume()/s.AllocatedVolumeM3, s.ReplenishTripsPerYear, 1e-12)
	}
}

func TestFindOptimalN_RespectsSweepCap(t *testing.T) {
	ranked := make([]SKU, 0, 20)
	for i := 0; i < 20; i++ {
		ranked = append(ranked, demandSKU(string(rune('A'+i)), 100-i, 10+i))
	}
	cfg := testConfig()
	cfg.MaxCandidateSweep = 7

	sel, err := FindOptimalN(ranked, cfg)
	require.NoError(t, err)

	assert.Len(t, sel.Curve, 7, "sweep must stop at the configured cap")
	assert.LessOrEqual(t, sel.OptimalN, 7)
}

func TestFindOptimalN_EmptyInput(t *testing.T) {
	_, err := FindOptimalN(nil, testConfig())
	require.ErrorIs(t, err, ErrDegenerateInput)
}
