package picksim

import "math/rand"

// Scenario holds the activity-time model for one picking regime.
type Scenario struct {
	Name string

	// WalkSpeedMPerMin converts one-way distance to time; walks are round
	// trips.
	WalkSpeedMPerMin float64

	// Either a fixed triangular walk distance (before the FPA, random
	// storage) or a variation fraction around each order's cabinet distance
	// (after the FPA, fixed locations). CabinetBased selects which.
	CabinetBased  bool
	WalkDistanceM Triangular
	WalkVariation float64

	SearchTime    Triangular // zero triple when locations are known
	CheckPickTime Triangular
	PerBoxTime    Triangular
	ScanTime      Triangular

	// PiecesPerPickUnit scales quantity into per-box handling repetitions.
	PiecesPerPickUnit int
}

// BeforeFPA is the single-order-picking baseline: long triangular walks in
// the full warehouse and a dominant search time.
func BeforeFPA() Scenario {
	return Scenario{
		Name:              "before-fpa",
		WalkSpeedMPerMin:  100,
		CabinetBased:      false,
		WalkDistanceM:     Triangular{Min: 10, Mode: 25, Max: 50},
		SearchTime:        Triangular{Min: 1.0, Mode: 2.21, Max: 4.0},
		CheckPickTime:     Triangular{Min: 0.3, Mode: 0.4, Max: 0.6},
		PerBoxTime:        Triangular{Min: 0.08, Mode: 0.1, Max: 0.15},
		ScanTime:          Triangular{Min: 0.05, Mode: 0.083, Max: 0.12},
		PiecesPerPickUnit: 10,
	}
}

// AfterFPA is the optimized regime: walks follow each SKU's cabinet distance
// within +/-20%, and search time vanishes because locations are fixed.
func AfterFPA() Scenario {
	return Scenario{
		Name:              "after-fpa",
		WalkSpeedMPerMin:  100,
		CabinetBased:      true,
		WalkVariation:     0.2,
		SearchTime:        Triangular{},
		CheckPickTime:     Triangular{Min: 0.3, Mode: 0.4, Max: 0.6},
		PerBoxTime:        Triangular{Min: 0.08, Mode: 0.1, Max: 0.15},
		ScanTime:          Triangular{Min: 0.05, Mode: 0.083, Max: 0.12},
		PiecesPerPickUnit: 10,
	}
}

// serviceTime draws one pick's full service time in minutes: round-trip
// walk, search, check-and-pick, per-box handling scaled by quantity, and
// barcode scan.
func (sc *Scenario) serviceTime(order *PickOrder, rng *rand.Rand) float64 {
	var walkDistance float64
	if sc.CabinetBased {
		walkDistance = Around(order.CabinetDistanceM, sc.WalkVariation).Sample(rng)
	} else {
		walkDistance = sc.WalkDistanceM.Sample(rng)
	}
	walkTime := 2 * walkDistance / sc.WalkSpeedMPerMin

	units := (order.Quantity + sc.PiecesPerPickUnit - 1) / sc.PiecesPerPickUnit
	if units < 1 {
		units = 1
	}

	return walkTime +
		sc.SearchTime.Sample(rng) +
		sc.CheckPickTime.Sample(rng) +
		sc.PerBoxTime.Sample(rng)*float64(units) +
		sc.ScanTime.Sample(rng)
}
