package picksim

import (
	"math"
	"math/rand"
)

// Triangular is a min/mode/max triangular distribution, the stochastic model
// used for every manual activity time in the comparison study.
type Triangular struct {
	Min  float64 `yaml:"min"`
	Mode float64 `yaml:"mode"`
	Max  float64 `yaml:"max"`
}

// Sample draws one value via the inverse CDF. A zero-width distribution
// (Min == Max) returns Min, which is how "no search time" is expressed.
func (d Triangular) Sample(rng *rand.Rand) float64 {
	if d.Max <= d.Min {
		return d.Min
	}
	u := rng.Float64()
	fc := (d.Mode - d.Min) / (d.Max - d.Min)
	if u < fc {
		return d.Min + math.Sqrt(u*(d.Max-d.Min)*(d.Mode-d.Min))
	}
	return d.Max - math.Sqrt((1-u)*(d.Max-d.Min)*(d.Max-d.Mode))
}

// Around builds a distribution centered on mode with symmetric +/- fraction
// bounds, used for walking distance variation around a cabinet's measured
// distance.
func Around(mode, fraction float64) Triangular {
	return Triangular{
		Min:  mode * (1 - fraction),
		Mode: mode,
		Max:  mode * (1 + fraction),
	}
}
