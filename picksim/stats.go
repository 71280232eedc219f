package picksim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// effectiveShiftFraction discounts picker availability for break time: an
// 8-hour shift has 8/9 of the crew effectively picking.
const effectiveShiftFraction = 8.0 / 9.0

// Stats accumulates raw observations during a run.
type Stats struct {
	PicksCompleted int

	WaitTimes          []float64
	FlowTimes          []float64
	ServiceTimes       []float64
	QueueLengths       []float64
	UtilizationSamples []float64
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) recordCompletion(order *PickOrder, now float64) {
	s.PicksCompleted++
	s.ServiceTimes = append(s.ServiceTimes, order.serviceTime)
	s.FlowTimes = append(s.FlowTimes, now-order.arrivalTime)
}

// Report is the per-scenario outcome of one run, using the study's metric
// definitions:
//
//	utilization      = total service time / (pickers x shift)
//	actual LPMH      = picks / (effective pickers x hours)
//	theoretical LPMH = 60 / avg service time (process capacity at 100% util)
//	capacity         = pickers x shift / avg service time
type Report struct {
	Scenario         string
	Pickers          int
	EffectivePickers float64

	Picks               int
	LPMH                float64
	Throughput          float64 // picks per hour, system level
	TheoreticalLPMH     float64
	TheoreticalCapacity float64

	AvgServiceMin  float64
	AvgWaitMin     float64
	P90WaitMin     float64
	AvgFlowMin     float64
	UtilizationPct float64
}

// Report reduces the raw observations into the scenario metrics.
func (s *Stats) Report(scenario string, pickers int, shiftMin float64) Report {
	hours := shiftMin / 60
	effective := float64(pickers) * effectiveShiftFraction

	avgService := 1.0
	totalService := 0.0
	if len(s.ServiceTimes) > 0 {
		avgService = stat.Mean(s.ServiceTimes, nil)
		for _, t := range s.ServiceTimes {
			totalService += t
		}
	}

	return Report{
		Scenario:            scenario,
		Pickers:             pickers,
		EffectivePickers:    effective,
		Picks:               s.PicksCompleted,
		LPMH:                float64(s.PicksCompleted) / (effective * hours),
		Throughput:          float64(s.PicksCompleted) / hours,
		TheoreticalLPMH:     60 / avgService,
		TheoreticalCapacity: float64(pickers) * shiftMin / avgService,
		AvgServiceMin:       avgService,
		AvgWaitMin:          meanOrZero(s.WaitTimes),
		P90WaitMin:          quantileOrZero(s.WaitTimes, 0.9),
		AvgFlowMin:          meanOrZero(s.FlowTimes),
		UtilizationPct:      totalService / (float64(pickers) * shiftMin) * 100,
	}
}

// Print displays one scenario's report.
func (r *Report) Print() {
	fmt.Printf("=== %s (%d pickers) ===\n", r.Scenario, r.Pickers)
	fmt.Printf("Picks completed      : %d\n", r.Picks)
	fmt.Printf("Avg service time     : %.2f min\n", r.AvgServiceMin)
	fmt.Printf("Avg wait / p90 wait  : %.2f / %.2f min\n", r.AvgWaitMin, r.P90WaitMin)
	fmt.Printf("Utilization          : %.1f%%\n", r.UtilizationPct)
	fmt.Printf("Actual LPMH          : %.2f\n", r.LPMH)
	fmt.Printf("Theoretical LPMH     : %.2f\n", r.TheoreticalLPMH)
	fmt.Printf("Max capacity/shift   : %.0f picks\n", r.TheoreticalCapacity)
}

func meanOrZero(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

func quantileOrZero(data []float64, q float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	return stat.Quantile(q, stat.Empirical, sorted, nil)
}
