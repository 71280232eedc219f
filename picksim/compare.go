package picksim

// ComparisonRow pairs the before/after reports at one picker count, plus the
// derived improvement figures of the study.
type ComparisonRow struct {
	Pickers int
	Before  Report
	After   Report

	ServiceReductionPct float64 // how much less work the same picks take
	CapacityGainPct     float64 // extra picks possible at 100% utilization
}

// Compare runs both scenarios at each picker count over the same order
// stream. Each run gets the shared seed so the comparison is reproducible;
// before/after differ only in the scenario parameters.
func Compare(orders []PickOrder, pickerCounts []int, shiftMin float64, seed int64) []ComparisonRow {
	rows := make([]ComparisonRow, 0, len(pickerCounts))
	for _, n := range pickerCounts {
		before := runScenario(BeforeFPA(), orders, n, shiftMin, seed)
		after := runScenario(AfterFPA(), orders, n, shiftMin, seed)
		rows = append(rows, ComparisonRow{
			Pickers:             n,
			Before:              before,
			After:               after,
			ServiceReductionPct: (1 - after.AvgServiceMin/before.AvgServiceMin) * 100,
			CapacityGainPct:     (after.TheoreticalCapacity/before.TheoreticalCapacity - 1) * 100,
		})
	}
	return rows
}

func runScenario(sc Scenario, orders []PickOrder, pickers int, shiftMin float64, seed int64) Report {
	sim := NewSimulator(sc, orders, pickers, shiftMin, seed)
	sim.Run()
	return sim.Stats.Report(sc.Name, pickers, shiftMin)
}
