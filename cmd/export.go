package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/fastpick-sim/fastpick-sim/picksim"
	"github.com/fastpick-sim/fastpick-sim/slotting"
)

// WriteSelectionCSV exports the per-SKU selection + allocation table for the
// downstream reporting and simulation tools.
func WriteSelectionCSV(path string, rows []slotting.SelectionRow) error {
	records := [][]string{{
		"part_no", "part_name", "annual_frequency", "annual_demand_volume_m3",
		"viscosity", "allocated_volume_m3", "benefit_min_per_year",
		"replenishment_trips_per_year",
	}}
	for _, r := range rows {
		records = append(records, []string{
			r.PartNo,
			r.PartName,
			fmt.Sprintf("%d", r.AnnualFrequency),
			fmt.Sprintf("%.6f", r.AnnualDemandVolumeM3),
			fmt.Sprintf("%.4f", r.Viscosity),
			fmt.Sprintf("%.6f", r.AllocatedVolumeM3),
			fmt.Sprintf("%.2f", r.BenefitMinPerYear),
			fmt.Sprintf("%.2f", r.ReplenishmentTripsPerYear),
		})
	}
	return writeCSV(path, records)
}

// WritePlacementCSV exports the per-SKU placement table.
func WritePlacementCSV(path string, rows []slotting.PlacementRow) error {
	records := [][]string{{
		"part_no", "cabinet_id", "floor_id", "position_id",
		"sub_pos_start_m", "sub_pos_end_m", "width_needed_m",
		"affinity_group_id", "associated_with",
	}}
	for _, r := range rows {
		records = append(records, []string{
			r.PartNo,
			fmt.Sprintf("%d", r.CabinetID),
			fmt.Sprintf("%d", r.FloorID),
			r.PositionID,
			fmt.Sprintf("%.4f", r.SubPosStartM),
			fmt.Sprintf("%.4f", r.SubPosEndM),
			fmt.Sprintf("%.4f", r.WidthNeededM),
			fmt.Sprintf("%d", r.AffinityGroup),
			strings.Join(r.AssociatedWith, ";"),
		})
	}
	return writeCSV(path, records)
}

// WriteComparisonCSV exports the before/after sensitivity sweep.
func WriteComparisonCSV(path string, rows []picksim.ComparisonRow) error {
	records := [][]string{{
		"pickers", "before_utilization_pct", "after_utilization_pct",
		"before_lpmh", "after_lpmh",
		"before_avg_service_min", "after_avg_service_min",
		"before_capacity", "after_capacity",
		"service_reduction_pct", "capacity_gain_pct",
	}}
	for _, r := range rows {
		records = append(records, []string{
			fmt.Sprintf("%d", r.Pickers),
			fmt.Sprintf("%.1f", r.Before.UtilizationPct),
			fmt.Sprintf("%.1f", r.After.UtilizationPct),
			fmt.Sprintf("%.2f", r.Before.LPMH),
			fmt.Sprintf("%.2f", r.After.LPMH),
			fmt.Sprintf("%.2f", r.Before.AvgServiceMin),
			fmt.Sprintf("%.2f", r.After.AvgServiceMin),
			fmt.Sprintf("%.0f", r.Before.TheoreticalCapacity),
			fmt.Sprintf("%.0f", r.After.TheoreticalCapacity),
			fmt.Sprintf("%.1f", r.ServiceReductionPct),
			fmt.Sprintf("%.1f", r.CapacityGainPct),
		})
	}
	return writeCSV(path, records)
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
