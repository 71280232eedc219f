package slotting

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Discretized is a selected SKU converted from a continuous volume
// allocation to an integer box count and a required linear shelf width.
type Discretized struct {
	SelectedSKU
	BoxesPerColumn int
	BoxesNeeded    int
	ColumnsNeeded  int
	WidthNeededM   float64
}

// DiscretizeStats counts the reconciliations the discretizer applied.
type DiscretizeStats struct {
	WidthCapped int // SKUs whose ideal width exceeded one slot and was capped
	Trimmed     int // SKUs dropped from the ranking tail to fit total capacity
}

// Discretize converts every selected SKU's continuous allocation into boxes,
// columns, and shelf width:
//
//	boxesPerColumn = max(1, floor(D_slot/boxDepth)) * max(1, floor(H_slot/boxHeight))
//	boxesNeeded    = ceil(allocatedVolume / boxVolume)
//	columnsNeeded  = boxesNeeded / boxesPerColumn, rounded per cfg.Rounding
//	widthNeeded    = columnsNeeded * boxWidth, capped at one slot width
//
// A single SKU never spans more than one slot in the width dimension.
//
// The continuous optimum ignores discreteness, so the summed widths can
// exceed the grid. When they do, SKUs are removed from the tail of the
// viscosity ranking (lowest first) until the total fits; nothing else is
// recomputed. Every surviving SKU satisfies 0 < width <= slot width.
func Discretize(selected []SelectedSKU, cfg Config) ([]Discretized, DiscretizeStats) {
	var stats DiscretizeStats

	items := make([]Discretized, 0, len(selected))
	totalWidth := 0.0
	for _, s := range selected {
		d := discretizeOne(s, cfg, &stats)
		totalWidth += d.WidthNeededM
		items = append(items, d)
	}

	// Tail-trimming reconciliation: the input is in viscosity rank order, so
	// the last element is always the weakest remaining candidate.
	capacity := cfg.TotalShelfWidthM()
	for totalWidth > capacity && len(items) > 0 {
		last := items[len(items)-1]
		totalWidth -= last.WidthNeededM
		items = items[:len(items)-1]
		stats.Trimmed++
	}
	if stats.Trimmed > 0 {
		logrus.Warnf("discretize: trimmed %d tail SKUs to fit %.2f m of shelf width", stats.Trimmed, capacity)
	}
	logrus.Infof("discretize: %d SKUs need %.2f of %.2f m total width", len(items), totalWidth, capacity)
	return items, stats
}

func discretizeOne(s SelectedSKU, cfg Config, stats *DiscretizeStats) Discretized {
	perColumn := maxInt(1, int(math.Floor(cfg.SlotDepthM/s.BoxDepthM))) *
		maxInt(1, int(math.Floor(cfg.SlotHeightM/s.BoxHeightM)))
	boxes := maxInt(1, int(math.Ceil(s.AllocatedVolumeM3/s.BoxVolumeM3)))
	columns := roundColumns(boxes, perColumn, cfg.Rounding)

	width := float64(columns) * s.BoxWidthM
	if width > cfg.SlotWidthM {
		stats.WidthCapped++
		maxColumns := maxInt(1, int(math.Floor(cfg.SlotWidthM/s.BoxWidthM)))
		columns = maxColumns
		width = float64(columns) * s.BoxWidthM
		if width > cfg.SlotWidthM {
			// Box wider than the slot itself; one column fills it entirely.
			width = cfg.SlotWidthM
		}
		boxes = columns * perColumn
	}

	return Discretized{
		SelectedSKU:    s,
		BoxesPerColumn: perColumn,
		BoxesNeeded:    boxes,
		ColumnsNeeded:  columns,
		WidthNeededM:   width,
	}
}

// roundColumns converts a box count into shelf columns. The source carries
// two unreconciled rules across revisions, so both are selectable: always
// round a partial column up, or round up only when it is more than half
// full.
func roundColumns(boxes, perColumn int, policy RoundingPolicy) int {
	full := boxes / perColumn
	rem := boxes % perColumn
	switch policy {
	case RoundHalfUp:
		if rem*2 > perColumn {
			full++
		}
	default: // RoundCeil
		if rem > 0 {
			full++
		}
	}
	return maxInt(1, full)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
