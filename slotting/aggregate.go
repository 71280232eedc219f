package slotting

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// AggregateStats counts the SKUs excluded while building the candidate pool.
// Every exclusion is recoverable: the run continues and the counts end up in
// the final summary.
type AggregateStats struct {
	MissingGeometry int // part numbers with picks but no geometry row
	BadGeometry     int // non-positive box volume or pieces-per-box
	SizeFiltered    int // physically ineligible for the fast-pick area
}

// Aggregate derives one SKU record per part number from raw pick
// transactions joined with the item geometry table. Parts that are missing
// geometry, have unusable geometry, or fail the FPA size filter are dropped
// and counted. The returned slice is sorted by part number so downstream
// stages see a deterministic order.
func Aggregate(txns []Transaction, geometry []Geometry, cfg Config) ([]SKU, AggregateStats) {
	var stats AggregateStats

	geomByPart := make(map[string]Geometry, len(geometry))
	for _, g := range geometry {
		geomByPart[g.PartNo] = g
	}

	type tally struct {
		frequency int
		pieces    int
	}
	tallies := make(map[string]*tally)
	for _, t := range txns {
		tl := tallies[t.PartNo]
		if tl == nil {
			tl = &tally{}
			tallies[t.PartNo] = tl
		}
		tl.frequency++
		tl.pieces += t.Quantity
	}

	parts := make([]string, 0, len(tallies))
	for p := range tallies {
		parts = append(parts, p)
	}
	sort.Strings(parts)

	skus := make([]SKU, 0, len(parts))
	for _, p := range parts {
		g, ok := geomByPart[p]
		if !ok {
			stats.MissingGeometry++
			continue
		}
		if g.BoxVolumeM3 <= 0 || g.PiecesPerBox < 1 {
			stats.BadGeometry++
			continue
		}
		if !eligible(g, cfg) {
			stats.SizeFiltered++
			continue
		}
		tl := tallies[p]
		skus = append(skus, SKU{
			PartNo:          p,
			PartName:        g.PartName,
			AnnualFrequency: tl.frequency,
			AnnualPieceQty:  tl.pieces,
			BoxVolumeM3:     g.BoxVolumeM3,
			PiecesPerBox:    g.PiecesPerBox,
			BoxWidthM:       g.BoxWidthM,
			BoxDepthM:       g.BoxDepthM,
			BoxHeightM:      g.BoxHeightM,
			HeightM:         g.HeightM,
			LengthM:         g.LengthM,
			WidthM:          g.WidthM,
		})
	}

	if stats.MissingGeometry+stats.BadGeometry+stats.SizeFiltered > 0 {
		logrus.Warnf("aggregate: excluded %d missing-geometry, %d bad-geometry, %d size-filtered parts",
			stats.MissingGeometry, stats.BadGeometry, stats.SizeFiltered)
	}
	logrus.Infof("aggregate: %d eligible SKUs from %d transactions", len(skus), len(txns))
	return skus, stats
}

// eligible applies the FPA size filter: the item must be shorter than the
// height limit and at least one horizontal dimension must fit the shelf
// opening.
func eligible(g Geometry, cfg Config) bool {
	return g.HeightM < cfg.SizeFilterHeightMaxM &&
		(g.LengthM < cfg.SizeFilterDimMaxM || g.WidthM < cfg.SizeFilterDimMaxM)
}
