package slotting

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// RankByViscosity orders SKUs by descending viscosity (frequency per sqrt of
// flow), the selection score of the fluid model. SKUs with zero demand
// volume have no defined viscosity; they are excluded and counted rather
// than silently mixed into the ranking. Ties break on ascending part number
// so repeated runs over the same input produce the same order.
func RankByViscosity(skus []SKU) ([]SKU, int) {
	ranked := make([]SKU, 0, len(skus))
	zeroDemand := 0
	for _, s := range skus {
		if s.DemandVolume() <= 0 {
			zeroDemand++
			continue
		}
		ranked = append(ranked, s)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := ranked[i].Viscosity(), ranked[j].Viscosity()
		if vi != vj {
			return vi > vj
		}
		return ranked[i].PartNo < ranked[j].PartNo
	})

	if zeroDemand > 0 {
		logrus.Warnf("rank: excluded %d zero-demand SKUs (viscosity undefined)", zeroDemand)
	}
	return ranked, zeroDemand
}
