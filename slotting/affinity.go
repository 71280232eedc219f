package slotting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	patternScore      = 100.0 // part-number/name variant convention match
	coOccurrenceScale = 50.0  // co-pick score range is 0..50
)

// Grouping is the partition of candidate SKUs into affinity groups: sets of
// SKUs that should be stored near each other. A SKU with no qualifying edge
// stays out of GroupID entirely (a singleton is not a group). Groups are
// computed once per run and read-only during placement.
type Grouping struct {
	GroupID map[string]int   // part number -> group id, grouped SKUs only
	Members map[int][]string // group id -> member part numbers, sorted
	Edges   int              // qualifying pair count, for diagnostics
}

// Associated returns the other members of part's group, sorted. Empty when
// the part is ungrouped. The relation is symmetric: if A lists B then B
// lists A, because both read the same undirected component.
func (g *Grouping) Associated(part string) []string {
	id, ok := g.GroupID[part]
	if !ok {
		return nil
	}
	others := make([]string, 0, len(g.Members[id])-1)
	for _, m := range g.Members[id] {
		if m != part {
			others = append(others, m)
		}
	}
	return others
}

// BuildAffinityGroups scores every unordered candidate pair from two
// independent signals, keeps pairs at or above the configured threshold as
// edges of an undirected graph, and returns its connected components.
//
// Pattern score (0 or 100): part numbers following the A/B variant
// convention (a trailing "A" whose "B" counterpart is also a candidate), or
// part names that differ only in a left-hand/right-hand marker.
//
// Co-occurrence score (0..50): picks are grouped into baskets by the
// configured basket key; each basket of 2..MaxBasketSize distinct candidate
// SKUs counts one co-occurrence for every pair it contains. Counts are
// normalized by the maximum observed pair count. Oversized baskets are
// excluded: they would say everything co-occurred with everything.
func BuildAffinityGroups(candidates []SKU, txns []Transaction, cfg Config) *Grouping {
	inSet := make(map[string]bool, len(candidates))
	for i := range candidates {
		inSet[candidates[i].PartNo] = true
	}

	scores := make(map[[2]string]float64)
	addScore := func(a, b string, s float64) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		scores[[2]string{a, b}] += s
	}

	for _, p := range patternPairs(candidates) {
		addScore(p[0], p[1], patternScore)
	}
	for pair, score := range coOccurrenceScores(inSet, txns, cfg) {
		addScore(pair[0], pair[1], score)
	}

	// Threshold into edges, then take connected components.
	uf := newUnionFind()
	edges := 0
	for pair, total := range scores {
		if total >= cfg.AffinityScoreThreshold {
			uf.union(pair[0], pair[1])
			edges++
		}
	}

	g := &Grouping{
		GroupID: make(map[string]int),
		Members: make(map[int][]string),
		Edges:   edges,
	}
	byRoot := make(map[string][]string)
	for part := range uf.parent {
		root := uf.find(part)
		byRoot[root] = append(byRoot[root], part)
	}
	// Group ids are assigned in sorted-root order, which depends only on the
	// component contents, never on union order.
	roots := make([]string, 0, len(byRoot))
	for root, members := range byRoot {
		if len(members) < 2 {
			continue
		}
		roots = append(roots, root)
	}
	sort.Strings(roots)
	for i, root := range roots {
		id := i + 1
		members := byRoot[root]
		sort.Strings(members)
		g.Members[id] = members
		for _, m := range members {
			g.GroupID[m] = id
		}
	}

	logrus.Infof("affinity: %d edges over %d candidates -> %d groups", edges, len(candidates), len(g.Members))
	return g
}

// patternPairs finds candidate pairs matching known variant conventions.
func patternPairs(candidates []SKU) [][2]string {
	byPart := make(map[string]bool, len(candidates))
	for i := range candidates {
		byPart[candidates[i].PartNo] = true
	}

	var pairs [][2]string
	// A/B part-number variants: "...A" paired with its "...B" counterpart.
	for i := range candidates {
		p := candidates[i].PartNo
		if strings.HasSuffix(p, "A") {
			counterpart := p[:len(p)-1] + "B"
			if byPart[counterpart] {
				pairs = append(pairs, [2]string{p, counterpart})
			}
		}
	}
	// Left/right-hand variants: names identical after stripping the marker.
	byBaseName := make(map[string][]string)
	for i := range candidates {
		base, marked := stripHandMarker(candidates[i].PartName)
		if marked {
			byBaseName[base] = append(byBaseName[base], candidates[i].PartNo)
		}
	}
	for _, parts := range byBaseName {
		if len(parts) < 2 {
			continue
		}
		sort.Strings(parts)
		for i := 0; i < len(parts); i++ {
			for j := i + 1; j < len(parts); j++ {
				pairs = append(pairs, [2]string{parts[i], parts[j]})
			}
		}
	}
	return pairs
}

var handMarkers = []string{"LH", "RH", "LEFT", "RIGHT", "L/H", "R/H"}

// stripHandMarker removes a left/right-hand token from a descriptive name.
// Returns the normalized name and whether a marker was present.
func stripHandMarker(name string) (string, bool) {
	fields := strings.Fields(strings.ToUpper(name))
	kept := make([]string, 0, len(fields))
	marked := false
	for _, f := range fields {
		isMarker := false
		for _, m := range handMarkers {
			if f == m {
				isMarker = true
				break
			}
		}
		if isMarker {
			marked = true
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " "), marked
}

// coOccurrenceScores counts the picks of candidate pairs appearing in the
// same basket, then scales counts to 0..coOccurrenceScale.
func coOccurrenceScores(inSet map[string]bool, txns []Transaction, cfg Config) map[[2]string]float64 {
	baskets := make(map[string]map[string]bool)
	for _, t := range txns {
		if !inSet[t.PartNo] {
			continue
		}
		key := basketKey(t, cfg.BasketKey)
		if baskets[key] == nil {
			baskets[key] = make(map[string]bool)
		}
		baskets[key][t.PartNo] = true
	}

	counts := make(map[[2]string]int)
	maxCount := 0
	for _, parts := range baskets {
		if len(parts) < 2 || len(parts) > cfg.MaxBasketSize {
			continue
		}
		list := make([]string, 0, len(parts))
		for p := range parts {
			list = append(list, p)
		}
		sort.Strings(list)
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				k := [2]string{list[i], list[j]}
				counts[k]++
				if counts[k] > maxCount {
					maxCount = counts[k]
				}
			}
		}
	}
	scores := make(map[[2]string]float64, len(counts))
	if maxCount == 0 {
		return scores
	}
	for k, c := range counts {
		scores[k] = coOccurrenceScale * float64(c) / float64(maxCount)
	}
	return scores
}

// basketKey builds the grouping key for one transaction. The source's
// revisions disagree on the key, so both definitions are kept selectable.
func basketKey(t Transaction, mode BasketKeyMode) string {
	if mode == BasketByDelivery {
		return t.DeliveryNo
	}
	return fmt.Sprintf("%d|%s", t.ShippingDay, t.Location)
}

// unionFind is a plain disjoint-set over part numbers. Roots are kept as
// the smallest part number in the set, so the final labeling is independent
// of union order.
type unionFind struct {
	parent map[string]string
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[string]string)}
}

func (u *unionFind) find(x string) string {
	if _, ok := u.parent[x]; !ok {
		u.parent[x] = x
	}
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b string) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
}
