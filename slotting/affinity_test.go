package slotting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateSet(parts ...string) []SKU {
	skus := make([]SKU, 0, len(parts))
	for _, p := range parts {
		skus = append(skus, SKU{PartNo: p, PartName: "PART " + p})
	}
	return skus
}

// basketTxns emits one transaction per part, all sharing a single basket key.
func basketTxns(day int, location string, parts ...string) []Transaction {
	txns := make([]Transaction, 0, len(parts))
	for _, p := range parts {
		txns = append(txns, Transaction{
			PartNo:      p,
			Quantity:    1,
			ShippingDay: day,
			Location:    location,
			DeliveryNo:  location,
		})
	}
	return txns
}

func TestBuildAffinityGroups_ConnectedComponents(t *testing.T) {
	// GIVEN two triangles of strongly co-picked SKUs plus one isolated SKU.
	// Each triangle's pairs co-occur in every basket, so every pair scores the
	// full 50 co-occurrence points, above the threshold of 30.
	candidates := candidateSet("P1", "P2", "P3", "Q1", "Q2", "Q3", "ALONE")
	var txns []Transaction
	for day := 20240101; day < 20240111; day++ {
		txns = append(txns, basketTxns(day, "DEST-1", "P1", "P2", "P3")...)
		txns = append(txns, basketTxns(day, "DEST-2", "Q1", "Q2", "Q3")...)
		txns = append(txns, basketTxns(day, "DEST-3", "ALONE")...)
	}

	g := BuildAffinityGroups(candidates, txns, testConfig())

	// THEN two groups of three come out and the isolated SKU stays ungrouped
	require.Len(t, g.Members, 2)
	assert.ElementsMatch(t, []string{"P1", "P2", "P3"}, g.Members[g.GroupID["P1"]])
	assert.ElementsMatch(t, []string{"Q1", "Q2", "Q3"}, g.Members[g.GroupID["Q1"]])
	_, grouped := g.GroupID["ALONE"]
	assert.False(t, grouped, "a SKU with no qualifying edge must stay ungrouped")
}

func TestGrouping_AssociatedIsSymmetric(t *testing.T) {
	candidates := candidateSet("P1", "P2", "P3")
	txns := basketTxns(20240101, "DEST-1", "P1", "P2", "P3")

	g := BuildAffinityGroups(candidates, txns, testConfig())

	for _, a := range []string{"P1", "P2", "P3"} {
		for _, b := range g.Associated(a) {
			assert.Contains(t, g.Associated(b), a,
				"association must be symmetric: %s lists %s", a, b)
		}
	}
	assert.ElementsMatch(t, []string{"P2", "P3"}, g.Associated("P1"))
	assert.Empty(t, g.Associated("MISSING"))
}

func TestBuildAffinityGroups_PartNumberVariantConvention(t *testing.T) {
	// GIVEN an A-suffixed part whose B counterpart is also a candidate, with
	// no pick history at all
	candidates := candidateSet("55123A", "55123B", "55124A")

	g := BuildAffinityGroups(candidates, nil, testConfig())

	// THEN the A/B pair alone forms a group; 55124A has no B counterpart
	require.Len(t, g.Members, 1)
	assert.ElementsMatch(t, []string{"55123A", "55123B"}, g.Members[g.GroupID["55123A"]])
	_, grouped := g.GroupID["55124A"]
	assert.False(t, grouped)
}

func TestBuildAffinityGroups_HandMarkerVariants(t *testing.T) {
	// GIVEN two parts whose names differ only in the LH/RH marker
	candidates := []SKU{
		{PartNo: "61001", PartName: "BRACKET LH FRONT"},
		{PartNo: "61002", PartName: "BRACKET RH FRONT"},
		{PartNo: "61003", PartName: "BRACKET REAR"},
	}

	g := BuildAffinityGroups(candidates, nil, testConfig())

	require.Len(t, g.Members, 1)
	assert.ElementsMatch(t, []string{"61001", "61002"}, g.Members[g.GroupID["61001"]])
}

func TestStripHandMarker(t *testing.T) {
	for _, tc := range []struct {
		name   string
		base   string
		marked bool
	}{
		{"BRACKET LH FRONT", "BRACKET FRONT", true},
		{"bracket rh front", "BRACKET FRONT", true},
		{"COVER LEFT", "COVER", true},
		{"COVER RIGHT", "COVER", true},
		{"PANEL L/H", "PANEL", true},
		{"PLAIN PANEL", "PLAIN PANEL", false},
	} {
		base, marked := stripHandMarker(tc.name)
		if base != tc.base || marked != tc.marked {
			t.Errorf("stripHandMarker(%q): got (%q, %v), want (%q, %v)",
				tc.name, base, marked, tc.base, tc.marked)
		}
	}
}

func TestBuildAffinityGroups_ThresholdExcludesWeakPairs(t *testing.T) {
	// GIVEN one pair picked together ten times and another only once: the
	// weak pair normalizes to 50 * 1/10 = 5 points, under the threshold.
	candidates := candidateSet("S1", "S2", "W1", "W2")
	var txns []Transaction
	for day := 20240101; day < 20240111; day++ {
		txns = append(txns, basketTxns(day, "DEST-1", "S1", "S2")...)
	}
	txns = append(txns, basketTxns(20240201, "DEST-2", "W1", "W2")...)

	g := BuildAffinityGroups(candidates, txns, testConfig())

	require.Len(t, g.Members, 1)
	assert.ElementsMatch(t, []string{"S1", "S2"}, g.Members[g.GroupID["S1"]])
	_, grouped := g.GroupID["W1"]
	assert.False(t, grouped)
}

func TestBuildAffinityGroups_OversizedBasketsIgnored(t *testing.T) {
	// GIVEN a basket wider than MaxBasketSize
	cfg := testConfig()
	cfg.MaxBasketSize = 3

	parts := []string{"B1", "B2", "B3", "B4", "B5"}
	candidates := candidateSet(parts...)
	txns := basketTxns(20240101, "DEST-1", parts...)

	g := BuildAffinityGroups(candidates, txns, cfg)

	// THEN it contributes no co-occurrence at all
	assert.Empty(t, g.Members)
	assert.Zero(t, g.Edges)
}

func TestBuildAffinityGroups_BasketKeyModes(t *testing.T) {
	// Two picks on the same day to the same destination but under different
	// delivery numbers: one basket by day+location, two by delivery.
	candidates := candidateSet("K1", "K2")
	txns := []Transaction{
		{PartNo: "K1", Quantity: 1, ShippingDay: 20240101, Location: "DEST-1", DeliveryNo: "DLV-1"},
		{PartNo: "K2", Quantity: 1, ShippingDay: 20240101, Location: "DEST-1", DeliveryNo: "DLV-2"},
	}

	cfg := testConfig()
	cfg.BasketKey = BasketByDayLocation
	assert.Len(t, BuildAffinityGroups(candidates, txns, cfg).Members, 1)

	cfg.BasketKey = BasketByDelivery
	assert.Empty(t, BuildAffinityGroups(candidates, txns, cfg).Members)
}

func TestBuildAffinityGroups_GroupIDsAreDeterministic(t *testing.T) {
	candidates := candidateSet("P1", "P2", "Q1", "Q2")
	txns := append(
		basketTxns(20240101, "DEST-1", "P1", "P2"),
		basketTxns(20240101, "DEST-2", "Q1", "Q2")...,
	)

	first := BuildAffinityGroups(candidates, txns, testConfig())
	for i := 0; i < 5; i++ {
		g := BuildAffinityGroups(candidates, txns, testConfig())
		assert.Equal(t, first.GroupID, g.GroupID)
		assert.Equal(t, first.Members, g.Members)
	}
	// Smallest-root components get the smallest ids.
	assert.Equal(t, 1, first.GroupID["P1"])
	assert.Equal(t, 2, first.GroupID["Q1"])
}
