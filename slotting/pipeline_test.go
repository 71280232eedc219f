package slotting

import (
	"fmt"
	"reflect"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipelineFixture builds a small but complete warehouse scenario: ten clean
// SKUs with distinct pick frequencies plus one part for each exclusion path.
func pipelineFixture() ([]Transaction, []Geometry) {
	var txns []Transaction
	var geometry []Geometry

	for i := 0; i < 10; i++ {
		part := fmt.Sprintf("P%02d", i)
		geometry = append(geometry, smallGeometry(part, "PART "+part))
		for pick := 0; pick < 50-4*i; pick++ {
			txns = append(txns, Transaction{
				PartNo:      part,
				Quantity:    5,
				ShippingDay: 20240101 + pick%20,
				DeliveryNo:  fmt.Sprintf("DLV-%d", pick),
				Location:    fmt.Sprintf("DEST-%d", pick%4),
			})
		}
	}

	// One part per exclusion path.
	txns = append(txns,
		Transaction{PartNo: "NOGEO", Quantity: 3, ShippingDay: 20240101, DeliveryNo: "DLV-X", Location: "DEST-0"},
		Transaction{PartNo: "BADGEO", Quantity: 3, ShippingDay: 20240101, DeliveryNo: "DLV-X", Location: "DEST-0"},
		Transaction{PartNo: "TALL", Quantity: 3, ShippingDay: 20240101, DeliveryNo: "DLV-X", Location: "DEST-0"},
		Transaction{PartNo: "ZEROQ", Quantity: 0, ShippingDay: 20240101, DeliveryNo: "DLV-X", Location: "DEST-0"},
	)
	bad := smallGeometry("BADGEO", "BROKEN GEOMETRY")
	bad.BoxVolumeM3 = 0
	tall := smallGeometry("TALL", "TALL ITEM")
	tall.HeightM = 2.0
	geometry = append(geometry, bad, tall, smallGeometry("ZEROQ", "ZERO PIECES"))

	return txns, geometry
}

func TestRun_EndToEnd(t *testing.T) {
	txns, geometry := pipelineFixture()

	res, err := Run(txns, geometry, testConfig())
	require.NoError(t, err)

	s := res.Summary
	assert.Equal(t, 10, s.CandidateCount)
	assert.Equal(t, 1, s.DroppedMissingGeometry)
	assert.Equal(t, 1, s.DroppedBadGeometry)
	assert.Equal(t, 1, s.SizeFiltered)
	assert.Equal(t, 1, s.ZeroDemandExcluded)

	// The stage counters must agree with the stage outputs.
	assert.Equal(t, res.Selection.OptimalN, s.OptimalN)
	assert.Equal(t, len(res.Items), s.SelectedCount)
	assert.Equal(t, len(res.Placement.Placements), s.PlacedCount)
	assert.Equal(t, len(res.Placement.Unplaced), s.UnplacedCount)
	assert.Equal(t, s.SelectedCount, s.PlacedCount+s.UnplacedCount,
		"every discretized SKU is either placed or reported unplaced")
	assert.LessOrEqual(t, s.SelectedCount, s.OptimalN)
	assert.Greater(t, s.PeakBenefitMinPerYear, 0.0)
}

func TestRun_PlacementRowsAreWellFormed(t *testing.T) {
	txns, geometry := pipelineFixture()
	cfg := testConfig()

	res, err := Run(txns, geometry, cfg)
	require.NoError(t, err)

	positionID := regexp.MustCompile(`^C\d{2}F\d$`)
	for _, row := range res.PlacementTable() {
		assert.Regexp(t, positionID, row.PositionID)
		assert.GreaterOrEqual(t, row.CabinetID, 1)
		assert.LessOrEqual(t, row.CabinetID, cfg.NumCabinets)
		assert.GreaterOrEqual(t, row.FloorID, 1)
		assert.LessOrEqual(t, row.FloorID, cfg.NumFloorsPerCabinet)
		assert.GreaterOrEqual(t, row.SubPosStartM, 0.0)
		assert.LessOrEqual(t, row.SubPosEndM, cfg.SlotWidthM+widthEpsilon)
	}
}

func TestRun_SelectionTableMatchesRanking(t *testing.T) {
	txns, geometry := pipelineFixture()

	res, err := Run(txns, geometry, testConfig())
	require.NoError(t, err)

	rows := res.SelectionTable()
	require.NotEmpty(t, rows)
	for i := 1; i < len(rows); i++ {
		if rows[i].Viscosity > rows[i-1].Viscosity {
			t.Fatalf("selection table out of viscosity order at row %d: %v after %v",
				i, rows[i].Viscosity, rows[i-1].Viscosity)
		}
	}
	for _, row := range rows {
		assert.Greater(t, row.AllocatedVolumeM3, 0.0)
	}
}

func TestRun_IsReproducible(t *testing.T) {
	txns, geometry := pipelineFixture()

	first, err := Run(txns, geometry, testConfig())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := Run(txns, geometry, testConfig())
		require.NoError(t, err)
		if !reflect.DeepEqual(first.PlacementTable(), again.PlacementTable()) {
			t.Fatal("identical inputs produced different placement tables")
		}
		if !reflect.DeepEqual(first.SelectionTable(), again.SelectionTable()) {
			t.Fatal("identical inputs produced different selection tables")
		}
	}
}

func TestRun_ReproducibleUnderFrequencyTies(t *testing.T) {
	// GIVEN every SKU with the same frequency and demand, so all orderings
	// degrade to the part-number tiebreak
	var txns []Transaction
	var geometry []Geometry
	for i := 0; i < 8; i++ {
		part := fmt.Sprintf("T%02d", i)
		geometry = append(geometry, smallGeometry(part, "PART "+part))
		for pick := 0; pick < 10; pick++ {
			txns = append(txns, Transaction{
				PartNo: part, Quantity: 5,
				ShippingDay: 20240101 + pick, DeliveryNo: fmt.Sprintf("D%d", pick), Location: "DEST-0",
			})
		}
	}

	first, err := Run(txns, geometry, testConfig())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := Run(txns, geometry, testConfig())
		require.NoError(t, err)
		require.True(t, reflect.DeepEqual(first.PlacementTable(), again.PlacementTable()))
	}
}

func TestRun_ErrorPaths(t *testing.T) {
	// No rankable candidates at all.
	_, err := Run(nil, nil, testConfig())
	require.ErrorIs(t, err, ErrDegenerateInput)

	// A broken config aborts before any stage runs.
	txns, geometry := pipelineFixture()
	cfg := testConfig()
	cfg.TotalFPAVolumeM3 = -1
	_, err = Run(txns, geometry, cfg)
	require.Error(t, err)
}

func TestPositionID(t *testing.T) {
	assert.Equal(t, "C03F2", PositionID(3, 2))
	assert.Equal(t, "C24F5", PositionID(24, 5))
}

func TestAggregate_TalliesFrequencyAndPieces(t *testing.T) {
	geometry := []Geometry{smallGeometry("A1000", "PART A")}
	txns := []Transaction{
		{PartNo: "A1000", Quantity: 5, ShippingDay: 20240101, DeliveryNo: "D1", Location: "X"},
		{PartNo: "A1000", Quantity: 3, ShippingDay: 20240102, DeliveryNo: "D2", Location: "X"},
	}

	skus, stats := Aggregate(txns, geometry, testConfig())

	require.Len(t, skus, 1)
	assert.Equal(t, 2, skus[0].AnnualFrequency)
	assert.Equal(t, 8, skus[0].AnnualPieceQty)
	assert.Equal(t, AggregateStats{}, stats)
}

func TestAggregate_SizeFilter(t *testing.T) {
	// Eligibility: height under the cap and at least one horizontal dimension
	// under the shelf-opening cap.
	cfg := testConfig()
	long := smallGeometry("LONG", "LONG NARROW")
	long.LengthM = 1.2 // narrow width still fits
	square := smallGeometry("SQUARE", "WIDE BOTH WAYS")
	square.LengthM = 0.7
	square.WidthM = 0.7

	txn := func(part string) Transaction {
		return Transaction{PartNo: part, Quantity: 1, ShippingDay: 20240101, DeliveryNo: "D", Location: "X"}
	}
	skus, stats := Aggregate(
		[]Transaction{txn("LONG"), txn("SQUARE")},
		[]Geometry{long, square}, cfg)

	require.Len(t, skus, 1)
	assert.Equal(t, "LONG", skus[0].PartNo)
	assert.Equal(t, 1, stats.SizeFiltered)
}
