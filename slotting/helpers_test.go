package slotting

// Test helpers shared across the slotting test files.

// demandSKU builds a SKU whose demand volume equals demand exactly:
// one piece per box, 1 m3 per box, so D = pieces x 1.
func demandSKU(part string, frequency int, demand int) SKU {
	return SKU{
		PartNo:          part,
		AnnualFrequency: frequency,
		AnnualPieceQty:  demand,
		BoxVolumeM3:     1.0,
		PiecesPerBox:    1,
		BoxWidthM:       0.33,
		BoxDepthM:       0.3,
		BoxHeightM:      0.15,
		HeightM:         0.2,
		LengthM:         0.4,
		WidthM:          0.3,
	}
}

// smallGeometry builds a geometry row that passes the size filter and packs
// tightly into the default slot.
func smallGeometry(part, name string) Geometry {
	return Geometry{
		PartNo:       part,
		PartName:     name,
		BoxVolumeM3:  0.01,
		PiecesPerBox: 10,
		BoxWidthM:    0.33,
		BoxDepthM:    0.3,
		BoxHeightM:   0.15,
		HeightM:      0.2,
		LengthM:      0.4,
		WidthM:       0.3,
	}
}

// testConfig is DefaultConfig shrunk to keep unit tests readable.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxBasketSize = 10
	return cfg
}
