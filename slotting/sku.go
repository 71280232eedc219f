package slotting

import "math"

// SKU is one stock-keeping unit, built once by the demand aggregator from a
// year of transaction history plus the item geometry table. It is immutable
// after aggregation: later stages (allocation, discretization, placement)
// attach their outputs to their own result types instead of mutating it.
type SKU struct {
	PartNo   string
	PartName string

	AnnualFrequency int // pick transactions per year
	AnnualPieceQty  int // pieces picked per year

	BoxVolumeM3  float64
	PiecesPerBox int
	BoxWidthM    float64
	BoxDepthM    float64
	BoxHeightM   float64

	// Item outer dimensions, used only by the FPA eligibility size filter.
	HeightM float64
	LengthM float64
	WidthM  float64
}

// VolumePerPiece returns the storage volume of a single piece.
func (s *SKU) VolumePerPiece() float64 {
	return s.BoxVolumeM3 / float64(s.PiecesPerBox)
}

// DemandVolume returns the annual demand volume ("flow", D): the total
// volume of product moved per year for this SKU.
func (s *SKU) DemandVolume() float64 {
	return float64(s.AnnualPieceQty) * s.VolumePerPiece()
}

// Viscosity is the selection ranking score: pick frequency normalized by the
// square root of flow. Undefined for zero flow; the ranker excludes those
// SKUs before calling this.
func (s *SKU) Viscosity() float64 {
	return float64(s.AnnualFrequency) / math.Sqrt(s.DemandVolume())
}

// Transaction is one historical pick event. ShippingDay, DeliveryNo and
// Location together form the basket key used by the affinity grouper; which
// of them applies depends on Config.BasketKey.
type Transaction struct {
	PartNo      string
	Quantity    int
	ShippingDay int    // calendar day as yyyymmdd
	DeliveryNo  string // delivery/shipment grouping identifier
	Location    string // destination location code
}

// Geometry is one row of the item geometry table, keyed by part number.
type Geometry struct {
	PartNo       string
	PartName     string
	BoxVolumeM3  float64
	PiecesPerBox int
	BoxWidthM    float64
	BoxDepthM    float64
	BoxHeightM   float64
	HeightM      float64
	LengthM      float64
	WidthM       float64
}
