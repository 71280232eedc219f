package slotting

import "fmt"

// OrderingPolicy selects the slot scan order used by the placement engine's
// standard tier.
type OrderingPolicy string

const (
	// OrderFloorPriority scans floors in ergonomic priority order crossed
	// with ascending cabinet index.
	OrderFloorPriority OrderingPolicy = "floor-priority"
	// OrderWalkingDistance scans cabinets in ascending walking distance from
	// the start point crossed with ergonomic floor order.
	OrderWalkingDistance OrderingPolicy = "walking-distance"
)

// RoundingPolicy selects how fractional shelf columns are rounded when
// discretizing a continuous volume allocation.
type RoundingPolicy string

const (
	// RoundCeil always rounds a partial column up.
	RoundCeil RoundingPolicy = "ceil"
	// RoundHalfUp adds the partial column only when it is more than half full.
	RoundHalfUp RoundingPolicy = "half-up"
)

// BasketKeyMode selects how pick transactions are grouped into baskets for
// co-occurrence scoring.
type BasketKeyMode string

const (
	// BasketByDelivery groups picks by delivery number.
	BasketByDelivery BasketKeyMode = "delivery"
	// BasketByDayLocation groups picks by shipping day + destination location.
	BasketByDayLocation BasketKeyMode = "day-location"
)

// VolumeBasis selects the total volume the benefit-peak search allocates.
type VolumeBasis string

const (
	// VolumeBasisFixed uses Config.TotalFPAVolumeM3 as-is.
	VolumeBasisFixed VolumeBasis = "fixed"
	// VolumeBasisCabinetCapacity uses the full geometric capacity of the
	// cabinet grid (cabinets x floors x slot W x D x H).
	VolumeBasisCabinetCapacity VolumeBasis = "cabinet-capacity"
)

// Config carries every externally supplied constant of the pipeline.
type Config struct {
	// Economics of the benefit model.
	TotalFPAVolumeM3     float64 // V: total volume the allocator distributes
	TimeSavedPerPickMin  float64 // s: minutes saved per pick served from the FPA
	ReplenishmentTimeMin float64 // Cr: minutes per replenishment trip

	// Physical layout.
	NumCabinets         int
	NumFloorsPerCabinet int
	SlotWidthM          float64
	SlotDepthM          float64
	SlotHeightM         float64
	FloorPriority       []int // permutation of 1..NumFloorsPerCabinet, best first

	// Affinity grouping.
	AffinityScoreThreshold float64
	MaxBasketSize          int // baskets with more distinct SKUs are ignored

	// FPA eligibility size filter.
	SizeFilterHeightMaxM float64
	SizeFilterDimMaxM    float64

	// Cap on the benefit-peak search's n range.
	MaxCandidateSweep int

	// Policy choices left open by the source revisions.
	Ordering  OrderingPolicy
	Rounding  RoundingPolicy
	BasketKey BasketKeyMode
	Basis     VolumeBasis
}

// DefaultConfig returns the constants of the reference warehouse: a 24
// cabinet x 5 floor grid of 1.98 m slots, 36 m3 of FPA volume, and the
// measured time constants (2.21 min search time saved per pick, 15 min per
// replenishment trip).
func DefaultConfig() Config {
	return Config{
		TotalFPAVolumeM3:     36.0,
		TimeSavedPerPickMin:  2.21,
		ReplenishmentTimeMin: 15.0,

		NumCabinets:         24,
		NumFloorsPerCabinet: 5,
		SlotWidthM:          1.98,
		SlotDepthM:          0.6,
		SlotHeightM:         0.3,
		FloorPriority:       []int{3, 2, 4, 1, 5},

		AffinityScoreThreshold: 30.0,
		MaxBasketSize:          30,

		SizeFilterHeightMaxM: 1.5,
		SizeFilterDimMaxM:    0.68,

		MaxCandidateSweep: 500,

		Ordering:  OrderFloorPriority,
		Rounding:  RoundCeil,
		BasketKey: BasketByDayLocation,
		Basis:     VolumeBasisFixed,
	}
}

// Validate reports the first structural problem with the configuration.
// A broken Config is the caller's fault and aborts the run, unlike per-SKU
// data problems which are counted and skipped.
func (c *Config) Validate() error {
	if c.TotalFPAVolumeM3 <= 0 {
		return fmt.Errorf("config: total_fpa_volume_m3 must be > 0, got %v", c.TotalFPAVolumeM3)
	}
	if c.TimeSavedPerPickMin <= 0 || c.ReplenishmentTimeMin <= 0 {
		return fmt.Errorf("config: time constants must be > 0, got s=%v Cr=%v",
			c.TimeSavedPerPickMin, c.ReplenishmentTimeMin)
	}
	if c.NumCabinets < 1 || c.NumFloorsPerCabinet < 1 {
		return fmt.Errorf("config: need at least one cabinet and one floor, got %dx%d",
			c.NumCabinets, c.NumFloorsPerCabinet)
	}
	if c.SlotWidthM <= 0 || c.SlotDepthM <= 0 || c.SlotHeightM <= 0 {
		return fmt.Errorf("config: slot dimensions must be > 0, got %vx%vx%v",
			c.SlotWidthM, c.SlotDepthM, c.SlotHeightM)
	}
	if len(c.FloorPriority) != c.NumFloorsPerCabinet {
		return fmt.Errorf("config: floor_priority_order must list all %d floors, got %v",
			c.NumFloorsPerCabinet, c.FloorPriority)
	}
	seen := make(map[int]bool, len(c.FloorPriority))
	for _, f := range c.FloorPriority {
		if f < 1 || f > c.NumFloorsPerCabinet || seen[f] {
			return fmt.Errorf("config: floor_priority_order must be a permutation of 1..%d, got %v",
				c.NumFloorsPerCabinet, c.FloorPriority)
		}
		seen[f] = true
	}
	if c.MaxCandidateSweep < 1 {
		return fmt.Errorf("config: max_candidate_sweep must be >= 1, got %d", c.MaxCandidateSweep)
	}
	if c.MaxBasketSize < 2 {
		return fmt.Errorf("config: max_basket_size must be >= 2, got %d", c.MaxBasketSize)
	}
	switch c.Ordering {
	case OrderFloorPriority, OrderWalkingDistance:
	default:
		return fmt.Errorf("config: unknown ordering policy %q", c.Ordering)
	}
	switch c.Rounding {
	case RoundCeil, RoundHalfUp:
	default:
		return fmt.Errorf("config: unknown rounding policy %q", c.Rounding)
	}
	switch c.BasketKey {
	case BasketByDelivery, BasketByDayLocation:
	default:
		return fmt.Errorf("config: unknown basket key mode %q", c.BasketKey)
	}
	switch c.Basis {
	case VolumeBasisFixed, VolumeBasisCabinetCapacity:
	default:
		return fmt.Errorf("config: unknown volume basis %q", c.Basis)
	}
	return nil
}

// TotalShelfWidthM is the hard physical width capacity of the cabinet grid.
func (c *Config) TotalShelfWidthM() float64 {
	return float64(c.NumCabinets*c.NumFloorsPerCabinet) * c.SlotWidthM
}

// CabinetCapacityM3 is the full geometric volume of the cabinet grid.
func (c *Config) CabinetCapacityM3() float64 {
	return float64(c.NumCabinets*c.NumFloorsPerCabinet) * c.SlotWidthM * c.SlotDepthM * c.SlotHeightM
}

// SearchVolume returns the total volume the benefit-peak search distributes,
// per the configured basis.
func (c *Config) SearchVolume() float64 {
	if c.Basis == VolumeBasisCabinetCapacity {
		return c.CabinetCapacityM3()
	}
	return c.TotalFPAVolumeM3
}
