package cmd

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fastpick-sim/fastpick-sim/slotting"
)

// ScenarioConfig is the YAML shape of a warehouse scenario file. Every field
// is optional; zero values keep the defaults, so a file only needs to state
// what differs from the reference warehouse.
type ScenarioConfig struct {
	Economics struct {
		TotalFPAVolumeM3     float64 `yaml:"total_fpa_volume_m3"`
		TimeSavedPerPickMin  float64 `yaml:"time_saved_per_pick_min"`
		ReplenishmentTimeMin float64 `yaml:"replenishment_time_min"`
	} `yaml:"economics"`

	Layout struct {
		NumCabinets         int     `yaml:"num_cabinets"`
		NumFloorsPerCabinet int     `yaml:"num_floors_per_cabinet"`
		SlotWidthM          float64 `yaml:"slot_width_m"`
		SlotDepthM          float64 `yaml:"slot_depth_m"`
		SlotHeightM         float64 `yaml:"slot_height_m"`
		FloorPriority       []int   `yaml:"floor_priority_order"`
	} `yaml:"layout"`

	Affinity struct {
		ScoreThreshold float64 `yaml:"score_threshold"`
		MaxBasketSize  int     `yaml:"max_basket_size"`
	} `yaml:"affinity"`

	SizeFilter struct {
		HeightMaxM float64 `yaml:"height_max_m"`
		DimMaxM    float64 `yaml:"dim_max_m"`
	} `yaml:"size_filter"`

	MaxCandidateSweep int `yaml:"max_candidate_sweep"`

	Policies struct {
		Ordering    string `yaml:"ordering"`
		Rounding    string `yaml:"rounding"`
		BasketKey   string `yaml:"basket_key"`
		VolumeBasis string `yaml:"volume_basis"`
	} `yaml:"policies"`
}

// LoadScenarioConfig reads and parses a scenario YAML file.
func LoadScenarioConfig(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc ScenarioConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Apply overlays the scenario's non-zero fields onto cfg and returns it.
func (sc *ScenarioConfig) Apply(cfg slotting.Config) slotting.Config {
	if v := sc.Economics.TotalFPAVolumeM3; v > 0 {
		cfg.TotalFPAVolumeM3 = v
	}
	if v := sc.Economics.TimeSavedPerPickMin; v > 0 {
		cfg.TimeSavedPerPickMin = v
	}
	if v := sc.Economics.ReplenishmentTimeMin; v > 0 {
		cfg.ReplenishmentTimeMin = v
	}
	if v := sc.Layout.NumCabinets; v > 0 {
		cfg.NumCabinets = v
	}
	if v := sc.Layout.NumFloorsPerCabinet; v > 0 {
		cfg.NumFloorsPerCabinet = v
	}
	if v := sc.Layout.SlotWidthM; v > 0 {
		cfg.SlotWidthM = v
	}
	if v := sc.Layout.SlotDepthM; v > 0 {
		cfg.SlotDepthM = v
	}
	if v := sc.Layout.SlotHeightM; v > 0 {
		cfg.SlotHeightM = v
	}
	if len(sc.Layout.FloorPriority) > 0 {
		cfg.FloorPriority = sc.Layout.FloorPriority
	}
	if v := sc.Affinity.ScoreThreshold; v > 0 {
		cfg.AffinityScoreThreshold = v
	}
	if v := sc.Affinity.MaxBasketSize; v > 0 {
		cfg.MaxBasketSize = v
	}
	if v := sc.SizeFilter.HeightMaxM; v > 0 {
		cfg.SizeFilterHeightMaxM = v
	}
	if v := sc.SizeFilter.DimMaxM; v > 0 {
		cfg.SizeFilterDimMaxM = v
	}
	if v := sc.MaxCandidateSweep; v > 0 {
		cfg.MaxCandidateSweep = v
	}
	if v := sc.Policies.Ordering; v != "" {
		cfg.Ordering = slotting.OrderingPolicy(v)
	}
	if v := sc.Policies.Rounding; v != "" {
		cfg.Rounding = slotting.RoundingPolicy(v)
	}
	if v := sc.Policies.BasketKey; v != "" {
		cfg.BasketKey = slotting.BasketKeyMode(v)
	}
	if v := sc.Policies.VolumeBasis; v != "" {
		cfg.Basis = slotting.VolumeBasis(v)
	}
	return cfg
}
