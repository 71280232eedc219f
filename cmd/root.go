package cmd

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fastpick-sim/fastpick-sim/picksim"
	"github.com/fastpick-sim/fastpick-sim/slotting"
)

var (
	logLevel string

	// optimize flags
	transactionsPath string
	geometryPath     string
	scenarioPath     string
	outDir           string
	ordering         string
	rounding         string
	basketKey        string
	volumeBasis      string
	fpaVolume        float64
	maxSweep         int

	// compare flags
	placementPath string
	pickLinesPath string
	pickerCounts  []int
	shiftMinutes  float64
	seed          int64
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "fastpick-sim",
	Short: "Fast-pick area design: SKU selection, slotting, and picking comparison",
}

// optimizeCmd runs the full slotting pipeline over CSV inputs.
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Select SKUs, allocate volume, and place them into slots",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := slotting.DefaultConfig()
		if scenarioPath != "" {
			loaded, err := LoadScenarioConfig(scenarioPath)
			if err != nil {
				logrus.Fatalf("unable to read scenario config: %v", err)
			}
			cfg = loaded.Apply(cfg)
		}
		applyPolicyFlags(&cfg)

		txns, err := ReadTransactionsCSV(transactionsPath)
		if err != nil {
			logrus.Fatalf("unable to read transactions: %v", err)
		}
		geometry, err := ReadGeometryCSV(geometryPath)
		if err != nil {
			logrus.Fatalf("unable to read geometry: %v", err)
		}

		result, err := slotting.Run(txns, geometry, cfg)
		if err != nil {
			logrus.Fatalf("pipeline failed: %v", err)
		}
		result.Summary.Print()

		if outDir != "" {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				logrus.Fatalf("unable to create output dir: %v", err)
			}
			if err := WriteSelectionCSV(filepath.Join(outDir, "selection.csv"), result.SelectionTable()); err != nil {
				logrus.Fatalf("unable to write selection table: %v", err)
			}
			if err := WritePlacementCSV(filepath.Join(outDir, "placement.csv"), result.PlacementTable()); err != nil {
				logrus.Fatalf("unable to write placement table: %v", err)
			}
			logrus.Infof("wrote selection.csv and placement.csv to %s", outDir)
		}
	},
}

// compareCmd replays a shift of pick lines through the before/after
// scenarios using a previously exported placement table.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Simulate picker productivity before and after the fast-pick area",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := slotting.DefaultConfig()
		layout := slotting.NewLayout(cfg, nil)

		placements, err := ReadPlacementCSV(placementPath)
		if err != nil {
			logrus.Fatalf("unable to read placement table: %v", err)
		}
		cabinetByPart := make(map[string]int, len(placements))
		for _, p := range placements {
			cabinetByPart[p.PartNo] = p.CabinetID
		}

		orders, err := ReadPickLinesCSV(pickLinesPath, cabinetByPart, layout)
		if err != nil {
			logrus.Fatalf("unable to read pick lines: %v", err)
		}

		rows := picksim.Compare(orders, pickerCounts, shiftMinutes, seed)
		for i := range rows {
			rows[i].Before.Print()
			rows[i].After.Print()
		}
		if outDir != "" {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				logrus.Fatalf("unable to create output dir: %v", err)
			}
			if err := WriteComparisonCSV(filepath.Join(outDir, "comparison.csv"), rows); err != nil {
				logrus.Fatalf("unable to write comparison table: %v", err)
			}
			logrus.Infof("wrote comparison.csv to %s", outDir)
		}
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

func applyPolicyFlags(cfg *slotting.Config) {
	if ordering != "" {
		cfg.Ordering = slotting.OrderingPolicy(ordering)
	}
	if rounding != "" {
		cfg.Rounding = slotting.RoundingPolicy(rounding)
	}
	if basketKey != "" {
		cfg.BasketKey = slotting.BasketKeyMode(basketKey)
	}
	if volumeBasis != "" {
		cfg.Basis = slotting.VolumeBasis(volumeBasis)
	}
	if fpaVolume > 0 {
		cfg.TotalFPAVolumeM3 = fpaVolume
	}
	if maxSweep > 0 {
		cfg.MaxCandidateSweep = maxSweep
	}
}

// Execute runs the CLI root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	optimizeCmd.Flags().StringVar(&transactionsPath, "transactions", "", "CSV of pick transactions")
	optimizeCmd.Flags().StringVar(&geometryPath, "geometry", "", "CSV of item geometry")
	optimizeCmd.Flags().StringVar(&scenarioPath, "config", "", "YAML scenario config (optional)")
	optimizeCmd.Flags().StringVar(&outDir, "out", "", "Directory for exported CSV tables")
	optimizeCmd.Flags().StringVar(&ordering, "ordering", "", "Slot scan order: floor-priority or walking-distance")
	optimizeCmd.Flags().StringVar(&rounding, "rounding", "", "Column rounding: ceil or half-up")
	optimizeCmd.Flags().StringVar(&basketKey, "basket-key", "", "Co-occurrence basket key: delivery or day-location")
	optimizeCmd.Flags().StringVar(&volumeBasis, "volume-basis", "", "Benefit search volume: fixed or cabinet-capacity")
	optimizeCmd.Flags().Float64Var(&fpaVolume, "fpa-volume", 0, "Total FPA volume in m3 (0 keeps the configured value)")
	optimizeCmd.Flags().IntVar(&maxSweep, "max-sweep", 0, "Cap on the benefit sweep's n range (0 keeps the configured value)")
	_ = optimizeCmd.MarkFlagRequired("transactions")
	_ = optimizeCmd.MarkFlagRequired("geometry")

	compareCmd.Flags().StringVar(&placementPath, "placement", "", "Placement CSV exported by optimize")
	compareCmd.Flags().StringVar(&pickLinesPath, "pick-lines", "", "CSV of pick lines to replay")
	compareCmd.Flags().IntSliceVar(&pickerCounts, "pickers", []int{20, 30, 40, 50, 60}, "Picker counts to sweep")
	compareCmd.Flags().Float64Var(&shiftMinutes, "shift-minutes", 480, "Shift length in minutes")
	compareCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for stochastic activity times")
	compareCmd.Flags().StringVar(&outDir, "out", "", "Directory for exported CSV tables")
	_ = compareCmd.MarkFlagRequired("placement")
	_ = compareCmd.MarkFlagRequired("pick-lines")

	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(compareCmd)
}
