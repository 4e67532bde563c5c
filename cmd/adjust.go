package cmd

import (
	"log"

	"pipegrade/core/config"
	"pipegrade/core/logger"
	"pipegrade/feature/gradient"
	"pipegrade/feature/ingest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// adjustCmd represents the adjust command
var adjustCmd = &cobra.Command{
	Use:   "adjust <network.json>",
	Short: "Normalize pipe gradients of a network file",
	Long: `Loads an extracted network file, anchors every pipe run to its shafts,
enforces descending flow within the configured gradient bounds and writes
the adjusted network and an adjustment report back out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, _ := cmd.Flags().GetString("config")
		reportPath, _ := cmd.Flags().GetString("report")
		outputPath, _ := cmd.Flags().GetString("output")

		// 1. Load Configuration
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Load Network
		mediums, err := ingest.LoadNetwork(args[0])
		if err != nil {
			return err
		}
		logg.Info("network loaded",
			zap.String("file", args[0]),
			zap.Int("mediums", len(mediums)))

		// 4. Build and run the gradient engine
		strategy, err := cfg.Compat.Build()
		if err != nil {
			return err
		}
		engine, err := gradient.NewEngine(cfg.Gradient, strategy, logger.WithComponent(logg, "gradient"))
		if err != nil {
			return err
		}
		engine.Load(mediums)

		report, err := engine.Run()
		if err != nil {
			return err
		}

		logg.Info("gradient run finished",
			zap.Int("pipes", report.Summary.TotalPipes),
			zap.Int("adjustments", report.Summary.TotalAdjustments),
			zap.Int("skipped", report.Summary.SkippedPipes),
			zap.Float64("total_elevation_change_m", report.Summary.TotalElevationChange))

		// 5. Write outputs
		if reportPath != "" {
			if err := ingest.WriteReport(reportPath, report); err != nil {
				return err
			}
			logg.Info("report written", zap.String("file", reportPath))
		}
		if outputPath != "" {
			if err := ingest.WriteNetwork(outputPath, mediums); err != nil {
				return err
			}
			logg.Info("adjusted network written", zap.String("file", outputPath))
		}

		return nil
	},
}

func init() {
	adjustCmd.Flags().StringP("report", "r", "", "write the adjustment report to this file")
	adjustCmd.Flags().StringP("output", "o", "", "write the adjusted network to this file")
	RootCmd.AddCommand(adjustCmd)
}
