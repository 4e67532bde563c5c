package cmd

import (
	"log"

	"pipegrade/core/config"
	"pipegrade/core/logger"
	"pipegrade/feature/cover"
	"pipegrade/feature/ingest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// coverCmd represents the cover command
var coverCmd = &cobra.Command{
	Use:   "cover <network.json>",
	Short: "Derive shaft heights from cover and pipe elevations",
	Long: `Loads a network file (usually one already gradient-adjusted), computes
the cover-to-invert height of every shaft from its connected pipes and
writes the updated network and a height report back out.`,
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

		// 4. Run the height pass
		strategy, err := cfg.Compat.Build()
		if err != nil {
			return err
		}
		calc, err := cover.NewCalculator(cfg.Cover, strategy, logger.WithComponent(logg, "cover"))
		if err != nil {
			return err
		}

		report, err := calc.Run(mediums)
		if err != nil {
			return err
		}

		logg.Info("cover height run finished",
			zap.Int("shafts", report.Summary.TotalShafts),
			zap.Int("without_pipes", report.Summary.NoPipeShafts),
			zap.Int("clamped", report.Summary.ClampedShafts))

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
			logg.Info("updated network written", zap.String("file", outputPath))
		}

		return nil
	},
}

func init() {
	coverCmd.Flags().StringP("report", "r", "", "write the height report to this file")
	coverCmd.Flags().StringP("output", "o", "", "write the updated network to this file")
	RootCmd.AddCommand(coverCmd)
}
