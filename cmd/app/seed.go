package main

import (
	"os"

	"dispatch/cmd"

	"github.com/spf13/cobra"
)

var seedOptions cmd.SeedOptions

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the store with demo drivers, vehicles and orders",
	RunE: func(c *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		root, err := cmd.NewCompositionRoot(cfg, logger)
		if err != nil {
			return err
		}
		defer func() { _ = root.Close() }()

		seedOptions.Progress = os.Stderr
		report, err := root.Seed(c.Context(), seedOptions)
		if err != nil {
			return err
		}

		logger.Info("seeded",
			"drivers", report.Drivers,
			"vehicles", report.Vehicles,
			"orders", report.Orders,
			"ready", report.Ready,
		)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedOptions.Drivers, "drivers", 5, "drivers per center")
	seedCmd.Flags().IntVar(&seedOptions.Vehicles, "vehicles", 5, "vehicles per center")
	seedCmd.Flags().IntVar(&seedOptions.Orders, "orders", 20, "orders per center")
}
