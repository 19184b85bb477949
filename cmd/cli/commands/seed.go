package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/services"
)

// SeedCmd creates the seed command
func SeedCmd(app *AppContext) *cobra.Command {
	var eventCount int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with demo events and volunteers",
		Long: `Populate the store with demo events and volunteers.

Event dates are generated from the recurrence rule in the configuration
file. Existing events and volunteers are replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Info("Seeding demo data",
				zap.Int("event_count", eventCount),
				zap.String("schedule", app.Cfg.SeedSchedule))

			result, err := services.SeedDemoData(app.Ctx, app.DB, app.Logger, app.Cfg.SeedSchedule, eventCount)
			if err != nil {
				return fmt.Errorf("failed to seed demo data: %w", err)
			}

			fmt.Printf("Seeded %d event(s) and %d volunteer(s).\n", len(result.Events), len(result.Volunteers))
			return nil
		},
	}

	cmd.Flags().IntVar(&eventCount, "events", 6, "Number of demo events to create (max 6)")

	return cmd
}
