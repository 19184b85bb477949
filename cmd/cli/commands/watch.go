package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
	"github.com/hannahbrooks/volunteer-connect/pkg/core/services"
)

// WatchCmd creates the watch command
func WatchCmd(app *AppContext) *cobra.Command {
	var intervalMs int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the store and report event and save-list changes",
		Long: `Poll the store on an interval and report changes as they land.

Volunteer counts are recomputed on every cycle and written back, so other
commands reading the store see up-to-date numbers. Save-list changes are
reported only when the list actually differs from the last cycle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}

			interval := app.Cfg.PollInterval()
			if cmd.Flags().Changed("interval-ms") {
				interval = time.Duration(intervalMs) * time.Millisecond
			}

			ctx, stop := signal.NotifyContext(app.Ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			var lastCounts map[string]int

			rec := services.NewReconciler(app.DB, app.Logger, user.Email, interval)
			rec.OnEvents = func(events []model.Event) {
				counts := make(map[string]int, len(events))
				for _, e := range events {
					counts[e.ID] = e.CurrentVolunteers
				}
				if lastCounts != nil {
					for _, e := range events {
						if prev, ok := lastCounts[e.ID]; ok && prev != e.CurrentVolunteers {
							fmt.Printf("%s  %q volunteers: %d -> %d\n",
								time.Now().Format("15:04:05"), e.Title, prev, e.CurrentVolunteers)
						}
					}
				}
				lastCounts = counts
			}
			rec.OnSaved = func(ids []string) {
				fmt.Printf("%s  save-list changed: %d event(s) saved\n",
					time.Now().Format("15:04:05"), len(ids))
			}

			app.Logger.Info("Starting watch loop",
				zap.String("volunteer", user.Email),
				zap.Duration("interval", interval))
			fmt.Printf("Watching for changes every %s (Ctrl+C to stop)...\n", interval)

			err = rec.Run(ctx)
			if errors.Is(err, context.Canceled) {
				fmt.Println("\nStopped.")
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&intervalMs, "interval-ms", 0, "Override the poll interval in milliseconds")

	return cmd
}
