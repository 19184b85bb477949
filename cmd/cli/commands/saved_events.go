package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/services"
)

// SavedEventsCmd creates the savedEvents command
func SavedEventsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "savedEvents",
		Short: "Show your save-list (snapshots taken at save time)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}

			saved, err := app.DB.SavedEvents(app.Ctx, user.Email)
			if err != nil {
				return fmt.Errorf("failed to load save-list: %w", err)
			}

			renderEventTable(os.Stdout, saved, services.SavedIDs(saved))
			return nil
		},
	}
}
