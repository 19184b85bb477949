package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/services"
)

// StatusCmd creates the status command
func StatusCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status <event_id>",
		Short: "Show your registration status for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser(app)
			if err != nil {
				return err
			}

			events, err := loadDerivedEvents(app)
			if err != nil {
				return err
			}
			event, err := findEvent(events, args[0])
			if err != nil {
				return err
			}

			status, err := services.CheckStatus(app.Ctx, app.DB, app.Logger, event.ID, user.Email)
			if status == services.StatusError {
				return err
			}

			fmt.Printf("%s: %s\n", event.Title, renderStatus(string(status)))
			return nil
		},
	}
}
