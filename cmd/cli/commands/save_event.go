package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/services"
)

// SaveEventCmd creates the saveEvent command
func SaveEventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "saveEvent <event_id>",
		Short: "Toggle an event on your save-list",
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
			if event.Canceled {
				fmt.Println("Notice: canceled events cannot be saved.")
				return nil
			}

			saved, err := services.ToggleSave(app.Ctx, app.DB, app.Logger, user.Email, event)
			if err != nil {
				return err
			}

			if saved {
				fmt.Printf("Saved %q.\n", event.Title)
			} else {
				fmt.Printf("Removed %q from your save-list.\n", event.Title)
			}
			return nil
		},
	}
}
