package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/services"
	"github.com/hannahbrooks/volunteer-connect/pkg/records"
)

// RegisterCmd creates the register command
func RegisterCmd(app *AppContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "register <event_id> [position]",
		Short: "Request a volunteer position on an event",
		Long: `Request a volunteer position on an event.

Checks your registration status first: nothing is submitted if you are
already volunteering for the event or already have a pending request.
If no position is given you are prompted to pick one of the event's open
positions. The request goes to the admin team for approval.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := loadDerivedEvents(app)
			if err != nil {
				return err
			}
			event, err := findEvent(events, args[0])
			if err != nil {
				return err
			}

			if event.Canceled {
				fmt.Println("Notice: this event has been canceled.")
				return nil
			}
			if event.Full() {
				// Advisory gate: the affordance is disabled, but a request
				// already in flight elsewhere is not rolled back
				fmt.Println("Event Full: this event has reached its volunteer limit and is now closed.")
				return nil
			}

			user, err := app.Session.CurrentUser(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to read session: %w", err)
			}

			positions, err := services.BeginRegistration(app.Ctx, app.DB, app.Logger, user, event)
			switch {
			case errors.Is(err, services.ErrAlreadyApproved), errors.Is(err, services.ErrAlreadyPending):
				fmt.Printf("Notice: %s\n", err)
				return nil
			case err != nil:
				return err
			}

			if len(positions) == 0 {
				fmt.Println("Notice: this event has no open positions.")
				return nil
			}

			reader := bufio.NewReader(os.Stdin)

			if !yes {
				fmt.Printf("Do you want to register for %q? [y/N] ", event.Title)
				if !confirm(reader) {
					fmt.Println("Registration canceled.")
					return nil
				}
			}

			position := ""
			if len(args) == 2 {
				position = args[1]
			} else {
				position, err = pickPosition(reader, event.Title, positions)
				if err != nil {
					return err
				}
			}

			req, err := services.SubmitPosition(app.Ctx, app.DB, app.Logger, event, *user, position)
			if errors.Is(err, records.ErrDuplicatePending) {
				fmt.Println("Notice: you already have a pending request for this event.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to submit volunteer request: %w", err)
			}

			app.Logger.Debug("register command completed", zap.String("request_id", req.ID))
			fmt.Printf("Success: your volunteer request for %s has been submitted for approval. The admin will review your request.\n", req.Position)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func confirm(reader *bufio.Reader) bool {
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func pickPosition(reader *bufio.Reader, eventTitle string, positions []string) (string, error) {
	fmt.Printf("\nSelect a volunteer position for %s:\n", eventTitle)
	for i, p := range positions {
		fmt.Printf("  %d. %s\n", i+1, p)
	}
	fmt.Print("> ")

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read position selection: %w", err)
	}
	line = strings.TrimSpace(line)

	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(positions) {
			return "", fmt.Errorf("position number out of range: %d", n)
		}
		return positions[n-1], nil
	}

	// Accept the position name itself as well
	for _, p := range positions {
		if strings.EqualFold(p, line) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown position: %s", line)
}
