package commands

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
	"github.com/hannahbrooks/volunteer-connect/pkg/core/services"
)

// ListEventsCmd creates the listEvents command
func ListEventsCmd(app *AppContext) *cobra.Command {
	var (
		search    string
		tags      []string
		savedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "listEvents",
		Short: "List events open for volunteering, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			known := app.Cfg.Tags()
			for _, tag := range tags {
				if !slices.Contains(known, tag) {
					return fmt.Errorf("unknown tag %q (available: %s)", tag, strings.Join(known, ", "))
				}
			}

			app.Logger.Debug("listEvents command",
				zap.String("search", search),
				zap.Strings("tags", tags),
				zap.Bool("saved_only", savedOnly))

			events, err := loadDerivedEvents(app)
			if err != nil {
				return err
			}

			filtered := services.FilterEvents(events, search, tags)
			savedIDs := savedIDsFor(app)

			if savedOnly {
				saved := make(map[string]bool, len(savedIDs))
				for _, id := range savedIDs {
					saved[id] = true
				}
				kept := make([]model.Event, 0, len(filtered))
				for _, e := range filtered {
					if saved[e.ID] {
						kept = append(kept, e)
					}
				}
				filtered = kept
			}

			renderEventTable(os.Stdout, filtered, savedIDs)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by title substring (case-insensitive)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Keep only events carrying every given tag (repeatable)")
	cmd.Flags().BoolVar(&savedOnly, "saved", false, "Show only events on your save-list")

	return cmd
}
