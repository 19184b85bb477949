package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
)

// renderEventTable writes the event list as an aligned table. A leading
// '*' marks saved events. STATUS uses the same advisory capacity gate
// the card UI uses: canceled wins over full, full over open.
func renderEventTable(w io.Writer, events []model.Event, savedIDs []string) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events available")
		return
	}

	saved := make(map[string]bool, len(savedIDs))
	for _, id := range savedIDs {
		saved[id] = true
	}

	titleWidth := len("TITLE")
	locationWidth := len("LOCATION")
	for _, e := range events {
		if len(e.Title) > titleWidth {
			titleWidth = len(e.Title)
		}
		if len(e.Location) > locationWidth {
			locationWidth = len(e.Location)
		}
	}

	header := fmt.Sprintf("   %-*s  %-10s  %-*s  %-10s  %-8s  %s",
		titleWidth, "TITLE", "DATE", locationWidth, "LOCATION", "VOLUNTEERS", "STATUS", "TAGS")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	for _, e := range events {
		marker := " "
		if saved[e.ID] {
			marker = "*"
		}
		status := "OPEN"
		if e.Canceled {
			status = "CANCELED"
		} else if e.Full() {
			status = "FULL"
		}
		row := fmt.Sprintf("%s  %-*s  %-10s  %-*s  %-10s  %-8s  %s",
			marker,
			titleWidth, e.Title,
			e.Date,
			locationWidth, e.Location,
			fmt.Sprintf("%d/%d", e.CurrentVolunteers, e.MaxVolunteers),
			status,
			strings.Join(e.Tags, ", "))
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// renderStatus maps a registration status to the notice shown to the user.
func renderStatus(status string) string {
	switch status {
	case "approved":
		return "You are already volunteering for this event."
	case "pending":
		return "You already have a pending request for this event."
	case "none":
		return "You have not requested to volunteer for this event."
	default:
		return "Unable to check volunteer status. Please try again."
	}
}
