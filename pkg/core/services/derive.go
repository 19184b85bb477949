package services

import (
	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
)

// DeriveCounts recomputes the denormalized volunteer count for every event
// from the volunteers' assignment sets, and applies the default capacity to
// events that don't declare one. Pure: the input slice is not modified.
//
// Persisted counts are never trusted; this is the only source of
// currentVolunteers anywhere in the application.
func DeriveCounts(events []model.Event, volunteers []model.Volunteer) []model.Event {
	counts := countByEvent(volunteers)

	derived := make([]model.Event, len(events))
	for i, event := range events {
		event.CurrentVolunteers = counts[event.ID]
		if event.MaxVolunteers <= 0 {
			event.MaxVolunteers = model.DefaultMaxVolunteers
		}
		derived[i] = event
	}
	return derived
}

// countByEvent indexes volunteers by assigned event id, so deriving all
// events costs O(events + assignments) rather than O(events × volunteers).
func countByEvent(volunteers []model.Volunteer) map[string]int {
	counts := make(map[string]int)
	for _, v := range volunteers {
		for _, eventID := range v.AssignedEvents {
			counts[eventID]++
		}
	}
	return counts
}
