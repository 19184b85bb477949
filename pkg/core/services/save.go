package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
)

// SaveStore defines the record operations needed to toggle a save.
type SaveStore interface {
	SavedEvents(ctx context.Context, email string) ([]model.Event, error)
	SaveSavedEvents(ctx context.Context, email string, events []model.Event) error
}

// ToggleSave adds the event to the identity's save-list as a full
// snapshot, or removes it by id if already present. Re-adding after a
// removal appends at the end of the list, not at the original position.
// Returns whether the event is saved after the toggle.
func ToggleSave(ctx context.Context, db SaveStore, logger *zap.Logger, email string, event model.Event) (bool, error) {
	saved, err := db.SavedEvents(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to read save-list: %w", err)
	}

	index := -1
	for i, e := range saved {
		if e.ID == event.ID {
			index = i
			break
		}
	}

	if index == -1 {
		// Snapshot the event as displayed, derived fields included
		saved = append(saved, event)
		logger.Debug("Saving event", zap.String("event_id", event.ID), zap.Int("saved_count", len(saved)))
	} else {
		saved = append(saved[:index], saved[index+1:]...)
		logger.Debug("Removing saved event", zap.String("event_id", event.ID), zap.Int("saved_count", len(saved)))
	}

	if err := db.SaveSavedEvents(ctx, email, saved); err != nil {
		return false, fmt.Errorf("failed to write save-list: %w", err)
	}
	return index == -1, nil
}

// SavedIDs extracts the ordered id sequence from a save-list.
func SavedIDs(saved []model.Event) []string {
	ids := make([]string, len(saved))
	for i, e := range saved {
		ids[i] = e.ID
	}
	return ids
}
