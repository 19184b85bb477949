package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
	"github.com/hannahbrooks/volunteer-connect/pkg/core/services"
)

// loadDerivedEvents reads the events and volunteers collections and
// returns the events with freshly derived counts. Stored counts are
// never used directly.
func loadDerivedEvents(app *AppContext) ([]model.Event, error) {
	events, err := app.DB.Events(app.Ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	volunteers, err := app.DB.Volunteers(app.Ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load volunteers: %w", err)
	}
	return services.DeriveCounts(events, volunteers), nil
}

// findEvent returns the event with the given id.
func findEvent(events []model.Event, id string) (model.Event, error) {
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, fmt.Errorf("event not found: %s", id)
}

// requireUser returns the logged-in user or the auth-required error.
func requireUser(app *AppContext) (*model.User, error) {
	user, err := app.Session.CurrentUser(app.Ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if user == nil {
		return nil, services.ErrAuthRequired
	}
	return user, nil
}

// savedIDsFor returns the saved-id sequence for the logged-in user, or
// nil when nobody is logged in. Saved markers are cosmetic in listings,
// so session and read failures degrade to an empty set.
func savedIDsFor(app *AppContext) []string {
	user, err := app.Session.CurrentUser(app.Ctx)
	if err != nil || user == nil {
		return nil
	}
	saved, err := app.DB.SavedEvents(app.Ctx, user.Email)
	if err != nil {
		app.Logger.Warn("Failed to load save-list for markers", zap.Error(err))
		return nil
	}
	return services.SavedIDs(saved)
}
