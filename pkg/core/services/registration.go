package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
)

// Status is the registration state of an (event, identity) pair.
type Status string

const (
	StatusApproved Status = "approved"
	StatusPending  Status = "pending"
	StatusNone     Status = "none"
	StatusError    Status = "error"
)

// Workflow outcomes surfaced to the user as notices rather than faults.
var (
	ErrAuthRequired    = errors.New("please log in to volunteer for events")
	ErrAlreadyApproved = errors.New("you are already volunteering for this event")
	ErrAlreadyPending  = errors.New("you already have a pending request for this event")
	ErrStatusCheck     = errors.New("unable to check volunteer status")
)

// StatusStore defines the record operations needed to query registration
// state.
type StatusStore interface {
	Volunteers(ctx context.Context) ([]model.Volunteer, error)
	PendingRequests(ctx context.Context) ([]model.PendingVolunteerRequest, error)
}

// SubmitStore defines the record operations needed to submit a request
// and refresh the affected event's count.
type SubmitStore interface {
	Events(ctx context.Context) ([]model.Event, error)
	Volunteers(ctx context.Context) ([]model.Volunteer, error)
	SaveEvents(ctx context.Context, events []model.Event) error
	AppendPendingRequest(ctx context.Context, req model.PendingVolunteerRequest) error
}

// CheckStatus resolves the registration state for an event and identity:
// approved if a volunteer record with that email carries the event id in
// its assignment set, else pending if a pending request exists for the
// pair, else none. A store failure yields StatusError alongside the error.
func CheckStatus(ctx context.Context, db StatusStore, logger *zap.Logger, eventID, email string) (Status, error) {
	volunteers, err := db.Volunteers(ctx)
	if err != nil {
		logger.Warn("Failed to read volunteers for status check", zap.String("event_id", eventID), zap.Error(err))
		return StatusError, fmt.Errorf("%w: %w", ErrStatusCheck, err)
	}
	for _, v := range volunteers {
		if v.Email == email && v.AssignedTo(eventID) {
			return StatusApproved, nil
		}
	}

	pending, err := db.PendingRequests(ctx)
	if err != nil {
		logger.Warn("Failed to read pending requests for status check", zap.String("event_id", eventID), zap.Error(err))
		return StatusError, fmt.Errorf("%w: %w", ErrStatusCheck, err)
	}
	for _, p := range pending {
		if p.EventID == eventID && p.VolunteerEmail == email && p.Status == model.RequestPending {
			return StatusPending, nil
		}
	}

	return StatusNone, nil
}

// BeginRegistration gates the registration flow for an event. It requires
// an authenticated user and a clean status, and returns the positions
// open for selection. Approved, pending, and status-check failures come
// back as sentinel errors so the caller can render the right notice; none
// of them mutate any state.
func BeginRegistration(ctx context.Context, db StatusStore, logger *zap.Logger, user *model.User, event model.Event) ([]string, error) {
	if user == nil {
		return nil, ErrAuthRequired
	}

	status, err := CheckStatus(ctx, db, logger, event.ID, user.Email)
	switch status {
	case StatusApproved:
		return nil, ErrAlreadyApproved
	case StatusPending:
		return nil, ErrAlreadyPending
	case StatusError:
		return nil, err
	}

	logger.Debug("Registration open",
		zap.String("event_id", event.ID),
		zap.String("email", user.Email),
		zap.Int("positions", len(event.VolunteerCategories)))

	return event.VolunteerCategories, nil
}

// SubmitPosition appends a pending registration request for the chosen
// position and immediately refreshes the event's persisted volunteer
// count, so capacity pressure is visible before the next poll tick.
// Capacity itself is advisory and not re-checked here.
func SubmitPosition(ctx context.Context, db SubmitStore, logger *zap.Logger, event model.Event, user model.User, position string) (*model.PendingVolunteerRequest, error) {
	if !event.HasPosition(position) {
		return nil, fmt.Errorf("position %q is not open for event %q", position, event.Title)
	}

	now := time.Now().UnixMilli()
	req := model.PendingVolunteerRequest{
		ID:             strconv.FormatInt(now, 10),
		EventID:        event.ID,
		EventTitle:     event.Title,
		VolunteerName:  user.FullName(),
		VolunteerEmail: user.Email,
		Status:         model.RequestPending,
		Timestamp:      now,
		Position:       position,
	}

	if err := db.AppendPendingRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to submit volunteer request: %w", err)
	}

	logger.Info("Volunteer request submitted",
		zap.String("request_id", req.ID),
		zap.String("event_id", event.ID),
		zap.String("position", position))

	if err := RefreshEventCount(ctx, db, logger, event.ID); err != nil {
		// The request itself is durable; the count catches up on the next tick
		logger.Warn("Failed to refresh event count after submit", zap.String("event_id", event.ID), zap.Error(err))
	}

	return &req, nil
}

// RefreshEventCount re-derives the volunteer count for a single event and
// writes the events collection back.
func RefreshEventCount(ctx context.Context, db SubmitStore, logger *zap.Logger, eventID string) error {
	events, err := db.Events(ctx)
	if err != nil {
		return err
	}
	volunteers, err := db.Volunteers(ctx)
	if err != nil {
		return err
	}

	counts := countByEvent(volunteers)
	for i := range events {
		if events[i].ID != eventID {
			continue
		}
		events[i].CurrentVolunteers = counts[eventID]
		if events[i].MaxVolunteers <= 0 {
			events[i].MaxVolunteers = model.DefaultMaxVolunteers
		}
	}

	return db.SaveEvents(ctx, events)
}
