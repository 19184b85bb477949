package services

import (
	"context"
	"errors"
	"slices"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
)

// fakeStore is an in-memory stand-in for the records layer. Setting an
// entry in failures makes the corresponding operation fail, to exercise
// the skip-and-continue error paths.
type fakeStore struct {
	events     []model.Event
	volunteers []model.Volunteer
	pending    []model.PendingVolunteerRequest
	saved      map[string][]model.Event

	failures map[string]error

	savedEventsWrites int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		saved:    map[string][]model.Event{},
		failures: map[string]error{},
	}
}

func (f *fakeStore) fail(op string) {
	f.failures[op] = errors.New(op + " unavailable")
}

func (f *fakeStore) Events(ctx context.Context) ([]model.Event, error) {
	if err := f.failures["events"]; err != nil {
		return nil, err
	}
	return slices.Clone(f.events), nil
}

func (f *fakeStore) SaveEvents(ctx context.Context, events []model.Event) error {
	if err := f.failures["saveEvents"]; err != nil {
		return err
	}
	f.events = slices.Clone(events)
	f.savedEventsWrites++
	return nil
}

func (f *fakeStore) Volunteers(ctx context.Context) ([]model.Volunteer, error) {
	if err := f.failures["volunteers"]; err != nil {
		return nil, err
	}
	return slices.Clone(f.volunteers), nil
}

func (f *fakeStore) SaveVolunteers(ctx context.Context, volunteers []model.Volunteer) error {
	if err := f.failures["saveVolunteers"]; err != nil {
		return err
	}
	f.volunteers = slices.Clone(volunteers)
	return nil
}

func (f *fakeStore) PendingRequests(ctx context.Context) ([]model.PendingVolunteerRequest, error) {
	if err := f.failures["pendingRequests"]; err != nil {
		return nil, err
	}
	return slices.Clone(f.pending), nil
}

func (f *fakeStore) AppendPendingRequest(ctx context.Context, req model.PendingVolunteerRequest) error {
	if err := f.failures["appendPendingRequest"]; err != nil {
		return err
	}
	f.pending = append(f.pending, req)
	return nil
}

func (f *fakeStore) SavedEvents(ctx context.Context, email string) ([]model.Event, error) {
	if err := f.failures["savedEvents"]; err != nil {
		return nil, err
	}
	return slices.Clone(f.saved[email]), nil
}

func (f *fakeStore) SaveSavedEvents(ctx context.Context, email string, events []model.Event) error {
	if err := f.failures["saveSavedEvents"]; err != nil {
		return err
	}
	f.saved[email] = slices.Clone(events)
	return nil
}
