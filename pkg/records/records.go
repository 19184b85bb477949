// Package records provides typed access to the JSON collections held in
// the shared record store: events, volunteers, pending registration
// requests, and per-identity save-lists.
//
// Every save is a full-collection rewrite (last-writer-wins against
// concurrent writers on the same key). A key that has never been written
// reads as an empty collection, and so does one holding malformed JSON:
// a collection this layer cannot decode is treated as absent, and the
// next save replaces it.
package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
	"github.com/hannahbrooks/volunteer-connect/pkg/store"
)

// Collection keys in the shared store.
const (
	keyEvents            = "events"
	keyVolunteers        = "volunteers"
	keyPendingVolunteers = "pendingVolunteers"
	keySavedEvents       = "savedEvents"
)

// ErrDuplicatePending is returned when a pending request already exists
// for the same (event, volunteer email) pair.
var ErrDuplicatePending = errors.New("records: pending request already exists for this event and volunteer")

// Records reads and writes the typed collections.
type Records struct {
	store store.Store
}

// New wraps a store with the typed collection layer.
func New(st store.Store) *Records {
	return &Records{store: st}
}

// Events returns the persisted events collection.
func (r *Records) Events(ctx context.Context) ([]model.Event, error) {
	return readCollection[model.Event](ctx, r.store, keyEvents)
}

// SaveEvents rewrites the whole events collection. Used by the
// derivation write-back, so persisted volunteer counts are only a
// read optimization and are overwritten on every pass.
func (r *Records) SaveEvents(ctx context.Context, events []model.Event) error {
	return writeCollection(ctx, r.store, keyEvents, events)
}

// Volunteers returns the approved volunteers collection. Read-only from
// this application; the admin workflow owns it.
func (r *Records) Volunteers(ctx context.Context) ([]model.Volunteer, error) {
	return readCollection[model.Volunteer](ctx, r.store, keyVolunteers)
}

// SaveVolunteers rewrites the volunteers collection. Only the seeding
// tool uses this; in production the admin workflow owns the collection.
func (r *Records) SaveVolunteers(ctx context.Context, volunteers []model.Volunteer) error {
	return writeCollection(ctx, r.store, keyVolunteers, volunteers)
}

// PendingRequests returns the registration request collection.
func (r *Records) PendingRequests(ctx context.Context) ([]model.PendingVolunteerRequest, error) {
	return readCollection[model.PendingVolunteerRequest](ctx, r.store, keyPendingVolunteers)
}

// AppendPendingRequest appends a registration request. It re-reads the
// collection and rejects a second pending request for the same
// (event, email) pair with ErrDuplicatePending, closing the
// check-then-act window between the status check and the submit.
func (r *Records) AppendPendingRequest(ctx context.Context, req model.PendingVolunteerRequest) error {
	pending, err := r.PendingRequests(ctx)
	if err != nil {
		return err
	}
	for _, p := range pending {
		if p.EventID == req.EventID && p.VolunteerEmail == req.VolunteerEmail && p.Status == model.RequestPending {
			return ErrDuplicatePending
		}
	}
	pending = append(pending, req)
	return writeCollection(ctx, r.store, keyPendingVolunteers, pending)
}

// SavedEventsKey returns the per-identity save-list key.
func SavedEventsKey(email string) string {
	return keySavedEvents + ":" + email
}

// SavedEvents returns the save-list for the given identity. If the
// per-identity key has never been written it falls back to the legacy
// unscoped "savedEvents" key, so save-lists written before identities
// were namespaced remain visible. The next save migrates them.
func (r *Records) SavedEvents(ctx context.Context, email string) ([]model.Event, error) {
	raw, err := r.store.Get(ctx, SavedEventsKey(email))
	if errors.Is(err, store.ErrNotFound) {
		return readCollection[model.Event](ctx, r.store, keySavedEvents)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %q: %w", SavedEventsKey(email), err)
	}
	return decodeCollection[model.Event](raw), nil
}

// SaveSavedEvents rewrites the identity's save-list under the
// namespaced key.
func (r *Records) SaveSavedEvents(ctx context.Context, email string, events []model.Event) error {
	return writeCollection(ctx, r.store, SavedEventsKey(email), events)
}

func readCollection[T any](ctx context.Context, st store.Store, key string) ([]T, error) {
	raw, err := st.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		// Never-written collection reads as empty
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %q: %w", key, err)
	}
	return decodeCollection[T](raw), nil
}

// decodeCollection treats undecodable JSON the same as an absent key.
// The collection is shared with writers outside this process, so a
// corrupt value must degrade to empty rather than wedge every reader.
func decodeCollection[T any](raw string) []T {
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []T{}
	}
	return items
}

func writeCollection[T any](ctx context.Context, st store.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", key, err)
	}
	if err := st.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write collection %q: %w", key, err)
	}
	return nil
}
