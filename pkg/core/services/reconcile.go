package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
)

// DefaultPollInterval matches the 1s refresh the dashboard has always run.
const DefaultPollInterval = time.Second

// ReconcileStore defines the record operations the reconciliation loop
// needs.
type ReconcileStore interface {
	Events(ctx context.Context) ([]model.Event, error)
	Volunteers(ctx context.Context) ([]model.Volunteer, error)
	SaveEvents(ctx context.Context, events []model.Event) error
	SavedEvents(ctx context.Context, email string) ([]model.Event, error)
}

// Reconciler periodically re-reads the shared store and re-derives view
// state. The store has no subscribe primitive and is mutated out-of-band
// (the admin approving a request, another session saving an event), so
// polling is the only way to observe those changes.
//
// Each tick replaces the derived event list unconditionally and persists
// the recomputed counts back to the events collection; the saved-id state
// is replaced only when the ordered id sequence actually differs. A tick
// that fails to read or decode is logged and skipped, leaving the last
// good state in place until the next tick.
type Reconciler struct {
	db       ReconcileStore
	logger   *zap.Logger
	email    string
	interval time.Duration

	// OnEvents and OnSaved, when set before Run, are called from the
	// loop goroutine after the corresponding state is replaced.
	OnEvents func([]model.Event)
	OnSaved  func([]string)

	mu       sync.RWMutex
	events   []model.Event
	savedIDs []string
}

// NewReconciler creates a reconciler for the given identity. A
// non-positive interval falls back to DefaultPollInterval.
func NewReconciler(db ReconcileStore, logger *zap.Logger, email string, interval time.Duration) *Reconciler {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Reconciler{
		db:       db,
		logger:   logger,
		email:    email,
		interval: interval,
	}
}

// Run ticks immediately and then at the configured interval until the
// context is cancelled. Always returns the context's error; individual
// tick failures never stop the loop.
func (r *Reconciler) Run(ctx context.Context) error {
	r.Tick(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("Reconciliation loop stopped")
			return ctx.Err()
		case <-ticker.C:
			r.Tick(ctx)
		}
	}
}

// Tick runs one reconciliation pass: event counts first, then the
// save-list. The two halves fail independently.
func (r *Reconciler) Tick(ctx context.Context) {
	if err := r.refreshEvents(ctx); err != nil {
		r.logger.Warn("Skipping event refresh this tick", zap.Error(err))
	}
	if err := r.refreshSaved(ctx); err != nil {
		r.logger.Warn("Skipping save-list refresh this tick", zap.Error(err))
	}
}

// Events returns the last derived event list.
func (r *Reconciler) Events() []model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.events)
}

// SavedIDs returns the last observed saved-id sequence.
func (r *Reconciler) SavedIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.savedIDs)
}

func (r *Reconciler) refreshEvents(ctx context.Context) error {
	events, err := r.db.Events(ctx)
	if err != nil {
		return fmt.Errorf("failed to read events: %w", err)
	}
	volunteers, err := r.db.Volunteers(ctx)
	if err != nil {
		return fmt.Errorf("failed to read volunteers: %w", err)
	}

	derived := DeriveCounts(events, volunteers)

	r.mu.Lock()
	r.events = derived
	r.mu.Unlock()

	// Write-back cache: persisted counts are a read optimization only
	if err := r.db.SaveEvents(ctx, derived); err != nil {
		return fmt.Errorf("failed to write derived counts back: %w", err)
	}

	if r.OnEvents != nil {
		r.OnEvents(slices.Clone(derived))
	}
	return nil
}

func (r *Reconciler) refreshSaved(ctx context.Context) error {
	saved, err := r.db.SavedEvents(ctx, r.email)
	if err != nil {
		return fmt.Errorf("failed to read save-list: %w", err)
	}
	ids := SavedIDs(saved)

	r.mu.Lock()
	changed := !slices.Equal(ids, r.savedIDs)
	if changed {
		r.savedIDs = ids
	}
	r.mu.Unlock()

	// Replacing unchanged saved state would only cause redundant
	// downstream refreshes, so equal sequences are dropped here
	if changed {
		r.logger.Debug("Save-list changed", zap.Strings("saved_ids", ids))
		if r.OnSaved != nil {
			r.OnSaved(slices.Clone(ids))
		}
	}
	return nil
}
