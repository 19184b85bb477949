package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
)

func TestToggleSave_AddsSnapshot(t *testing.T) {
	db := newFakeStore()
	event := model.Event{ID: "100", Title: "Beach Cleanup", CurrentVolunteers: 2, MaxVolunteers: 10}

	saved, err := ToggleSave(context.Background(), db, zap.NewNop(), "a@b.com", event)
	require.NoError(t, err)
	assert.True(t, saved)

	// The full snapshot is stored, not just the id
	require.Len(t, db.saved["a@b.com"], 1)
	assert.Equal(t, event, db.saved["a@b.com"][0])
}

func TestToggleSave_RemovesById(t *testing.T) {
	db := newFakeStore()
	db.saved["a@b.com"] = []model.Event{{ID: "100", Title: "Beach Cleanup"}}

	saved, err := ToggleSave(context.Background(), db, zap.NewNop(), "a@b.com", model.Event{ID: "100"})
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Empty(t, db.saved["a@b.com"])
}

func TestToggleSave_Involution(t *testing.T) {
	db := newFakeStore()
	db.saved["a@b.com"] = []model.Event{{ID: "1"}, {ID: "2"}}
	ctx := context.Background()
	logger := zap.NewNop()

	before := SavedIDs(db.saved["a@b.com"])

	_, err := ToggleSave(ctx, db, logger, "a@b.com", model.Event{ID: "3"})
	require.NoError(t, err)
	_, err = ToggleSave(ctx, db, logger, "a@b.com", model.Event{ID: "3"})
	require.NoError(t, err)

	assert.Equal(t, before, SavedIDs(db.saved["a@b.com"]))
}

func TestToggleSave_ReAddAppendsAtEnd(t *testing.T) {
	db := newFakeStore()
	db.saved["a@b.com"] = []model.Event{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	ctx := context.Background()
	logger := zap.NewNop()

	// Remove the head, then re-add it: it lands at the end
	_, err := ToggleSave(ctx, db, logger, "a@b.com", model.Event{ID: "1"})
	require.NoError(t, err)
	_, err = ToggleSave(ctx, db, logger, "a@b.com", model.Event{ID: "1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"2", "3", "1"}, SavedIDs(db.saved["a@b.com"]))
}

func TestToggleSave_ReadFailureAbandonsWrite(t *testing.T) {
	db := newFakeStore()
	db.fail("savedEvents")

	_, err := ToggleSave(context.Background(), db, zap.NewNop(), "a@b.com", model.Event{ID: "100"})
	assert.Error(t, err)
	assert.Empty(t, db.saved["a@b.com"])
}
