package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/pkg/core/model"
)

func TestCheckStatus_Approved(t *testing.T) {
	db := newFakeStore()
	db.volunteers = []model.Volunteer{
		{ID: "v1", Email: "a@b.com", AssignedEvents: []string{"7"}},
	}

	status, err := CheckStatus(context.Background(), db, zap.NewNop(), "7", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, status)
}

func TestCheckStatus_Pending(t *testing.T) {
	db := newFakeStore()
	db.pending = []model.PendingVolunteerRequest{
		{EventID: "7", VolunteerEmail: "a@b.com", Status: model.RequestPending},
	}

	status, err := CheckStatus(context.Background(), db, zap.NewNop(), "7", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)
}

func TestCheckStatus_RejectedRequestDoesNotCountAsPending(t *testing.T) {
	db := newFakeStore()
	db.pending = []model.PendingVolunteerRequest{
		{EventID: "7", VolunteerEmail: "a@b.com", Status: model.RequestRejected},
	}

	status, err := CheckStatus(context.Background(), db, zap.NewNop(), "7", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, StatusNone, status)
}

func TestCheckStatus_None(t *testing.T) {
	db := newFakeStore()
	db.volunteers = []model.Volunteer{
		{ID: "v1", Email: "other@b.com", AssignedEvents: []string{"7"}},
	}
	db.pending = []model.PendingVolunteerRequest{
		{EventID: "8", VolunteerEmail: "a@b.com", Status: model.RequestPending},
	}

	status, err := CheckStatus(context.Background(), db, zap.NewNop(), "7", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, StatusNone, status)
}

func TestCheckStatus_StoreFailure(t *testing.T) {
	db := newFakeStore()
	db.fail("volunteers")

	status, err := CheckStatus(context.Background(), db, zap.NewNop(), "7", "a@b.com")
	assert.Equal(t, StatusError, status)
	assert.ErrorIs(t, err, ErrStatusCheck)
}

func TestBeginRegistration_RequiresAuth(t *testing.T) {
	db := newFakeStore()

	_, err := BeginRegistration(context.Background(), db, zap.NewNop(), nil, model.Event{ID: "7"})
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Empty(t, db.pending)
}

func TestBeginRegistration_ApprovedNeverCreatesRequest(t *testing.T) {
	db := newFakeStore()
	db.volunteers = []model.Volunteer{
		{ID: "v1", Email: "a@b.com", AssignedEvents: []string{"7"}},
	}
	user := &model.User{FirstName: "Ada", LastName: "Lovelace", Email: "a@b.com"}

	_, err := BeginRegistration(context.Background(), db, zap.NewNop(), user, model.Event{ID: "7"})
	assert.ErrorIs(t, err, ErrAlreadyApproved)
	assert.Empty(t, db.pending)
}

func TestBeginRegistration_PendingBlocksSecondRequest(t *testing.T) {
	db := newFakeStore()
	db.pending = []model.PendingVolunteerRequest{
		{EventID: "7", VolunteerEmail: "a@b.com", Status: model.RequestPending},
	}
	user := &model.User{Email: "a@b.com"}

	_, err := BeginRegistration(context.Background(), db, zap.NewNop(), user, model.Event{ID: "7"})
	assert.ErrorIs(t, err, ErrAlreadyPending)
}

func TestBeginRegistration_StatusCheckFailureHaltsFlow(t *testing.T) {
	db := newFakeStore()
	db.fail("pendingRequests")
	user := &model.User{Email: "a@b.com"}

	_, err := BeginRegistration(context.Background(), db, zap.NewNop(), user, model.Event{ID: "7"})
	assert.ErrorIs(t, err, ErrStatusCheck)
}

func TestBeginRegistration_OpensPositionSelection(t *testing.T) {
	db := newFakeStore()
	user := &model.User{Email: "a@b.com"}
	event := model.Event{ID: "7", VolunteerCategories: []string{"Setup Crew", "First Aid"}}

	positions, err := BeginRegistration(context.Background(), db, zap.NewNop(), user, event)
	require.NoError(t, err)
	assert.Equal(t, []string{"Setup Crew", "First Aid"}, positions)
}

func TestSubmitPosition(t *testing.T) {
	db := newFakeStore()
	db.events = []model.Event{{ID: "7", Title: "Beach Cleanup", VolunteerCategories: []string{"Setup Crew"}}}
	event := db.events[0]
	user := model.User{FirstName: "Ada", LastName: "Lovelace", Email: "a@b.com"}

	req, err := SubmitPosition(context.Background(), db, zap.NewNop(), event, user, "Setup Crew")
	require.NoError(t, err)

	require.Len(t, db.pending, 1)
	got := db.pending[0]
	assert.Equal(t, "7", got.EventID)
	assert.Equal(t, "Beach Cleanup", got.EventTitle)
	assert.Equal(t, "a@b.com", got.VolunteerEmail)
	assert.Equal(t, "Ada Lovelace", got.VolunteerName)
	assert.Equal(t, "Setup Crew", got.Position)
	assert.Equal(t, model.RequestPending, got.Status)
	assert.Equal(t, strconv.FormatInt(got.Timestamp, 10), got.ID)
	assert.Equal(t, *req, got)

	// Submitting a request does not touch the volunteers collection
	assert.Empty(t, db.volunteers)
}

func TestSubmitPosition_RefreshesEventCount(t *testing.T) {
	db := newFakeStore()
	db.events = []model.Event{{ID: "7", Title: "Beach Cleanup", VolunteerCategories: []string{"Setup Crew"}, CurrentVolunteers: 99}}
	db.volunteers = []model.Volunteer{{ID: "v1", AssignedEvents: []string{"7"}}}
	user := model.User{Email: "a@b.com"}

	_, err := SubmitPosition(context.Background(), db, zap.NewNop(), db.events[0], user, "Setup Crew")
	require.NoError(t, err)

	// The stale persisted count was overwritten by a fresh derivation
	require.Equal(t, 1, db.savedEventsWrites)
	assert.Equal(t, 1, db.events[0].CurrentVolunteers)
	assert.Equal(t, model.DefaultMaxVolunteers, db.events[0].MaxVolunteers)
}

func TestSubmitPosition_UnknownPosition(t *testing.T) {
	db := newFakeStore()
	event := model.Event{ID: "7", Title: "Beach Cleanup", VolunteerCategories: []string{"Setup Crew"}}

	_, err := SubmitPosition(context.Background(), db, zap.NewNop(), event, model.User{Email: "a@b.com"}, "Skydiving")
	assert.Error(t, err)
	assert.Empty(t, db.pending)
}

func TestSubmitPosition_AppendFailureSurfaces(t *testing.T) {
	db := newFakeStore()
	db.fail("appendPendingRequest")
	event := model.Event{ID: "7", VolunteerCategories: []string{"Setup Crew"}}

	_, err := SubmitPosition(context.Background(), db, zap.NewNop(), event, model.User{Email: "a@b.com"}, "Setup Crew")
	assert.Error(t, err)
}

func TestSubmitPosition_CountRefreshFailureIsNotFatal(t *testing.T) {
	db := newFakeStore()
	db.fail("events")
	event := model.Event{ID: "7", VolunteerCategories: []string{"Setup Crew"}}

	// The request is durable even when the count write-back fails;
	// the next reconciliation tick repairs the count
	req, err := SubmitPosition(context.Background(), db, zap.NewNop(), event, model.User{Email: "a@b.com"}, "Setup Crew")
	require.NoError(t, err)
	assert.NotNil(t, req)
	assert.Len(t, db.pending, 1)
}
