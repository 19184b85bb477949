package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeedDemoData(t *testing.T) {
	db := newFakeStore()

	result, err := SeedDemoData(context.Background(), db, zap.NewNop(), "", 4)
	require.NoError(t, err)

	require.Len(t, result.Events, 4)
	assert.Equal(t, db.events, result.Events)
	assert.Equal(t, db.volunteers, result.Volunteers)

	// Ids are numeric strings in ascending creation order
	prev := int64(0)
	for _, e := range result.Events {
		n, err := strconv.ParseInt(e.ID, 10, 64)
		require.NoError(t, err)
		assert.Greater(t, n, prev)
		prev = n
	}

	// Every volunteer id is unique
	seen := map[string]bool{}
	for _, v := range result.Volunteers {
		assert.NotEmpty(t, v.ID)
		assert.False(t, seen[v.ID])
		seen[v.ID] = true
	}

	// Written events carry derived counts, not zero values
	assert.Equal(t, 2, result.Events[0].CurrentVolunteers)
	assert.Equal(t, 2, result.Events[2].CurrentVolunteers)
	assert.True(t, result.Events[2].Full())
}

func TestSeedDemoData_ScheduleSpacing(t *testing.T) {
	db := newFakeStore()

	result, err := SeedDemoData(context.Background(), db, zap.NewNop(), "FREQ=WEEKLY;BYDAY=SA", 3)
	require.NoError(t, err)

	require.Len(t, result.Events, 3)
	for _, e := range result.Events {
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, e.Date)
	}
}

func TestSeedDemoData_BadSchedule(t *testing.T) {
	db := newFakeStore()

	_, err := SeedDemoData(context.Background(), db, zap.NewNop(), "FREQ=NOT_A_FREQ", 3)
	assert.Error(t, err)
}
