package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftclock.app/shiftclock/core/models"
	"shiftclock.app/shiftclock/utils"
)

func TestApproveBatch(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	newSheet := func(userID string, status models.TimeSheetStatus) uint {
		t.Helper()
		ts := &models.TimeSheet{
			Date:       utils.DateOf(start),
			UserID:     userID,
			JobsiteID:  1,
			CostCodeID: 1,
			WorkType:   models.WorkTypeGeneral,
			StartTime:  start,
			EndTime:    utils.Ptr(start.Add(8 * time.Hour)),
			Status:     status,
		}
		require.NoError(t, db.Create(ts).Error)
		return ts.ID
	}

	a := newSheet("worker-1", models.StatusPending)
	b := newSheet("worker-1", models.StatusPending)
	alreadyApproved := newSheet("worker-1", models.StatusApproved)
	otherWorker := newSheet("worker-2", models.StatusPending)

	ids := []uint{a, b, alreadyApproved, otherWorker, 9999}
	result, err := ApproveBatch(db, "worker-1", ids, "week looks good", "manager-1")
	require.NoError(t, err)

	assert.Equal(t, 5, result.Requested)
	assert.EqualValues(t, 2, result.Approved)

	for _, id := range []uint{a, b} {
		var ts models.TimeSheet
		require.NoError(t, db.First(&ts, id).Error)
		assert.Equal(t, models.StatusApproved, ts.Status)
		require.NotNil(t, ts.StatusComment)
		assert.Equal(t, "Approved by Priya Shah", *ts.StatusComment)
		require.NotNil(t, ts.EditedByUserID)
		assert.Equal(t, "manager-1", *ts.EditedByUserID)

		entries, err := ChangeHistory(db, id)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, entries[0].WasStatusChange)
		assert.True(t, entries[0].StatusOnly())
		require.NotNil(t, entries[0].ChangeReason)
		assert.Equal(t, "week looks good", *entries[0].ChangeReason)
	}

	// untouched sheets stay untouched
	var other models.TimeSheet
	require.NoError(t, db.First(&other, otherWorker).Error)
	assert.Equal(t, models.StatusPending, other.Status)

	entries, err := ChangeHistory(db, otherWorker)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApproveBatchEmpty(t *testing.T) {
	db := openTestDB(t)

	result, err := ApproveBatch(db, "worker-1", nil, "", "manager-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Requested)
	assert.Zero(t, result.Approved)
}

func TestApproveBatchUnknownEditorFallsBack(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	ts := &models.TimeSheet{
		Date:       utils.DateOf(start),
		UserID:     "worker-1",
		JobsiteID:  1,
		CostCodeID: 1,
		WorkType:   models.WorkTypeGeneral,
		StartTime:  start,
		EndTime:    utils.Ptr(start.Add(8 * time.Hour)),
		Status:     models.StatusPending,
	}
	require.NoError(t, db.Create(ts).Error)

	result, err := ApproveBatch(db, "worker-1", []uint{ts.ID}, "", "nobody")
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Approved)

	var reloaded models.TimeSheet
	require.NoError(t, db.First(&reloaded, ts.ID).Error)
	require.NotNil(t, reloaded.StatusComment)
	assert.Equal(t, "Approved by supervisor", *reloaded.StatusComment)
}
