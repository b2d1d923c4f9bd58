package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftclock.app/shiftclock/core/models"
	"shiftclock.app/shiftclock/utils"
)

func TestExportTimesheets(t *testing.T) {
	db := openTestDB(t)
	base := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	mkSheet := func(userID string, day time.Time, hours int, status models.TimeSheetStatus) {
		t.Helper()
		require.NoError(t, db.Create(&models.TimeSheet{
			Date:          utils.DateOf(day),
			UserID:        userID,
			JobsiteID:     1,
			CostCodeID:    1,
			WorkType:      models.WorkTypeGeneral,
			StartTime:     day,
			EndTime:       utils.Ptr(day.Add(time.Duration(hours) * time.Hour)),
			Status:        status,
			StatusComment: utils.Ptr("Approved by Priya Shah"),
		}).Error)
	}

	mkSheet("worker-1", base, 8, models.StatusApproved)
	mkSheet("worker-2", base, 6, models.StatusApproved)
	mkSheet("worker-1", base.AddDate(0, 0, 1), 8, models.StatusPending) // not approved, excluded

	f, err := ExportTimesheets(db, base, base.AddDate(0, 0, 7))
	require.NoError(t, err)

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)

	// header + two sheets; the total row sits one blank row below
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2026-03-02", rows[1][0])
	assert.Equal(t, "Dana Ruiz", rows[1][1])
	assert.Equal(t, "North Quarry", rows[1][2])
	assert.Equal(t, "Miles Okafor", rows[2][1])

	cell, err := f.GetCellValue("Sheet1", "H5")
	require.NoError(t, err)
	assert.Equal(t, "14", cell)
}
