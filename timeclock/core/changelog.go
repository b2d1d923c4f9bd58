package core

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"shiftclock.app/shiftclock/core/models"
	"shiftclock.app/shiftclock/utils"
)

// FieldChange is one entry of an edit diff.
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// RecordChange appends one immutable audit row iff the diff is non-empty. The
// caller mutates the timesheet itself in the same transaction; this function
// only writes the trail.
func RecordChange(tx *gorm.DB, timesheetID uint, editorID string, changes map[string]FieldChange, reason string, wasStatusChange bool) (*models.TimeSheetChangeLog, error) {
	if len(changes) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(changes)
	if err != nil {
		return nil, err
	}

	entry := &models.TimeSheetChangeLog{
		ID:              uuid.NewString(),
		TimeSheetID:     timesheetID,
		ChangedBy:       editorID,
		Changes:         datatypes.JSON(raw),
		WasStatusChange: wasStatusChange,
		NumberOfChanges: len(changes),
	}
	if reason != "" {
		entry.ChangeReason = utils.Ptr(reason)
	}

	if err := tx.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ChangeHistory returns the audit trail for a timesheet, newest first.
func ChangeHistory(db *gorm.DB, timesheetID uint) ([]models.TimeSheetChangeLog, error) {
	var entries []models.TimeSheetChangeLog
	err := db.Where("time_sheet_id = ?", timesheetID).
		Order("changed_at DESC").
		Find(&entries).Error
	return entries, err
}
