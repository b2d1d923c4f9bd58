package core

import (
	"gorm.io/gorm"

	"shiftclock.app/shiftclock/core/models"
)

// BatchApprovalResult reports how many of the requested sheets were actually
// approved. Ids that were not PENDING or not owned by the worker are skipped,
// not failed; callers needing all-or-nothing semantics compare Approved
// against Requested.
type BatchApprovalResult struct {
	Requested int   `json:"requested"`
	Approved  int64 `json:"approved"`
}

// ApproveBatch moves every PENDING sheet in ids that belongs to userID to
// APPROVED in one transaction, stamping a shared status comment and one audit
// row per sheet identifying the editor.
func ApproveBatch(db *gorm.DB, userID string, ids []uint, comment string, editorID string) (*BatchApprovalResult, error) {
	result := &BatchApprovalResult{Requested: len(ids)}
	if len(ids) == 0 {
		return result, nil
	}

	statusComment := "Approved by supervisor"
	var editor models.User
	if err := db.First(&editor, "id = ?", editorID).Error; err == nil {
		if name := editor.FullName(); name != "" {
			statusComment = "Approved by " + name
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var matched []uint
		if err := tx.Model(&models.TimeSheet{}).
			Where("user_id = ? AND id IN ? AND status = ?", userID, ids, models.StatusPending).
			Pluck("id", &matched).Error; err != nil {
			return err
		}
		if len(matched) == 0 {
			return nil
		}

		res := tx.Model(&models.TimeSheet{}).
			Where("id IN ?", matched).
			Updates(map[string]any{
				"status":            models.StatusApproved,
				"status_comment":    statusComment,
				"edited_by_user_id": editorID,
			})
		if res.Error != nil {
			return res.Error
		}
		result.Approved = res.RowsAffected

		statusFlip := map[string]FieldChange{
			"status": {Old: models.StatusPending, New: models.StatusApproved},
		}
		for _, id := range matched {
			if _, err := RecordChange(tx, id, editorID, statusFlip, comment, true); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapTxError("approve batch", err)
	}
	return result, nil
}
