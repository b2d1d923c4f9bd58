package models

import (
	"time"

	"gorm.io/datatypes"
)

// TimeSheetChangeLog is an append-only audit row. Changes holds a JSON object
// keyed by field name, each entry carrying the old and new value. Rows are
// never updated or deleted.
type TimeSheetChangeLog struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	TimeSheetID     uint           `gorm:"not null;index" json:"timeSheetId"`
	ChangedBy       string         `gorm:"size:64;not null" json:"changedBy"`
	Changes         datatypes.JSON `gorm:"not null" json:"changes"`
	ChangeReason    *string        `gorm:"size:500" json:"changeReason"`
	WasStatusChange bool           `json:"wasStatusChange"`
	NumberOfChanges int            `json:"numberOfChanges"`
	ChangedAt       time.Time      `gorm:"autoCreateTime" json:"changedAt"`
}

func (TimeSheetChangeLog) TableName() string {
	return "timesheet_change_logs"
}

// StatusOnly reports whether this entry records nothing but a status flip, so
// callers can render a lighter-weight audit line.
func (c *TimeSheetChangeLog) StatusOnly() bool {
	return c.WasStatusChange && c.NumberOfChanges == 1
}
