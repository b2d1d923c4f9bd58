package models

import "time"

type WorkType string

const (
	WorkTypeGeneral     WorkType = "GENERAL"
	WorkTypeMechanic    WorkType = "MECHANIC"
	WorkTypeTasco       WorkType = "TASCO"
	WorkTypeTruckDriver WorkType = "TRUCK_DRIVER"
)

type TimeSheetStatus string

const (
	StatusDraft    TimeSheetStatus = "DRAFT"
	StatusPending  TimeSheetStatus = "PENDING"
	StatusApproved TimeSheetStatus = "APPROVED"
	StatusDenied   TimeSheetStatus = "DENIED"
)

// TimeSheet is one work session for one worker on one jobsite/cost code.
// EndTime is null while the session is open; at most one open row may exist
// per user at any time.
type TimeSheet struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Date           time.Time       `gorm:"type:date;not null;index" json:"date"`
	UserID         string          `gorm:"size:64;not null;index:idx_timesheets_user_open" json:"userId"`
	JobsiteID      uint            `gorm:"not null" json:"jobsiteId"`
	CostCodeID     uint            `gorm:"not null" json:"costCodeId"`
	WorkType       WorkType        `gorm:"size:20;not null" json:"workType"`
	StartTime      time.Time       `gorm:"not null" json:"startTime"`
	EndTime        *time.Time      `gorm:"index:idx_timesheets_user_open" json:"endTime"`
	Status         TimeSheetStatus `gorm:"size:16;not null;default:DRAFT" json:"status"`
	Comment        *string         `gorm:"size:500" json:"comment"`
	StatusComment  *string         `gorm:"size:255" json:"statusComment"`
	WasInjured     bool            `json:"wasInjured"`
	ClockInLat     *float64        `json:"clockInLat"`
	ClockInLng     *float64        `json:"clockInLng"`
	ClockOutLat    *float64        `json:"clockOutLat"`
	ClockOutLng    *float64        `json:"clockOutLng"`
	EditedByUserID *string         `gorm:"size:64" json:"editedByUserId"`
	CreatedByAdmin bool            `json:"createdByAdmin"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`

	Jobsite  Jobsite  `gorm:"foreignKey:JobsiteID" json:"jobsite,omitempty"`
	CostCode CostCode `gorm:"foreignKey:CostCodeID" json:"costCode,omitempty"`

	// Exactly one of these sets is populated, matching WorkType.
	EquipmentLogs    []EmployeeEquipmentLog `gorm:"foreignKey:TimeSheetID;constraint:OnDelete:CASCADE" json:"equipmentLogs,omitempty"`
	TruckingLogs     []TruckingLog          `gorm:"foreignKey:TimeSheetID;constraint:OnDelete:CASCADE" json:"truckingLogs,omitempty"`
	TascoLogs        []TascoLog             `gorm:"foreignKey:TimeSheetID;constraint:OnDelete:CASCADE" json:"tascoLogs,omitempty"`
	MechanicProjects []MechanicProject      `gorm:"foreignKey:TimeSheetID;constraint:OnDelete:CASCADE" json:"mechanicProjects,omitempty"`
}

func (TimeSheet) TableName() string {
	return "timesheets"
}

// IsOpen reports whether the worker is still clocked in on this sheet.
func (t *TimeSheet) IsOpen() bool {
	return t.EndTime == nil
}

// Hours returns worked hours, zero while the sheet is still open.
func (t *TimeSheet) Hours() float64 {
	if t.EndTime == nil {
		return 0
	}
	return t.EndTime.Sub(t.StartTime).Hours()
}
