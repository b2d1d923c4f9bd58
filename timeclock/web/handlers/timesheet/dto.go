package timesheet

import (
	"time"

	tc "shiftclock.app/shiftclock/timeclock/core"
	web "shiftclock.app/shiftclock/web/common"
)

// CreateTimesheetDTO is the clock-in body. The work-type payloads are
// forwarded to the engine as-is; only one of them is expected to be set.
type CreateTimesheetDTO struct {
	WorkType  string        `json:"workType" binding:"required"`
	UserID    *string       `json:"userId,omitempty"` // admins only, on-behalf entry
	Jobsite   string        `json:"jobsite" binding:"required"`
	CostCode  string        `json:"costCode" binding:"required"`
	Date      *web.DateOnly `json:"date,omitempty"`
	StartTime *time.Time    `json:"startTime,omitempty"`
	Comment   string        `json:"comment"`
	Latitude  *float64      `json:"latitude,omitempty"`
	Longitude *float64      `json:"longitude,omitempty"`

	General  *tc.GeneralPayload  `json:"general,omitempty"`
	Mechanic *tc.MechanicPayload `json:"mechanic,omitempty"`
	Tasco    *tc.TascoPayload    `json:"tasco,omitempty"`
	Trucking *tc.TruckingPayload `json:"trucking,omitempty"`
}

func (dto *CreateTimesheetDTO) toInput(callerID string) *tc.CreateTimesheetInput {
	in := &tc.CreateTimesheetInput{
		WorkType:   dto.WorkType,
		UserID:     callerID,
		Jobsite:    dto.Jobsite,
		CostCode:   dto.CostCode,
		Comment:    dto.Comment,
		ClockInLat: dto.Latitude,
		ClockInLng: dto.Longitude,
		General:    dto.General,
		Mechanic:   dto.Mechanic,
		Tasco:      dto.Tasco,
		Trucking:   dto.Trucking,
	}
	if dto.UserID != nil && *dto.UserID != callerID {
		in.UserID = *dto.UserID
		in.CreatedByAdmin = true
	}
	if dto.Date != nil {
		in.Date = dto.Date.Time
	}
	if dto.StartTime != nil {
		in.StartTime = *dto.StartTime
	}
	return in
}

type ClockOutDTO struct {
	EndTime    *time.Time `json:"endTime,omitempty"`
	Comment    string     `json:"comment"`
	WasInjured bool       `json:"wasInjured"`
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
}

func (dto *ClockOutDTO) toInput() *tc.ClockOutInput {
	in := &tc.ClockOutInput{
		EndTime:     time.Now(),
		Comment:     dto.Comment,
		WasInjured:  dto.WasInjured,
		ClockOutLat: dto.Latitude,
		ClockOutLng: dto.Longitude,
	}
	if dto.EndTime != nil {
		in.EndTime = *dto.EndTime
	}
	return in
}

// SwitchDTO closes the previous sheet and opens the next one atomically.
type SwitchDTO struct {
	PreviousID uint               `json:"previousId" binding:"required"`
	ClockOut   ClockOutDTO        `json:"clockOut"`
	Next       CreateTimesheetDTO `json:"next" binding:"required"`
}

type UpdateTimesheetDTO struct {
	Jobsite   *string    `json:"jobsite,omitempty"`
	CostCode  *string    `json:"costCode,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Comment   *string    `json:"comment,omitempty"`
	Status    *string    `json:"status,omitempty"`
	Reason    string     `json:"reason"`

	General  *tc.GeneralPayload  `json:"general,omitempty"`
	Mechanic *tc.MechanicPayload `json:"mechanic,omitempty"`
	Tasco    *tc.TascoPayload    `json:"tasco,omitempty"`
	Trucking *tc.TruckingPayload `json:"trucking,omitempty"`

	EndingMileage *string `json:"endingMileage,omitempty"`
}

func (dto *UpdateTimesheetDTO) toInput() *tc.UpdateTimesheetInput {
	return &tc.UpdateTimesheetInput{
		Jobsite:       dto.Jobsite,
		CostCode:      dto.CostCode,
		StartTime:     dto.StartTime,
		EndTime:       dto.EndTime,
		Comment:       dto.Comment,
		Status:        dto.Status,
		General:       dto.General,
		Mechanic:      dto.Mechanic,
		Tasco:         dto.Tasco,
		Trucking:      dto.Trucking,
		EndingMileage: dto.EndingMileage,
	}
}

type ApproveBatchDTO struct {
	UserID  string `json:"userId" binding:"required"`
	IDs     []uint `json:"ids" binding:"required,min=1"`
	Comment string `json:"comment"`
}

type SearchDTO struct {
	StartDate *web.DateOnly `json:"startDate" binding:"required"`
	EndDate   *web.DateOnly `json:"endDate" binding:"required"`
	Users     []string      `json:"users"`
	Jobsites  []uint        `json:"jobsites"`
	Statuses  []string      `json:"statuses"`
}

type ExportDTO struct {
	StartDate *web.DateOnly `json:"startDate" binding:"required"`
	EndDate   *web.DateOnly `json:"endDate" binding:"required"`
}
