package core

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shiftclock.app/shiftclock/core/models"
	"shiftclock.app/shiftclock/utils"
)

type CreateTimesheetInput struct {
	WorkType       string
	UserID         string
	Jobsite        string // jobsite id or code
	CostCode       string // cost code id or code
	Date           time.Time
	StartTime      time.Time
	Comment        string
	ClockInLat     *float64
	ClockInLng     *float64
	CreatedByAdmin bool

	General  *GeneralPayload
	Mechanic *MechanicPayload
	Tasco    *TascoPayload
	Trucking *TruckingPayload
}

type ClockOutInput struct {
	EndTime     time.Time
	Comment     string
	WasInjured  bool
	ClockOutLat *float64
	ClockOutLng *float64
}

type SwitchResult struct {
	NewID    uint `json:"newId"`
	ClosedID uint `json:"closedId"`
}

// CreateTimesheet clocks a worker in: it inserts a DRAFT sheet (PENDING when
// entered by an admin on someone's behalf) together with its work-type nested
// logs in one transaction. The user row is locked for the duration so two
// concurrent clock-ins cannot both pass the open-sheet check.
func CreateTimesheet(db *gorm.DB, in *CreateTimesheetInput) (*models.TimeSheet, error) {
	wt, err := ParseWorkType(in.WorkType)
	if err != nil {
		return nil, err
	}
	if err := validateRequired(in); err != nil {
		return nil, err
	}

	var ts *models.TimeSheet
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := lockUser(tx, in.UserID); err != nil {
			return err
		}
		open, err := countOpenTimesheets(tx, in.UserID)
		if err != nil {
			return err
		}
		if open > 0 {
			return ErrAlreadyClockedIn
		}

		built, err := newTimesheet(tx, wt, in)
		if err != nil {
			return err
		}
		if err := tx.Create(built).Error; err != nil {
			return err
		}
		ts = built
		return nil
	})
	if err != nil {
		return nil, wrapTxError("create timesheet", err)
	}
	return ts, nil
}

// ClockOut closes an open sheet: sets the end time, moves it to PENDING and
// stamps the close comment, injury flag and coordinates. Closing an
// already-closed sheet reads as not found.
func ClockOut(db *gorm.DB, id uint, in *ClockOutInput) (*models.TimeSheet, error) {
	var out *models.TimeSheet
	err := db.Transaction(func(tx *gorm.DB) error {
		var ts models.TimeSheet
		if err := tx.First(&ts, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "timesheet", ID: id}
			}
			return err
		}
		if !ts.IsOpen() {
			return &NotFoundError{Resource: "open timesheet", ID: id}
		}
		if err := closeTimesheet(tx, &ts, in); err != nil {
			return err
		}
		out = &ts
		return nil
	})
	if err != nil {
		return nil, wrapTxError("clock out", err)
	}
	return out, nil
}

// SwitchJobs atomically closes the previous sheet and opens a new one for the
// same worker. Either both writes land or neither does; a new open sheet next
// to a still-open previous one is never observable.
func SwitchJobs(db *gorm.DB, previousID uint, in *CreateTimesheetInput, closeIn *ClockOutInput) (*SwitchResult, error) {
	wt, err := ParseWorkType(in.WorkType)
	if err != nil {
		return nil, err
	}
	if err := validateRequired(in); err != nil {
		return nil, err
	}

	var result *SwitchResult
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := lockUser(tx, in.UserID); err != nil {
			return err
		}

		var prev models.TimeSheet
		if err := tx.First(&prev, previousID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "timesheet", ID: previousID}
			}
			return err
		}
		if !prev.IsOpen() {
			return &NotFoundError{Resource: "open timesheet", ID: previousID}
		}
		if prev.UserID != in.UserID {
			return &ValidationError{Field: "userId", Reason: "does not own the timesheet being closed"}
		}

		if err := closeTimesheet(tx, &prev, closeIn); err != nil {
			return err
		}

		// the new sheet picks up where the old one left off
		if in.StartTime.IsZero() {
			in.StartTime = closeIn.EndTime
		}
		next, err := newTimesheet(tx, wt, in)
		if err != nil {
			return err
		}
		if err := tx.Create(next).Error; err != nil {
			return err
		}

		result = &SwitchResult{NewID: next.ID, ClosedID: prev.ID}
		return nil
	})
	if err != nil {
		return nil, wrapTxError("switch jobs", err)
	}
	return result, nil
}

// ForceSettle heals a sheet left DRAFT by a crashed clock-out: a closed but
// still-DRAFT sheet is promoted to PENDING, anything else is a no-op. Safe to
// call repeatedly.
func ForceSettle(db *gorm.DB, id uint) (*models.TimeSheet, error) {
	var ts models.TimeSheet
	if err := db.First(&ts, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "timesheet", ID: id}
		}
		return nil, err
	}

	if ts.EndTime == nil || ts.Status != models.StatusDraft {
		return &ts, nil
	}

	if err := db.Model(&ts).Update("status", models.StatusPending).Error; err != nil {
		return nil, wrapTxError("force settle", err)
	}
	ts.Status = models.StatusPending
	return &ts, nil
}

func validateRequired(in *CreateTimesheetInput) error {
	if in.UserID == "" {
		return &ValidationError{Field: "userId", Reason: "required"}
	}
	if in.Jobsite == "" {
		return &ValidationError{Field: "jobsiteId", Reason: "required"}
	}
	if in.CostCode == "" {
		return &ValidationError{Field: "costCode", Reason: "required"}
	}
	return nil
}

func lockUser(tx *gorm.DB, userID string) error {
	q := tx
	// sqlite has no row locks; its transactions serialize writers anyway
	if tx.Dialector.Name() == "mysql" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var user models.User
	err := q.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: "user", ID: userID}
	}
	return err
}

func countOpenTimesheets(tx *gorm.DB, userID string) (int64, error) {
	var open int64
	err := tx.Model(&models.TimeSheet{}).
		Where("user_id = ? AND end_time IS NULL", userID).
		Count(&open).Error
	return open, err
}

func newTimesheet(tx *gorm.DB, wt models.WorkType, in *CreateTimesheetInput) (*models.TimeSheet, error) {
	site, err := lookupJobsite(tx, in.Jobsite)
	if err != nil {
		return nil, err
	}
	cc, err := lookupCostCode(tx, in.CostCode)
	if err != nil {
		return nil, err
	}

	start := in.StartTime
	if start.IsZero() {
		start = time.Now()
	}
	date := in.Date
	if date.IsZero() {
		date = utils.DateOf(start)
	}

	status := models.StatusDraft
	if in.CreatedByAdmin {
		status = models.StatusPending
	}

	ts := &models.TimeSheet{
		Date:           date,
		UserID:         in.UserID,
		JobsiteID:      site.ID,
		CostCodeID:     cc.ID,
		WorkType:       wt,
		StartTime:      start,
		Status:         status,
		ClockInLat:     in.ClockInLat,
		ClockInLng:     in.ClockInLng,
		CreatedByAdmin: in.CreatedByAdmin,
	}
	if in.Comment != "" {
		ts.Comment = utils.Ptr(in.Comment)
	}

	if err := buildNestedLogs(tx, ts, in); err != nil {
		return nil, err
	}
	return ts, nil
}

func closeTimesheet(tx *gorm.DB, ts *models.TimeSheet, in *ClockOutInput) error {
	if in.EndTime.Before(ts.StartTime) {
		return &InvalidStateError{Reason: "end time precedes start time"}
	}

	ts.EndTime = utils.Ptr(in.EndTime)
	ts.Status = models.StatusPending
	ts.WasInjured = in.WasInjured
	ts.ClockOutLat = in.ClockOutLat
	ts.ClockOutLng = in.ClockOutLng
	if in.Comment != "" {
		ts.Comment = utils.Ptr(in.Comment)
	}

	if err := tx.Save(ts).Error; err != nil {
		return err
	}

	// equipment logs still running end with the sheet
	return tx.Model(&models.EmployeeEquipmentLog{}).
		Where("time_sheet_id = ? AND end_time IS NULL", ts.ID).
		Update("end_time", in.EndTime).Error
}
