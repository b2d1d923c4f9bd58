package core

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"shiftclock.app/shiftclock/core/models"
	"shiftclock.app/shiftclock/utils"
)

// UpdateTimesheetInput carries edits from the manager/admin screens. Nil
// pointers mean "leave as is". A non-nil payload replaces that work type's
// nested collections wholesale.
type UpdateTimesheetInput struct {
	Jobsite   *string
	CostCode  *string
	StartTime *time.Time
	EndTime   *time.Time
	Comment   *string
	Status    *string

	General  *GeneralPayload
	Mechanic *MechanicPayload
	Tasco    *TascoPayload
	Trucking *TruckingPayload

	// trucking-only scalar
	EndingMileage *string
}

type UpdateResult struct {
	Timesheet *models.TimeSheet          `json:"timesheet"`
	Audit     *models.TimeSheetChangeLog `json:"auditEntry,omitempty"`
}

// statusTransitions is the explicit-update path: it additionally allows
// admins to re-open terminal sheets back to PENDING, which worker actions
// never can.
var statusTransitions = map[models.TimeSheetStatus][]models.TimeSheetStatus{
	models.StatusDraft:    {models.StatusPending},
	models.StatusPending:  {models.StatusApproved, models.StatusDenied, models.StatusPending},
	models.StatusApproved: {models.StatusPending},
	models.StatusDenied:   {models.StatusPending},
}

func allowedTransition(from, to models.TimeSheetStatus) bool {
	if from == to {
		return true
	}
	for _, t := range statusTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// UpdateTimesheet applies an edit, replaces nested collections when a payload
// is present, and appends one audit row describing the diff, all in one
// transaction.
func UpdateTimesheet(db *gorm.DB, id uint, editorID string, in *UpdateTimesheetInput, reason string) (*UpdateResult, error) {
	var result *UpdateResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var ts models.TimeSheet
		if err := tx.First(&ts, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "timesheet", ID: id}
			}
			return err
		}

		changes := map[string]FieldChange{}
		wasStatusChange := false

		if in.Jobsite != nil {
			site, err := lookupJobsite(tx, *in.Jobsite)
			if err != nil {
				return err
			}
			if site.ID != ts.JobsiteID {
				changes["jobsiteId"] = FieldChange{Old: ts.JobsiteID, New: site.ID}
				ts.JobsiteID = site.ID
			}
		}
		if in.CostCode != nil {
			cc, err := lookupCostCode(tx, *in.CostCode)
			if err != nil {
				return err
			}
			if cc.ID != ts.CostCodeID {
				changes["costCodeId"] = FieldChange{Old: ts.CostCodeID, New: cc.ID}
				ts.CostCodeID = cc.ID
			}
		}
		if in.StartTime != nil && !in.StartTime.Equal(ts.StartTime) {
			changes["startTime"] = FieldChange{Old: ts.StartTime, New: *in.StartTime}
			ts.StartTime = *in.StartTime
		}
		if in.EndTime != nil && (ts.EndTime == nil || !in.EndTime.Equal(*ts.EndTime)) {
			changes["endTime"] = FieldChange{Old: ts.EndTime, New: *in.EndTime}
			ts.EndTime = in.EndTime
		}
		if ts.EndTime != nil && ts.EndTime.Before(ts.StartTime) {
			return &InvalidStateError{Reason: "end time precedes start time"}
		}
		if in.Comment != nil && (ts.Comment == nil || *ts.Comment != *in.Comment) {
			changes["comment"] = FieldChange{Old: ts.Comment, New: *in.Comment}
			ts.Comment = in.Comment
		}

		if in.Status != nil {
			next := models.TimeSheetStatus(*in.Status)
			switch next {
			case models.StatusDraft, models.StatusPending, models.StatusApproved, models.StatusDenied:
			default:
				return &ValidationError{Field: "status", Reason: "unknown status '" + *in.Status + "'"}
			}
			if next != ts.Status {
				if !allowedTransition(ts.Status, next) {
					return &InvalidStateError{Reason: "cannot move timesheet from " + string(ts.Status) + " to " + string(next)}
				}
				changes["status"] = FieldChange{Old: ts.Status, New: next}
				ts.Status = next
				wasStatusChange = true
			}
		}

		if err := replaceNestedLogs(tx, &ts, in, changes); err != nil {
			return err
		}

		if len(changes) > 0 {
			ts.EditedByUserID = utils.Ptr(editorID)
		}
		if err := tx.Save(&ts).Error; err != nil {
			return err
		}

		audit, err := RecordChange(tx, ts.ID, editorID, changes, reason, wasStatusChange)
		if err != nil {
			return err
		}

		result = &UpdateResult{Timesheet: &ts, Audit: audit}
		return nil
	})
	if err != nil {
		return nil, wrapTxError("update timesheet", err)
	}
	return result, nil
}

// replaceNestedLogs implements the delete-all-then-recreate contract for
// nested collections: any provided payload wipes that work type's existing
// log set and rebuilds it inside the surrounding transaction.
func replaceNestedLogs(tx *gorm.DB, ts *models.TimeSheet, in *UpdateTimesheetInput, changes map[string]FieldChange) error {
	switch ts.WorkType {
	case models.WorkTypeTruckDriver:
		if in.EndingMileage != nil {
			if err := setEndingMileage(tx, ts, *in.EndingMileage, changes); err != nil {
				return err
			}
		}
		if in.Trucking == nil {
			return nil
		}
		var old []models.TruckingLog
		if err := tx.Where("time_sheet_id = ?", ts.ID).Find(&old).Error; err != nil {
			return err
		}
		if err := deleteTruckingLogs(tx, old); err != nil {
			return err
		}
		ts.TruckingLogs = nil
		if err := buildTruckingLog(tx, ts, in.Trucking); err != nil {
			return err
		}
		for i := range ts.TruckingLogs {
			ts.TruckingLogs[i].TimeSheetID = ts.ID
		}
		if err := tx.Create(&ts.TruckingLogs).Error; err != nil {
			return err
		}
		changes["truckingLogs"] = FieldChange{Old: len(old), New: len(ts.TruckingLogs)}

	case models.WorkTypeTasco:
		if in.Tasco == nil {
			return nil
		}
		var old []models.TascoLog
		if err := tx.Where("time_sheet_id = ?", ts.ID).Find(&old).Error; err != nil {
			return err
		}
		if err := deleteTascoLogs(tx, old); err != nil {
			return err
		}
		ts.TascoLogs = nil
		if err := buildTascoLog(tx, ts, in.Tasco); err != nil {
			return err
		}
		for i := range ts.TascoLogs {
			ts.TascoLogs[i].TimeSheetID = ts.ID
		}
		if err := tx.Create(&ts.TascoLogs).Error; err != nil {
			return err
		}
		changes["tascoLogs"] = FieldChange{Old: len(old), New: len(ts.TascoLogs)}

	case models.WorkTypeMechanic:
		if in.Mechanic == nil {
			return nil
		}
		var old []models.MechanicProject
		if err := tx.Where("time_sheet_id = ?", ts.ID).Find(&old).Error; err != nil {
			return err
		}
		if len(old) > 0 {
			if err := tx.Delete(&old).Error; err != nil {
				return err
			}
		}
		ts.MechanicProjects = nil
		if err := buildMechanicProjects(tx, ts, in.Mechanic); err != nil {
			return err
		}
		if len(ts.MechanicProjects) > 0 {
			for i := range ts.MechanicProjects {
				ts.MechanicProjects[i].TimeSheetID = ts.ID
			}
			if err := tx.Create(&ts.MechanicProjects).Error; err != nil {
				return err
			}
		}
		changes["mechanicProjects"] = FieldChange{Old: len(old), New: len(ts.MechanicProjects)}

	case models.WorkTypeGeneral:
		if in.General == nil {
			return nil
		}
		var old []models.EmployeeEquipmentLog
		if err := tx.Where("time_sheet_id = ?", ts.ID).Find(&old).Error; err != nil {
			return err
		}
		for _, l := range old {
			// re-linked refuels would otherwise be orphaned
			if err := tx.Where("employee_equipment_log_id = ?", l.ID).Delete(&models.RefuelLog{}).Error; err != nil {
				return err
			}
		}
		if len(old) > 0 {
			if err := tx.Delete(&old).Error; err != nil {
				return err
			}
		}
		ts.EquipmentLogs = nil
		if err := buildEquipmentLog(tx, ts, in.General); err != nil {
			return err
		}
		if len(ts.EquipmentLogs) > 0 {
			for i := range ts.EquipmentLogs {
				ts.EquipmentLogs[i].TimeSheetID = ts.ID
			}
			if err := tx.Create(&ts.EquipmentLogs).Error; err != nil {
				return err
			}
		}
		changes["equipmentLogs"] = FieldChange{Old: len(old), New: len(ts.EquipmentLogs)}
	}

	// Save must not try to upsert the freshly created associations again.
	ts.TruckingLogs = nil
	ts.TascoLogs = nil
	ts.MechanicProjects = nil
	ts.EquipmentLogs = nil
	return nil
}

func setEndingMileage(tx *gorm.DB, ts *models.TimeSheet, raw string, changes map[string]FieldChange) error {
	var log models.TruckingLog
	err := tx.Where("time_sheet_id = ?", ts.ID).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: "trucking log for timesheet", ID: ts.ID}
	}
	if err != nil {
		return err
	}

	miles := utils.ParseIntOr(raw, -1)
	if miles < 0 {
		return &ValidationError{Field: "endingMileage", Reason: "must be a non-negative number"}
	}
	if miles < log.StartingMileage {
		return &InvalidStateError{Reason: "ending mileage is less than starting mileage"}
	}

	old := log.EndingMileage
	if err := tx.Model(&log).Update("ending_mileage", miles).Error; err != nil {
		return err
	}
	changes["endingMileage"] = FieldChange{Old: old, New: miles}
	return nil
}

func deleteTruckingLogs(tx *gorm.DB, logs []models.TruckingLog) error {
	for _, l := range logs {
		for _, child := range []any{
			&models.EquipmentHauled{}, &models.Material{},
			&models.RefuelLog{}, &models.StateMileage{},
		} {
			if err := tx.Where("trucking_log_id = ?", l.ID).Delete(child).Error; err != nil {
				return err
			}
		}
	}
	if len(logs) > 0 {
		return tx.Delete(&logs).Error
	}
	return nil
}

func deleteTascoLogs(tx *gorm.DB, logs []models.TascoLog) error {
	for _, l := range logs {
		if err := tx.Where("tasco_log_id = ?", l.ID).Delete(&models.RefuelLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tasco_log_id = ?", l.ID).Delete(&models.TascoFLoad{}).Error; err != nil {
			return err
		}
	}
	if len(logs) > 0 {
		return tx.Delete(&logs).Error
	}
	return nil
}

// DeleteTimesheet is the explicit admin delete; it removes the sheet and its
// whole nested log set in one transaction. The audit trail is left in place.
func DeleteTimesheet(db *gorm.DB, id uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var ts models.TimeSheet
		if err := tx.First(&ts, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "timesheet", ID: id}
			}
			return err
		}

		var trucking []models.TruckingLog
		if err := tx.Where("time_sheet_id = ?", ts.ID).Find(&trucking).Error; err != nil {
			return err
		}
		if err := deleteTruckingLogs(tx, trucking); err != nil {
			return err
		}

		var tasco []models.TascoLog
		if err := tx.Where("time_sheet_id = ?", ts.ID).Find(&tasco).Error; err != nil {
			return err
		}
		if err := deleteTascoLogs(tx, tasco); err != nil {
			return err
		}

		var eqLogs []models.EmployeeEquipmentLog
		if err := tx.Where("time_sheet_id = ?", ts.ID).Find(&eqLogs).Error; err != nil {
			return err
		}
		for _, l := range eqLogs {
			if err := tx.Where("employee_equipment_log_id = ?", l.ID).Delete(&models.RefuelLog{}).Error; err != nil {
				return err
			}
		}
		if len(eqLogs) > 0 {
			if err := tx.Delete(&eqLogs).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("time_sheet_id = ?", ts.ID).Delete(&models.MechanicProject{}).Error; err != nil {
			return err
		}

		return tx.Delete(&ts).Error
	})
	return wrapTxError("delete timesheet", err)
}
