package core

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"shiftclock.app/shiftclock/core/models"
	"shiftclock.app/shiftclock/utils"
)

// The projection layer is strictly read-only. Missing reference data is
// rendered as a placeholder rather than an error so half-seeded environments
// still produce usable screens.

// RefSummary is a display stub for a referenced row; Name is "Unknown" when
// the reference does not resolve.
type RefSummary struct {
	ID   *uint  `json:"id"`
	Name string `json:"name"`
}

func unknownRef() RefSummary {
	return RefSummary{ID: nil, Name: "Unknown"}
}

// GetActiveTimesheet returns the id of the user's open sheet, or nil when the
// user is not clocked in. Being clocked in IS having an open sheet; there is
// no separate flag to drift out of sync.
func GetActiveTimesheet(db *gorm.DB, userID string) (*uint, error) {
	var ts models.TimeSheet
	err := db.Select("id").
		Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time DESC").
		Take(&ts).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ts.ID, nil
}

// GetRecentTimesheet returns the user's latest sheet with its nested logs for
// the "continue where you left off" screen, or nil when there is none.
func GetRecentTimesheet(db *gorm.DB, userID string) (*models.TimeSheet, error) {
	var ts models.TimeSheet
	err := preloadAll(db).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		First(&ts).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// GetTimesheetDetail loads one sheet with every nested collection populated.
func GetTimesheetDetail(db *gorm.DB, id uint) (*models.TimeSheet, error) {
	var ts models.TimeSheet
	err := preloadAll(db).First(&ts, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "timesheet", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func preloadAll(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Jobsite").
		Preload("CostCode").
		Preload("EquipmentLogs").
		Preload("EquipmentLogs.Equipment").
		Preload("EquipmentLogs.RefuelLog").
		Preload("TruckingLogs").
		Preload("TruckingLogs.Equipment").
		Preload("TruckingLogs.EquipmentHauled").
		Preload("TruckingLogs.Materials").
		Preload("TruckingLogs.RefuelLogs").
		Preload("TruckingLogs.StateMileages").
		Preload("TascoLogs").
		Preload("TascoLogs.Equipment").
		Preload("TascoLogs.RefuelLogs").
		Preload("TascoLogs.FLoads").
		Preload("MechanicProjects").
		Preload("MechanicProjects.Equipment")
}

// BannerData is the header summary for the clocked-in screen.
type BannerData struct {
	TimesheetID uint            `json:"timesheetId"`
	WorkType    models.WorkType `json:"workType"`
	StartTime   time.Time       `json:"startTime"`
	Jobsite     RefSummary      `json:"jobsite"`
	CostCode    RefSummary      `json:"costCode"`
	LogCount    int             `json:"logCount"`
}

// GetBannerData assembles the banner for the user's open sheet, or nil when
// the user is not clocked in.
func GetBannerData(db *gorm.DB, userID string) (*BannerData, error) {
	var ts models.TimeSheet
	err := preloadAll(db).
		Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time DESC").
		First(&ts).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	banner := &BannerData{
		TimesheetID: ts.ID,
		WorkType:    ts.WorkType,
		StartTime:   ts.StartTime,
		Jobsite:     unknownRef(),
		CostCode:    unknownRef(),
		LogCount:    len(ts.EquipmentLogs) + len(ts.TruckingLogs) + len(ts.TascoLogs) + len(ts.MechanicProjects),
	}
	if ts.Jobsite.ID != 0 {
		banner.Jobsite = RefSummary{ID: utils.Ptr(ts.Jobsite.ID), Name: ts.Jobsite.Name}
	}
	if ts.CostCode.ID != 0 {
		banner.CostCode = RefSummary{ID: utils.Ptr(ts.CostCode.ID), Name: ts.CostCode.Name}
	}
	return banner, nil
}

const (
	LogTypeEquipment = "equipment"
	LogTypeMechanic  = "mechanic"
	LogTypeTrucking  = "trucking"
	LogTypeTasco     = "tasco"
)

// DashboardLog is one row of the flattened, polymorphic log list.
type DashboardLog struct {
	Type        string     `json:"type"`
	ID          uint       `json:"id"`
	TimesheetID uint       `json:"timesheetId"`
	Equipment   RefSummary `json:"equipment"`
	Detail      string     `json:"detail"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
}

// GetDashboardLogs flattens every nested log across the user's sheets into a
// single list tagged by type, newest sheets first.
func GetDashboardLogs(db *gorm.DB, userID string) ([]DashboardLog, error) {
	var sheets []models.TimeSheet
	err := preloadAll(db).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&sheets).Error
	if err != nil {
		return nil, err
	}

	logs := []DashboardLog{}
	for _, ts := range sheets {
		for _, l := range ts.EquipmentLogs {
			entry := DashboardLog{
				Type:        LogTypeEquipment,
				ID:          l.ID,
				TimesheetID: ts.ID,
				Equipment:   equipmentRef(&l.Equipment),
				StartTime:   utils.Ptr(l.StartTime),
				EndTime:     l.EndTime,
			}
			logs = append(logs, entry)
		}
		for _, p := range ts.MechanicProjects {
			logs = append(logs, DashboardLog{
				Type:        LogTypeMechanic,
				ID:          p.ID,
				TimesheetID: ts.ID,
				Equipment:   equipmentRef(&p.Equipment),
				Detail:      p.Description,
			})
		}
		for _, t := range ts.TruckingLogs {
			logs = append(logs, DashboardLog{
				Type:        LogTypeTrucking,
				ID:          t.ID,
				TimesheetID: ts.ID,
				Equipment:   equipmentRefPtr(t.Equipment),
				Detail:      t.TruckNumber,
			})
		}
		for _, t := range ts.TascoLogs {
			logs = append(logs, DashboardLog{
				Type:        LogTypeTasco,
				ID:          t.ID,
				TimesheetID: ts.ID,
				Equipment:   equipmentRefPtr(t.Equipment),
				Detail:      t.MaterialType,
			})
		}
	}
	return logs, nil
}

func equipmentRef(eq *models.Equipment) RefSummary {
	if eq == nil || eq.ID == 0 {
		return unknownRef()
	}
	return RefSummary{ID: utils.Ptr(eq.ID), Name: eq.Name}
}

func equipmentRefPtr(eq *models.Equipment) RefSummary {
	if eq == nil {
		return unknownRef()
	}
	return equipmentRef(eq)
}

// ClockOutDetails bundles today's still-open sheets with the signature key
// needed to render the clock-out screen.
type ClockOutDetails struct {
	Timesheets   []models.TimeSheet `json:"timesheets"`
	SignatureKey *string            `json:"signatureKey"`
}

func GetClockOutDetails(db *gorm.DB, userID string, day time.Time) (*ClockOutDetails, error) {
	var sheets []models.TimeSheet
	err := preloadAll(db).
		Where("user_id = ? AND end_time IS NULL AND date = ?", userID, utils.DateOf(day)).
		Find(&sheets).Error
	if err != nil {
		return nil, err
	}

	details := &ClockOutDetails{Timesheets: sheets}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err == nil {
		details.SignatureKey = user.SignatureKey
	}
	return details, nil
}

// SearchParams filters the manager dashboard listing.
type SearchParams struct {
	StartDate time.Time
	EndDate   time.Time
	UserIDs   []string
	Jobsites  []uint
	Statuses  []models.TimeSheetStatus
}

// SearchTimesheets returns a page of sheets plus the unpaged total.
func SearchTimesheets(db *gorm.DB, params SearchParams, limit, offset int) ([]models.TimeSheet, int64, error) {
	query := db.Model(&models.TimeSheet{}).
		Where("date BETWEEN ? AND ?", utils.DateOf(params.StartDate), utils.DateOf(params.EndDate))

	if len(params.UserIDs) > 0 {
		query = query.Where("user_id IN ?", params.UserIDs)
	}
	if len(params.Jobsites) > 0 {
		query = query.Where("jobsite_id IN ?", params.Jobsites)
	}
	if len(params.Statuses) > 0 {
		query = query.Where("status IN ?", params.Statuses)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sheets []models.TimeSheet
	err := query.
		Preload("Jobsite").
		Preload("CostCode").
		Order("date DESC, start_time DESC").
		Limit(limit).Offset(offset).
		Find(&sheets).Error
	if err != nil {
		return nil, 0, err
	}
	return sheets, total, nil
}
