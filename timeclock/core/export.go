package core

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"shiftclock.app/shiftclock/core/models"
	"shiftclock.app/shiftclock/utils"
)

var exportHeader = []string{
	"Date", "Worker", "Jobsite", "Cost Code", "Work Type",
	"Start", "Finish", "Hours", "Status", "Status Comment",
}

// ExportTimesheets writes approved sheets in the date range to a spreadsheet
// for payroll handoff, one row per sheet plus an hours total.
func ExportTimesheets(db *gorm.DB, from, to time.Time) (*excelize.File, error) {
	var sheets []models.TimeSheet
	err := db.
		Preload("Jobsite").
		Preload("CostCode").
		Where("status = ? AND date BETWEEN ? AND ?", models.StatusApproved, utils.DateOf(from), utils.DateOf(to)).
		Order("date ASC, user_id ASC").
		Find(&sheets).Error
	if err != nil {
		return nil, err
	}

	userNames, err := userNameMap(db, sheets)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Sheet1"

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	totalHours := 0.0
	for i, ts := range sheets {
		row := i + 2
		name := userNames[ts.UserID]
		if name == "" {
			name = ts.UserID
		}
		finish := ""
		if ts.EndTime != nil {
			finish = ts.EndTime.Format("15:04")
		}
		values := []any{
			ts.Date.Format("2006-01-02"),
			name,
			ts.Jobsite.Name,
			ts.CostCode.Code,
			string(ts.WorkType),
			ts.StartTime.Format("15:04"),
			finish,
			ts.Hours(),
			string(ts.Status),
			utils.Format(ts.StatusComment),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		totalHours += ts.Hours()
	}

	totalRow := len(sheets) + 3
	labelCell, _ := excelize.CoordinatesToCellName(7, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(8, totalRow)
	if err := f.SetCellValue(sheet, labelCell, "Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, valueCell, totalHours); err != nil {
		return nil, err
	}

	return f, nil
}

func userNameMap(db *gorm.DB, sheets []models.TimeSheet) (map[string]string, error) {
	ids := make([]string, 0, len(sheets))
	seen := map[string]bool{}
	for _, ts := range sheets {
		if !seen[ts.UserID] {
			seen[ts.UserID] = true
			ids = append(ids, ts.UserID)
		}
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var users []models.User
	if err := db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName()
	}
	return names, nil
}
