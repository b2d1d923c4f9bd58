package models

import "time"

// EmployeeEquipmentLog records equipment usage on GENERAL and MECHANIC sheets.
type EmployeeEquipmentLog struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	TimeSheetID   uint       `gorm:"not null;index" json:"timeSheetId"`
	EquipmentID   uint       `gorm:"not null" json:"equipmentId"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime"`
	MaintenanceID *uint      `json:"maintenanceId"`

	Equipment   Equipment        `gorm:"foreignKey:EquipmentID" json:"equipment,omitempty"`
	RefuelLog   *RefuelLog       `gorm:"foreignKey:EmployeeEquipmentLogID" json:"refuelLog,omitempty"`
	Maintenance *MechanicProject `gorm:"foreignKey:MaintenanceID" json:"maintenance,omitempty"`
}

func (EmployeeEquipmentLog) TableName() string {
	return "employee_equipment_logs"
}

// MechanicProject is a unit of shop work on a MECHANIC sheet.
type MechanicProject struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	TimeSheetID uint    `gorm:"not null;index" json:"timeSheetId"`
	EquipmentID uint    `gorm:"not null" json:"equipmentId"`
	Hours       float64 `json:"hours"`
	Description string  `gorm:"size:500" json:"description"`

	Equipment Equipment `gorm:"foreignKey:EquipmentID" json:"equipment,omitempty"`
}

func (MechanicProject) TableName() string {
	return "mechanic_projects"
}
