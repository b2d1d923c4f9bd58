package models

// TascoLog is the nested log set for TASCO (heavy equipment / loader) sheets.
type TascoLog struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TimeSheetID  uint   `gorm:"not null;index" json:"timeSheetId"`
	ShiftType    string `gorm:"size:50" json:"shiftType"`
	LaborType    string `gorm:"size:30" json:"laborType"`
	MaterialType string `gorm:"size:100" json:"materialType"`
	LoadQuantity int    `json:"loadQuantity"`
	EquipmentID  *uint  `json:"equipmentId"`

	Equipment *Equipment `gorm:"foreignKey:EquipmentID" json:"equipment,omitempty"`

	RefuelLogs []RefuelLog  `gorm:"foreignKey:TascoLogID;constraint:OnDelete:CASCADE" json:"refuelLogs,omitempty"`
	FLoads     []TascoFLoad `gorm:"foreignKey:TascoLogID;constraint:OnDelete:CASCADE" json:"fLoads,omitempty"`
}

func (TascoLog) TableName() string {
	return "tasco_logs"
}

type TascoFLoad struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	TascoLogID uint    `gorm:"not null;index" json:"tascoLogId"`
	Weight     float64 `json:"weight"`
	ScreenType string  `gorm:"size:50" json:"screenType"`
}

func (TascoFLoad) TableName() string {
	return "tasco_f_loads"
}
