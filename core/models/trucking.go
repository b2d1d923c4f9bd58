package models

// TruckingLog is the nested log set for TRUCK_DRIVER sheets. EquipmentID is
// the driven truck when the labor type resolves to a driver; for operators the
// operated unit lands in EquipmentHauled instead.
type TruckingLog struct {
	ID              uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	TimeSheetID     uint    `gorm:"not null;index" json:"timeSheetId"`
	EquipmentID     *uint   `json:"equipmentId"`
	TruckNumber     string  `gorm:"size:50" json:"truckNumber"`
	TrailerNumber   *string `gorm:"size:50" json:"trailerNumber"`
	LaborType       string  `gorm:"size:30" json:"laborType"`
	StartingMileage int     `gorm:"not null" json:"startingMileage"`
	EndingMileage   *int    `json:"endingMileage"`

	Equipment *Equipment `gorm:"foreignKey:EquipmentID" json:"equipment,omitempty"`

	EquipmentHauled []EquipmentHauled `gorm:"foreignKey:TruckingLogID;constraint:OnDelete:CASCADE" json:"equipmentHauled,omitempty"`
	Materials       []Material        `gorm:"foreignKey:TruckingLogID;constraint:OnDelete:CASCADE" json:"materials,omitempty"`
	RefuelLogs      []RefuelLog       `gorm:"foreignKey:TruckingLogID;constraint:OnDelete:CASCADE" json:"refuelLogs,omitempty"`
	StateMileages   []StateMileage    `gorm:"foreignKey:TruckingLogID;constraint:OnDelete:CASCADE" json:"stateMileages,omitempty"`
}

func (TruckingLog) TableName() string {
	return "trucking_logs"
}

type EquipmentHauled struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TruckingLogID uint   `gorm:"not null;index" json:"truckingLogId"`
	EquipmentID   *uint  `json:"equipmentId"`
	Source        string `gorm:"size:255" json:"source"`
	Destination   string `gorm:"size:255" json:"destination"`
	StartMileage  int    `json:"startMileage"`
	EndMileage    int    `json:"endMileage"`

	Equipment *Equipment `gorm:"foreignKey:EquipmentID" json:"equipment,omitempty"`
}

func (EquipmentHauled) TableName() string {
	return "equipment_hauled"
}

type Material struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	TruckingLogID uint    `gorm:"not null;index" json:"truckingLogId"`
	Name          string  `gorm:"size:255;not null" json:"name"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `gorm:"size:20" json:"unit"`
	LoadType      string  `gorm:"size:20" json:"loadType"`
}

func (Material) TableName() string {
	return "materials"
}

// RefuelLog is shared between trucking, tasco and equipment logs; exactly one
// of the parent keys is set.
type RefuelLog struct {
	ID                     uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	TruckingLogID          *uint    `gorm:"index" json:"truckingLogId"`
	TascoLogID             *uint    `gorm:"index" json:"tascoLogId"`
	EmployeeEquipmentLogID *uint    `gorm:"index" json:"employeeEquipmentLogId"`
	Gallons                float64  `json:"gallons"`
	MilesAtFueling         *float64 `json:"milesAtFueling"`
}

func (RefuelLog) TableName() string {
	return "refuel_logs"
}

type StateMileage struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TruckingLogID    uint   `gorm:"not null;index" json:"truckingLogId"`
	State            string `gorm:"size:20;not null" json:"state"`
	StateLineMileage int    `json:"stateLineMileage"`
}

func (StateMileage) TableName() string {
	return "state_mileages"
}
