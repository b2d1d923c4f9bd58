package models

import "time"

type Jobsite struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Code      string `gorm:"size:50;uniqueIndex"`
	Name      string `gorm:"size:255;not null"`
	Address   string `gorm:"size:255"`
	IsActive  bool   `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Jobsite) TableName() string {
	return "jobsites"
}

type CostCode struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Code      string `gorm:"size:50;uniqueIndex"`
	Name      string `gorm:"size:255;not null"`
	IsActive  bool   `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CostCode) TableName() string {
	return "cost_codes"
}

const (
	EquipmentKindTruck   = "TRUCK"
	EquipmentKindTrailer = "TRAILER"
	EquipmentKindLoader  = "LOADER"
	EquipmentKindVehicle = "VEHICLE"
)

// Equipment covers trucks, trailers, loaders and shop vehicles alike. Code is
// the human-facing unit number painted on the machine.
type Equipment struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Code      string `gorm:"size:50;uniqueIndex"`
	Name      string `gorm:"size:255;not null"`
	Kind      string `gorm:"size:20;default:VEHICLE"`
	IsActive  bool   `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Equipment) TableName() string {
	return "equipment"
}
