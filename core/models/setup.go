package models

import "gorm.io/gorm"

// Migrate runs AutoMigrate in dependency order: reference data first, then the
// aggregate root, then the nested log tables that hang off it.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Jobsite{},
		&CostCode{},
		&Equipment{},
	); err != nil {
		return err
	}

	if err := db.AutoMigrate(&TimeSheet{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&EmployeeEquipmentLog{},
		&MechanicProject{},
		&TruckingLog{},
		&EquipmentHauled{},
		&Material{},
		&RefuelLog{},
		&StateMileage{},
		&TascoLog{},
		&TascoFLoad{},
		&TimeSheetChangeLog{},
	)
}
