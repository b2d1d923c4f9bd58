package core

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shiftclock.app/shiftclock/core/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	seed := []any{
		&models.User{ID: "worker-1", FirstName: "Dana", Surname: "Ruiz", Permission: "USER"},
		&models.User{ID: "worker-2", FirstName: "Miles", Surname: "Okafor", Permission: "USER"},
		&models.User{ID: "manager-1", FirstName: "Priya", Surname: "Shah", Permission: "MANAGER"},
		&models.Jobsite{Code: "JS-100", Name: "North Quarry"},
		&models.Jobsite{Code: "JS-200", Name: "River Crossing"},
		&models.CostCode{Code: "CC-01", Name: "Earthwork"},
		&models.CostCode{Code: "CC-02", Name: "Hauling"},
		&models.Equipment{Code: "TRK-12", Name: "Kenworth T880", Kind: models.EquipmentKindTruck},
		&models.Equipment{Code: "TRL-3", Name: "Side Dump Trailer", Kind: models.EquipmentKindTrailer},
		&models.Equipment{Code: "LDR-7", Name: "CAT 966 Loader", Kind: models.EquipmentKindLoader},
	}
	for _, row := range seed {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return db
}
