package main

import (
	"log"
	"os"

	"shiftclock.app/shiftclock/core"
	"shiftclock.app/shiftclock/core/models"
	"shiftclock.app/shiftclock/utils"
)

// Seeds a development database with enough reference data to clock in.
func main() {
	dsn := os.Getenv("DSN")
	if dsn == "" {
		log.Fatal("DSN is not set")
	}

	db, err := core.Connect(dsn, 2, core.LogLevelInfo)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	users := []models.User{
		{ID: "worker-1", FirstName: "Dana", Surname: "Ruiz", Permission: "USER"},
		{ID: "worker-2", FirstName: "Miles", Surname: "Okafor", Permission: "USER"},
		{ID: "manager-1", FirstName: "Priya", Surname: "Shah", Email: utils.Ptr("priya@shiftclock.app"), Permission: "MANAGER"},
		{ID: "admin-1", FirstName: "Sam", Surname: "Whitfield", Permission: "ADMIN"},
	}
	jobsites := []models.Jobsite{
		{Code: "JS-100", Name: "North Quarry"},
		{Code: "JS-200", Name: "River Crossing"},
	}
	costCodes := []models.CostCode{
		{Code: "CC-01", Name: "Earthwork"},
		{Code: "CC-02", Name: "Hauling"},
		{Code: "CC-03", Name: "Equipment Maintenance"},
	}
	equipment := []models.Equipment{
		{Code: "TRK-12", Name: "Kenworth T880", Kind: models.EquipmentKindTruck},
		{Code: "TRL-3", Name: "Side Dump Trailer", Kind: models.EquipmentKindTrailer},
		{Code: "LDR-7", Name: "CAT 966 Loader", Kind: models.EquipmentKindLoader},
	}

	for _, u := range users {
		if err := db.Gorm.FirstOrCreate(&u, models.User{ID: u.ID}).Error; err != nil {
			log.Fatal(err)
		}
	}
	for _, j := range jobsites {
		if err := db.Gorm.FirstOrCreate(&j, models.Jobsite{Code: j.Code}).Error; err != nil {
			log.Fatal(err)
		}
	}
	for _, c := range costCodes {
		if err := db.Gorm.FirstOrCreate(&c, models.CostCode{Code: c.Code}).Error; err != nil {
			log.Fatal(err)
		}
	}
	for _, e := range equipment {
		if err := db.Gorm.FirstOrCreate(&e, models.Equipment{Code: e.Code}).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("seed complete")
}
