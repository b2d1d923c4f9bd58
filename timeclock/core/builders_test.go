package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftclock.app/shiftclock/core/models"
)

func truckingInput(userID string, start time.Time) *CreateTimesheetInput {
	return &CreateTimesheetInput{
		WorkType:  "truckDriver",
		UserID:    userID,
		Jobsite:   "JS-100",
		CostCode:  "CC-02",
		StartTime: start,
		Trucking: &TruckingPayload{
			LaborType:       "truckDriver",
			Truck:           "TRK-12",
			Trailer:         "TRL-3",
			StartingMileage: "120000",
			EquipmentHauled: []EquipmentHauledInput{
				{Equipment: "LDR-7", Source: "North Quarry", Destination: "River Crossing", StartMileage: "120000", EndMileage: "120042"},
				{Source: "River Crossing", Destination: "North Quarry", StartMileage: "120042", EndMileage: "120084"},
			},
			Materials: []MaterialInput{
				{Name: "Gravel", Quantity: "14.5", Unit: "ton", LoadType: "screened"},
			},
			Refuels: []RefuelInput{
				{Gallons: "62.4", MilesAtFueling: "120040"},
			},
			StateMileages: []StateMileageInput{
				{State: "ID", Mileage: "84"},
			},
		},
	}
}

func TestCreateTruckingTimesheet(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)

	ts, err := CreateTimesheet(db, truckingInput("worker-1", start))
	require.NoError(t, err)

	// one nested write, read back through the projection layer
	detail, err := GetTimesheetDetail(db, ts.ID)
	require.NoError(t, err)

	require.Len(t, detail.TruckingLogs, 1)
	log := detail.TruckingLogs[0]

	assert.Equal(t, "TRK-12", log.TruckNumber)
	require.NotNil(t, log.TrailerNumber)
	assert.Equal(t, "TRL-3", *log.TrailerNumber)
	assert.Equal(t, string(LaborTruckDriver), log.LaborType)
	assert.Equal(t, 120000, log.StartingMileage)
	require.NotNil(t, log.Equipment)
	assert.Equal(t, "TRK-12", log.Equipment.Code)

	assert.Len(t, log.EquipmentHauled, 2)
	assert.Len(t, log.Materials, 1)
	assert.Len(t, log.RefuelLogs, 1)
	assert.Len(t, log.StateMileages, 1)

	assert.InDelta(t, 62.4, log.RefuelLogs[0].Gallons, 0.001)
	assert.Equal(t, "ID", log.StateMileages[0].State)
	assert.Equal(t, 84, log.StateMileages[0].StateLineMileage)
	assert.InDelta(t, 14.5, log.Materials[0].Quantity, 0.001)
}

func TestCreateTruckingTimesheetAsOperator(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)

	in := truckingInput("worker-1", start)
	in.Trucking.LaborType = "operator"
	in.Trucking.EquipmentHauled = nil

	ts, err := CreateTimesheet(db, in)
	require.NoError(t, err)

	detail, err := GetTimesheetDetail(db, ts.ID)
	require.NoError(t, err)
	require.Len(t, detail.TruckingLogs, 1)
	log := detail.TruckingLogs[0]

	// operators record the unit they ran as hauled equipment, not as the truck
	assert.Nil(t, log.EquipmentID)
	require.Len(t, log.EquipmentHauled, 1)
	require.NotNil(t, log.EquipmentHauled[0].EquipmentID)
}

func TestCreateTruckingTimesheetMileageValidation(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mileage string
	}{
		{name: "missing", mileage: ""},
		{name: "negative", mileage: "-5"},
		{name: "not a number", mileage: "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := truckingInput("worker-1", start)
			in.Trucking.StartingMileage = tt.mileage
			_, err := CreateTimesheet(db, in)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}

	t.Run("missing payload", func(t *testing.T) {
		in := truckingInput("worker-1", start)
		in.Trucking = nil
		_, err := CreateTimesheet(db, in)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestCreateTascoTimesheet(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)

	ts, err := CreateTimesheet(db, &CreateTimesheetInput{
		WorkType:  "tasco",
		UserID:    "worker-1",
		Jobsite:   "JS-100",
		CostCode:  "CC-01",
		StartTime: start,
		Tasco: &TascoPayload{
			ShiftType:    "ABCD Shift",
			LaborType:    "tascoAbcdLabor",
			MaterialType: "topsoil",
			LoadQuantity: "14",
			Equipment:    "LDR-7",
			Refuels:      []RefuelInput{{Gallons: "30"}},
			FLoads:       []FLoadInput{{Weight: "42000", ScreenType: "F"}},
		},
	})
	require.NoError(t, err)

	detail, err := GetTimesheetDetail(db, ts.ID)
	require.NoError(t, err)
	require.Len(t, detail.TascoLogs, 1)
	log := detail.TascoLogs[0]

	assert.Equal(t, "ABCD Shift", log.ShiftType)
	assert.Equal(t, string(LaborOperator), log.LaborType)
	assert.Equal(t, 14, log.LoadQuantity)
	require.NotNil(t, log.Equipment)
	assert.Len(t, log.RefuelLogs, 1)
	assert.Len(t, log.FLoads, 1)
}

func TestCreateMechanicTimesheet(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)

	ts, err := CreateTimesheet(db, &CreateTimesheetInput{
		WorkType:  "mechanic",
		UserID:    "worker-1",
		Jobsite:   "JS-100",
		CostCode:  "CC-01",
		StartTime: start,
		Mechanic: &MechanicPayload{
			Projects: []MechanicProjectInput{
				{Equipment: "TRK-12", Hours: "3.5", Description: "Brake job"},
				{Equipment: "LDR-7", Hours: "2", Description: "Hydraulic leak"},
			},
		},
	})
	require.NoError(t, err)

	detail, err := GetTimesheetDetail(db, ts.ID)
	require.NoError(t, err)
	require.Len(t, detail.MechanicProjects, 2)
	assert.InDelta(t, 3.5, detail.MechanicProjects[0].Hours, 0.001)
	assert.Equal(t, "Brake job", detail.MechanicProjects[0].Description)

	var count int64
	db.Model(&models.TruckingLog{}).Count(&count)
	assert.Zero(t, count)
}
