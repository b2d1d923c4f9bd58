package core

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"shiftclock.app/shiftclock/core/models"
	"shiftclock.app/shiftclock/utils"
)

// Flat payloads as the clients send them. Numeric fields arrive as strings and
// default to zero when absent or malformed; only identifiers the work type
// cannot live without are hard requirements.

type GeneralPayload struct {
	Equipment string `json:"equipment"`
}

type MechanicProjectInput struct {
	Equipment   string `json:"equipment"`
	Hours       string `json:"hours"`
	Description string `json:"description"`
}

type MechanicPayload struct {
	Projects []MechanicProjectInput `json:"projects"`
}

type RefuelInput struct {
	Gallons        string `json:"gallons"`
	MilesAtFueling string `json:"milesAtFueling"`
}

type FLoadInput struct {
	Weight     string `json:"weight"`
	ScreenType string `json:"screenType"`
}

type TascoPayload struct {
	ShiftType    string        `json:"shiftType"`
	LaborType    string        `json:"laborType"`
	MaterialType string        `json:"materialType"`
	LoadQuantity string        `json:"loadQuantity"`
	Equipment    string        `json:"equipment"`
	Refuels      []RefuelInput `json:"refuelLogs"`
	FLoads       []FLoadInput  `json:"fLoads"`
}

type EquipmentHauledInput struct {
	Equipment    string `json:"equipment"`
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	StartMileage string `json:"startMileage"`
	EndMileage   string `json:"endMileage"`
}

type MaterialInput struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	LoadType string `json:"loadType"`
}

type StateMileageInput struct {
	State   string `json:"state"`
	Mileage string `json:"mileage"`
}

type TruckingPayload struct {
	LaborType       string                 `json:"laborType"`
	Truck           string                 `json:"truck"`
	Trailer         string                 `json:"trailer"`
	StartingMileage string                 `json:"startingMileage"`
	EquipmentHauled []EquipmentHauledInput `json:"equipmentHauled"`
	Materials       []MaterialInput        `json:"materials"`
	Refuels         []RefuelInput          `json:"refuelLogs"`
	StateMileages   []StateMileageInput    `json:"stateMileages"`
}

// buildNestedLogs materializes the nested record set for exactly the sheet's
// work type, leaving every other slot empty.
func buildNestedLogs(tx *gorm.DB, ts *models.TimeSheet, in *CreateTimesheetInput) error {
	switch ts.WorkType {
	case models.WorkTypeGeneral:
		return buildEquipmentLog(tx, ts, in.General)
	case models.WorkTypeMechanic:
		return buildMechanicProjects(tx, ts, in.Mechanic)
	case models.WorkTypeTasco:
		return buildTascoLog(tx, ts, in.Tasco)
	case models.WorkTypeTruckDriver:
		return buildTruckingLog(tx, ts, in.Trucking)
	}
	return &InvalidWorkTypeError{Value: string(ts.WorkType)}
}

func buildEquipmentLog(tx *gorm.DB, ts *models.TimeSheet, p *GeneralPayload) error {
	if p == nil || p.Equipment == "" {
		return nil
	}
	eq := lookupEquipment(tx, p.Equipment)
	if eq == nil {
		return &NotFoundError{Resource: "equipment", ID: p.Equipment}
	}
	ts.EquipmentLogs = append(ts.EquipmentLogs, models.EmployeeEquipmentLog{
		EquipmentID: eq.ID,
		StartTime:   ts.StartTime,
	})
	return nil
}

func buildMechanicProjects(tx *gorm.DB, ts *models.TimeSheet, p *MechanicPayload) error {
	if p == nil {
		return nil
	}
	for _, proj := range p.Projects {
		eq := lookupEquipment(tx, proj.Equipment)
		if eq == nil {
			return &NotFoundError{Resource: "equipment", ID: proj.Equipment}
		}
		ts.MechanicProjects = append(ts.MechanicProjects, models.MechanicProject{
			EquipmentID: eq.ID,
			Hours:       utils.ParseFloatOr(proj.Hours, 0),
			Description: proj.Description,
		})
	}
	return nil
}

func buildTascoLog(tx *gorm.DB, ts *models.TimeSheet, p *TascoPayload) error {
	if p == nil {
		p = &TascoPayload{}
	}
	labor, err := ParseLaborType(p.LaborType)
	if err != nil {
		return err
	}

	log := models.TascoLog{
		ShiftType:    p.ShiftType,
		LaborType:    string(labor),
		MaterialType: p.MaterialType,
		LoadQuantity: utils.ParseIntOr(p.LoadQuantity, 0),
	}
	if eq := lookupEquipment(tx, p.Equipment); eq != nil {
		log.EquipmentID = &eq.ID
	}
	for _, r := range p.Refuels {
		log.RefuelLogs = append(log.RefuelLogs, buildRefuel(r))
	}
	for _, f := range p.FLoads {
		log.FLoads = append(log.FLoads, models.TascoFLoad{
			Weight:     utils.ParseFloatOr(f.Weight, 0),
			ScreenType: f.ScreenType,
		})
	}

	ts.TascoLogs = append(ts.TascoLogs, log)
	return nil
}

func buildTruckingLog(tx *gorm.DB, ts *models.TimeSheet, p *TruckingPayload) error {
	if p == nil {
		return &ValidationError{Field: "startingMileage", Reason: "required for truck driver timesheets"}
	}

	miles, err := strconv.Atoi(strings.TrimSpace(p.StartingMileage))
	if err != nil || miles < 0 {
		return &ValidationError{Field: "startingMileage", Reason: "must be a non-negative number"}
	}

	labor, err := ParseLaborType(p.LaborType)
	if err != nil {
		return err
	}

	log := models.TruckingLog{
		TruckNumber:     p.Truck,
		TrailerNumber:   NormalizeTrailer(p.Trailer),
		LaborType:       string(labor),
		StartingMileage: miles,
	}

	truck := lookupEquipment(tx, p.Truck)
	switch labor {
	case LaborTruckDriver:
		// the driven truck hangs off the log itself
		if truck != nil {
			log.EquipmentID = &truck.ID
		}
	case LaborOperator:
		// operators record the unit they ran as hauled equipment
		if truck != nil {
			log.EquipmentHauled = append(log.EquipmentHauled, models.EquipmentHauled{
				EquipmentID: &truck.ID,
			})
		}
	}

	for _, h := range p.EquipmentHauled {
		hauled := models.EquipmentHauled{
			Source:       h.Source,
			Destination:  h.Destination,
			StartMileage: utils.ParseIntOr(h.StartMileage, 0),
			EndMileage:   utils.ParseIntOr(h.EndMileage, 0),
		}
		if eq := lookupEquipment(tx, h.Equipment); eq != nil {
			hauled.EquipmentID = &eq.ID
		}
		log.EquipmentHauled = append(log.EquipmentHauled, hauled)
	}
	for _, m := range p.Materials {
		log.Materials = append(log.Materials, models.Material{
			Name:     m.Name,
			Quantity: utils.ParseFloatOr(m.Quantity, 0),
			Unit:     m.Unit,
			LoadType: m.LoadType,
		})
	}
	for _, r := range p.Refuels {
		log.RefuelLogs = append(log.RefuelLogs, buildRefuel(r))
	}
	for _, s := range p.StateMileages {
		log.StateMileages = append(log.StateMileages, models.StateMileage{
			State:            s.State,
			StateLineMileage: utils.ParseIntOr(s.Mileage, 0),
		})
	}

	ts.TruckingLogs = append(ts.TruckingLogs, log)
	return nil
}

func buildRefuel(r RefuelInput) models.RefuelLog {
	refuel := models.RefuelLog{Gallons: utils.ParseFloatOr(r.Gallons, 0)}
	if strings.TrimSpace(r.MilesAtFueling) != "" {
		refuel.MilesAtFueling = utils.Ptr(utils.ParseFloatOr(r.MilesAtFueling, 0))
	}
	return refuel
}
