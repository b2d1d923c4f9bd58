package core

import (
	"strings"

	"shiftclock.app/shiftclock/core/models"
)

// ParseWorkType accepts both the canonical enum values and the camelCase tags
// the mobile clients send.
func ParseWorkType(s string) (models.WorkType, error) {
	switch strings.TrimSpace(s) {
	case "general", "GENERAL":
		return models.WorkTypeGeneral, nil
	case "mechanic", "MECHANIC":
		return models.WorkTypeMechanic, nil
	case "tasco", "TASCO":
		return models.WorkTypeTasco, nil
	case "truck", "truckDriver", "TRUCK_DRIVER":
		return models.WorkTypeTruckDriver, nil
	}
	return "", &InvalidWorkTypeError{Value: s}
}

// LaborType is the closed set of work sub-kinds clients historically sent as
// free strings. It is validated here at the boundary; business logic only ever
// branches on the typed value.
type LaborType string

const (
	LaborTruckDriver LaborType = "truckDriver"
	LaborOperator    LaborType = "operator"
	LaborManual      LaborType = "manualLabor"
)

func ParseLaborType(s string) (LaborType, error) {
	switch strings.TrimSpace(s) {
	case "", "truckDriver", "truck_driver":
		return LaborTruckDriver, nil
	case "operator", "tascoAbcdLabor":
		return LaborOperator, nil
	case "manualLabor", "manual_labor":
		return LaborManual, nil
	}
	return "", &ValidationError{Field: "laborType", Reason: "unknown labor type '" + s + "'"}
}

// NormalizeTrailer maps the client spellings for "no trailer" to null.
func NormalizeTrailer(s string) *string {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "", "none", "no trailer":
		return nil
	}
	return &trimmed
}
