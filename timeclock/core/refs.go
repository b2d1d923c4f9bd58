package core

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"shiftclock.app/shiftclock/core/models"
)

// Reference lookups accept either a numeric id or the human-facing code, the
// same way clients address jobsites and cost codes interchangeably.

func lookupJobsite(tx *gorm.DB, ref string) (*models.Jobsite, error) {
	var site models.Jobsite
	err := byIDOrCode(tx, ref).First(&site).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "jobsite", ID: ref}
	}
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func lookupCostCode(tx *gorm.DB, ref string) (*models.CostCode, error) {
	var cc models.CostCode
	err := byIDOrCode(tx, ref).First(&cc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "cost code", ID: ref}
	}
	if err != nil {
		return nil, err
	}
	return &cc, nil
}

// lookupEquipment is tolerant: equipment references on nested logs are
// optional, so a miss returns nil rather than an error.
func lookupEquipment(tx *gorm.DB, ref string) *models.Equipment {
	if ref == "" {
		return nil
	}
	var eq models.Equipment
	if err := byIDOrCode(tx, ref).First(&eq).Error; err != nil {
		return nil
	}
	return &eq
}

func byIDOrCode(tx *gorm.DB, ref string) *gorm.DB {
	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		return tx.Where("id = ? OR code = ?", uint(id), ref)
	}
	return tx.Where("code = ?", ref)
}
