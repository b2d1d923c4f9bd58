package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shiftclock.app/shiftclock/core/models"
)

func TestParseWorkType(t *testing.T) {
	tests := []struct {
		input    string
		expected models.WorkType
		wantErr  bool
	}{
		{input: "general", expected: models.WorkTypeGeneral},
		{input: "GENERAL", expected: models.WorkTypeGeneral},
		{input: "mechanic", expected: models.WorkTypeMechanic},
		{input: "tasco", expected: models.WorkTypeTasco},
		{input: "truck", expected: models.WorkTypeTruckDriver},
		{input: "truckDriver", expected: models.WorkTypeTruckDriver},
		{input: "TRUCK_DRIVER", expected: models.WorkTypeTruckDriver},
		{input: "  general  ", expected: models.WorkTypeGeneral},
		{input: "plumber", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWorkType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidation(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseLaborType(t *testing.T) {
	tests := []struct {
		input    string
		expected LaborType
		wantErr  bool
	}{
		{input: "", expected: LaborTruckDriver},
		{input: "truckDriver", expected: LaborTruckDriver},
		{input: "operator", expected: LaborOperator},
		{input: "tascoAbcdLabor", expected: LaborOperator},
		{input: "manualLabor", expected: LaborManual},
		{input: "manual_labor", expected: LaborManual},
		{input: "welder", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLaborType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeTrailer(t *testing.T) {
	assert.Nil(t, NormalizeTrailer(""))
	assert.Nil(t, NormalizeTrailer("none"))
	assert.Nil(t, NormalizeTrailer("No Trailer"))
	assert.Nil(t, NormalizeTrailer("  "))

	got := NormalizeTrailer(" TRL-3 ")
	if assert.NotNil(t, got) {
		assert.Equal(t, "TRL-3", *got)
	}
}
