package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceHelpers(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5}

	even := Filter(nums, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)

	doubled := Map(nums, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6, 8, 10}, doubled)

	found := Find(nums, func(n int) bool { return n > 3 })
	require.NotNil(t, found)
	assert.Equal(t, 4, *found)

	assert.Nil(t, Find(nums, func(n int) bool { return n > 10 }))
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, 3, 2, 14, 30, 45, 123, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), DateOf(ts))
	assert.Equal(t, MustParseDate("2026-03-02"), DateOf(ts))
}

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "2026-03-02T07:00:00Z"},
		{input: "2026-03-02 07:00:00"},
		{input: "2026-03-02"},
		{input: "", wantErr: true},
		{input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseISOTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestParseNumberFallbacks(t *testing.T) {
	assert.Equal(t, 42, ParseIntOr(" 42 ", 0))
	assert.Equal(t, 7, ParseIntOr("", 7))
	assert.Equal(t, 7, ParseIntOr("many", 7))
	assert.InDelta(t, 3.5, ParseFloatOr("3.5", 0), 0.0001)
	assert.InDelta(t, 1.5, ParseFloatOr("x", 1.5), 0.0001)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", Format[string](nil))
	assert.Equal(t, "hello", Format(Ptr("hello")))
	assert.Equal(t, "12", Format(Ptr(12)))
}
