package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnlyRoundTrip(t *testing.T) {
	var d DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-02"`), &d))
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), d.Time)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-02"`, string(out))
}

func TestDateOnlyEmpty(t *testing.T) {
	var d DateOnly
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.Time.IsZero())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(out))
}

func TestDateOnlyInvalid(t *testing.T) {
	var d DateOnly
	assert.Error(t, json.Unmarshal([]byte(`"02/03/2026"`), &d))
}
