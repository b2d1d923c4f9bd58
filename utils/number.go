package utils

import (
	"strconv"
	"strings"
)

// ParseIntOr parses s, returning fallback on empty or malformed input.
// Optional numeric fields on log payloads default rather than fail.
func ParseIntOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

func ParseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}
