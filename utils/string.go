package utils

import "fmt"

// Format renders an optional value for display, empty when nil.
func Format[T any](ptr *T) string {
	if ptr == nil {
		return ""
	}
	return fmt.Sprintf("%v", *ptr)
}
