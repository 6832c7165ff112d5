package utils

import "github.com/google/uuid"

// IsValidID reports whether s is a well-formed entity identifier.
// Identifiers are opaque UUID strings; malformed ones are rejected before
// any database call.
func IsValidID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
