package entities

import (
	"fmt"
	"strings"
)

// Bounds shared by the catalog entities.
const (
	MinReleaseYear = 1950
	MinFoundedYear = 1900
	MaxYear        = 2100

	MinScore = 0
	MaxScore = 100
)

// ValidationError reports a field that breaks an entity invariant.
// It is returned before any statement reaches the database.
type ValidationError struct {
	Entity  string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s %s", e.Entity, e.Field, e.Message)
}

func invalid(entity, field, message string) error {
	return &ValidationError{Entity: entity, Field: field, Message: message}
}

func requireName(entity, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(entity, field, "cannot be empty")
	}
	return nil
}

func requireYear(entity, field string, year, min int) error {
	if year < min || year > MaxYear {
		return invalid(entity, field, fmt.Sprintf("must be between %d and %d", min, MaxYear))
	}
	return nil
}
