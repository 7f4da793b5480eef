// Package model defines the persisted entities of the service
// (Hero, Power and the HeroPower link between them).
//
// Every field with a content rule is assigned through a setter that
// validates the value first. A rejected value never reaches the entity,
// so an entity that exists in memory always satisfies its invariants.
// Constructors go through the same setters.
package model

import (
	"github.com/go-playground/validator/v10"
)

// validate is shared by all setters.
//
// validator.Validate is safe for concurrent use and caches struct metadata,
// so one instance per process is the recommended usage.
var validate = validator.New()

// ValidationError is returned when a value is rejected by an entity setter.
//
// Field is the column name the value was meant for.
// Message is the human-readable reason and is what clients get back.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
