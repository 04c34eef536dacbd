package model

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// RegenRequired is the fixed sentinel tag returned when itinerary generation
// produced nothing usable and the whole array must be regenerated. UIs
// special-case this value instead of rendering raw error text.
const RegenRequired = "REGEN_REQUIRED"
