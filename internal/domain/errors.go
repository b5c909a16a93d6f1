package domain

import "errors"

// ErrNotFound is returned by store and handler helpers when the requested
// resource does not exist. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing required field, unknown enum value, end date before start
// date). Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
