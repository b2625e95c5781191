package domain

import "errors"

// ErrNotFound is returned when the requested record does not exist in its
// collection. Deletes never return it: removing an absent record is a no-op.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule (missing
// required field, negative amount, end before start).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrStorage is returned when the underlying key-value store cannot be read
// or written. Callers may retry; handlers should map this to HTTP 503.
var ErrStorage = errors.New("storage error")
