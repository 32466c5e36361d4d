package usecases

import "errors"

// Sentinel errors the HTTP layer maps onto status codes. Wrap them
// with context, match them with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)
