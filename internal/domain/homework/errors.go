package homework

import "errors"

// Custom domain-level errors for the homework statuses feed.
var (
	// ErrBadEnvelope means the response body does not have the expected shape.
	ErrBadEnvelope = errors.New("response envelope has unexpected structure")
	// ErrUnknownStatus means a record carries a status outside the verdict table.
	ErrUnknownStatus = errors.New("undocumented homework status")
	// ErrMissingField means a record with a known status lacks a required field.
	ErrMissingField = errors.New("homework record is missing a required field")
)
