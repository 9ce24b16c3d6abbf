// Package common defines shared constants and sentinel errors used across
// credstore packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Backend-level errors.
	ErrorMalformedRecord = errors.New("malformed record")
	ErrorUnknownBackend  = errors.New("unknown storage backend")

	// Front-end input errors.
	ErrorValidation = errors.New("validation error")
)
