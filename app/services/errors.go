package services

import "errors"

// Expected, recoverable-at-the-boundary failure kinds. Controllers translate
// these into HTTP statuses; anything else surfaces as an internal error that
// terminates only the current request.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
