package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the service layer. Controllers map them onto
// HTTP codes; nothing here is fatal to the process.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrRegistrationPending = errors.New("registration still pending")
	ErrRestaurantBlocked   = errors.New("restaurant is blocked")
	ErrForbidden           = errors.New("forbidden")
	ErrNotPending          = errors.New("request is not pending")
	ErrInvalidTransition   = errors.New("invalid transition")
)

// ValidationError is a client-side mistake caught before any write, surfaced
// next to the offending field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}
