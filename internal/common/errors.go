// Package common defines sentinel errors and constants shared by the skicka
// server and client. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Admission errors.
	ErrOverloaded = errors.New("server overloaded")

	// ErrNameSpaceExhausted is returned when no free code could be generated
	// within MaxNameAttempts. It matches ErrOverloaded.
	ErrNameSpaceExhausted = fmt.Errorf("failed to generate name: %w", ErrOverloaded)

	// Lookup errors.
	ErrNotFound = errors.New("no such connection found")

	// Boundary errors.
	ErrRequestTooLarge = errors.New("request too large")
)
