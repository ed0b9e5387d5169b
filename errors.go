package stargrid

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSorted means a lookup that depends on id order ran on an
	// unsorted catalog. This is a lifecycle violation, so the catalog
	// panics with it instead of returning it: a silent empty result
	// would be indistinguishable from "id not present".
	ErrNotSorted = errors.New("catalog is not sorted")

	// ErrNotIndexed means a geometric query ran before DeriveIndex.
	// Panicked, not returned, for the same reason as ErrNotSorted.
	ErrNotIndexed = errors.New("catalog index has not been derived")

	// ErrStaleHandle means a handle issued before the last mutating
	// operation (Add, Retain, Sort) was dereferenced. Panicked on
	// access; stale handles cannot be used safely.
	ErrStaleHandle = errors.New("stale handle: catalog was mutated after the handle was issued")

	// ErrNotFound is the recoverable "no such star" outcome. Lookup
	// errors unwrap to it.
	ErrNotFound = errors.New("star not found")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidTolerance is returned for a negative or non-finite
	// angular tolerance.
	ErrInvalidTolerance = errors.New("tolerance must be non-negative and finite")

	// ErrInvalidAngle is returned for a target angle outside [0, pi].
	ErrInvalidAngle = errors.New("angle must be within [0, pi] radians")
)

// UnknownIDError indicates an id that is not present in the catalog.
//
// Unwraps to ErrNotFound.
type UnknownIDError struct {
	ID StarID
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("no star with id %d", e.ID)
}

func (e *UnknownIDError) Unwrap() error { return ErrNotFound }

// UnknownNameError indicates a name that is not present in the catalog.
//
// Unwraps to ErrNotFound.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("no star named %q", e.Name)
}

func (e *UnknownNameError) Unwrap() error { return ErrNotFound }
