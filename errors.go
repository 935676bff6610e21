// Package fastdtw: sentinel error set.
//
// All public entry points return these sentinels for caller-triggered
// conditions; tests match them via errors.Is. Panics are reserved for
// programmer errors inside the core (boundary writes into the cost
// storage, an Unknown action met during backtracking).
package fastdtw

import "errors"

var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("fastdtw: input sequences must be non-empty")

	// ErrNilWindow indicates a nil Window was passed to DTWEx.
	ErrNilWindow = errors.New("fastdtw: window must not be nil")

	// ErrEmptyPath indicates an empty low-resolution path was passed to
	// NewConstrainedWindow; a band cannot be projected from nothing.
	ErrEmptyPath = errors.New("fastdtw: low-resolution path must be non-empty")

	// ErrBadShape indicates non-positive table dimensions were requested.
	ErrBadShape = errors.New("fastdtw: table dimensions must be positive")

	// ErrBadResolutionFactor indicates a resolution factor below 1.
	ErrBadResolutionFactor = errors.New("fastdtw: resolution factor must be at least 1")

	// ErrBadSearchRadius indicates a negative search radius.
	ErrBadSearchRadius = errors.New("fastdtw: search radius must be non-negative")

	// ErrBadDistanceMode indicates a DistanceMode outside the known set.
	ErrBadDistanceMode = errors.New("fastdtw: unknown distance mode")
)
