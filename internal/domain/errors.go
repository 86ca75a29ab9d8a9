package domain

import "errors"

// Sentinel errors shared across packages
var (
	// ErrUnknownOre indicates an ore token outside the closed set
	ErrUnknownOre = errors.New("unknown ore")

	// ErrStoreUnavailable indicates the structured backend could not be
	// reached or initialized at startup
	ErrStoreUnavailable = errors.New("storage backend unavailable")

	// ErrInvalidMultiplier indicates a non-positive multiplier value
	ErrInvalidMultiplier = errors.New("multiplier must be positive")
)
