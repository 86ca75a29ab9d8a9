package vein

// DefaultEvictAgeMS is how old a player's break state may get before
// the eviction job drops it, when the detector runs on the wall clock
const DefaultEvictAgeMS = 5 * 60 * 1000

// Log message constants
const (
	// LogMsgStateEvicted is logged when stale break state is removed
	LogMsgStateEvicted = "stale vein state evicted"
)
