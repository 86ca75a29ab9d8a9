package vein

import (
	"sync/atomic"
	"time"
)

// TimeSource supplies the detector's notion of now. The unit is opaque
// to the detector; the configured timeout must use the same unit.
type TimeSource interface {
	Now() int64
}

// WallClock is a millisecond wall-clock time source
type WallClock struct{}

// Now returns the current time in unix milliseconds
func (WallClock) Now() int64 {
	return time.Now().UnixMilli()
}

// TickSource is a logical-tick time source advanced by the host. It is
// used when the caller's world runs on discrete ticks rather than wall
// time.
type TickSource struct {
	ticks atomic.Int64
}

// Now returns the current tick
func (s *TickSource) Now() int64 {
	return s.ticks.Load()
}

// Advance moves the tick counter forward by n
func (s *TickSource) Advance(n int64) {
	s.ticks.Add(n)
}
